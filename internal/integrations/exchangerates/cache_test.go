package exchangerates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefdechef/booking-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockFetcher struct {
	calls   int
	fetchFn func() (*domain.ExchangeRates, error)
}

func (m *mockFetcher) Fetch(ctx context.Context) (*domain.ExchangeRates, error) {
	m.calls++
	return m.fetchFn()
}

func TestCache_FreshWithinTTL(t *testing.T) {
	f := &mockFetcher{fetchFn: func() (*domain.ExchangeRates, error) {
		return &domain.ExchangeRates{Base: domain.CurrencyEUR, Date: "2025-06-01", Rates: map[string]float64{"MDL": 19.5, "USD": 1.1}}, nil
	}}
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	c := NewCache(f, DefaultTTL, nopLogger{})
	c.now = func() time.Time { return now }

	_, err := c.Get(context.Background())
	require.NoError(t, err)

	now = now.Add(3*time.Hour + 59*time.Minute)
	snap, err := c.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, f.calls)
	assert.False(t, snap.Stale)
}

func TestCache_StaleOnRefreshError(t *testing.T) {
	fail := false
	f := &mockFetcher{fetchFn: func() (*domain.ExchangeRates, error) {
		if fail {
			return nil, errors.New("timeout")
		}
		return &domain.ExchangeRates{Base: domain.CurrencyEUR, Date: "2025-06-01", Rates: map[string]float64{"MDL": 19.5, "USD": 1.1}}, nil
	}}
	now := time.Date(2025, 6, 1, 8, 0, 0, 0, time.UTC)
	var outcomes []string
	c := NewCache(f, DefaultTTL, nopLogger{}).WithObserver(func(o string) { outcomes = append(outcomes, o) })
	c.now = func() time.Time { return now }

	_, err := c.Get(context.Background())
	require.NoError(t, err)

	fail = true
	now = now.Add(5 * time.Hour)
	snap, err := c.Get(context.Background())

	require.NoError(t, err)
	assert.True(t, snap.Stale)
	assert.Equal(t, "2025-06-01", snap.Rates.Date)
	assert.Equal(t, 2, f.calls)
	assert.Equal(t, []string{"success", "error"}, outcomes)
}

func TestCache_EmptyAndFailing(t *testing.T) {
	f := &mockFetcher{fetchFn: func() (*domain.ExchangeRates, error) {
		return nil, errors.New("dns")
	}}
	c := NewCache(f, 0, nopLogger{})

	_, err := c.Get(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_Fetch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"provider":"x","base":"EUR","date":"2025-06-01","time_last_updated":1,"rates":{"EUR":1,"MDL":19.5,"USD":1.1}}`))
	}))
	defer srv.Close()

	rates, err := NewClient(srv.URL, time.Second, nopLogger{}).Fetch(context.Background())

	require.NoError(t, err)
	assert.Equal(t, domain.CurrencyEUR, rates.Base)
	assert.Equal(t, 19.5, rates.Rates["MDL"])
}

func TestClient_FetchMissingRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"base":"EUR","date":"2025-06-01","rates":{"EUR":1,"USD":1.1}}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second, nopLogger{}).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrMissingRates)
}

func TestClient_FetchBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second, nopLogger{}).Fetch(context.Background())
	assert.ErrorIs(t, err, ErrInvalidResponse)
}
