package stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/internal/integrations/exchangerates"
	"github.com/chefdechef/booking-service/pkg/ptr"
	"github.com/chefdechef/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockRepo struct {
	listFn func() ([]*domain.Booking, error)
}

func (m *mockRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	return m.listFn()
}

type mockRates struct {
	getFn func() (exchangerates.Snapshot, error)
}

func (m *mockRates) Get(ctx context.Context) (exchangerates.Snapshot, error) {
	return m.getFn()
}

func mk(status domain.BookingStatus, date, eventType string, price *float64, currency domain.Currency) *domain.Booking {
	return &domain.Booking{
		ID:        uuid.New(),
		EventDate: types.MustParseDate(date),
		EventType: eventType,
		Status:    status,
		Price:     price,
		Currency:  currency,
	}
}

func fixture() []*domain.Booking {
	return []*domain.Booking{
		mk(domain.StatusPending, "2025-07-01", "Nuntă", nil, domain.CurrencyMDL),
		mk(domain.StatusConfirmed, "2025-06-15", "Nuntă", nil, domain.CurrencyMDL), // сегодня
		mk(domain.StatusConfirmed, "2025-06-14", "Botez", nil, domain.CurrencyMDL), // вчера
		mk(domain.StatusCompleted, "2025-05-01", "Corporativ", ptr.Ptr(10000.0), domain.CurrencyMDL),
		mk(domain.StatusCompleted, "2025-05-02", "Nuntă", ptr.Ptr(100.0), domain.CurrencyEUR),
		mk(domain.StatusCompleted, "2025-05-03", "Nuntă", ptr.Ptr(110.0), domain.CurrencyUSD),
		mk(domain.StatusCompleted, "2025-05-04", "Botez", nil, domain.CurrencyEUR),
		mk(domain.StatusRejected, "2025-05-05", "Nuntă", ptr.Ptr(999.0), domain.CurrencyMDL),
	}
}

func newService(repo BookingRepository, rates RatesProvider) *Service {
	loc := time.FixedZone("EEST", 3*60*60)
	svc := NewService(repo, rates, loc, nopLogger{})
	// 15 июня 00:30 по Кишиневу, в UTC еще 14 июня
	svc.now = func() time.Time { return time.Date(2025, 6, 14, 21, 30, 0, 0, time.UTC) }
	return svc
}

func TestGet_CountsAndRevenue(t *testing.T) {
	rates := &mockRates{getFn: func() (exchangerates.Snapshot, error) {
		return exchangerates.Snapshot{Rates: &domain.ExchangeRates{
			Base: domain.CurrencyEUR, Date: "2025-06-14",
			Rates: map[string]float64{"MDL": 20, "USD": 1.1},
		}}, nil
	}}
	svc := newService(&mockRepo{listFn: func() ([]*domain.Booking, error) { return fixture(), nil }}, rates)

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 8, resp.TotalBookings)
	assert.Equal(t, 1, resp.PendingRequests)
	assert.Equal(t, 4, resp.CompletedEvents)
	assert.Equal(t, 1, resp.UpcomingEvents)
	assert.Equal(t, map[string]int{"pending": 1, "confirmed": 2, "completed": 4, "rejected": 1}, resp.StatusCounts)
	assert.Equal(t, map[string]int{"Nuntă": 5, "Botez": 2, "Corporativ": 1}, resp.EventTypeCounts)

	// 10000 MDL + 100 EUR * 20 + 110 USD / 1.1 * 20
	assert.InDelta(t, 14000.0, resp.TotalRevenue, 0.001)
	assert.Equal(t, "MDL", resp.RevenueCurrency)
	assert.Zero(t, resp.UnconvertedBookings)
	require.NotNil(t, resp.Rates)
	assert.Equal(t, 20.0, resp.Rates.EURtoMDL)
	assert.InDelta(t, 18.1818, resp.Rates.USDtoMDL, 0.0001)
	assert.False(t, resp.RatesUnavailable)
}

func TestGet_WithoutRatesCountsOnlyLocalCurrency(t *testing.T) {
	rates := &mockRates{getFn: func() (exchangerates.Snapshot, error) {
		return exchangerates.Snapshot{}, exchangerates.ErrUnavailable
	}}
	svc := newService(&mockRepo{listFn: func() ([]*domain.Booking, error) { return fixture(), nil }}, rates)

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10000.0, resp.TotalRevenue)
	assert.Equal(t, 2, resp.UnconvertedBookings)
	assert.True(t, resp.RatesUnavailable)
	assert.Nil(t, resp.Rates)
}

func TestGet_StaleRatesFlagged(t *testing.T) {
	rates := &mockRates{getFn: func() (exchangerates.Snapshot, error) {
		return exchangerates.Snapshot{Stale: true, Rates: &domain.ExchangeRates{
			Base: domain.CurrencyEUR, Date: "2025-06-10",
			Rates: map[string]float64{"MDL": 19.5, "USD": 1.08},
		}}, nil
	}}
	svc := newService(&mockRepo{listFn: func() ([]*domain.Booking, error) { return nil, nil }}, rates)

	resp, err := svc.Get(context.Background())
	require.NoError(t, err)

	require.NotNil(t, resp.Rates)
	assert.True(t, resp.Rates.Stale)
	assert.Equal(t, "2025-06-10", resp.Rates.Date)
	assert.Zero(t, resp.TotalBookings)
}

func TestGet_RepositoryError(t *testing.T) {
	svc := newService(&mockRepo{listFn: func() ([]*domain.Booking, error) {
		return nil, errors.New("db down")
	}}, &mockRates{})

	_, err := svc.Get(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
