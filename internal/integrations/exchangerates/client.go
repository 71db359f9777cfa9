package exchangerates

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/chefdechef/booking-service/internal/domain"
)

// requiredRates курсы, без которых снимок бесполезен для статистики
var requiredRates = []domain.Currency{domain.CurrencyMDL, domain.CurrencyUSD}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент публичного API курсов валют (база EUR)
type Client struct {
	url        string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Fetch запрашивает свежий снимок курсов
func (c *Client) Fetch(ctx context.Context) (*domain.ExchangeRates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var payload ratesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	for _, cur := range requiredRates {
		if payload.Rates[string(cur)] <= 0 {
			return nil, ErrMissingRates
		}
	}

	base := domain.Currency(payload.Base)
	if base == "" {
		base = domain.CurrencyEUR
	}

	return &domain.ExchangeRates{
		Base:      base,
		Date:      payload.Date,
		Rates:     payload.Rates,
		FetchedAt: time.Now(),
	}, nil
}
