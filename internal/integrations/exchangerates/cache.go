package exchangerates

import (
	"context"
	"sync"
	"time"

	"github.com/chefdechef/booking-service/internal/domain"
)

// DefaultTTL срок свежести снимка курсов
const DefaultTTL = 4 * time.Hour

// Fetcher источник свежих курсов
type Fetcher interface {
	Fetch(ctx context.Context) (*domain.ExchangeRates, error)
}

// RefreshObserver получает результат каждой попытки обновления (для метрик)
type RefreshObserver func(outcome string)

// Snapshot результат чтения кеша
type Snapshot struct {
	Rates *domain.ExchangeRates
	Stale bool // курсы устарели: обновление не удалось
}

// Cache кеш курсов с окном свежести; при ошибке обновления отдает устаревшие данные
type Cache struct {
	fetcher Fetcher
	ttl     time.Duration
	now     func() time.Time
	log     Logger
	observe RefreshObserver

	mu       sync.Mutex
	rates    *domain.ExchangeRates
	cachedAt time.Time
}

// NewCache создает кеш поверх fetcher
func NewCache(fetcher Fetcher, ttl time.Duration, log Logger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		fetcher: fetcher,
		ttl:     ttl,
		now:     time.Now,
		log:     log,
	}
}

// WithObserver подключает наблюдателя обновлений
func (c *Cache) WithObserver(o RefreshObserver) *Cache {
	c.observe = o
	return c
}

// Get возвращает свежие курсы, при необходимости обновляя кеш.
// Если обновление не удалось, возвращаются устаревшие данные (Stale=true);
// если кеш пуст - ErrUnavailable.
func (c *Cache) Get(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.rates != nil && c.now().Sub(c.cachedAt) < c.ttl {
		return Snapshot{Rates: c.rates}, nil
	}

	fresh, err := c.fetcher.Fetch(ctx)
	if err != nil {
		c.report("error")
		c.log.Error("ExchangeRates: refresh failed: %v", err)
		if c.rates != nil {
			c.log.Warn("ExchangeRates: serving stale rates from %s", c.rates.Date)
			return Snapshot{Rates: c.rates, Stale: true}, nil
		}
		return Snapshot{}, ErrUnavailable
	}

	c.report("success")
	c.rates = fresh
	c.cachedAt = c.now()
	c.log.Info("ExchangeRates: cached new rates, date=%s", fresh.Date)

	return Snapshot{Rates: fresh}, nil
}

func (c *Cache) report(outcome string) {
	if c.observe != nil {
		c.observe(outcome)
	}
}
