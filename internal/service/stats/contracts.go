package stats

import (
	"context"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/internal/integrations/exchangerates"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
}

// RatesProvider источник курсов валют (кеш)
type RatesProvider interface {
	Get(ctx context.Context) (exchangerates.Snapshot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
