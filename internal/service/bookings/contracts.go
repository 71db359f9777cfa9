package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/chefdechef/booking-service/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	UpdateAdminFields(ctx context.Context, id uuid.UUID, expected domain.BookingStatus, upd domain.BookingAdminUpdate) (*domain.Booking, error)
}

// Notifier публикует событие об изменении заявки
type Notifier interface {
	BookingUpdated(ctx context.Context, b *domain.Booking)
}

// Recorder фиксирует обновление заявки в метриках
type Recorder func(status domain.BookingStatus)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
