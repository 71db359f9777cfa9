package create_booking

import (
	"context"
	"time"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/internal/service/notifications"
	"github.com/chefdechef/booking-service/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListDateStatuses(ctx context.Context, statuses []domain.BookingStatus, from, to *types.Date) ([]domain.DateStatus, error)
}

// ClientUpserter интерфейс обновления карточки клиента
type ClientUpserter interface {
	UpsertFromSubmission(ctx context.Context, sub domain.Submission) error
}

// Notifier интерфейс рассылки уведомлений о новой заявке
type Notifier interface {
	BookingCreated(ctx context.Context, b *domain.Booking) notifications.Result
}

// Recorder фиксирует созданную заявку в метриках
type Recorder func(eventType string)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
