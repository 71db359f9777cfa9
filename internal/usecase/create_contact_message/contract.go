package create_contact_message

import (
	"context"
	"time"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/internal/service/notifications"
)

// ContactRepository интерфейс репозитория сообщений
type ContactRepository interface {
	Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error)
}

// ClientUpserter интерфейс обновления карточки клиента
type ClientUpserter interface {
	UpsertFromSubmission(ctx context.Context, sub domain.Submission) error
}

// Notifier интерфейс пересылки сообщения администратору
type Notifier interface {
	ContactCreated(ctx context.Context, m *domain.ContactMessage) notifications.Result
}

// Recorder фиксирует сообщение в метриках
type Recorder func()

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
