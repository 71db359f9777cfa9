package notifications

import (
	"context"

	"github.com/chefdechef/booking-service/internal/integrations/resend"
)

// EmailSender интерфейс клиента почтового API
type EmailSender interface {
	Send(ctx context.Context, email *resend.Email) (string, error)
}

// EventPublisher интерфейс публикации доменных событий
type EventPublisher interface {
	PublishJSON(ctx context.Context, key string, v any) error
}

// Recorder фиксирует исход уведомления (kind, outcome) в метриках
type Recorder func(kind, outcome string)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
