package contacts

import (
	"context"

	"github.com/chefdechef/booking-service/internal/domain"
)

// ContactRepository интерфейс чтения сообщений
type ContactRepository interface {
	List(ctx context.Context) ([]*domain.ContactMessage, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
