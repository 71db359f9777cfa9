package list_contact_messages

import (
	"context"

	"github.com/chefdechef/booking-service/internal/service/contacts/models"
)

type ContactService interface {
	List(ctx context.Context) (*models.ContactMessageListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
