package create_contact

import (
	"context"

	createContact "github.com/chefdechef/booking-service/internal/usecase/create_contact_message"
)

type CreateContactUseCase interface {
	Execute(ctx context.Context, req *createContact.Request) (*createContact.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
