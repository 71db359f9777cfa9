package manage_clients

import (
	"context"

	"github.com/chefdechef/booking-service/internal/service/clients/models"
)

type ClientService interface {
	GetMode(ctx context.Context) (*models.ModeResponse, error)
	List(ctx context.Context, req *models.ListClientsRequest) (*models.ClientListResponse, error)
	GetByID(ctx context.Context, id string) (*models.ClientResponse, error)
	Create(ctx context.Context, req *models.ClientRequest) (*models.ClientResponse, error)
	Update(ctx context.Context, id string, req *models.ClientRequest) (*models.ClientResponse, error)
	Delete(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
