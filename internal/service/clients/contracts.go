package clients

import (
	"context"

	"github.com/google/uuid"

	"github.com/chefdechef/booking-service/internal/domain"
)

// ClientRepository интерфейс репозитория таблицы clients
type ClientRepository interface {
	Probe(ctx context.Context) error
	List(ctx context.Context) ([]*domain.Client, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Client, error)
	GetByEmail(ctx context.Context, email string) (*domain.Client, error)
	LockEmail(ctx context.Context, email string) error
	Create(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) (*domain.Client, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RecordsRepository интерфейс чтения контактных данных из заявок и сообщений
type RecordsRepository interface {
	ListRecords(ctx context.Context) ([]domain.ClientRecord, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
