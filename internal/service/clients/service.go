package clients

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/chefdechef/booking-service/internal/domain"
	clientRepo "github.com/chefdechef/booking-service/internal/infra/storage/client"
	"github.com/chefdechef/booking-service/internal/service/clients/models"
)

// Service сервис списка клиентов.
// Режим хранилища определяется проверкой таблицы clients: при ее наличии
// доступен полный CRUD, иначе список строится из заявок и сообщений (только чтение).
type Service struct {
	clientRepo  ClientRepository
	recordsRepo RecordsRepository
	txManager   TransactionManager
	logger      Logger

	mu   sync.Mutex
	mode domain.ClientStoreMode
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	clientRepo ClientRepository,
	recordsRepo RecordsRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		clientRepo:  clientRepo,
		recordsRepo: recordsRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Mode возвращает режим хранилища, определяя его при первом обращении.
// Неожиданная ошибка проверки не запоминается, следующий вызов повторит проверку.
func (s *Service) Mode(ctx context.Context) (domain.ClientStoreMode, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.mode != "" {
		return s.mode, nil
	}

	err := s.clientRepo.Probe(ctx)
	switch {
	case err == nil:
		s.mode = domain.ClientStoreFull
	case errors.Is(err, clientRepo.ErrTableMissing):
		s.mode = domain.ClientStoreDerived
	default:
		s.logger.Error("Mode: probe of clients table failed: %v", err)
		return "", fmt.Errorf("%w: Mode - probe: %v", ErrInternal, err)
	}

	s.logger.Info("Mode: client store mode=%s", s.mode)
	return s.mode, nil
}

// GetMode режим для API
func (s *Service) GetMode(ctx context.Context) (*models.ModeResponse, error) {
	mode, err := s.Mode(ctx)
	if err != nil {
		return nil, err
	}
	return &models.ModeResponse{Mode: string(mode), ReadOnly: mode == domain.ClientStoreDerived}, nil
}

// List возвращает клиентов с поиском и сортировкой
func (s *Service) List(ctx context.Context, req *models.ListClientsRequest) (*models.ClientListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	mode, list, err := s.all(ctx)
	if err != nil {
		return nil, err
	}

	list = filterClients(list, filter.Query)
	sortClients(list, filter.SortBy, filter.SortDesc)

	s.logger.Info("List: fetched %d clients (mode=%s, q=%q)", len(list), mode, filter.Query)
	return models.FromDomainClientList(mode, list), nil
}

// GetByID получает клиента по ID (uuid в полном режиме, email в производном)
func (s *Service) GetByID(ctx context.Context, id string) (*models.ClientResponse, error) {
	mode, err := s.Mode(ctx)
	if err != nil {
		return nil, err
	}

	if mode == domain.ClientStoreDerived {
		_, list, err := s.all(ctx)
		if err != nil {
			return nil, err
		}
		key := domain.NormalizeEmail(id)
		for _, c := range list {
			if c.ID == key {
				return models.FromDomainClient(c), nil
			}
		}
		s.logger.Warn("GetByID: derived client id=%s not found", id)
		return nil, ErrClientNotFound
	}

	c, err := s.getFull(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainClient(c), nil
}

// Create создает клиента вручную
func (s *Service) Create(ctx context.Context, req *models.ClientRequest) (*models.ClientResponse, error) {
	if err := s.requireWritable(ctx, "Create"); err != nil {
		return nil, err
	}

	in, err := req.Normalize()
	if err != nil {
		s.logger.Warn("Create: invalid input: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.clientRepo.Create(ctx, &domain.Client{
		Name:       in.Name,
		Emails:     in.Emails,
		Phones:     in.Phones,
		AdminNotes: in.AdminNotes,
		Source:     domain.SourceAdmin,
	})
	if err != nil {
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: client id=%s created", created.ID)
	return models.FromDomainClient(created), nil
}

// Update заменяет имя, контакты и заметки администратора.
// Журнал заметок клиента не редактируется.
func (s *Service) Update(ctx context.Context, id string, req *models.ClientRequest) (*models.ClientResponse, error) {
	if err := s.requireWritable(ctx, "Update"); err != nil {
		return nil, err
	}

	in, err := req.Normalize()
	if err != nil {
		s.logger.Warn("Update: invalid input for client id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var result *domain.Client
	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		current, err := s.getFull(txCtx, "Update", id)
		if err != nil {
			return err
		}

		current.Name = in.Name
		current.Emails = in.Emails
		current.Phones = in.Phones
		current.AdminNotes = in.AdminNotes

		result, err = s.clientRepo.Update(txCtx, current)
		if err != nil {
			if errors.Is(err, clientRepo.ErrClientNotFound) {
				return ErrClientNotFound
			}
			s.logger.Error("Update: repository error for client id=%s: %v", id, err)
			return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Update: client id=%s updated", id)
	return models.FromDomainClient(result), nil
}

// Delete удаляет клиента
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.requireWritable(ctx, "Delete"); err != nil {
		return err
	}

	uid, err := uuid.Parse(id)
	if err != nil {
		s.logger.Warn("Delete: malformed client id=%s", id)
		return ErrClientNotFound
	}

	if err := s.clientRepo.Delete(ctx, uid); err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("Delete: client id=%s not found", id)
			return ErrClientNotFound
		}
		s.logger.Error("Delete: repository error for client id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: client id=%s deleted", id)
	return nil
}

// UpsertFromSubmission сливает данные публичной формы в карточку клиента.
// Выполняется в одной транзакции под блокировкой по email, так что две первые
// заявки с нового адреса не создают двух клиентов; повтор той же записи без
// заметки ничего не меняет. В производном режиме ничего не делает.
func (s *Service) UpsertFromSubmission(ctx context.Context, sub domain.Submission) error {
	if strings.TrimSpace(sub.Name) == "" || domain.NormalizeEmail(sub.Email) == "" || strings.TrimSpace(sub.Phone) == "" {
		s.logger.Info("UpsertFromSubmission: incomplete contact data, skipped")
		return nil
	}

	mode, err := s.Mode(ctx)
	if err != nil {
		return err
	}
	if mode == domain.ClientStoreDerived {
		return nil
	}

	return s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.clientRepo.LockEmail(txCtx, sub.Email); err != nil {
			return fmt.Errorf("%w: UpsertFromSubmission - lock: %v", ErrInternal, err)
		}

		existing, err := s.clientRepo.GetByEmail(txCtx, sub.Email)
		switch {
		case errors.Is(err, clientRepo.ErrClientNotFound):
			c := &domain.Client{}
			c.ApplySubmission(sub)
			created, err := s.clientRepo.Create(txCtx, c)
			if err != nil {
				return fmt.Errorf("%w: UpsertFromSubmission - create: %v", ErrInternal, err)
			}
			s.logger.Info("UpsertFromSubmission: client id=%s created from %s", created.ID, sub.Source)
			return nil
		case err != nil:
			return fmt.Errorf("%w: UpsertFromSubmission - lookup: %v", ErrInternal, err)
		}

		if !existing.ApplySubmission(sub) {
			return nil
		}
		if _, err := s.clientRepo.Update(txCtx, existing); err != nil {
			return fmt.Errorf("%w: UpsertFromSubmission - update: %v", ErrInternal, err)
		}
		s.logger.Info("UpsertFromSubmission: client id=%s updated from %s", existing.ID, sub.Source)
		return nil
	})
}

func (s *Service) all(ctx context.Context) (domain.ClientStoreMode, []*domain.Client, error) {
	mode, err := s.Mode(ctx)
	if err != nil {
		return "", nil, err
	}

	if mode == domain.ClientStoreDerived {
		records, err := s.recordsRepo.ListRecords(ctx)
		if err != nil {
			s.logger.Error("all: failed to read client records: %v", err)
			return "", nil, fmt.Errorf("%w: records repository error: %v", ErrInternal, err)
		}
		return mode, DeriveClients(records), nil
	}

	list, err := s.clientRepo.List(ctx)
	if err != nil {
		s.logger.Error("all: repository error: %v", err)
		return "", nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return mode, list, nil
}

func (s *Service) getFull(ctx context.Context, op, id string) (*domain.Client, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		s.logger.Warn("%s: malformed client id=%s", op, id)
		return nil, ErrClientNotFound
	}

	c, err := s.clientRepo.GetByID(ctx, uid)
	if err != nil {
		if errors.Is(err, clientRepo.ErrClientNotFound) {
			s.logger.Warn("%s: client id=%s not found", op, id)
			return nil, ErrClientNotFound
		}
		s.logger.Error("%s: repository error for client id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return c, nil
}

func (s *Service) requireWritable(ctx context.Context, op string) error {
	mode, err := s.Mode(ctx)
	if err != nil {
		return err
	}
	if mode == domain.ClientStoreDerived {
		s.logger.Warn("%s: client store is read-only", op)
		return ErrReadOnly
	}
	return nil
}
