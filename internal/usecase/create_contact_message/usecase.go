package create_contact_message

import (
	"context"
	"fmt"
	"time"

	"github.com/chefdechef/booking-service/internal/domain"
)

// UseCase use case для сообщения из формы обратной связи
type UseCase struct {
	contactRepo  ContactRepository
	clients      ClientUpserter
	notifier     Notifier
	record       Recorder
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	contactRepo ContactRepository,
	clients ClientUpserter,
	notifier Notifier,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		contactRepo:  contactRepo,
		clients:      clients,
		notifier:     notifier,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithRecorder подключает учет сообщений в метриках
func (uc *UseCase) WithRecorder(r Recorder) *UseCase {
	uc.record = r
	return uc
}

// Execute сохраняет сообщение, затем обновляет карточку клиента и пересылает письмо
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req = normalizeRequest(req)
	uc.logger.Info("CreateContactMessage: email=%s", req.Email)

	// 1. Валидация
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateContactMessage: validation failed: %v", err)
		return nil, err
	}

	// 2. Сохраняем сообщение
	created, err := uc.contactRepo.Create(ctx, &domain.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Message: req.Message,
	})
	if err != nil {
		uc.logger.Error("CreateContactMessage: failed to save message: %v", err)
		return nil, fmt.Errorf("%w: failed to save message: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateContactMessage: message id=%s saved", created.ID)
	if uc.record != nil {
		uc.record()
	}

	// 3. Карточка клиента (best effort)
	if uc.clients != nil {
		at := created.CreatedAt
		if at.IsZero() {
			at = uc.timeProvider.Now()
		}
		if uc.location != nil {
			at = at.In(uc.location)
		}
		err := uc.clients.UpsertFromSubmission(ctx, domain.Submission{
			Name:    created.Name,
			Email:   created.Email,
			Phone:   created.Phone,
			Message: created.Message,
			Source:  domain.SourceContact,
			At:      at,
		})
		if err != nil {
			uc.logger.Warn("CreateContactMessage: client upsert failed for message id=%s: %v", created.ID, err)
		}
	}

	// 4. Письмо администратору (best effort)
	result := uc.notifier.ContactCreated(ctx, created)

	return &Response{Message: created, Notification: result}, nil
}
