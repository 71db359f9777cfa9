package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chefdechef/booking-service/internal/domain"
	bookingRepo "github.com/chefdechef/booking-service/internal/infra/storage/booking"
	"github.com/chefdechef/booking-service/pkg/types"
)

// UseCase use case для создания заявки из публичной формы
type UseCase struct {
	bookingRepo  BookingRepository
	clients      ClientUpserter
	notifier     Notifier
	record       Recorder
	policy       domain.AvailabilityPolicy
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case.
// clients может быть nil, тогда карточки клиентов не обновляются.
func NewUseCase(
	bookingRepo BookingRepository,
	clients ClientUpserter,
	notifier Notifier,
	policy domain.AvailabilityPolicy,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		clients:      clients,
		notifier:     notifier,
		policy:       policy,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// WithRecorder подключает учет созданных заявок в метриках
func (uc *UseCase) WithRecorder(r Recorder) *UseCase {
	uc.record = r
	return uc
}

// Execute выполняет use case создания заявки.
// Дата проверяется по множеству занятых дат до вставки; гонку двух одновременных
// заявок на одну дату закрывает частичный уникальный индекс в БД.
// Обновление клиента и письма выполняются после сохранения и не влияют на результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	req = normalizeRequest(req)
	uc.logger.Info("CreateBooking: date=%s, type=%q, email=%s", req.EventDate, req.EventType, req.Email)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущий день в часовом поясе ансамбля
	today := types.Today(uc.timeProvider.Now(), uc.location)
	if req.EventDate.Before(today) {
		uc.logger.Warn("CreateBooking: date %s is before today %s", req.EventDate, today)
		return nil, ErrDateInPast
	}

	// 3. Множество занятых дат
	entries, err := uc.bookingRepo.ListDateStatuses(ctx, uc.policy.BlockingStatuses(), &today, nil)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to read availability: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnavailable, err)
	}
	available := domain.NewAvailabilitySet(entries, uc.policy)

	// 4. Проверка даты
	if err := available.ValidateCandidate(req.EventDate, today); err != nil {
		switch {
		case errors.Is(err, domain.ErrDateInPast):
			return nil, ErrDateInPast
		case errors.Is(err, domain.ErrDateUnavailable):
			uc.logger.Warn("CreateBooking: date %s is unavailable", req.EventDate)
			return nil, ErrDateUnavailable
		default:
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	}

	// 5. Сохраняем заявку в статусе pending
	booking := domain.NewPendingBooking(req.EventDate, req.EventType, req.Location,
		req.Name, req.Email, req.Phone, req.StartTime, req.Notes)

	created, err := uc.bookingRepo.Create(ctx, booking)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrDateTaken) {
			uc.logger.Warn("CreateBooking: date %s was taken concurrently", req.EventDate)
			return nil, ErrDateUnavailable
		}
		uc.logger.Error("CreateBooking: failed to create booking: %v", err)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.logger.Info("CreateBooking: booking id=%s created for %s", created.ID, created.EventDate)
	if uc.record != nil {
		uc.record(created.EventType)
	}

	// 6. Карточка клиента (best effort)
	if uc.clients != nil {
		sub := domain.Submission{
			Name:   created.Name,
			Email:  created.Email,
			Phone:  created.Phone,
			Source: domain.SourceBooking,
			At:     created.CreatedAt,
		}
		if created.Notes != nil {
			sub.Note = *created.Notes
		}
		if sub.At.IsZero() {
			sub.At = uc.timeProvider.Now()
		}
		if uc.location != nil {
			sub.At = sub.At.In(uc.location)
		}
		if err := uc.clients.UpsertFromSubmission(ctx, sub); err != nil {
			uc.logger.Warn("CreateBooking: client upsert failed for booking id=%s: %v", created.ID, err)
		}
	}

	// 7. Уведомления (best effort)
	result := uc.notifier.BookingCreated(ctx, created)

	return &Response{
		Booking:      created,
		Notification: result,
	}, nil
}
