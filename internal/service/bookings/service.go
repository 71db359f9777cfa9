package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/chefdechef/booking-service/internal/domain"
	bookingRepo "github.com/chefdechef/booking-service/internal/infra/storage/booking"
	"github.com/chefdechef/booking-service/internal/service/bookings/models"
)

// Service сервис администрирования бронирований
type Service struct {
	bookingRepo BookingRepository
	notifier    Notifier
	record      Recorder
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// WithRecorder подключает учет обновлений в метриках
func (s *Service) WithRecorder(r Recorder) *Service {
	s.record = r
	return s
}

// List возвращает бронирования с поиском, фильтрами и сортировкой
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	sortBookings(list, filter.SortBy, filter.SortDesc)

	s.logger.Info("List: fetched %d bookings (q=%q, sort=%s, desc=%t)", len(list), filter.Query, filter.SortBy, filter.SortDesc)
	return models.FromDomainBookingList(list), nil
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	booking, err := s.get(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainBooking(booking), nil
}

// UpdateAdminFields обновляет поля администратора и возвращает строку в сохраненном виде.
// Переход статуса проверяется по машине состояний; UPDATE, не затронувший строк,
// возвращает ErrUpdateNotApplied, а не успех.
func (s *Service) UpdateAdminFields(ctx context.Context, id uuid.UUID, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateAdminFields: updating booking id=%s", id)

	// 1. Валидация и нормализация входных данных
	upd, err := req.ToDomainUpdate()
	if err != nil {
		s.logger.Warn("UpdateAdminFields: invalid input for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Заявка должна существовать
	current, err := s.get(ctx, "UpdateAdminFields", id)
	if err != nil {
		return nil, err
	}

	if upd.IsEmpty() {
		s.logger.Info("UpdateAdminFields: nothing to change for booking id=%s", id)
		return models.FromDomainBooking(current), nil
	}

	// 3. Проверка перехода статуса
	if upd.Status != nil && !current.Status.CanTransitionTo(*upd.Status) {
		s.logger.Warn("UpdateAdminFields: transition %s -> %s not allowed for booking id=%s", current.Status, *upd.Status, id)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, *upd.Status)
	}

	// 4. Обновление с условием по текущему статусу
	updated, err := s.bookingRepo.UpdateAdminFields(ctx, id, current.Status, upd)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrNoRowsUpdated) {
			s.logger.Warn("UpdateAdminFields: update of booking id=%s matched no rows", id)
			return nil, fmt.Errorf("%w: id=%s", ErrUpdateNotApplied, id)
		}
		s.logger.Error("UpdateAdminFields: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateAdminFields - repository error: %v", ErrInternal, err)
	}

	if s.record != nil {
		s.record(updated.Status)
	}
	if s.notifier != nil {
		s.notifier.BookingUpdated(ctx, updated)
	}

	s.logger.Info("UpdateAdminFields: booking id=%s updated, status=%s", id, updated.Status)
	return models.FromDomainBooking(updated), nil
}

func (s *Service) get(ctx context.Context, op string, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
