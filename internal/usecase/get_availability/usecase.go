package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/pkg/types"
)

// UseCase use case для получения занятых дат
type UseCase struct {
	bookingRepo  BookingRepository
	policy       domain.AvailabilityPolicy
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	policy domain.AvailabilityPolicy,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		policy:       policy,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute возвращает отсортированные занятые даты начиная с from (по умолчанию сегодня)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	today := types.Today(uc.timeProvider.Now(), uc.location)

	from := today
	if req.From != nil {
		from = *req.From
	}
	if req.To != nil && req.To.Before(from) {
		uc.logger.Warn("GetAvailability: invalid range %s..%s", from, *req.To)
		return nil, fmt.Errorf("%w: %s > %s", ErrInvalidRange, from, *req.To)
	}

	entries, err := uc.bookingRepo.ListDateStatuses(ctx, uc.policy.BlockingStatuses(), &from, req.To)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to read booking dates: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnavailable, err)
	}

	set := domain.NewAvailabilitySet(entries, uc.policy)
	uc.logger.Info("GetAvailability: %d unavailable dates from %s", set.Len(), from)

	return &Response{
		Today:       today,
		Unavailable: set.Dates(),
		Policy:      uc.policy,
	}, nil
}
