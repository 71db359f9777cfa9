package get_calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/chefdechef/booking-service/internal/calendar"
	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/pkg/types"
)

// UseCase use case для построения месячного календаря
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

// Execute строит сетку месяца.
// Публичный режим: даты раньше сегодняшней и занятые недоступны, выбор недоступной даты сбрасывается.
// Режим администратора: все даты доступны, ячейки несут отметку доминирующего статуса.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	today := types.Today(uc.timeProvider.Now(), uc.location)

	// 1. Показываемый месяц
	shown := types.MonthOf(today)
	switch {
	case req.Month != nil:
		shown = *req.Month
	case req.Selected != nil:
		shown = types.MonthOf(*req.Selected)
	}

	w := &calendar.Widget{
		Shown: shown,
		Today: today,
		Mode:  calendar.ModeSelect,
	}
	if req.Admin {
		w.Mode = calendar.ModeFilter
	} else {
		w.MinDate = &today
		if shown.Compare(types.MonthOf(today)) < 0 {
			w.Shown = types.MonthOf(today)
		}
	}
	from, to := w.GridRange()

	// 2. Данные по датам сетки
	if req.Admin {
		entries, err := uc.bookingRepo.ListDateStatuses(ctx, nil, &from, &to)
		if err != nil {
			uc.logger.Error("GetCalendar: failed to read booking dates for %s: %v", w.Shown, err)
			return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnavailable, err)
		}
		w.Marks = calendar.BuildMarks(entries)
	} else {
		entries, err := uc.bookingRepo.ListDateStatuses(ctx, uc.policy.BlockingStatuses(), &from, &to)
		if err != nil {
			uc.logger.Error("GetCalendar: failed to read availability for %s: %v", w.Shown, err)
			return nil, fmt.Errorf("%w: %v", ErrAvailabilityUnavailable, err)
		}
		w.Unavailable = domain.NewAvailabilitySet(entries, uc.policy)
	}

	// 3. Выбранная дата
	if req.Selected != nil {
		if _, ok := w.Click(*req.Selected); !ok {
			uc.logger.Warn("GetCalendar: selected date %s is not selectable", *req.Selected)
		}
	}

	// 4. Сетка
	resp := &Response{
		Mode:      w.Mode,
		Title:     w.Title(),
		Month:     w.Shown,
		Today:     today,
		MinDate:   w.MinDate,
		Selected:  w.Selected,
		CanGoPrev: w.CanGoPrev(),
		Weekdays:  calendar.WeekdayLabels[:],
	}

	// Соседние месяцы по правилам навигации виджета
	nav := *w
	if nav.Prev() {
		prev := nav.Shown
		resp.PrevMonth = &prev
	}
	nav = *w
	nav.Next()
	resp.NextMonth = nav.Shown

	for _, week := range w.Grid() {
		row := make([]Cell, 0, len(week))
		for _, c := range week {
			cell := Cell{Cell: c}
			if w.Mode == calendar.ModeFilter {
				cell.OnClick = w.NextFilter(c.Date)
				cell.ClearsFilter = cell.OnClick == nil
			} else if !c.Disabled {
				d := c.Date
				cell.OnClick = &d
			}
			row = append(row, cell)
		}
		resp.Weeks = append(resp.Weeks, row)
	}

	return resp, nil
}
