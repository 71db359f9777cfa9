package stats

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/internal/integrations/exchangerates"
	"github.com/chefdechef/booking-service/internal/service/stats/models"
	"github.com/chefdechef/booking-service/pkg/types"
)

// Service сервис сводной статистики
type Service struct {
	bookingRepo BookingRepository
	rates       RatesProvider
	location    *time.Location
	now         func() time.Time
	logger      Logger
}

// NewService создает новый экземпляр сервиса статистики.
// location задает часовой пояс, в котором определяется "сегодня".
func NewService(bookingRepo BookingRepository, rates RatesProvider, location *time.Location, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		rates:       rates,
		location:    location,
		now:         time.Now,
		logger:      logger,
	}
}

// Get считает статистику по всем заявкам
func (s *Service) Get(ctx context.Context) (*models.StatsResponse, error) {
	bookings, err := s.bookingRepo.List(ctx, domain.BookingsFilter{})
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	resp := &models.StatsResponse{
		TotalBookings:   len(bookings),
		StatusCounts:    make(map[string]int, len(domain.AllStatuses)),
		EventTypeCounts: make(map[string]int),
		RevenueCurrency: string(domain.ReportingCurrency),
	}
	for _, st := range domain.AllStatuses {
		resp.StatusCounts[string(st)] = 0
	}

	var rates *domain.ExchangeRates
	snap, err := s.rates.Get(ctx)
	if err != nil {
		s.logger.Warn("Get: exchange rates unavailable, foreign-currency revenue skipped: %v", err)
		resp.RatesUnavailable = true
	} else {
		rates = snap.Rates
		resp.Rates = ratesInfo(snap)
	}

	today := types.Today(s.now(), s.location)
	revenue := 0.0

	for _, b := range bookings {
		resp.StatusCounts[string(b.Status)]++
		resp.EventTypeCounts[b.EventType]++

		switch b.Status {
		case domain.StatusPending:
			resp.PendingRequests++
		case domain.StatusConfirmed:
			if !b.EventDate.Before(today) {
				resp.UpcomingEvents++
			}
		case domain.StatusCompleted:
			resp.CompletedEvents++
			if b.Price == nil || *b.Price == 0 {
				continue
			}
			currency := b.Currency
			if currency == "" {
				currency = domain.DefaultCurrency
			}
			amount, ok := rates.ToReporting(*b.Price, currency)
			if !ok {
				resp.UnconvertedBookings++
				continue
			}
			revenue += amount
		}
	}

	resp.TotalRevenue = math.Round(revenue*100) / 100

	s.logger.Info("Get: stats over %d bookings, revenue=%.2f %s", len(bookings), resp.TotalRevenue, resp.RevenueCurrency)
	return resp, nil
}

func ratesInfo(snap exchangerates.Snapshot) *models.RatesInfo {
	info := &models.RatesInfo{Stale: snap.Stale}
	if snap.Rates == nil {
		return info
	}
	info.Date = snap.Rates.Date
	if v, ok := snap.Rates.ToReporting(1, domain.CurrencyEUR); ok {
		info.EURtoMDL = roundRate(v)
	}
	if v, ok := snap.Rates.ToReporting(1, domain.CurrencyUSD); ok {
		info.USDtoMDL = roundRate(v)
	}
	return info
}

func roundRate(v float64) float64 {
	return math.Round(v*10000) / 10000
}
