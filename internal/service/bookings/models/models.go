package models

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPaymentStatus возвращается при некорректном статусе оплаты
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidCurrency возвращается при неподдерживаемой валюте
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrNegativeAmount возвращается при отрицательной сумме
	ErrNegativeAmount = errors.New("amount must not be negative")

	// ErrInvalidSort возвращается при неизвестном поле сортировки
	ErrInvalidSort = errors.New("invalid sort field")

	// ErrInvalidOrder возвращается при неизвестном направлении сортировки
	ErrInvalidOrder = errors.New("invalid sort order, expected asc or desc")
)

// Request модели

// ListBookingsRequest параметры списка бронирований (строки из query)
type ListBookingsRequest struct {
	Query  string
	Date   string // YYYY-MM-DD, точное совпадение
	Status string
	Sort   string
	Order  string // asc | desc
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Query:  strings.TrimSpace(r.Query),
		SortBy: domain.DefaultBookingSort,
	}

	if r.Date != "" {
		d, err := types.ParseDate(r.Date)
		if err != nil {
			return filter, err
		}
		filter.Date = &d
	}

	if r.Status != "" {
		status, err := ToDomainBookingStatus(r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.Sort != "" {
		if !isSortField(r.Sort) {
			return filter, fmt.Errorf("%w: %q", ErrInvalidSort, r.Sort)
		}
		filter.SortBy = r.Sort
	}

	switch strings.ToLower(r.Order) {
	case "", "asc":
	case "desc":
		filter.SortDesc = true
	default:
		return filter, fmt.Errorf("%w: %q", ErrInvalidOrder, r.Order)
	}

	return filter, nil
}

// UpdateBookingRequest частичное обновление полей администратора.
// Отсутствующий ключ не меняет поле, null или пустая строка очищают его.
type UpdateBookingRequest struct {
	Status        *string                `json:"status,omitempty"`
	Price         types.Amount           `json:"price"`
	Prepayment    types.Amount           `json:"prepayment"`
	PaymentStatus types.Optional[string] `json:"paymentStatus"`
	Currency      *string                `json:"currency,omitempty"`
	InternalNotes types.Optional[string] `json:"internalNotes"`
}

// ToDomainUpdate валидирует значения и конвертирует в domain.BookingAdminUpdate
func (r *UpdateBookingRequest) ToDomainUpdate() (domain.BookingAdminUpdate, error) {
	var upd domain.BookingAdminUpdate

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return upd, err
		}
		upd.Status = &status
	}

	if r.Price.Set {
		if r.Price.Value != nil && *r.Price.Value < 0 {
			return upd, fmt.Errorf("%w: price", ErrNegativeAmount)
		}
		upd.Price = types.Optional[float64]{Set: true, Value: r.Price.Value}
	}

	if r.Prepayment.Set {
		if r.Prepayment.Value != nil && *r.Prepayment.Value < 0 {
			return upd, fmt.Errorf("%w: prepayment", ErrNegativeAmount)
		}
		upd.Prepayment = types.Optional[float64]{Set: true, Value: r.Prepayment.Value}
	}

	if r.PaymentStatus.Set {
		if r.PaymentStatus.Value == nil || strings.TrimSpace(*r.PaymentStatus.Value) == "" {
			upd.PaymentStatus = types.Null[domain.PaymentStatus]()
		} else {
			ps := domain.PaymentStatus(strings.TrimSpace(*r.PaymentStatus.Value))
			if !ps.IsValid() {
				return upd, fmt.Errorf("%w: %q", ErrInvalidPaymentStatus, ps)
			}
			upd.PaymentStatus = types.Some(ps)
		}
	}

	if r.Currency != nil {
		c := domain.Currency(strings.ToUpper(strings.TrimSpace(*r.Currency)))
		if !c.IsValid() {
			return upd, fmt.Errorf("%w: %q", ErrInvalidCurrency, *r.Currency)
		}
		upd.Currency = &c
	}

	if r.InternalNotes.Set {
		if r.InternalNotes.Value == nil || strings.TrimSpace(*r.InternalNotes.Value) == "" {
			upd.InternalNotes = types.Null[string]()
		} else {
			upd.InternalNotes = types.Some(*r.InternalNotes.Value)
		}
	}

	return upd, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        string     `json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	EventDate types.Date `json:"eventDate"` // "2025-06-15"
	EventType string     `json:"eventType"`
	Location  string     `json:"location"`
	StartTime *string    `json:"startTime"` // "18:00"
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Notes     *string    `json:"notes"`

	Status        string   `json:"status"`
	Price         *float64 `json:"price"`
	Prepayment    *float64 `json:"prepayment"`
	PaymentStatus *string  `json:"paymentStatus"`
	Currency      string   `json:"currency"`
	InternalNotes *string  `json:"internalNotes"`

	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:            b.ID.String(),
		CreatedAt:     b.CreatedAt,
		EventDate:     b.EventDate,
		EventType:     b.EventType,
		Location:      b.Location,
		Name:          b.Name,
		Email:         b.Email,
		Phone:         b.Phone,
		Notes:         b.Notes,
		Status:        string(b.Status),
		Price:         b.Price,
		Prepayment:    b.Prepayment,
		Currency:      string(b.Currency),
		InternalNotes: b.InternalNotes,
		UpdatedAt:     b.UpdatedAt,
	}

	if b.StartTime != nil {
		st := b.StartTime.String()
		resp.StartTime = &st
	}
	if b.PaymentStatus != nil {
		ps := string(*b.PaymentStatus)
		resp.PaymentStatus = &ps
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(strings.ToLower(strings.TrimSpace(status)))
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s, nil
}

func isSortField(field string) bool {
	for _, f := range domain.BookingSortFields {
		if f == field {
			return true
		}
	}
	return false
}
