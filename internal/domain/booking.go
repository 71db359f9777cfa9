package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/chefdechef/booking-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusRejected  BookingStatus = "rejected"
)

// transitions допустимые переходы статусов; completed и rejected терминальные
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusRejected},
	StatusConfirmed: {StatusCompleted, StatusRejected},
}

// IsValid returns true for known statuses
func (s BookingStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusRejected:
		return true
	}
	return false
}

// IsActive returns true if a booking in this status blocks its date
func (s BookingStatus) IsActive() bool {
	return s == StatusPending || s == StatusConfirmed
}

// IsTerminal returns true if no further transitions are defined
func (s BookingStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusRejected
}

// CanTransitionTo reports whether the admin may move a booking from s to next.
// Keeping the current status is always allowed.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// PaymentStatus статус оплаты (значения совпадают с хранимыми в БД)
type PaymentStatus string

const (
	PaymentUnpaid      PaymentStatus = "neplatit"
	PaymentAdvancePaid PaymentStatus = "avans platit"
	PaymentPaidInFull  PaymentStatus = "platit integral"
)

// IsValid returns true for known payment statuses
func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentUnpaid, PaymentAdvancePaid, PaymentPaidInFull:
		return true
	}
	return false
}

// Currency валюта цены бронирования
type Currency string

const (
	CurrencyMDL Currency = "MDL"
	CurrencyEUR Currency = "EUR"
	CurrencyUSD Currency = "USD"
)

// IsValid returns true for supported currencies
func (c Currency) IsValid() bool {
	switch c {
	case CurrencyMDL, CurrencyEUR, CurrencyUSD:
		return true
	}
	return false
}

// Booking заявка на выступление ансамбля
type Booking struct {
	ID        uuid.UUID
	CreatedAt time.Time

	// Данные клиента, неизменяемые после создания
	EventDate types.Date
	EventType string
	Location  string
	StartTime *types.TimeString
	Name      string
	Email     string
	Phone     string
	Notes     *string

	// Поля администратора
	Status        BookingStatus
	Price         *float64
	Prepayment    *float64
	PaymentStatus *PaymentStatus
	Currency      Currency
	InternalNotes *string

	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks its event date
func (b *Booking) IsActive() bool {
	return b.Status.IsActive()
}

// NewPendingBooking создает заявку в начальном статусе
func NewPendingBooking(date types.Date, eventType, location, name, email, phone string, startTime *types.TimeString, notes *string) *Booking {
	return &Booking{
		EventDate: date,
		EventType: eventType,
		Location:  location,
		StartTime: startTime,
		Name:      name,
		Email:     email,
		Phone:     phone,
		Notes:     notes,
		Status:    StatusPending,
		Currency:  DefaultCurrency,
	}
}

// BookingAdminUpdate частичное обновление полей администратора.
// Status/Currency == nil и Optional.Set == false означают "не менять".
type BookingAdminUpdate struct {
	Status        *BookingStatus
	Price         types.Optional[float64]
	Prepayment    types.Optional[float64]
	PaymentStatus types.Optional[PaymentStatus]
	Currency      *Currency
	InternalNotes types.Optional[string]
}

// IsEmpty returns true when nothing is to be changed
func (u BookingAdminUpdate) IsEmpty() bool {
	return u.Status == nil && !u.Price.Set && !u.Prepayment.Set &&
		!u.PaymentStatus.Set && u.Currency == nil && !u.InternalNotes.Set
}

// BookingsFilter фильтр списка бронирований для администратора
type BookingsFilter struct {
	Query    string         // поиск по имени, email, телефону (без учета регистра)
	Date     *types.Date    // точное совпадение даты события
	Status   *BookingStatus // фильтр по статусу
	SortBy   string         // поле сортировки
	SortDesc bool
}

// DateStatus проекция бронирования без персональных данных
type DateStatus struct {
	EventDate types.Date
	Status    BookingStatus
}
