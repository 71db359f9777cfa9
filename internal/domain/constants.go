package domain

import (
	"strings"

	"github.com/chefdechef/booking-service/pkg/types"
)

// DefaultCurrency локальная валюта (MDL)
const DefaultCurrency = CurrencyMDL

// ReportingCurrency валюта итоговой статистики
const ReportingCurrency = CurrencyMDL

// Business validation constants
const (
	MaxNameLength      = 200
	MaxEmailLength     = 254
	MaxPhoneLength     = 50
	MaxEventTypeLength = 100
	MaxLocationLength  = 300
	MaxNotesLength     = 2000
	MaxMessageLength   = 5000
)

// Time format constants
const (
	TimeFormat     = types.TimeFormat // HH:MM
	DateFormat     = types.DateLayout // YYYY-MM-DD
	NoteTimeFormat = "2006-01-02 15:04"
)

// ActiveStatuses статусы, блокирующие дату
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// AllStatuses все статусы бронирования
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCompleted,
	StatusRejected,
}

// BookingSortFields скалярные поля, по которым разрешена сортировка
var BookingSortFields = []string{
	"event_date",
	"created_at",
	"updated_at",
	"name",
	"email",
	"phone",
	"event_type",
	"location",
	"start_time",
	"status",
	"price",
	"prepayment",
	"payment_status",
	"currency",
}

// DefaultBookingSort сортировка по умолчанию
const DefaultBookingSort = "event_date"

// EventTypes типы событий из публичной формы
var EventTypes = []string{"Nuntă", "Cumătrie", "Petrecere", "Corporativă", "Altul"}

// OtherEventType тип для значений вне списка
const OtherEventType = "Altul"

// EventTypeCategory приводит свободный ввод к одному из EventTypes
// (без учета регистра), иначе возвращает OtherEventType
func EventTypeCategory(s string) string {
	s = strings.TrimSpace(s)
	for _, t := range EventTypes {
		if strings.EqualFold(t, s) {
			return t
		}
	}
	return OtherEventType
}
