package notifications

import (
	"time"

	"github.com/google/uuid"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/pkg/types"
)

// Routing keys доменных событий
const (
	EventBookingCreated = "booking.created"
	EventBookingUpdated = "booking.updated"
	EventContactCreated = "contact.created"
)

// Виды уведомлений для метрик
const (
	KindBooking = "booking"
	KindContact = "contact"
)

// Reason причина, по которой письмо не доставлено
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonNotConfigured Reason = "not_configured"
	ReasonSendFailed    Reason = "send_failed"
)

// Result исход отправки уведомления. Ошибки наружу не отдаются:
// сохраненная запись не должна откатываться из-за почты.
type Result struct {
	Delivered bool
	Reason    Reason
}

// Outcome метка для метрик
func (r Result) Outcome() string {
	if r.Delivered {
		return "delivered"
	}
	return string(r.Reason)
}

// Config параметры отправки писем
type Config struct {
	From       string        // адрес отправителя без display name
	AdminEmail string        // получатель административных писем
	SiteURL    string        // базовый адрес сайта для ссылки на панель
	Timeout    time.Duration // таймаут на одну отправку
}

// BookingEvent полезная нагрузка событий booking.*
type BookingEvent struct {
	ID         uuid.UUID            `json:"id"`
	EventDate  types.Date           `json:"eventDate"`
	EventType  string               `json:"eventType"`
	Location   string               `json:"location"`
	Status     domain.BookingStatus `json:"status"`
	Email      string               `json:"email"`
	OccurredAt time.Time            `json:"occurredAt"`
}

// ContactEvent полезная нагрузка события contact.created
type ContactEvent struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	OccurredAt time.Time `json:"occurredAt"`
}

func newBookingEvent(b *domain.Booking, at time.Time) BookingEvent {
	return BookingEvent{
		ID:         b.ID,
		EventDate:  b.EventDate,
		EventType:  b.EventType,
		Location:   b.Location,
		Status:     b.Status,
		Email:      b.Email,
		OccurredAt: at.UTC(),
	}
}
