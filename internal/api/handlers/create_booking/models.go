package create_booking

import (
	"fmt"
	"strings"
	"time"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/internal/service/notifications"
	createBooking "github.com/chefdechef/booking-service/internal/usecase/create_booking"
	"github.com/chefdechef/booking-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	EventDate string  `json:"eventDate"` // "2025-06-15"
	EventType string  `json:"eventType"`
	Location  string  `json:"location"`
	StartTime *string `json:"startTime,omitempty"` // "18:00"
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Notes     *string `json:"notes,omitempty"`
}

// BookingResponse HTTP response model (только данные, отправленные клиентом)
type BookingResponse struct {
	ID        string  `json:"id"`
	EventDate string  `json:"eventDate"`
	EventType string  `json:"eventType"`
	Location  string  `json:"location"`
	StartTime *string `json:"startTime,omitempty"`
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Notes     *string `json:"notes,omitempty"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"createdAt"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Message          string           `json:"message"`
	NotificationSent bool             `json:"notificationSent"`
	Booking          *BookingResponse `json:"booking"`
}

type parseError struct {
	field string
	err   error
}

func (e *parseError) Error() string { return fmt.Sprintf("%s: %v", e.field, e.err) }
func (e *parseError) Unwrap() error { return e.err }

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	req := &createBooking.Request{
		EventType: r.EventType,
		Location:  r.Location,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Notes:     r.Notes,
	}

	// Пустая дата отклоняется валидацией use case
	if s := strings.TrimSpace(r.EventDate); s != "" {
		d, err := types.ParseDate(s)
		if err != nil {
			return nil, &parseError{field: "eventDate", err: err}
		}
		req.EventDate = d
	}

	if r.StartTime != nil && strings.TrimSpace(*r.StartTime) != "" {
		t, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, &parseError{field: "startTime", err: err}
		}
		req.StartTime = &t
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *CreateBookingResponse {
	return &CreateBookingResponse{
		Message:          successMessage(resp.Notification),
		NotificationSent: resp.Notification.Delivered,
		Booking:          fromDomainBooking(resp.Booking),
	}
}

func successMessage(res notifications.Result) string {
	switch res.Reason {
	case notifications.ReasonNotConfigured:
		return msgCreatedEmailNotConfigured
	case notifications.ReasonSendFailed:
		return msgCreatedEmailFailed
	default:
		return msgCreated
	}
}

func fromDomainBooking(b *domain.Booking) *BookingResponse {
	resp := &BookingResponse{
		ID:        b.ID.String(),
		EventDate: b.EventDate.String(),
		EventType: b.EventType,
		Location:  b.Location,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     b.Phone,
		Notes:     b.Notes,
		Status:    string(b.Status),
		CreatedAt: b.CreatedAt.Format(time.RFC3339),
	}
	if b.StartTime != nil {
		s := b.StartTime.String()
		resp.StartTime = &s
	}
	return resp
}
