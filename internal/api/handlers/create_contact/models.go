package create_contact

import (
	"github.com/chefdechef/booking-service/internal/service/notifications"
	createContact "github.com/chefdechef/booking-service/internal/usecase/create_contact_message"
)

// ContactRequest HTTP request model
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ContactResponse HTTP response model
type ContactResponse struct {
	Message          string `json:"message"`
	NotificationSent bool   `json:"notificationSent"`
	ID               string `json:"id"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ContactRequest) ToUseCaseRequest() *createContact.Request {
	return &createContact.Request{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createContact.Response) *ContactResponse {
	msg := msgSent
	switch resp.Notification.Reason {
	case notifications.ReasonNotConfigured:
		msg = msgSentEmailNotConfigured
	case notifications.ReasonSendFailed:
		msg = msgSentEmailFailed
	}
	return &ContactResponse{
		Message:          msg,
		NotificationSent: resp.Notification.Delivered,
		ID:               resp.Message.ID.String(),
	}
}
