package create_contact_message

import (
	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/internal/service/notifications"
)

// Request модель сообщения из формы обратной связи
type Request struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// Response модель ответа с сохраненным сообщением
type Response struct {
	Message      *domain.ContactMessage
	Notification notifications.Result
}
