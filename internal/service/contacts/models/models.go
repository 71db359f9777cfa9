package models

import (
	"time"

	"github.com/chefdechef/booking-service/internal/domain"
)

// ContactMessageResponse сообщение из формы обратной связи
type ContactMessageResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
}

// ContactMessageListResponse список сообщений
type ContactMessageListResponse struct {
	Messages []ContactMessageResponse `json:"messages"`
}

// FromDomainContactMessages конвертирует domain модели в DTO
func FromDomainContactMessages(list []*domain.ContactMessage) *ContactMessageListResponse {
	resp := &ContactMessageListResponse{Messages: make([]ContactMessageResponse, 0, len(list))}
	for _, m := range list {
		resp.Messages = append(resp.Messages, ContactMessageResponse{
			ID:        m.ID.String(),
			CreatedAt: m.CreatedAt,
			Name:      m.Name,
			Email:     m.Email,
			Phone:     m.Phone,
			Message:   m.Message,
		})
	}
	return resp
}
