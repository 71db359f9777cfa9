package domain

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage сообщение из формы обратной связи
type ContactMessage struct {
	ID        uuid.UUID
	CreatedAt time.Time
	Name      string
	Email     string
	Phone     string
	Message   string
}

// ClientRecord проекция заявки или сообщения для построения списка клиентов
type ClientRecord struct {
	Name      string
	Email     string
	Phone     string
	Message   string
	Source    ClientSource
	CreatedAt time.Time
}
