package create_booking

import (
	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/internal/service/notifications"
	"github.com/chefdechef/booking-service/pkg/types"
)

// Request модель запроса на создание заявки
type Request struct {
	EventDate types.Date        // Дата события
	EventType string            // Тип события (nuntă, botez, ...)
	Location  string            // Место проведения
	StartTime *types.TimeString // Время начала (опционально)
	Name      string            // Имя клиента
	Email     string            // Email клиента
	Phone     string            // Телефон клиента
	Notes     *string           // Пожелания клиента (опционально)
}

// Response модель ответа с созданной заявкой
type Response struct {
	Booking      *domain.Booking      // Заявка в сохраненном виде
	Notification notifications.Result // Исход отправки писем
}
