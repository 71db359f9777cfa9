package get_availability

import (
	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/pkg/types"
)

// Request модель запроса занятых дат
type Request struct {
	From *types.Date // начало периода (по умолчанию сегодня)
	To   *types.Date // конец периода (опционально)
}

// Response модель ответа
type Response struct {
	Today       types.Date                // сегодня в часовом поясе ансамбля
	Unavailable []types.Date              // занятые даты по возрастанию
	Policy      domain.AvailabilityPolicy // действующая политика занятости
}
