package get_calendar

import (
	"github.com/chefdechef/booking-service/internal/calendar"
	"github.com/chefdechef/booking-service/pkg/types"
)

// Request модель запроса месячной сетки
type Request struct {
	Month    *types.YearMonth // показываемый месяц (по умолчанию месяц выбранной даты или текущий)
	Selected *types.Date      // выбранная дата (публичная форма) или активный фильтр (админка)
	Admin    bool             // режим фильтра с отметками заявок
}

// Cell ячейка сетки с действием по нажатию
type Cell struct {
	calendar.Cell
	OnClick      *types.Date // дата, которую выберет/установит нажатие
	ClearsFilter bool        // нажатие снимает активный фильтр
}

// Response модель ответа
type Response struct {
	Mode      calendar.Mode
	Title     string
	Month     types.YearMonth
	Today     types.Date
	MinDate   *types.Date
	Selected  *types.Date
	CanGoPrev bool
	PrevMonth *types.YearMonth
	NextMonth types.YearMonth
	Weekdays  []string
	Weeks     [][]Cell
}
