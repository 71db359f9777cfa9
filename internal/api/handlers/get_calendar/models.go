package get_calendar

import (
	getCalendar "github.com/chefdechef/booking-service/internal/usecase/get_calendar"
	"github.com/chefdechef/booking-service/pkg/types"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	Mode      string         `json:"mode"`
	Title     string         `json:"title"`
	Month     string         `json:"month"`
	Today     string         `json:"today"`
	MinDate   *string        `json:"minDate,omitempty"`
	Selected  *string        `json:"selected"`
	CanGoPrev bool           `json:"canGoPrev"`
	PrevMonth *string        `json:"prevMonth"`
	NextMonth string         `json:"nextMonth"`
	Weekdays  []string       `json:"weekdays"`
	Weeks     [][]CellResult `json:"weeks"`
}

// CellResult ячейка сетки
type CellResult struct {
	Date         string      `json:"date"`
	Day          int         `json:"day"`
	InMonth      bool        `json:"inMonth"`
	Disabled     bool        `json:"disabled"`
	State        string      `json:"state"`
	OnClick      *string     `json:"onClick"`
	ClearsFilter bool        `json:"clearsFilter,omitempty"`
	Mark         *MarkResult `json:"mark,omitempty"`
}

// MarkResult отметка заявок на дне (только админка)
type MarkResult struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(monthStr, selectedStr string, admin bool) (*getCalendar.Request, error) {
	req := &getCalendar.Request{Admin: admin}
	if monthStr != "" {
		m, err := types.ParseYearMonth(monthStr)
		if err != nil {
			return nil, err
		}
		req.Month = &m
	}
	if selectedStr != "" {
		d, err := types.ParseDate(selectedStr)
		if err != nil {
			return nil, err
		}
		req.Selected = &d
	}
	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	out := &CalendarResponse{
		Mode:      string(resp.Mode),
		Title:     resp.Title,
		Month:     resp.Month.String(),
		Today:     resp.Today.String(),
		MinDate:   dateString(resp.MinDate),
		Selected:  dateString(resp.Selected),
		CanGoPrev: resp.CanGoPrev,
		NextMonth: resp.NextMonth.String(),
		Weekdays:  resp.Weekdays,
		Weeks:     make([][]CellResult, 0, len(resp.Weeks)),
	}
	if resp.PrevMonth != nil {
		s := resp.PrevMonth.String()
		out.PrevMonth = &s
	}

	for _, week := range resp.Weeks {
		row := make([]CellResult, 0, len(week))
		for _, c := range week {
			cell := CellResult{
				Date:         c.Date.String(),
				Day:          c.Date.Day,
				InMonth:      c.InMonth,
				Disabled:     c.Disabled,
				State:        string(c.State),
				OnClick:      dateString(c.OnClick),
				ClearsFilter: c.ClearsFilter,
			}
			if c.Mark != nil {
				cell.Mark = &MarkResult{Status: string(c.Mark.Status), Count: c.Mark.Count}
			}
			row = append(row, cell)
		}
		out.Weeks = append(out.Weeks, row)
	}
	return out
}

func dateString(d *types.Date) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
