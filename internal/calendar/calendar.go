package calendar

import (
	"fmt"
	"time"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/pkg/types"
)

// Mode режим взаимодействия с календарем
type Mode string

const (
	// ModeSelect публичная форма: клик выбирает дату
	ModeSelect Mode = "select"
	// ModeFilter панель администратора: клик включает/снимает фильтр по дате
	ModeFilter Mode = "filter"
)

// CellState визуальное состояние ячейки, по убыванию приоритета
type CellState string

const (
	StateSelected CellState = "selected"
	StateDisabled CellState = "disabled"
	StateToday    CellState = "today"
	StateDefault  CellState = "default"
)

// WeekdayLabels подписи дней недели, неделя начинается с понедельника
var WeekdayLabels = [7]string{"Lu", "Ma", "Mi", "Jo", "Vi", "Sâ", "Du"}

var monthNames = [12]string{
	"ianuarie", "februarie", "martie", "aprilie", "mai", "iunie",
	"iulie", "august", "septembrie", "octombrie", "noiembrie", "decembrie",
}

// Mark отметка администратора на дне: доминирующий статус и число заявок
type Mark struct {
	Status domain.BookingStatus
	Count  int
}

// Cell ячейка сетки
type Cell struct {
	Date     types.Date
	InMonth  bool
	Disabled bool
	State    CellState
	Mark     *Mark
}

// Widget месячная сетка дат
type Widget struct {
	Shown       types.YearMonth
	MinDate     *types.Date // минимальная выбираемая дата (включительно)
	Selected    *types.Date // выбранная дата или активный фильтр
	Unavailable *domain.AvailabilitySet
	Today       types.Date
	Mode        Mode
	Marks       map[types.Date]Mark
}

// Title заголовок месяца, например "iunie 2025"
func (w *Widget) Title() string {
	return fmt.Sprintf("%s %d", monthNames[w.Shown.Month-1], w.Shown.Year)
}

// IsDisabled ячейка недоступна: раньше MinDate или дата занята
func (w *Widget) IsDisabled(d types.Date) bool {
	if w.MinDate != nil && d.Before(*w.MinDate) {
		return true
	}
	return w.Unavailable.Contains(d)
}

// StateOf вычисляет состояние с приоритетом selected > disabled > today > default
func (w *Widget) StateOf(d types.Date) CellState {
	switch {
	case w.Selected != nil && w.Selected.Equal(d):
		return StateSelected
	case w.IsDisabled(d):
		return StateDisabled
	case !w.Today.IsZero() && w.Today.Equal(d):
		return StateToday
	default:
		return StateDefault
	}
}

// GridRange первый и последний день сетки показанного месяца
func (w *Widget) GridRange() (types.Date, types.Date) {
	return startOfWeek(w.Shown.FirstDay()), endOfWeek(w.Shown.LastDay())
}

// Grid возвращает недели по 7 дней от понедельника до воскресенья,
// покрывающие весь показанный месяц
func (w *Widget) Grid() [][]Cell {
	start, end := w.GridRange()

	var (
		weeks [][]Cell
		week  []Cell
	)
	for d := start; !d.After(end); d = d.AddDays(1) {
		cell := Cell{
			Date:     d,
			InMonth:  w.Shown.Contains(d),
			Disabled: w.IsDisabled(d),
			State:    w.StateOf(d),
		}
		if m, ok := w.Marks[d]; ok {
			mark := m
			cell.Mark = &mark
		}
		week = append(week, cell)
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = nil
		}
	}
	return weeks
}

// CanGoPrev нельзя перейти в месяц до месяца минимальной даты
func (w *Widget) CanGoPrev() bool {
	if w.MinDate == nil {
		return true
	}
	return w.Shown.Compare(types.MonthOf(*w.MinDate)) > 0
}

// Prev переходит на предыдущий месяц, если это разрешено
func (w *Widget) Prev() bool {
	if !w.CanGoPrev() {
		return false
	}
	w.Shown = w.Shown.AddMonths(-1)
	return true
}

// Next переходит на следующий месяц
func (w *Widget) Next() {
	w.Shown = w.Shown.AddMonths(1)
}

// Click обрабатывает нажатие на дату.
// В режиме выбора возвращает выбранную дату (ok=false для недоступных ячеек).
// В режиме фильтра повторное нажатие на активную дату снимает фильтр (nil, true).
func (w *Widget) Click(d types.Date) (*types.Date, bool) {
	if w.Mode == ModeFilter {
		if w.Selected != nil && w.Selected.Equal(d) {
			w.Selected = nil
			return nil, true
		}
		picked := d
		w.Selected = &picked
		return &picked, true
	}

	if w.IsDisabled(d) {
		return nil, false
	}
	picked := d
	w.Selected = &picked
	return &picked, true
}

// NextFilter значение фильтра, которое даст нажатие на d в режиме фильтра
func (w *Widget) NextFilter(d types.Date) *types.Date {
	if w.Selected != nil && w.Selected.Equal(d) {
		return nil
	}
	picked := d
	return &picked
}

// BuildMarks считает для каждого дня доминирующий статус
// (confirmed > pending > completed; rejected не отмечается) и число заявок
func BuildMarks(entries []domain.DateStatus) map[types.Date]Mark {
	marks := make(map[types.Date]Mark)
	for _, e := range entries {
		rank := statusRank(e.Status)
		if rank == 0 {
			continue
		}
		m := marks[e.EventDate]
		m.Count++
		if rank > statusRank(m.Status) {
			m.Status = e.Status
		}
		marks[e.EventDate] = m
	}
	return marks
}

func statusRank(s domain.BookingStatus) int {
	switch s {
	case domain.StatusConfirmed:
		return 3
	case domain.StatusPending:
		return 2
	case domain.StatusCompleted:
		return 1
	default:
		return 0
	}
}

// startOfWeek понедельник, на который приходится или который предшествует d
func startOfWeek(d types.Date) types.Date {
	return d.AddDays(-WeekdayIndex(d.Weekday()))
}

// endOfWeek воскресенье, на которое приходится или которое следует за d
func endOfWeek(d types.Date) types.Date {
	return d.AddDays(6 - WeekdayIndex(d.Weekday()))
}

// WeekdayIndex номер дня недели от понедельника (0) до воскресенья (6)
func WeekdayIndex(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}
