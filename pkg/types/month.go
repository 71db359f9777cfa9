package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// MonthLayout формат месяца (YYYY-MM)
const MonthLayout = "2006-01"

var (
	// ErrInvalidMonthFormat возвращается при некорректном формате месяца
	ErrInvalidMonthFormat = errors.New("invalid month format, expected YYYY-MM")
)

// YearMonth is a calendar month.
type YearMonth struct {
	Year  int
	Month time.Month
}

// MonthOf returns the month containing d.
func MonthOf(d Date) YearMonth {
	return YearMonth{Year: d.Year, Month: d.Month}
}

// ParseYearMonth parses "YYYY-MM".
func ParseYearMonth(s string) (YearMonth, error) {
	t, err := time.Parse(MonthLayout, s)
	if err != nil {
		return YearMonth{}, fmt.Errorf("%w: %q", ErrInvalidMonthFormat, s)
	}
	return YearMonth{Year: t.Year(), Month: t.Month()}, nil
}

// String formats the month as YYYY-MM
func (m YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// FirstDay returns the 1st of the month.
func (m YearMonth) FirstDay() Date {
	return Date{Year: m.Year, Month: m.Month, Day: 1}
}

// LastDay returns the last day of the month.
func (m YearMonth) LastDay() Date {
	return m.AddMonths(1).FirstDay().AddDays(-1)
}

// AddMonths shifts the month by n.
func (m YearMonth) AddMonths(n int) YearMonth {
	t := time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).AddDate(0, n, 0)
	return YearMonth{Year: t.Year(), Month: t.Month()}
}

// Compare returns -1, 0 or +1.
func (m YearMonth) Compare(other YearMonth) int {
	if m.Year != other.Year {
		return cmpInt(m.Year, other.Year)
	}
	return cmpInt(int(m.Month), int(other.Month))
}

// Contains reports whether d falls into the month.
func (m YearMonth) Contains(d Date) bool {
	return d.Year == m.Year && d.Month == m.Month
}

// MarshalJSON encodes the month as "YYYY-MM".
func (m YearMonth) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}
