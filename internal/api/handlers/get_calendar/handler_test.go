package get_calendar

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefdechef/booking-service/internal/calendar"
	"github.com/chefdechef/booking-service/internal/domain"
	getCalendar "github.com/chefdechef/booking-service/internal/usecase/get_calendar"
	"github.com/chefdechef/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockUseCase struct {
	got       *getCalendar.Request
	executeFn func(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
	m.got = req
	return m.executeFn(ctx, req)
}

func adminResponse() *getCalendar.Response {
	d := types.MustParseDate("2025-05-12")
	next := types.MustParseDate("2025-05-13")
	return &getCalendar.Response{
		Mode:      calendar.ModeFilter,
		Title:     "mai 2025",
		Month:     types.YearMonth{Year: 2025, Month: time.May},
		Today:     types.MustParseDate("2025-06-10"),
		Selected:  &d,
		CanGoPrev: true,
		NextMonth: types.YearMonth{Year: 2025, Month: time.June},
		Weekdays:  calendar.WeekdayLabels[:],
		Weeks: [][]getCalendar.Cell{{
			{
				Cell: calendar.Cell{
					Date:    d,
					InMonth: true,
					State:   calendar.StateSelected,
					Mark:    &calendar.Mark{Status: domain.StatusConfirmed, Count: 2},
				},
				ClearsFilter: true,
			},
			{
				Cell:    calendar.Cell{Date: next, InMonth: true, State: calendar.StateDefault},
				OnClick: &next,
			},
		}},
	}
}

func TestHandleAdmin(t *testing.T) {
	uc := &mockUseCase{executeFn: func(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
		return adminResponse(), nil
	}}

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).HandleAdmin(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/calendar?month=2025-05&filter=2025-05-12", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.True(t, uc.got.Admin)
	require.NotNil(t, uc.got.Month)
	assert.Equal(t, "2025-05", uc.got.Month.String())
	require.NotNil(t, uc.got.Selected)

	var body CalendarResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "filter", body.Mode)
	assert.Equal(t, "mai 2025", body.Title)
	require.Len(t, body.Weeks, 1)

	first := body.Weeks[0][0]
	assert.Equal(t, 12, first.Day)
	assert.True(t, first.ClearsFilter)
	assert.Nil(t, first.OnClick)
	require.NotNil(t, first.Mark)
	assert.Equal(t, "confirmed", first.Mark.Status)
	assert.Equal(t, 2, first.Mark.Count)

	second := body.Weeks[0][1]
	require.NotNil(t, second.OnClick)
	assert.Equal(t, "2025-05-13", *second.OnClick)
}

func TestHandle_PublicUsesSelectedParam(t *testing.T) {
	uc := &mockUseCase{executeFn: func(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
		return adminResponse(), nil
	}}

	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/calendar?selected=2025-07-05&filter=2025-01-01", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.False(t, uc.got.Admin)
	assert.Nil(t, uc.got.Month)
	require.NotNil(t, uc.got.Selected)
	assert.Equal(t, "2025-07-05", uc.got.Selected.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		err    error
		status int
	}{
		{"bad month", "/api/v1/calendar?month=2025-13", nil, http.StatusBadRequest},
		{"bad selected", "/api/v1/calendar?selected=15.06.2025", nil, http.StatusBadRequest},
		{"unreadable", "/api/v1/calendar", getCalendar.ErrAvailabilityUnavailable, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{executeFn: func(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
				return nil, tt.err
			}}
			rec := httptest.NewRecorder()
			NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
