package get_availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type mockRepo struct {
	gotFrom, gotTo *types.Date
	gotStatuses    []domain.BookingStatus
	listFn         func() ([]domain.DateStatus, error)
}

func (m *mockRepo) ListDateStatuses(ctx context.Context, statuses []domain.BookingStatus, from, to *types.Date) ([]domain.DateStatus, error) {
	m.gotStatuses, m.gotFrom, m.gotTo = statuses, from, to
	return m.listFn()
}

func newUseCase(repo BookingRepository) *UseCase {
	uc := NewUseCase(repo, domain.PolicyActive, time.UTC, nopLogger{})
	uc.timeProvider = fixedTime{t: time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_SortedDistinctDates(t *testing.T) {
	repo := &mockRepo{listFn: func() ([]domain.DateStatus, error) {
		return []domain.DateStatus{
			{EventDate: types.MustParseDate("2025-07-01"), Status: domain.StatusConfirmed},
			{EventDate: types.MustParseDate("2025-06-15"), Status: domain.StatusPending},
			{EventDate: types.MustParseDate("2025-07-01"), Status: domain.StatusPending},
		}, nil
	}}

	resp, err := newUseCase(repo).Execute(context.Background(), &Request{})
	require.NoError(t, err)

	assert.Equal(t, []types.Date{types.MustParseDate("2025-06-15"), types.MustParseDate("2025-07-01")}, resp.Unavailable)
	assert.Equal(t, "2025-06-10", resp.Today.String())
	require.NotNil(t, repo.gotFrom)
	assert.Equal(t, "2025-06-10", repo.gotFrom.String())
	assert.Nil(t, repo.gotTo)
	assert.Equal(t, []domain.BookingStatus{domain.StatusPending, domain.StatusConfirmed}, repo.gotStatuses)
}

func TestExecute_Unreadable(t *testing.T) {
	repo := &mockRepo{listFn: func() ([]domain.DateStatus, error) { return nil, errors.New("permission denied") }}

	_, err := newUseCase(repo).Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrAvailabilityUnavailable)
}

func TestExecute_InvalidRange(t *testing.T) {
	from := types.MustParseDate("2025-08-01")
	to := types.MustParseDate("2025-07-01")

	_, err := newUseCase(&mockRepo{}).Execute(context.Background(), &Request{From: &from, To: &to})
	assert.ErrorIs(t, err, ErrInvalidRange)
}
