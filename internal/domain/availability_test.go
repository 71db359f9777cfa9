package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefdechef/booking-service/pkg/types"
)

func mustDate(s string) types.Date {
	return types.MustParseDate(s)
}

func TestNewAvailabilitySet_ActivePolicy(t *testing.T) {
	entries := []DateStatus{
		{EventDate: mustDate("2025-06-15"), Status: StatusPending},
		{EventDate: mustDate("2025-06-20"), Status: StatusConfirmed},
		{EventDate: mustDate("2025-06-21"), Status: StatusCompleted},
		{EventDate: mustDate("2025-06-22"), Status: StatusRejected},
		// отклоненная заявка не освобождает дату, если на ней есть активная
		{EventDate: mustDate("2025-06-20"), Status: StatusRejected},
	}

	set := NewAvailabilitySet(entries, PolicyActive)

	assert.True(t, set.Contains(mustDate("2025-06-15")))
	assert.True(t, set.Contains(mustDate("2025-06-20")))
	assert.False(t, set.Contains(mustDate("2025-06-21")))
	assert.False(t, set.Contains(mustDate("2025-06-22")))
	assert.False(t, set.Contains(mustDate("2025-06-14")))
	assert.False(t, set.Contains(mustDate("2025-06-16")))
	assert.Equal(t, []types.Date{mustDate("2025-06-15"), mustDate("2025-06-20")}, set.Dates())
}

func TestNewAvailabilitySet_ActiveAndCompletedPolicy(t *testing.T) {
	entries := []DateStatus{
		{EventDate: mustDate("2025-06-21"), Status: StatusCompleted},
		{EventDate: mustDate("2025-06-22"), Status: StatusRejected},
	}

	set := NewAvailabilitySet(entries, PolicyActiveAndCompleted)

	assert.True(t, set.Contains(mustDate("2025-06-21")))
	assert.False(t, set.Contains(mustDate("2025-06-22")))
	assert.Equal(t, 1, set.Len())
}

func TestParseAvailabilityPolicy(t *testing.T) {
	p, err := ParseAvailabilityPolicy("")
	require.NoError(t, err)
	assert.Equal(t, PolicyActive, p)

	p, err = ParseAvailabilityPolicy("active_and_completed")
	require.NoError(t, err)
	assert.Equal(t, PolicyActiveAndCompleted, p)

	_, err = ParseAvailabilityPolicy("everything")
	assert.ErrorIs(t, err, ErrUnknownAvailabilityPolicy)
}

func TestAvailabilitySet_ValidateCandidate(t *testing.T) {
	today := mustDate("2025-06-10")
	set := NewAvailabilitySet([]DateStatus{{EventDate: mustDate("2025-06-15"), Status: StatusConfirmed}}, PolicyActive)

	assert.ErrorIs(t, set.ValidateCandidate(types.Date{}, today), ErrDateRequired)
	assert.ErrorIs(t, set.ValidateCandidate(mustDate("2025-06-09"), today), ErrDateInPast)
	assert.ErrorIs(t, set.ValidateCandidate(mustDate("2025-06-15"), today), ErrDateUnavailable)
	assert.NoError(t, set.ValidateCandidate(today, today))
	assert.NoError(t, set.ValidateCandidate(mustDate("2025-06-16"), today))
}

func TestAvailabilitySet_RejectFreesDate(t *testing.T) {
	date := mustDate("2025-07-01")

	before := NewAvailabilitySet([]DateStatus{{EventDate: date, Status: StatusPending}}, PolicyActive)
	assert.True(t, before.Contains(date))

	after := NewAvailabilitySet([]DateStatus{{EventDate: date, Status: StatusRejected}}, PolicyActive)
	assert.False(t, after.Contains(date))
	assert.NoError(t, after.ValidateCandidate(date, mustDate("2025-06-01")))
}

func TestAvailabilitySet_Nil(t *testing.T) {
	var set *AvailabilitySet
	assert.False(t, set.Contains(mustDate("2025-06-15")))
	assert.Empty(t, set.Dates())
}
