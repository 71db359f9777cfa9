package booking

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, isUniqueViolation(&pq.Error{Code: "23505"}))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert: %w", &pq.Error{Code: "23505"})))
	assert.False(t, isUniqueViolation(&pq.Error{Code: "23503"}))
	assert.False(t, isUniqueViolation(errors.New("23505")))
	assert.False(t, isUniqueViolation(nil))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%`, escapeLike("50%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\x`, escapeLike(`c:\x`))
	assert.Equal(t, "ana", escapeLike("ana"))
}

func TestPublicDatesView_ExposesOnlyDateAndBlockingStatuses(t *testing.T) {
	raw, err := os.ReadFile(filepath.Join("..", "..", "..", "..", "migrations", "001_init.sql"))
	require.NoError(t, err)
	sqlText := string(raw)

	start := strings.Index(sqlText, "CREATE OR REPLACE VIEW "+viewPublicDates)
	require.GreaterOrEqual(t, start, 0)
	view := sqlText[start:]
	view = view[:strings.Index(view, ";")]

	assert.Contains(t, view, "SELECT event_date, status")
	assert.Contains(t, view, "WHERE status IN ('pending', 'confirmed', 'completed')")
	assert.NotContains(t, view, "rejected")
	for _, column := range []string{"name", "email", "phone", "notes"} {
		assert.NotContains(t, view, column+",", column)
	}
}
