package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClient_ApplySubmission_CaseInsensitiveEmail(t *testing.T) {
	first := time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)
	second := time.Date(2025, 5, 3, 18, 45, 0, 0, time.UTC)

	c := &Client{}
	c.ApplySubmission(Submission{
		Name: "Jane", Email: "jane@x.com", Phone: "+373 60 111 222",
		Message: "Salut", Source: SourceContact, At: first,
	})
	c.ApplySubmission(Submission{
		Name: "Jane Doe", Email: "Jane@X.com", Phone: "+37369000000",
		Note: "Nuntă în aer liber", Source: SourceBooking, At: second,
	})

	assert.Equal(t, "Jane Doe", c.Name)
	assert.Equal(t, []string{"jane@x.com"}, c.Emails)
	assert.Equal(t, []string{"+373 60 111 222", "+37369000000"}, c.Phones)
	assert.Equal(t, "[2025-05-03 18:45] Nuntă în aer liber", c.Notes)
	assert.Equal(t, "Salut", c.LastMessage)
	assert.Equal(t, SourceBooking, c.Source)
}

func TestClient_ApplySubmission_NotesAppendOnly(t *testing.T) {
	c := &Client{Notes: "[2025-01-01 09:00] prima", AdminNotes: "VIP"}

	changed := c.ApplySubmission(Submission{
		Name: "Ion", Email: "ion@x.md", Note: "a doua",
		At: time.Date(2025, 2, 2, 12, 30, 0, 0, time.UTC),
	})

	assert.True(t, changed)
	assert.Equal(t, "[2025-01-01 09:00] prima\n[2025-02-02 12:30] a doua", c.Notes)
	assert.Equal(t, "VIP", c.AdminNotes)
}

func TestClient_ApplySubmission_Idempotent(t *testing.T) {
	c := &Client{}
	s := Submission{Name: "Ion", Email: "ion@x.md", Phone: "060000000", Source: SourceBooking}

	assert.True(t, c.ApplySubmission(s))
	assert.False(t, c.ApplySubmission(s))
	assert.Len(t, c.Emails, 1)
	assert.Len(t, c.Phones, 1)
	assert.Empty(t, c.Notes)
}

func TestClient_HasPhone_IgnoresSpaces(t *testing.T) {
	c := &Client{Phones: []string{"+373 60 111 222"}}
	assert.True(t, c.HasPhone("+37360111222"))
	assert.False(t, c.HasPhone("+37360111223"))
}
