package contacts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefdechef/booking-service/internal/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockRepo struct {
	listFn func(ctx context.Context) ([]*domain.ContactMessage, error)
}

func (m *mockRepo) List(ctx context.Context) ([]*domain.ContactMessage, error) {
	return m.listFn(ctx)
}

func TestList(t *testing.T) {
	id := uuid.New()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(&mockRepo{listFn: func(ctx context.Context) ([]*domain.ContactMessage, error) {
		return []*domain.ContactMessage{{ID: id, CreatedAt: at, Name: "Ion", Email: "ion@example.com", Message: "Salut"}}, nil
	}}, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.Messages, 1)
	assert.Equal(t, id.String(), resp.Messages[0].ID)
	assert.Equal(t, "Salut", resp.Messages[0].Message)
}

func TestList_Empty(t *testing.T) {
	svc := NewService(&mockRepo{listFn: func(ctx context.Context) ([]*domain.ContactMessage, error) {
		return nil, nil
	}}, nopLogger{})

	resp, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, resp.Messages)
	assert.Empty(t, resp.Messages)
}

func TestList_RepoError(t *testing.T) {
	svc := NewService(&mockRepo{listFn: func(ctx context.Context) ([]*domain.ContactMessage, error) {
		return nil, errors.New("db down")
	}}, nopLogger{})

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
