package create_contact_message

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/internal/service/notifications"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockRepo struct {
	createFn func(msg *domain.ContactMessage) (*domain.ContactMessage, error)
	calls    int
}

func (m *mockRepo) Create(ctx context.Context, msg *domain.ContactMessage) (*domain.ContactMessage, error) {
	m.calls++
	if m.createFn != nil {
		return m.createFn(msg)
	}
	cp := *msg
	cp.ID = uuid.New()
	cp.CreatedAt = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	return &cp, nil
}

type mockClients struct {
	subs []domain.Submission
}

func (m *mockClients) UpsertFromSubmission(ctx context.Context, sub domain.Submission) error {
	m.subs = append(m.subs, sub)
	return errors.New("clients table locked")
}

type mockNotifier struct {
	calls  int
	result notifications.Result
}

func (m *mockNotifier) ContactCreated(ctx context.Context, msg *domain.ContactMessage) notifications.Result {
	m.calls++
	return m.result
}

func TestExecute_SavesAndNotifies(t *testing.T) {
	repo := &mockRepo{}
	clients := &mockClients{}
	notifier := &mockNotifier{result: notifications.Result{Reason: notifications.ReasonNotConfigured}}
	counted := 0
	uc := NewUseCase(repo, clients, notifier, time.UTC, nopLogger{}).WithRecorder(func() { counted++ })

	resp, err := uc.Execute(context.Background(), &Request{
		Name: " Maria ", Email: "maria@example.com", Phone: "068111111", Message: " Bună ziua! ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Maria", resp.Message.Name)
	assert.Equal(t, "Bună ziua!", resp.Message.Message)
	assert.Equal(t, notifications.ReasonNotConfigured, resp.Notification.Reason)
	require.Len(t, clients.subs, 1)
	assert.Equal(t, domain.SourceContact, clients.subs[0].Source)
	assert.Equal(t, "Bună ziua!", clients.subs[0].Message)
	assert.Equal(t, 1, notifier.calls)
	assert.Equal(t, 1, counted)
}

func TestExecute_SaveFailure(t *testing.T) {
	repo := &mockRepo{createFn: func(*domain.ContactMessage) (*domain.ContactMessage, error) {
		return nil, errors.New("db down")
	}}
	notifier := &mockNotifier{}
	uc := NewUseCase(repo, nil, notifier, time.UTC, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{Name: "Maria", Email: "maria@example.com", Message: "Salut"})

	assert.ErrorIs(t, err, ErrInternal)
	assert.Zero(t, notifier.calls)
}

func TestExecute_Validation(t *testing.T) {
	for _, req := range []*Request{
		{Email: "maria@example.com", Message: "Salut"},
		{Name: "Maria", Message: "Salut"},
		{Name: "Maria", Email: "maria.example.com", Message: "Salut"},
		{Name: "Maria", Email: "maria@example.com", Message: "   "},
	} {
		repo := &mockRepo{}
		uc := NewUseCase(repo, nil, &mockNotifier{}, time.UTC, nopLogger{})

		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Zero(t, repo.calls)
	}
}
