package create_contact

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefdechef/booking-service/internal/domain"
	"github.com/chefdechef/booking-service/internal/service/notifications"
	createContact "github.com/chefdechef/booking-service/internal/usecase/create_contact_message"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockUseCase struct {
	executeFn func(ctx context.Context, req *createContact.Request) (*createContact.Response, error)
}

func (m *mockUseCase) Execute(ctx context.Context, req *createContact.Request) (*createContact.Response, error) {
	return m.executeFn(ctx, req)
}

const body = `{"name":"Ion","email":"ion@example.com","phone":"","message":"Salut"}`

func serve(uc CreateContactUseCase, payload string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewHandler(uc, nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodPost, "/api/v1/contact", strings.NewReader(payload)))
	return rec
}

func TestHandle_Created(t *testing.T) {
	tests := []struct {
		name    string
		result  notifications.Result
		message string
	}{
		{"delivered", notifications.Result{Delivered: true}, msgSent},
		{"not configured", notifications.Result{Reason: notifications.ReasonNotConfigured}, msgSentEmailNotConfigured},
		{"send failed", notifications.Result{Reason: notifications.ReasonSendFailed}, msgSentEmailFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got *createContact.Request
			uc := &mockUseCase{executeFn: func(ctx context.Context, req *createContact.Request) (*createContact.Response, error) {
				got = req
				return &createContact.Response{
					Message:      &domain.ContactMessage{ID: uuid.New(), Name: req.Name},
					Notification: tt.result,
				}, nil
			}}

			rec := serve(uc, body)
			require.Equal(t, http.StatusCreated, rec.Code)

			var resp ContactResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.message, resp.Message)
			assert.Equal(t, tt.result.Delivered, resp.NotificationSent)
			assert.Equal(t, "Ion", got.Name)
			assert.Equal(t, "Salut", got.Message)
		})
	}
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		err     error
		status  int
	}{
		{"malformed", `[`, nil, http.StatusBadRequest},
		{"invalid", body, createContact.ErrInvalidInput, http.StatusBadRequest},
		{"db", body, createContact.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{executeFn: func(ctx context.Context, req *createContact.Request) (*createContact.Response, error) {
				return nil, tt.err
			}}
			assert.Equal(t, tt.status, serve(uc, tt.payload).Code)
		})
	}
}
