package update_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefdechef/booking-service/internal/service/bookings"
	"github.com/chefdechef/booking-service/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockService struct {
	got      *models.UpdateBookingRequest
	updateFn func(ctx context.Context, id uuid.UUID, req *models.UpdateBookingRequest) (*models.BookingResponse, error)
}

func (m *mockService) UpdateAdminFields(ctx context.Context, id uuid.UUID, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
	m.got = req
	return m.updateFn(ctx, id, req)
}

func serve(svc BookingService, id, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/bookings/{bookingId}", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodPatch)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/admin/bookings/"+id, strings.NewReader(body)))
	return rec
}

func TestHandle_ReturnsPersistedRow(t *testing.T) {
	id := uuid.New()
	price := 1500.0
	svc := &mockService{updateFn: func(ctx context.Context, got uuid.UUID, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
		assert.Equal(t, id, got)
		return &models.BookingResponse{ID: got.String(), Status: "confirmed", Price: &price, Currency: "MDL"}, nil
	}}

	rec := serve(svc, id.String(), `{"status":"confirmed","price":"1500","internalNotes":null}`)
	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, svc.got.Status)
	assert.Equal(t, "confirmed", *svc.got.Status)
	assert.True(t, svc.got.InternalNotes.Set)
	assert.Nil(t, svc.got.InternalNotes.Value)
	assert.False(t, svc.got.PaymentStatus.Set)

	var body models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Price)
	assert.Equal(t, 1500.0, *body.Price)
}

func TestHandle_Errors(t *testing.T) {
	id := uuid.New().String()

	tests := []struct {
		name   string
		id     string
		body   string
		err    error
		status int
	}{
		{"invalid id", "not-a-uuid", `{}`, nil, http.StatusBadRequest},
		{"malformed body", id, `{"status":`, nil, http.StatusBadRequest},
		{"invalid input", id, `{"currency":"GBP"}`, bookings.ErrInvalidInput, http.StatusBadRequest},
		{"not found", id, `{}`, bookings.ErrBookingNotFound, http.StatusNotFound},
		{"invalid transition", id, `{"status":"pending"}`, bookings.ErrInvalidTransition, http.StatusConflict},
		{"not applied", id, `{"status":"confirmed"}`, bookings.ErrUpdateNotApplied, http.StatusConflict},
		{"internal", id, `{}`, errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{updateFn: func(ctx context.Context, got uuid.UUID, req *models.UpdateBookingRequest) (*models.BookingResponse, error) {
				return nil, tt.err
			}}
			assert.Equal(t, tt.status, serve(svc, tt.id, tt.body).Code)
		})
	}
}
