package get_booking

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/chefdechef/booking-service/internal/service/bookings"
	"github.com/chefdechef/booking-service/internal/service/bookings/models"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type mockService struct {
	getByIDFn func(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error)
}

func (m *mockService) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	return m.getByIDFn(ctx, id)
}

func serve(svc BookingService, id string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/bookings/{bookingId}", NewHandler(svc, nopLogger{}).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings/"+id, nil))
	return rec
}

func TestHandle(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name   string
		path   string
		err    error
		status int
	}{
		{"ok", id.String(), nil, http.StatusOK},
		{"invalid id", "42", nil, http.StatusBadRequest},
		{"not found", id.String(), bookings.ErrBookingNotFound, http.StatusNotFound},
		{"internal", id.String(), errors.New("db down"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{getByIDFn: func(ctx context.Context, got uuid.UUID) (*models.BookingResponse, error) {
				assert.Equal(t, id, got)
				if tt.err != nil {
					return nil, tt.err
				}
				return &models.BookingResponse{ID: got.String(), Status: "pending"}, nil
			}}

			rec := serve(svc, tt.path)
			assert.Equal(t, tt.status, rec.Code)
			if tt.status == http.StatusOK {
				assert.Contains(t, rec.Body.String(), id.String())
			}
		})
	}
}
