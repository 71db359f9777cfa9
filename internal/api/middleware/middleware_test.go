package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chefdechef/booking-service/pkg/metrics"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var testSecret = []byte("test-secret")

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return s
}

func validClaims(role string) Claims {
	return Claims{
		Email: "admin@chefdechef.md",
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "user-1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func protected(cfg AuthConfig) (http.Handler, *Admin) {
	seen := &Admin{}
	h := Auth(cfg, nopLogger{})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		admin, _ := GetAdmin(r.Context())
		*seen = admin
		w.WriteHeader(http.StatusNoContent)
	}))
	return h, seen
}

func TestAuth(t *testing.T) {
	cfg := AuthConfig{Secret: testSecret, CookieName: "admin_session"}

	tests := []struct {
		name   string
		cfg    AuthConfig
		setup  func(r *http.Request)
		status int
	}{
		{
			name: "bearer token",
			cfg:  cfg,
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("admin")))
			},
			status: http.StatusNoContent,
		},
		{
			name: "cookie fallback",
			cfg:  cfg,
			setup: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: "admin_session", Value: signToken(t, jwt.SigningMethodHS256, testSecret, validClaims(""))})
			},
			status: http.StatusNoContent,
		},
		{
			name:   "missing token",
			cfg:    cfg,
			setup:  func(r *http.Request) {},
			status: http.StatusUnauthorized,
		},
		{
			name: "wrong secret",
			cfg:  cfg,
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims("admin")))
			},
			status: http.StatusUnauthorized,
		},
		{
			name: "expired",
			cfg:  cfg,
			setup: func(r *http.Request) {
				c := validClaims("admin")
				c.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))
				r.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, c))
			},
			status: http.StatusUnauthorized,
		},
		{
			name: "malformed header",
			cfg:  cfg,
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Token abc")
			},
			status: http.StatusUnauthorized,
		},
		{
			name: "role not allowed",
			cfg:  AuthConfig{Secret: testSecret, AllowedRoles: []string{"admin"}},
			setup: func(r *http.Request) {
				r.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("viewer")))
			},
			status: http.StatusForbidden,
		},
		{
			name:   "not configured",
			cfg:    AuthConfig{},
			setup:  func(r *http.Request) {},
			status: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := protected(tt.cfg)
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/bookings", nil)
			tt.setup(req)
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestAuth_AdminInContext(t *testing.T) {
	h, seen := protected(AuthConfig{Secret: testSecret})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, jwt.SigningMethodHS256, testSecret, validClaims("admin")))

	h.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, Admin{Subject: "user-1", Email: "admin@chefdechef.md", Role: "admin"}, *seen)
}

func TestParseToken_RejectsOtherAlgorithms(t *testing.T) {
	token := signToken(t, jwt.SigningMethodHS512, testSecret, validClaims("admin"))

	_, err := ParseToken(token, testSecret)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"https://chefdechef.md/"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://chefdechef.md")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, "https://chefdechef.md", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("other origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "https://evil.example")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "https://chefdechef.md")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestTimeout_SetsDeadline(t *testing.T) {
	var deadline time.Time
	var ok bool
	h := Timeout(time.Second)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		deadline, ok = r.Context().Deadline()
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.True(t, ok)
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
}

func TestTimeout_Disabled(t *testing.T) {
	h := Timeout(0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := r.Context().Deadline()
		assert.False(t, ok)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil).WithContext(context.Background()))
}

func TestFeatureGate(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })

	rec := httptest.NewRecorder()
	FeatureGate(false, nopLogger{})(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec = httptest.NewRecorder()
	FeatureGate(true, nopLogger{})(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMetricsMiddleware_UsesRouteTemplate(t *testing.T) {
	m := metrics.New("test_service")
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/bookings/abc", nil))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/bookings/{bookingId}", "404")))
}
