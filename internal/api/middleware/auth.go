package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/chefdechef/booking-service/internal/api/handlers"
)

const (
	msgUnauthorized = "Autentificare necesară"
	msgForbidden    = "Acces interzis"
)

var (
	// ErrNoToken токен не передан ни в заголовке, ни в cookie
	ErrNoToken = errors.New("auth: token is missing")
	// ErrInvalidToken токен не прошел проверку подписи или срока действия
	ErrInvalidToken = errors.New("auth: invalid token")
)

type contextKey string

const adminKey contextKey = "admin"

// Claims утверждения сессии администратора
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// Admin данные аутентифицированного администратора
type Admin struct {
	Subject string
	Email   string
	Role    string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AuthConfig параметры проверки сессии
type AuthConfig struct {
	Secret       []byte
	CookieName   string
	AllowedRoles []string // пусто: любая роль
}

// Auth проверяет HS256 JWT из "Authorization: Bearer" или из cookie сессии
// и кладет администратора в контекст
func Auth(cfg AuthConfig, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if len(cfg.Secret) == 0 {
				log.Error("%s %s - Admin auth is not configured", r.Method, r.URL.Path)
				handlers.RespondServiceUnavailable(w, "")
				return
			}

			tokenString, err := extractToken(r, cfg.CookieName)
			if err != nil {
				log.Warn("%s %s - %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			claims, err := ParseToken(tokenString, cfg.Secret)
			if err != nil {
				log.Warn("%s %s - %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			if !roleAllowed(claims.Role, cfg.AllowedRoles) {
				log.Warn("%s %s - Role %q is not allowed: sub=%s", r.Method, r.URL.Path, claims.Role, claims.Subject)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			admin := Admin{Subject: claims.Subject, Email: claims.Email, Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), adminKey, admin)))
		})
	}
}

// ParseToken проверяет подпись HS256 и срок действия токена
func ParseToken(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}

// GetAdmin возвращает администратора из контекста
func GetAdmin(ctx context.Context) (Admin, bool) {
	admin, ok := ctx.Value(adminKey).(Admin)
	return admin, ok
}

func extractToken(r *http.Request, cookieName string) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return "", fmt.Errorf("%w: malformed authorization header", ErrInvalidToken)
		}
		return strings.TrimSpace(token), nil
	}

	if cookieName != "" {
		if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
			return c.Value, nil
		}
	}
	return "", ErrNoToken
}

func roleAllowed(role string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if strings.EqualFold(a, role) {
			return true
		}
	}
	return false
}
