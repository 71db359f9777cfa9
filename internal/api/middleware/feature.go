package middleware

import (
	"net/http"

	"github.com/chefdechef/booking-service/internal/api/handlers"
)

const msgFeatureDisabled = "Funcționalitatea nu este disponibilă momentan"

// FeatureGate отвечает 503, пока зависимость (например, БД) не настроена
func FeatureGate(enabled bool, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if enabled {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log.Warn("%s %s - Feature disabled: database is not configured", r.Method, r.URL.Path)
			handlers.RespondServiceUnavailable(w, msgFeatureDisabled)
		})
	}
}
