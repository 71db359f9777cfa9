package get_stats

import (
	"net/http"

	"github.com/chefdechef/booking-service/internal/api/handlers"
)

type Handler struct {
	service StatsService
	logger  Logger
}

func NewHandler(service StatsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/stats - Failed to compute stats: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	if result.RatesUnavailable {
		h.logger.Warn("GET /admin/stats - Exchange rates unavailable, %d bookings not converted", result.UnconvertedBookings)
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}
