package list_contact_messages

import (
	"net/http"

	"github.com/chefdechef/booking-service/internal/api/handlers"
)

type Handler struct {
	service ContactService
	logger  Logger
}

func NewHandler(service ContactService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/contact-messages
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/contact-messages - Failed to list messages: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin/contact-messages - Messages retrieved: count=%d", len(result.Messages))
	handlers.RespondJSON(w, http.StatusOK, result)
}
