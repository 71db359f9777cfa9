package create_contact

import (
	"errors"
	"net/http"

	"github.com/chefdechef/booking-service/internal/api/handlers"
	createContact "github.com/chefdechef/booking-service/internal/usecase/create_contact_message"
)

const (
	msgSent                   = "Mesaj trimis cu succes!"
	msgSentEmailNotConfigured = "Mesaj trimis, dar configurarea notificării prin email a eșuat."
	msgSentEmailFailed        = "Mesaj trimis, dar trimiterea notificării prin email a eșuat."

	msgInvalidRequestBody = "Date invalide în cerere"
	msgInvalidInput       = "Vă rugăm să completați numele, emailul și mesajul"
	msgDatabaseError      = "Eroare la baza de date"
)

type Handler struct {
	useCase CreateContactUseCase
	logger  Logger
}

func NewHandler(useCase CreateContactUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, createContact.ErrInvalidInput):
			h.logger.Warn("POST /contact - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /contact - Failed to save message: %v", err)
			handlers.RespondError(w, http.StatusInternalServerError, msgDatabaseError)
		}
		return
	}

	h.logger.Info("POST /contact - Message saved: id=%s, notification=%s",
		result.Message.ID, result.Notification.Outcome())
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
