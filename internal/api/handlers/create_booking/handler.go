package create_booking

import (
	"errors"
	"net/http"

	"github.com/chefdechef/booking-service/internal/api/handlers"
	createBooking "github.com/chefdechef/booking-service/internal/usecase/create_booking"
	"github.com/chefdechef/booking-service/pkg/types"
)

const (
	msgCreated                   = "Rezervare reușită!"
	msgCreatedEmailNotConfigured = "Rezervare reușită, dar configurarea notificării prin email a eșuat."
	msgCreatedEmailFailed        = "Rezervare reușită, dar trimiterea notificării prin email a eșuat."

	msgInvalidRequestBody      = "Date invalide în cerere"
	msgInvalidDate             = "Data evenimentului are un format invalid, se așteaptă AAAA-LL-ZZ"
	msgInvalidTime             = "Ora de început are un format invalid, se așteaptă HH:MM"
	msgInvalidInput            = "Vă rugăm să completați corect toate câmpurile obligatorii"
	msgDateInPast              = "Data selectată este în trecut"
	msgDateUnavailable         = "Data selectată nu mai este disponibilă"
	msgAvailabilityUnavailable = "Disponibilitatea nu poate fi verificată momentan. Încercați mai târziu."
	msgDatabaseError           = "Eroare la baza de date"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeFormat) {
			handlers.RespondBadRequest(w, msgInvalidTime)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: date=%s", req.EventDate)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createBooking.ErrDateUnavailable):
			h.logger.Warn("POST /bookings - Date unavailable: date=%s", req.EventDate)
			handlers.RespondConflict(w, msgDateUnavailable)

		case errors.Is(err, createBooking.ErrAvailabilityUnavailable):
			h.logger.Error("POST /bookings - Availability unreadable: %v", err)
			handlers.RespondServiceUnavailable(w, msgAvailabilityUnavailable)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: date=%s, error=%v", req.EventDate, err)
			handlers.RespondError(w, http.StatusInternalServerError, msgDatabaseError)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, date=%s, notification=%s",
		result.Booking.ID, result.Booking.EventDate, result.Notification.Outcome())
	handlers.RespondJSON(w, http.StatusCreated, response)
}
