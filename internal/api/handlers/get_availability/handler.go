package get_availability

import (
	"errors"
	"net/http"

	"github.com/chefdechef/booking-service/internal/api/handlers"
	getAvailability "github.com/chefdechef/booking-service/internal/usecase/get_availability"
)

const (
	msgInvalidDate             = "Format de dată invalid, se așteaptă AAAA-LL-ZZ"
	msgInvalidRange            = "Interval de date invalid"
	msgAvailabilityUnavailable = "Disponibilitatea nu poate fi verificată momentan. Încercați mai târziu."
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: from, to (опционально, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := ToUseCaseRequest(r.URL.Query().Get("from"), r.URL.Query().Get("to"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidRange):
			h.logger.Warn("GET /availability - %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailability.ErrAvailabilityUnavailable):
			h.logger.Error("GET /availability - Availability unreadable: %v", err)
			handlers.RespondServiceUnavailable(w, msgAvailabilityUnavailable)

		default:
			h.logger.Error("GET /availability - Failed to get availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - %d unavailable dates", len(result.Unavailable))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
