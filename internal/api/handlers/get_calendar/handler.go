package get_calendar

import (
	"errors"
	"net/http"

	"github.com/chefdechef/booking-service/internal/api/handlers"
	getCalendar "github.com/chefdechef/booking-service/internal/usecase/get_calendar"
)

const (
	msgInvalidParams           = "Parametri invalizi: month=AAAA-LL, dată=AAAA-LL-ZZ"
	msgAvailabilityUnavailable = "Calendarul nu poate fi încărcat momentan. Încercați mai târziu."
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar
// Query params: month (YYYY-MM), selected (YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "GET /calendar", "selected", false)
}

// HandleAdmin GET /api/v1/admin/calendar
// Query params: month (YYYY-MM), filter (YYYY-MM-DD)
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	h.handle(w, r, "GET /admin/calendar", "filter", true)
}

func (h *Handler) handle(w http.ResponseWriter, r *http.Request, route, selectedParam string, admin bool) {
	q := r.URL.Query()
	useCaseReq, err := ToUseCaseRequest(q.Get("month"), q.Get(selectedParam), admin)
	if err != nil {
		h.logger.Warn("%s - Invalid parameters: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrAvailabilityUnavailable):
			h.logger.Error("%s - Availability unreadable: %v", route, err)
			handlers.RespondServiceUnavailable(w, msgAvailabilityUnavailable)

		default:
			h.logger.Error("%s - Failed to build calendar: %v", route, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Calendar built: month=%s", route, result.Month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
