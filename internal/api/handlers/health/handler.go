package health

import (
	"context"
	"net/http"
	"time"

	"github.com/chefdechef/booking-service/internal/api/handlers"
)

const pingTimeout = 2 * time.Second

const (
	statusOK       = "ok"
	statusDown     = "down"
	statusDisabled = "disabled"
)

// Response состояние сервиса
type Response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type Handler struct {
	db     Pinger
	logger Logger
}

// NewHandler создает handler. db == nil: сервис запущен без БД (деградированный режим).
func NewHandler(db Pinger, logger Logger) *Handler {
	return &Handler{
		db:     db,
		logger: logger,
	}
}

// Handle GET /healthz
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		handlers.RespondJSON(w, http.StatusOK, Response{Status: statusOK, Database: statusDisabled})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.logger.Warn("GET /healthz - Database ping failed: %v", err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, Response{Status: statusDown, Database: statusDown})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Status: statusOK, Database: statusOK})
}
