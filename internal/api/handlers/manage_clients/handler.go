package manage_clients

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chefdechef/booking-service/internal/api/handlers"
	"github.com/chefdechef/booking-service/internal/service/clients"
	"github.com/chefdechef/booking-service/internal/service/clients/models"
)

const (
	msgInvalidRequestBody = "Date invalide în cerere"
	msgInvalidInput       = "Numele și cel puțin un email sau telefon valid sunt obligatorii"
	msgInvalidParams      = "Parametri de căutare invalizi"
	msgNotFound           = "Clientul nu a fost găsit"
	msgReadOnly           = "Lista de clienți este doar pentru citire"

	routeList = "GET /admin/clients"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Mode GET /api/v1/admin/clients/mode
func (h *Handler) Mode(w http.ResponseWriter, r *http.Request) {
	mode, err := h.service.GetMode(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/clients/mode - Failed to detect mode: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, mode)
}

// List GET /api/v1/admin/clients
// Query params: q, sort, order (опционально)
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := &models.ListClientsRequest{
		Query: q.Get("q"),
		Sort:  q.Get("sort"),
		Order: q.Get("order"),
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.respondError(w, routeList, err)
		return
	}

	h.logger.Info(routeList+" - Clients retrieved: mode=%s, count=%d", result.Mode, len(result.Clients))
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Get GET /api/v1/admin/clients/{clientId}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["clientId"]

	client, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		h.respondError(w, "GET /admin/clients/{id}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, client)
}

// Create POST /api/v1/admin/clients
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.Create(r.Context(), &req)
	if err != nil {
		h.respondError(w, "POST /admin/clients", err)
		return
	}

	h.logger.Info("POST /admin/clients - Client created: id=%s", client.ID)
	handlers.RespondJSON(w, http.StatusCreated, client)
}

// Update PUT /api/v1/admin/clients/{clientId}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["clientId"]

	var req models.ClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/clients/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/clients/{id}", err)
		return
	}

	h.logger.Info("PUT /admin/clients/{id} - Client updated: id=%s", client.ID)
	handlers.RespondJSON(w, http.StatusOK, client)
}

// Delete DELETE /api/v1/admin/clients/{clientId}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["clientId"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.respondError(w, "DELETE /admin/clients/{id}", err)
		return
	}

	h.logger.Info("DELETE /admin/clients/{id} - Client deleted: id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, clients.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		if route == routeList {
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		handlers.RespondBadRequest(w, msgInvalidInput)

	case errors.Is(err, clients.ErrClientNotFound):
		h.logger.Warn("%s - %v", route, err)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, clients.ErrReadOnly):
		h.logger.Warn("%s - %v", route, err)
		handlers.RespondConflict(w, msgReadOnly)

	default:
		h.logger.Error("%s - %v", route, err)
		handlers.RespondInternalError(w)
	}
}
