package handler

import (
	"log/slog"
	"net/http"

	"ideavault/internal/domain/services"
	"ideavault/internal/httputil"
)

// EventHandler handles calendar event HTTP requests
type EventHandler struct {
	service services.EventService
	logger  *slog.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(service services.EventService, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		service: service,
		logger:  logger,
	}
}

// GetEvents lists the caller's events ordered by start time
// GET /v1/events/getEvents
func (h *EventHandler) GetEvents(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	events, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondData(w, http.StatusOK, events)
}

// CreateEvent stores a new calendar event
// POST /v1/events/createEvent
func (h *EventHandler) CreateEvent(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.EventInput
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid event data")
		return
	}

	event, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	respondData(w, http.StatusCreated, event)
}

// UpdateEvent replaces an event's fields
// PUT /v1/events/updateEvent/{id}
func (h *EventHandler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)
	eventID := r.PathValue("id")

	var req services.EventInput
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid event data")
		return
	}

	event, err := h.service.Update(r.Context(), userID, eventID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	respondData(w, http.StatusOK, event)
}

// DeleteEvent removes an event
// DELETE /v1/events/deleteEvent/{id}
func (h *EventHandler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)
	eventID := r.PathValue("id")

	if err := h.service.Delete(r.Context(), userID, eventID); err != nil {
		handleError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Event deleted successfully")
}
