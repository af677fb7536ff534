package handler

import (
	"log/slog"
	"net/http"

	"ideavault/internal/domain/services"
	"ideavault/internal/httputil"
)

// IdeaHandler handles idea HTTP requests
type IdeaHandler struct {
	service services.IdeaService
	logger  *slog.Logger
}

// NewIdeaHandler creates a new idea handler
func NewIdeaHandler(service services.IdeaService, logger *slog.Logger) *IdeaHandler {
	return &IdeaHandler{
		service: service,
		logger:  logger,
	}
}

// GetIdeas lists the caller's ideas, most recently updated first
// GET /v1/ideas/getIdeas
func (h *IdeaHandler) GetIdeas(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	ideas, err := h.service.List(r.Context(), userID)
	if err != nil {
		handleError(w, err)
		return
	}

	respondData(w, http.StatusOK, ideas)
}

// CreateIdea stores a new idea
// POST /v1/ideas/createIdea
func (h *IdeaHandler) CreateIdea(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req services.IdeaInput
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid idea data")
		return
	}

	idea, err := h.service.Create(r.Context(), userID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	respondData(w, http.StatusCreated, idea)
}

// UpdateIdea replaces an idea's fields
// PUT /v1/ideas/updateIdea/{id}
func (h *IdeaHandler) UpdateIdea(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)
	ideaID := r.PathValue("id")

	var req services.IdeaInput
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid idea data")
		return
	}

	idea, err := h.service.Update(r.Context(), userID, ideaID, &req)
	if err != nil {
		handleError(w, err)
		return
	}

	respondData(w, http.StatusOK, idea)
}

// DeleteIdea removes an idea
// DELETE /v1/ideas/deleteIdea/{id}
func (h *IdeaHandler) DeleteIdea(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)
	ideaID := r.PathValue("id")

	if err := h.service.Delete(r.Context(), userID, ideaID); err != nil {
		handleError(w, err)
		return
	}

	respondMessage(w, http.StatusOK, "Idea deleted successfully")
}

// SearchIdeas finds ideas matching a term by title or tag
// GET /v1/ideas/searchIdeas?term=...
func (h *IdeaHandler) SearchIdeas(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)
	term := r.URL.Query().Get("term")

	ideas, err := h.service.Search(r.Context(), userID, term)
	if err != nil {
		handleError(w, err)
		return
	}

	respondData(w, http.StatusOK, ideas)
}
