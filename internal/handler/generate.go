package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ideavault/internal/handler/sse"
	"ideavault/internal/httputil"
	"ideavault/internal/service/llm"
)

// GenerateHandler relays a generation stream to the client as server-sent
// events.
type GenerateHandler struct {
	generator llm.ContentGenerator
	keepAlive time.Duration
	logger    *slog.Logger
}

// NewGenerateHandler creates a new generation relay handler.
func NewGenerateHandler(generator llm.ContentGenerator, logger *slog.Logger) *GenerateHandler {
	return &GenerateHandler{
		generator: generator,
		keepAlive: sse.DefaultKeepAliveInterval,
		logger:    logger,
	}
}

type generateRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateIdeaContent streams AI-drafted platform content for a prompt
// POST /v1/ideas/AIIdeaContent
//
// Errors before the first byte respond with a normal JSON status; once the
// event stream is open, failures are delivered as a terminal error record
// instead.
func (h *GenerateHandler) GenerateIdeaContent(w http.ResponseWriter, r *http.Request) {
	userID := httputil.GetUserID(r)

	var req generateRequest
	if err := httputil.ParseJSON(w, r, &req); err != nil {
		httputil.RespondError(w, http.StatusBadRequest, "invalid prompt data")
		return
	}

	events, err := h.generator.StreamIdeaContent(r.Context(), userID, req.Prompt)
	if err != nil {
		handleError(w, err)
		return
	}

	writer, err := sse.NewWriter(w)
	if err != nil {
		h.logger.Error("streaming unsupported", "error", err)
		httputil.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	keepAlive := sse.NewTickerKeepAlive(h.keepAlive)
	keepAliveDone := keepAlive.Start(writer, h.logger)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			h.logger.Info("client disconnected mid-generation", "user_id", userID)
			return

		case <-keepAliveDone:
			// Keep-alive write failed, the connection is gone
			return

		case event, ok := <-events:
			if !ok {
				if err := writer.WriteDone(); err != nil {
					h.logger.Warn("write done record failed", "error", err)
				}
				return
			}
			if event.Err != nil {
				h.logger.Error("generation failed", "user_id", userID, "error", event.Err)
				if err := writer.WriteError("AI generation failed"); err != nil {
					h.logger.Warn("write error record failed", "error", err)
				}
				return
			}
			if event.Text == "" {
				continue
			}
			if err := writer.WriteText(event.Text); err != nil {
				h.logger.Warn("write fragment failed, client gone", "error", err)
				return
			}
		}
	}
}
