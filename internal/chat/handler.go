package chat

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/navigatehome/waypoint/pkg/handlers"
	"github.com/navigatehome/waypoint/pkg/routes"
)

// Handler provides HTTP endpoints for chat sessions.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "chat"),
	}
}

// Routes returns the route group definition for chat endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/chat",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "/{session}/messages", Handler: h.Send},
			{Method: "GET", Pattern: "/{session}/messages", Handler: h.History},
			{Method: "DELETE", Pattern: "/{session}", Handler: h.Clear},
		},
	}
}

// Send appends a user message to the session and returns the assistant reply.
func (h *Handler) Send(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	var req SendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	exchange, err := h.sys.Send(r.Context(), session, req)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, exchange)
}

// History returns the retained messages for a session.
func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	messages, err := h.sys.History(r.Context(), session)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, messages)
}

// Clear removes a session and its history.
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	if err := h.sys.Clear(r.Context(), session); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// sessionID validates the session path parameter. Session identifiers are
// client-generated UUIDs, which keeps Redis keys bounded and predictable.
func sessionID(r *http.Request) (string, error) {
	id, err := uuid.Parse(r.PathValue("session"))
	if err != nil {
		return "", ErrInvalidSessionID
	}
	return id.String(), nil
}
