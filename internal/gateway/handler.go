package gateway

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/navigatehome/waypoint/pkg/handlers"
	"github.com/navigatehome/waypoint/pkg/routes"
)

// Handler provides HTTP endpoints for direct assistant capabilities.
type Handler struct {
	sys    System
	logger *slog.Logger
}

// ModeResponse reports which path the gateway is serving from.
type ModeResponse struct {
	Mode Source `json:"mode"`
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "assistant"),
	}
}

// Routes returns the route group definition for assistant endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix: "/assistant",
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/mode", Handler: h.Mode},
			{Method: "POST", Pattern: "/ask", Handler: h.kind(KindQuestionExplanation)},
			{Method: "POST", Pattern: "/validate", Handler: h.kind(KindFormValidation)},
			{Method: "POST", Pattern: "/rights", Handler: h.kind(KindRightsGuidance)},
			{Method: "POST", Pattern: "/emergency", Handler: h.kind(KindEmergencyScript)},
			{Method: "POST", Pattern: "/resources", Handler: h.kind(KindResourceSearch)},
			{Method: "POST", Pattern: "/eligibility", Handler: h.kind(KindEligibilityCheck)},
			{Method: "POST", Pattern: "/insights", Handler: h.kind(KindCommunityInsights)},
			{Method: "POST", Pattern: "/translate", Handler: h.kind(KindTranslation)},
		},
	}
}

// Mode reports whether requests are served live or from the offline responder.
func (h *Handler) Mode(w http.ResponseWriter, r *http.Request) {
	handlers.RespondJSON(w, http.StatusOK, ModeResponse{Mode: h.sys.Mode()})
}

// kind builds a handler that decodes a ServiceRequest body, pins its kind,
// and dispatches it through the gateway.
func (h *Handler) kind(k Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ServiceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, ErrMalformedRequest)
			return
		}
		req.Kind = k

		result, err := h.sys.Handle(r.Context(), req)
		if err != nil {
			handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
			return
		}

		handlers.RespondJSON(w, http.StatusOK, result)
	}
}
