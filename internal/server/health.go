package server

import (
	"encoding/json"
	"net/http"

	"github.com/desertthunder/spotify-mcp/internal/auth"
)

// HealthHandler reports service liveness and the default session's
// authentication state.
type HealthHandler struct {
	flow       *auth.Flow
	sessionKey string
}

// NewHealthHandler creates a health handler for the given session key.
func NewHealthHandler(flow *auth.Flow, sessionKey string) *HealthHandler {
	return &HealthHandler{flow: flow, sessionKey: sessionKey}
}

// Routes returns the HTTP routes this handler serves.
func (h *HealthHandler) Routes() []string {
	return []string{"GET /health"}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]any{
		"status":        "ok",
		"authenticated": h.flow.Authenticated(h.sessionKey),
	})
}
