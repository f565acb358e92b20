package server

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify-mcp/internal/auth"
)

// CallbackHandler handles the OAuth2 authorization-code callback redirect.
// Implements the [Handler] interface for registration with a [Router].
//
// It does not retry: a failed exchange renders the failure page and the user
// must request a fresh authorization link.
type CallbackHandler struct {
	flow       *auth.Flow
	sessionKey string
	logger     *log.Logger
}

// NewCallbackHandler creates a callback handler completing the flow for the
// given session key.
func NewCallbackHandler(flow *auth.Flow, sessionKey string, logger *log.Logger) *CallbackHandler {
	return &CallbackHandler{
		flow:       flow,
		sessionKey: sessionKey,
		logger:     logger,
	}
}

// Routes returns the HTTP routes this handler serves.
func (h *CallbackHandler) Routes() []string {
	return []string{"GET /callback"}
}

// ServeHTTP handles the provider redirect carrying code and state query
// parameters.
func (h *CallbackHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	state := r.URL.Query().Get("state")

	if code == "" || state == "" {
		http.Error(w, "Missing code or state in callback", http.StatusBadRequest)
		return
	}

	if !h.flow.ReceiveToken(r.Context(), h.sessionKey, code, state) {
		h.logger.Error("authorization callback failed", "session", h.sessionKey)
		http.Error(w, "Failed to retrieve access token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `
<!DOCTYPE html>
<html>
<head>
    <title>Authorization Successful</title>
    <style>
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, sans-serif;
               display: flex; align-items: center; justify-content: center; height: 100vh;
               margin: 0; background: #f5f5f5; }
        .container { text-align: center; background: white; padding: 2rem;
                     border-radius: 8px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        h1 { color: #1DB954; margin: 0 0 1rem 0; }
        p { color: #666; margin: 0; }
    </style>
</head>
<body>
    <div class="container">
        <h1>✓ Authorization Successful</h1>
        <p>You can close this window and return to your MCP client.</p>
    </div>
</body>
</html>
`)
}
