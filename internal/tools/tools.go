// Package tools registers the Spotify MCP tool surface.
//
// Each tool is a thin adapter: it validates the shape of the untyped MCP
// arguments and forwards to the matching operation on [services.Client].
// Results are serialized slimmed resources; domain failures come back as MCP
// tool errors, never transport errors.
package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotify-mcp/internal/auth"
	"github.com/desertthunder/spotify-mcp/internal/services"
	"github.com/desertthunder/spotify-mcp/internal/shared"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// serverName and serverVersion identify this MCP server to clients.
const (
	serverName    = "mcp-spotify"
	serverVersion = "1.0.0"
)

// Registry holds the dependencies the tool handlers close over.
type Registry struct {
	client *services.Client
	flow   *auth.Flow
	logger *log.Logger
}

// RegistryOpts contains configuration options for creating a [Registry].
type RegistryOpts struct {
	Client *services.Client
	Flow   *auth.Flow
	Logger *log.Logger
}

// NewServer builds the MCP server with every tool registered.
func NewServer(opts RegistryOpts) *mcpserver.MCPServer {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}

	registry := &Registry{
		client: opts.Client,
		flow:   opts.Flow,
		logger: opts.Logger,
	}

	srv := mcpserver.NewMCPServer(
		serverName,
		serverVersion,
		mcpserver.WithToolCapabilities(false),
	)

	registry.registerAuthTools(srv)
	registry.registerPlayerTools(srv)
	registry.registerPlaylistTools(srv)
	registry.registerTrackTools(srv)
	registry.registerSearchTools(srv)
	registry.registerUserTools(srv)

	return srv
}

// jsonResult serializes v as the tool's text content.
func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to serialize result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// opError converts a domain operation failure into a tool error, pointing
// unauthenticated callers at the auth tools.
func opError(err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, shared.ErrNotAuthenticated):
		return mcp.NewToolResultError("Not authenticated with Spotify. Use get-auth-link to authenticate.")
	case errors.Is(err, shared.ErrTokenExpired):
		return mcp.NewToolResultError("Spotify access token expired. Use get-auth-link to re-authenticate.")
	}
	return mcp.NewToolResultError(err.Error())
}

// stringArg returns the named string argument, or "" when absent.
func stringArg(args map[string]any, key string) string {
	if v, ok := args[key].(string); ok {
		return v
	}
	return ""
}

// intArg returns the named numeric argument (JSON numbers decode as float64)
// and whether it was present.
func intArg(args map[string]any, key string) (int, bool) {
	if v, ok := args[key].(float64); ok {
		return int(v), true
	}
	return 0, false
}

// boolArg returns the named boolean argument and whether it was present.
func boolArg(args map[string]any, key string) (bool, bool) {
	if v, ok := args[key].(bool); ok {
		return v, true
	}
	return false, false
}

// splitList splits a comma-separated argument, trimming whitespace and
// dropping empty entries.
func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
