package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// registerAuthTools registers the authentication-status and auth-link tools.
func (t *Registry) registerAuthTools(srv *mcpserver.MCPServer) {
	isAuthenticated := mcp.NewTool("is-authenticated",
		mcp.WithDescription("Check if the user is authenticated with Spotify"),
	)
	srv.AddTool(isAuthenticated, t.handleIsAuthenticated)

	getAuthLink := mcp.NewTool("get-auth-link",
		mcp.WithDescription("Get the Spotify authentication link for users who are not authenticated, which the user must visit to authenticate."),
	)
	srv.AddTool(getAuthLink, t.handleGetAuthLink)
}

func (t *Registry) handleIsAuthenticated(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"isAuthenticated": t.client.Authenticated(),
	})
}

func (t *Registry) handleGetAuthLink(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(map[string]any{
		"authLink": t.flow.AuthLink(ctx),
	})
}
