package tools

import (
	"context"

	"github.com/desertthunder/spotify-mcp/internal/services"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// registerSearchTools registers the catalog search tool.
func (t *Registry) registerSearchTools(srv *mcpserver.MCPServer) {
	search := mcp.NewTool("search",
		mcp.WithDescription("Search the Spotify catalog for albums, artists, playlists, tracks, shows, episodes, or audiobooks."),
		mcp.WithString("q", mcp.Required(), mcp.Description("Search query; supports field filters like artist: and year:")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Comma-separated resource types: album, artist, playlist, track, show, episode, audiobook")),
		mcp.WithString("market", mcp.Description("ISO 3166-1 alpha-2 country code")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of results per type (1-50)")),
		mcp.WithNumber("offset", mcp.Description("Index of the first result to return (0-1000)")),
		mcp.WithString("include_external", mcp.Description("Set to audio to include externally hosted audio content")),
	)
	srv.AddTool(search, t.handleSearch)
}

func (t *Registry) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	q := stringArg(args, "q")
	if q == "" {
		return mcp.NewToolResultError("q is required"), nil
	}
	types := stringArg(args, "type")
	if types == "" {
		return mcp.NewToolResultError("type is required"), nil
	}

	opts := services.SearchOpts{
		Market:          stringArg(args, "market"),
		IncludeExternal: stringArg(args, "include_external"),
	}
	if limit, ok := intArg(args, "limit"); ok {
		opts.Limit = limit
	}
	if offset, ok := intArg(args, "offset"); ok {
		opts.Offset = offset
	}

	results, err := t.client.Search(ctx, q, types, opts)
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(results)
}
