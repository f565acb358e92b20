package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// registerTrackTools registers the track catalog and library tools.
func (t *Registry) registerTrackTools(srv *mcpserver.MCPServer) {
	getTrack := mcp.NewTool("get-track",
		mcp.WithDescription("Get catalog information for a single track."),
		mcp.WithString("track_id", mcp.Required(), mcp.Description("The Spotify ID of the track")),
		mcp.WithString("market", mcp.Description("ISO 3166-1 alpha-2 country code")),
	)
	srv.AddTool(getTrack, t.handleGetTrack)

	getSeveral := mcp.NewTool("get-several-tracks",
		mcp.WithDescription("Get catalog information for multiple tracks. A maximum of 50 IDs can be requested."),
		mcp.WithString("ids", mcp.Required(), mcp.Description("Comma-separated Spotify track IDs")),
		mcp.WithString("market", mcp.Description("ISO 3166-1 alpha-2 country code")),
	)
	srv.AddTool(getSeveral, t.handleGetSeveralTracks)

	getSaved := mcp.NewTool("get-saved-tracks",
		mcp.WithDescription("Get the songs saved in the current user's library."),
		mcp.WithString("market", mcp.Description("ISO 3166-1 alpha-2 country code")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of items to return (1-50)")),
		mcp.WithNumber("offset", mcp.Description("Index of the first item to return")),
	)
	srv.AddTool(getSaved, t.handleGetSavedTracks)

	save := mcp.NewTool("save-tracks",
		mcp.WithDescription("Save one or more tracks to the current user's library."),
		mcp.WithString("ids", mcp.Required(), mcp.Description("Comma-separated Spotify track IDs")),
	)
	srv.AddTool(save, t.handleSaveTracks)

	remove := mcp.NewTool("remove-saved-tracks",
		mcp.WithDescription("Remove one or more tracks from the current user's library."),
		mcp.WithString("ids", mcp.Required(), mcp.Description("Comma-separated Spotify track IDs")),
	)
	srv.AddTool(remove, t.handleRemoveSavedTracks)

	check := mcp.NewTool("check-saved-tracks",
		mcp.WithDescription("Check if one or more tracks are saved in the current user's library."),
		mcp.WithString("ids", mcp.Required(), mcp.Description("Comma-separated Spotify track IDs")),
	)
	srv.AddTool(check, t.handleCheckSavedTracks)
}

func (t *Registry) handleGetTrack(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	trackID := stringArg(args, "track_id")
	if trackID == "" {
		return mcp.NewToolResultError("track_id is required"), nil
	}

	track, err := t.client.GetTrack(ctx, trackID, stringArg(args, "market"))
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(track)
}

func (t *Registry) handleGetSeveralTracks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	ids := stringArg(args, "ids")
	if ids == "" {
		return mcp.NewToolResultError("ids is required"), nil
	}

	tracks, err := t.client.GetSeveralTracks(ctx, ids, stringArg(args, "market"))
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(tracks)
}

func (t *Registry) handleGetSavedTracks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	limit, _ := intArg(args, "limit")
	offset, _ := intArg(args, "offset")

	saved, err := t.client.GetSavedTracks(ctx, stringArg(args, "market"), limit, offset)
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(saved)
}

func (t *Registry) handleSaveTracks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := stringArg(request.GetArguments(), "ids")
	if ids == "" {
		return mcp.NewToolResultError("ids is required"), nil
	}

	if err := t.client.SaveTracks(ctx, ids); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{
		"message": fmt.Sprintf("Successfully saved tracks: %s", ids),
	})
}

func (t *Registry) handleRemoveSavedTracks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := stringArg(request.GetArguments(), "ids")
	if ids == "" {
		return mcp.NewToolResultError("ids is required"), nil
	}

	if err := t.client.RemoveSavedTracks(ctx, ids); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{
		"message": fmt.Sprintf("Successfully removed tracks: %s", ids),
	})
}

func (t *Registry) handleCheckSavedTracks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ids := stringArg(request.GetArguments(), "ids")
	if ids == "" {
		return mcp.NewToolResultError("ids is required"), nil
	}

	saved, err := t.client.CheckSavedTracks(ctx, ids)
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(saved)
}
