package tools

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotify-mcp/internal/services"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// registerPlaylistTools registers the playlist management tools.
func (t *Registry) registerPlaylistTools(srv *mcpserver.MCPServer) {
	getPlaylist := mcp.NewTool("get-playlist",
		mcp.WithDescription("Get a playlist owned by a Spotify user."),
		mcp.WithString("playlist_id", mcp.Required(), mcp.Description("The Spotify ID of the playlist")),
		mcp.WithString("market", mcp.Description("ISO 3166-1 alpha-2 country code")),
		mcp.WithString("fields", mcp.Description("Filters for the query, e.g. description,uri")),
		mcp.WithString("additional_types", mcp.Description("Comma-separated item types besides track, e.g. episode")),
	)
	srv.AddTool(getPlaylist, t.handleGetPlaylist)

	changeDetails := mcp.NewTool("change-playlist-details",
		mcp.WithDescription("Change a playlist's name, description, and public or collaborative state. At least one field must be provided."),
		mcp.WithString("playlist_id", mcp.Required(), mcp.Description("The Spotify ID of the playlist")),
		mcp.WithString("name", mcp.Description("New name for the playlist")),
		mcp.WithString("description", mcp.Description("New description for the playlist")),
		mcp.WithBoolean("public", mcp.Description("Whether the playlist is public")),
		mcp.WithBoolean("collaborative", mcp.Description("Whether other users can modify the playlist")),
	)
	srv.AddTool(changeDetails, t.handleChangePlaylistDetails)

	getItems := mcp.NewTool("get-playlist-items",
		mcp.WithDescription("Get full details of the items of a playlist."),
		mcp.WithString("playlist_id", mcp.Required(), mcp.Description("The Spotify ID of the playlist")),
		mcp.WithString("market", mcp.Description("ISO 3166-1 alpha-2 country code")),
		mcp.WithString("fields", mcp.Description("Filters for the query")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of items to return (1-50)")),
		mcp.WithNumber("offset", mcp.Description("Index of the first item to return")),
		mcp.WithString("additional_types", mcp.Description("Comma-separated item types besides track, e.g. episode")),
	)
	srv.AddTool(getItems, t.handleGetPlaylistItems)

	updateItems := mcp.NewTool("update-playlist-items",
		mcp.WithDescription("Either reorder or replace items in a playlist. Pass uris to replace, or range_start and insert_before to reorder; the two forms are mutually exclusive."),
		mcp.WithString("playlist_id", mcp.Required(), mcp.Description("The Spotify ID of the playlist")),
		mcp.WithString("uris", mcp.Description("Comma-separated item URIs that replace the playlist's items")),
		mcp.WithNumber("range_start", mcp.Description("Position of the first item to reorder")),
		mcp.WithNumber("insert_before", mcp.Description("Position where the reordered items should be inserted")),
		mcp.WithNumber("range_length", mcp.Description("Number of items to reorder; defaults to 1")),
		mcp.WithString("snapshot_id", mcp.Description("Playlist snapshot to apply the change against")),
	)
	srv.AddTool(updateItems, t.handleUpdatePlaylistItems)

	addItems := mcp.NewTool("add-items-to-playlist",
		mcp.WithDescription("Add one or more items to a user's playlist. A maximum of 100 items can be added per request."),
		mcp.WithString("playlist_id", mcp.Required(), mcp.Description("The Spotify ID of the playlist")),
		mcp.WithString("uris", mcp.Required(), mcp.Description("Comma-separated item URIs to add")),
		mcp.WithNumber("position", mcp.Description("Zero-based position to insert the items at; appends when omitted")),
	)
	srv.AddTool(addItems, t.handleAddItemsToPlaylist)

	follow := mcp.NewTool("follow-playlist",
		mcp.WithDescription("Add the current user as a follower of a playlist."),
		mcp.WithString("playlist_id", mcp.Required(), mcp.Description("The Spotify ID of the playlist")),
	)
	srv.AddTool(follow, t.handleFollowPlaylist)

	unfollow := mcp.NewTool("unfollow-playlist",
		mcp.WithDescription("Remove the current user as a follower of a playlist."),
		mcp.WithString("playlist_id", mcp.Required(), mcp.Description("The Spotify ID of the playlist")),
	)
	srv.AddTool(unfollow, t.handleUnfollowPlaylist)

	checkFollowers := mcp.NewTool("check-playlist-followers",
		mcp.WithDescription("Check to see if one or more Spotify users are following a playlist."),
		mcp.WithString("playlist_id", mcp.Required(), mcp.Description("The Spotify ID of the playlist")),
		mcp.WithString("ids", mcp.Required(), mcp.Description("Comma-separated Spotify user IDs to check")),
	)
	srv.AddTool(checkFollowers, t.handleCheckPlaylistFollowers)
}

func (t *Registry) handleGetPlaylist(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	playlistID := stringArg(args, "playlist_id")
	if playlistID == "" {
		return mcp.NewToolResultError("playlist_id is required"), nil
	}

	playlist, err := t.client.GetPlaylist(ctx, playlistID, services.PlaylistQuery{
		Market:          stringArg(args, "market"),
		Fields:          stringArg(args, "fields"),
		AdditionalTypes: stringArg(args, "additional_types"),
	})
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(playlist)
}

func (t *Registry) handleChangePlaylistDetails(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	playlistID := stringArg(args, "playlist_id")
	if playlistID == "" {
		return mcp.NewToolResultError("playlist_id is required"), nil
	}

	details := services.PlaylistDetails{}
	if v, ok := args["name"].(string); ok {
		details.Name = &v
	}
	if v, ok := args["description"].(string); ok {
		details.Description = &v
	}
	if v, ok := boolArg(args, "public"); ok {
		details.Public = &v
	}
	if v, ok := boolArg(args, "collaborative"); ok {
		details.Collaborative = &v
	}

	if err := t.client.ChangePlaylistDetails(ctx, playlistID, details); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{
		"message": fmt.Sprintf("Successfully updated playlist %s", playlistID),
	})
}

func (t *Registry) handleGetPlaylistItems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	playlistID := stringArg(args, "playlist_id")
	if playlistID == "" {
		return mcp.NewToolResultError("playlist_id is required"), nil
	}

	query := services.PlaylistItemsQuery{
		Market:          stringArg(args, "market"),
		Fields:          stringArg(args, "fields"),
		AdditionalTypes: stringArg(args, "additional_types"),
	}
	if limit, ok := intArg(args, "limit"); ok {
		query.Limit = limit
	}
	if offset, ok := intArg(args, "offset"); ok {
		query.Offset = offset
	}

	items, err := t.client.GetPlaylistItems(ctx, playlistID, query)
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(items)
}

func (t *Registry) handleUpdatePlaylistItems(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	playlistID := stringArg(args, "playlist_id")
	if playlistID == "" {
		return mcp.NewToolResultError("playlist_id is required"), nil
	}

	update := services.PlaylistUpdate{
		SnapshotID: stringArg(args, "snapshot_id"),
	}
	if uris := stringArg(args, "uris"); uris != "" {
		update.URIs = splitList(uris)
	}
	if v, ok := intArg(args, "range_start"); ok {
		update.RangeStart = &v
	}
	if v, ok := intArg(args, "insert_before"); ok {
		update.InsertBefore = &v
	}
	if v, ok := intArg(args, "range_length"); ok {
		update.RangeLength = &v
	}

	snapshotID, err := t.client.UpdatePlaylistItems(ctx, playlistID, update)
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{"snapshot_id": snapshotID})
}

func (t *Registry) handleAddItemsToPlaylist(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	playlistID := stringArg(args, "playlist_id")
	if playlistID == "" {
		return mcp.NewToolResultError("playlist_id is required"), nil
	}
	uris := stringArg(args, "uris")
	if uris == "" {
		return mcp.NewToolResultError("uris is required"), nil
	}

	var position *int
	if v, ok := intArg(args, "position"); ok {
		position = &v
	}

	snapshotID, err := t.client.AddItemsToPlaylist(ctx, playlistID, splitList(uris), position)
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{"snapshot_id": snapshotID})
}

func (t *Registry) handleFollowPlaylist(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	playlistID := stringArg(request.GetArguments(), "playlist_id")
	if playlistID == "" {
		return mcp.NewToolResultError("playlist_id is required"), nil
	}

	if err := t.client.FollowPlaylist(ctx, playlistID); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{
		"message": fmt.Sprintf("Successfully followed playlist %s", playlistID),
	})
}

func (t *Registry) handleUnfollowPlaylist(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	playlistID := stringArg(request.GetArguments(), "playlist_id")
	if playlistID == "" {
		return mcp.NewToolResultError("playlist_id is required"), nil
	}

	if err := t.client.UnfollowPlaylist(ctx, playlistID); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{
		"message": fmt.Sprintf("Successfully unfollowed playlist %s", playlistID),
	})
}

func (t *Registry) handleCheckPlaylistFollowers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	playlistID := stringArg(args, "playlist_id")
	if playlistID == "" {
		return mcp.NewToolResultError("playlist_id is required"), nil
	}
	ids := stringArg(args, "ids")
	if ids == "" {
		return mcp.NewToolResultError("ids is required"), nil
	}

	follows, err := t.client.CheckPlaylistFollowers(ctx, playlistID, ids)
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(follows)
}
