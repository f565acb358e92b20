package tools

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotify-mcp/internal/services"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// registerUserTools registers the user profile and follow tools.
func (t *Registry) registerUserTools(srv *mcpserver.MCPServer) {
	getProfile := mcp.NewTool("get-user-profile",
		mcp.WithDescription("Get public profile information about a Spotify user."),
		mcp.WithString("user_id", mcp.Required(), mcp.Description("The Spotify user ID")),
	)
	srv.AddTool(getProfile, t.handleGetUserProfile)

	getCurrentProfile := mcp.NewTool("get-current-user-profile",
		mcp.WithDescription("Get detailed profile information about the current user."),
	)
	srv.AddTool(getCurrentProfile, t.handleGetCurrentUserProfile)

	topTracks := mcp.NewTool("get-user-top-tracks",
		mcp.WithDescription("Get the current user's top tracks based on calculated affinity."),
		mcp.WithString("time_range", mcp.Enum("short_term", "medium_term", "long_term"),
			mcp.Description("Time frame the affinities are computed over; defaults to medium_term")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of items to return (1-50)")),
		mcp.WithNumber("offset", mcp.Description("Index of the first item to return")),
	)
	srv.AddTool(topTracks, t.handleGetTopTracks)

	topArtists := mcp.NewTool("get-user-top-artists",
		mcp.WithDescription("Get the current user's top artists based on calculated affinity."),
		mcp.WithString("time_range", mcp.Enum("short_term", "medium_term", "long_term"),
			mcp.Description("Time frame the affinities are computed over; defaults to medium_term")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of items to return (1-50)")),
		mcp.WithNumber("offset", mcp.Description("Index of the first item to return")),
	)
	srv.AddTool(topArtists, t.handleGetTopArtists)

	follow := mcp.NewTool("follow-artists-or-users",
		mcp.WithDescription("Add the current user as a follower of one or more artists or other users."),
		mcp.WithString("type", mcp.Required(), mcp.Enum("artist", "user"), mcp.Description("The ID type")),
		mcp.WithString("ids", mcp.Required(), mcp.Description("Comma-separated artist or user IDs")),
	)
	srv.AddTool(follow, t.handleFollowArtistsOrUsers)

	unfollow := mcp.NewTool("unfollow-artists-or-users",
		mcp.WithDescription("Remove the current user as a follower of one or more artists or other users."),
		mcp.WithString("type", mcp.Required(), mcp.Enum("artist", "user"), mcp.Description("The ID type")),
		mcp.WithString("ids", mcp.Required(), mcp.Description("Comma-separated artist or user IDs")),
	)
	srv.AddTool(unfollow, t.handleUnfollowArtistsOrUsers)

	followed := mcp.NewTool("get-followed-artists",
		mcp.WithDescription("Get the current user's followed artists."),
		mcp.WithString("after", mcp.Description("The last artist ID from the previous page")),
		mcp.WithNumber("limit", mcp.Description("Maximum number of items to return (1-50)")),
	)
	srv.AddTool(followed, t.handleGetFollowedArtists)

	checkFollows := mcp.NewTool("check-follows",
		mcp.WithDescription("Check if the current user follows one or more artists or other users."),
		mcp.WithString("type", mcp.Required(), mcp.Enum("artist", "user"), mcp.Description("The ID type")),
		mcp.WithString("ids", mcp.Required(), mcp.Description("Comma-separated artist or user IDs")),
	)
	srv.AddTool(checkFollows, t.handleCheckFollows)
}

func (t *Registry) handleGetUserProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	userID := stringArg(request.GetArguments(), "user_id")
	if userID == "" {
		return mcp.NewToolResultError("user_id is required"), nil
	}

	profile, err := t.client.GetUserProfile(ctx, userID)
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(profile)
}

func (t *Registry) handleGetCurrentUserProfile(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	profile, err := t.client.GetCurrentUserProfile(ctx)
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(profile)
}

func topItemsOpts(args map[string]any) services.TopItemsOpts {
	opts := services.TopItemsOpts{TimeRange: stringArg(args, "time_range")}
	if limit, ok := intArg(args, "limit"); ok {
		opts.Limit = limit
	}
	if offset, ok := intArg(args, "offset"); ok {
		opts.Offset = offset
	}
	return opts
}

func (t *Registry) handleGetTopTracks(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	tracks, err := t.client.GetTopTracks(ctx, topItemsOpts(request.GetArguments()))
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(tracks)
}

func (t *Registry) handleGetTopArtists(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	artists, err := t.client.GetTopArtists(ctx, topItemsOpts(request.GetArguments()))
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(artists)
}

func (t *Registry) handleFollowArtistsOrUsers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	followType := stringArg(args, "type")
	ids := stringArg(args, "ids")
	if followType == "" || ids == "" {
		return mcp.NewToolResultError("type and ids are required"), nil
	}

	if err := t.client.FollowArtistsOrUsers(ctx, followType, ids); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{
		"message": fmt.Sprintf("Successfully followed %ss: %s", followType, ids),
	})
}

func (t *Registry) handleUnfollowArtistsOrUsers(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	followType := stringArg(args, "type")
	ids := stringArg(args, "ids")
	if followType == "" || ids == "" {
		return mcp.NewToolResultError("type and ids are required"), nil
	}

	if err := t.client.UnfollowArtistsOrUsers(ctx, followType, ids); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{
		"message": fmt.Sprintf("Successfully unfollowed %ss: %s", followType, ids),
	})
}

func (t *Registry) handleGetFollowedArtists(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	limit, _ := intArg(args, "limit")

	artists, err := t.client.GetFollowedArtists(ctx, stringArg(args, "after"), limit)
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(artists)
}

func (t *Registry) handleCheckFollows(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	followType := stringArg(args, "type")
	ids := stringArg(args, "ids")
	if followType == "" || ids == "" {
		return mcp.NewToolResultError("type and ids are required"), nil
	}

	follows, err := t.client.CheckFollows(ctx, followType, ids)
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(follows)
}
