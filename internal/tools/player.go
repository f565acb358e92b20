package tools

import (
	"context"
	"fmt"

	"github.com/desertthunder/spotify-mcp/internal/services"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// registerPlayerTools registers the Spotify Connect playback tools.
func (t *Registry) registerPlayerTools(srv *mcpserver.MCPServer) {
	getPlaybackState := mcp.NewTool("get-playback-state",
		mcp.WithDescription("Get information about the user's current playback state, including track or episode, progress, and active device."),
		mcp.WithString("market", mcp.Description("ISO 3166-1 alpha-2 country code")),
		mcp.WithString("additional_types", mcp.Description("Comma-separated item types besides track, e.g. episode")),
	)
	srv.AddTool(getPlaybackState, t.handleGetPlaybackState)

	transferPlayback := mcp.NewTool("transfer-playback",
		mcp.WithDescription("Transfer playback to a new device and optionally begin playback. Note: this only works for Spotify Premium users."),
		mcp.WithString("device_ids", mcp.Required(), mcp.Description("Comma-separated device IDs to transfer playback to")),
		mcp.WithBoolean("play", mcp.Description("Start playback on the new device")),
	)
	srv.AddTool(transferPlayback, t.handleTransferPlayback)

	getDevices := mcp.NewTool("get-available-devices",
		mcp.WithDescription("Get information about a user's available Spotify Connect devices. Some device models are not supported and will not be listed."),
	)
	srv.AddTool(getDevices, t.handleGetAvailableDevices)

	getCurrentlyPlaying := mcp.NewTool("get-currently-playing-track",
		mcp.WithDescription("Get the track currently being played on the user's Spotify account."),
		mcp.WithString("market", mcp.Description("ISO 3166-1 alpha-2 country code")),
		mcp.WithString("additional_types", mcp.Description("Comma-separated item types besides track, e.g. episode")),
	)
	srv.AddTool(getCurrentlyPlaying, t.handleGetCurrentlyPlaying)

	startResume := mcp.NewTool("start-resume-playback",
		mcp.WithDescription("Start a new playback context or resume current playback on the user's active device. Provide either context_uri or uris."),
		mcp.WithString("device_id", mcp.Description("Device to target; defaults to the active device")),
		mcp.WithString("context_uri", mcp.Description("Spotify URI of the context to play (album, artist, playlist)")),
		mcp.WithString("uris", mcp.Description("Comma-separated track URIs to play")),
		mcp.WithNumber("offset_position", mcp.Description("Zero-based position in the context to start from")),
		mcp.WithString("offset_uri", mcp.Description("URI of the item in the context to start from")),
		mcp.WithNumber("position_ms", mcp.Description("Position in milliseconds to start playback at")),
	)
	srv.AddTool(startResume, t.handleStartResumePlayback)

	pause := mcp.NewTool("pause-playback",
		mcp.WithDescription("Pause playback on the user's account."),
		mcp.WithString("device_id", mcp.Description("Device to target; defaults to the active device")),
	)
	srv.AddTool(pause, t.handlePausePlayback)

	skipNext := mcp.NewTool("skip-to-next",
		mcp.WithDescription("Skip to the next track in the user's queue."),
		mcp.WithString("device_id", mcp.Description("Device to target; defaults to the active device")),
	)
	srv.AddTool(skipNext, t.handleSkipToNext)

	skipPrevious := mcp.NewTool("skip-to-previous",
		mcp.WithDescription("Skip to the previous track in the user's queue."),
		mcp.WithString("device_id", mcp.Description("Device to target; defaults to the active device")),
	)
	srv.AddTool(skipPrevious, t.handleSkipToPrevious)

	seek := mcp.NewTool("seek-to-position",
		mcp.WithDescription("Seek to the given position in the user's currently playing track."),
		mcp.WithNumber("position_ms", mcp.Required(), mcp.Description("Position in milliseconds to seek to")),
		mcp.WithString("device_id", mcp.Description("Device to target; defaults to the active device")),
	)
	srv.AddTool(seek, t.handleSeekToPosition)

	setRepeat := mcp.NewTool("set-repeat-mode",
		mcp.WithDescription("Set the repeat mode for the user's playback."),
		mcp.WithString("state", mcp.Required(), mcp.Enum("track", "context", "off"),
			mcp.Description("track repeats the current track, context repeats the current context, off turns repeat off")),
		mcp.WithString("device_id", mcp.Description("Device to target; defaults to the active device")),
	)
	srv.AddTool(setRepeat, t.handleSetRepeatMode)

	setVolume := mcp.NewTool("set-playback-volume",
		mcp.WithDescription("Set the volume for the user's current playback device."),
		mcp.WithNumber("volume_percent", mcp.Required(), mcp.Description("Volume percentage between 0 and 100")),
		mcp.WithString("device_id", mcp.Description("Device to target; defaults to the active device")),
	)
	srv.AddTool(setVolume, t.handleSetPlaybackVolume)

	toggleShuffle := mcp.NewTool("toggle-playback-shuffle",
		mcp.WithDescription("Toggle shuffle on or off for the user's playback."),
		mcp.WithBoolean("state", mcp.Required(), mcp.Description("true to shuffle, false to play in order")),
		mcp.WithString("device_id", mcp.Description("Device to target; defaults to the active device")),
	)
	srv.AddTool(toggleShuffle, t.handleToggleShuffle)

	recentlyPlayed := mcp.NewTool("get-recently-played",
		mcp.WithDescription("Get tracks from the user's recently played history."),
		mcp.WithNumber("limit", mcp.Description("Maximum number of items to return (1-50)")),
		mcp.WithNumber("after", mcp.Description("Unix timestamp in milliseconds; returns items played after this time")),
		mcp.WithNumber("before", mcp.Description("Unix timestamp in milliseconds; returns items played before this time")),
	)
	srv.AddTool(recentlyPlayed, t.handleGetRecentlyPlayed)

	getQueue := mcp.NewTool("get-queue",
		mcp.WithDescription("Get the list of items in the user's playback queue."),
	)
	srv.AddTool(getQueue, t.handleGetQueue)

	addToQueue := mcp.NewTool("add-to-queue",
		mcp.WithDescription("Add an item to the end of the user's playback queue."),
		mcp.WithString("uri", mcp.Required(), mcp.Description("Spotify URI of the track or episode to queue")),
		mcp.WithString("device_id", mcp.Description("Device to target; defaults to the active device")),
	)
	srv.AddTool(addToQueue, t.handleAddToQueue)
}

func (t *Registry) handleGetPlaybackState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	state, err := t.client.GetPlaybackState(ctx, stringArg(args, "market"), stringArg(args, "additional_types"))
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(state)
}

func (t *Registry) handleTransferPlayback(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	deviceIDs := stringArg(args, "device_ids")
	if deviceIDs == "" {
		return mcp.NewToolResultError("device_ids is required"), nil
	}
	play, _ := boolArg(args, "play")

	if err := t.client.TransferPlayback(ctx, splitList(deviceIDs), play); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{
		"message": fmt.Sprintf("Successfully transferred playback to device: %s", deviceIDs),
	})
}

func (t *Registry) handleGetAvailableDevices(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	devices, err := t.client.GetAvailableDevices(ctx)
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(devices)
}

func (t *Registry) handleGetCurrentlyPlaying(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	state, err := t.client.GetCurrentlyPlayingTrack(ctx, stringArg(args, "market"), stringArg(args, "additional_types"))
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(state)
}

func (t *Registry) handleStartResumePlayback(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	opts := services.StartPlaybackOpts{
		DeviceID:   stringArg(args, "device_id"),
		ContextURI: stringArg(args, "context_uri"),
	}
	if uris := stringArg(args, "uris"); uris != "" {
		opts.URIs = splitList(uris)
	}
	if opts.ContextURI != "" && len(opts.URIs) > 0 {
		return mcp.NewToolResultError("context_uri and uris are mutually exclusive"), nil
	}

	offset := &services.PlaybackOffset{}
	if position, ok := intArg(args, "offset_position"); ok {
		offset.Position = &position
	}
	offset.URI = stringArg(args, "offset_uri")
	if offset.Position != nil || offset.URI != "" {
		opts.Offset = offset
	}
	if positionMS, ok := intArg(args, "position_ms"); ok {
		opts.PositionMS = &positionMS
	}

	if err := t.client.StartResumePlayback(ctx, opts); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{"message": "Playback started"})
}

func (t *Registry) handlePausePlayback(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := t.client.PausePlayback(ctx, stringArg(request.GetArguments(), "device_id")); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{"message": "Playback paused"})
}

func (t *Registry) handleSkipToNext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := t.client.SkipToNext(ctx, stringArg(request.GetArguments(), "device_id")); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{"message": "Skipped to next track"})
}

func (t *Registry) handleSkipToPrevious(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if err := t.client.SkipToPrevious(ctx, stringArg(request.GetArguments(), "device_id")); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{"message": "Skipped to previous track"})
}

func (t *Registry) handleSeekToPosition(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	positionMS, ok := intArg(args, "position_ms")
	if !ok {
		return mcp.NewToolResultError("position_ms is required"), nil
	}

	if err := t.client.SeekToPosition(ctx, positionMS, stringArg(args, "device_id")); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{"message": fmt.Sprintf("Seeked to position %dms", positionMS)})
}

func (t *Registry) handleSetRepeatMode(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	state := stringArg(args, "state")
	if state == "" {
		return mcp.NewToolResultError("state is required"), nil
	}

	if err := t.client.SetRepeatMode(ctx, state, stringArg(args, "device_id")); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{"message": fmt.Sprintf("Repeat mode set to %s", state)})
}

func (t *Registry) handleSetPlaybackVolume(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	volume, ok := intArg(args, "volume_percent")
	if !ok {
		return mcp.NewToolResultError("volume_percent is required"), nil
	}

	if err := t.client.SetPlaybackVolume(ctx, volume, stringArg(args, "device_id")); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{"message": fmt.Sprintf("Volume set to %d%%", volume)})
}

func (t *Registry) handleToggleShuffle(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	state, ok := boolArg(args, "state")
	if !ok {
		return mcp.NewToolResultError("state is required"), nil
	}

	if err := t.client.TogglePlaybackShuffle(ctx, state, stringArg(args, "device_id")); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{"message": fmt.Sprintf("Shuffle set to %t", state)})
}

func (t *Registry) handleGetRecentlyPlayed(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	opts := services.RecentlyPlayedOpts{}
	if limit, ok := intArg(args, "limit"); ok {
		opts.Limit = limit
	}
	if after, ok := intArg(args, "after"); ok {
		opts.After = int64(after)
	}
	if before, ok := intArg(args, "before"); ok {
		opts.Before = int64(before)
	}

	recent, err := t.client.GetRecentlyPlayed(ctx, opts)
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(recent)
}

func (t *Registry) handleGetQueue(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queue, err := t.client.GetQueue(ctx)
	if err != nil {
		return opError(err), nil
	}
	return jsonResult(queue)
}

func (t *Registry) handleAddToQueue(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	uri := stringArg(args, "uri")
	if uri == "" {
		return mcp.NewToolResultError("uri is required"), nil
	}

	if err := t.client.AddToQueue(ctx, uri, stringArg(args, "device_id")); err != nil {
		return opError(err), nil
	}
	return jsonResult(map[string]any{"message": fmt.Sprintf("Added %s to queue", uri)})
}
