// Playback (Spotify Connect) operations.
package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/desertthunder/spotify-mcp/internal/shared"
)

// StatusNothingPlaying is the explanatory status returned when the upstream
// reports no active playback (HTTP 204).
const StatusNothingPlaying = "nothing is currently playing"

// PlaybackOffset selects where playback starts within a context.
type PlaybackOffset struct {
	Position *int   `json:"position,omitempty"`
	URI      string `json:"uri,omitempty"`
}

// StartPlaybackOpts carries the optional parameters of [Client.StartResumePlayback].
// ContextURI and URIs are mutually exclusive ways of choosing what to play.
type StartPlaybackOpts struct {
	DeviceID   string
	ContextURI string
	URIs       []string
	Offset     *PlaybackOffset
	PositionMS *int
}

// RecentlyPlayedOpts carries the cursor parameters of [Client.GetRecentlyPlayed].
type RecentlyPlayedOpts struct {
	Limit  int
	After  int64
	Before int64
}

// PlayHistorySummary is a slimmed recently-played entry.
type PlayHistorySummary struct {
	Track    *TrackSummary   `json:"track"`
	PlayedAt string          `json:"played_at"`
	Context  *ContextSummary `json:"context,omitempty"`
}

// RecentlyPlayed is the slimmed recently-played collection.
type RecentlyPlayed struct {
	Items []PlayHistorySummary `json:"items"`
}

// QueueSummary is the slimmed playback queue.
type QueueSummary struct {
	CurrentlyPlaying *TrackSummary   `json:"currently_playing"`
	Queue            []*TrackSummary `json:"queue"`
}

// DeviceList is the slimmed available-devices collection.
type DeviceList struct {
	Devices []*DeviceSummary `json:"devices"`
}

// GetPlaybackState returns the user's current playback state. An upstream 204
// translates into a summary whose Status explains that nothing is playing.
func (c *Client) GetPlaybackState(ctx context.Context, market, additionalTypes string) (*PlaybackSummary, error) {
	params := url.Values{}
	if market != "" {
		params.Set("market", market)
	}
	if additionalTypes != "" {
		params.Set("additional_types", additionalTypes)
	}

	var state PlaybackState
	status, err := c.Request(ctx, http.MethodGet, "me/player", &RequestOpts{Params: params}, &state)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return &PlaybackSummary{Status: StatusNothingPlaying}, nil
	}

	return SlimPlaybackState(&state), nil
}

// GetCurrentlyPlayingTrack returns the track currently playing. Like
// [Client.GetPlaybackState], a 204 yields a "nothing playing" summary.
func (c *Client) GetCurrentlyPlayingTrack(ctx context.Context, market, additionalTypes string) (*PlaybackSummary, error) {
	params := url.Values{}
	if market != "" {
		params.Set("market", market)
	}
	if additionalTypes != "" {
		params.Set("additional_types", additionalTypes)
	}

	var state PlaybackState
	status, err := c.Request(ctx, http.MethodGet, "me/player/currently-playing", &RequestOpts{Params: params}, &state)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNoContent {
		return &PlaybackSummary{Status: StatusNothingPlaying}, nil
	}

	return SlimPlaybackState(&state), nil
}

// TransferPlayback moves playback to the given devices, optionally starting
// playback there.
func (c *Client) TransferPlayback(ctx context.Context, deviceIDs []string, play bool) error {
	if len(deviceIDs) == 0 {
		return fmt.Errorf("%w: no device IDs provided", shared.ErrMissingArgument)
	}

	body := map[string]any{
		"device_ids": deviceIDs,
		"play":       play,
	}
	_, err := c.Request(ctx, http.MethodPut, "me/player", &RequestOpts{Body: body}, nil)
	return err
}

// GetAvailableDevices lists the user's available Spotify Connect devices.
func (c *Client) GetAvailableDevices(ctx context.Context) (*DeviceList, error) {
	var response struct {
		Devices []Device `json:"devices"`
	}
	if _, err := c.Request(ctx, http.MethodGet, "me/player/devices", nil, &response); err != nil {
		return nil, err
	}

	devices := make([]*DeviceSummary, 0, len(response.Devices))
	for i := range response.Devices {
		devices = append(devices, SlimDevice(&response.Devices[i]))
	}
	return &DeviceList{Devices: devices}, nil
}

// StartResumePlayback starts or resumes playback, by context URI or explicit
// URI list, optionally on a specific device and at a specific position.
func (c *Client) StartResumePlayback(ctx context.Context, opts StartPlaybackOpts) error {
	body := map[string]any{}
	if opts.ContextURI != "" {
		body["context_uri"] = opts.ContextURI
	}
	if len(opts.URIs) > 0 {
		body["uris"] = opts.URIs
	}
	if opts.Offset != nil {
		body["offset"] = opts.Offset
	}
	if opts.PositionMS != nil {
		body["position_ms"] = *opts.PositionMS
	}

	params := url.Values{}
	if opts.DeviceID != "" {
		params.Set("device_id", opts.DeviceID)
	}

	_, err := c.Request(ctx, http.MethodPut, "me/player/play", &RequestOpts{Params: params, Body: body}, nil)
	return err
}

// PausePlayback pauses playback, optionally on a specific device.
func (c *Client) PausePlayback(ctx context.Context, deviceID string) error {
	params := url.Values{}
	if deviceID != "" {
		params.Set("device_id", deviceID)
	}
	_, err := c.Request(ctx, http.MethodPut, "me/player/pause", &RequestOpts{Params: params}, nil)
	return err
}

// SkipToNext skips to the next track in the queue.
func (c *Client) SkipToNext(ctx context.Context, deviceID string) error {
	params := url.Values{}
	if deviceID != "" {
		params.Set("device_id", deviceID)
	}
	_, err := c.Request(ctx, http.MethodPost, "me/player/next", &RequestOpts{Params: params}, nil)
	return err
}

// SkipToPrevious skips to the previous track.
func (c *Client) SkipToPrevious(ctx context.Context, deviceID string) error {
	params := url.Values{}
	if deviceID != "" {
		params.Set("device_id", deviceID)
	}
	_, err := c.Request(ctx, http.MethodPost, "me/player/previous", &RequestOpts{Params: params}, nil)
	return err
}

// SeekToPosition seeks the current track to the given position.
func (c *Client) SeekToPosition(ctx context.Context, positionMS int, deviceID string) error {
	if positionMS < 0 {
		return fmt.Errorf("%w: position must be non-negative", shared.ErrInvalidArgument)
	}

	params := url.Values{}
	params.Set("position_ms", strconv.Itoa(positionMS))
	if deviceID != "" {
		params.Set("device_id", deviceID)
	}
	_, err := c.Request(ctx, http.MethodPut, "me/player/seek", &RequestOpts{Params: params}, nil)
	return err
}

// SetRepeatMode sets the repeat mode: "track", "context" or "off".
func (c *Client) SetRepeatMode(ctx context.Context, state, deviceID string) error {
	switch state {
	case "track", "context", "off":
	default:
		return fmt.Errorf("%w: repeat state must be track, context or off", shared.ErrInvalidArgument)
	}

	params := url.Values{}
	params.Set("state", state)
	if deviceID != "" {
		params.Set("device_id", deviceID)
	}
	_, err := c.Request(ctx, http.MethodPut, "me/player/repeat", &RequestOpts{Params: params}, nil)
	return err
}

// SetPlaybackVolume sets the playback volume as a percentage between 0 and 100.
func (c *Client) SetPlaybackVolume(ctx context.Context, volumePercent int, deviceID string) error {
	if volumePercent < 0 || volumePercent > 100 {
		return fmt.Errorf("%w: volume must be between 0 and 100", shared.ErrInvalidArgument)
	}

	params := url.Values{}
	params.Set("volume_percent", strconv.Itoa(volumePercent))
	if deviceID != "" {
		params.Set("device_id", deviceID)
	}
	_, err := c.Request(ctx, http.MethodPut, "me/player/volume", &RequestOpts{Params: params}, nil)
	return err
}

// TogglePlaybackShuffle turns shuffle on or off.
func (c *Client) TogglePlaybackShuffle(ctx context.Context, state bool, deviceID string) error {
	params := url.Values{}
	params.Set("state", strconv.FormatBool(state))
	if deviceID != "" {
		params.Set("device_id", deviceID)
	}
	_, err := c.Request(ctx, http.MethodPut, "me/player/shuffle", &RequestOpts{Params: params}, nil)
	return err
}

// GetRecentlyPlayed returns the user's recently played tracks. After and
// Before are unix millisecond cursors and are mutually exclusive upstream.
func (c *Client) GetRecentlyPlayed(ctx context.Context, opts RecentlyPlayedOpts) (*RecentlyPlayed, error) {
	params := url.Values{}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.After > 0 {
		params.Set("after", strconv.FormatInt(opts.After, 10))
	}
	if opts.Before > 0 {
		params.Set("before", strconv.FormatInt(opts.Before, 10))
	}

	var response struct {
		Items []PlayHistory `json:"items"`
	}
	if _, err := c.Request(ctx, http.MethodGet, "me/player/recently-played", &RequestOpts{Params: params}, &response); err != nil {
		return nil, err
	}

	items := make([]PlayHistorySummary, 0, len(response.Items))
	for _, item := range response.Items {
		items = append(items, PlayHistorySummary{
			Track:    SlimTrack(item.Track),
			PlayedAt: item.PlayedAt,
			Context:  SlimContext(item.Context),
		})
	}
	return &RecentlyPlayed{Items: items}, nil
}

// GetQueue returns the currently playing track and the upcoming queue.
func (c *Client) GetQueue(ctx context.Context) (*QueueSummary, error) {
	var response struct {
		CurrentlyPlaying *Track  `json:"currently_playing"`
		Queue            []Track `json:"queue"`
	}
	if _, err := c.Request(ctx, http.MethodGet, "me/player/queue", nil, &response); err != nil {
		return nil, err
	}

	queue := make([]*TrackSummary, 0, len(response.Queue))
	for i := range response.Queue {
		queue = append(queue, SlimTrack(&response.Queue[i]))
	}
	return &QueueSummary{
		CurrentlyPlaying: SlimTrack(response.CurrentlyPlaying),
		Queue:            queue,
	}, nil
}

// AddToQueue appends an item to the playback queue.
func (c *Client) AddToQueue(ctx context.Context, uri, deviceID string) error {
	if uri == "" {
		return fmt.Errorf("%w: uri is required", shared.ErrMissingArgument)
	}

	params := url.Values{}
	params.Set("uri", uri)
	if deviceID != "" {
		params.Set("device_id", deviceID)
	}
	_, err := c.Request(ctx, http.MethodPost, "me/player/queue", &RequestOpts{Params: params}, nil)
	return err
}
