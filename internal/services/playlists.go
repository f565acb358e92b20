// Playlist operations.
package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/desertthunder/spotify-mcp/internal/shared"
)

// MaxPlaylistAddItems is the hard upstream cap on URIs per add-items call.
const MaxPlaylistAddItems = 100

// PlaylistQuery carries the optional filters of [Client.GetPlaylist].
type PlaylistQuery struct {
	Market          string
	Fields          string
	AdditionalTypes string
}

// PlaylistItemsQuery carries the filters and pagination of [Client.GetPlaylistItems].
type PlaylistItemsQuery struct {
	Market          string
	Fields          string
	Limit           int
	Offset          int
	AdditionalTypes string
}

// PlaylistDetails carries the fields of [Client.ChangePlaylistDetails]. Nil
// fields are left unchanged upstream.
type PlaylistDetails struct {
	Name          *string
	Description   *string
	Public        *bool
	Collaborative *bool
}

// PlaylistUpdate carries the parameters of [Client.UpdatePlaylistItems].
//
// A URI list replaces the playlist's items wholesale; the range fields reorder
// existing items. The two forms are mutually exclusive.
type PlaylistUpdate struct {
	URIs         []string
	RangeStart   *int
	InsertBefore *int
	RangeLength  *int
	SnapshotID   string
}

// GetPlaylist returns a playlist by id.
func (c *Client) GetPlaylist(ctx context.Context, playlistID string, query PlaylistQuery) (*PlaylistSummary, error) {
	params := url.Values{}
	if query.Market != "" {
		params.Set("market", query.Market)
	}
	if query.Fields != "" {
		params.Set("fields", query.Fields)
	}
	if query.AdditionalTypes != "" {
		params.Set("additional_types", query.AdditionalTypes)
	}

	var playlist Playlist
	endpoint := fmt.Sprintf("playlists/%s", playlistID)
	if _, err := c.Request(ctx, http.MethodGet, endpoint, &RequestOpts{Params: params}, &playlist); err != nil {
		return nil, err
	}

	return SlimPlaylist(&playlist), nil
}

// ChangePlaylistDetails updates a playlist's name, description, public flag
// or collaborative flag.
func (c *Client) ChangePlaylistDetails(ctx context.Context, playlistID string, details PlaylistDetails) error {
	body := map[string]any{}
	if details.Name != nil {
		body["name"] = *details.Name
	}
	if details.Description != nil {
		body["description"] = *details.Description
	}
	if details.Public != nil {
		body["public"] = *details.Public
	}
	if details.Collaborative != nil {
		body["collaborative"] = *details.Collaborative
	}
	if len(body) == 0 {
		return fmt.Errorf("%w: no details to change", shared.ErrMissingArgument)
	}

	endpoint := fmt.Sprintf("playlists/%s", playlistID)
	_, err := c.Request(ctx, http.MethodPut, endpoint, &RequestOpts{Body: body}, nil)
	return err
}

// GetPlaylistItems returns a page of a playlist's items.
func (c *Client) GetPlaylistItems(ctx context.Context, playlistID string, query PlaylistItemsQuery) (*Page[PlaylistTrackSummary], error) {
	params := url.Values{}
	if query.Market != "" {
		params.Set("market", query.Market)
	}
	if query.Fields != "" {
		params.Set("fields", query.Fields)
	}
	if query.Limit > 0 {
		params.Set("limit", strconv.Itoa(query.Limit))
	}
	if query.Offset > 0 {
		params.Set("offset", strconv.Itoa(query.Offset))
	}
	if query.AdditionalTypes != "" {
		params.Set("additional_types", query.AdditionalTypes)
	}

	var page Paging[PlaylistTrack]
	endpoint := fmt.Sprintf("playlists/%s/tracks", playlistID)
	if _, err := c.Request(ctx, http.MethodGet, endpoint, &RequestOpts{Params: params}, &page); err != nil {
		return nil, err
	}

	return SlimPage(&page, SlimPlaylistTrack), nil
}

// UpdatePlaylistItems replaces a playlist's items with a URI list, or reorders
// a range of existing items. Returns the new snapshot id.
func (c *Client) UpdatePlaylistItems(ctx context.Context, playlistID string, update PlaylistUpdate) (string, error) {
	hasURIs := len(update.URIs) > 0
	hasRange := update.RangeStart != nil || update.InsertBefore != nil || update.RangeLength != nil
	if hasURIs && hasRange {
		return "", fmt.Errorf("%w: uris and range parameters are mutually exclusive", shared.ErrInvalidArgument)
	}
	if !hasURIs && !hasRange {
		return "", fmt.Errorf("%w: either uris or range parameters are required", shared.ErrMissingArgument)
	}

	body := map[string]any{}
	if hasURIs {
		body["uris"] = update.URIs
	}
	if update.RangeStart != nil {
		body["range_start"] = *update.RangeStart
	}
	if update.InsertBefore != nil {
		body["insert_before"] = *update.InsertBefore
	}
	if update.RangeLength != nil {
		body["range_length"] = *update.RangeLength
	}
	if update.SnapshotID != "" {
		body["snapshot_id"] = update.SnapshotID
	}

	var response struct {
		SnapshotID string `json:"snapshot_id"`
	}
	endpoint := fmt.Sprintf("playlists/%s/tracks", playlistID)
	if _, err := c.Request(ctx, http.MethodPut, endpoint, &RequestOpts{Body: body}, &response); err != nil {
		return "", err
	}

	return response.SnapshotID, nil
}

// AddItemsToPlaylist appends (or inserts, when position is set) up to 100
// items to a playlist. Returns the new snapshot id.
func (c *Client) AddItemsToPlaylist(ctx context.Context, playlistID string, uris []string, position *int) (string, error) {
	if len(uris) == 0 {
		return "", fmt.Errorf("%w: no uris provided", shared.ErrMissingArgument)
	}
	if len(uris) > MaxPlaylistAddItems {
		return "", fmt.Errorf("%w: maximum 100 items per request", shared.ErrInvalidArgument)
	}

	body := map[string]any{"uris": uris}
	if position != nil {
		body["position"] = *position
	}

	var response struct {
		SnapshotID string `json:"snapshot_id"`
	}
	endpoint := fmt.Sprintf("playlists/%s/tracks", playlistID)
	if _, err := c.Request(ctx, http.MethodPost, endpoint, &RequestOpts{Body: body}, &response); err != nil {
		return "", err
	}

	return response.SnapshotID, nil
}

// FollowPlaylist adds the current user as a follower of the playlist.
func (c *Client) FollowPlaylist(ctx context.Context, playlistID string) error {
	endpoint := fmt.Sprintf("playlists/%s/followers", playlistID)
	_, err := c.Request(ctx, http.MethodPut, endpoint, nil, nil)
	return err
}

// UnfollowPlaylist removes the current user as a follower of the playlist.
func (c *Client) UnfollowPlaylist(ctx context.Context, playlistID string) error {
	endpoint := fmt.Sprintf("playlists/%s/followers", playlistID)
	_, err := c.Request(ctx, http.MethodDelete, endpoint, nil, nil)
	return err
}

// CheckPlaylistFollowers reports, per comma-separated user id, whether that
// user follows the playlist. The result order matches the input order.
func (c *Client) CheckPlaylistFollowers(ctx context.Context, playlistID, ids string) ([]bool, error) {
	if strings.TrimSpace(ids) == "" {
		return nil, fmt.Errorf("%w: no user ids provided", shared.ErrMissingArgument)
	}

	params := url.Values{}
	params.Set("ids", ids)

	var result []bool
	endpoint := fmt.Sprintf("playlists/%s/followers/contains", playlistID)
	if _, err := c.Request(ctx, http.MethodGet, endpoint, &RequestOpts{Params: params}, &result); err != nil {
		return nil, err
	}
	return result, nil
}
