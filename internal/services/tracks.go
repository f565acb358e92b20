// Track and library operations.
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

// maxTrackIDs is the upstream cap on ids per several-tracks call.
const maxTrackIDs = 50

// SavedTrackSummary is a slimmed library entry.
type SavedTrackSummary struct {
	AddedAt string        `json:"added_at"`
	Track   *TrackSummary `json:"track"`
}

// splitIDs normalizes a comma-separated id list, trimming whitespace and
// dropping empty entries.
func splitIDs(ids string) []string {
	parts := strings.Split(ids, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// GetTrack returns a single track by id.
func (c *Client) GetTrack(ctx context.Context, trackID, market string) (*TrackSummary, error) {
	params := url.Values{}
	if market != "" {
		params.Set("market", market)
	}

	var track Track
	endpoint := fmt.Sprintf("tracks/%s", trackID)
	if _, err := c.Request(ctx, http.MethodGet, endpoint, &RequestOpts{Params: params}, &track); err != nil {
		return nil, err
	}

	return SlimTrack(&track), nil
}

// GetSeveralTracks returns multiple tracks for a comma-separated id list.
func (c *Client) GetSeveralTracks(ctx context.Context, ids, market string) ([]*TrackSummary, error) {
	idList := splitIDs(ids)
	if len(idList) == 0 {
		return nil, fmt.Errorf("%w: no track ids provided", shared.ErrMissingArgument)
	}
	if len(idList) > maxTrackIDs {
		return nil, fmt.Errorf("%w: maximum 50 track ids allowed", shared.ErrInvalidArgument)
	}

	params := url.Values{}
	params.Set("ids", strings.Join(idList, ","))
	if market != "" {
		params.Set("market", market)
	}

	var response struct {
		Tracks []Track `json:"tracks"`
	}
	if _, err := c.Request(ctx, http.MethodGet, "tracks", &RequestOpts{Params: params}, &response); err != nil {
		return nil, err
	}

	tracks := make([]*TrackSummary, 0, len(response.Tracks))
	for i := range response.Tracks {
		tracks = append(tracks, SlimTrack(&response.Tracks[i]))
	}
	return tracks, nil
}

// GetSavedTracks returns a page of the user's saved tracks.
func (c *Client) GetSavedTracks(ctx context.Context, market string, limit, offset int) (*Page[SavedTrackSummary], error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 50 {
		limit = 50
	}

	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))
	if market != "" {
		params.Set("market", market)
	}

	var page Paging[SavedTrack]
	if _, err := c.Request(ctx, http.MethodGet, "me/tracks", &RequestOpts{Params: params}, &page); err != nil {
		return nil, err
	}

	return SlimPage(&page, func(s *SavedTrack) *SavedTrackSummary {
		if s == nil {
			return nil
		}
		return &SavedTrackSummary{AddedAt: s.AddedAt, Track: SlimTrack(s.Track)}
	}), nil
}

// SaveTracks saves the comma-separated track ids to the user's library.
func (c *Client) SaveTracks(ctx context.Context, ids string) error {
	idList := splitIDs(ids)
	if len(idList) == 0 {
		return fmt.Errorf("%w: no track ids provided", shared.ErrMissingArgument)
	}

	body := map[string]any{"ids": idList}
	_, err := c.Request(ctx, http.MethodPut, "me/tracks", &RequestOpts{Body: body}, nil)
	return err
}

// RemoveSavedTracks removes the comma-separated track ids from the user's library.
func (c *Client) RemoveSavedTracks(ctx context.Context, ids string) error {
	idList := splitIDs(ids)
	if len(idList) == 0 {
		return fmt.Errorf("%w: no track ids provided", shared.ErrMissingArgument)
	}

	body := map[string]any{"ids": idList}
	_, err := c.Request(ctx, http.MethodDelete, "me/tracks", &RequestOpts{Body: body}, nil)
	return err
}

// CheckSavedTracks reports, per comma-separated track id, whether it is saved
// in the user's library. The result order matches the input order.
func (c *Client) CheckSavedTracks(ctx context.Context, ids string) ([]bool, error) {
	if len(splitIDs(ids)) == 0 {
		return nil, fmt.Errorf("%w: no track ids provided", shared.ErrMissingArgument)
	}

	params := url.Values{}
	params.Set("ids", ids)

	var result []bool
	if _, err := c.Request(ctx, http.MethodGet, "me/tracks/contains", &RequestOpts{Params: params}, &result); err != nil {
		return nil, err
	}
	return result, nil
}
