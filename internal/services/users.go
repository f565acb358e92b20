// User profile and follow operations.
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

const maxFollowLimit = 50

// timeRanges is the set of windows the top-items endpoint accepts.
var timeRanges = map[string]bool{
	"short_term":  true,
	"medium_term": true,
	"long_term":   true,
}

// FollowedArtists is the slimmed cursor-paginated followed-artists collection.
type FollowedArtists struct {
	Total int              `json:"total"`
	Limit int              `json:"limit"`
	Next  *string          `json:"next"`
	After string           `json:"after,omitempty"`
	Items []*ArtistSummary `json:"items"`
}

// TopItemsOpts carries the parameters of the top-items operations.
type TopItemsOpts struct {
	TimeRange string
	Limit     int
	Offset    int
}

func (o *TopItemsOpts) params() (url.Values, error) {
	timeRange := o.TimeRange
	if timeRange == "" {
		timeRange = "medium_term"
	}
	if !timeRanges[timeRange] {
		return nil, fmt.Errorf("%w: time_range must be short_term, medium_term or long_term", shared.ErrInvalidArgument)
	}

	limit := o.Limit
	if limit <= 0 || limit > maxFollowLimit {
		limit = 20
	}

	params := url.Values{}
	params.Set("time_range", timeRange)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(o.Offset))
	return params, nil
}

// validateFollowType checks the artist-or-user discriminator shared by the
// follow operations.
func validateFollowType(followType string) error {
	if followType != "artist" && followType != "user" {
		return fmt.Errorf("%w: type must be artist or user", shared.ErrInvalidArgument)
	}
	return nil
}

// GetUserProfile returns the public profile of an arbitrary user.
func (c *Client) GetUserProfile(ctx context.Context, userID string) (*UserProfileSummary, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, fmt.Errorf("%w: user id is required", shared.ErrMissingArgument)
	}

	var profile UserProfile
	endpoint := fmt.Sprintf("users/%s", userID)
	if _, err := c.Request(ctx, http.MethodGet, endpoint, nil, &profile); err != nil {
		return nil, err
	}
	return SlimUserProfile(&profile), nil
}

// GetCurrentUserProfile returns the authenticated user's profile, including
// email and country when the token's scopes allow them.
func (c *Client) GetCurrentUserProfile(ctx context.Context) (*UserProfileSummary, error) {
	var profile UserProfile
	if _, err := c.Request(ctx, http.MethodGet, "me", nil, &profile); err != nil {
		return nil, err
	}
	return SlimUserProfile(&profile), nil
}

// GetTopTracks returns the user's most listened tracks over the given window.
func (c *Client) GetTopTracks(ctx context.Context, opts TopItemsOpts) (*Page[TrackSummary], error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}

	var page Paging[Track]
	if _, err := c.Request(ctx, http.MethodGet, "me/top/tracks", &RequestOpts{Params: params}, &page); err != nil {
		return nil, err
	}
	return SlimPage(&page, SlimTrack), nil
}

// GetTopArtists returns the user's most listened artists over the given window.
func (c *Client) GetTopArtists(ctx context.Context, opts TopItemsOpts) (*Page[ArtistSummary], error) {
	params, err := opts.params()
	if err != nil {
		return nil, err
	}

	var page Paging[Artist]
	if _, err := c.Request(ctx, http.MethodGet, "me/top/artists", &RequestOpts{Params: params}, &page); err != nil {
		return nil, err
	}
	return SlimPage(&page, SlimArtist), nil
}

// FollowArtistsOrUsers follows the comma-separated artist or user ids.
func (c *Client) FollowArtistsOrUsers(ctx context.Context, followType, ids string) error {
	if err := validateFollowType(followType); err != nil {
		return err
	}
	idList := splitIDs(ids)
	if len(idList) == 0 {
		return fmt.Errorf("%w: no ids provided", shared.ErrMissingArgument)
	}

	params := url.Values{}
	params.Set("type", followType)
	body := map[string]any{"ids": idList}
	_, err := c.Request(ctx, http.MethodPut, "me/following", &RequestOpts{Params: params, Body: body}, nil)
	return err
}

// UnfollowArtistsOrUsers unfollows the comma-separated artist or user ids.
func (c *Client) UnfollowArtistsOrUsers(ctx context.Context, followType, ids string) error {
	if err := validateFollowType(followType); err != nil {
		return err
	}
	idList := splitIDs(ids)
	if len(idList) == 0 {
		return fmt.Errorf("%w: no ids provided", shared.ErrMissingArgument)
	}

	params := url.Values{}
	params.Set("type", followType)
	body := map[string]any{"ids": idList}
	_, err := c.Request(ctx, http.MethodDelete, "me/following", &RequestOpts{Params: params, Body: body}, nil)
	return err
}

// GetFollowedArtists returns the user's followed artists, cursor-paginated by
// the last artist id seen.
func (c *Client) GetFollowedArtists(ctx context.Context, after string, limit int) (*FollowedArtists, error) {
	if limit <= 0 || limit > maxFollowLimit {
		limit = 20
	}

	params := url.Values{}
	params.Set("type", "artist")
	params.Set("limit", strconv.Itoa(limit))
	if after != "" {
		params.Set("after", after)
	}

	var response struct {
		Artists CursorPaging[Artist] `json:"artists"`
	}
	if _, err := c.Request(ctx, http.MethodGet, "me/following", &RequestOpts{Params: params}, &response); err != nil {
		return nil, err
	}

	items := make([]*ArtistSummary, 0, len(response.Artists.Items))
	for i := range response.Artists.Items {
		items = append(items, SlimArtist(&response.Artists.Items[i]))
	}
	return &FollowedArtists{
		Total: response.Artists.Total,
		Limit: response.Artists.Limit,
		Next:  response.Artists.Next,
		After: response.Artists.Cursors.After,
		Items: items,
	}, nil
}

// CheckFollows reports, per comma-separated id, whether the current user
// follows that artist or user. The result order matches the input order.
func (c *Client) CheckFollows(ctx context.Context, followType, ids string) ([]bool, error) {
	if err := validateFollowType(followType); err != nil {
		return nil, err
	}
	if len(splitIDs(ids)) == 0 {
		return nil, fmt.Errorf("%w: no ids provided", shared.ErrMissingArgument)
	}

	params := url.Values{}
	params.Set("type", followType)
	params.Set("ids", ids)

	var result []bool
	if _, err := c.Request(ctx, http.MethodGet, "me/following/contains", &RequestOpts{Params: params}, &result); err != nil {
		return nil, err
	}
	return result, nil
}
