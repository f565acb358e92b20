// Catalog search.
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

const (
	maxSearchLimit  = 50
	maxSearchOffset = 1000
)

// searchTypes is the set of resource types the search endpoint accepts.
var searchTypes = map[string]bool{
	"track":     true,
	"artist":    true,
	"album":     true,
	"playlist":  true,
	"show":      true,
	"episode":   true,
	"audiobook": true,
}

// SearchOpts carries the optional parameters of [Client.Search].
type SearchOpts struct {
	Market          string
	Limit           int
	Offset          int
	IncludeExternal string
}

// SearchResults holds one slimmed paging envelope per requested resource
// type; envelopes for types not requested are nil.
type SearchResults struct {
	Tracks     *Page[TrackSummary]     `json:"tracks,omitempty"`
	Artists    *Page[ArtistSummary]    `json:"artists,omitempty"`
	Albums     *Page[AlbumSummary]     `json:"albums,omitempty"`
	Playlists  *Page[PlaylistSummary]  `json:"playlists,omitempty"`
	Shows      *Page[ShowSummary]      `json:"shows,omitempty"`
	Episodes   *Page[EpisodeSummary]   `json:"episodes,omitempty"`
	Audiobooks *Page[AudiobookSummary] `json:"audiobooks,omitempty"`
}

// Search performs a free-text catalog search across the comma-separated
// resource types.
func (c *Client) Search(ctx context.Context, q, types string, opts SearchOpts) (*SearchResults, error) {
	if strings.TrimSpace(q) == "" {
		return nil, fmt.Errorf("%w: query is required", shared.ErrMissingArgument)
	}

	typeList := splitIDs(types)
	if len(typeList) == 0 {
		return nil, fmt.Errorf("%w: at least one search type is required", shared.ErrMissingArgument)
	}
	for _, t := range typeList {
		if !searchTypes[t] {
			return nil, fmt.Errorf("%w: unknown search type %q", shared.ErrInvalidArgument, t)
		}
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	if limit > maxSearchLimit {
		return nil, fmt.Errorf("%w: limit must be at most %d", shared.ErrInvalidArgument, maxSearchLimit)
	}
	if opts.Offset < 0 || opts.Offset > maxSearchOffset {
		return nil, fmt.Errorf("%w: offset must be between 0 and %d", shared.ErrInvalidArgument, maxSearchOffset)
	}
	if opts.IncludeExternal != "" && opts.IncludeExternal != "audio" {
		return nil, fmt.Errorf("%w: include_external must be %q", shared.ErrInvalidArgument, "audio")
	}

	params := url.Values{}
	params.Set("q", q)
	params.Set("type", strings.Join(typeList, ","))
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(opts.Offset))
	if opts.Market != "" {
		params.Set("market", opts.Market)
	}
	if opts.IncludeExternal != "" {
		params.Set("include_external", opts.IncludeExternal)
	}

	var response struct {
		Tracks     *Paging[Track]     `json:"tracks"`
		Artists    *Paging[Artist]    `json:"artists"`
		Albums     *Paging[Album]     `json:"albums"`
		Playlists  *Paging[Playlist]  `json:"playlists"`
		Shows      *Paging[Show]      `json:"shows"`
		Episodes   *Paging[Episode]   `json:"episodes"`
		Audiobooks *Paging[Audiobook] `json:"audiobooks"`
	}
	if _, err := c.Request(ctx, http.MethodGet, "search", &RequestOpts{Params: params}, &response); err != nil {
		return nil, err
	}

	return &SearchResults{
		Tracks:     SlimPage(response.Tracks, SlimTrack),
		Artists:    SlimPage(response.Artists, SlimArtist),
		Albums:     SlimPage(response.Albums, SlimAlbum),
		Playlists:  SlimPage(response.Playlists, SlimPlaylist),
		Shows:      SlimPage(response.Shows, SlimShow),
		Episodes:   SlimPage(response.Episodes, SlimEpisode),
		Audiobooks: SlimPage(response.Audiobooks, SlimAudiobook),
	}, nil
}
