// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

// ExternalURLs carries known external links for a resource.
type ExternalURLs struct {
	Spotify string `json:"spotify"`
}

// Image represents an image resource.
type Image struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// Followers represents a follower count envelope.
type Followers struct {
	Total int `json:"total"`
}

// Artist represents a Spotify artist.
type Artist struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// Album represents a Spotify album.
type Album struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	AlbumType    string       `json:"album_type"`
	TotalTracks  int          `json:"total_tracks"`
	ReleaseDate  string       `json:"release_date"`
	Images       []Image      `json:"images"`
	Artists      []Artist     `json:"artists"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	URI          string       `json:"uri"`
}

// Track represents a Spotify track.
type Track struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Artists      []Artist     `json:"artists"`
	Album        *Album       `json:"album"`
	DurationMS   int          `json:"duration_ms"`
	Explicit     bool         `json:"explicit"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	URI          string       `json:"uri"`
}

// Device represents a Spotify Connect device.
type Device struct {
	ID               string `json:"id"`
	IsActive         bool   `json:"is_active"`
	IsPrivateSession bool   `json:"is_private_session"`
	IsRestricted     bool   `json:"is_restricted"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	VolumePercent    *int   `json:"volume_percent"`
	SupportsVolume   bool   `json:"supports_volume"`
}

// PlaybackContext represents the context a playback session is attached to.
type PlaybackContext struct {
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// PlaybackState represents the user's current playback state.
type PlaybackState struct {
	Device               *Device          `json:"device"`
	RepeatState          string           `json:"repeat_state"`
	ShuffleState         bool             `json:"shuffle_state"`
	Timestamp            int64            `json:"timestamp"`
	ProgressMS           *int             `json:"progress_ms"`
	IsPlaying            bool             `json:"is_playing"`
	Item                 *Track           `json:"item"`
	CurrentlyPlayingType string           `json:"currently_playing_type"`
	Context              *PlaybackContext `json:"context"`
}

// Owner represents a playlist owner or the user who added a playlist item.
type Owner struct {
	ID           string       `json:"id"`
	Type         string       `json:"type"`
	URI          string       `json:"uri"`
	DisplayName  string       `json:"display_name"`
	ExternalURLs ExternalURLs `json:"external_urls"`
}

// PlaylistTrack represents a track within a playlist context.
type PlaylistTrack struct {
	AddedAt string `json:"added_at"`
	AddedBy *Owner `json:"added_by"`
	IsLocal bool   `json:"is_local"`
	Track   *Track `json:"track"`
}

// Playlist represents a Spotify playlist.
type Playlist struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Description   string                 `json:"description"`
	Collaborative bool                   `json:"collaborative"`
	Public        bool                   `json:"public"`
	Owner         *Owner                 `json:"owner"`
	Images        []Image                `json:"images"`
	SnapshotID    string                 `json:"snapshot_id"`
	Tracks        *Paging[PlaylistTrack] `json:"tracks"`
	ExternalURLs  ExternalURLs           `json:"external_urls"`
	URI           string                 `json:"uri"`
	Type          string                 `json:"type"`
}

// SavedTrack represents a track saved in the user's library.
type SavedTrack struct {
	AddedAt string `json:"added_at"`
	Track   *Track `json:"track"`
}

// PlayHistory represents a single recently-played entry.
type PlayHistory struct {
	Track    *Track           `json:"track"`
	PlayedAt string           `json:"played_at"`
	Context  *PlaybackContext `json:"context"`
}

// Show represents a Spotify podcast show.
type Show struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Publisher    string       `json:"publisher"`
	Description  string       `json:"description"`
	Explicit     bool         `json:"explicit"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	URI          string       `json:"uri"`
}

// Episode represents a Spotify podcast episode.
type Episode struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Description  string       `json:"description"`
	DurationMS   int          `json:"duration_ms"`
	ReleaseDate  string       `json:"release_date"`
	Explicit     bool         `json:"explicit"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	URI          string       `json:"uri"`
}

type person struct {
	Name string `json:"name"`
}

// Audiobook represents a Spotify audiobook.
type Audiobook struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Authors      []person     `json:"authors"`
	Narrators    []person     `json:"narrators"`
	Publisher    string       `json:"publisher"`
	Description  string       `json:"description"`
	Explicit     bool         `json:"explicit"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	URI          string       `json:"uri"`
}

// UserProfile represents a Spotify user profile.
type UserProfile struct {
	ID           string       `json:"id"`
	DisplayName  string       `json:"display_name"`
	Email        string       `json:"email"`
	Country      string       `json:"country"`
	Product      string       `json:"product"` // premium, free, etc.
	Followers    Followers    `json:"followers"`
	Images       []Image      `json:"images"`
	ExternalURLs ExternalURLs `json:"external_urls"`
	URI          string       `json:"uri"`
}

// Paging is the offset-based pagination envelope the API wraps collections in.
type Paging[T any] struct {
	Href     string  `json:"href"`
	Total    int     `json:"total"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Items    []T     `json:"items"`
}

// Cursors carries the cursor of a cursor-paginated collection.
type Cursors struct {
	After string `json:"after"`
}

// CursorPaging is the cursor-based pagination envelope used by the
// followed-artists endpoint.
type CursorPaging[T any] struct {
	Href    string  `json:"href"`
	Total   int     `json:"total"`
	Limit   int     `json:"limit"`
	Next    *string `json:"next"`
	Cursors Cursors `json:"cursors"`
	Items   []T     `json:"items"`
}
