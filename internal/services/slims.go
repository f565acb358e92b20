package services

// DeviceSummary is the slimmed view of a [Device].
type DeviceSummary struct {
	ID               string `json:"id"`
	IsActive         bool   `json:"is_active"`
	IsPrivateSession bool   `json:"is_private_session"`
	IsRestricted     bool   `json:"is_restricted"`
	Name             string `json:"name"`
	Type             string `json:"type"`
	VolumePercent    *int   `json:"volume_percent"`
	SupportsVolume   bool   `json:"supports_volume"`
}

// TrackSummary is the slimmed view of a [Track]. Artists collapse to their
// names and the album to its name.
type TrackSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Artists     []string `json:"artists"`
	Album       string   `json:"album,omitempty"`
	DurationMS  int      `json:"duration_ms"`
	Explicit    bool     `json:"explicit"`
	ExternalURL string   `json:"external_url,omitempty"`
	URI         string   `json:"uri"`
}

// ArtistSummary is the slimmed view of an [Artist].
type ArtistSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	URI         string `json:"uri"`
	ExternalURL string `json:"external_url,omitempty"`
}

// AlbumSummary is the slimmed view of an [Album].
type AlbumSummary struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	AlbumType   string          `json:"album_type"`
	TotalTracks int             `json:"total_tracks"`
	ReleaseDate string          `json:"release_date"`
	Images      []Image         `json:"images"`
	Artists     []ArtistSummary `json:"artists"`
	ExternalURL string          `json:"external_url,omitempty"`
	URI         string          `json:"uri"`
}

// OwnerSummary is the slimmed view of an [Owner].
type OwnerSummary struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	URI         string `json:"uri"`
	DisplayName string `json:"display_name"`
	ExternalURL string `json:"external_url,omitempty"`
}

// ContextSummary is the slimmed view of a [PlaybackContext].
type ContextSummary struct {
	Type        string `json:"type"`
	URI         string `json:"uri"`
	ExternalURL string `json:"external_url,omitempty"`
}

// PlaybackSummary is the slimmed view of a [PlaybackState].
//
// Status is set only when the upstream reported no active playback (HTTP 204)
// so callers always receive a non-nil result with an explanation.
type PlaybackSummary struct {
	Device               *DeviceSummary  `json:"device,omitempty"`
	RepeatState          string          `json:"repeat_state,omitempty"`
	ShuffleState         bool            `json:"shuffle_state,omitempty"`
	Timestamp            int64           `json:"timestamp,omitempty"`
	ProgressMS           *int            `json:"progress_ms,omitempty"`
	IsPlaying            bool            `json:"is_playing"`
	Item                 *TrackSummary   `json:"item,omitempty"`
	CurrentlyPlayingType string          `json:"currently_playing_type,omitempty"`
	Context              *ContextSummary `json:"context,omitempty"`
	Status               string          `json:"status,omitempty"`
}

// PlaylistTrackSummary is the slimmed view of a [PlaylistTrack].
type PlaylistTrackSummary struct {
	AddedAt string        `json:"added_at"`
	AddedBy *OwnerSummary `json:"added_by,omitempty"`
	IsLocal bool          `json:"is_local"`
	Track   *TrackSummary `json:"track"`
}

// PlaylistSummary is the slimmed view of a [Playlist].
type PlaylistSummary struct {
	ID            string                      `json:"id"`
	Name          string                      `json:"name"`
	Description   string                      `json:"description"`
	Collaborative bool                        `json:"collaborative"`
	Public        bool                        `json:"public"`
	Owner         *OwnerSummary               `json:"owner,omitempty"`
	Images        []Image                     `json:"images"`
	SnapshotID    string                      `json:"snapshot_id"`
	Tracks        *Page[PlaylistTrackSummary] `json:"tracks,omitempty"`
	ExternalURL   string                      `json:"external_url,omitempty"`
	URI           string                      `json:"uri"`
	Type          string                      `json:"type"`
}

// ShowSummary is the slimmed view of a [Show].
type ShowSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Publisher   string `json:"publisher"`
	Description string `json:"description"`
	Explicit    bool   `json:"explicit"`
	ExternalURL string `json:"external_url,omitempty"`
	URI         string `json:"uri"`
}

// EpisodeSummary is the slimmed view of an [Episode].
type EpisodeSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	DurationMS  int    `json:"duration_ms"`
	ReleaseDate string `json:"release_date"`
	Explicit    bool   `json:"explicit"`
	ExternalURL string `json:"external_url,omitempty"`
	URI         string `json:"uri"`
}

// AudiobookSummary is the slimmed view of an [Audiobook].
type AudiobookSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Authors     []string `json:"authors"`
	Narrators   []string `json:"narrators"`
	Publisher   string   `json:"publisher"`
	Description string   `json:"description"`
	Explicit    bool     `json:"explicit"`
	ExternalURL string   `json:"external_url,omitempty"`
	URI         string   `json:"uri"`
}

// UserProfileSummary is the slimmed view of a [UserProfile].
type UserProfileSummary struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"display_name"`
	Email       string  `json:"email,omitempty"`
	Country     string  `json:"country,omitempty"`
	Product     string  `json:"product,omitempty"`
	Followers   int     `json:"followers"`
	Images      []Image `json:"images"`
	ExternalURL string  `json:"external_url,omitempty"`
	URI         string  `json:"uri"`
}

// Page is the slimmed pagination envelope: the raw envelope's counters pass
// through unchanged and every item is projected.
type Page[T any] struct {
	Total    int     `json:"total"`
	Limit    int     `json:"limit"`
	Offset   int     `json:"offset"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Items    []*T    `json:"items"`
}

// SlimDevice projects a raw device to its summary form.
func SlimDevice(d *Device) *DeviceSummary {
	if d == nil {
		return nil
	}
	return &DeviceSummary{
		ID:               d.ID,
		IsActive:         d.IsActive,
		IsPrivateSession: d.IsPrivateSession,
		IsRestricted:     d.IsRestricted,
		Name:             d.Name,
		Type:             d.Type,
		VolumePercent:    d.VolumePercent,
		SupportsVolume:   d.SupportsVolume,
	}
}

// SlimTrack projects a raw track to its summary form.
func SlimTrack(t *Track) *TrackSummary {
	if t == nil {
		return nil
	}
	artists := make([]string, 0, len(t.Artists))
	for _, a := range t.Artists {
		artists = append(artists, a.Name)
	}
	summary := &TrackSummary{
		ID:          t.ID,
		Name:        t.Name,
		Artists:     artists,
		DurationMS:  t.DurationMS,
		Explicit:    t.Explicit,
		ExternalURL: t.ExternalURLs.Spotify,
		URI:         t.URI,
	}
	if t.Album != nil {
		summary.Album = t.Album.Name
	}
	return summary
}

// SlimArtist projects a raw artist to its summary form.
func SlimArtist(a *Artist) *ArtistSummary {
	if a == nil {
		return nil
	}
	return &ArtistSummary{
		ID:          a.ID,
		Name:        a.Name,
		Type:        a.Type,
		URI:         a.URI,
		ExternalURL: a.ExternalURLs.Spotify,
	}
}

// SlimAlbum projects a raw album to its summary form.
func SlimAlbum(a *Album) *AlbumSummary {
	if a == nil {
		return nil
	}
	images := a.Images
	if images == nil {
		images = []Image{}
	}
	artists := make([]ArtistSummary, 0, len(a.Artists))
	for i := range a.Artists {
		artists = append(artists, *SlimArtist(&a.Artists[i]))
	}
	return &AlbumSummary{
		ID:          a.ID,
		Name:        a.Name,
		AlbumType:   a.AlbumType,
		TotalTracks: a.TotalTracks,
		ReleaseDate: a.ReleaseDate,
		Images:      images,
		Artists:     artists,
		ExternalURL: a.ExternalURLs.Spotify,
		URI:         a.URI,
	}
}

// SlimOwner projects a raw owner to its summary form.
func SlimOwner(o *Owner) *OwnerSummary {
	if o == nil {
		return nil
	}
	return &OwnerSummary{
		ID:          o.ID,
		Type:        o.Type,
		URI:         o.URI,
		DisplayName: o.DisplayName,
		ExternalURL: o.ExternalURLs.Spotify,
	}
}

// SlimContext projects a raw playback context to its summary form.
func SlimContext(c *PlaybackContext) *ContextSummary {
	if c == nil {
		return nil
	}
	return &ContextSummary{
		Type:        c.Type,
		URI:         c.URI,
		ExternalURL: c.ExternalURLs.Spotify,
	}
}

// SlimPlaybackState projects a raw playback state, composing the device,
// track and context projections.
func SlimPlaybackState(s *PlaybackState) *PlaybackSummary {
	if s == nil {
		return nil
	}
	return &PlaybackSummary{
		Device:               SlimDevice(s.Device),
		RepeatState:          s.RepeatState,
		ShuffleState:         s.ShuffleState,
		Timestamp:            s.Timestamp,
		ProgressMS:           s.ProgressMS,
		IsPlaying:            s.IsPlaying,
		Item:                 SlimTrack(s.Item),
		CurrentlyPlayingType: s.CurrentlyPlayingType,
		Context:              SlimContext(s.Context),
	}
}

// SlimPlaylistTrack projects a raw playlist item, composing the owner and
// track projections.
func SlimPlaylistTrack(t *PlaylistTrack) *PlaylistTrackSummary {
	if t == nil {
		return nil
	}
	return &PlaylistTrackSummary{
		AddedAt: t.AddedAt,
		AddedBy: SlimOwner(t.AddedBy),
		IsLocal: t.IsLocal,
		Track:   SlimTrack(t.Track),
	}
}

// SlimPlaylist projects a raw playlist, composing the owner and playlist-track
// projections over the embedded tracks page.
func SlimPlaylist(p *Playlist) *PlaylistSummary {
	if p == nil {
		return nil
	}
	images := p.Images
	if images == nil {
		images = []Image{}
	}
	return &PlaylistSummary{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		Collaborative: p.Collaborative,
		Public:        p.Public,
		Owner:         SlimOwner(p.Owner),
		Images:        images,
		SnapshotID:    p.SnapshotID,
		Tracks:        SlimPage(p.Tracks, SlimPlaylistTrack),
		ExternalURL:   p.ExternalURLs.Spotify,
		URI:           p.URI,
		Type:          p.Type,
	}
}

// SlimShow projects a raw show to its summary form.
func SlimShow(s *Show) *ShowSummary {
	if s == nil {
		return nil
	}
	return &ShowSummary{
		ID:          s.ID,
		Name:        s.Name,
		Publisher:   s.Publisher,
		Description: s.Description,
		Explicit:    s.Explicit,
		ExternalURL: s.ExternalURLs.Spotify,
		URI:         s.URI,
	}
}

// SlimEpisode projects a raw episode to its summary form.
func SlimEpisode(e *Episode) *EpisodeSummary {
	if e == nil {
		return nil
	}
	return &EpisodeSummary{
		ID:          e.ID,
		Name:        e.Name,
		Description: e.Description,
		DurationMS:  e.DurationMS,
		ReleaseDate: e.ReleaseDate,
		Explicit:    e.Explicit,
		ExternalURL: e.ExternalURLs.Spotify,
		URI:         e.URI,
	}
}

// SlimAudiobook projects a raw audiobook to its summary form.
func SlimAudiobook(a *Audiobook) *AudiobookSummary {
	if a == nil {
		return nil
	}
	authors := make([]string, 0, len(a.Authors))
	for _, p := range a.Authors {
		authors = append(authors, p.Name)
	}
	narrators := make([]string, 0, len(a.Narrators))
	for _, p := range a.Narrators {
		narrators = append(narrators, p.Name)
	}
	return &AudiobookSummary{
		ID:          a.ID,
		Name:        a.Name,
		Authors:     authors,
		Narrators:   narrators,
		Publisher:   a.Publisher,
		Description: a.Description,
		Explicit:    a.Explicit,
		ExternalURL: a.ExternalURLs.Spotify,
		URI:         a.URI,
	}
}

// SlimUserProfile projects a raw user profile to its summary form.
func SlimUserProfile(u *UserProfile) *UserProfileSummary {
	if u == nil {
		return nil
	}
	images := u.Images
	if images == nil {
		images = []Image{}
	}
	return &UserProfileSummary{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Email:       u.Email,
		Country:     u.Country,
		Product:     u.Product,
		Followers:   u.Followers.Total,
		Images:      images,
		ExternalURL: u.ExternalURLs.Spotify,
		URI:         u.URI,
	}
}

// SlimPage projects a raw paging envelope by mapping fn over its items. The
// counters and cursors pass through unchanged; order is preserved.
func SlimPage[T, S any](p *Paging[T], fn func(*T) *S) *Page[S] {
	if p == nil {
		return nil
	}
	items := make([]*S, 0, len(p.Items))
	for i := range p.Items {
		items = append(items, fn(&p.Items[i]))
	}
	return &Page[S]{
		Total:    p.Total,
		Limit:    p.Limit,
		Offset:   p.Offset,
		Next:     p.Next,
		Previous: p.Previous,
		Items:    items,
	}
}
