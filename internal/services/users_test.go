package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/desertthunder/spotify-mcp/internal/shared"
)

func TestGetUserProfile(t *testing.T) {
	t.Run("RequiresUserID", func(t *testing.T) {
		client := noRequestClient(t)

		if _, err := client.GetUserProfile(context.Background(), ""); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("SlimsProfile", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/users/user-1" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`{"id": "user-1", "display_name": "Test User", "followers": {"total": 10}}`))
		})

		profile, err := client.GetUserProfile(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if profile.DisplayName != "Test User" || profile.Followers != 10 {
			t.Errorf("expected slimmed profile, got %+v", profile)
		}
	})
}

func TestGetCurrentUserProfile(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{"id": "user-1", "display_name": "Me", "product": "premium"}`))
	})

	profile, err := client.GetCurrentUserProfile(context.Background())
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if profile.ID != "user-1" || profile.Product != "premium" {
		t.Errorf("expected current profile, got %+v", profile)
	}
}

func TestTopItems(t *testing.T) {
	t.Run("RejectsUnknownTimeRange", func(t *testing.T) {
		client := noRequestClient(t)

		if _, err := client.GetTopTracks(context.Background(), TopItemsOpts{TimeRange: "all_time"}); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("DefaultsToMediumTerm", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/me/top/tracks" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.URL.Query().Get("time_range") != "medium_term" {
				t.Errorf("expected medium_term, got %s", r.URL.Query().Get("time_range"))
			}
			w.Write([]byte(`{"total": 1, "items": [{"id": "track-1", "name": "Song"}]}`))
		})

		page, err := client.GetTopTracks(context.Background(), TopItemsOpts{})
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if len(page.Items) != 1 || page.Items[0].Name != "Song" {
			t.Errorf("expected slimmed top tracks, got %+v", page.Items)
		}
	})

	t.Run("TopArtists", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/me/top/artists" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			if r.URL.Query().Get("time_range") != "long_term" {
				t.Errorf("expected long_term, got %s", r.URL.Query().Get("time_range"))
			}
			w.Write([]byte(`{"total": 1, "items": [{"id": "artist-1", "name": "First"}]}`))
		})

		page, err := client.GetTopArtists(context.Background(), TopItemsOpts{TimeRange: "long_term"})
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if len(page.Items) != 1 || page.Items[0].Name != "First" {
			t.Errorf("expected slimmed top artists, got %+v", page.Items)
		}
	})
}

func TestFollowOperations(t *testing.T) {
	t.Run("RejectsUnknownType", func(t *testing.T) {
		client := noRequestClient(t)

		if err := client.FollowArtistsOrUsers(context.Background(), "playlist", "id-1"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
		if err := client.UnfollowArtistsOrUsers(context.Background(), "", "id-1"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
		if _, err := client.CheckFollows(context.Background(), "album", "id-1"); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("RequiresIDs", func(t *testing.T) {
		client := noRequestClient(t)

		if err := client.FollowArtistsOrUsers(context.Background(), "artist", ""); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("Follow", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut || r.URL.Path != "/me/following" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			if r.URL.Query().Get("type") != "artist" {
				t.Errorf("expected type=artist, got %s", r.URL.Query().Get("type"))
			}
			w.WriteHeader(http.StatusNoContent)
		})

		if err := client.FollowArtistsOrUsers(context.Background(), "artist", "artist-1,artist-2"); err != nil {
			t.Fatalf("follow failed: %v", err)
		}
	})

	t.Run("CheckFollows", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/me/following/contains" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`[true]`))
		})

		follows, err := client.CheckFollows(context.Background(), "user", "user-1")
		if err != nil {
			t.Fatalf("check failed: %v", err)
		}
		if len(follows) != 1 || !follows[0] {
			t.Errorf("expected [true], got %v", follows)
		}
	})
}

func TestGetFollowedArtists(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("type") != "artist" {
			t.Errorf("expected type=artist, got %s", query.Get("type"))
		}
		if query.Get("after") != "artist-0" {
			t.Errorf("expected after cursor, got %s", query.Get("after"))
		}
		w.Write([]byte(`{
			"artists": {
				"total": 3,
				"limit": 20,
				"items": [{"id": "artist-1", "name": "First"}],
				"cursors": {"after": "artist-1"}
			}
		}`))
	})

	artists, err := client.GetFollowedArtists(context.Background(), "artist-0", 0)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if artists.Total != 3 || artists.After != "artist-1" {
		t.Errorf("expected cursor metadata, got %+v", artists)
	}
	if len(artists.Items) != 1 || artists.Items[0].Name != "First" {
		t.Errorf("expected slimmed artists, got %+v", artists.Items)
	}
}
