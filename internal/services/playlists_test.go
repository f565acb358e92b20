package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/desertthunder/spotify-mcp/internal/shared"
)

func TestGetPlaylist(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/playlists/playlist-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"id": "playlist-1",
			"name": "Mix",
			"snapshot_id": "snap-1",
			"owner": {"id": "user-1", "display_name": "Owner"},
			"tracks": {"total": 1, "items": [{"track": {"id": "track-1", "name": "Song"}}]}
		}`))
	})

	playlist, err := client.GetPlaylist(context.Background(), "playlist-1", PlaylistQuery{})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if playlist.Name != "Mix" || playlist.SnapshotID != "snap-1" {
		t.Errorf("expected slimmed playlist, got %+v", playlist)
	}
	if playlist.Owner == nil || playlist.Owner.DisplayName != "Owner" {
		t.Errorf("expected owner summary, got %+v", playlist.Owner)
	}
	if playlist.Tracks == nil || len(playlist.Tracks.Items) != 1 {
		t.Errorf("expected tracks page, got %+v", playlist.Tracks)
	}
}

func TestChangePlaylistDetails(t *testing.T) {
	t.Run("RequiresAField", func(t *testing.T) {
		client := noRequestClient(t)

		err := client.ChangePlaylistDetails(context.Background(), "playlist-1", PlaylistDetails{})
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("SendsOnlySetFields", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut {
				t.Errorf("expected PUT, got %s", r.Method)
			}
			body, _ := io.ReadAll(r.Body)
			var payload map[string]any
			json.Unmarshal(body, &payload)
			if payload["name"] != "Renamed" {
				t.Errorf("expected name in body, got %v", payload)
			}
			if _, ok := payload["description"]; ok {
				t.Error("unset description should not be sent")
			}
			w.WriteHeader(http.StatusOK)
		})

		name := "Renamed"
		err := client.ChangePlaylistDetails(context.Background(), "playlist-1", PlaylistDetails{Name: &name})
		if err != nil {
			t.Fatalf("change details failed: %v", err)
		}
	})
}

func TestGetPlaylistItems(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/playlists/playlist-1/tracks" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if r.URL.Query().Get("limit") != "10" {
			t.Errorf("expected limit=10, got %s", r.URL.Query().Get("limit"))
		}
		w.Write([]byte(`{
			"total": 2,
			"limit": 10,
			"offset": 0,
			"items": [
				{"added_at": "2024-01-01T00:00:00Z", "track": {"id": "track-1", "name": "Song"}},
				{"added_at": "2024-01-02T00:00:00Z", "is_local": true, "track": {"id": "track-2", "name": "Local"}}
			]
		}`))
	})

	page, err := client.GetPlaylistItems(context.Background(), "playlist-1", PlaylistItemsQuery{Limit: 10})
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if page.Total != 2 || len(page.Items) != 2 {
		t.Fatalf("expected 2 items, got %+v", page)
	}
	if page.Items[1].IsLocal != true {
		t.Error("expected is_local to carry through")
	}
	if page.Items[0].Track == nil || page.Items[0].Track.Name != "Song" {
		t.Errorf("expected nested track summary, got %+v", page.Items[0])
	}
}

func TestUpdatePlaylistItems(t *testing.T) {
	t.Run("RequiresURIsOrRange", func(t *testing.T) {
		client := noRequestClient(t)

		_, err := client.UpdatePlaylistItems(context.Background(), "playlist-1", PlaylistUpdate{})
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("URIsAndRangeAreExclusive", func(t *testing.T) {
		client := noRequestClient(t)

		start := 0
		_, err := client.UpdatePlaylistItems(context.Background(), "playlist-1", PlaylistUpdate{
			URIs:       []string{"spotify:track:track-1"},
			RangeStart: &start,
		})
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("Reorder", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			var payload map[string]any
			json.Unmarshal(body, &payload)
			if payload["range_start"] != float64(2) || payload["insert_before"] != float64(0) {
				t.Errorf("expected range parameters, got %v", payload)
			}
			w.Write([]byte(`{"snapshot_id": "snap-2"}`))
		})

		start, before := 2, 0
		snapshotID, err := client.UpdatePlaylistItems(context.Background(), "playlist-1", PlaylistUpdate{
			RangeStart:   &start,
			InsertBefore: &before,
		})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if snapshotID != "snap-2" {
			t.Errorf("expected snapshot snap-2, got %s", snapshotID)
		}
	})

	t.Run("Replace", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			var payload map[string]any
			json.Unmarshal(body, &payload)
			uris, ok := payload["uris"].([]any)
			if !ok || len(uris) != 2 {
				t.Errorf("expected 2 uris, got %v", payload["uris"])
			}
			w.Write([]byte(`{"snapshot_id": "snap-3"}`))
		})

		snapshotID, err := client.UpdatePlaylistItems(context.Background(), "playlist-1", PlaylistUpdate{
			URIs: []string{"spotify:track:track-1", "spotify:track:track-2"},
		})
		if err != nil {
			t.Fatalf("update failed: %v", err)
		}
		if snapshotID != "snap-3" {
			t.Errorf("expected snapshot snap-3, got %s", snapshotID)
		}
	})
}

func TestAddItemsToPlaylist(t *testing.T) {
	t.Run("RequiresURIs", func(t *testing.T) {
		client := noRequestClient(t)

		_, err := client.AddItemsToPlaylist(context.Background(), "playlist-1", nil, nil)
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("RejectsOver100Items", func(t *testing.T) {
		client := noRequestClient(t)

		uris := make([]string, MaxPlaylistAddItems+1)
		for i := range uris {
			uris[i] = fmt.Sprintf("spotify:track:track-%d", i)
		}

		_, err := client.AddItemsToPlaylist(context.Background(), "playlist-1", uris, nil)
		if !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument for %d uris, got %v", len(uris), err)
		}
	})

	t.Run("AddsWithPosition", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPost {
				t.Errorf("expected POST, got %s", r.Method)
			}
			body, _ := io.ReadAll(r.Body)
			var payload map[string]any
			json.Unmarshal(body, &payload)
			if payload["position"] != float64(5) {
				t.Errorf("expected position 5, got %v", payload["position"])
			}
			w.Write([]byte(`{"snapshot_id": "snap-4"}`))
		})

		position := 5
		snapshotID, err := client.AddItemsToPlaylist(context.Background(), "playlist-1", []string{"spotify:track:track-1"}, &position)
		if err != nil {
			t.Fatalf("add items failed: %v", err)
		}
		if snapshotID != "snap-4" {
			t.Errorf("expected snapshot snap-4, got %s", snapshotID)
		}
	})
}

func TestPlaylistFollowing(t *testing.T) {
	t.Run("Follow", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut || r.URL.Path != "/playlists/playlist-1/followers" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			w.WriteHeader(http.StatusOK)
		})

		if err := client.FollowPlaylist(context.Background(), "playlist-1"); err != nil {
			t.Fatalf("follow failed: %v", err)
		}
	})

	t.Run("Unfollow", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				t.Errorf("expected DELETE, got %s", r.Method)
			}
			w.WriteHeader(http.StatusOK)
		})

		if err := client.UnfollowPlaylist(context.Background(), "playlist-1"); err != nil {
			t.Fatalf("unfollow failed: %v", err)
		}
	})

	t.Run("CheckFollowers", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("ids") != "user-1,user-2" {
				t.Errorf("expected ids param, got %s", r.URL.Query().Get("ids"))
			}
			w.Write([]byte(`[true, false]`))
		})

		follows, err := client.CheckPlaylistFollowers(context.Background(), "playlist-1", "user-1,user-2")
		if err != nil {
			t.Fatalf("check failed: %v", err)
		}
		if len(follows) != 2 || !follows[0] || follows[1] {
			t.Errorf("expected [true false], got %v", follows)
		}
	})
}
