package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/desertthunder/spotify-mcp/internal/shared"
)

func TestGetTrack(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/tracks/track-1" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Write([]byte(`{
			"id": "track-1",
			"name": "Song",
			"artists": [{"name": "First"}],
			"album": {"name": "Record"},
			"duration_ms": 180000
		}`))
	})

	track, err := client.GetTrack(context.Background(), "track-1", "")
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if track.Name != "Song" || track.Album != "Record" {
		t.Errorf("expected slimmed track, got %+v", track)
	}
}

func TestGetSeveralTracks(t *testing.T) {
	t.Run("RequiresIDs", func(t *testing.T) {
		client := noRequestClient(t)

		if _, err := client.GetSeveralTracks(context.Background(), " , ", ""); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("RejectsOver50IDs", func(t *testing.T) {
		client := noRequestClient(t)

		ids := make([]string, 51)
		for i := range ids {
			ids[i] = fmt.Sprintf("track-%d", i)
		}

		if _, err := client.GetSeveralTracks(context.Background(), strings.Join(ids, ","), ""); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("TrimsAndJoins", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("ids") != "track-1,track-2" {
				t.Errorf("expected normalized ids, got %s", r.URL.Query().Get("ids"))
			}
			w.Write([]byte(`{"tracks": [{"id": "track-1", "name": "One"}, {"id": "track-2", "name": "Two"}]}`))
		})

		tracks, err := client.GetSeveralTracks(context.Background(), " track-1 , track-2 ", "")
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if len(tracks) != 2 || tracks[0].Name != "One" || tracks[1].Name != "Two" {
			t.Errorf("expected slimmed tracks, got %+v", tracks)
		}
	})
}

func TestGetSavedTracks(t *testing.T) {
	t.Run("LimitDefaultsAndClamps", func(t *testing.T) {
		cases := []struct {
			limit    int
			expected string
		}{
			{0, "20"},
			{10, "10"},
			{99, "50"},
		}

		for _, tc := range cases {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Query().Get("limit") != tc.expected {
					t.Errorf("limit %d: expected %s, got %s", tc.limit, tc.expected, r.URL.Query().Get("limit"))
				}
				w.Write([]byte(`{"total": 0, "items": []}`))
			})

			if _, err := client.GetSavedTracks(context.Background(), "", tc.limit, 0); err != nil {
				t.Fatalf("request failed: %v", err)
			}
		}
	})

	t.Run("SlimsSavedTracks", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{
				"total": 1,
				"items": [{"added_at": "2024-01-01T00:00:00Z", "track": {"id": "track-1", "name": "Song"}}]
			}`))
		})

		page, err := client.GetSavedTracks(context.Background(), "", 20, 0)
		if err != nil {
			t.Fatalf("request failed: %v", err)
		}
		if len(page.Items) != 1 || page.Items[0].AddedAt != "2024-01-01T00:00:00Z" {
			t.Errorf("expected saved track summary, got %+v", page.Items)
		}
		if page.Items[0].Track == nil || page.Items[0].Track.Name != "Song" {
			t.Errorf("expected nested track summary, got %+v", page.Items[0])
		}
	})
}

func TestSavedTrackMutations(t *testing.T) {
	t.Run("SaveRequiresIDs", func(t *testing.T) {
		client := noRequestClient(t)

		if err := client.SaveTracks(context.Background(), ""); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("Save", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodPut || r.URL.Path != "/me/tracks" {
				t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			}
			w.WriteHeader(http.StatusOK)
		})

		if err := client.SaveTracks(context.Background(), "track-1,track-2"); err != nil {
			t.Fatalf("save failed: %v", err)
		}
	})

	t.Run("Remove", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodDelete {
				t.Errorf("expected DELETE, got %s", r.Method)
			}
			w.WriteHeader(http.StatusOK)
		})

		if err := client.RemoveSavedTracks(context.Background(), "track-1"); err != nil {
			t.Fatalf("remove failed: %v", err)
		}
	})

	t.Run("Check", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/me/tracks/contains" {
				t.Errorf("unexpected path %s", r.URL.Path)
			}
			w.Write([]byte(`[false, true]`))
		})

		saved, err := client.CheckSavedTracks(context.Background(), "track-1,track-2")
		if err != nil {
			t.Fatalf("check failed: %v", err)
		}
		if len(saved) != 2 || saved[0] || !saved[1] {
			t.Errorf("expected [false true], got %v", saved)
		}
	})
}
