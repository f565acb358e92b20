package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/desertthunder/spotify-mcp/internal/shared"
)

func TestSearchValidation(t *testing.T) {
	client := noRequestClient(t)

	t.Run("RequiresQuery", func(t *testing.T) {
		if _, err := client.Search(context.Background(), "  ", "track", SearchOpts{}); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("RequiresTypes", func(t *testing.T) {
		if _, err := client.Search(context.Background(), "query", "", SearchOpts{}); !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})

	t.Run("RejectsUnknownType", func(t *testing.T) {
		if _, err := client.Search(context.Background(), "query", "track,podcast", SearchOpts{}); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("RejectsOversizedLimit", func(t *testing.T) {
		if _, err := client.Search(context.Background(), "query", "track", SearchOpts{Limit: 51}); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("RejectsOutOfRangeOffset", func(t *testing.T) {
		if _, err := client.Search(context.Background(), "query", "track", SearchOpts{Offset: 1001}); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})

	t.Run("RejectsUnknownIncludeExternal", func(t *testing.T) {
		if _, err := client.Search(context.Background(), "query", "track", SearchOpts{IncludeExternal: "video"}); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument, got %v", err)
		}
	})
}

func TestSearch(t *testing.T) {
	t.Run("SlimsRequestedEnvelopes", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			query := r.URL.Query()
			if query.Get("q") != "test query" {
				t.Errorf("expected q param, got %s", query.Get("q"))
			}
			if query.Get("type") != "track,artist" {
				t.Errorf("expected type param, got %s", query.Get("type"))
			}
			if query.Get("limit") != "20" {
				t.Errorf("expected default limit 20, got %s", query.Get("limit"))
			}
			w.Write([]byte(`{
				"tracks": {"total": 1, "items": [{"id": "track-1", "name": "Song", "artists": [{"name": "First"}]}]},
				"artists": {"total": 1, "items": [{"id": "artist-1", "name": "First"}]}
			}`))
		})

		results, err := client.Search(context.Background(), "test query", "track,artist", SearchOpts{})
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}

		if results.Tracks == nil || len(results.Tracks.Items) != 1 {
			t.Fatalf("expected track envelope, got %+v", results.Tracks)
		}
		if results.Tracks.Items[0].Artists[0] != "First" {
			t.Errorf("expected slimmed track, got %+v", results.Tracks.Items[0])
		}
		if results.Artists == nil || results.Artists.Items[0].Name != "First" {
			t.Errorf("expected artist envelope, got %+v", results.Artists)
		}
		if results.Albums != nil || results.Playlists != nil {
			t.Error("unrequested envelopes should stay nil")
		}
	})

	t.Run("NormalizesTypeList", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("type") != "track,episode" {
				t.Errorf("expected normalized types, got %s", r.URL.Query().Get("type"))
			}
			w.Write([]byte(`{}`))
		})

		if _, err := client.Search(context.Background(), "query", " track , episode ", SearchOpts{}); err != nil {
			t.Fatalf("search failed: %v", err)
		}
	})
}
