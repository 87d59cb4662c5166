package tasks

import (
	"context"
	"errors"
	"testing"

	"github.com/desertthunder/tfive/internal/models"
	"github.com/desertthunder/tfive/internal/shared"
	internaltesting "github.com/desertthunder/tfive/internal/testing"
)

func TestSearchSession(t *testing.T) {
	rain := []models.TrackSummary{{ID: "1", Title: "Rain", Artist: "Nature"}}
	piano := []models.TrackSummary{{ID: "2", Title: "Nocturne", Artist: "Chopin"}}

	t.Run("latest result wins", func(t *testing.T) {
		s := NewSearchSession()

		seq1 := s.Begin()
		seq2 := s.Begin()

		if !s.Resolve(seq2, piano, nil) {
			t.Fatal("latest resolve should apply")
		}
		if s.Resolve(seq1, rain, nil) {
			t.Error("stale resolve should be discarded")
		}

		tracks, err := s.Current()
		if err != nil {
			t.Fatalf("current returned error: %v", err)
		}
		if len(tracks) != 1 || tracks[0].ID != "2" {
			t.Errorf("current = %v, want the later search's results", tracks)
		}
	})

	t.Run("stale error does not clobber results", func(t *testing.T) {
		s := NewSearchSession()

		seq1 := s.Begin()
		seq2 := s.Begin()

		s.Resolve(seq2, rain, nil)
		s.Resolve(seq1, nil, shared.ErrProviderRequest)

		tracks, err := s.Current()
		if err != nil {
			t.Fatalf("stale failure leaked: %v", err)
		}
		if len(tracks) != 1 {
			t.Errorf("tracks length = %d, want 1", len(tracks))
		}
	})

	t.Run("current error from latest search", func(t *testing.T) {
		s := NewSearchSession()

		seq := s.Begin()
		s.Resolve(seq, nil, shared.ErrProviderUnavailable)

		if _, err := s.Current(); !errors.Is(err, shared.ErrProviderUnavailable) {
			t.Errorf("expected ErrProviderUnavailable, got %v", err)
		}
	})

	t.Run("search wrapper resolves through provider", func(t *testing.T) {
		s := NewSearchSession()
		p := &internaltesting.MockProvider{Tracks: rain}

		if !s.Search(context.Background(), p, "rain", 10) {
			t.Fatal("search result should apply")
		}

		tracks, err := s.Current()
		if err != nil {
			t.Fatalf("current returned error: %v", err)
		}
		if len(tracks) != 1 || tracks[0].Title != "Rain" {
			t.Errorf("tracks = %v", tracks)
		}
		if p.Queries[0] != "rain" {
			t.Errorf("provider query = %q", p.Queries[0])
		}
	})

	t.Run("category wrapper", func(t *testing.T) {
		s := NewSearchSession()
		p := &internaltesting.MockProvider{Tracks: piano}

		if !s.SearchByCategory(context.Background(), p, "piano", 10) {
			t.Fatal("category result should apply")
		}
		if p.Categories[0] != "piano" {
			t.Errorf("provider category = %q", p.Categories[0])
		}
	})
}
