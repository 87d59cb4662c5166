package tasks

import (
	"context"
	"sync"

	"github.com/desertthunder/tfive/internal/models"
	"github.com/desertthunder/tfive/internal/services"
)

// SearchSession serializes the display of asynchronous search results.
// Every issued search gets a monotonically increasing sequence number; a
// result set is applied only if it belongs to the most recently issued
// search, so a stale response can never overwrite a newer one.
type SearchSession struct {
	mu     sync.Mutex
	seq    uint64
	tracks []models.TrackSummary
	err    error
}

// NewSearchSession creates an empty session.
func NewSearchSession() *SearchSession {
	return &SearchSession{}
}

// Begin registers a new search and returns its sequence number.
func (s *SearchSession) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	return s.seq
}

// Resolve applies a search outcome if seq still identifies the latest search.
// Returns whether the outcome was applied.
func (s *SearchSession) Resolve(seq uint64, tracks []models.TrackSummary, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}

	s.tracks = tracks
	s.err = err
	return true
}

// Current returns the latest applied results.
func (s *SearchSession) Current() ([]models.TrackSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tracks, s.err
}

// Search runs a provider query under the session's sequencing and reports
// whether its outcome was applied.
func (s *SearchSession) Search(ctx context.Context, p services.Provider, query string, limit int) bool {
	seq := s.Begin()
	tracks, err := p.Search(ctx, query, limit)
	return s.Resolve(seq, tracks, err)
}

// SearchByCategory runs a provider category query under the session's
// sequencing and reports whether its outcome was applied.
func (s *SearchSession) SearchByCategory(ctx context.Context, p services.Provider, category string, limit int) bool {
	seq := s.Begin()
	tracks, err := p.SearchByCategory(ctx, category, limit)
	return s.Resolve(seq, tracks, err)
}
