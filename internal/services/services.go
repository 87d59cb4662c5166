// package services defines interface Provider for music search backends
//
// Spotify (client-credentials flow), Jamendo (public client id)
package services

import (
	"context"

	"github.com/desertthunder/tfive/internal/models"
)

// Provider defines the interface for interchangeable music search backends.
// Both operations are read-only; provider failures surface as descriptive
// errors to the caller and never touch persisted state.
type Provider interface {
	// Search finds tracks matching a free-text query.
	Search(ctx context.Context, query string, limit int) ([]models.TrackSummary, error)

	// SearchByCategory finds tracks for a fixed category tag
	// (e.g. "meditation", "ambient", "piano").
	SearchByCategory(ctx context.Context, category string, limit int) ([]models.TrackSummary, error)

	// Available reports whether the provider has the credentials it needs.
	Available() bool

	// Name returns the provider name (e.g. "Spotify", "Jamendo")
	Name() string
}

const defaultSearchLimit = 20

// clampLimit normalizes a caller-supplied result limit to (0, 50].
func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultSearchLimit
	}
	if limit > 50 {
		return 50
	}
	return limit
}
