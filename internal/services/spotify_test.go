package services

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/desertthunder/tfive/internal/shared"
	helpers "github.com/desertthunder/tfive/internal/testing"
)

const spotifySearchBody = `{
	"tracks": {
		"items": [
			{
				"id": "trk-abc",
				"name": "Weightless",
				"artists": [{"id": "ar-1", "name": "Marconi Union"}, {"id": "ar-2", "name": "Ambient Friend"}],
				"album": {"id": "al-1", "name": "Ambient Works", "images": [{"url": "https://img.example/cover.jpg", "height": 300, "width": 300}]},
				"duration_ms": 480000,
				"preview_url": "https://preview.example/weightless.mp3",
				"external_urls": {"spotify": "https://open.spotify.com/track/trk-abc"}
			}
		],
		"total": 1
	}
}`

// newSpotifyClient wires a provider to a scripted transport that answers both
// the token exchange and API requests.
func newSpotifyClient(t *testing.T, tokenCalls *int, apiResponse *http.Response) *SpotifyProvider {
	t.Helper()

	transport := helpers.NewRoundTripperFunc(func(req *http.Request) (*http.Response, error) {
		if strings.Contains(req.URL.Host, "accounts.spotify.com") {
			if tokenCalls != nil {
				*tokenCalls++
			}
			return helpers.JSONResponse(200, `{"access_token": "test-token", "token_type": "Bearer", "expires_in": 3600}`), nil
		}

		if got := req.Header.Get("Authorization"); got != "Bearer test-token" {
			t.Errorf("authorization header = %q, want bearer test-token", got)
		}
		return apiResponse, nil
	})

	return NewSpotifyProvider("test_client_id", "test_client_secret", &http.Client{Transport: transport})
}

func TestSpotifyProvider(t *testing.T) {
	t.Run("Name And Availability", func(t *testing.T) {
		p := NewSpotifyProvider("id", "secret", nil)
		if p.Name() != "Spotify" {
			t.Errorf("expected provider name 'Spotify', got %s", p.Name())
		}
		if !p.Available() {
			t.Error("expected provider with credentials to be available")
		}
	})

	t.Run("Unconfigured", func(t *testing.T) {
		p := NewSpotifyProvider("", "", nil)
		if p.Available() {
			t.Error("expected provider without credentials to be unavailable")
		}

		_, err := p.Search(context.Background(), "ambient", 10)
		if !errors.Is(err, shared.ErrProviderAuth) {
			t.Errorf("expected ErrProviderAuth, got %v", err)
		}
	})

	t.Run("Empty Query Skips Request", func(t *testing.T) {
		p := NewSpotifyProvider("id", "secret", &http.Client{
			Transport: helpers.NewRoundTripperFunc(func(req *http.Request) (*http.Response, error) {
				t.Error("no request expected for empty query")
				return nil, errors.New("unexpected request")
			}),
		})

		tracks, err := p.Search(context.Background(), "   ", 10)
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(tracks) != 0 {
			t.Errorf("expected no results, got %d", len(tracks))
		}
	})

	t.Run("Search Maps Result Schema", func(t *testing.T) {
		p := newSpotifyClient(t, nil, helpers.JSONResponse(200, spotifySearchBody))

		tracks, err := p.Search(context.Background(), "weightless", 20)
		if err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if len(tracks) != 1 {
			t.Fatalf("expected 1 track, got %d", len(tracks))
		}

		got := tracks[0]
		if got.ID != "trk-abc" {
			t.Errorf("id = %q", got.ID)
		}
		if got.Artist != "Marconi Union, Ambient Friend" {
			t.Errorf("artist = %q, want joined names", got.Artist)
		}
		if got.Duration != 480 {
			t.Errorf("duration = %d, want 480 seconds", got.Duration)
		}
		if got.ImageURL != "https://img.example/cover.jpg" {
			t.Errorf("imageURL = %q", got.ImageURL)
		}
		if got.ExternalURL != "https://open.spotify.com/track/trk-abc" {
			t.Errorf("externalURL = %q", got.ExternalURL)
		}
	})

	t.Run("Token Cached Across Requests", func(t *testing.T) {
		var tokenCalls int
		transport := helpers.NewRoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if strings.Contains(req.URL.Host, "accounts.spotify.com") {
				tokenCalls++
				return helpers.JSONResponse(200, `{"access_token": "test-token", "token_type": "Bearer", "expires_in": 3600}`), nil
			}
			return helpers.JSONResponse(200, spotifySearchBody), nil
		})
		p := NewSpotifyProvider("id", "secret", &http.Client{Transport: transport})

		for i := 0; i < 3; i++ {
			if _, err := p.Search(context.Background(), "calm piano", 5); err != nil {
				t.Fatalf("search %d failed: %v", i, err)
			}
		}

		if tokenCalls != 1 {
			t.Errorf("token endpoint hit %d times, want 1 (cached until expiry)", tokenCalls)
		}
	})

	t.Run("API Error Surfaces Message", func(t *testing.T) {
		p := newSpotifyClient(t, nil, helpers.JSONResponse(429, `{"error": {"status": 429, "message": "rate limit exceeded"}}`))

		_, err := p.Search(context.Background(), "ambient", 10)
		if !errors.Is(err, shared.ErrProviderRequest) {
			t.Fatalf("expected ErrProviderRequest, got %v", err)
		}
		if !strings.Contains(err.Error(), "rate limit exceeded") {
			t.Errorf("error should carry provider message, got %q", err.Error())
		}
	})

	t.Run("SearchByCategory Expands Known Categories", func(t *testing.T) {
		var gotQuery string
		transport := helpers.NewRoundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if strings.Contains(req.URL.Host, "accounts.spotify.com") {
				return helpers.JSONResponse(200, `{"access_token": "test-token", "token_type": "Bearer", "expires_in": 3600}`), nil
			}
			gotQuery = req.URL.Query().Get("q")
			return helpers.JSONResponse(200, `{"tracks": {"items": [], "total": 0}}`), nil
		})
		p := NewSpotifyProvider("id", "secret", &http.Client{Transport: transport})

		if _, err := p.SearchByCategory(context.Background(), "meditation", 10); err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if gotQuery != "meditation ambient calm peaceful" {
			t.Errorf("query = %q, want expanded meditation query", gotQuery)
		}

		if _, err := p.SearchByCategory(context.Background(), "handpan", 10); err != nil {
			t.Fatalf("search failed: %v", err)
		}
		if gotQuery != "handpan" {
			t.Errorf("query = %q, want verbatim unknown category", gotQuery)
		}
	})
}
