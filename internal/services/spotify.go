// Spotify API implementation of [Provider]
//
// Spotify API response types based on https://developer.spotify.com/documentation/web-api/reference/
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/desertthunder/tfive/internal/models"
	"github.com/desertthunder/tfive/internal/shared"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"golang.org/x/time/rate"
)

const (
	spotifyTokenURL = "https://accounts.spotify.com/api/token"
	spotifyBaseURL  = "https://api.spotify.com/v1"
)

// SpotifyImage represents an image resource.
type SpotifyImage struct {
	URL    string `json:"url"`
	Height int    `json:"height"`
	Width  int    `json:"width"`
}

// SpotifyArtist represents a Spotify artist.
type SpotifyArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URI  string `json:"uri"`
}

// SpotifyAlbum represents a Spotify album.
type SpotifyAlbum struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Images []SpotifyImage `json:"images"`
	URI    string         `json:"uri"`
}

type externalURLs struct {
	Spotify string `json:"spotify"`
}

// SpotifyTrack represents a Spotify track.
type SpotifyTrack struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	Artists      []SpotifyArtist `json:"artists"`
	Album        SpotifyAlbum    `json:"album"`
	DurationMS   int             `json:"duration_ms"`
	PreviewURL   string          `json:"preview_url"`
	ExternalURLs externalURLs    `json:"external_urls"`
}

type spotifyTrackPage struct {
	Items []SpotifyTrack `json:"items"`
	Total int            `json:"total"`
}

// SpotifySearchResponse represents a /search response for type=track.
type SpotifySearchResponse struct {
	Tracks spotifyTrackPage `json:"tracks"`
}

type spotifyAPIError struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// spotifyCategoryQueries expands a category id into a search query that
// steers results toward calm, instrumental material.
var spotifyCategoryQueries = map[string]string{
	"meditation": "meditation ambient calm peaceful",
	"ambient":    "ambient instrumental atmospheric soundscape",
	"piano":      "piano solo peaceful instrumental",
	"nature":     "nature sounds rain forest ocean white noise",
	"sleep":      "sleep music relaxing deep rest",
	"yoga":       "yoga music meditation zen",
	"classical":  "classical music peaceful calm",
	"lofi":       "lofi chill beats instrumental",
}

// SpotifyProvider implements [Provider] over the Spotify Web API using the
// client-credentials flow. The [oauth2] token source caches the bearer token
// in memory and refreshes it transparently when it nears expiry.
type SpotifyProvider struct {
	tokens     oauth2.TokenSource
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
	configured bool
}

// NewSpotifyProvider creates a Spotify provider. Missing credentials are not
// an error at construction; the provider reports itself unavailable and every
// search fails with a descriptive message.
func NewSpotifyProvider(clientID, clientSecret string, client *http.Client) *SpotifyProvider {
	if client == nil {
		client = http.DefaultClient
	}

	p := &SpotifyProvider{
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(5), 1),
		baseURL:    spotifyBaseURL,
		configured: clientID != "" && clientSecret != "",
	}

	if p.configured {
		cc := &clientcredentials.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			TokenURL:     spotifyTokenURL,
		}
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, client)
		p.tokens = cc.TokenSource(ctx)
	}

	return p
}

func (p *SpotifyProvider) Name() string { return "Spotify" }

// Available reports whether client credentials were supplied.
func (p *SpotifyProvider) Available() bool { return p.configured }

// doRequest performs an authenticated GET against the Spotify API.
func (p *SpotifyProvider) doRequest(ctx context.Context, endpoint string, result any) error {
	if !p.configured {
		return fmt.Errorf("%w: Spotify credentials not configured", shared.ErrProviderAuth)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrProviderRequest, err)
	}

	token, err := p.tokens.Token()
	if err != nil {
		return fmt.Errorf("%w: could not obtain access token: %v", shared.ErrProviderAuth, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+token.AccessToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrProviderRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr spotifyAPIError
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error.Message != "" {
			return fmt.Errorf("%w: %s (status %d)", shared.ErrProviderRequest, apiErr.Error.Message, resp.StatusCode)
		}
		return fmt.Errorf("%w: status %d", shared.ErrProviderRequest, resp.StatusCode)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// simplify maps a SpotifyTrack to the shared summary shape.
func (p *SpotifyProvider) simplify(track SpotifyTrack) models.TrackSummary {
	names := make([]string, 0, len(track.Artists))
	for _, a := range track.Artists {
		names = append(names, a.Name)
	}

	imageURL := ""
	if len(track.Album.Images) > 0 {
		imageURL = track.Album.Images[0].URL
	}

	return models.TrackSummary{
		ID:          track.ID,
		Title:       track.Name,
		Artist:      strings.Join(names, ", "),
		Album:       track.Album.Name,
		Duration:    track.DurationMS / 1000,
		ImageURL:    imageURL,
		PreviewURL:  track.PreviewURL,
		ExternalURL: track.ExternalURLs.Spotify,
	}
}

// Search finds tracks matching the free-text query. An empty query returns
// no results without issuing a request.
func (p *SpotifyProvider) Search(ctx context.Context, query string, limit int) ([]models.TrackSummary, error) {
	if strings.TrimSpace(query) == "" {
		return []models.TrackSummary{}, nil
	}

	limit = clampLimit(limit)
	endpoint := fmt.Sprintf("/search?q=%s&type=track&limit=%d&market=US", url.QueryEscape(query), limit)

	var response SpotifySearchResponse
	if err := p.doRequest(ctx, endpoint, &response); err != nil {
		return nil, err
	}

	summaries := make([]models.TrackSummary, 0, len(response.Tracks.Items))
	for _, track := range response.Tracks.Items {
		summaries = append(summaries, p.simplify(track))
	}

	return summaries, nil
}

// SearchByCategory expands a category id into a curated query and searches.
// Unknown categories are used as the query verbatim.
func (p *SpotifyProvider) SearchByCategory(ctx context.Context, category string, limit int) ([]models.TrackSummary, error) {
	query, ok := spotifyCategoryQueries[category]
	if !ok {
		query = category
	}

	return p.Search(ctx, query, limit)
}
