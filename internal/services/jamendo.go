// Jamendo API implementation of [Provider]
//
// Jamendo serves Creative Commons music with full streaming, which suits
// meditation playlists better than preview clips. Authentication is a static
// public client id; no token exchange is involved.
//
// https://developer.jamendo.com/v3.0/docs
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/desertthunder/tfive/internal/models"
	"github.com/desertthunder/tfive/internal/shared"
	"golang.org/x/time/rate"
)

const jamendoBaseURL = "https://api.jamendo.com/v3.0"

// JamendoTrack represents a track in Jamendo API responses.
type JamendoTrack struct {
	ID            json.Number `json:"id"`
	Name          string      `json:"name"`
	ArtistName    string      `json:"artist_name"`
	AlbumName     string      `json:"album_name"`
	Duration      int         `json:"duration"`
	Audio         string      `json:"audio"`
	AudioDownload string      `json:"audiodownload"`
	// Absent in some responses; nil means allowed.
	AudioDownloadAllowed *bool  `json:"audiodownload_allowed"`
	Image                string `json:"image"`
	ShareURL             string `json:"shareurl"`
	LicenseCCURL         string `json:"license_ccurl"`
}

type jamendoHeaders struct {
	Status       string `json:"status"`
	Code         int    `json:"code"`
	ErrorMessage string `json:"error_message"`
	ResultsCount int    `json:"results_count"`
}

// JamendoResponse is the envelope wrapping every Jamendo API result.
type JamendoResponse struct {
	Headers jamendoHeaders `json:"headers"`
	Results []JamendoTrack `json:"results"`
}

// JamendoProvider implements [Provider] over the Jamendo API.
type JamendoProvider struct {
	clientID   string
	httpClient *http.Client
	limiter    *rate.Limiter
	baseURL    string
}

// NewJamendoProvider creates a Jamendo provider. An empty client id leaves
// the provider unavailable rather than erroring.
func NewJamendoProvider(clientID string, client *http.Client) *JamendoProvider {
	if client == nil {
		client = http.DefaultClient
	}

	return &JamendoProvider{
		clientID:   clientID,
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(5), 1),
		baseURL:    jamendoBaseURL,
	}
}

func (p *JamendoProvider) Name() string { return "Jamendo" }

// Available reports whether a client id was supplied.
func (p *JamendoProvider) Available() bool { return p.clientID != "" }

// baseParams returns the query parameters shared by every tracks request.
func (p *JamendoProvider) baseParams(limit int) url.Values {
	params := url.Values{}
	params.Set("client_id", p.clientID)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("vocalinstrumental", "instrumental")
	params.Set("include", "musicinfo")
	params.Set("audioformat", "mp32")
	params.Set("audiodlformat", "mp32")
	params.Set("imagesize", "300")
	return params
}

// fetchTracks issues a /tracks request and filters out results without a
// playable audio URL.
func (p *JamendoProvider) fetchTracks(ctx context.Context, params url.Values) ([]models.TrackSummary, error) {
	if p.clientID == "" {
		return nil, fmt.Errorf("%w: Jamendo client id not configured", shared.ErrProviderAuth)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderRequest, err)
	}

	reqURL := fmt.Sprintf("%s/tracks?%s", p.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrProviderRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", shared.ErrProviderRequest, resp.StatusCode)
	}

	var response JamendoResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if response.Headers.Status != "success" {
		return nil, fmt.Errorf("%w: %s", shared.ErrProviderRequest, response.Headers.ErrorMessage)
	}

	summaries := make([]models.TrackSummary, 0, len(response.Results))
	for _, track := range response.Results {
		if strings.TrimSpace(track.AudioDownload) == "" {
			continue
		}
		if track.AudioDownloadAllowed != nil && !*track.AudioDownloadAllowed {
			continue
		}
		summaries = append(summaries, p.simplify(track))
	}

	return summaries, nil
}

// simplify maps a JamendoTrack to the shared summary shape.
func (p *JamendoProvider) simplify(track JamendoTrack) models.TrackSummary {
	album := track.AlbumName
	if album == "" {
		album = "Single"
	}

	preview := track.AudioDownload
	if preview == "" {
		preview = track.Audio
	}

	license := track.LicenseCCURL
	if license == "" {
		license = "https://creativecommons.org/licenses/"
	}

	return models.TrackSummary{
		ID:          track.ID.String(),
		Title:       track.Name,
		Artist:      track.ArtistName,
		Album:       album,
		Duration:    track.Duration,
		ImageURL:    track.Image,
		PreviewURL:  preview,
		ExternalURL: track.ShareURL,
		License:     license,
	}
}

// Search finds instrumental tracks by name.
func (p *JamendoProvider) Search(ctx context.Context, query string, limit int) ([]models.TrackSummary, error) {
	if strings.TrimSpace(query) == "" {
		return []models.TrackSummary{}, nil
	}

	params := p.baseParams(clampLimit(limit))
	params.Set("namesearch", query)
	return p.fetchTracks(ctx, params)
}

// SearchByCategory finds instrumental tracks by fuzzy tag, ordered by monthly
// popularity.
func (p *JamendoProvider) SearchByCategory(ctx context.Context, category string, limit int) ([]models.TrackSummary, error) {
	params := p.baseParams(clampLimit(limit))
	params.Set("fuzzytags", category)
	params.Set("order", "popularity_month")
	return p.fetchTracks(ctx, params)
}
