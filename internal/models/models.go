package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/desertthunder/tfive/internal/shared"
)

// Theme is the persisted appearance setting.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Valid reports whether t is one of the recognized themes.
func (t Theme) Valid() bool {
	switch t {
	case ThemeLight, ThemeDark, ThemeSystem:
		return true
	}
	return false
}

// Track represents a music track stored inside a playlist.
// Immutable once added; the id is unique within its playlist only.
type Track struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Artist string `json:"artist"`
	URL    string `json:"url,omitempty"`
	Length int    `json:"length,omitempty"` // seconds
	Genre  string `json:"genre,omitempty"`
}

// Playlist represents a user playlist. Tracks may be appended or removed;
// everything else is set at creation.
type Playlist struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Tracks      []Track   `json:"tracks"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewPlaylist creates an empty playlist with a generated id and creation timestamp.
func NewPlaylist(name, description string) Playlist {
	return Playlist{
		ID:          shared.PrefixedID("pl"),
		Name:        name,
		Description: description,
		Tracks:      []Track{},
		CreatedAt:   time.Now().UTC(),
	}
}

// HasTrack reports whether the playlist already holds a track with the given id.
func (p Playlist) HasTrack(trackID string) bool {
	for _, t := range p.Tracks {
		if t.ID == trackID {
			return true
		}
	}
	return false
}

// JournalEntry represents one saved journal note. Never mutated after creation.
type JournalEntry struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // always "journal"
	CreatedAt time.Time `json:"createdAt"`
	Prompt    string    `json:"prompt,omitempty"`
	Text      string    `json:"text"`
}

// NewJournalEntry creates a journal entry from trimmed text, rejecting empty input.
func NewJournalEntry(prompt, text string) (JournalEntry, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return JournalEntry{}, shared.ErrEmptyEntry
	}

	return JournalEntry{
		ID:        shared.PrefixedID("jr"),
		Type:      "journal",
		CreatedAt: time.Now().UTC(),
		Prompt:    prompt,
		Text:      text,
	}, nil
}

// MeditationSession records one completed countdown. Created only at timer
// completion and never mutated afterwards.
type MeditationSession struct {
	ID             string    `json:"id"`
	Type           string    `json:"type"` // always "meditation"
	Minutes        int       `json:"minutes"`
	EndedAt        time.Time `json:"endedAt"`
	Note           string    `json:"note"`
	MeditationType string    `json:"meditationType,omitempty"`
}

// NewMeditationSession creates a session record stamped with the current time.
func NewMeditationSession(minutes int, note, meditationType string) MeditationSession {
	return MeditationSession{
		ID:             shared.PrefixedID("sess"),
		Type:           "meditation",
		Minutes:        minutes,
		EndedAt:        time.Now().UTC(),
		Note:           note,
		MeditationType: meditationType,
	}
}

// Meditation is one entry of the bundled guided meditation catalog.
type Meditation struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Duration    int    `json:"duration"` // minutes
	Category    string `json:"category"`
	Guide       string `json:"guide,omitempty"`
}

// TrackSummary is the normalized search result shape shared by all music
// providers.
type TrackSummary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Album       string `json:"album,omitempty"`
	Duration    int    `json:"duration,omitempty"` // seconds
	ImageURL    string `json:"imageUrl,omitempty"`
	PreviewURL  string `json:"previewUrl,omitempty"`
	ExternalURL string `json:"externalUrl,omitempty"`
	License     string `json:"license,omitempty"`
}

// ToTrack converts a provider search result into a playlist track.
func (s TrackSummary) ToTrack() Track {
	url := s.PreviewURL
	if url == "" {
		url = s.ExternalURL
	}

	return Track{
		ID:     s.ID,
		Title:  s.Title,
		Artist: s.Artist,
		URL:    url,
		Length: s.Duration,
	}
}

// String renders a one-line display form for CLI output.
func (s TrackSummary) String() string {
	if s.Duration > 0 {
		return fmt.Sprintf("%s - %s [%s]", s.Artist, s.Title, shared.FormatDuration(s.Duration))
	}
	return fmt.Sprintf("%s - %s", s.Artist, s.Title)
}

// Snapshot is the export document holding every store slot under its fixed
// field name. Import accepts any subset of these fields.
type Snapshot struct {
	Playlists []Playlist          `json:"playlists"`
	Journal   []JournalEntry      `json:"journal"`
	Sessions  []MeditationSession `json:"sessions"`
	Theme     Theme               `json:"theme"`
}
