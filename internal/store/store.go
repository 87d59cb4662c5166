package store

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tfive/internal/models"
	"github.com/desertthunder/tfive/internal/shared"
)

// Slot names one persisted collection or scalar.
type Slot string

const (
	SlotPlaylists Slot = "playlists"
	SlotJournal   Slot = "journal"
	SlotSessions  Slot = "sessions"
	SlotTheme     Slot = "theme"
)

// Slots lists every known slot in export order.
var Slots = []Slot{SlotPlaylists, SlotJournal, SlotSessions, SlotTheme}

// ValidationError reports a malformed import payload, naming the first slot
// whose data does not match its declared shape. The store is left untouched.
type ValidationError struct {
	Slot string
	Err  error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid data for slot %q: %v", e.Slot, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Store owns all slot contents. Every mutation is written through to the
// backend before the mutating call returns.
type Store struct {
	backend Backend
	logger  *log.Logger
}

// New creates a store over the given backend.
func New(backend Backend, logger *log.Logger) *Store {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &Store{backend: backend, logger: logger}
}

// loadSlot reads and decodes one slot, degrading to fallback on any failure.
// Read failures are logged, never surfaced.
func loadSlot[T any](s *Store, slot Slot, fallback func() T) T {
	raw, ok, err := s.backend.Get(string(slot))
	if err != nil {
		s.logger.Warn("slot read failed, using default", "slot", slot, "error", err)
		return fallback()
	}
	if !ok {
		return fallback()
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		s.logger.Warn("slot data corrupt, using default", "slot", slot, "error", err)
		return fallback()
	}

	return value
}

// saveSlot encodes and writes one slot.
func saveSlot[T any](s *Store, slot Slot, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode slot %s: %w", slot, err)
	}

	if err := s.backend.Put(string(slot), data); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorageWrite, err)
	}

	return nil
}

func emptyJournal() []models.JournalEntry     { return []models.JournalEntry{} }
func emptySessions() []models.MeditationSession { return []models.MeditationSession{} }
func defaultTheme() models.Theme              { return models.ThemeSystem }

// Playlists returns the playlists slot, seeded with the starter playlists on
// a fresh store.
func (s *Store) Playlists() []models.Playlist {
	return loadSlot(s, SlotPlaylists, models.DefaultPlaylists)
}

// SavePlaylists replaces the playlists slot.
func (s *Store) SavePlaylists(playlists []models.Playlist) error {
	return saveSlot(s, SlotPlaylists, playlists)
}

// UpdatePlaylists applies fn to the current playlists and writes the result back.
func (s *Store) UpdatePlaylists(fn func([]models.Playlist) []models.Playlist) error {
	return s.SavePlaylists(fn(s.Playlists()))
}

// Journal returns the journal slot, newest entry first.
func (s *Store) Journal() []models.JournalEntry {
	return loadSlot(s, SlotJournal, emptyJournal)
}

// SaveJournal replaces the journal slot.
func (s *Store) SaveJournal(entries []models.JournalEntry) error {
	return saveSlot(s, SlotJournal, entries)
}

// UpdateJournal applies fn to the current journal and writes the result back.
func (s *Store) UpdateJournal(fn func([]models.JournalEntry) []models.JournalEntry) error {
	return s.SaveJournal(fn(s.Journal()))
}

// Sessions returns the sessions slot, newest session first.
func (s *Store) Sessions() []models.MeditationSession {
	return loadSlot(s, SlotSessions, emptySessions)
}

// SaveSessions replaces the sessions slot.
func (s *Store) SaveSessions(sessions []models.MeditationSession) error {
	return saveSlot(s, SlotSessions, sessions)
}

// UpdateSessions applies fn to the current sessions and writes the result back.
func (s *Store) UpdateSessions(fn func([]models.MeditationSession) []models.MeditationSession) error {
	return s.SaveSessions(fn(s.Sessions()))
}

// Theme returns the persisted theme, defaulting to "system".
func (s *Store) Theme() models.Theme {
	theme := loadSlot(s, SlotTheme, defaultTheme)
	if !theme.Valid() {
		s.logger.Warn("unrecognized theme, using default", "theme", theme)
		return defaultTheme()
	}
	return theme
}

// SaveTheme replaces the theme slot. Unrecognized values are rejected.
func (s *Store) SaveTheme(theme models.Theme) error {
	if !theme.Valid() {
		return fmt.Errorf("%w: theme %q", shared.ErrInvalidInput, theme)
	}
	return saveSlot(s, SlotTheme, theme)
}

// ExportAll returns a snapshot of every slot's current value.
func (s *Store) ExportAll() models.Snapshot {
	return models.Snapshot{
		Playlists: s.Playlists(),
		Journal:   s.Journal(),
		Sessions:  s.Sessions(),
		Theme:     s.Theme(),
	}
}

// ImportAll applies a full or partial snapshot. Only slots present in the
// payload are overwritten; absent slots are untouched. Every present slot is
// validated before anything is written, so a malformed payload leaves the
// store unmodified and returns a *ValidationError naming the offending slot.
func (s *Store) ImportAll(raw []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidImport, err)
	}

	staged := make(map[string][]byte, len(fields))

	for name, data := range fields {
		slot := Slot(name)
		switch slot {
		case SlotPlaylists:
			var playlists []models.Playlist
			if err := json.Unmarshal(data, &playlists); err != nil {
				return &ValidationError{Slot: name, Err: err}
			}
		case SlotJournal:
			var journal []models.JournalEntry
			if err := json.Unmarshal(data, &journal); err != nil {
				return &ValidationError{Slot: name, Err: err}
			}
		case SlotSessions:
			var sessions []models.MeditationSession
			if err := json.Unmarshal(data, &sessions); err != nil {
				return &ValidationError{Slot: name, Err: err}
			}
		case SlotTheme:
			var theme models.Theme
			if err := json.Unmarshal(data, &theme); err != nil {
				return &ValidationError{Slot: name, Err: err}
			}
			if !theme.Valid() {
				return &ValidationError{Slot: name, Err: fmt.Errorf("unrecognized theme %q", theme)}
			}
		default:
			s.logger.Debug("ignoring unknown snapshot field", "field", name)
			continue
		}

		staged[name] = data
	}

	if len(staged) == 0 {
		return nil
	}

	if err := s.backend.PutMany(staged); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorageWrite, err)
	}

	s.logger.Info("snapshot imported", "slots", len(staged))
	return nil
}

// ResetAll clears every slot's persisted value. Subsequent loads return each
// slot's default.
func (s *Store) ResetAll() error {
	if err := s.backend.Clear(); err != nil {
		return fmt.Errorf("%w: %v", shared.ErrStorageWrite, err)
	}

	s.logger.Info("all slots cleared")
	return nil
}
