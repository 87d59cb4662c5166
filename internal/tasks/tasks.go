package tasks

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tfive/internal/models"
	"github.com/desertthunder/tfive/internal/shared"
	"github.com/desertthunder/tfive/internal/store"
)

// Recorder turns completed timers and saved notes into persisted records.
// All writes go through the store's update operations, keeping the
// write-through invariant.
type Recorder struct {
	store  *store.Store
	logger *log.Logger
}

// NewRecorder creates a Recorder over the given store.
func NewRecorder(s *store.Store, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Recorder{store: s, logger: logger}
}

// RecordSession appends a meditation session at timer completion, newest
// first. When a guided meditation is given its title and category annotate
// the record; otherwise the session is recorded as a free session.
func (r *Recorder) RecordSession(minutes int, meditation *models.Meditation) (models.MeditationSession, error) {
	note := "Free session completed"
	meditationType := ""
	if meditation != nil {
		note = fmt.Sprintf("%s completed", meditation.Title)
		meditationType = meditation.Category
	}

	session := models.NewMeditationSession(minutes, note, meditationType)

	err := r.store.UpdateSessions(func(prev []models.MeditationSession) []models.MeditationSession {
		return append([]models.MeditationSession{session}, prev...)
	})
	if err != nil {
		return models.MeditationSession{}, fmt.Errorf("failed to record session: %w", err)
	}

	r.logger.Info("session recorded", "minutes", minutes, "type", meditationType)
	return session, nil
}

// AddEntry appends a journal entry, newest first.
func (r *Recorder) AddEntry(prompt, text string) (models.JournalEntry, error) {
	entry, err := models.NewJournalEntry(prompt, text)
	if err != nil {
		return models.JournalEntry{}, err
	}

	err = r.store.UpdateJournal(func(prev []models.JournalEntry) []models.JournalEntry {
		return append([]models.JournalEntry{entry}, prev...)
	})
	if err != nil {
		return models.JournalEntry{}, fmt.Errorf("failed to save entry: %w", err)
	}

	r.logger.Info("journal entry saved", "id", entry.ID)
	return entry, nil
}

// RecordReflection saves a note written after the conscious-boredom timer as
// a journal entry under the boredom prompt.
func (r *Recorder) RecordReflection(text string) (models.JournalEntry, error) {
	return r.AddEntry(models.BoredomPrompt, text)
}

// NextPrompt returns the journal prompt following the newest entry's prompt,
// rotating through the bundled list.
func (r *Recorder) NextPrompt() string {
	entries := r.store.Journal()
	if len(entries) == 0 {
		return models.JournalPrompts[0]
	}

	for i, prompt := range models.JournalPrompts {
		if prompt == entries[0].Prompt {
			return models.JournalPrompts[(i+1)%len(models.JournalPrompts)]
		}
	}
	return models.JournalPrompts[0]
}
