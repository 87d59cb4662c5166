package tasks

import (
	"sort"
	"time"

	"github.com/desertthunder/tfive/internal/models"
	"github.com/desertthunder/tfive/internal/store"
)

// TimelineItem is one entry of the mural: either a meditation session or a
// journal entry, with its display timestamp lifted out for sorting.
type TimelineItem struct {
	When    time.Time
	Session *models.MeditationSession
	Entry   *models.JournalEntry
}

// Timeline merges sessions and journal entries into one sequence ordered
// newest first.
func Timeline(s *store.Store) []TimelineItem {
	sessions := s.Sessions()
	journal := s.Journal()

	items := make([]TimelineItem, 0, len(sessions)+len(journal))
	for i := range sessions {
		items = append(items, TimelineItem{When: sessions[i].EndedAt, Session: &sessions[i]})
	}
	for i := range journal {
		items = append(items, TimelineItem{When: journal[i].CreatedAt, Entry: &journal[i]})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].When.After(items[j].When)
	})

	return items
}
