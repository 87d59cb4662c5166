package formatter

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/desertthunder/tfive/internal/models"
	"github.com/desertthunder/tfive/internal/tasks"
	th "github.com/desertthunder/tfive/internal/testing"
)

var sampleEntries = []models.JournalEntry{
	{
		ID:        "jr-2",
		Type:      "journal",
		CreatedAt: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
		Prompt:    "What does the idea of \"rest\" mean to you?",
		Text:      "Rest is permission, not reward.",
	},
	{
		ID:        "jr-1",
		Type:      "journal",
		CreatedAt: time.Date(2026, 3, 1, 21, 0, 0, 0, time.UTC),
		Text:      "A free-form note.",
	},
}

var samplePlaylist = models.Playlist{
	ID:          "pl-1",
	Name:        "Evening",
	Description: "Slow pieces",
	Tracks: []models.Track{
		{ID: "t-1", Title: "Gymnopédie No. 1", Artist: "Erik Satie", Length: 210, Genre: "Classical"},
		{ID: "t-2", Title: "Ocean waves", Artist: "Nature", Length: 720},
	},
}

func TestJournalExporters(t *testing.T) {
	t.Run("JournalToCSV", func(t *testing.T) {
		data, err := JournalToCSV(sampleEntries)
		if err != nil {
			t.Fatalf("JournalToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "ID,Date,Prompt,Text") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "jr-2") {
			t.Errorf("CSV missing entry id")
		}
		if !strings.Contains(output, "Rest is permission, not reward.") {
			t.Errorf("CSV missing entry text")
		}
	})

	t.Run("JournalToMarkdown", func(t *testing.T) {
		output := string(JournalToMarkdown(sampleEntries))

		if !strings.Contains(output, "# Journal") {
			t.Errorf("Markdown missing title")
		}
		if !strings.Contains(output, "**Entries**: 2") {
			t.Errorf("Markdown missing entry count")
		}
		if !strings.Contains(output, "**Prompt**: What does the idea") {
			t.Errorf("Markdown missing prompt")
		}
		if strings.Count(output, "**Prompt**") != 1 {
			t.Errorf("promptless entry should have no prompt line")
		}
	})

	t.Run("JournalToText", func(t *testing.T) {
		output := string(JournalToText(sampleEntries))

		if !strings.Contains(output, "Journal (2 entries)") {
			t.Errorf("text missing header, got: %s", output)
		}
		if !strings.Contains(output, "1. [2026-03-02 09:30]") {
			t.Errorf("text missing dated entry, got: %s", output)
		}
	})
}

func TestPlaylistExporters(t *testing.T) {
	t.Run("PlaylistToCSV", func(t *testing.T) {
		data, err := PlaylistToCSV(samplePlaylist)
		if err != nil {
			t.Fatalf("PlaylistToCSV failed: %v", err)
		}

		output := string(data)
		if !strings.Contains(output, "ID,Title,Artist,Length,Genre") {
			t.Errorf("CSV missing headers, got: %s", output)
		}
		if !strings.Contains(output, "Gymnopédie No. 1") {
			t.Errorf("CSV missing track title")
		}
		if !strings.Contains(output, "210") {
			t.Errorf("CSV missing track length")
		}
	})

	t.Run("PlaylistToMarkdown", func(t *testing.T) {
		output := string(PlaylistToMarkdown(samplePlaylist))

		if !strings.Contains(output, "# Evening") {
			t.Errorf("Markdown missing playlist name")
		}
		if !strings.Contains(output, "**Tracks**: 2") {
			t.Errorf("Markdown missing track count")
		}
		if !strings.Contains(output, "1. Erik Satie - Gymnopédie No. 1 (Classical) [3m 30s]") {
			t.Errorf("Markdown track line wrong, got: %s", output)
		}
		if !strings.Contains(output, "2. Nature - Ocean waves [12m]") {
			t.Errorf("genre-less track line wrong, got: %s", output)
		}
	})

	t.Run("PlaylistToText", func(t *testing.T) {
		output := string(PlaylistToText(samplePlaylist))

		if !strings.Contains(output, "Playlist: Evening") {
			t.Errorf("text missing playlist name")
		}
		if !strings.Contains(output, "Description: Slow pieces") {
			t.Errorf("text missing description")
		}
	})
}

func TestTimelineRendering(t *testing.T) {
	items := []tasks.TimelineItem{
		{
			When: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
			Entry: &models.JournalEntry{
				CreatedAt: time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC),
				Text:      "After the sit.",
			},
		},
		{
			When: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
			Session: &models.MeditationSession{
				Minutes:        5,
				EndedAt:        time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
				Note:           "Conscious breathing completed",
				MeditationType: "breathing",
			},
		},
	}

	t.Run("TimelineToText", func(t *testing.T) {
		output := string(TimelineToText(items))

		if !strings.Contains(output, "Meditation (breathing)") {
			t.Errorf("text missing session label, got: %s", output)
		}
		if !strings.Contains(output, "After the sit.") {
			t.Errorf("text missing entry text")
		}

		if entryIdx, sessionIdx := strings.Index(output, "Journal"), strings.Index(output, "Meditation"); entryIdx > sessionIdx {
			t.Errorf("timeline should render newest first")
		}
	})

	t.Run("TimelineToText empty", func(t *testing.T) {
		output := string(TimelineToText(nil))
		if !strings.Contains(output, "Nothing here yet") {
			t.Errorf("empty timeline message missing, got: %s", output)
		}
	})

	t.Run("TimelineToMarkdown", func(t *testing.T) {
		output := string(TimelineToMarkdown(items))

		if !strings.Contains(output, "# Mural") {
			t.Errorf("Markdown missing title")
		}
		if !strings.Contains(output, "meditation, 5 min") {
			t.Errorf("Markdown missing session line, got: %s", output)
		}
	})
}

func TestWriteJournalExport(t *testing.T) {
	t.Run("writes csv file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.csv")

		written, err := WriteJournalExport(sampleEntries, path, "csv")
		if err != nil {
			t.Fatalf("WriteJournalExport failed: %v", err)
		}

		th.AssertFileExists(t, written)
		content := th.MustReadFile(t, written)
		if !strings.Contains(content, "jr-1") {
			t.Errorf("exported file missing entry")
		}
	})

	t.Run("rejects unknown format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.xml")
		if _, err := WriteJournalExport(sampleEntries, path, "xml"); err == nil {
			t.Error("expected error for unknown format")
		}
	})

	t.Run("defaults to text", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "journal.txt")

		written, err := WriteJournalExport(sampleEntries, path, "")
		if err != nil {
			t.Fatalf("WriteJournalExport failed: %v", err)
		}

		content := th.MustReadFile(t, written)
		if !strings.Contains(content, "Journal (2 entries)") {
			t.Errorf("text export wrong, got: %s", content)
		}
	})
}
