// package formatter renders journal entries, playlists, and the mural
// timeline to CSV, Markdown, and plain text.
package formatter

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/desertthunder/tfive/internal/models"
	"github.com/desertthunder/tfive/internal/shared"
	"github.com/desertthunder/tfive/internal/tasks"
)

const dateLayout = "2006-01-02 15:04"

// JournalToCSV converts journal entries to CSV with columns: ID, Date, Prompt, Text
func JournalToCSV(entries []models.JournalEntry) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Date", "Prompt", "Text"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, entry := range entries {
		record := []string{
			entry.ID,
			entry.CreatedAt.Format(time.RFC3339),
			entry.Prompt,
			entry.Text,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// JournalToMarkdown converts journal entries to Markdown, newest first.
func JournalToMarkdown(entries []models.JournalEntry) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Journal\n\n")
	buf.WriteString(fmt.Sprintf("**Entries**: %d\n\n", len(entries)))

	for _, entry := range entries {
		buf.WriteString(fmt.Sprintf("## %s\n\n", entry.CreatedAt.Format(dateLayout)))
		if entry.Prompt != "" {
			buf.WriteString(fmt.Sprintf("**Prompt**: %s\n\n", entry.Prompt))
		}
		buf.WriteString(entry.Text)
		buf.WriteString("\n\n")
	}

	return buf.Bytes()
}

// JournalToText converts journal entries to plain text.
func JournalToText(entries []models.JournalEntry) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Journal (%d entries)\n\n", len(entries)))
	for i, entry := range entries {
		buf.WriteString(fmt.Sprintf("%d. [%s]", i+1, entry.CreatedAt.Format(dateLayout)))
		if entry.Prompt != "" {
			buf.WriteString(fmt.Sprintf(" %s", entry.Prompt))
		}
		buf.WriteString("\n")
		buf.WriteString(fmt.Sprintf("   %s\n", entry.Text))
	}

	return buf.Bytes()
}

// PlaylistToCSV converts a playlist to CSV with columns: ID, Title, Artist, Length, Genre
func PlaylistToCSV(playlist models.Playlist) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"ID", "Title", "Artist", "Length", "Genre"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV headers: %w", err)
	}

	for _, track := range playlist.Tracks {
		record := []string{
			track.ID,
			track.Title,
			track.Artist,
			strconv.Itoa(track.Length),
			track.Genre,
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("failed to write CSV record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// PlaylistToMarkdown converts a playlist to Markdown.
func PlaylistToMarkdown(playlist models.Playlist) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("# %s\n\n", playlist.Name))
	if playlist.Description != "" {
		buf.WriteString(fmt.Sprintf("**Description**: %s\n\n", playlist.Description))
	}
	buf.WriteString(fmt.Sprintf("**Tracks**: %d\n\n", len(playlist.Tracks)))

	buf.WriteString("## Tracks\n\n")
	for i, track := range playlist.Tracks {
		duration := shared.FormatDuration(track.Length)
		genrePart := ""
		if track.Genre != "" {
			genrePart = fmt.Sprintf(" (%s)", track.Genre)
		}
		buf.WriteString(fmt.Sprintf("%d. %s - %s%s [%s]\n", i+1, track.Artist, track.Title, genrePart, duration))
	}

	return buf.Bytes()
}

// PlaylistToText converts a playlist to plain text.
func PlaylistToText(playlist models.Playlist) []byte {
	var buf bytes.Buffer

	buf.WriteString(fmt.Sprintf("Playlist: %s\n", playlist.Name))
	if playlist.Description != "" {
		buf.WriteString(fmt.Sprintf("Description: %s\n", playlist.Description))
	}
	buf.WriteString(fmt.Sprintf("Tracks: %d\n\n", len(playlist.Tracks)))

	for i, track := range playlist.Tracks {
		buf.WriteString(fmt.Sprintf("%d. %s - %s [%s]\n", i+1, track.Artist, track.Title, shared.FormatDuration(track.Length)))
	}

	return buf.Bytes()
}

// TimelineToText renders the mural timeline as plain text, newest first.
func TimelineToText(items []tasks.TimelineItem) []byte {
	var buf bytes.Buffer

	if len(items) == 0 {
		buf.WriteString("Nothing here yet. Meditate or write an entry to start your mural.\n")
		return buf.Bytes()
	}

	for _, item := range items {
		stamp := item.When.Format(dateLayout)
		switch {
		case item.Session != nil:
			label := "Meditation"
			if item.Session.MeditationType != "" {
				label = fmt.Sprintf("Meditation (%s)", item.Session.MeditationType)
			}
			buf.WriteString(fmt.Sprintf("%s  %s — %d min\n", stamp, label, item.Session.Minutes))
			if item.Session.Note != "" {
				buf.WriteString(fmt.Sprintf("            %s\n", item.Session.Note))
			}
		case item.Entry != nil:
			buf.WriteString(fmt.Sprintf("%s  Journal\n", stamp))
			if item.Entry.Prompt != "" {
				buf.WriteString(fmt.Sprintf("            %s\n", item.Entry.Prompt))
			}
			buf.WriteString(fmt.Sprintf("            %s\n", item.Entry.Text))
		}
	}

	return buf.Bytes()
}

// TimelineToMarkdown renders the mural timeline as Markdown, newest first.
func TimelineToMarkdown(items []tasks.TimelineItem) []byte {
	var buf bytes.Buffer

	buf.WriteString("# Mural\n\n")
	for _, item := range items {
		stamp := item.When.Format(dateLayout)
		switch {
		case item.Session != nil:
			buf.WriteString(fmt.Sprintf("- **%s** — meditation, %d min. %s\n", stamp, item.Session.Minutes, item.Session.Note))
		case item.Entry != nil:
			buf.WriteString(fmt.Sprintf("- **%s** — journal: %s\n", stamp, item.Entry.Text))
		}
	}

	return buf.Bytes()
}

// WriteJournalExport writes journal entries to path in the given format
// ("csv", "markdown", or "text"). Returns the written path.
func WriteJournalExport(entries []models.JournalEntry, path, format string) (string, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case "csv":
		data, err = JournalToCSV(entries)
	case "markdown", "md":
		data = JournalToMarkdown(entries)
	case "text", "txt", "":
		data = JournalToText(entries)
	default:
		return "", fmt.Errorf("%w: unknown format %q", shared.ErrInvalidInput, format)
	}
	if err != nil {
		return "", err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write export: %w", err)
	}
	return path, nil
}
