package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/tfive/internal/formatter"
	"github.com/desertthunder/tfive/internal/tasks"
	"github.com/urfave/cli/v3"
)

// JournalAdd saves a journal entry. Text comes from the argument or, when
// absent, a single line read from stdin after showing the prompt.
func (r *Runner) JournalAdd(ctx context.Context, cmd *cli.Command) error {
	text := cmd.StringArg("text")
	prompt := cmd.String("prompt")
	free := cmd.Bool("free")

	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	recorder := tasks.NewRecorder(s, r.logger)

	if prompt == "" && !free {
		prompt = recorder.NextPrompt()
	}

	if text == "" {
		if prompt != "" {
			r.writePlain("%s\n> ", prompt)
		} else {
			r.writePlain("> ")
		}
		scanner := bufio.NewScanner(os.Stdin)
		if scanner.Scan() {
			text = strings.TrimSpace(scanner.Text())
		}
	}

	entry, err := recorder.AddEntry(prompt, text)
	if err != nil {
		return err
	}

	r.writePlain("✓ Entry saved (%s)\n", entry.ID)
	return nil
}

// JournalList prints entries, newest first.
func (r *Runner) JournalList(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")

	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	entries := s.Journal()
	if limit > 0 && limit < len(entries) {
		entries = entries[:limit]
	}

	if cmd.Bool("json") {
		return r.writeJSON(entries, true)
	}

	if len(entries) == 0 {
		r.writePlain("No entries yet. Write one with: tfive journal add\n")
		return nil
	}

	r.writePlain("%s", formatter.JournalToText(entries))
	return nil
}

// JournalExport writes the journal to a file in the requested format.
func (r *Runner) JournalExport(ctx context.Context, cmd *cli.Command) error {
	output := cmd.String("output")
	format := cmd.String("format")

	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	path, err := formatter.WriteJournalExport(s.Journal(), output, format)
	if err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r.writePlain("✓ Journal exported to %s\n", path)
	return nil
}

// Mural prints the merged activity timeline, newest first.
func (r *Runner) Mural(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")

	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	items := tasks.Timeline(s)
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}

	if cmd.Bool("markdown") {
		r.writePlain("%s", formatter.TimelineToMarkdown(items))
		return nil
	}

	r.writePlainHeader("Mural")
	r.writePlain("%s", formatter.TimelineToText(items))
	return nil
}
