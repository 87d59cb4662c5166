package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/tfive/internal/models"
	"github.com/desertthunder/tfive/internal/shared"
	"github.com/desertthunder/tfive/internal/tasks"
	"github.com/desertthunder/tfive/internal/ui"
	"github.com/urfave/cli/v3"
)

// runCountdown starts the interactive countdown and blocks until it exits.
//
// Logs go to a file while bubbletea owns the terminal.
func (r *Runner) runCountdown(mode ui.Mode, minutes int, meditation *models.Meditation) error {
	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	fileLogger, err := shared.NewFileLogger("./tmp/tfive-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	recorder := tasks.NewRecorder(s, fileLogger)
	model := ui.NewModel(mode, minutes, recorder, r.notifier, meditation)

	if _, err := tea.NewProgram(model).Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// Meditate runs a meditation countdown. With a catalog id the guided
// meditation sets the title, guide text, and default length; without one the
// TUI opens on the picker.
func (r *Runner) Meditate(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	minutes := cmd.Int("minutes")

	var meditation *models.Meditation
	if id != "" {
		found, ok := models.FindMeditation(id)
		if !ok {
			return fmt.Errorf("%w: %s (try 'tfive meditate list')", shared.ErrMeditationNotFound, id)
		}
		meditation = &found
		if minutes == 0 {
			minutes = found.Duration
		}
	}
	if minutes == 0 {
		minutes = r.config.Timer.MeditationMinutes
	}

	return r.runCountdown(ui.MeditationMode, minutes, meditation)
}

// MeditateList prints the guided meditation catalog.
func (r *Runner) MeditateList(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("json") {
		return r.writeJSON(models.GuidedMeditations, true)
	}

	r.writePlainHeader("Guided meditations")
	for _, m := range models.GuidedMeditations {
		r.writePlain("%s  %s (%d min)\n", m.ID, m.Title, m.Duration)
		r.writePlain("       %s\n", m.Description)
	}
	r.writePlainln("Run one with: tfive meditate <id>")
	return nil
}

// MeditateSessions shows recorded sessions, newest first.
func (r *Runner) MeditateSessions(ctx context.Context, cmd *cli.Command) error {
	limit := cmd.Int("limit")

	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	sessions := s.Sessions()
	if limit > 0 && limit < len(sessions) {
		sessions = sessions[:limit]
	}

	if cmd.Bool("json") {
		return r.writeJSON(sessions, true)
	}

	if len(sessions) == 0 {
		r.writePlain("No sessions yet. Start one with: tfive meditate\n")
		return nil
	}

	r.writePlainHeader(fmt.Sprintf("Sessions (%d)", len(sessions)))
	for _, session := range sessions {
		r.writePlain("%s  %d min  %s\n", session.EndedAt.Local().Format("2006-01-02 15:04"), session.Minutes, session.Note)
	}
	return nil
}

// Bored runs the conscious-boredom countdown.
func (r *Runner) Bored(ctx context.Context, cmd *cli.Command) error {
	minutes := cmd.Int("minutes")
	if minutes == 0 {
		minutes = r.config.Timer.BoredomMinutes
	}

	return r.runCountdown(ui.BoredomMode, minutes, nil)
}
