package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/desertthunder/tfive/internal/models"
	"github.com/desertthunder/tfive/internal/shared"
	"github.com/desertthunder/tfive/internal/store"
	"github.com/desertthunder/tfive/internal/tasks"
	"github.com/urfave/cli/v3"
)

// SettingsTheme shows the current theme, or sets it when an argument is given.
func (r *Runner) SettingsTheme(ctx context.Context, cmd *cli.Command) error {
	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	arg := cmd.StringArg("theme")
	if arg == "" {
		r.writePlain("Theme: %s\n", s.Theme())
		return nil
	}

	theme := models.Theme(arg)
	if err := s.SaveTheme(theme); err != nil {
		return err
	}

	r.writePlain("✓ Theme set to %s\n", theme)
	return nil
}

// SettingsExport writes the full data snapshot to a JSON file.
func (r *Runner) SettingsExport(ctx context.Context, cmd *cli.Command) error {
	output := cmd.String("output")

	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := tasks.ExportToFile(s, output); err != nil {
		return fmt.Errorf("export failed: %w", err)
	}

	r.writePlain("✓ Data exported to %s\n", output)
	return nil
}

// SettingsImport replaces all data from a JSON snapshot. The snapshot is
// validated before anything is written; a bad file leaves the store untouched.
func (r *Runner) SettingsImport(ctx context.Context, cmd *cli.Command) error {
	path := cmd.StringArg("path")
	if path == "" {
		return fmt.Errorf("%w: path to snapshot file", shared.ErrMissingArgument)
	}

	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := tasks.ImportFromFile(s, path); err != nil {
		var validationErr *store.ValidationError
		if errors.As(err, &validationErr) {
			return fmt.Errorf("import rejected, nothing was changed: %w", err)
		}
		return err
	}

	r.writePlain("✓ Data imported from %s\n", path)
	return nil
}

// SettingsReset erases all data after confirmation.
func (r *Runner) SettingsReset(ctx context.Context, cmd *cli.Command) error {
	if !cmd.Bool("force") {
		r.writePlain("This erases all sessions, journal entries, and playlists. Type 'yes' to continue: ")
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() || strings.TrimSpace(scanner.Text()) != "yes" {
			r.writePlain("Aborted.\n")
			return nil
		}
	}

	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	if err := s.ResetAll(); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	r.writePlain("✓ All data erased. Defaults will be recreated on next use.\n")
	return nil
}
