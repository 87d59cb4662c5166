package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/tfive/internal/shared"
	"github.com/urfave/cli/v3"
)

// Setup initializes the config file, the database, and the starter playlists.
func (r *Runner) Setup(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")

	var config *shared.Config
	if _, err := os.Stat(configPath); err == nil {
		if config, err = shared.LoadConfig(configPath); err != nil {
			r.logger.Warn("failed to load config, using defaults", "error", err)
			config = shared.DefaultConfig()
		}
	} else {
		r.logger.Info("config file not found, creating from template", "path", configPath)
		if err := shared.CreateConfigFile(configPath); err != nil {
			r.logger.Warn("failed to create config file, using defaults", "error", err)
			config = shared.DefaultConfig()
		} else {
			r.logger.Info("config file created", "path", configPath)
			if config, err = shared.LoadConfig(configPath); err != nil {
				r.logger.Warn("failed to load created config, using defaults", "error", err)
				config = shared.DefaultConfig()
			}
		}
	}
	r.config = config

	r.logger.Info("initializing database", "path", config.Database.Path)

	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	// Materialize the starter playlists so their timestamps stop floating.
	if err := s.SavePlaylists(s.Playlists()); err != nil {
		return fmt.Errorf("failed to seed playlists: %w", err)
	}

	r.writePlain("✓ Setup complete\n")
	r.writePlain("Config: %s\n", configPath)
	r.writePlain("Database: %s\n", config.Database.Path)
	r.writePlain("Try: tfive meditate\n")
	return nil
}
