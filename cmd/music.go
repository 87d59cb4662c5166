package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/tfive/internal/formatter"
	"github.com/desertthunder/tfive/internal/shared"
	"github.com/desertthunder/tfive/internal/tasks"
	"github.com/urfave/cli/v3"
)

// MusicSearch queries a provider for tracks by free text or curated category.
func (r *Runner) MusicSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	category := cmd.String("category")
	limit := cmd.Int("limit")

	if query == "" && category == "" {
		return fmt.Errorf("%w: a query argument or --category is required", shared.ErrMissingArgument)
	}

	provider, err := r.provider(cmd.String("provider"))
	if err != nil {
		return err
	}

	session := tasks.NewSearchSession()
	if category != "" {
		r.logger.Info("searching category", "provider", provider.Name(), "category", category)
		session.SearchByCategory(ctx, provider, category, limit)
	} else {
		r.logger.Info("searching", "provider", provider.Name(), "query", query)
		session.Search(ctx, provider, query, limit)
	}

	tracks, err := session.Current()
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if cmd.Bool("json") {
		return r.writeJSON(tracks, true)
	}

	if len(tracks) == 0 {
		r.writePlain("No results.\n")
		return nil
	}

	r.writePlainHeader(fmt.Sprintf("%s results (%d)", provider.Name(), len(tracks)))
	for i, track := range tracks {
		duration := ""
		if track.Duration > 0 {
			duration = fmt.Sprintf(" [%s]", shared.FormatDuration(track.Duration))
		}
		r.writePlain("%d. %s - %s%s\n", i+1, track.Artist, track.Title, duration)
		r.writePlain("   id: %s\n", track.ID)
	}
	return nil
}

// MusicPlaylists lists saved playlists.
func (r *Runner) MusicPlaylists(ctx context.Context, cmd *cli.Command) error {
	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	playlists := tasks.NewPlaylistManager(s).List()

	if cmd.Bool("json") {
		return r.writeJSON(playlists, true)
	}

	r.writePlainHeader(fmt.Sprintf("Playlists (%d)", len(playlists)))
	for _, p := range playlists {
		r.writePlain("%s  %s (%d tracks)\n", p.ID, p.Name, len(p.Tracks))
		if p.Description != "" {
			r.writePlain("       %s\n", p.Description)
		}
	}
	return nil
}

// PlaylistShow renders one playlist.
func (r *Runner) PlaylistShow(ctx context.Context, cmd *cli.Command) error {
	idOrName := cmd.StringArg("playlist")
	if idOrName == "" {
		return fmt.Errorf("%w: playlist name or id", shared.ErrMissingArgument)
	}

	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	playlist, err := tasks.NewPlaylistManager(s).Get(idOrName)
	if err != nil {
		return err
	}

	switch cmd.String("format") {
	case "csv":
		data, err := formatter.PlaylistToCSV(playlist)
		if err != nil {
			return err
		}
		return r.writePlain("%s", data)
	case "markdown", "md":
		return r.writePlain("%s", formatter.PlaylistToMarkdown(playlist))
	default:
		return r.writePlain("%s", formatter.PlaylistToText(playlist))
	}
}

// PlaylistCreate creates an empty playlist.
func (r *Runner) PlaylistCreate(ctx context.Context, cmd *cli.Command) error {
	name := cmd.StringArg("name")
	if name == "" {
		return fmt.Errorf("%w: playlist name", shared.ErrMissingArgument)
	}

	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	playlist, err := tasks.NewPlaylistManager(s).Create(name, cmd.String("description"))
	if err != nil {
		return err
	}

	r.writePlain("✓ Playlist created: %s (%s)\n", playlist.Name, playlist.ID)
	return nil
}

// PlaylistDelete removes a playlist.
func (r *Runner) PlaylistDelete(ctx context.Context, cmd *cli.Command) error {
	idOrName := cmd.StringArg("playlist")
	if idOrName == "" {
		return fmt.Errorf("%w: playlist name or id", shared.ErrMissingArgument)
	}

	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	manager := tasks.NewPlaylistManager(s)
	playlist, err := manager.Get(idOrName)
	if err != nil {
		return err
	}
	if err := manager.Delete(playlist.ID); err != nil {
		return err
	}

	r.writePlain("✓ Playlist deleted: %s\n", playlist.Name)
	return nil
}

// PlaylistAdd searches a provider and adds the first match to a playlist.
func (r *Runner) PlaylistAdd(ctx context.Context, cmd *cli.Command) error {
	query := cmd.String("track")

	provider, err := r.provider(cmd.String("provider"))
	if err != nil {
		return err
	}

	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	manager := tasks.NewPlaylistManager(s)
	playlist, err := manager.Get(cmd.String("playlist"))
	if err != nil {
		return err
	}

	results, err := provider.Search(ctx, query, 1)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}
	if len(results) == 0 {
		return fmt.Errorf("%w: no match for %q", shared.ErrTrackNotFound, query)
	}

	track := results[0].ToTrack()
	if err := manager.AddTrack(playlist.ID, track); err != nil {
		return err
	}

	r.writePlain("✓ Added %s - %s to %s\n", track.Artist, track.Title, playlist.Name)
	return nil
}

// PlaylistRemove removes a track from a playlist.
func (r *Runner) PlaylistRemove(ctx context.Context, cmd *cli.Command) error {
	s, closeStore, err := r.openStore()
	if err != nil {
		return err
	}
	defer closeStore()

	manager := tasks.NewPlaylistManager(s)
	playlist, err := manager.Get(cmd.String("playlist"))
	if err != nil {
		return err
	}

	trackID := cmd.String("track-id")
	if err := manager.RemoveTrack(playlist.ID, trackID); err != nil {
		return err
	}

	r.writePlain("✓ Removed track %s from %s\n", trackID, playlist.Name)
	return nil
}
