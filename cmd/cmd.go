// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles database and configuration initialization.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize config file, database, and starter playlists",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// meditateCommand handles meditation timers and session history.
func meditateCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "meditate",
		Aliases: []string{"med"},
		Usage:   "Run a meditation countdown",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "id",
			},
		},
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "minutes",
				Aliases: []string{"m"},
				Usage:   "Countdown length in minutes (1-30)",
			},
		},
		Action: r.Meditate,
		Commands: []*cli.Command{
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List the guided meditation catalog",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.MeditateList,
			},
			{
				Name:  "sessions",
				Usage: "Show recorded meditation sessions, newest first",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of sessions to show",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.MeditateSessions,
			},
		},
	}
}

// boredCommand runs the conscious-boredom countdown.
func boredCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "bored",
		Usage: "Do nothing on purpose for a few minutes",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "minutes",
				Aliases: []string{"m"},
				Usage:   "Countdown length in minutes (1-30)",
			},
		},
		Action: r.Bored,
	}
}

// journalCommand handles journal entries.
func journalCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "journal",
		Aliases: []string{"j"},
		Usage:   "Write and browse journal entries",
		Commands: []*cli.Command{
			{
				Name:  "add",
				Usage: "Save a new entry; text comes from the argument or stdin",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "text",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "prompt",
						Aliases: []string{"p"},
						Usage:   "Prompt to answer (defaults to the next rotating prompt)",
					},
					&cli.BoolFlag{
						Name:  "free",
						Usage: "Write without a prompt",
					},
				},
				Action: r.JournalAdd,
			},
			{
				Name:    "list",
				Aliases: []string{"ls"},
				Usage:   "List entries, newest first",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of entries to show",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.JournalList,
			},
			{
				Name:  "export",
				Usage: "Export the journal to a file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
						Value:   "journal.txt",
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Export format: text, markdown, or csv",
						Value:   "text",
					},
				},
				Action: r.JournalExport,
			},
		},
	}
}

// muralCommand shows the merged activity timeline.
func muralCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "mural",
		Usage: "Show your mural: sessions and entries on one timeline",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "Maximum number of items to show",
			},
			&cli.BoolFlag{
				Name:  "markdown",
				Usage: "Render as Markdown",
			},
		},
		Action: r.Mural,
	}
}

// musicCommand handles provider search and playlist management.
func musicCommand(r *Runner) *cli.Command {
	providerFlag := &cli.StringFlag{
		Name:    "provider",
		Aliases: []string{"p"},
		Usage:   "Music provider: jamendo or spotify",
		Value:   "jamendo",
	}

	return &cli.Command{
		Name:  "music",
		Usage: "Search calm music and manage playlists",
		Commands: []*cli.Command{
			{
				Name:  "search",
				Usage: "Search a provider for tracks",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "query",
					},
				},
				Flags: []cli.Flag{
					providerFlag,
					&cli.StringFlag{
						Name:  "category",
						Usage: "Search a curated category instead of free text",
					},
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of results",
						Value: 20,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.MusicSearch,
			},
			{
				Name:    "playlists",
				Aliases: []string{"pl"},
				Usage:   "List saved playlists",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.MusicPlaylists,
			},
			{
				Name:  "playlist",
				Usage: "Manage a single playlist",
				Commands: []*cli.Command{
					{
						Name:  "show",
						Usage: "Show a playlist's tracks",
						Arguments: []cli.Argument{
							&cli.StringArg{
								Name: "playlist",
							},
						},
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "format",
								Aliases: []string{"f"},
								Usage:   "Render format: text, markdown, or csv",
								Value:   "text",
							},
						},
						Action: r.PlaylistShow,
					},
					{
						Name:  "create",
						Usage: "Create an empty playlist",
						Arguments: []cli.Argument{
							&cli.StringArg{
								Name: "name",
							},
						},
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:    "description",
								Aliases: []string{"d"},
								Usage:   "Playlist description",
							},
						},
						Action: r.PlaylistCreate,
					},
					{
						Name:  "delete",
						Usage: "Delete a playlist",
						Arguments: []cli.Argument{
							&cli.StringArg{
								Name: "playlist",
							},
						},
						Action: r.PlaylistDelete,
					},
					{
						Name:  "add",
						Usage: "Search a provider and add the first match to a playlist",
						Flags: []cli.Flag{
							providerFlag,
							&cli.StringFlag{
								Name:     "playlist",
								Usage:    "Playlist name or ID",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "track",
								Usage:    "Track search query",
								Required: true,
							},
						},
						Action: r.PlaylistAdd,
					},
					{
						Name:  "remove",
						Usage: "Remove a track from a playlist",
						Flags: []cli.Flag{
							&cli.StringFlag{
								Name:     "playlist",
								Usage:    "Playlist name or ID",
								Required: true,
							},
							&cli.StringFlag{
								Name:     "track-id",
								Usage:    "Track ID to remove",
								Required: true,
							},
						},
						Action: r.PlaylistRemove,
					},
				},
			},
		},
	}
}

// settingsCommand handles the theme and data import/export.
func settingsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "settings",
		Usage: "Theme and data management",
		Commands: []*cli.Command{
			{
				Name:  "theme",
				Usage: "Show or set the theme (light, dark, system)",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "theme",
					},
				},
				Action: r.SettingsTheme,
			},
			{
				Name:  "export",
				Usage: "Export all data to a JSON snapshot",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
						Value:   "tfive-export.json",
					},
				},
				Action: r.SettingsExport,
			},
			{
				Name:  "import",
				Usage: "Replace all data from a JSON snapshot",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Action: r.SettingsImport,
			},
			{
				Name:  "reset",
				Usage: "Erase all data and restore defaults",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "force",
						Usage: "Skip the confirmation prompt",
					},
				},
				Action: r.SettingsReset,
			},
		},
	}
}
