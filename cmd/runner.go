package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/tfive/internal/notify"
	"github.com/desertthunder/tfive/internal/services"
	"github.com/desertthunder/tfive/internal/shared"
	"github.com/desertthunder/tfive/internal/store"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	spotify    services.Provider
	jamendo    services.Provider
	store      *store.Store
	notifier   *notify.Notifier
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Spotify    services.Provider
	Jamendo    services.Provider
	Store      *store.Store
	Notifier   *notify.Notifier
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.Notifier == nil {
		opts.Notifier = notify.New(opts.Output, opts.Logger)
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		spotify:    opts.Spotify,
		jamendo:    opts.Jamendo,
		store:      opts.Store,
		notifier:   opts.Notifier,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger swaps the runner's logger, e.g. to a file logger while a TUI owns
// the terminal.
func (r *Runner) SetLogger(logger *log.Logger) {
	r.logger = logger
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, meditateCommand, boredCommand, journalCommand, muralCommand, musicCommand, settingsCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// openStore returns the record store, opening the configured database when no
// store was injected. The returned func releases the underlying connection.
func (r *Runner) openStore() (*store.Store, func(), error) {
	if r.store != nil {
		return r.store, func() {}, nil
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return store.New(store.NewSQLiteBackend(db), r.logger), func() { db.Close() }, nil
}

// provider resolves a music provider by name, defaulting to Jamendo.
// Providers not injected through [RunnerOpts] are built on first use from the
// configured credentials and the runner's HTTP client.
func (r *Runner) provider(name string) (services.Provider, error) {
	var p services.Provider
	switch name {
	case "", "jamendo":
		if r.jamendo == nil {
			r.jamendo = services.NewJamendoProvider(r.config.Credentials.Jamendo.ClientID, r.httpClient)
		}
		p = r.jamendo
	case "spotify":
		if r.spotify == nil {
			r.spotify = services.NewSpotifyProvider(
				r.config.Credentials.Spotify.ClientID,
				r.config.Credentials.Spotify.ClientSecret,
				r.httpClient,
			)
		}
		p = r.spotify
	default:
		return nil, fmt.Errorf("%w: unknown provider %q", shared.ErrInvalidFlag, name)
	}

	if p == nil || !p.Available() {
		return nil, fmt.Errorf("%w: %s credentials not configured", shared.ErrProviderUnavailable, name)
	}
	return p, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
