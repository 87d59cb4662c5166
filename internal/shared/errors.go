package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig      = fmt.Errorf("configuration not found")
	ErrInvalidConfig      = fmt.Errorf("invalid configuration")
	ErrMissingCredentials = fmt.Errorf("missing credentials")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")

	// Provider errors
	ErrProviderAuth        = fmt.Errorf("provider authentication failed")
	ErrProviderRequest     = fmt.Errorf("provider request failed")
	ErrProviderUnavailable = fmt.Errorf("provider unavailable")

	// Storage errors
	ErrSlotNotFound  = fmt.Errorf("slot not found")
	ErrStorageRead   = fmt.Errorf("failed to read persisted slot")
	ErrStorageWrite  = fmt.Errorf("failed to persist slot")
	ErrImportRead    = fmt.Errorf("failed to read import file")
	ErrInvalidImport = fmt.Errorf("invalid import payload")

	// Domain errors
	ErrPlaylistNotFound   = fmt.Errorf("playlist not found")
	ErrTrackNotFound      = fmt.Errorf("track not found")
	ErrMeditationNotFound = fmt.Errorf("meditation not found")
	ErrEmptyEntry         = fmt.Errorf("journal entry text is empty")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
