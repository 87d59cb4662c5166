package tasks

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/desertthunder/tfive/internal/shared"
	"github.com/desertthunder/tfive/internal/store"
)

// ExportToFile writes a full snapshot of every slot to path as indented JSON.
func ExportToFile(s *store.Store, path string) error {
	snapshot := s.ExportAll()

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// ImportFromFile reads a full or partial snapshot from path and applies it.
// Validation failures leave the store untouched.
func ImportFromFile(s *store.Store, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrImportRead, err)
	}

	return s.ImportAll(data)
}
