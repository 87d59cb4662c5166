package tasks

import (
	"fmt"
	"strings"

	"github.com/desertthunder/tfive/internal/models"
	"github.com/desertthunder/tfive/internal/shared"
	"github.com/desertthunder/tfive/internal/store"
)

// PlaylistManager provides playlist CRUD over the playlists slot.
type PlaylistManager struct {
	store *store.Store
}

// NewPlaylistManager creates a manager over the given store.
func NewPlaylistManager(s *store.Store) *PlaylistManager {
	return &PlaylistManager{store: s}
}

// List returns all playlists.
func (m *PlaylistManager) List() []models.Playlist {
	return m.store.Playlists()
}

// Get returns a playlist by id or name (case-insensitive name match).
func (m *PlaylistManager) Get(idOrName string) (models.Playlist, error) {
	for _, p := range m.store.Playlists() {
		if p.ID == idOrName || strings.EqualFold(p.Name, idOrName) {
			return p, nil
		}
	}
	return models.Playlist{}, fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, idOrName)
}

// Create adds a new empty playlist and returns it.
func (m *PlaylistManager) Create(name, description string) (models.Playlist, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Playlist{}, fmt.Errorf("%w: playlist name is empty", shared.ErrInvalidInput)
	}

	playlist := models.NewPlaylist(name, description)
	err := m.store.UpdatePlaylists(func(prev []models.Playlist) []models.Playlist {
		return append(prev, playlist)
	})
	if err != nil {
		return models.Playlist{}, err
	}

	return playlist, nil
}

// Delete removes a playlist by id.
func (m *PlaylistManager) Delete(id string) error {
	found := false
	err := m.store.UpdatePlaylists(func(prev []models.Playlist) []models.Playlist {
		next := make([]models.Playlist, 0, len(prev))
		for _, p := range prev {
			if p.ID == id {
				found = true
				continue
			}
			next = append(next, p)
		}
		return next
	})
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, id)
	}
	return nil
}

// AddTrack appends a track to a playlist. Track ids are unique within one
// playlist; adding a duplicate id is rejected.
func (m *PlaylistManager) AddTrack(playlistID string, track models.Track) error {
	var opErr error
	err := m.store.UpdatePlaylists(func(prev []models.Playlist) []models.Playlist {
		for i, p := range prev {
			if p.ID != playlistID {
				continue
			}
			if p.HasTrack(track.ID) {
				opErr = fmt.Errorf("%w: track %s already in playlist", shared.ErrInvalidInput, track.ID)
				return prev
			}
			prev[i].Tracks = append(prev[i].Tracks, track)
			return prev
		}
		opErr = fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
		return prev
	})
	if err != nil {
		return err
	}
	return opErr
}

// RemoveTrack removes a track from a playlist by track id.
func (m *PlaylistManager) RemoveTrack(playlistID, trackID string) error {
	var opErr error
	err := m.store.UpdatePlaylists(func(prev []models.Playlist) []models.Playlist {
		for i, p := range prev {
			if p.ID != playlistID {
				continue
			}

			next := make([]models.Track, 0, len(p.Tracks))
			removed := false
			for _, t := range p.Tracks {
				if t.ID == trackID {
					removed = true
					continue
				}
				next = append(next, t)
			}

			if !removed {
				opErr = fmt.Errorf("%w: %s", shared.ErrTrackNotFound, trackID)
				return prev
			}
			prev[i].Tracks = next
			return prev
		}
		opErr = fmt.Errorf("%w: %s", shared.ErrPlaylistNotFound, playlistID)
		return prev
	})
	if err != nil {
		return err
	}
	return opErr
}
