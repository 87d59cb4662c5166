package tasks

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/desertthunder/tfive/internal/models"
	"github.com/desertthunder/tfive/internal/shared"
	"github.com/desertthunder/tfive/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(store.NewMemoryBackend(), shared.NewLogger(nil))
}

func TestRecorder(t *testing.T) {
	t.Run("records guided session newest first", func(t *testing.T) {
		s := newTestStore(t)
		r := NewRecorder(s, nil)

		med, ok := models.FindMeditation("med-1")
		if !ok {
			t.Fatal("catalog missing med-1")
		}

		if _, err := r.RecordSession(5, &med); err != nil {
			t.Fatalf("record failed: %v", err)
		}
		second, err := r.RecordSession(10, nil)
		if err != nil {
			t.Fatalf("record failed: %v", err)
		}

		sessions := s.Sessions()
		if len(sessions) != 2 {
			t.Fatalf("sessions length = %d, want 2", len(sessions))
		}
		if sessions[0].ID != second.ID {
			t.Error("latest session should be first")
		}
		if sessions[1].Note != "Conscious breathing completed" {
			t.Errorf("note = %q", sessions[1].Note)
		}
		if sessions[1].MeditationType != "breathing" {
			t.Errorf("meditationType = %q", sessions[1].MeditationType)
		}
		if sessions[0].Note != "Free session completed" {
			t.Errorf("free session note = %q", sessions[0].Note)
		}
	})

	t.Run("journal entry requires text", func(t *testing.T) {
		r := NewRecorder(newTestStore(t), nil)

		if _, err := r.AddEntry("prompt", "   "); !errors.Is(err, shared.ErrEmptyEntry) {
			t.Errorf("expected ErrEmptyEntry, got %v", err)
		}
	})

	t.Run("reflection lands in journal with boredom prompt", func(t *testing.T) {
		s := newTestStore(t)
		r := NewRecorder(s, nil)

		if _, err := r.RecordReflection("the quiet was loud"); err != nil {
			t.Fatalf("record failed: %v", err)
		}

		journal := s.Journal()
		if len(journal) != 1 {
			t.Fatalf("journal length = %d, want 1", len(journal))
		}
		if journal[0].Prompt != models.BoredomPrompt {
			t.Errorf("prompt = %q", journal[0].Prompt)
		}
	})

	t.Run("prompts rotate", func(t *testing.T) {
		s := newTestStore(t)
		r := NewRecorder(s, nil)

		first := r.NextPrompt()
		if first != models.JournalPrompts[0] {
			t.Errorf("first prompt = %q", first)
		}

		if _, err := r.AddEntry(first, "entry one"); err != nil {
			t.Fatalf("add failed: %v", err)
		}
		if got := r.NextPrompt(); got != models.JournalPrompts[1] {
			t.Errorf("second prompt = %q, want %q", got, models.JournalPrompts[1])
		}
	})
}

func TestTimeline(t *testing.T) {
	s := newTestStore(t)
	r := NewRecorder(s, nil)

	if _, err := r.RecordSession(5, nil); err != nil {
		t.Fatalf("record failed: %v", err)
	}
	time.Sleep(2 * time.Millisecond)
	entry, err := r.AddEntry("", "after the sit")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}

	items := Timeline(s)
	if len(items) != 2 {
		t.Fatalf("timeline length = %d, want 2", len(items))
	}
	if items[0].Entry == nil || items[0].Entry.ID != entry.ID {
		t.Error("newest item should be the journal entry")
	}
	if items[1].Session == nil {
		t.Error("older item should be the session")
	}
	if items[0].When.Before(items[1].When) {
		t.Error("timeline not sorted newest first")
	}
}

func TestPlaylistManager(t *testing.T) {
	track := models.Track{ID: "t-1", Title: "Gymnopédie No. 1", Artist: "Erik Satie", Length: 210}

	t.Run("create get delete", func(t *testing.T) {
		m := NewPlaylistManager(newTestStore(t))

		created, err := m.Create("Evening wind-down", "slow pieces")
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		got, err := m.Get(created.ID)
		if err != nil {
			t.Fatalf("get by id failed: %v", err)
		}
		if got.Name != "Evening wind-down" {
			t.Errorf("name = %q", got.Name)
		}

		if _, err := m.Get("evening wind-down"); err != nil {
			t.Errorf("case-insensitive name lookup failed: %v", err)
		}

		if err := m.Delete(created.ID); err != nil {
			t.Fatalf("delete failed: %v", err)
		}
		if _, err := m.Get(created.ID); !errors.Is(err, shared.ErrPlaylistNotFound) {
			t.Errorf("expected ErrPlaylistNotFound, got %v", err)
		}
	})

	t.Run("create rejects empty name", func(t *testing.T) {
		m := NewPlaylistManager(newTestStore(t))
		if _, err := m.Create("  ", ""); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("add and remove tracks", func(t *testing.T) {
		m := NewPlaylistManager(newTestStore(t))
		p, err := m.Create("Piano", "")
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}

		if err := m.AddTrack(p.ID, track); err != nil {
			t.Fatalf("add track failed: %v", err)
		}
		if err := m.AddTrack(p.ID, track); !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("duplicate track id should be rejected, got %v", err)
		}

		got, _ := m.Get(p.ID)
		if len(got.Tracks) != 1 {
			t.Fatalf("tracks length = %d, want 1", len(got.Tracks))
		}

		if err := m.RemoveTrack(p.ID, "missing"); !errors.Is(err, shared.ErrTrackNotFound) {
			t.Errorf("expected ErrTrackNotFound, got %v", err)
		}
		if err := m.RemoveTrack(p.ID, track.ID); err != nil {
			t.Fatalf("remove track failed: %v", err)
		}

		got, _ = m.Get(p.ID)
		if len(got.Tracks) != 0 {
			t.Errorf("tracks length = %d, want 0", len(got.Tracks))
		}
	})

	t.Run("same track id allowed across playlists", func(t *testing.T) {
		m := NewPlaylistManager(newTestStore(t))
		a, _ := m.Create("A", "")
		b, _ := m.Create("B", "")

		if err := m.AddTrack(a.ID, track); err != nil {
			t.Fatalf("add to a failed: %v", err)
		}
		if err := m.AddTrack(b.ID, track); err != nil {
			t.Errorf("track id should be scoped per playlist, got %v", err)
		}
	})
}

func TestBackup(t *testing.T) {
	t.Run("export then import round trips", func(t *testing.T) {
		s := newTestStore(t)
		r := NewRecorder(s, nil)
		if _, err := r.RecordSession(5, nil); err != nil {
			t.Fatalf("record failed: %v", err)
		}

		path := filepath.Join(t.TempDir(), "backup.json")
		if err := ExportToFile(s, path); err != nil {
			t.Fatalf("export failed: %v", err)
		}

		fresh := newTestStore(t)
		if err := ImportFromFile(fresh, path); err != nil {
			t.Fatalf("import failed: %v", err)
		}

		if len(fresh.Sessions()) != 1 {
			t.Errorf("imported sessions length = %d, want 1", len(fresh.Sessions()))
		}
	})

	t.Run("missing file", func(t *testing.T) {
		s := newTestStore(t)
		err := ImportFromFile(s, filepath.Join(t.TempDir(), "absent.json"))
		if !errors.Is(err, shared.ErrImportRead) {
			t.Errorf("expected ErrImportRead, got %v", err)
		}
	})
}
