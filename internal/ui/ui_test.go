package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/tfive/internal/models"
	"github.com/desertthunder/tfive/internal/timer"
)

func TestNewModel(t *testing.T) {
	t.Run("boredom countdown caps at its own ceiling", func(t *testing.T) {
		m := NewModel(BoredomMode, 30, nil, nil, nil)
		if got := m.engine.Minutes(); got != BoredomMaxMinutes {
			t.Errorf("minutes = %d, want %d", got, BoredomMaxMinutes)
		}
	})

	t.Run("boredom countdown keeps in-range durations", func(t *testing.T) {
		m := NewModel(BoredomMode, 3, nil, nil, nil)
		if got := m.engine.Minutes(); got != 3 {
			t.Errorf("minutes = %d, want 3", got)
		}
	})

	t.Run("meditation countdown keeps the full range", func(t *testing.T) {
		meditation := models.GuidedMeditations[0]
		m := NewModel(MeditationMode, 30, nil, nil, &meditation)
		if got := m.engine.Minutes(); got != 30 {
			t.Errorf("minutes = %d, want 30", got)
		}
	})

	t.Run("meditation without a pick opens the picker", func(t *testing.T) {
		m := NewModel(MeditationMode, 5, nil, nil, nil)
		if m.view != PickerView {
			t.Errorf("view = %d, want PickerView", m.view)
		}
	})
}

func TestTimerKeys(t *testing.T) {
	keyMsg := func(r rune) tea.KeyMsg {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
	}

	t.Run("duration keys work while paused", func(t *testing.T) {
		meditation := models.GuidedMeditations[0]
		m := NewModel(MeditationMode, 5, nil, nil, &meditation)
		m.engine.Start()
		m.engine.Tick()
		m.engine.Pause()

		m.handleTimerKeys(keyMsg('+'))
		snap := m.engine.Snapshot()
		if snap.Total != 360 {
			t.Errorf("total = %d, want 360", snap.Total)
		}
		if snap.Remaining != 360 {
			t.Errorf("remaining = %d, want 360", snap.Remaining)
		}
		if snap.State != timer.Paused {
			t.Errorf("state = %v, want paused", snap.State)
		}
	})

	t.Run("duration keys are ignored while running", func(t *testing.T) {
		meditation := models.GuidedMeditations[0]
		m := NewModel(MeditationMode, 5, nil, nil, &meditation)
		m.engine.Start()

		m.handleTimerKeys(keyMsg('+'))
		if got := m.engine.Total(); got != 300 {
			t.Errorf("total = %d, want 300", got)
		}
	})
}
