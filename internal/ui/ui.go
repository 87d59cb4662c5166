package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/tfive/internal/models"
	"github.com/desertthunder/tfive/internal/notify"
	"github.com/desertthunder/tfive/internal/shared"
	"github.com/desertthunder/tfive/internal/tasks"
	"github.com/desertthunder/tfive/internal/timer"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	PickerView ViewState = iota
	TimerView
	NoteView
	DoneView
)

// Mode selects what a finished countdown turns into.
type Mode int

const (
	// MeditationMode records a meditation session at completion.
	MeditationMode Mode = iota
	// BoredomMode offers a reflection note at completion; only saved notes
	// become journal entries.
	BoredomMode
)

type tickMsg time.Time

// BoredomMaxMinutes caps the conscious-boredom countdown. Meditation runs
// use the engine's full range.
const BoredomMaxMinutes = 20

// Model represents the countdown TUI state.
type Model struct {
	mode       Mode
	view       ViewState
	engine     *timer.Engine
	recorder   *tasks.Recorder
	notifier   *notify.Notifier
	meditation *models.Meditation
	picker     list.Model
	note       textarea.Model
	session    *models.MeditationSession
	entry      *models.JournalEntry
	err        error
	width      int
	height     int
	help       help.Model
	keys       keyMap
}

// NewModel creates a countdown model. When meditation is nil and mode is
// MeditationMode the model opens on the guided meditation picker.
func NewModel(mode Mode, minutes int, recorder *tasks.Recorder, notifier *notify.Notifier, meditation *models.Meditation) *Model {
	var opts []timer.Option
	if mode == BoredomMode {
		opts = append(opts, timer.WithMaxMinutes(BoredomMaxMinutes))
	}

	m := &Model{
		mode:       mode,
		view:       TimerView,
		engine:     timer.New(minutes, opts...),
		recorder:   recorder,
		notifier:   notifier,
		meditation: meditation,
		help:       help.New(),
		keys:       newKeyMap(),
	}

	if mode == MeditationMode && meditation == nil {
		m.view = PickerView
		m.picker = NewMeditationList(models.GuidedMeditations)
	}
	return m
}

// Init starts the countdown unless the picker is up front.
func (m *Model) Init() tea.Cmd {
	if m.view == PickerView {
		return nil
	}
	m.engine.Start()
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.picker.Width() == 0 {
			m.picker.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.view {
		case PickerView:
			return m.handlePickerKeys(msg)
		case TimerView:
			return m.handleTimerKeys(msg)
		case NoteView:
			return m.handleNoteKeys(msg)
		case DoneView:
			return m.handleDoneKeys(msg)
		}

	case tickMsg:
		if m.view != TimerView {
			return m, nil
		}
		wasRunning := m.engine.Snapshot().State == timer.Running
		if state := m.engine.Tick(); wasRunning && state == timer.Idle {
			return m.complete()
		}
		return m, m.tick()
	}

	return m, nil
}

// complete fires once per finished countdown, while the display still
// reads 0:00.
func (m *Model) complete() (tea.Model, tea.Cmd) {
	if m.notifier != nil {
		m.notifier.Complete("tfive", m.completionBody())
	}

	if m.mode == BoredomMode {
		m.note = textarea.New()
		m.note.Placeholder = "What came up while you did nothing?"
		m.note.Focus()
		m.view = NoteView
		return m, textarea.Blink
	}

	session, err := m.recorder.RecordSession(m.engine.Snapshot().Total/60, m.meditation)
	if err != nil {
		m.err = err
	} else {
		m.session = &session
	}
	m.view = DoneView
	return m, nil
}

func (m *Model) completionBody() string {
	minutes := m.engine.Snapshot().Total / 60
	if m.mode == BoredomMode {
		return fmt.Sprintf("%d minutes of conscious boredom are up", minutes)
	}
	if m.meditation != nil {
		return fmt.Sprintf("%s finished (%d min)", m.meditation.Title, minutes)
	}
	return fmt.Sprintf("Session finished (%d min)", minutes)
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	switch m.view {
	case PickerView:
		return m.renderPicker()
	case TimerView:
		return m.renderTimer()
	case NoteView:
		return m.renderNote()
	case DoneView:
		return m.renderDone()
	default:
		return ""
	}
}

func (m *Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "enter":
		if selected, ok := m.picker.SelectedItem().(meditationItem); ok {
			meditation := selected.meditation
			m.meditation = &meditation
			m.engine = timer.New(meditation.Duration)
			m.engine.Start()
			m.view = TimerView
			return m, m.tick()
		}
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

func (m *Model) handleTimerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.engine.Snapshot()

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case " ":
		if snap.State == timer.Running {
			m.engine.Pause()
		} else {
			m.engine.Start()
		}
		return m, nil
	case "r":
		m.engine.Reset()
		return m, nil
	case "+", "=", "up":
		m.engine.SetDuration(snap.Total/60 + 1)
		return m, nil
	case "-", "down":
		m.engine.SetDuration(snap.Total/60 - 1)
		return m, nil
	}
	return m, nil
}

func (m *Model) handleNoteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m.view = DoneView
		return m, nil
	case "ctrl+d":
		entry, err := m.recorder.RecordReflection(m.note.Value())
		if err != nil {
			m.err = err
		} else {
			m.entry = &entry
		}
		m.view = DoneView
		return m, nil
	}

	var cmd tea.Cmd
	m.note, cmd = m.note.Update(msg)
	return m, cmd
}

func (m *Model) handleDoneKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "enter", "esc":
		return m, tea.Quit
	case "r":
		m.session = nil
		m.entry = nil
		m.err = nil
		m.engine.Reset()
		m.engine.Start()
		m.view = TimerView
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) renderPicker() string {
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.enter, m.keys.quit})
	return fmt.Sprintf("%s\n\n%s", m.picker.View(), helpView)
}

func (m *Model) renderTimer() string {
	snap := m.engine.Snapshot()

	title := "Conscious boredom"
	if m.mode == MeditationMode {
		title = "Free meditation"
		if m.meditation != nil {
			title = m.meditation.Title
		}
	}

	clock := styles.clock.Render(shared.FormatClock(snap.Remaining))

	var status string
	switch snap.State {
	case timer.Running:
		status = styles.ok.Render("breathing…")
	case timer.Paused:
		status = styles.warn.Render("paused")
	default:
		status = styles.help.Render(fmt.Sprintf("%s ready", shared.FormatDuration(snap.Total)))
	}

	var guide string
	if m.meditation != nil && m.meditation.Guide != "" {
		guide = "\n" + styles.help.Render(m.meditation.Guide) + "\n"
	}

	helpKeys := []key.Binding{m.keys.toggle, m.keys.reset}
	if snap.State != timer.Running {
		helpKeys = append(helpKeys, m.keys.longer, m.keys.shorter)
	}
	helpKeys = append(helpKeys, m.keys.quit)
	helpView := m.help.ShortHelpView(helpKeys)

	return fmt.Sprintf("%s\n\n%s\n\n%s\n%s\n%s", styles.title.Render(title), clock, status, guide, helpView)
}

func (m *Model) renderNote() string {
	title := styles.title.Render("Time is up. Want to keep anything?")
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.save, m.keys.skip})
	return fmt.Sprintf("%s\n\n%s\n\n%s", title, m.note.View(), helpView)
}

func (m *Model) renderDone() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}

	var body string
	switch {
	case m.session != nil:
		body = fmt.Sprintf("\n%d minutes recorded on your mural.", m.session.Minutes)
	case m.entry != nil:
		body = "\nYour reflection was saved to the journal."
	default:
		body = "\nNothing saved."
	}

	title := styles.ok.Render("✓ Done")
	helpView := m.help.ShortHelpView([]key.Binding{m.keys.restart, m.keys.quit})
	return fmt.Sprintf("%s%s\n\n%s", title, body, helpView)
}
