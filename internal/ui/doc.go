// Package ui implements the interactive countdown interface using bubbletea's Elm architecture.
//
// The TUI provides a short workflow around a single countdown:
//  1. [PickerView] : Choose a guided meditation (skipped when one is preselected)
//  2. [TimerView] : Watch the countdown; pause, resume, reset, or adjust the duration
//  3. [NoteView] : After a boredom timer, optionally keep a reflection note
//  4. [DoneView] : Confirm what was recorded
//
// The [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// The countdown itself lives in [timer.Engine]; the TUI drives it with one
// [tea.Tick] per second and reacts to the Running-to-Idle transition, so the
// engine stays testable without a terminal.
//
// Keyboard controls: space (start/pause), r (reset), +/- (duration while
// idle), ctrl+d / esc (keep or skip a note), q (quit).
package ui
