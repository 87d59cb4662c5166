// package timer implements the countdown engine shared by the meditation and
// conscious-boredom timers.
//
// The engine is a plain state machine over whole seconds: Idle, Running, or
// Paused. It does not schedule anything itself; a driver (the TUI tick loop
// or [Run]) calls Tick once per second while the engine is Running. The
// completion callback fires exactly once per run, at the tick that crosses
// zero, after which the engine is back at Idle ready for an immediate restart.
package timer

import "sync"

// State enumerates the engine's phases.
type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Paused:
		return "paused"
	}
	return "unknown"
}

// Duration bounds, in minutes. Callers may narrow the upper bound (the
// boredom timer uses 20) but never widen past these.
const (
	MinMinutes = 1
	MaxMinutes = 30
)

// Snapshot is a read-only copy of the engine's observable state.
type Snapshot struct {
	State     State
	Total     int // seconds
	Remaining int // seconds
}

// Engine is a single countdown. Engines are independent; each surface owns
// its own. Safe for concurrent use, though the expected shape is one owning
// goroutine driving Tick.
type Engine struct {
	mu         sync.Mutex
	state      State
	total      int // seconds
	remaining  int // seconds
	maxMinutes int
	onComplete func()
}

// Option configures an Engine at construction.
type Option func(*Engine)

// WithMaxMinutes narrows the accepted duration range to [1, max]. Values
// outside [MinMinutes, MaxMinutes] are clamped.
func WithMaxMinutes(max int) Option {
	return func(e *Engine) {
		if max < MinMinutes {
			max = MinMinutes
		}
		if max > MaxMinutes {
			max = MaxMinutes
		}
		e.maxMinutes = max
	}
}

// WithOnComplete sets the completion sink, invoked exactly once per run.
func WithOnComplete(fn func()) Option {
	return func(e *Engine) {
		e.onComplete = fn
	}
}

// New creates an Idle engine with the given duration in minutes, clamped to
// the accepted range.
func New(minutes int, opts ...Option) *Engine {
	e := &Engine{state: Idle, maxMinutes: MaxMinutes}
	for _, opt := range opts {
		opt(e)
	}

	minutes = e.clamp(minutes)
	e.total = minutes * 60
	e.remaining = e.total
	return e
}

func (e *Engine) clamp(minutes int) int {
	if minutes < MinMinutes {
		return MinMinutes
	}
	if minutes > e.maxMinutes {
		return e.maxMinutes
	}
	return minutes
}

// SetDuration updates total and remaining together. Permitted while Idle or
// Paused; calls while Running are silently ignored so an inconsistent
// remaining/total pair can never be observed. Changing the duration of a
// paused countdown discards its progress. Out-of-range values clamp to the
// nearest bound rather than erroring.
func (e *Engine) SetDuration(minutes int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Running {
		return
	}

	minutes = e.clamp(minutes)
	e.total = minutes * 60
	e.remaining = e.total
}

// Start transitions Idle or Paused to Running. Entering fresh from Idle
// resets remaining to total; resuming from Paused keeps the frozen remaining.
// No-op while already Running.
func (e *Engine) Start() {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch e.state {
	case Idle:
		e.remaining = e.total
		e.state = Running
	case Paused:
		e.state = Running
	}
}

// Pause freezes the countdown. No-op unless Running, so pausing twice is the
// same as pausing once.
func (e *Engine) Pause() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state == Running {
		e.state = Paused
	}
}

// Reset returns the engine to Idle from any state, with remaining = total.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state = Idle
	e.remaining = e.total
}

// Tick advances the countdown by one second. Only a Running engine moves.
// When remaining reaches zero the engine transitions back to Idle with
// remaining reset to total, then invokes the completion callback (outside
// the lock) exactly once. Returns the post-tick state.
func (e *Engine) Tick() State {
	e.mu.Lock()

	if e.state != Running {
		state := e.state
		e.mu.Unlock()
		return state
	}

	e.remaining--
	if e.remaining > 0 {
		e.mu.Unlock()
		return Running
	}

	// Crossed zero: the callback observes remaining == 0 with the engine
	// already Idle, then the engine rearms for the same duration so the next
	// Start runs immediately.
	e.remaining = 0
	e.state = Idle
	fn := e.onComplete
	e.mu.Unlock()

	if fn != nil {
		fn()
	}

	e.mu.Lock()
	if e.state == Idle && e.remaining == 0 {
		e.remaining = e.total
	}
	e.mu.Unlock()
	return Idle
}

// Snapshot returns the current observable state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{State: e.state, Total: e.total, Remaining: e.remaining}
}

// State returns the current phase.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Remaining returns the seconds left in the current run.
func (e *Engine) Remaining() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.remaining
}

// Total returns the configured duration in seconds.
func (e *Engine) Total() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.total
}

// Minutes returns the configured duration in whole minutes.
func (e *Engine) Minutes() int {
	return e.Total() / 60
}
