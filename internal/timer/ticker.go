package timer

import (
	"context"
	"time"
)

// Run drives the engine with a real once-per-second tick until the run
// completes, the engine otherwise leaves Running, or ctx is cancelled. The
// underlying [time.Ticker] is always stopped before returning, so repeated
// start/stop cycles never accumulate orphaned ticks.
//
// Interval exists for tests; callers pass time.Second.
func Run(ctx context.Context, e *Engine, interval time.Duration) error {
	if interval <= 0 {
		interval = time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if e.Tick() != Running {
				return nil
			}
		}
	}
}
