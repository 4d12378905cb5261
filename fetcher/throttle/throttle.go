package throttle

import (
	"context"
	"time"
)

// DefaultDelay is the spacing between aggregated leaderboard entries.
const DefaultDelay = 80 * time.Millisecond

// Throttle enforces a minimum spacing between successive upstream calls.
type Throttle interface {
	Wait(ctx context.Context) error
}

// FixedDelay waits the same delay on every call.
type FixedDelay struct {
	delay time.Duration
}

// NewFixedDelay creates a fixed delay throttle, using the default delay if none is given.
func NewFixedDelay(delay time.Duration) *FixedDelay {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &FixedDelay{delay: delay}
}

// Delay returns the configured delay.
func (f *FixedDelay) Delay() time.Duration {
	return f.delay
}

// Wait sleeps for the delay, returning early with the context error if it's done.
func (f *FixedDelay) Wait(ctx context.Context) error {
	timer := time.NewTimer(f.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Nop never waits, only honoring the context.
type Nop struct{}

func (Nop) Wait(ctx context.Context) error {
	return ctx.Err()
}
