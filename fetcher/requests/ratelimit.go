package requests

import (
	"context"
	"leaguehub/pkg/config"
	"sync"
	"time"
)

// Limiter blocks until a call can be issued.
type Limiter interface {
	Wait(ctx context.Context) error
}

// Single riot rate limiting window.
type RiotLimit struct {
	limit         int
	resetInterval time.Duration
	count         int
	lastReset     time.Time
}

// RateLimiter enforces every window of the application rate limit.
type RateLimiter struct {
	windows []*RiotLimit
	now     func() time.Time
	sleep   func(ctx context.Context, d time.Duration) error
	mu      sync.Mutex
}

// NewRateLimiter creates a limiter with one window per limit.
func NewRateLimiter(limits ...config.Limit) *RateLimiter {
	r := &RateLimiter{
		now:   time.Now,
		sleep: sleepContext,
	}

	for _, limit := range limits {
		// A window without room would never open.
		if limit.Count <= 0 || limit.ResetInterval <= 0 {
			continue
		}
		r.windows = append(r.windows, &RiotLimit{
			limit:         limit.Count,
			resetInterval: limit.ResetInterval,
			lastReset:     r.now(),
		})
	}

	return r
}

// Wait blocks until every window has room for one more call, or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	for {
		waitTime, ok := r.reserve()
		if ok {
			return nil
		}

		// Wait till next reset.
		if err := r.sleep(ctx, waitTime); err != nil {
			return err
		}
	}
}

// reserve takes a slot on every window, or returns how long until the slowest window resets.
func (r *RateLimiter) reserve() (time.Duration, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.resetCounts(now)

	if r.checkLimits() {
		r.incrementCounts()
		return 0, true
	}

	var waitTime time.Duration
	for _, window := range r.windows {
		// If it's not this window that is limited, just continue.
		if window.count < window.limit {
			continue
		}

		waitTill := window.resetInterval - now.Sub(window.lastReset)
		if waitTill > waitTime {
			waitTime = waitTill
		}
	}

	return waitTime, false
}

// Reset the count of every elapsed window.
func (r *RateLimiter) resetCounts(now time.Time) {
	for _, window := range r.windows {
		if now.Sub(window.lastReset) >= window.resetInterval {
			window.count = 0
			window.lastReset = now
		}
	}
}

// Check if any window is on it's limits.
func (r *RateLimiter) checkLimits() bool {
	for _, window := range r.windows {
		if window.count >= window.limit {
			return false
		}
	}
	return true
}

// Loop through each window and increment the counter.
func (r *RateLimiter) incrementCounts() {
	for _, window := range r.windows {
		window.count++
	}
}

// sleepContext sleeps for d unless the context is done first.
func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
