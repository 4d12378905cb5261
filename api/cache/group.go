package cache

import (
	"context"
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Group collapses concurrent loads of the same key into one run.
// The run is detached from the caller that started it, it's cancelled only
// once every caller waiting on it has gone. Each caller returns on its own context.
type Group[T any] struct {
	group   singleflight.Group
	mu      sync.Mutex
	flights map[string]*flight
	nextId  uint64
}

// flight is the shared context of the callers of a key.
type flight struct {
	id      string
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
}

// Do runs fn once for every concurrent caller of key.
func (g *Group[T]) Do(ctx context.Context, key string, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	f := g.join(ctx, key)
	defer g.leave(key, f)

	// The flight id is part of the key, a run whose callers are all gone is never joined again.
	ch := g.group.DoChan(key+"#"+f.id, func() (any, error) {
		return fn(f.ctx)
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return zero, res.Err
		}
		return res.Val.(T), nil
	}
}

// join adds the caller to the flight of the key, creating it if needed.
func (g *Group[T]) join(ctx context.Context, key string) *flight {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.flights == nil {
		g.flights = make(map[string]*flight)
	}

	f, ok := g.flights[key]
	if !ok {
		// Keep the values of the first caller, drop its cancellation.
		runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		g.nextId++
		f = &flight{id: strconv.FormatUint(g.nextId, 10), ctx: runCtx, cancel: cancel}
		g.flights[key] = f
	}

	f.waiters++
	return f
}

// leave removes the caller, the last one out cancels the run.
func (g *Group[T]) leave(key string, f *flight) {
	g.mu.Lock()
	defer g.mu.Unlock()

	f.waiters--
	if f.waiters > 0 {
		return
	}

	f.cancel()
	if g.flights[key] == f {
		delete(g.flights, key)
	}
}
