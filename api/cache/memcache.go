package cache

import (
	"context"
	"sync"
	"time"
)

// Default interval of the expired keys cleanup.
const DefaultSweepInterval = 5 * time.Minute

// MemCache is a in-memory cache where every key has it's own TTL.
type MemCache[T any] struct {
	memoryCache   map[string]MemCacheItem[T]
	mu            sync.Mutex
	now           func() time.Time
	sweepInterval time.Duration
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	closeOnce     sync.Once
}

// Simple cache item.
type MemCacheItem[T any] struct {
	value     T
	expiresAt time.Time
}

// Option changes a MemCache on creation.
type Option func(*memCacheOptions)

type memCacheOptions struct {
	now           func() time.Time
	sweepInterval time.Duration
}

// WithClock replaces the clock, used by tests.
func WithClock(now func() time.Time) Option {
	return func(o *memCacheOptions) {
		o.now = now
	}
}

// WithSweepInterval changes the cleanup interval, zero or less disables the worker.
func WithSweepInterval(interval time.Duration) Option {
	return func(o *memCacheOptions) {
		o.sweepInterval = interval
	}
}

// NewMemCache creates a new memory cache.
func NewMemCache[T any](opts ...Option) *MemCache[T] {
	options := memCacheOptions{
		now:           time.Now,
		sweepInterval: DefaultSweepInterval,
	}
	for _, opt := range opts {
		opt(&options)
	}

	ctx, cancel := context.WithCancel(context.Background())
	mc := &MemCache[T]{
		memoryCache:   make(map[string]MemCacheItem[T]),
		now:           options.now,
		sweepInterval: options.sweepInterval,
		ctx:           ctx,
		cancel:        cancel,
	}

	if mc.sweepInterval > 0 {
		mc.startCleanupWorker()
	}

	return mc
}

// startCleanupWorker starts the background worker for memory cleaning.
func (mc *MemCache[T]) startCleanupWorker() {
	ticker := time.NewTicker(mc.sweepInterval)

	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				mc.cleanup()
			case <-mc.ctx.Done():
				return
			}
		}
	}()
}

// cleanup go through each key and clean any expired key.
func (mc *MemCache[T]) cleanup() {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	now := mc.now()
	for key, item := range mc.memoryCache {
		if !now.Before(item.expiresAt) {
			delete(mc.memoryCache, key)
		}
	}
}

// Close shutdown the memory cache worker.
func (mc *MemCache[T]) Close() {
	mc.closeOnce.Do(func() {
		mc.cancel()
		mc.wg.Wait()
	})
}

// Get returns the value of a key, if present and not expired.
func (mc *MemCache[T]) Get(key string) (T, bool) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	var zero T
	item, exists := mc.memoryCache[key]
	if !exists {
		return zero, false
	}

	// If the expiration was reached, remove the key.
	if !mc.now().Before(item.expiresAt) {
		delete(mc.memoryCache, key)
		return zero, false
	}

	return item.value, true
}

// Set a given key on the cache, replacing any previous value.
func (mc *MemCache[T]) Set(key string, value T, ttl time.Duration) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	mc.memoryCache[key] = MemCacheItem[T]{
		value:     value,
		expiresAt: mc.now().Add(ttl),
	}
}

// Delete removes a key.
func (mc *MemCache[T]) Delete(key string) {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	delete(mc.memoryCache, key)
}

// Len returns the amount of stored keys, expired ones not yet removed included.
func (mc *MemCache[T]) Len() int {
	mc.mu.Lock()
	defer mc.mu.Unlock()

	return len(mc.memoryCache)
}
