package cache

import (
	"leaguehub/internal/testutil"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestMemCache[T any](clock *testutil.FakeClock) *MemCache[T] {
	return NewMemCache[T](WithClock(clock.Now), WithSweepInterval(0))
}

func TestMemCacheGetSet(t *testing.T) {
	clock := testutil.NewFakeClock()
	mc := newTestMemCache[string](clock)
	defer mc.Close()

	_, ok := mc.Get("missing")
	assert.False(t, ok)

	mc.Set("version", "14.1.1", time.Hour)
	value, ok := mc.Get("version")
	assert.True(t, ok)
	assert.Equal(t, "14.1.1", value)
}

// The entry is visible only strictly before the expiration.
func TestMemCacheExpiration(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		visible bool
	}{
		{name: "before expiration", elapsed: time.Hour - time.Nanosecond, visible: true},
		{name: "at expiration", elapsed: time.Hour, visible: false},
		{name: "after expiration", elapsed: 2 * time.Hour, visible: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := testutil.NewFakeClock()
			mc := newTestMemCache[int](clock)
			defer mc.Close()

			mc.Set("key", 1, time.Hour)
			clock.Advance(tt.elapsed)

			_, ok := mc.Get("key")
			assert.Equal(t, tt.visible, ok)
			if !tt.visible {
				// Lazily removed on the lookup.
				assert.Equal(t, 0, mc.Len())
			}
		})
	}
}

func TestMemCacheOverwrite(t *testing.T) {
	clock := testutil.NewFakeClock()
	mc := newTestMemCache[int](clock)
	defer mc.Close()

	mc.Set("key", 1, time.Minute)
	clock.Advance(2 * time.Minute)
	mc.Set("key", 2, time.Minute)

	value, ok := mc.Get("key")
	assert.True(t, ok)
	assert.Equal(t, 2, value)
	assert.Equal(t, 1, mc.Len())
}

func TestMemCacheDelete(t *testing.T) {
	mc := newTestMemCache[int](testutil.NewFakeClock())
	defer mc.Close()

	mc.Set("key", 1, time.Minute)
	mc.Delete("key")

	_, ok := mc.Get("key")
	assert.False(t, ok)
}

func TestMemCacheCleanup(t *testing.T) {
	clock := testutil.NewFakeClock()
	mc := newTestMemCache[int](clock)
	defer mc.Close()

	mc.Set("short", 1, time.Minute)
	mc.Set("long", 2, time.Hour)
	clock.Advance(30 * time.Minute)

	mc.cleanup()
	assert.Equal(t, 1, mc.Len())
}

func TestMemCacheSweepWorker(t *testing.T) {
	clock := testutil.NewFakeClock()
	mc := NewMemCache[int](WithClock(clock.Now), WithSweepInterval(5*time.Millisecond))

	mc.Set("key", 1, time.Minute)
	clock.Advance(time.Hour)

	assert.Eventually(t, func() bool { return mc.Len() == 0 }, time.Second, 5*time.Millisecond)

	mc.Close()
	// Closing twice is harmless.
	mc.Close()
}

func TestMemCacheConcurrentAccess(t *testing.T) {
	mc := NewMemCache[int]()
	defer mc.Close()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			mc.Set("key", i, time.Minute)
			mc.Get("key")
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 1, mc.Len())
}
