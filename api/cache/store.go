package cache

import (
	"context"
	"encoding/json"
	"errors"
	"leaguehub/pkg/redis"
	"strconv"
	"time"

	"go.uber.org/zap"
)

// Key namespaces of the shared cache.
const (
	CatalogVersionKey   = "catalog:version"
	CatalogListKey      = "catalog:list"
	catalogDetailPrefix = "catalog:detail:"
	featuredPrefix      = "featured:"
)

// CatalogDetailKey is the key of a champion detail.
func CatalogDetailKey(championId string) string {
	return catalogDetailPrefix + championId
}

// FeaturedKey is the key of a featured result.
func FeaturedKey(platform string, queue string, limit int) string {
	return featuredPrefix + platform + ":" + queue + ":" + strconv.Itoa(limit)
}

// RemoteCache is the shared second level of a Store.
type RemoteCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
}

// remoteEntry is the redis value, the expiration travels with it so memory never outlives redis.
type remoteEntry[T any] struct {
	Value     T         `json:"value"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Store is a memory cache in front of a optional redis.
type Store[T any] struct {
	memory *MemCache[T]
	remote RemoteCache
	ttl    time.Duration
	group  Group[loaded[T]]
	logger *zap.Logger
}

// loaded is the outcome of a shared load.
type loaded[T any] struct {
	value  T
	cached bool
}

// StoreDeps is the dependency list of a store.
type StoreDeps struct {
	// Remote is optional, without it the store is memory only.
	Remote RemoteCache
	TTL    time.Duration
	Logger *zap.Logger
	// Options of the memory level.
	Options []Option
}

// NewStore creates a tiered store.
func NewStore[T any](deps *StoreDeps) *Store[T] {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Store[T]{
		memory: NewMemCache[T](deps.Options...),
		remote: deps.Remote,
		ttl:    deps.TTL,
		logger: logger,
	}
}

// TTL returns the lifetime of every entry.
func (s *Store[T]) TTL() time.Duration {
	return s.ttl
}

// Get tries the memory, then the redis.
// A redis hit is copied to memory for the remaining lifetime.
func (s *Store[T]) Get(ctx context.Context, key string) (T, bool) {
	if value, ok := s.memory.Get(key); ok {
		return value, true
	}

	var zero T
	if s.remote == nil {
		return zero, false
	}

	raw, err := s.remote.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("Failed to get key from redis", zap.String("key", key), zap.Error(err))
		}
		return zero, false
	}

	var entry remoteEntry[T]
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		s.logger.Warn("Failed to unmarshal cached value", zap.String("key", key), zap.Error(err))
		return zero, false
	}

	remaining := entry.ExpiresAt.Sub(s.memory.now())
	if remaining <= 0 {
		return zero, false
	}

	s.memory.Set(key, entry.Value, remaining)
	return entry.Value, true
}

// Set stores on both levels.
// A redis failure is only logged.
func (s *Store[T]) Set(ctx context.Context, key string, value T) {
	s.memory.Set(key, value, s.ttl)

	if s.remote == nil {
		return
	}

	entry := remoteEntry[T]{Value: value, ExpiresAt: s.memory.now().Add(s.ttl)}
	j, err := json.Marshal(entry)
	if err != nil {
		s.logger.Warn("Failed to marshal value", zap.String("key", key), zap.Error(err))
		return
	}

	if err := s.remote.Set(ctx, key, string(j), s.ttl); err != nil {
		s.logger.Warn("Failed to set key on redis", zap.String("key", key), zap.Error(err))
	}
}

// GetOrLoad returns the cached value, or loads and caches it, and if it came from the cache.
// Concurrent misses of a key share one load, a failed load caches nothing.
func (s *Store[T]) GetOrLoad(ctx context.Context, key string, load func(ctx context.Context) (T, error)) (T, bool, error) {
	if value, ok := s.Get(ctx, key); ok {
		return value, true, nil
	}

	result, err := s.group.Do(ctx, key, func(ctx context.Context) (loaded[T], error) {
		// A load that finished after our miss may have filled it already.
		if value, ok := s.Get(ctx, key); ok {
			return loaded[T]{value: value, cached: true}, nil
		}

		value, err := load(ctx)
		if err != nil {
			return loaded[T]{}, err
		}

		s.Set(ctx, key, value)
		return loaded[T]{value: value}, nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}

	return result.value, result.cached, nil
}

// Delete removes a key from memory only, redis keys expire by themselves.
func (s *Store[T]) Delete(key string) {
	s.memory.Delete(key)
}

// Close stops the memory worker.
func (s *Store[T]) Close() {
	s.memory.Close()
}
