package reconcile

import (
	"context"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// EntryCache holds a previously acquired listing.
type EntryCache struct {
	// Entries is the cached file list.
	Entries []FileEntry

	// Built is the timestamp when this cache was built.
	Built time.Time

	// TTL is the time-to-live for this cache.
	TTL time.Duration
}

// IsExpired returns true if this cache has expired based on its TTL.
func (c *EntryCache) IsExpired() bool {
	if c.TTL == 0 {
		return true // No caching
	}
	return time.Since(c.Built) > c.TTL
}

// cacheStore holds all listing caches keyed by source cache key.
type cacheStore struct {
	mu     sync.RWMutex
	caches map[string]*EntryCache
	sf     singleflight.Group
}

// globalCacheStore is the singleton cache store for all cacheable sources.
var globalCacheStore = &cacheStore{
	caches: make(map[string]*EntryCache),
}

// GetOrLoad returns the cached listing for key, or loads a new one if it is missing or expired.
// Uses singleflight so concurrent audits of the same location share one acquisition.
func GetOrLoad(ctx context.Context, key string, ttl time.Duration, load func(context.Context) ([]FileEntry, error)) ([]FileEntry, error) {
	// Fast path: check if cache exists and is fresh
	globalCacheStore.mu.RLock()
	cache, exists := globalCacheStore.caches[key]
	globalCacheStore.mu.RUnlock()

	if exists && !cache.IsExpired() {
		return cache.Entries, nil
	}

	result, err, _ := globalCacheStore.sf.Do(key, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		globalCacheStore.mu.RLock()
		cache, exists := globalCacheStore.caches[key]
		globalCacheStore.mu.RUnlock()

		if exists && !cache.IsExpired() {
			return cache.Entries, nil
		}

		entries, err := load(ctx)
		if err != nil {
			return nil, err
		}

		globalCacheStore.mu.Lock()
		globalCacheStore.caches[key] = &EntryCache{
			Entries: entries,
			Built:   time.Now(),
			TTL:     ttl,
		}
		globalCacheStore.mu.Unlock()

		return entries, nil
	})

	if err != nil {
		return nil, err
	}

	return result.([]FileEntry), nil
}

// InvalidateCache removes the cached listing for key.
func InvalidateCache(key string) {
	globalCacheStore.mu.Lock()
	delete(globalCacheStore.caches, key)
	globalCacheStore.mu.Unlock()
}
