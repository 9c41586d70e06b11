// Package catalog caches exercise-catalog collections between requests.
// Catalog ids are stable, so this is the one piece of state the engine is
// allowed to keep across calls.
package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/coocood/freecache"
	"github.com/fitflow/fitflow/internal/domain"
)

const (
	// DefaultSizeMB is the in-memory budget when config does not override it.
	DefaultSizeMB = 16

	defaultTTLSeconds = 3600
)

// Cache is a read-through store for per-scope exercise catalogs. A scope is
// typically a user id; an empty scope addresses the shared default catalog.
type Cache struct {
	store      *freecache.Cache
	ttlSeconds int
}

func New(sizeMB int) *Cache {
	if sizeMB <= 0 {
		sizeMB = DefaultSizeMB
	}
	return &Cache{
		store:      freecache.NewCache(sizeMB * 1024 * 1024),
		ttlSeconds: defaultTTLSeconds,
	}
}

// Put stores the catalog for a scope, replacing any previous entry.
func (c *Cache) Put(scope string, entries []domain.ExerciseCatalogEntry) error {
	raw, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode catalog for scope %q: %w", scope, err)
	}
	if err := c.store.Set([]byte(key(scope)), raw, c.ttlSeconds); err != nil {
		return fmt.Errorf("cache catalog for scope %q: %w", scope, err)
	}
	return nil
}

// Get returns the cached catalog for a scope, or ok=false on miss.
func (c *Cache) Get(scope string) ([]domain.ExerciseCatalogEntry, bool) {
	raw, err := c.store.Get([]byte(key(scope)))
	if err != nil {
		return nil, false
	}
	var entries []domain.ExerciseCatalogEntry
	if err := json.Unmarshal(raw, &entries); err != nil {
		// A corrupt entry is as good as a miss.
		c.store.Del([]byte(key(scope)))
		return nil, false
	}
	return entries, true
}

// Resolve prefers the supplied catalog and caches it; on an empty supply it
// falls back to the cached copy for the scope.
func (c *Cache) Resolve(scope string, supplied []domain.ExerciseCatalogEntry) []domain.ExerciseCatalogEntry {
	if len(supplied) > 0 {
		// Best effort: an oversized catalog simply stays uncached.
		_ = c.Put(scope, supplied)
		return supplied
	}
	cached, ok := c.Get(scope)
	if !ok {
		return supplied
	}
	return cached
}

// EntryCount reports how many catalog entries are currently cached.
func (c *Cache) EntryCount() int64 {
	return c.store.EntryCount()
}

func key(scope string) string { return "catalog:" + scope }
