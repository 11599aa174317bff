// internal/enums/cache.go

// Package enums holds the one-shot cache of backend-defined valid-value
// sets. The sets are reference data: fetched once per process, never
// re-polled, and treated as current at fetch time only.
package enums

import (
	"context"
	"fmt"
	"sync"

	"github.com/astrolabio1417/legacy-osu-bot/internal/models"
)

// Fetcher fetches the enum payload; *client.Client satisfies it.
type Fetcher interface {
	Enums(ctx context.Context) (models.BotEnums, error)
}

// Cache is a mutex-guarded holder of the fetched sets. The zero value is
// usable and rejects every membership query, so validation fails closed
// until a load succeeds.
type Cache struct {
	mu     sync.RWMutex
	sets   models.BotEnums
	loaded bool
}

// Load fetches the sets if no earlier load succeeded. A failed fetch leaves
// the cache empty; callers degrade to an unusable-but-not-crashing form.
func (c *Cache) Load(ctx context.Context, f Fetcher) error {
	c.mu.RLock()
	loaded := c.loaded
	c.mu.RUnlock()
	if loaded {
		return nil
	}

	sets, err := f.Enums(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch enum sets: %w", err)
	}

	c.mu.Lock()
	if !c.loaded {
		c.sets = sets
		c.loaded = true
	}
	c.mu.Unlock()
	return nil
}

// Loaded reports whether a fetch has succeeded.
func (c *Cache) Loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.loaded
}

// Values returns the fetched value set for an enum kind, or nil before any
// successful load.
func (c *Cache) Values(kind string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.sets.Values(kind)
}

// Valid reports membership of value in the fetched set for kind. It
// implements models.EnumSource.
func (c *Cache) Valid(kind, value string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.loaded {
		return false
	}
	for _, v := range c.sets.Values(kind) {
		if v == value {
			return true
		}
	}
	return false
}
