// Package cache implements the two-compartment render cache: minute-expiring
// storage for relative renders and a byte-budgeted LRU for absolute renders,
// with a single-flight guarantee across concurrent requests for one key.
package cache

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/singleflight"

	"github.com/timebanner/timebanner/internal/core/domain"
	"github.com/timebanner/timebanner/internal/core/ports"
)

// DefaultBudget is the absolute compartment's byte budget when configuration
// is silent.
const DefaultBudget int64 = 50 << 20

var _ ports.RenderCache = (*Cache)(nil)

// Cache is the process-wide render cache. State is in-memory only and lives
// for the life of the process.
type Cache struct {
	relative *relativeCompartment
	absolute *absoluteCompartment
	clock    clockwork.Clock
	group    singleflight.Group
}

// New creates a Cache with the given absolute-compartment byte budget.
func New(clock clockwork.Clock, budget int64) *Cache {
	if budget <= 0 {
		budget = DefaultBudget
	}
	return &Cache{
		relative: newRelativeCompartment(),
		absolute: newAbsoluteCompartment(budget),
		clock:    clock,
	}
}

// GetOrRender returns the resident entry for key or renders it exactly once.
//
// Concurrent callers for the same key share one in-flight render; the first
// caller's result is observed by all waiters. The render runs on a context
// detached from the triggering caller so an abandoned request cannot cancel
// a render other waiters depend on. A failed render is not cached and its
// error is returned to every waiter; the key is immediately retryable.
func (c *Cache) GetOrRender(ctx context.Context, key domain.CacheKey, mode domain.DisplayMode, render ports.RenderFunc) (*domain.CacheEntry, error) {
	comp := c.compartment(mode)

	if entry, ok := comp.get(key, c.clock.Now()); ok {
		return entry, nil
	}

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		// Another flight may have populated the slot while we queued. The
		// miss was already tallied above, so this re-check must not count.
		if entry, ok := comp.peek(key, c.clock.Now()); ok {
			return entry, nil
		}

		data, err := render(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		return comp.put(key, data, c.clock.Now()), nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.CacheEntry), nil
}

// Stats returns a snapshot of both compartments' counters.
func (c *Cache) Stats() map[domain.DisplayMode]domain.CacheStats {
	return map[domain.DisplayMode]domain.CacheStats{
		domain.ModeRelative: c.relative.snapshot(),
		domain.ModeAbsolute: c.absolute.snapshot(),
	}
}

// Run sweeps the relative compartment at every minute boundary until ctx is
// done. The lazy expiry check in get keeps correctness either way; the sweep
// only bounds memory between accesses.
func (c *Cache) Run(ctx context.Context) error {
	for {
		now := c.clock.Now()
		next := now.Truncate(time.Minute).Add(time.Minute)

		select {
		case <-c.clock.After(next.Sub(now)):
			c.relative.sweep(c.clock.Now())
		case <-ctx.Done():
			return nil
		}
	}
}

func (c *Cache) compartment(mode domain.DisplayMode) compartment {
	if mode == domain.ModeRelative {
		return c.relative
	}
	return c.absolute
}

// compartment is the narrow contract both eviction policies implement.
type compartment interface {
	get(key domain.CacheKey, now time.Time) (*domain.CacheEntry, bool)
	// peek is get without touching the hit and miss counters, for re-checks
	// inside a flight that already counted its lookup.
	peek(key domain.CacheKey, now time.Time) (*domain.CacheEntry, bool)
	put(key domain.CacheKey, data []byte, now time.Time) *domain.CacheEntry
	snapshot() domain.CacheStats
}

// counters are per-compartment tallies, guarded by the compartment lock.
type counters struct {
	hits      int64
	misses    int64
	evictions int64
	expiries  int64
}

func (c counters) snapshot() domain.CacheStats {
	return domain.CacheStats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Expiries:  c.expiries,
	}
}
