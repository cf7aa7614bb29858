package cache

import (
	"sync"
	"time"

	"github.com/timebanner/timebanner/internal/core/domain"
)

// relativeCompartment holds renders of relative specs. Every entry expires at
// the first minute boundary after its creation; expiry is batched, not
// per-entry timers, and checked lazily on access so an expired entry is never
// returned as a hit even between sweeps. No LRU bookkeeping is needed since
// the compartment purges by time, not by usage.
type relativeCompartment struct {
	mu    sync.Mutex
	items map[uint64]*relativeItem
	stats counters
}

type relativeItem struct {
	enc       string
	entry     *domain.CacheEntry
	expiresAt time.Time
}

func newRelativeCompartment() *relativeCompartment {
	return &relativeCompartment{items: make(map[uint64]*relativeItem)}
}

func (c *relativeCompartment) get(key domain.CacheKey, now time.Time) (*domain.CacheEntry, bool) {
	return c.lookup(key, now, true)
}

func (c *relativeCompartment) peek(key domain.CacheKey, now time.Time) (*domain.CacheEntry, bool) {
	return c.lookup(key, now, false)
}

func (c *relativeCompartment) lookup(key domain.CacheKey, now time.Time, counted bool) (*domain.CacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key.Sum()]
	if !ok {
		if counted {
			c.stats.misses++
		}
		return nil, false
	}
	if item.enc != key.String() {
		panic("cache: key fingerprint collision: " + item.enc + " vs " + key.String())
	}

	if !now.Before(item.expiresAt) {
		// An expired entry is dropped on sight; the expiry is real either
		// way, while the miss belongs to the counted lookup.
		delete(c.items, key.Sum())
		c.stats.expiries++
		if counted {
			c.stats.misses++
		}
		return nil, false
	}

	if counted {
		c.stats.hits++
	}
	return item.entry, true
}

func (c *relativeCompartment) put(key domain.CacheKey, data []byte, now time.Time) *domain.CacheEntry {
	entry := &domain.CacheEntry{
		Bytes:          data,
		Size:           int64(len(data)),
		CreatedAt:      now,
		LastAccessedAt: now,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.items[key.Sum()]; ok && now.Before(existing.expiresAt) {
		return existing.entry
	}

	c.items[key.Sum()] = &relativeItem{
		enc:       key.String(),
		entry:     entry,
		expiresAt: now.Truncate(time.Minute).Add(time.Minute),
	}
	return entry
}

// sweep drops every entry whose minute has passed.
func (c *relativeCompartment) sweep(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for sum, item := range c.items {
		if !now.Before(item.expiresAt) {
			delete(c.items, sum)
			c.stats.expiries++
		}
	}
}

func (c *relativeCompartment) snapshot() domain.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats.snapshot()
	s.Entries = int64(len(c.items))
	for _, item := range c.items {
		s.Bytes += item.entry.Size
	}
	return s
}
