package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/timebanner/timebanner/internal/core/domain"
)

// absoluteCompartment holds renders of absolute specs under a total byte
// budget with least-recently-used eviction. All mutation is serialized by the
// compartment mutex; handed-out entries are shared read-only views.
type absoluteCompartment struct {
	mu     sync.Mutex
	budget int64
	size   int64
	items  map[uint64]*list.Element
	order  *list.List // front is most recently used
	stats  counters
}

type absoluteItem struct {
	enc   string
	sum   uint64
	entry *domain.CacheEntry
}

func newAbsoluteCompartment(budget int64) *absoluteCompartment {
	return &absoluteCompartment{
		budget: budget,
		items:  make(map[uint64]*list.Element),
		order:  list.New(),
	}
}

func (c *absoluteCompartment) get(key domain.CacheKey, now time.Time) (*domain.CacheEntry, bool) {
	return c.lookup(key, now, true)
}

func (c *absoluteCompartment) peek(key domain.CacheKey, now time.Time) (*domain.CacheEntry, bool) {
	return c.lookup(key, now, false)
}

func (c *absoluteCompartment) lookup(key domain.CacheKey, now time.Time, counted bool) (*domain.CacheEntry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.items[key.Sum()]
	if !ok {
		if counted {
			c.stats.misses++
		}
		return nil, false
	}
	item := elem.Value.(*absoluteItem)
	item.verify(key)

	c.order.MoveToFront(elem)
	// Timestamp updates race with readers of a handed-out entry; that is
	// acceptable, only the compartment ever reads LastAccessedAt.
	item.entry.LastAccessedAt = now

	if counted {
		c.stats.hits++
	}
	return item.entry, true
}

// put stores a freshly rendered entry, evicting in strict LRU order until it
// fits. An entry larger than the entire budget is returned uncached.
func (c *absoluteCompartment) put(key domain.CacheKey, data []byte, now time.Time) *domain.CacheEntry {
	entry := &domain.CacheEntry{
		Bytes:          data,
		Size:           int64(len(data)),
		CreatedAt:      now,
		LastAccessedAt: now,
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.items[key.Sum()]; ok {
		// A concurrent flight already populated the slot.
		item := elem.Value.(*absoluteItem)
		item.verify(key)
		return item.entry
	}

	if entry.Size > c.budget {
		return entry
	}

	for c.size+entry.Size > c.budget {
		c.evictOldest()
	}

	elem := c.order.PushFront(&absoluteItem{enc: key.String(), sum: key.Sum(), entry: entry})
	c.items[key.Sum()] = elem
	c.size += entry.Size
	return entry
}

func (c *absoluteCompartment) evictOldest() {
	elem := c.order.Back()
	if elem == nil {
		return
	}
	item := elem.Value.(*absoluteItem)
	c.order.Remove(elem)
	delete(c.items, item.sum)
	c.size -= item.entry.Size
	c.stats.evictions++
}

func (c *absoluteCompartment) snapshot() domain.CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()

	s := c.stats.snapshot()
	s.Entries = int64(len(c.items))
	s.Bytes = c.size
	s.Budget = c.budget
	return s
}

// verify guards the fingerprint-indexed map against hash collisions. Two
// distinct canonical encodings mapping to one slot is a programming error,
// not a recoverable condition.
func (i *absoluteItem) verify(key domain.CacheKey) {
	if i.enc != key.String() {
		panic("cache: key fingerprint collision: " + i.enc + " vs " + key.String())
	}
}
