package ports

import (
	"context"

	"github.com/timebanner/timebanner/internal/core/domain"
)

// RenderFunc produces the bytes for a cache miss. The cache invokes it with a
// context detached from any single caller so that an abandoned request never
// cancels a render other waiters depend on.
type RenderFunc func(ctx context.Context) ([]byte, error)

// RenderCache maps canonical keys to rendered entries under two eviction
// policies selected by display mode.
type RenderCache interface {
	// GetOrRender returns the resident entry for key, or invokes render
	// exactly once across concurrent callers, stores the result, and
	// returns it. A failed render is not cached; its error is returned to
	// every waiter and the key is released for retry.
	GetOrRender(ctx context.Context, key domain.CacheKey, mode domain.DisplayMode, render RenderFunc) (*domain.CacheEntry, error)

	// Stats returns per-compartment counters keyed by display mode.
	Stats() map[domain.DisplayMode]domain.CacheStats
}
