package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"

	"github.com/timebanner/timebanner/internal/adapters/config"
)

// NodeID is the unique identifier for the render cache Graft node.
const NodeID graft.ID = "cache.render"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Cache, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(clockwork.NewRealClock(), cfg.CacheBudgetBytes), nil
		},
	})
}
