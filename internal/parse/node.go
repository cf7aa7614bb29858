package parse

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/timebanner/timebanner/internal/adapters/config"
	"github.com/timebanner/timebanner/internal/core/ports"
	"github.com/timebanner/timebanner/internal/tz"
)

// NodeID is the unique identifier for the parser Graft node.
const NodeID graft.ID = "core.parser"

func init() {
	graft.Register(graft.Node[*Parser]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			tz.NodeID,
		},
		Run: func(ctx context.Context) (*Parser, error) {
			cfg, err := graft.Dep[*config.Config](ctx)
			if err != nil {
				return nil, err
			}
			resolver, err := graft.Dep[ports.ZoneResolver](ctx)
			if err != nil {
				return nil, err
			}
			order, err := cfg.Order()
			if err != nil {
				return nil, err
			}
			return NewParser(resolver, cfg.DefaultFormat, order), nil
		},
	})
}
