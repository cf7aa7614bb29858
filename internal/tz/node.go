package tz

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/timebanner/timebanner/internal/core/ports"
)

// NodeID is the unique identifier for the zone resolver Graft node.
const NodeID graft.ID = "adapter.tz"

func init() {
	graft.Register(graft.Node[ports.ZoneResolver]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.ZoneResolver, error) {
			resolver, err := NewResolver()
			if err != nil {
				return nil, err
			}
			return resolver, nil
		},
	})
}
