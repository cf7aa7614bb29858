package render

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"

	"github.com/timebanner/timebanner/internal/core/ports"
)

// NodeID is the unique identifier for the renderer Graft node.
const NodeID graft.ID = "adapter.render"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.Renderer, error) {
			return NewRenderer(clockwork.NewRealClock()), nil
		},
	})
}
