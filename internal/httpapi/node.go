package httpapi

import (
	"context"

	"github.com/grindlemire/graft"

	"github.com/timebanner/timebanner/internal/app"
)

// NodeID is the unique identifier for the HTTP server Graft node.
const NodeID graft.ID = "transport.http"

func init() {
	graft.Register(graft.Node[*Server]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			app.ComponentsNodeID,
		},
		Run: func(ctx context.Context) (*Server, error) {
			components, err := graft.Dep[*app.Components](ctx)
			if err != nil {
				return nil, err
			}
			return NewServer(
				components.App,
				components.Cache,
				components.Logger,
				components.Config.ListenAddr,
			), nil
		},
	})
}
