package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"

	"github.com/timebanner/timebanner/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/timebanner/timebanner/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/timebanner/timebanner/internal/cache"
	"github.com/timebanner/timebanner/internal/core/ports"
	"github.com/timebanner/timebanner/internal/parse"
	"github.com/timebanner/timebanner/internal/render"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			parse.NodeID,
			cache.NodeID,
			render.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			parser, err := graft.Dep[*parse.Parser](ctx)
			if err != nil {
				return nil, err
			}

			renderCache, err := graft.Dep[*cache.Cache](ctx)
			if err != nil {
				return nil, err
			}

			renderer, err := graft.Dep[ports.Renderer](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return New(parser, renderCache, renderer, clockwork.NewRealClock(), log), nil
		},
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			cache.NodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	renderCache, err := graft.Dep[*cache.Cache](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*config.Config](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    app,
		Cache:  renderCache,
		Logger: log,
		Config: cfg,
	}, nil
}
