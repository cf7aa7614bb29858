package app

import (
	"github.com/timebanner/timebanner/internal/adapters/config"
	"github.com/timebanner/timebanner/internal/cache"
	"github.com/timebanner/timebanner/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the
// transport and CLI layers.
type Components struct {
	App    *App
	Cache  *cache.Cache
	Logger ports.Logger
	Config *config.Config
}
