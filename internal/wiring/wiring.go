// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/timebanner/timebanner/internal/adapters/config"
	_ "github.com/timebanner/timebanner/internal/adapters/logger"
	_ "github.com/timebanner/timebanner/internal/render"
	_ "github.com/timebanner/timebanner/internal/tz"
	// Register core and transport nodes.
	_ "github.com/timebanner/timebanner/internal/app"
	_ "github.com/timebanner/timebanner/internal/cache"
	_ "github.com/timebanner/timebanner/internal/httpapi"
	_ "github.com/timebanner/timebanner/internal/parse"
)
