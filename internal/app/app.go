// Package app implements the application layer for timebanner: it chains
// parsing, canonicalization, and the render cache into one operation.
package app

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/zerr"

	"github.com/timebanner/timebanner/internal/core/domain"
	"github.com/timebanner/timebanner/internal/core/ports"
	"github.com/timebanner/timebanner/internal/parse"
)

// App turns raw time tokens into banner images, serving from the render
// cache whenever the canonical key is resident.
type App struct {
	parser   *parse.Parser
	cache    ports.RenderCache
	renderer ports.Renderer
	clock    clockwork.Clock
	log      ports.Logger
}

// New creates a new App instance.
func New(parser *parse.Parser, cache ports.RenderCache, renderer ports.Renderer, clock clockwork.Clock, log ports.Logger) *App {
	return &App{
		parser:   parser,
		cache:    cache,
		renderer: renderer,
		clock:    clock,
		log:      log,
	}
}

// Banner is a rendered time banner ready to serve. ResolvedNow is the
// reference instant the parse ran against, echoed back so clients can see
// which "now" a relative banner was anchored to.
type Banner struct {
	Bytes       []byte
	ContentType string
	Mode        domain.DisplayMode
	ResolvedNow time.Time
}

// Banner parses raw under the given qualifiers and returns the rendered
// image in the requested output format.
//
// The reference instant for relative tokens is the qualifier-supplied now
// when present, the process clock otherwise. Parse failures surface
// unchanged so transports can map the parse taxonomy to client errors.
func (a *App) Banner(ctx context.Context, raw string, q domain.Qualifiers, format domain.OutputFormat) (*Banner, error) {
	now := q.Now
	if now.IsZero() {
		now = a.clock.Now()
	}

	spec, err := a.parser.Parse(raw, q, now)
	if err != nil {
		return nil, err
	}

	key := domain.Canonicalize(spec, format)
	entry, err := a.cache.GetOrRender(ctx, key, spec.Mode, func(ctx context.Context) ([]byte, error) {
		return a.renderer.Render(ctx, spec, format)
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to produce banner"), "token", raw)
	}

	return &Banner{
		Bytes:       entry.Bytes,
		ContentType: format.MIMEType(),
		Mode:        spec.Mode,
		ResolvedNow: now,
	}, nil
}

// Stats returns the per-compartment cache counters.
func (a *App) Stats() map[domain.DisplayMode]domain.CacheStats {
	return a.cache.Stats()
}

// Now returns the process clock's current instant.
func (a *App) Now() int64 {
	return a.clock.Now().Unix()
}
