// Package render implements the render pipeline boundary: it turns a
// canonical spec into SVG markup or a PNG banner.
package render

import (
	"context"

	"github.com/dustin/go-humanize"
	"github.com/jonboulle/clockwork"
	"github.com/ncruces/go-strftime"

	"github.com/timebanner/timebanner/internal/core/domain"
	"github.com/timebanner/timebanner/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer produces banner images for parsed time specs.
type Renderer struct {
	clock clockwork.Clock
}

// NewRenderer creates a Renderer that phrases relative times against the
// given clock.
func NewRenderer(clock clockwork.Clock) *Renderer {
	return &Renderer{clock: clock}
}

// Render produces the image bytes for spec in the requested output format.
func (r *Renderer) Render(_ context.Context, spec domain.ParsedTimeSpec, format domain.OutputFormat) ([]byte, error) {
	text := r.text(spec)
	if format == domain.FormatPNG {
		return renderPNG(text)
	}
	return renderSVG(text)
}

// text renders the display string for spec. Relative specs are phrased
// against the current clock ("5 minutes ago"); absolute specs are formatted
// with the spec's strftime format in the spec's zone.
func (r *Renderer) text(spec domain.ParsedTimeSpec) string {
	if spec.Mode == domain.ModeRelative {
		return humanize.RelTime(spec.Instant, r.clock.Now(), "ago", "from now")
	}
	return strftime.Format(spec.Format, spec.Instant.In(spec.Zone.Location))
}
