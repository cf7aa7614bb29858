// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"github.com/timebanner/timebanner/internal/core/domain"
)

// Renderer defines the boundary with the render pipeline: a pure function
// from a canonical spec and output format to bytes. The core never inspects
// its internals.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Render produces the image bytes for the given spec.
	Render(ctx context.Context, spec domain.ParsedTimeSpec, format domain.OutputFormat) ([]byte, error)
}
