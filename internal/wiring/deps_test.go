package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"

	"github.com/timebanner/timebanner/internal/app"
	_ "github.com/timebanner/timebanner/internal/wiring"
)

// TestGraphResolves executes the full dependency graph up to the assembled
// application components. A missing registration, a cycle, or a node whose
// declared dependencies do not match its Dep calls fails here.
func TestGraphResolves(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Cache)
	require.NotNil(t, components.Logger)
	require.NotNil(t, components.Config)
}
