package wiring_test

import (
	"context"
	"testing"

	"github.com/grindlemire/graft"
	"github.com/stretchr/testify/require"
	"go.trai.ch/rosbrew/internal/app"
	_ "go.trai.ch/rosbrew/internal/wiring"
)

// TestGraftDependencies checks that every node declaring a dependency uses it.
func TestGraftDependencies(t *testing.T) {
	// AssertDepsValid infers dependency IDs from the package of the type passed to Dep[T].
	// Nodes here share interfaces from ports (ports.Logger, ports.RuleDatabase, ...),
	// so it expects a single node named "ports".
	t.Skip("Skipping Graft validation due to static analysis limitation with shared ports package")
	graft.AssertDepsValid(t, "../../internal")
}

// TestGraftExecute builds the whole graph the way main does.
func TestGraftExecute(t *testing.T) {
	components, _, err := graft.ExecuteFor[*app.Components](context.Background())
	require.NoError(t, err)
	require.NotNil(t, components.App)
	require.NotNil(t, components.Logger)
}
