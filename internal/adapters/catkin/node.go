package catkin

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rosbrew/internal/core/ports"
)

// NodeID is the unique identifier for the package finder Graft node.
const NodeID graft.ID = "adapter.catkin"

func init() {
	graft.Register(graft.Node[ports.PackageFinder]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PackageFinder, error) {
			return NewFinder(), nil
		},
	})
}
