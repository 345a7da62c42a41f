package installer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rosbrew/internal/core/ports"
)

// NodeID is the unique identifier for the installer registry Graft node.
const NodeID graft.ID = "adapter.installer"

func init() {
	graft.Register(graft.Node[ports.InstallerRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.InstallerRegistry, error) {
			return NewRegistry(), nil
		},
	})
}
