package rosdistro

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rosbrew/internal/adapters/cache"
	"go.trai.ch/rosbrew/internal/core/ports"
)

// NodeID is the unique identifier for the distribution index Graft node.
const NodeID graft.ID = "adapter.rosdistro"

func init() {
	graft.Register(graft.Node[ports.DistributionIndex]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cache.NodeID},
		Run: func(ctx context.Context) (ports.DistributionIndex, error) {
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			return NewIndex(fetcher), nil
		},
	})
}
