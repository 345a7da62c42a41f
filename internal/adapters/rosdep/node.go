package rosdep

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rosbrew/internal/adapters/cache"
	"go.trai.ch/rosbrew/internal/core/ports"
)

// NodeID is the unique identifier for the rule database Graft node.
const NodeID graft.ID = "adapter.rosdep"

func init() {
	graft.Register(graft.Node[ports.RuleDatabase]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cache.NodeID},
		Run: func(ctx context.Context) (ports.RuleDatabase, error) {
			fetcher, err := graft.Dep[ports.Fetcher](ctx)
			if err != nil {
				return nil, err
			}
			return NewDatabase(fetcher), nil
		},
	})
}
