package formula

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rosbrew/internal/adapters/logger" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rosbrew/internal/core/ports"
	"go.trai.ch/rosbrew/internal/engine/resolver"
)

// NodeID is the unique identifier for the substitution builder Graft node.
const NodeID graft.ID = "engine.formula"

func init() {
	graft.Register(graft.Node[ports.SubstitutionBuilder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{resolver.NodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.SubstitutionBuilder, error) {
			resolvers, err := graft.Dep[ports.ResolverFactory](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewBuilder(resolvers, log), nil
		},
	})
}
