package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rosbrew/internal/adapters/installer" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rosbrew/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rosbrew/internal/adapters/prompt"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rosbrew/internal/adapters/rosdep"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/rosbrew/internal/core/ports"
)

// NodeID is the unique identifier for the resolver factory Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.ResolverFactory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			rosdep.NodeID,
			installer.NodeID,
			prompt.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.ResolverFactory, error) {
			db, err := graft.Dep[ports.RuleDatabase](ctx)
			if err != nil {
				return nil, err
			}

			installers, err := graft.Dep[ports.InstallerRegistry](ctx)
			if err != nil {
				return nil, err
			}

			prompter, err := graft.Dep[ports.Prompter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(db, installers, prompter, log), nil
		},
	})
}
