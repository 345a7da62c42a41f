package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rosbrew/internal/adapters/catkin"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rosbrew/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rosbrew/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rosbrew/internal/adapters/rosdep"    //nolint:depguard // Wired in app layer
	"go.trai.ch/rosbrew/internal/adapters/rosdistro" //nolint:depguard // Wired in app layer
	"go.trai.ch/rosbrew/internal/adapters/template"  //nolint:depguard // Wired in app layer
	"go.trai.ch/rosbrew/internal/core/ports"
	"go.trai.ch/rosbrew/internal/engine/formula"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			catkin.NodeID,
			config.NodeID,
			rosdistro.NodeID,
			rosdep.NodeID,
			formula.NodeID,
			template.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	finder, err := graft.Dep[ports.PackageFinder](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	index, err := graft.Dep[ports.DistributionIndex](ctx)
	if err != nil {
		return nil, err
	}

	rules, err := graft.Dep[ports.RuleDatabase](ctx)
	if err != nil {
		return nil, err
	}

	builder, err := graft.Dep[ports.SubstitutionBuilder](ctx)
	if err != nil {
		return nil, err
	}

	templates, err := graft.Dep[ports.TemplateEngine](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(finder, loader, index, rules, builder, templates, log), nil
}
