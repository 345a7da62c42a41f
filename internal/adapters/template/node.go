package template

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/rosbrew/internal/adapters/fs"
	"go.trai.ch/rosbrew/internal/core/ports"
)

// NodeID is the unique identifier for the template engine Graft node.
const NodeID graft.ID = "adapter.template"

func init() {
	graft.Register(graft.Node[ports.TemplateEngine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.WalkerNodeID},
		Run: func(ctx context.Context) (ports.TemplateEngine, error) {
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewEngine(walker), nil
		},
	})
}
