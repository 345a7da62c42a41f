// Package rosdep implements the dependency rule database on rosdep YAML sources.
package rosdep

import (
	"context"
	"strings"
	"sync"

	"go.trai.ch/rosbrew/internal/core/domain"
	"go.trai.ch/rosbrew/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Database implements ports.RuleDatabase.
// Sources are merged in order; the first source that defines a key wins.
type Database struct {
	fetcher ports.Fetcher

	mu    sync.Mutex
	views map[string]map[string]domain.Definition
}

// NewDatabase creates a Database reading sources through fetcher.
func NewDatabase(fetcher ports.Fetcher) *Database {
	return &Database{
		fetcher: fetcher,
		views:   make(map[string]map[string]domain.Definition),
	}
}

var _ ports.RuleDatabase = (*Database)(nil)

// Lookup returns the definition of key in the merged view of sources.
func (d *Database) Lookup(ctx context.Context, sources []string, key string) (domain.Definition, error) {
	view, err := d.view(ctx, sources, false)
	if err != nil {
		return nil, err
	}

	def, ok := view[key]
	if !ok {
		return nil, zerr.With(domain.ErrUnknownKey, "key", key)
	}
	return def, nil
}

// Refresh downloads all sources again and replaces the memoised view.
func (d *Database) Refresh(ctx context.Context, sources []string) error {
	_, err := d.view(ctx, sources, true)
	return err
}

func (d *Database) view(ctx context.Context, sources []string, refresh bool) (map[string]domain.Definition, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	id := strings.Join(sources, "\n")
	if view, ok := d.views[id]; ok && !refresh {
		return view, nil
	}

	docs := make([][]byte, len(sources))
	g, gctx := errgroup.WithContext(ctx)
	for i, source := range sources {
		g.Go(func() error {
			data, err := d.fetcher.Fetch(gctx, source, refresh)
			if err != nil {
				return err
			}
			docs[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	view := make(map[string]domain.Definition)
	for i, doc := range docs {
		// Nested mappings must decode as map[string]any for rule selection.
		var rules map[string]map[string]any
		if err := yaml.Unmarshal(doc, &rules); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrRulesParseFailed.Error()), "source", sources[i])
		}
		for key, def := range rules {
			if _, exists := view[key]; !exists {
				view[key] = domain.Definition(def)
			}
		}
	}

	d.views[id] = view
	return view, nil
}
