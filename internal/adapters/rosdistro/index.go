// Package rosdistro reads release metadata from a REP-143 distribution index.
package rosdistro

import (
	"context"
	"net/url"
	"path/filepath"
	"strings"

	"go.trai.ch/rosbrew/internal/core/domain"
	"go.trai.ch/rosbrew/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Index implements ports.DistributionIndex.
type Index struct {
	fetcher ports.Fetcher
}

// NewIndex creates an Index reading sources through fetcher.
func NewIndex(fetcher ports.Fetcher) *Index {
	return &Index{fetcher: fetcher}
}

var _ ports.DistributionIndex = (*Index)(nil)

// Distribution returns the release metadata of distro.
// When the index lists several distribution files, later files override
// repositories of earlier ones.
func (i *Index) Distribution(ctx context.Context, indexURL, distro string) (*domain.Distribution, error) {
	data, err := i.fetcher.Fetch(ctx, indexURL, false)
	if err != nil {
		return nil, err
	}

	var index indexFile
	if err := yaml.Unmarshal(data, &index); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrIndexParseFailed.Error()), "source", indexURL)
	}

	entry, ok := index.Distributions[distro]
	if !ok || len(entry.Distribution) == 0 {
		err := zerr.With(domain.ErrUnknownDistro, "distro", distro)
		return nil, zerr.With(err, "source", indexURL)
	}

	dist := &domain.Distribution{
		Name:         distro,
		Repositories: make(map[string]domain.Repository),
	}

	for _, ref := range entry.Distribution {
		source := resolveRef(indexURL, ref)
		if err := i.load(ctx, source, dist); err != nil {
			return nil, err
		}
	}

	return dist, nil
}

func (i *Index) load(ctx context.Context, source string, dist *domain.Distribution) error {
	data, err := i.fetcher.Fetch(ctx, source, false)
	if err != nil {
		return err
	}

	var file distributionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrDistributionParseFailed.Error()), "source", source)
	}

	for name, repo := range file.Repositories {
		if repo.Release == nil {
			continue
		}
		dist.Repositories[name] = domain.Repository{
			Name:        name,
			URL:         repo.Release.URL,
			Version:     repo.Release.Version,
			TagTemplate: repo.Release.Tags["release"],
			Packages:    repo.Release.Packages,
		}
	}
	return nil
}

// resolveRef resolves a distribution file reference relative to the index location.
func resolveRef(indexURL, ref string) string {
	if strings.Contains(ref, "://") {
		return ref
	}

	if strings.Contains(indexURL, "://") && !strings.HasPrefix(indexURL, "file://") {
		base, err := url.Parse(indexURL)
		if err == nil {
			if rel, relErr := url.Parse(ref); relErr == nil {
				return base.ResolveReference(rel).String()
			}
		}
		return ref
	}

	if filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(filepath.Dir(strings.TrimPrefix(indexURL, "file://")), ref)
}
