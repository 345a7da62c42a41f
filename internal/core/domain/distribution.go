package domain

import "slices"

// Release describes how one package is released in a distribution.
type Release struct {
	// Repository is the name of the release repository (e.g., "roscpp_core").
	Repository string

	// Tag is the release tag for the package (e.g., "release/hydro/cpp_common/0.4.4-0").
	Tag string

	// SourceURL is the URL of the release repository.
	SourceURL string

	// Version is the released version including the increment (e.g., "0.4.4-0").
	Version string

	// Peers lists all packages released from the same repository, including this one.
	Peers []string
}

// Repository is a release repository entry of a distribution.
type Repository struct {
	Name        string
	URL         string
	Version     string
	TagTemplate string
	Packages    []string
}

// Distribution is the release metadata of one ROS distribution.
type Distribution struct {
	// Name is the distro name (e.g., "hydro").
	Name string

	// Repositories maps repository names to their release entries.
	Repositories map[string]Repository
}

// Release returns the release of the named package.
// Repositories are searched in name order so the result is deterministic.
func (d *Distribution) Release(pkg string) (*Release, bool) {
	if d == nil {
		return nil, false
	}

	names := make([]string, 0, len(d.Repositories))
	for name := range d.Repositories {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range names {
		repo := d.Repositories[name]
		if !repo.releases(pkg) {
			continue
		}

		peers := repo.Packages
		if len(peers) == 0 {
			peers = []string{repo.Name}
		}

		return &Release{
			Repository: repo.Name,
			Tag:        ExpandReleaseTag(repo.TagTemplate, pkg, repo.Version),
			SourceURL:  repo.URL,
			Version:    repo.Version,
			Peers:      slices.Clone(peers),
		}, true
	}
	return nil, false
}

// Releases reports whether any repository of the distribution releases the package.
func (d *Distribution) Releases(pkg string) bool {
	_, ok := d.Release(pkg)
	return ok
}

// releases reports whether the repository releases the package.
// A repository without an explicit package list releases a single package of its own name.
func (r Repository) releases(pkg string) bool {
	if len(r.Packages) == 0 {
		return r.Name == pkg
	}
	return slices.Contains(r.Packages, pkg)
}
