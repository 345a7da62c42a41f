// Package catkin discovers and parses catkin package descriptors.
package catkin

import (
	"encoding/xml"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/rosbrew/internal/core/domain"
	"go.trai.ch/rosbrew/internal/core/ports"
	"go.trai.ch/zerr"
)

// ignoreMarkers stop discovery below the directory that contains them.
var ignoreMarkers = []string{"CATKIN_IGNORE", "COLCON_IGNORE", "AMENT_IGNORE"}

// Finder implements ports.PackageFinder for package.xml descriptors.
type Finder struct{}

// NewFinder creates a new Finder.
func NewFinder() *Finder {
	return &Finder{}
}

var _ ports.PackageFinder = (*Finder)(nil)

// Find returns the packages at or below path, keyed by directory.
// Discovery does not descend into hidden or ignored directories, nor into
// the directory of a package that was already found.
func (f *Finder) Find(path string) (map[string]*domain.Package, error) {
	root, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageReadFailed.Error()), "path", path)
	}

	if _, err := os.Stat(root); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageReadFailed.Error()), "path", path)
	}

	packages := make(map[string]*domain.Package)
	var parseErr error

	walkErr := filepath.WalkDir(root, func(dir string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if dir != root && strings.HasPrefix(d.Name(), ".") {
			return filepath.SkipDir
		}
		if hasAny(dir, ignoreMarkers) {
			return filepath.SkipDir
		}

		descriptor := filepath.Join(dir, domain.PackageFileName)
		if !isFile(descriptor) {
			return nil
		}

		pkg, err := ParseFile(descriptor)
		if err != nil {
			parseErr = err
			return filepath.SkipAll
		}
		packages[dir] = pkg
		return filepath.SkipDir
	})
	if parseErr != nil {
		return nil, parseErr
	}
	if walkErr != nil {
		return nil, zerr.With(zerr.Wrap(walkErr, domain.ErrPackageReadFailed.Error()), "path", path)
	}

	return packages, nil
}

// ParseFile reads and parses a package.xml file.
func ParseFile(path string) (*domain.Package, error) {
	//nolint:gosec // path is a discovered package descriptor
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrPackageReadFailed.Error()), "path", path)
	}

	pkg, err := Parse(content)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	pkg.Path = filepath.Dir(path)
	return pkg, nil
}

// Parse parses the content of a package.xml file.
func Parse(content []byte) (*domain.Package, error) {
	var m manifest
	if err := xml.Unmarshal(content, &m); err != nil {
		return nil, zerr.Wrap(err, domain.ErrPackageParseFailed.Error())
	}

	name := strings.TrimSpace(m.Name)
	if name == "" {
		return nil, domain.ErrMissingPackageName
	}

	format := m.Format
	if format == 0 {
		format = 1
	}

	pkg := &domain.Package{
		Name:             name,
		Version:          strings.TrimSpace(m.Version),
		Description:      collapseSpace(m.Description),
		Licenses:         unique(m.Licenses),
		BuildDepends:     unique(m.BuildDepends, m.Depends),
		BuildtoolDepends: unique(m.BuildtoolDepends),
		RunDepends:       unique(m.RunDepends, m.ExecDepends, m.Depends),
		Format:           format,
	}

	for _, person := range m.Maintainers {
		pkg.Maintainers = append(pkg.Maintainers, domain.Person{
			Name:  strings.TrimSpace(person.Name),
			Email: strings.TrimSpace(person.Email),
		})
	}

	for _, u := range m.URLs {
		urlType := strings.TrimSpace(u.Type)
		if urlType == "" {
			urlType = domain.URLTypeWebsite
		}
		pkg.URLs = append(pkg.URLs, domain.URL{Type: urlType, Value: strings.TrimSpace(u.Value)})
	}

	return pkg, nil
}

// unique concatenates the lists, trimming entries and dropping blanks and repeats.
func unique(lists ...[]string) []string {
	var out []string
	for _, list := range lists {
		for _, item := range list {
			item = strings.TrimSpace(item)
			if item == "" || slices.Contains(out, item) {
				continue
			}
			out = append(out, item)
		}
	}
	return out
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func hasAny(dir string, names []string) bool {
	for _, name := range names {
		if isFile(filepath.Join(dir, name)) {
			return true
		}
	}
	return false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
