package domain

// URLTypeWebsite is the url type that marks a package homepage.
const URLTypeWebsite = "website"

// URL is a typed link declared by a package.
type URL struct {
	// Type is the url type attribute, for example "website", "bugtracker" or "repository".
	Type string
	// Value is the link itself.
	Value string
}

// Person is a maintainer or author entry of a package.
type Person struct {
	Name  string
	Email string
}

// Package is the metadata of a single catkin package, as read from its package.xml.
type Package struct {
	// Name is the package name (e.g., "roscpp_serialization").
	Name string

	// Version is the upstream version (e.g., "0.4.4").
	Version string

	// Description is the free-form package description.
	Description string

	// Maintainers lists the package maintainers.
	Maintainers []Person

	// Licenses lists the declared licenses.
	Licenses []string

	// URLs lists the typed links of the package.
	URLs []URL

	// BuildDepends lists the dependency keys needed at build time.
	BuildDepends []string

	// BuildtoolDepends lists the dependency keys of the build tools.
	BuildtoolDepends []string

	// RunDepends lists the dependency keys needed at run time.
	RunDepends []string

	// Format is the package.xml format version (1, 2 or 3).
	Format int

	// Path is the directory containing the package descriptor.
	Path string
}

// Homepage returns the first url of type website, or false when there is none.
func (p *Package) Homepage() (string, bool) {
	for _, u := range p.URLs {
		if u.Type == URLTypeWebsite {
			return u.Value, true
		}
	}
	return "", false
}

// BuildKeys returns the build and buildtool dependency keys, in declaration order.
func (p *Package) BuildKeys() []string {
	keys := make([]string, 0, len(p.BuildDepends)+len(p.BuildtoolDepends))
	keys = append(keys, p.BuildtoolDepends...)
	return append(keys, p.BuildDepends...)
}
