package domain

import (
	"strconv"
	"strings"
)

const (
	// FormulaPrefix is the first component of every generated formula identifier.
	FormulaPrefix = "ros"

	// BranchSuffix is appended to the distro name to form the branch name.
	BranchSuffix = "-devel"

	// DefaultTagTemplate is used when a repository does not declare a release tag template.
	DefaultTagTemplate = "release/{package}/{version}"
)

// FormulaName returns the formula identifier for a package in a distro,
// e.g. "ros-noetic-foo-bar" for package "foo_bar" in "noetic".
func FormulaName(distro, pkg string) string {
	parts := []string{FormulaPrefix, distro, strings.ReplaceAll(pkg, "_", "-")}
	return strings.ToLower(strings.Join(parts, "-"))
}

// ClassName returns the Ruby class name for a package in a distro,
// e.g. "RosNoeticFooBar" for package "foo_bar" in "noetic".
func ClassName(distro, pkg string) string {
	var b strings.Builder
	for segment := range strings.SplitSeq(FormulaName(distro, pkg), "-") {
		if segment == "" {
			continue
		}
		b.WriteString(strings.ToUpper(segment[:1]))
		b.WriteString(segment[1:])
	}
	return b.String()
}

// BranchName returns the branch name used for a distro.
func BranchName(distro string) string {
	return distro + BranchSuffix
}

// ComposeVersion joins the upstream version and the deb increment, e.g. "1.2.3-0".
func ComposeVersion(version string, debInc int) string {
	return version + "-" + strconv.Itoa(debInc)
}

// ExpandReleaseTag fills a release tag template.
// {package} is the package name, {version} the released version and
// {upstream_version} the released version without its increment.
func ExpandReleaseTag(template, pkg, version string) string {
	if template == "" {
		template = DefaultTagTemplate
	}

	upstream := version
	if i := strings.LastIndex(version, "-"); i > 0 {
		upstream = version[:i]
	}

	return strings.NewReplacer(
		"{package}", pkg,
		"{upstream_version}", upstream,
		"{version}", version,
	).Replace(template)
}
