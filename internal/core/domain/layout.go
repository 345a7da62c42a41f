package domain

import (
	"os"
	"path/filepath"
)

const (
	// TemplateDirName is the per-package directory holding the formula templates.
	TemplateDirName = "homebrew"

	// TemplateSuffix marks files that are expanded during processing.
	TemplateSuffix = ".tmpl"

	// FormulaTemplateName is the name of the placed formula template.
	FormulaTemplateName = "formula.rb" + TemplateSuffix

	// PackageFileName is the catkin package descriptor.
	PackageFileName = "package.xml"

	// ConfigFileName is the name of the optional configuration file.
	ConfigFileName = "rosbrew.yaml"

	// EnvDistro names the environment variable holding the distro.
	EnvDistro = "ROS_DISTRO"

	// CacheDirName is the name of the cache directory below the user cache dir.
	CacheDirName = "rosbrew"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultTemplateDir returns the template directory of a package.
func DefaultTemplateDir(pkgDir string) string {
	return filepath.Join(pkgDir, TemplateDirName)
}

// DefaultCachePath returns the directory remote metadata is cached in.
// It falls back to the temp dir when the user cache dir is unknown.
func DefaultCachePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, CacheDirName)
}
