package ports

// Installer turns an installer rule into installable names.
//
//go:generate mockgen -source=installer.go -destination=mocks/mock_installer.go -package=mocks
type Installer interface {
	// Resolve returns the names described by rule.
	Resolve(rule any) ([]string, error)
}

// InstallerRegistry maps installer keys to installers.
type InstallerRegistry interface {
	// Get returns the installer for the key, if one exists.
	Get(installerKey string) (Installer, bool)
}
