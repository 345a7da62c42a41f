package domain

import "go.trai.ch/zerr"

const (
	// DefaultDistro is used when no distro is given by flag, environment or config file.
	DefaultDistro = "groovy"

	// DefaultIndexURL is the REP-143 distribution index.
	DefaultIndexURL = "https://raw.githubusercontent.com/ros/rosdistro/master/index.yaml"

	// DefaultRosdepSource is the base rule file of the rosdep database.
	DefaultRosdepSource = "https://raw.githubusercontent.com/ros/rosdistro/master/rosdep/base.yaml"

	// DefaultRosdepPythonSource is the python rule file of the rosdep database.
	DefaultRosdepPythonSource = "https://raw.githubusercontent.com/ros/rosdistro/master/rosdep/python.yaml"

	// DefaultRosdepHomebrewSource is the homebrew rule file of the rosdep database.
	DefaultRosdepHomebrewSource = "https://raw.githubusercontent.com/ros/rosdistro/master/rosdep/osx-homebrew.yaml"
)

// Config is the configuration of one generate or update run.
type Config struct {
	// Distro is the ROS distribution name (e.g., "hydro").
	Distro string

	// OSName is the operating system dependency keys are resolved for.
	OSName string

	// OSVersion is the operating system version (e.g., "mavericks").
	OSVersion string

	// DebIncrement is appended to the package version.
	DebIncrement int

	// InstallationPrefix is where the formula installs the package.
	// Empty means /opt/ros/<distro>.
	InstallationPrefix string

	// IndexURL locates the distribution index.
	IndexURL string

	// RosdepSources are the rule files, in precedence order.
	RosdepSources []string

	// NonInteractive disables operator prompts; unresolved keys abort.
	NonInteractive bool
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		Distro:   DefaultDistro,
		OSName:   DefaultOSName,
		IndexURL: DefaultIndexURL,
		RosdepSources: []string{
			DefaultRosdepHomebrewSource,
			DefaultRosdepSource,
			DefaultRosdepPythonSource,
		},
	}
}

// Prefix returns the installation prefix, defaulting to /opt/ros/<distro>.
func (c Config) Prefix() string {
	if c.InstallationPrefix != "" {
		return c.InstallationPrefix
	}
	return "/opt/ros/" + c.Distro
}

// Validate checks the values a formula cannot be built from.
func (c Config) Validate() error {
	if c.DebIncrement < 0 {
		return zerr.With(ErrInvalidDebIncrement, "deb_increment", c.DebIncrement)
	}
	return nil
}
