package config

import "go.trai.ch/rosbrew/internal/core/domain"

// Configfile represents the structure of the rosbrew.yaml configuration file.
type Configfile struct {
	Distro             string   `yaml:"distro"`
	OSName             string   `yaml:"os_name"`
	OSVersion          string   `yaml:"os_version"`
	DebIncrement       int      `yaml:"deb_increment"`
	InstallationPrefix string   `yaml:"installation_prefix"`
	IndexURL           string   `yaml:"index_url"`
	RosdepSources      []string `yaml:"rosdep_sources"`
	NonInteractive     bool     `yaml:"non_interactive"`
}

func (f *Configfile) toDomain() domain.Config {
	return domain.Config{
		Distro:             f.Distro,
		OSName:             f.OSName,
		OSVersion:          f.OSVersion,
		DebIncrement:       f.DebIncrement,
		InstallationPrefix: f.InstallationPrefix,
		IndexURL:           f.IndexURL,
		RosdepSources:      f.RosdepSources,
		NonInteractive:     f.NonInteractive,
	}
}
