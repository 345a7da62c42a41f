// Package config provides the configuration loader for rosbrew.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"go.trai.ch/rosbrew/internal/core/domain"
	"go.trai.ch/rosbrew/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader.
// Defaults are overridden by the config file, which is overridden by the environment.
type Loader struct {
	Logger ports.Logger
	Getenv func(string) string
}

// NewLoader creates a new Loader reading the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger, Getenv: os.Getenv}
}

var _ ports.ConfigLoader = (*Loader)(nil)

// Load builds the configuration for the package directory dir.
// An explicit path must exist; otherwise rosbrew.yaml is searched from dir upwards.
func (l *Loader) Load(dir, path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	if path == "" {
		path = findConfigFile(dir)
	}

	if path != "" {
		fileCfg, err := readConfigfile(path)
		if err != nil {
			return nil, zerr.With(err, "path", path)
		}
		if err := mergo.Merge(&cfg, fileCfg, mergo.WithOverride); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigMergeFailed.Error()), "path", path)
		}
		l.Logger.Info("Using configuration from " + path)
	}

	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	if distro := getenv(domain.EnvDistro); distro != "" {
		cfg.Distro = distro
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// findConfigFile walks up from dir and returns the first config file found, or "".
func findConfigFile(dir string) string {
	current, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}

	for {
		candidate := filepath.Join(current, domain.ConfigFileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		current = parent
	}
}

func readConfigfile(path string) (domain.Config, error) {
	var file Configfile
	if err := readAndUnmarshalYAML(path, &file); err != nil {
		return domain.Config{}, err
	}

	base := filepath.Dir(path)
	cfg := file.toDomain()
	if cfg.IndexURL != "" {
		cfg.IndexURL = resolveSource(base, cfg.IndexURL)
	}
	for i, src := range cfg.RosdepSources {
		cfg.RosdepSources[i] = resolveSource(base, src)
	}
	return cfg, nil
}

func readAndUnmarshalYAML[T any](configPath string, target *T) error {
	// #nosec G304 -- configPath is given by the operator or found next to the package
	content, err := os.ReadFile(configPath)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}

	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil && !errors.Is(err, io.EOF) {
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return nil
}

// resolveSource makes relative file sources relative to the config file directory.
func resolveSource(base, source string) string {
	if strings.Contains(source, "://") || filepath.IsAbs(source) {
		return source
	}
	return filepath.Join(base, source)
}
