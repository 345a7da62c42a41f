package domain

import (
	"fmt"
	"slices"

	"go.trai.ch/zerr"
)

// Installer keys as they appear in dependency rule files.
const (
	InstallerKeyHomebrew = "homebrew"
	InstallerKeyPip      = "pip"
	InstallerKeyMacports = "macports"
	InstallerKeySource   = "source"
)

// DefaultOSName is the operating system formulae are generated for.
const DefaultOSName = "osx"

// osInstallers lists the installers known per OS, in priority order.
// The first entry is the default installer of the OS.
var osInstallers = map[string][]string{
	"osx": {InstallerKeyHomebrew, InstallerKeyPip, InstallerKeyMacports, InstallerKeySource},
}

// InstallerType is the closed set of installer kinds a formula can deal with.
type InstallerType uint8

const (
	// InstallerUnsupported is any installer that cannot be expressed in a formula.
	InstallerUnsupported InstallerType = iota
	// InstallerHomebrew is the primary package manager; it renders as a plain dependency.
	InstallerHomebrew
	// InstallerPip is the interpreter package manager; it renders as a commented-out dependency.
	InstallerPip
)

// ParseInstallerType maps an installer key to its InstallerType.
func ParseInstallerType(key string) InstallerType {
	switch key {
	case InstallerKeyHomebrew:
		return InstallerHomebrew
	case InstallerKeyPip:
		return InstallerPip
	default:
		return InstallerUnsupported
	}
}

// String returns the installer type name.
func (t InstallerType) String() string {
	switch t {
	case InstallerHomebrew:
		return InstallerKeyHomebrew
	case InstallerPip:
		return InstallerKeyPip
	default:
		return "unsupported"
	}
}

// Expressible reports whether dependencies of this type can appear in a formula.
func (t InstallerType) Expressible() bool {
	return t == InstallerHomebrew || t == InstallerPip
}

// ResolvedDependency is a dependency key resolved for the target platform.
type ResolvedDependency struct {
	// Key is the abstract dependency key.
	Key string
	// Installer is the kind of installer the key resolved to.
	Installer InstallerType
	// InstallerKey is the raw installer key from the rule (e.g., "macports").
	InstallerKey string
	// Names are the concrete installable names.
	Names []string
}

// Platform is the target a dependency key is resolved for.
type Platform struct {
	OSName    string
	OSVersion string
	Distro    string
	// Installers are the installer keys of the OS in priority order.
	Installers []string
}

// DefaultInstaller returns the installer used for rules that do not name one.
func (p Platform) DefaultInstaller() string {
	if len(p.Installers) == 0 {
		return ""
	}
	return p.Installers[0]
}

// PlatformFor builds the resolution platform from the configuration.
func PlatformFor(cfg Config) (Platform, error) {
	installers, ok := osInstallers[cfg.OSName]
	if !ok {
		return Platform{}, zerr.With(ErrUnknownOS, "os", cfg.OSName)
	}
	return Platform{
		OSName:     cfg.OSName,
		OSVersion:  cfg.OSVersion,
		Distro:     cfg.Distro,
		Installers: slices.Clone(installers),
	}, nil
}

// Definition is the raw rule definition of one dependency key, keyed by OS name.
type Definition map[string]any

// RuleFor selects the installer and rule of the definition for the platform.
// An OS version entry (or the "*" wildcard) is descended into when present.
// Within the OS entry the first installer of the platform's priority list that
// has a rule wins; a bare list, string or packages mapping is a rule for the
// default installer.
func (d Definition) RuleFor(p Platform) (string, any, error) {
	data, ok := d[p.OSName]
	if !ok {
		return "", nil, resolutionError(p, "no definition for os")
	}

	if m, isMap := asMap(data); isMap {
		if v, found := m[p.OSVersion]; found && p.OSVersion != "" {
			data = v
		} else if v, found := m["*"]; found {
			data = v
		}
	}

	if data == nil {
		return "", nil, resolutionError(p, "explicitly marked as unavailable")
	}

	m, isMap := asMap(data)
	if !isMap {
		return p.DefaultInstaller(), data, nil
	}

	for _, installer := range p.Installers {
		rule, found := m[installer]
		if !found {
			continue
		}
		if rule == nil {
			return "", nil, resolutionError(p, fmt.Sprintf("installer %s explicitly marked as unavailable", installer))
		}
		return installer, rule, nil
	}

	if _, found := m["packages"]; found {
		return p.DefaultInstaller(), m, nil
	}

	return "", nil, resolutionError(p, "no rule for os version or installer")
}

// asMap accepts plain mappings, nested definitions and mappings with
// non-string keys, such as numeric OS versions.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case Definition:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

func resolutionError(p Platform, reason string) error {
	err := zerr.With(ErrResolution, "os", p.OSName)
	err = zerr.With(err, "os_version", p.OSVersion)
	return zerr.With(err, "reason", reason)
}

// IgnoredKeys is the set of dependency keys that are skipped when they fail to resolve.
type IgnoredKeys map[string]struct{}

// NewIgnoredKeys creates a set seeded with the given keys.
func NewIgnoredKeys(keys ...string) IgnoredKeys {
	s := make(IgnoredKeys, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Add adds a key to the set.
func (s IgnoredKeys) Add(key string) {
	s[key] = struct{}{}
}

// Contains reports whether the key is in the set.
func (s IgnoredKeys) Contains(key string) bool {
	_, ok := s[key]
	return ok
}
