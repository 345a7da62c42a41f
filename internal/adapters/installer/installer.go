// Package installer turns installer rules into installable names.
package installer

import (
	"fmt"
	"strings"

	"go.trai.ch/rosbrew/internal/core/domain"
	"go.trai.ch/rosbrew/internal/core/ports"
	"go.trai.ch/zerr"
)

// Homebrew resolves homebrew rules.
type Homebrew struct{}

// Resolve returns the formula names of the rule.
func (Homebrew) Resolve(rule any) ([]string, error) {
	return packages(domain.InstallerKeyHomebrew, rule)
}

// Pip resolves pip rules.
type Pip struct{}

// Resolve returns the distribution names of the rule.
func (Pip) Resolve(rule any) ([]string, error) {
	return packages(domain.InstallerKeyPip, rule)
}

// Registry implements ports.InstallerRegistry.
type Registry struct {
	installers map[string]ports.Installer
}

// NewRegistry creates a Registry with the installers that can appear in a formula.
func NewRegistry() *Registry {
	return &Registry{installers: map[string]ports.Installer{
		domain.InstallerKeyHomebrew: Homebrew{},
		domain.InstallerKeyPip:      Pip{},
	}}
}

var _ ports.InstallerRegistry = (*Registry)(nil)

// Get returns the installer registered for installerKey.
func (r *Registry) Get(installerKey string) (ports.Installer, bool) {
	inst, ok := r.installers[installerKey]
	return inst, ok
}

// packages accepts a list of names, a whitespace separated string of names,
// or a mapping with a packages entry holding either.
func packages(installerKey string, rule any) ([]string, error) {
	switch r := rule.(type) {
	case string:
		return strings.Fields(r), nil
	case []any:
		names := make([]string, 0, len(r))
		for _, item := range r {
			s, ok := item.(string)
			if !ok {
				return nil, invalidRule(installerKey, rule)
			}
			names = append(names, strings.Fields(s)...)
		}
		return names, nil
	case []string:
		return r, nil
	case domain.Definition:
		return packages(installerKey, map[string]any(r))
	case map[string]any:
		inner, ok := r["packages"]
		if !ok {
			return nil, invalidRule(installerKey, rule)
		}
		switch inner.(type) {
		case map[string]any, domain.Definition:
			return nil, invalidRule(installerKey, rule)
		}
		return packages(installerKey, inner)
	case nil:
		return nil, nil
	default:
		return nil, invalidRule(installerKey, rule)
	}
}

func invalidRule(installerKey string, rule any) error {
	err := zerr.With(domain.ErrInvalidRule, "installer", installerKey)
	return zerr.With(err, "rule", fmt.Sprintf("%v", rule))
}
