// Package resolver resolves abstract dependency keys into installable names.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.trai.ch/rosbrew/internal/core/domain"
	"go.trai.ch/rosbrew/internal/core/ports"
	"go.trai.ch/zerr"
)

// Answers offered to the operator when a key fails to resolve.
const (
	ChoiceRetry = "retry"
	ChoiceSkip  = "skip"
	ChoiceAbort = "abort"
)

var choices = []string{ChoiceRetry, ChoiceSkip, ChoiceAbort}

// Fallback resolves a key the rule database could not.
// It reports false when it has no answer either.
type Fallback func(key string) (*domain.ResolvedDependency, bool)

// PeerFallback resolves keys that name packages released in dist,
// peers first, to the formula the same generator produces for them.
func PeerFallback(dist *domain.Distribution, peers []string) Fallback {
	return func(key string) (*domain.ResolvedDependency, bool) {
		if !slices.Contains(peers, key) && !dist.Releases(key) {
			return nil, false
		}
		name := domain.FormulaPrefix + "/" + dist.Name + "/" + domain.FormulaName(dist.Name, key)
		return &domain.ResolvedDependency{
			Key:          key,
			Installer:    domain.InstallerHomebrew,
			InstallerKey: domain.InstallerKeyHomebrew,
			Names:        []string{name},
		}, true
	}
}

// Factory creates resolution sessions.
type Factory struct {
	db         ports.RuleDatabase
	installers ports.InstallerRegistry
	prompter   ports.Prompter
	logger     ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(
	db ports.RuleDatabase,
	installers ports.InstallerRegistry,
	prompter ports.Prompter,
	logger ports.Logger,
) *Factory {
	return &Factory{
		db:         db,
		installers: installers,
		prompter:   prompter,
		logger:     logger,
	}
}

var _ ports.ResolverFactory = (*Factory)(nil)

// NewSession creates a Session for the platform described by cfg.
// The peers start out ignored; with a distribution they resolve through PeerFallback.
func (f *Factory) NewSession(
	cfg domain.Config,
	dist *domain.Distribution,
	peers []string,
) (ports.DependencyResolver, error) {
	platform, err := domain.PlatformFor(cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{
		factory:  f,
		cfg:      cfg,
		platform: platform,
		ignored:  domain.NewIgnoredKeys(peers...),
	}
	if dist != nil {
		s.fallback = PeerFallback(dist, peers)
	}
	return s, nil
}

// Session resolves keys for one platform.
// Keys skipped by the operator stay skipped for the rest of the session.
type Session struct {
	factory  *Factory
	cfg      domain.Config
	platform domain.Platform
	ignored  domain.IgnoredKeys
	fallback Fallback
}

var _ ports.DependencyResolver = (*Session)(nil)

// Resolve returns the dependency the key resolves to, or nil when it is dropped.
func (s *Session) Resolve(ctx context.Context, key string) (*domain.ResolvedDependency, error) {
	for {
		dep, err := s.lookup(ctx, key)
		if err == nil {
			return s.filter(dep), nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		if s.ignored.Contains(key) {
			dep, _ := s.fallbackFor(key)
			return dep, nil
		}

		s.factory.logger.Error(err)

		choice, promptErr := s.ask(ctx, key)
		if promptErr != nil {
			return nil, promptErr
		}

		switch choice {
		case ChoiceRetry:
			if refreshErr := s.factory.db.Refresh(ctx, s.cfg.RosdepSources); refreshErr != nil {
				s.factory.logger.Error(refreshErr)
			}
		case ChoiceSkip:
			s.ignored.Add(key)
			s.factory.logger.Warn(fmt.Sprintf("Skipping dependency %s", key))
			return nil, nil
		default:
			if dep, ok := s.fallbackFor(key); ok {
				return dep, nil
			}
			return nil, s.unresolved(key, err)
		}
	}
}

func (s *Session) lookup(ctx context.Context, key string) (*domain.ResolvedDependency, error) {
	def, err := s.factory.db.Lookup(ctx, s.cfg.RosdepSources, key)
	if err != nil {
		return nil, err
	}

	installerKey, rule, err := def.RuleFor(s.platform)
	if err != nil {
		return nil, zerr.With(err, "key", key)
	}

	dep := &domain.ResolvedDependency{
		Key:          key,
		Installer:    domain.ParseInstallerType(installerKey),
		InstallerKey: installerKey,
	}

	inst, ok := s.factory.installers.Get(installerKey)
	if !ok {
		return dep, nil
	}

	names, err := inst.Resolve(rule)
	if err != nil {
		return nil, zerr.With(err, "key", key)
	}
	dep.Names = names
	return dep, nil
}

// ask prompts the operator; without one the answer is abort.
func (s *Session) ask(ctx context.Context, key string) (string, error) {
	if s.cfg.NonInteractive {
		return ChoiceAbort, nil
	}

	question := fmt.Sprintf(
		"Failed to resolve %s on %s:%s with %s, what would you like to do?",
		key, s.platform.OSName, s.platform.OSVersion, s.platform.Distro,
	)
	choice, err := s.factory.prompter.Choose(ctx, question, choices, ChoiceAbort)
	if errors.Is(err, domain.ErrPromptAborted) {
		return ChoiceAbort, nil
	}
	return choice, err
}

func (s *Session) fallbackFor(key string) (*domain.ResolvedDependency, bool) {
	if s.fallback == nil {
		return nil, false
	}
	return s.fallback(key)
}

// filter drops dependencies a formula cannot express.
func (s *Session) filter(dep *domain.ResolvedDependency) *domain.ResolvedDependency {
	if dep.Installer.Expressible() {
		return dep
	}
	s.factory.logger.Warn(fmt.Sprintf(
		"Dropping dependency %s: installer %s cannot be expressed in a formula",
		dep.Key, dep.InstallerKey,
	))
	return nil
}

func (s *Session) unresolved(key string, cause error) error {
	err := zerr.Wrap(cause, domain.ErrUnresolvedKey.Error())
	err = zerr.With(err, "key", key)
	err = zerr.With(err, "os", s.platform.OSName)
	err = zerr.With(err, "os_version", s.platform.OSVersion)
	return zerr.With(err, "distro", s.platform.Distro)
}
