// Package formula assembles the substitutions a formula template is expanded with.
package formula

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/rosbrew/internal/core/domain"
	"go.trai.ch/rosbrew/internal/core/ports"
	"go.trai.ch/zerr"
)

// Builder implements ports.SubstitutionBuilder.
type Builder struct {
	resolvers ports.ResolverFactory
	logger    ports.Logger
}

// NewBuilder creates a new Builder.
func NewBuilder(resolvers ports.ResolverFactory, logger ports.Logger) *Builder {
	return &Builder{resolvers: resolvers, logger: logger}
}

var _ ports.SubstitutionBuilder = (*Builder)(nil)

// Build returns the substitutions of pkg as released in dist.
// Dependency keys are resolved only when the package declares any.
func (b *Builder) Build(
	ctx context.Context,
	cfg domain.Config,
	pkg *domain.Package,
	dist *domain.Distribution,
) (*domain.Substitutions, error) {
	if err := validateVersion(pkg.Version); err != nil {
		return nil, err
	}

	release, ok := dist.Release(pkg.Name)
	if !ok {
		err := zerr.With(domain.ErrPackageNotReleased, "package", pkg.Name)
		return nil, zerr.With(err, "distro", cfg.Distro)
	}

	homepage, ok := pkg.Homepage()
	if !ok {
		b.logger.Warn(fmt.Sprintf("No homepage set for package %s", pkg.Name))
	}

	runKeys := pkg.RunDepends
	buildKeys := pkg.BuildKeys()

	runDepends := []string{}
	buildDepends := []string{}
	if len(runKeys) > 0 || len(buildKeys) > 0 {
		session, err := b.resolvers.NewSession(cfg, dist, release.Peers)
		if err != nil {
			return nil, err
		}
		if runDepends, err = dependencyLines(ctx, session, runKeys, false); err != nil {
			return nil, err
		}
		if buildDepends, err = dependencyLines(ctx, session, buildKeys, true); err != nil {
			return nil, err
		}
	}

	return &domain.Substitutions{
		ClassName:          domain.ClassName(cfg.Distro, pkg.Name),
		FormulaName:        domain.FormulaName(cfg.Distro, pkg.Name),
		Version:            domain.ComposeVersion(pkg.Version, cfg.DebIncrement),
		Homepage:           homepage,
		SourceURL:          release.SourceURL,
		ReleaseTag:         release.Tag,
		Branch:             domain.BranchName(cfg.Distro),
		InstallationPrefix: cfg.Prefix(),
		Package:            pkg.Name,
		Distro:             cfg.Distro,
		Description:        pkg.Description,
		Maintainers:        maintainers(pkg.Maintainers),
		License:            strings.Join(pkg.Licenses, ", "),
		RunDepends:         runDepends,
		BuildDepends:       buildDepends,
	}, nil
}

// validateVersion accepts MAJOR.MINOR.PATCH only.
func validateVersion(version string) error {
	v, err := semver.StrictNewVersion(version)
	if err == nil && (v.Prerelease() != "" || v.Metadata() != "") {
		err = fmt.Errorf("unexpected suffix in %q", version)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidVersion.Error()), "version", version)
	}
	return nil
}

// dependencyLines resolves keys into sorted, deduplicated formula lines.
func dependencyLines(
	ctx context.Context,
	session ports.DependencyResolver,
	keys []string,
	build bool,
) ([]string, error) {
	lines := []string{}
	for _, key := range keys {
		dep, err := session.Resolve(ctx, key)
		if err != nil {
			return nil, err
		}
		if dep == nil {
			continue
		}
		for _, name := range dep.Names {
			line, err := formatLine(dep.Installer, name, build)
			if err != nil {
				return nil, zerr.With(err, "key", key)
			}
			lines = append(lines, line)
		}
	}
	slices.Sort(lines)
	return slices.Compact(lines), nil
}

func formatLine(installer domain.InstallerType, name string, build bool) (string, error) {
	switch installer {
	case domain.InstallerHomebrew:
		if build {
			return fmt.Sprintf("depends_on '%s' => :build", name), nil
		}
		return fmt.Sprintf("depends_on '%s'", name), nil
	case domain.InstallerPip:
		return fmt.Sprintf("# depends_on '%s' => :python", name), nil
	default:
		return "", zerr.With(domain.ErrUnexpectedInstaller, "installer", installer.String())
	}
}

func maintainers(people []domain.Person) []string {
	out := make([]string, 0, len(people))
	for _, p := range people {
		if p.Email == "" {
			out = append(out, p.Name)
			continue
		}
		out = append(out, fmt.Sprintf("%s <%s>", p.Name, p.Email))
	}
	return out
}
