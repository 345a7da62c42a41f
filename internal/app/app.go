// Package app implements the application layer for rosbrew.
package app

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.trai.ch/rosbrew/internal/core/domain"
	"go.trai.ch/rosbrew/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	finder    ports.PackageFinder
	loader    ports.ConfigLoader
	index     ports.DistributionIndex
	rules     ports.RuleDatabase
	builder   ports.SubstitutionBuilder
	templates ports.TemplateEngine
	logger    ports.Logger
}

// New creates a new App instance.
func New(
	finder ports.PackageFinder,
	loader ports.ConfigLoader,
	index ports.DistributionIndex,
	rules ports.RuleDatabase,
	builder ports.SubstitutionBuilder,
	templates ports.TemplateEngine,
	log ports.Logger,
) *App {
	return &App{
		finder:    finder,
		loader:    loader,
		index:     index,
		rules:     rules,
		builder:   builder,
		templates: templates,
		logger:    log,
	}
}

// GenerateOptions configuration for the Generate method.
type GenerateOptions struct {
	// ConfigPath is an explicit config file; empty searches upwards from the package.
	ConfigPath string
	// Distro overrides the configured distro when set.
	Distro string
	// OSVersion overrides the configured OS version when set.
	OSVersion string
	// DebIncrement overrides the configured increment when not nil.
	DebIncrement *int
	// NonInteractive disables prompting when true.
	NonInteractive bool
	// Place only places the templates.
	Place bool
	// Process only processes previously placed templates.
	Process bool
	// JSON switches the log output to JSON.
	JSON bool
}

// steps returns whether to place and to process; neither set means both.
func (o GenerateOptions) steps() (place, process bool) {
	if !o.Place && !o.Process {
		return true, true
	}
	return o.Place, o.Process
}

// Generate places and processes the formula templates of the package at path.
func (a *App) Generate(ctx context.Context, path string, opts GenerateOptions) error {
	a.logger.SetJSON(opts.JSON)

	if err := a.generate(ctx, path, opts); err != nil {
		return zerr.Wrap(err, domain.ErrFormulaGenerationFailed.Error())
	}
	return nil
}

func (a *App) generate(ctx context.Context, path string, opts GenerateOptions) error {
	if path == "" {
		path = "."
	}

	pkgDir, pkg, err := a.findPackage(path)
	if err != nil {
		return err
	}

	cfg, err := a.loadConfig(pkgDir, opts)
	if err != nil {
		return err
	}

	a.logger.Info(fmt.Sprintf("Generating Homebrew formula for package(s) [%s]", pkg.Name))

	place, process := opts.steps()
	if place {
		if err := a.templates.Place(pkgDir); err != nil {
			return err
		}
	}
	if !process {
		return nil
	}
	if !place {
		// Fail before fetching metadata or prompting for dependencies.
		dir := domain.DefaultTemplateDir(pkgDir)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return zerr.With(domain.ErrTemplateDirMissing, "path", dir)
		}
	}

	dist, err := a.index.Distribution(ctx, cfg.IndexURL, cfg.Distro)
	if err != nil {
		return err
	}

	subs, err := a.builder.Build(ctx, *cfg, pkg, dist)
	if err != nil {
		return err
	}

	processed, err := a.templates.Process(pkgDir, subs.Map())
	if err != nil {
		return err
	}

	for _, tmpl := range processed {
		if err := os.Remove(filepath.Clean(tmpl)); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrTemplateRemoveFailed.Error()), "path", tmpl)
		}
		a.logger.Info("Wrote " + strings.TrimSuffix(tmpl, domain.TemplateSuffix))
	}
	return nil
}

// findPackage returns the single package at or below path.
func (a *App) findPackage(path string) (string, *domain.Package, error) {
	pkgs, err := a.finder.Find(path)
	if err != nil {
		return "", nil, err
	}

	switch len(pkgs) {
	case 0:
		return "", nil, zerr.With(domain.ErrNoPackagesFound, "path", path)
	case 1:
		for dir, pkg := range pkgs {
			return dir, pkg, nil
		}
	}

	names := make([]string, 0, len(pkgs))
	for _, dir := range slices.Sorted(maps.Keys(pkgs)) {
		names = append(names, pkgs[dir].Name)
	}
	err = zerr.With(domain.ErrMultiplePackages, "path", path)
	return "", nil, zerr.With(err, "packages", strings.Join(names, ", "))
}

// loadConfig loads the configuration and applies the command line overrides.
func (a *App) loadConfig(dir string, opts GenerateOptions) (*domain.Config, error) {
	cfg, err := a.loader.Load(dir, opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.Distro != "" {
		cfg.Distro = opts.Distro
	}
	if opts.OSVersion != "" {
		cfg.OSVersion = opts.OSVersion
	}
	if opts.DebIncrement != nil {
		cfg.DebIncrement = *opts.DebIncrement
	}
	if opts.NonInteractive {
		cfg.NonInteractive = true
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UpdateOptions configuration for the Update method.
type UpdateOptions struct {
	ConfigPath string
	JSON       bool
}

// Update re-downloads the dependency rule sources into the cache.
func (a *App) Update(ctx context.Context, opts UpdateOptions) error {
	a.logger.SetJSON(opts.JSON)

	cfg, err := a.loader.Load(".", opts.ConfigPath)
	if err != nil {
		return err
	}

	if err := a.rules.Refresh(ctx, cfg.RosdepSources); err != nil {
		return err
	}
	a.logger.Info(fmt.Sprintf("Updated %d dependency rule source(s)", len(cfg.RosdepSources)))
	return nil
}
