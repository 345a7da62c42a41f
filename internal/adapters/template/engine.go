// Package template places the formula templates into a package and expands them.
package template

import (
	"bytes"
	"embed"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"go.trai.ch/rosbrew/internal/adapters/fs"
	"go.trai.ch/rosbrew/internal/core/domain"
	"go.trai.ch/rosbrew/internal/core/ports"
	"go.trai.ch/zerr"
)

//go:embed homebrew/formula.rb.tmpl
var templates embed.FS

// Engine implements ports.TemplateEngine.
type Engine struct {
	walker *fs.Walker
}

// NewEngine creates a new Engine.
func NewEngine(walker *fs.Walker) *Engine {
	return &Engine{walker: walker}
}

var _ ports.TemplateEngine = (*Engine)(nil)

// Place writes the formula template into the template directory of pkgDir,
// overwriting a previously placed one.
func (e *Engine) Place(pkgDir string) error {
	dir := domain.DefaultTemplateDir(pkgDir)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTemplateWriteFailed.Error()), "path", dir)
	}

	data, err := templates.ReadFile(domain.TemplateDirName + "/" + domain.FormulaTemplateName)
	if err != nil {
		return zerr.Wrap(err, domain.ErrTemplateWriteFailed.Error())
	}

	path := filepath.Join(dir, domain.FormulaTemplateName)
	if err := fs.WriteFileAtomic(path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTemplateWriteFailed.Error()), "path", path)
	}
	return nil
}

// Process expands every template below the template directory of pkgDir.
// Outputs already written stay in place when a later template fails.
func (e *Engine) Process(pkgDir string, data map[string]any) ([]string, error) {
	dir := domain.DefaultTemplateDir(pkgDir)
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, zerr.With(domain.ErrTemplateDirMissing, "path", dir)
	}

	var sources []string
	for path := range e.walker.WalkFiles(dir, nil) {
		if strings.HasSuffix(path, domain.TemplateSuffix) {
			sources = append(sources, path)
		}
	}

	processed := make([]string, 0, len(sources))
	for _, src := range sources {
		if err := expand(src, data); err != nil {
			return processed, err
		}
		processed = append(processed, src)
	}
	return processed, nil
}

func expand(src string, data map[string]any) error {
	info, err := os.Stat(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTemplateParseFailed.Error()), "path", src)
	}
	raw, err := os.ReadFile(src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTemplateParseFailed.Error()), "path", src)
	}

	tmpl, err := template.New(filepath.Base(src)).
		Funcs(funcMap()).
		Option("missingkey=error").
		Parse(string(raw))
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTemplateParseFailed.Error()), "path", src)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTemplateExecFailed.Error()), "path", src)
	}

	dst := strings.TrimSuffix(src, domain.TemplateSuffix)
	if err := fs.WriteFileAtomic(dst, buf.Bytes(), info.Mode().Perm()); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrTemplateWriteFailed.Error()), "path", dst)
	}
	return nil
}
