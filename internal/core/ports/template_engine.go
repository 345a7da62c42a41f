package ports

// TemplateEngine places and expands the formula templates of a package.
//
//go:generate mockgen -source=template_engine.go -destination=mocks/mock_template_engine.go -package=mocks
type TemplateEngine interface {
	// Place writes the templates into the template directory of pkgDir.
	Place(pkgDir string) error

	// Process expands every template below the template directory of pkgDir
	// and returns the paths of the processed templates.
	Process(pkgDir string, data map[string]any) ([]string, error)
}
