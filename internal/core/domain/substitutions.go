package domain

// Substitutions are the values a formula template is expanded with.
type Substitutions struct {
	ClassName          string
	FormulaName        string
	Version            string
	Homepage           string
	SourceURL          string
	ReleaseTag         string
	Branch             string
	InstallationPrefix string
	Package            string
	Distro             string
	Description        string
	Maintainers        []string
	License            string
	RunDepends         []string
	BuildDepends       []string
}

// Map returns the substitutions keyed by their template names.
func (s *Substitutions) Map() map[string]any {
	return map[string]any{
		"ClassName":          s.ClassName,
		"FormulaName":        s.FormulaName,
		"Version":            s.Version,
		"Homepage":           s.Homepage,
		"SourceURL":          s.SourceURL,
		"ReleaseTag":         s.ReleaseTag,
		"Branch":             s.Branch,
		"InstallationPrefix": s.InstallationPrefix,
		"Package":            s.Package,
		"Distro":             s.Distro,
		"Description":        s.Description,
		"Maintainers":        nonNil(s.Maintainers),
		"License":            s.License,
		"RunDepends":         nonNil(s.RunDepends),
		"BuildDepends":       nonNil(s.BuildDepends),
	}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
