package template

import (
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

var rubyEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`)

// funcMap is the sprig function map plus the Ruby literal helpers.
func funcMap() template.FuncMap {
	fm := sprig.TxtFuncMap()
	fm["rubyquote"] = rubyQuote
	fm["truncrunes"] = truncRunes
	return fm
}

// rubyQuote renders s as a single-quoted Ruby string. Ruby does not
// interpolate those, so only backslash and quote need escaping.
func rubyQuote(s string) string {
	return "'" + rubyEscaper.Replace(s) + "'"
}

// truncRunes keeps the first n characters of s.
func truncRunes(n int, s string) string {
	if n < 0 {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
