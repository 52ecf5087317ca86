// Package styles defines the style extraction boundary of the recognition
// engine: a flat map of normalized CSS declarations per element, produced
// independently for each node. The default extractor resolves inline
// declarations only; richer extractors (computed styles, stylesheet
// cascade) plug in behind the same interface.
package styles

import (
	"strings"
)

// Styles is a flat map of camelCase CSS property to value, e.g.
// "backgroundColor" -> "#fff". Missing properties are simply absent.
type Styles map[string]string

// Extractor resolves the styles for one element from its outer markup.
// Failures are node-local: the walker substitutes empty styles and records
// a diagnostic, the walk continues.
type Extractor interface {
	Extract(markup string) (Styles, error)
}

// Get returns a property value, empty when absent.
func (s Styles) Get(prop string) string {
	return s[prop]
}

// Has reports whether a property is present with a non-empty value.
func (s Styles) Has(prop string) bool {
	return s[prop] != ""
}

// Is reports whether a property equals any of the given values,
// case-insensitively.
func (s Styles) Is(prop string, values ...string) bool {
	actual := strings.ToLower(strings.TrimSpace(s[prop]))
	if actual == "" {
		return false
	}
	for _, v := range values {
		if actual == strings.ToLower(v) {
			return true
		}
	}
	return false
}

// CamelCase converts a CSS property name to the camelCase key used in
// Styles: "background-color" -> "backgroundColor".
func CamelCase(prop string) string {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(prop)), "-")
	if len(parts) == 1 {
		return parts[0]
	}

	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
