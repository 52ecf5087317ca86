package recognition

import (
	"strings"

	"github.com/pagelift/pagelift/backend/internal/dom"
)

// Content regexes shared across the built-in catalog.
const (
	currencyPattern = `[$€£¥]\s*\d|\d+[.,]\d{2}`
	ctaTextPattern  = `(?i)\b(get started|sign up|try (it|now|free)|buy now|subscribe|learn more|join|download)\b`
	emailPattern    = `[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}`
)

// builtinPatterns assembles the hand-authored catalog. Order inside one
// priority band is the registration order and decides equal-confidence ties.
func builtinPatterns() []Pattern {
	var out []Pattern
	out = append(out, contentPatterns()...)
	out = append(out, interactivePatterns()...)
	out = append(out, formPatterns()...)
	out = append(out, listPatterns()...)
	out = append(out, layoutPatterns()...)
	out = append(out, mediaPatterns()...)
	out = append(out, commercePatterns()...)
	out = append(out, feedbackPatterns()...)
	return out
}

// attrIs reports whether an element attribute equals one of the values,
// case-insensitively. The type attribute defaults to "text" on inputs.
func attrIs(el *dom.Element, name string, values ...string) bool {
	v := el.AttrOr(name, "")
	if v == "" && name == "type" && el.Tag() == "input" {
		v = "text"
	}
	for _, want := range values {
		if strings.EqualFold(v, want) {
			return true
		}
	}
	return false
}

// attrContains reports whether an element attribute contains the substring,
// case-insensitively.
func attrContains(el *dom.Element, name, substr string) bool {
	v, ok := el.Attr(name)
	return ok && strings.Contains(strings.ToLower(v), strings.ToLower(substr))
}

// hasInputDescendant reports whether any descendant is an input of one of
// the given types.
func hasInputDescendant(el *dom.Element, types ...string) bool {
	return el.CountDescendants(func(e *dom.Element) bool {
		return e.Tag() == "input" && attrIs(e, "type", types...)
	}) > 0
}

// countDescendantTag counts descendants with the given tag.
func countDescendantTag(el *dom.Element, tag string) int {
	return el.CountDescendants(func(e *dom.Element) bool {
		return e.Tag() == tag
	})
}
