package recognition

import (
	"fmt"
	"regexp"

	"github.com/pagelift/pagelift/backend/internal/dom"
	"github.com/pagelift/pagelift/backend/internal/styles"
)

// CSSMatchFunc is an arbitrary boolean predicate over an element's styles
// and the element itself, for signals a declarative map cannot express.
type CSSMatchFunc func(styles.Styles, *dom.Element) bool

// CSSPredicate is a tagged variant: either a declarative map of expected
// property to allowed values, or a custom function. Exactly one side may be
// set; the matcher dispatches on whichever is present.
type CSSPredicate struct {
	Declarative map[string][]string
	Custom      CSSMatchFunc
}

// CSSWhere wraps a custom predicate function.
func CSSWhere(fn CSSMatchFunc) *CSSPredicate {
	return &CSSPredicate{Custom: fn}
}

// CSSIs builds a declarative predicate from property -> allowed values.
func CSSIs(expect map[string][]string) *CSSPredicate {
	return &CSSPredicate{Declarative: expect}
}

// satisfied evaluates the predicate. Declarative maps require every listed
// property to hold one of its allowed values; an empty value list means the
// property only has to be present.
func (p *CSSPredicate) satisfied(st styles.Styles, el *dom.Element) bool {
	if p.Custom != nil {
		return p.Custom(st, el)
	}
	for prop, allowed := range p.Declarative {
		if len(allowed) == 0 {
			if !st.Has(prop) {
				return false
			}
			continue
		}
		if !st.Is(prop, allowed...) {
			return false
		}
	}
	return true
}

func (p *CSSPredicate) validate() error {
	hasDecl := len(p.Declarative) > 0
	hasCustom := p.Custom != nil
	if hasDecl && hasCustom {
		return fmt.Errorf("css predicate sets both declarative map and custom function")
	}
	if !hasDecl && !hasCustom {
		return fmt.Errorf("css predicate is empty")
	}
	return nil
}

// Pattern is one hand-authored recognition rule tied to a component type.
// Zero-valued dimensions are unspecified and do not participate in scoring.
type Pattern struct {
	Type ComponentType

	// Tags is a hard gate: when set, an element whose tag is absent scores 0
	// regardless of every other dimension. A passing gate counts as one
	// satisfied signal.
	Tags []string

	// ClassKeywords match case-insensitively as substrings of any class.
	ClassKeywords []string

	CSS *CSSPredicate

	// ContentRegex is matched against the element's trimmed text content.
	ContentRegex string

	AriaRole string

	// Context requires ElementContext flags to hold specific values, keyed
	// by field name ("insideForm": true). Unknown keys are a construction
	// error, never a per-element one.
	Context map[string]bool

	BaseConfidence int
	Priority       int
}

// compiledPattern is the registry's validated, immutable form of a Pattern.
type compiledPattern struct {
	Pattern
	contentRE *regexp.Regexp
	seq       int // registration order, for stable tie-breaks
}

// PatternError reports an invalid pattern definition. It is raised at
// registry construction only; classification never sees one.
type PatternError struct {
	Type   ComponentType
	Reason string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern for %q: %s", e.Type, e.Reason)
}

func compile(p Pattern, seq int) (*compiledPattern, error) {
	fail := func(format string, args ...interface{}) error {
		return &PatternError{Type: p.Type, Reason: fmt.Sprintf(format, args...)}
	}

	if !p.Type.IsKnown() {
		return nil, fail("unknown component type")
	}
	if p.Type == TypeUnknown {
		return nil, fail("patterns may not target the unknown type")
	}
	if p.BaseConfidence < 1 || p.BaseConfidence > 100 {
		return nil, fail("base confidence %d outside [1,100]", p.BaseConfidence)
	}
	if p.Priority < 0 {
		return nil, fail("negative priority %d", p.Priority)
	}
	if p.CSS != nil {
		if err := p.CSS.validate(); err != nil {
			return nil, fail("%v", err)
		}
	}
	for key := range p.Context {
		if _, ok := (ElementContext{}).contextFlag(key); !ok {
			return nil, fail("context requirement %q does not exist on ElementContext", key)
		}
	}

	cp := &compiledPattern{Pattern: p, seq: seq}
	if p.ContentRegex != "" {
		re, err := regexp.Compile(p.ContentRegex)
		if err != nil {
			return nil, fail("content regex: %v", err)
		}
		cp.contentRE = re
	}
	if cp.dimensions() == 0 {
		return nil, fail("pattern declares no signals")
	}
	return cp, nil
}

// dimensions counts how many scoring dimensions the pattern declares.
func (p *compiledPattern) dimensions() int {
	n := 0
	if len(p.Tags) > 0 {
		n++
	}
	if len(p.ClassKeywords) > 0 {
		n++
	}
	if p.CSS != nil {
		n++
	}
	if p.contentRE != nil {
		n++
	}
	if p.AriaRole != "" {
		n++
	}
	if len(p.Context) > 0 {
		n++
	}
	return n
}
