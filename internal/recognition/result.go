package recognition

import (
	"github.com/pagelift/pagelift/backend/internal/styles"
)

// reviewThreshold is the confidence below which a classification defaults to
// needing human review, before any validator override.
const reviewThreshold = 70

// RecognitionResult is the classification attached to one analyzed element.
type RecognitionResult struct {
	ComponentType      ComponentType   `json:"component_type"`
	Confidence         int             `json:"confidence"`
	MatchedPatterns    []ComponentType `json:"matched_patterns"`
	ManualReviewNeeded bool            `json:"manual_review_needed"`
	Reason             string          `json:"reason"`
}

// ElementContext carries the structural ancestry metadata used both for
// matching and validation. Flags include the current element's own
// contribution: the <form> node itself has InsideForm set.
type ElementContext struct {
	InsideHero    bool `json:"inside_hero"`
	InsideForm    bool `json:"inside_form"`
	InsideCard    bool `json:"inside_card"`
	InsideNav     bool `json:"inside_nav"`
	InsideHeader  bool `json:"inside_header"`
	InsideFooter  bool `json:"inside_footer"`
	InsideSection bool `json:"inside_section"`
	Depth         int  `json:"depth"`

	// SiblingTypes holds the component types of the element's sibling group,
	// recorded by the parent after all of its children have been analyzed.
	SiblingTypes []ComponentType `json:"sibling_types,omitempty"`
}

// contextFlag resolves a context requirement key against the flags. The
// second return is false for keys that do not exist on ElementContext;
// the registry rejects such patterns at construction time.
func (c ElementContext) contextFlag(key string) (bool, bool) {
	switch key {
	case "insideHero":
		return c.InsideHero, true
	case "insideForm":
		return c.InsideForm, true
	case "insideCard":
		return c.InsideCard, true
	case "insideNav":
		return c.InsideNav, true
	case "insideHeader":
		return c.InsideHeader, true
	case "insideFooter":
		return c.InsideFooter, true
	case "insideSection":
		return c.InsideSection, true
	default:
		return false, false
	}
}

// Position records where an element sits in the document structure: its
// index among siblings and its depth from the analysis root.
type Position struct {
	Index int `json:"index"`
	Depth int `json:"depth"`
}

// AnalyzedElement is one node of the analyzed tree, mirroring the source DOM.
// Children order matches source DOM child order exactly.
type AnalyzedElement struct {
	Tag         string             `json:"tag"`
	ID          string             `json:"id,omitempty"`
	Classes     []string           `json:"classes,omitempty"`
	Attributes  map[string]string  `json:"attributes,omitempty"`
	TextContent string             `json:"text_content,omitempty"`
	InnerHTML   string             `json:"inner_html,omitempty"`
	Styles      styles.Styles      `json:"styles,omitempty"`
	Context     ElementContext     `json:"context"`
	Children    []*AnalyzedElement `json:"children,omitempty"`
	Recognition RecognitionResult  `json:"recognition"`
	Position    Position           `json:"position"`
}

// Walk visits the analyzed tree depth-first, pre-order.
func (a *AnalyzedElement) Walk(visit func(*AnalyzedElement)) {
	visit(a)
	for _, c := range a.Children {
		c.Walk(visit)
	}
}

// unknownResult is the terminal result when no pattern matches. Not an error:
// downstream treats it as "needs human classification".
func unknownResult() RecognitionResult {
	return RecognitionResult{
		ComponentType:      TypeUnknown,
		Confidence:         0,
		MatchedPatterns:    []ComponentType{},
		ManualReviewNeeded: true,
		Reason:             "No matching pattern found",
	}
}

// clampConfidence bounds a confidence value to [0,100].
func clampConfidence(c int) int {
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
