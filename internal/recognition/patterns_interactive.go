package recognition

import (
	"github.com/pagelift/pagelift/backend/internal/dom"
	"github.com/pagelift/pagelift/backend/internal/styles"
)

// interactivePatterns covers buttons, links, and navigation items.
func interactivePatterns() []Pattern {
	return []Pattern{
		{
			Type:           TypeButton,
			Tags:           []string{"button"},
			BaseConfidence: 92,
			Priority:       PriorityGeneric,
		},
		{
			Type: TypeButton,
			Tags: []string{"input"},
			CSS: CSSWhere(func(_ styles.Styles, el *dom.Element) bool {
				return attrIs(el, "type", "button", "reset")
			}),
			BaseConfidence: 93,
			Priority:       PriorityOverride,
		},
		{
			// Anchors styled as buttons.
			Type:           TypeButton,
			Tags:           []string{"a"},
			ClassKeywords:  []string{"btn", "button"},
			BaseConfidence: 93,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeButton,
			AriaRole:       "button",
			BaseConfidence: 90,
			Priority:       PriorityOverride,
		},
		{
			Type: TypeSubmitButton,
			Tags: []string{"input", "button"},
			CSS: CSSWhere(func(_ styles.Styles, el *dom.Element) bool {
				return attrIs(el, "type", "submit")
			}),
			BaseConfidence: 94,
			Priority:       PriorityOverride,
		},
		{
			Type:           TypeCTAButton,
			ClassKeywords:  []string{"cta", "call-to-action"},
			ContentRegex:   ctaTextPattern,
			BaseConfidence: 90,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeLink,
			Tags:           []string{"a"},
			BaseConfidence: 85,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeNavItem,
			Tags:           []string{"a", "li"},
			Context:        map[string]bool{"insideNav": true},
			BaseConfidence: 88,
			Priority:       PrioritySpecialized,
		},
	}
}
