package recognition

import (
	"github.com/pagelift/pagelift/backend/internal/dom"
	"github.com/pagelift/pagelift/backend/internal/styles"
)

// layoutPatterns covers structural page regions. Generic <div>s deliberately
// have no tag-gated rule: a division with no class, style, or content signal
// must stay unknown rather than pick up partial structural confidence.
func layoutPatterns() []Pattern {
	return []Pattern{
		{
			Type:           TypeNav,
			Tags:           []string{"nav"},
			BaseConfidence: 92,
			Priority:       PriorityStructural,
		},
		{
			Type:           TypeNav,
			AriaRole:       "navigation",
			BaseConfidence: 90,
			Priority:       PriorityOverride,
		},
		{
			Type:           TypeHeader,
			Tags:           []string{"header"},
			BaseConfidence: 90,
			Priority:       PriorityStructural,
		},
		{
			Type:           TypeHeader,
			ClassKeywords:  []string{"masthead", "site-header", "topbar"},
			BaseConfidence: 82,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeFooter,
			Tags:           []string{"footer"},
			BaseConfidence: 90,
			Priority:       PriorityStructural,
		},
		{
			Type:           TypeFooter,
			ClassKeywords:  []string{"site-footer", "page-footer"},
			BaseConfidence: 82,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeSection,
			Tags:           []string{"section"},
			BaseConfidence: 85,
			Priority:       PriorityStructural,
		},
		{
			Type:           TypeHero,
			ClassKeywords:  []string{"hero", "banner", "jumbotron"},
			BaseConfidence: 90,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeCard,
			ClassKeywords:  []string{"card", "tile", "box"},
			BaseConfidence: 88,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeContainer,
			ClassKeywords:  []string{"container", "wrapper", "content"},
			BaseConfidence: 75,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeContainer,
			Tags:           []string{"main", "article", "aside"},
			BaseConfidence: 80,
			Priority:       PriorityStructural,
		},
		{
			Type:          TypeGrid,
			ClassKeywords: []string{"grid", "row", "columns"},
			CSS: CSSWhere(func(st styles.Styles, _ *dom.Element) bool {
				return st.Is("display", "grid", "flex") || st.Has("gridTemplateColumns")
			}),
			BaseConfidence: 85,
			Priority:       PrioritySpecialized,
		},
		{
			Type: TypeGrid,
			CSS: CSSIs(map[string][]string{
				"display":             {"grid"},
				"gridTemplateColumns": {},
			}),
			BaseConfidence: 88,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeColumn,
			ClassKeywords:  []string{"col-", "column"},
			BaseConfidence: 80,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeDivider,
			Tags:           []string{"hr"},
			BaseConfidence: 95,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeSpacer,
			ClassKeywords:  []string{"spacer", "gap-"},
			BaseConfidence: 80,
			Priority:       PrioritySpecialized,
		},
	}
}
