package recognition

import (
	"github.com/pagelift/pagelift/backend/internal/dom"
	"github.com/pagelift/pagelift/backend/internal/styles"
)

// formPatterns covers forms and their controls. Input sub-types are told
// apart by custom predicates over the type attribute, scanned ahead of the
// generic input rule via the override band.
func formPatterns() []Pattern {
	return []Pattern{
		{
			Type:           TypeForm,
			Tags:           []string{"form"},
			BaseConfidence: 90,
			Priority:       PriorityStructural,
		},
		{
			Type: TypeLoginForm,
			Tags: []string{"form"},
			CSS: CSSWhere(func(_ styles.Styles, el *dom.Element) bool {
				return hasInputDescendant(el, "password")
			}),
			BaseConfidence: 95,
			Priority:       PriorityOverride,
		},
		{
			Type:           TypeContactForm,
			Tags:           []string{"form"},
			ClassKeywords:  []string{"contact", "enquiry", "message"},
			BaseConfidence: 93,
			Priority:       PrioritySpecialized,
		},
		{
			Type:          TypeNewsletterSignup,
			ClassKeywords: []string{"newsletter", "subscribe", "signup"},
			CSS: CSSWhere(func(_ styles.Styles, el *dom.Element) bool {
				return hasInputDescendant(el, "email")
			}),
			BaseConfidence: 90,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeInput,
			Tags:           []string{"input"},
			BaseConfidence: 92,
			Priority:       PriorityGeneric,
		},
		{
			Type: TypeCheckbox,
			Tags: []string{"input"},
			CSS: CSSWhere(func(_ styles.Styles, el *dom.Element) bool {
				return attrIs(el, "type", "checkbox")
			}),
			BaseConfidence: 95,
			Priority:       PriorityOverride,
		},
		{
			Type: TypeRadio,
			Tags: []string{"input"},
			CSS: CSSWhere(func(_ styles.Styles, el *dom.Element) bool {
				return attrIs(el, "type", "radio")
			}),
			BaseConfidence: 95,
			Priority:       PriorityOverride,
		},
		{
			Type:           TypeRadioGroup,
			AriaRole:       "radiogroup",
			BaseConfidence: 90,
			Priority:       PriorityOverride,
		},
		{
			// Fieldsets holding two or more radios form an implicit group.
			Type: TypeRadioGroup,
			Tags: []string{"fieldset"},
			CSS: CSSWhere(func(_ styles.Styles, el *dom.Element) bool {
				return el.CountDescendants(func(e *dom.Element) bool {
					return e.Tag() == "input" && attrIs(e, "type", "radio")
				}) >= 2
			}),
			BaseConfidence: 92,
			Priority:       PrioritySpecialized,
		},
		{
			Type: TypeSlider,
			Tags: []string{"input"},
			CSS: CSSWhere(func(_ styles.Styles, el *dom.Element) bool {
				return attrIs(el, "type", "range")
			}),
			BaseConfidence: 94,
			Priority:       PriorityOverride,
		},
		{
			Type: TypeSearchBar,
			Tags: []string{"input"},
			CSS: CSSWhere(func(_ styles.Styles, el *dom.Element) bool {
				return attrIs(el, "type", "search")
			}),
			BaseConfidence: 94,
			Priority:       PriorityOverride,
		},
		{
			Type:           TypeSearchBar,
			AriaRole:       "search",
			BaseConfidence: 90,
			Priority:       PriorityOverride,
		},
		{
			Type:          TypeSearchBar,
			ClassKeywords: []string{"search"},
			CSS: CSSWhere(func(_ styles.Styles, el *dom.Element) bool {
				return countDescendantTag(el, "input") > 0
			}),
			BaseConfidence: 88,
			Priority:       PrioritySpecialized,
		},
		{
			Type:           TypeTextarea,
			Tags:           []string{"textarea"},
			BaseConfidence: 94,
			Priority:       PriorityGeneric,
		},
		{
			Type:           TypeSelect,
			Tags:           []string{"select", "datalist"},
			BaseConfidence: 94,
			Priority:       PriorityGeneric,
		},
	}
}
