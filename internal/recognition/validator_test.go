package recognition

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePromotesButtonInHero(t *testing.T) {
	in := RecognitionResult{ComponentType: TypeButton, Confidence: 92}
	vctx := ValidationContext{Ancestors: ElementContext{InsideHero: true}}

	out := validateWithContext(in, vctx)

	assert.Equal(t, TypeCTAButton, out.ComponentType)
	assert.Equal(t, 92, out.Confidence)
}

func TestValidateHeroWinsOverForm(t *testing.T) {
	// A button inside both a hero and a form reads as the hero's call to
	// action, not a submit control.
	in := RecognitionResult{ComponentType: TypeButton, Confidence: 92}
	vctx := ValidationContext{Ancestors: ElementContext{InsideHero: true, InsideForm: true}}

	out := validateWithContext(in, vctx)

	assert.Equal(t, TypeCTAButton, out.ComponentType)
}

func TestValidatePromotesButtonInForm(t *testing.T) {
	in := RecognitionResult{ComponentType: TypeButton, Confidence: 92}
	vctx := ValidationContext{Ancestors: ElementContext{InsideForm: true}}

	out := validateWithContext(in, vctx)

	assert.Equal(t, TypeSubmitButton, out.ComponentType)
}

func TestValidatePromotesHeadingInHero(t *testing.T) {
	in := RecognitionResult{ComponentType: TypeHeading, Confidence: 90}
	out := validateWithContext(in, ValidationContext{Ancestors: ElementContext{InsideHero: true}})
	assert.Equal(t, TypeHeroHeading, out.ComponentType)
}

func TestValidatePromotesLinkInNav(t *testing.T) {
	in := RecognitionResult{ComponentType: TypeLink, Confidence: 85}
	out := validateWithContext(in, ValidationContext{Ancestors: ElementContext{InsideNav: true}})
	assert.Equal(t, TypeNavItem, out.ComponentType)
}

func TestValidateNestedCardFlaggedAndCapped(t *testing.T) {
	for _, typ := range []ComponentType{TypeCard, TypeProductCard, TypePricingCard} {
		in := RecognitionResult{ComponentType: typ, Confidence: 88}
		out := validateWithContext(in, ValidationContext{Ancestors: ElementContext{InsideCard: true}})

		assert.Equal(t, typ, out.ComponentType)
		assert.True(t, out.ManualReviewNeeded)
		assert.Equal(t, nestedReviewConfidence, out.Confidence)
	}

	// Confidence already under the cap is left alone.
	in := RecognitionResult{ComponentType: TypeCard, Confidence: 40}
	out := validateWithContext(in, ValidationContext{Ancestors: ElementContext{InsideCard: true}})
	assert.Equal(t, 40, out.Confidence)
	assert.True(t, out.ManualReviewNeeded)
}

func TestValidateNestedHeroFlagged(t *testing.T) {
	in := RecognitionResult{ComponentType: TypeHero, Confidence: 90}
	out := validateWithContext(in, ValidationContext{Ancestors: ElementContext{InsideHero: true}})

	assert.Equal(t, TypeHero, out.ComponentType)
	assert.True(t, out.ManualReviewNeeded)
	assert.Equal(t, nestedReviewConfidence, out.Confidence)
}

func TestValidateOrphanedControlsFlagged(t *testing.T) {
	for _, typ := range []ComponentType{TypeRadio, TypeCheckbox} {
		in := RecognitionResult{ComponentType: typ, Confidence: 95}

		out := validateWithContext(in, ValidationContext{})
		assert.Equal(t, typ, out.ComponentType)
		assert.True(t, out.ManualReviewNeeded, "%s outside any form", typ)
		assert.Equal(t, 95, out.Confidence)

		out = validateWithContext(in, ValidationContext{Ancestors: ElementContext{InsideForm: true}})
		assert.False(t, out.ManualReviewNeeded, "%s inside a form", typ)
	}
}

func TestValidateListItemAfterPriceList(t *testing.T) {
	in := RecognitionResult{ComponentType: TypeListItem, Confidence: 84}
	vctx := ValidationContext{PriorSiblings: []ComponentType{TypeHeading, TypePriceList}}

	out := validateWithContext(in, vctx)

	assert.Equal(t, TypeListItem, out.ComponentType)
	assert.True(t, out.ManualReviewNeeded)
	assert.Equal(t, 84, out.Confidence)
}

func TestValidateNeverRaisesConfidence(t *testing.T) {
	cases := []struct {
		typ  ComponentType
		vctx ValidationContext
	}{
		{TypeButton, ValidationContext{Ancestors: ElementContext{InsideHero: true}}},
		{TypeHeading, ValidationContext{Ancestors: ElementContext{InsideHero: true}}},
		{TypeCard, ValidationContext{Ancestors: ElementContext{InsideCard: true}}},
		{TypeListItem, ValidationContext{PriorSiblings: []ComponentType{TypePriceList}}},
		{TypeUnknown, ValidationContext{}},
	}
	for _, tc := range cases {
		in := RecognitionResult{ComponentType: tc.typ, Confidence: 90}
		out := validateWithContext(in, tc.vctx)
		assert.LessOrEqual(t, out.Confidence, 90, "type %s", tc.typ)
	}
}

func TestValidateIdempotent(t *testing.T) {
	cases := []struct {
		name string
		in   RecognitionResult
		vctx ValidationContext
	}{
		{"hero button", RecognitionResult{ComponentType: TypeButton, Confidence: 92}, ValidationContext{Ancestors: ElementContext{InsideHero: true}}},
		{"nested card", RecognitionResult{ComponentType: TypeCard, Confidence: 88}, ValidationContext{Ancestors: ElementContext{InsideCard: true}}},
		{"price list sibling", RecognitionResult{ComponentType: TypeListItem, Confidence: 84}, ValidationContext{PriorSiblings: []ComponentType{TypePriceList}}},
		{"orphaned radio", RecognitionResult{ComponentType: TypeRadio, Confidence: 95}, ValidationContext{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			once := validateWithContext(tc.in, tc.vctx)
			twice := validateWithContext(once, tc.vctx)

			assert.Equal(t, once.ComponentType, twice.ComponentType)
			assert.Equal(t, once.Confidence, twice.Confidence)
			assert.Equal(t, once.ManualReviewNeeded, twice.ManualReviewNeeded)
		})
	}
}

func TestBuildValidationContextStripsSiblingTypes(t *testing.T) {
	parent := ElementContext{InsideForm: true, SiblingTypes: []ComponentType{TypeInput}}
	prior := []RecognitionResult{
		{ComponentType: TypeHeading},
		{ComponentType: TypePriceList},
	}

	vctx := BuildValidationContext(parent, prior)

	assert.True(t, vctx.Ancestors.InsideForm)
	assert.Nil(t, vctx.Ancestors.SiblingTypes)
	assert.Equal(t, []ComponentType{TypeHeading, TypePriceList}, vctx.PriorSiblings)
}
