package recognition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagelift/pagelift/backend/internal/styles"
)

func mustCompile(t *testing.T, p Pattern) *compiledPattern {
	t.Helper()
	cp, err := compile(p, 0)
	require.NoError(t, err)
	return cp
}

func TestMatchPatternTagGate(t *testing.T) {
	// Tag mismatch zeroes the score even when every other dimension fits.
	p := mustCompile(t, Pattern{
		Type:           TypeButton,
		Tags:           []string{"button"},
		ClassKeywords:  []string{"btn"},
		BaseConfidence: 90,
		Priority:       PriorityGeneric,
	})

	anchor := firstEl(t, `<a class="btn primary">Go</a>`)
	score := matchPattern(p, anchor, nil, ElementContext{})
	assert.Equal(t, 0, score.confidence)

	button := firstEl(t, `<button class="btn">Go</button>`)
	score = matchPattern(p, button, nil, ElementContext{})
	assert.Equal(t, 90, score.confidence)
	assert.Equal(t, 2, score.matched)
	assert.Equal(t, 2, score.total)
}

func TestMatchPatternPartialRatio(t *testing.T) {
	p := mustCompile(t, Pattern{
		Type:           TypeCard,
		Tags:           []string{"section"},
		ClassKeywords:  []string{"card"},
		ContentRegex:   `Featured`,
		BaseConfidence: 90,
		Priority:       PriorityGeneric,
	})

	// Tag and class match, content does not: round(90 * 2/3) = 60.
	el := firstEl(t, `<section class="card">Plain text</section>`)
	score := matchPattern(p, el, nil, ElementContext{})
	assert.Equal(t, 60, score.confidence)
	assert.Equal(t, 2, score.matched)
	assert.Equal(t, 3, score.total)
}

func TestMatchPatternTagOnly(t *testing.T) {
	// A passing tag gate counts as a satisfied signal; tag-only patterns
	// score their full base confidence.
	p := mustCompile(t, Pattern{
		Type:           TypeInput,
		Tags:           []string{"input"},
		BaseConfidence: 92,
		Priority:       PriorityGeneric,
	})

	el := firstEl(t, `<input type="text">`)
	score := matchPattern(p, el, nil, ElementContext{})
	assert.Equal(t, 92, score.confidence)
}

func TestMatchPatternContextRequirement(t *testing.T) {
	p := mustCompile(t, Pattern{
		Type:           TypeMenu,
		Tags:           []string{"ul"},
		Context:        map[string]bool{"insideNav": true},
		BaseConfidence: 90,
		Priority:       PriorityGeneric,
	})

	el := firstEl(t, `<ul><li>Home</li></ul>`)

	score := matchPattern(p, el, nil, ElementContext{InsideNav: true})
	assert.Equal(t, 90, score.confidence)

	score = matchPattern(p, el, nil, ElementContext{})
	assert.Equal(t, 45, score.confidence, "failed context halves a two-signal pattern")
}

func TestMatchPatternDeclarativeCSS(t *testing.T) {
	p := mustCompile(t, Pattern{
		Type: TypeGrid,
		CSS: CSSIs(map[string][]string{
			"display":             {"grid"},
			"gridTemplateColumns": {},
		}),
		BaseConfidence: 88,
		Priority:       PriorityGeneric,
	})

	el := firstEl(t, `<div>x</div>`)

	st := styles.Styles{"display": "grid", "gridTemplateColumns": "1fr 1fr"}
	assert.Equal(t, 88, matchPattern(p, el, st, ElementContext{}).confidence)

	// Property present with wrong value fails the whole dimension.
	st = styles.Styles{"display": "block", "gridTemplateColumns": "1fr"}
	assert.Equal(t, 0, matchPattern(p, el, st, ElementContext{}).confidence)

	assert.Equal(t, 0, matchPattern(p, el, nil, ElementContext{}).confidence)
}

func TestMatchPatternAriaRole(t *testing.T) {
	p := mustCompile(t, Pattern{
		Type:           TypeRadioGroup,
		AriaRole:       "radiogroup",
		BaseConfidence: 90,
		Priority:       PriorityGeneric,
	})

	el := firstEl(t, `<div role="radiogroup"></div>`)
	assert.Equal(t, 90, matchPattern(p, el, nil, ElementContext{}).confidence)

	el = firstEl(t, `<div role="group"></div>`)
	assert.Equal(t, 0, matchPattern(p, el, nil, ElementContext{}).confidence)
}

func TestTieBreakPrefersEarlierRegistration(t *testing.T) {
	// Identical priority and identical computed confidence: the pattern
	// registered first must win.
	reg, err := NewRegistry([]Pattern{
		{Type: TypeCard, ClassKeywords: []string{"zz"}, BaseConfidence: 80, Priority: 100},
		{Type: TypeBadge, ClassKeywords: []string{"zz"}, BaseConfidence: 80, Priority: 100},
	})
	require.NoError(t, err)

	el := firstEl(t, `<div class="zz"></div>`)
	ctx := DetermineContext(el, nil)
	res := NewRecognizer(reg).Recognize(el, nil, ctx, ValidationContext{})

	assert.Equal(t, TypeCard, res.ComponentType)
	assert.Equal(t, 80, res.Confidence)
	assert.ElementsMatch(t, []ComponentType{TypeCard, TypeBadge}, res.MatchedPatterns)
}
