package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseFirst(t *testing.T, markup string) *Element {
	t.Helper()
	doc, err := Parse(markup)
	require.NoError(t, err)
	require.NotEmpty(t, doc.Body().Children())
	return doc.Body().Children()[0]
}

func TestElementAccessors(t *testing.T) {
	el := parseFirst(t, `<button id="go" class="Btn btn-primary" type="submit" aria-label="Go">Click</button>`)

	assert.Equal(t, "button", el.Tag())
	assert.Equal(t, "go", el.ID())
	assert.Equal(t, []string{"Btn", "btn-primary"}, el.Classes())
	assert.Equal(t, "submit", el.AttrOr("type", "button"))
	assert.Equal(t, "text", el.AttrOr("missing", "text"))

	v, ok := el.Attr("ARIA-LABEL")
	assert.True(t, ok, "attribute names are case-insensitive")
	assert.Equal(t, "Go", v)
}

func TestHasClassContaining(t *testing.T) {
	el := parseFirst(t, `<div class="Hero-Banner wrapper"></div>`)

	assert.True(t, el.HasClassContaining("hero"))
	assert.True(t, el.HasClassContaining("banner"))
	assert.False(t, el.HasClassContaining("card"))
}

func TestRole(t *testing.T) {
	el := parseFirst(t, `<div role="navigation"></div>`)
	assert.Equal(t, "navigation", el.Role())

	plain := parseFirst(t, `<div></div>`)
	assert.Empty(t, plain.Role())
}

func TestTextAggregatesDescendants(t *testing.T) {
	el := parseFirst(t, `<div>  hello <span>nested</span> world  </div>`)
	assert.Equal(t, "hello nested world", NormalizeWhitespace(el.Text()))
}

func TestInnerAndOuterHTML(t *testing.T) {
	el := parseFirst(t, `<div><em>x</em></div>`)

	assert.Equal(t, "<em>x</em>", el.InnerHTML())
	assert.Equal(t, "<div><em>x</em></div>", el.OuterHTML())
}

func TestParentChildLinks(t *testing.T) {
	el := parseFirst(t, `<ul><li>a</li><li>b</li></ul>`)

	require.Len(t, el.Children(), 2)
	for _, li := range el.Children() {
		assert.Same(t, el, li.Parent())
	}
}

func TestFindAndCountDescendants(t *testing.T) {
	el := parseFirst(t, `<form>
		<div><input type="text"></div>
		<input type="password">
		<button>Send</button>
	</form>`)

	isInput := func(e *Element) bool { return e.Tag() == "input" }
	found := el.FindDescendants(isInput)
	assert.Len(t, found, 2)
	assert.Equal(t, 2, el.CountDescendants(isInput))

	// The element itself never matches.
	isForm := func(e *Element) bool { return e.Tag() == "form" }
	assert.Empty(t, el.FindDescendants(isForm))
}

func TestNormalizeWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", NormalizeWhitespace("  a\n\tb   c "))
	assert.Empty(t, NormalizeWhitespace("   "))
}

func TestTruncateText(t *testing.T) {
	assert.Equal(t, "short", TruncateText("short", 10))
	assert.Equal(t, "lon...", TruncateText("long enough", 6))

	// Tiny budgets have no room for an ellipsis and must not panic.
	assert.Equal(t, "lo", TruncateText("long", 2))
	assert.Empty(t, TruncateText("long", 0))
	assert.Empty(t, TruncateText("long", -1))

	// Multibyte runes are never split.
	assert.Equal(t, "héll...", TruncateText("héllo wörld", 8))
	assert.Equal(t, "é", TruncateText("éé", 3))
}
