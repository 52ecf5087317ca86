package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullDocument(t *testing.T) {
	doc, err := Parse(`<!DOCTYPE html>
<html><head><title>t</title></head>
<body><div id="main"><p>hello</p></div></body></html>`)
	require.NoError(t, err)

	assert.Equal(t, "html", doc.Root().Tag())
	require.NotNil(t, doc.Body())
	assert.Equal(t, "body", doc.Body().Tag())

	divs := doc.Body().FindDescendants(func(e *Element) bool { return e.Tag() == "div" })
	require.Len(t, divs, 1)
	assert.Equal(t, "main", divs[0].ID())
}

func TestParseFragment(t *testing.T) {
	// html.Parse wraps fragments in html/head/body, so Body still resolves.
	doc, err := Parse(`<p>fragment</p>`)
	require.NoError(t, err)
	assert.Equal(t, "body", doc.Body().Tag())
	require.Len(t, doc.Body().Children(), 1)
	assert.Equal(t, "p", doc.Body().Children()[0].Tag())
}

func TestParseEmptyInput(t *testing.T) {
	for _, in := range []string{"", "   ", "\n\t"} {
		_, err := Parse(in)
		assert.ErrorIs(t, err, ErrMalformedDocument)
	}
}

func TestParseOversizedInput(t *testing.T) {
	_, err := Parse("<p>" + strings.Repeat("a", MaxDocumentSize) + "</p>")
	assert.Error(t, err)
}

func TestFindXPath(t *testing.T) {
	doc, err := Parse(`<body>
		<ul><li>a</li><li>b</li></ul>
		<ol><li>c</li></ol>
	</body>`)
	require.NoError(t, err)

	items, err := doc.FindXPath("//ul/li")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "a", items[0].Text())
	assert.Equal(t, "b", items[1].Text())
}

func TestFindXPathInvalidExpr(t *testing.T) {
	doc, err := Parse(`<p>x</p>`)
	require.NoError(t, err)

	_, err = doc.FindXPath("//[bad")
	assert.Error(t, err)
}

func TestDetectCharset(t *testing.T) {
	got := DetectCharset([]byte("<html><body>plain ascii text</body></html>"))
	assert.NotEmpty(t, got)
}

func TestDocumentMeta(t *testing.T) {
	doc, err := Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <title> Pricing Plans </title>
  <meta name="description" content="Compare plans and pricing.">
</head>
<body><p>x</p></body></html>`)
	require.NoError(t, err)

	meta := doc.Meta()
	assert.Equal(t, "Pricing Plans", meta.Title)
	assert.Equal(t, "Compare plans and pricing.", meta.Description)
	assert.Equal(t, "en", meta.Lang)
	assert.NotEmpty(t, meta.Charset)
}

func TestDocumentMetaAbsent(t *testing.T) {
	doc, err := Parse(`<p>bare fragment</p>`)
	require.NoError(t, err)

	meta := doc.Meta()
	assert.Empty(t, meta.Title)
	assert.Empty(t, meta.Description)
	assert.Empty(t, meta.Lang)
}
