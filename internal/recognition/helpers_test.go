package recognition

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pagelift/pagelift/backend/internal/dom"
)

// parseBody parses markup and returns the <body> element.
func parseBody(t *testing.T, markup string) *dom.Element {
	t.Helper()
	doc, err := dom.Parse(markup)
	require.NoError(t, err)
	return doc.Body()
}

// firstEl parses markup and returns the first element inside <body>.
func firstEl(t *testing.T, markup string) *dom.Element {
	t.Helper()
	body := parseBody(t, markup)
	require.NotEmpty(t, body.Children(), "fixture has no body children")
	return body.Children()[0]
}

// recognize runs the default pipeline on a detached element.
func recognize(t *testing.T, markup string) RecognitionResult {
	t.Helper()
	el := firstEl(t, markup)
	ctx := DetermineContext(el, nil)
	vctx := BuildValidationContext(ElementContext{}, nil)
	return NewRecognizer(Default()).Recognize(el, nil, ctx, vctx)
}
