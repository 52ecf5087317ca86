package styles

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"
)

// presentational maps legacy HTML attributes to the CSS property they imply.
var presentational = map[string]string{
	"bgcolor": "backgroundColor",
	"color":   "color",
	"width":   "width",
	"height":  "height",
	"align":   "textAlign",
	"border":  "borderWidth",
}

// InlineExtractor is the default Extractor. It parses the element's inline
// style attribute with douceur and folds in presentational attributes.
type InlineExtractor struct{}

// NewInlineExtractor creates the default style extractor.
func NewInlineExtractor() *InlineExtractor {
	return &InlineExtractor{}
}

// Extract parses the opening tag of the given markup and resolves its
// declared styles.
func (x *InlineExtractor) Extract(markup string) (Styles, error) {
	attrs, err := leadingTagAttributes(markup)
	if err != nil {
		return nil, err
	}

	out := make(Styles)

	for attr, prop := range presentational {
		if v, ok := attrs[attr]; ok && v != "" {
			out[prop] = v
		}
	}

	inline, ok := attrs["style"]
	if !ok || strings.TrimSpace(inline) == "" {
		return out, nil
	}

	decls, err := parser.ParseDeclarations(inline)
	if err != nil {
		return nil, fmt.Errorf("parse inline style: %w", err)
	}
	for _, d := range decls {
		prop := CamelCase(d.Property)
		if prop == "" {
			continue
		}
		out[prop] = strings.TrimSpace(d.Value)
	}
	return out, nil
}

// leadingTagAttributes tokenizes the markup and returns the attributes of
// its first start tag.
func leadingTagAttributes(markup string) (map[string]string, error) {
	tz := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := tz.Next()
		switch tt {
		case html.ErrorToken:
			return nil, fmt.Errorf("no element in markup")
		case html.StartTagToken, html.SelfClosingTagToken:
			tok := tz.Token()
			attrs := make(map[string]string, len(tok.Attr))
			for _, a := range tok.Attr {
				attrs[strings.ToLower(a.Key)] = a.Val
			}
			return attrs, nil
		}
	}
}
