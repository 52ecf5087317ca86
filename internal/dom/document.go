package dom

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/antchfx/htmlquery"
	"github.com/saintfish/chardet"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

const (
	// MaxDocumentSize limits HTML input to 10MB to prevent memory exhaustion
	MaxDocumentSize = 10 * 1024 * 1024
)

// ErrMalformedDocument indicates the input could not be parsed into a tree.
// There is nothing to analyze; callers must treat this as fatal.
var ErrMalformedDocument = errors.New("malformed document")

// Document is a parsed HTML document with an element index for XPath lookups.
type Document struct {
	root    *Element
	body    *Element
	index   map[*html.Node]*Element
	charset string
}

// Parse loads an HTML document with automatic charset detection.
func Parse(htmlStr string) (*Document, error) {
	if err := validateInput(htmlStr); err != nil {
		return nil, err
	}

	cs := DetectCharset([]byte(htmlStr))
	node, err := parseNode(htmlStr, cs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	rootNode := firstElementNode(node)
	if rootNode == nil {
		return nil, fmt.Errorf("%w: no element nodes", ErrMalformedDocument)
	}

	doc := &Document{index: make(map[*html.Node]*Element), charset: cs}
	doc.root = doc.build(rootNode, nil)
	doc.body = doc.findByTag("body")
	return doc, nil
}

// Root returns the document element (usually <html>).
func (d *Document) Root() *Element {
	return d.root
}

// Body returns the <body> element, or the root when the fragment has none.
func (d *Document) Body() *Element {
	if d.body != nil {
		return d.body
	}
	return d.root
}

// FindXPath evaluates an XPath expression against the document.
func (d *Document) FindXPath(expr string) ([]*Element, error) {
	nodes, err := htmlquery.QueryAll(d.root.node, expr)
	if err != nil {
		return nil, fmt.Errorf("xpath query failed: %w", err)
	}

	var found []*Element
	for _, n := range nodes {
		if el, ok := d.index[n]; ok {
			found = append(found, el)
		}
	}
	return found, nil
}

// build wraps a node subtree into Elements, registering each in the index.
func (d *Document) build(n *html.Node, parent *Element) *Element {
	el := newElement(n, parent)
	d.index[n] = el

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			el.children = append(el.children, d.build(c, el))
		}
	}
	return el
}

func (d *Document) findByTag(tag string) *Element {
	matches := d.root.FindDescendants(func(e *Element) bool {
		return e.Tag() == tag
	})
	if len(matches) == 0 {
		return nil
	}
	return matches[0]
}

func validateInput(htmlStr string) error {
	if strings.TrimSpace(htmlStr) == "" {
		return fmt.Errorf("%w: empty input", ErrMalformedDocument)
	}
	if len(htmlStr) > MaxDocumentSize {
		return fmt.Errorf("html exceeds maximum size of %d bytes", MaxDocumentSize)
	}
	return nil
}

// parseNode parses HTML with charset conversion, falling back to direct
// parsing when conversion is unavailable.
func parseNode(htmlStr, cs string) (*html.Node, error) {
	reader := bytes.NewReader([]byte(htmlStr))
	utf8Reader, err := charset.NewReader(reader, cs)
	if err != nil {
		return html.Parse(strings.NewReader(htmlStr))
	}
	return html.Parse(utf8Reader)
}

// DetectCharset detects and returns charset from HTML bytes.
func DetectCharset(data []byte) string {
	detector := chardet.NewTextDetector()
	result, err := detector.DetectBest(data)
	if err != nil || result == nil {
		return "utf-8"
	}
	return strings.ToLower(result.Charset)
}

func firstElementNode(n *html.Node) *html.Node {
	if n.Type == html.ElementNode {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := firstElementNode(c); found != nil {
			return found
		}
	}
	return nil
}

// Meta is document-level metadata reported alongside the analyzed tree.
type Meta struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Lang        string `json:"lang,omitempty"`
	Charset     string `json:"charset,omitempty"`
}

// Meta extracts title and description from the parsed tree with goquery
// selectors, plus the root lang attribute and the detected charset.
func (d *Document) Meta() Meta {
	sel := goquery.NewDocumentFromNode(d.root.node)
	desc, _ := sel.Find(`meta[name="description"]`).Attr("content")

	return Meta{
		Title:       strings.TrimSpace(sel.Find("title").First().Text()),
		Description: strings.TrimSpace(desc),
		Lang:        d.root.AttrOr("lang", ""),
		Charset:     d.charset,
	}
}
