package dom

import (
	"bytes"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Element is one node of the parsed tree. It exposes only the capability set
// the recognition engine depends on, never the parser's node type.
type Element struct {
	node     *html.Node
	parent   *Element
	children []*Element
	attrs    map[string]string
	classes  []string
}

func newElement(n *html.Node, parent *Element) *Element {
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		attrs[strings.ToLower(a.Key)] = a.Val
	}

	var classes []string
	if cls, ok := attrs["class"]; ok {
		classes = strings.Fields(cls)
	}

	return &Element{
		node:    n,
		parent:  parent,
		attrs:   attrs,
		classes: classes,
	}
}

// Tag returns the lowercase tag name.
func (e *Element) Tag() string {
	return strings.ToLower(e.node.Data)
}

// ID returns the id attribute, empty when absent.
func (e *Element) ID() string {
	return e.attrs["id"]
}

// Classes returns the class list in source order.
func (e *Element) Classes() []string {
	return e.classes
}

// HasClassContaining reports whether any class contains the substring,
// case-insensitively.
func (e *Element) HasClassContaining(substr string) bool {
	needle := strings.ToLower(substr)
	for _, c := range e.classes {
		if strings.Contains(strings.ToLower(c), needle) {
			return true
		}
	}
	return false
}

// Attr returns an attribute value by lowercase name.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[strings.ToLower(name)]
	return v, ok
}

// AttrOr returns an attribute value or the default when absent.
func (e *Element) AttrOr(name, def string) string {
	if v, ok := e.Attr(name); ok {
		return v
	}
	return def
}

// Attributes returns the full attribute map.
func (e *Element) Attributes() map[string]string {
	return e.attrs
}

// Role returns the ARIA role attribute, empty when absent.
func (e *Element) Role() string {
	return e.attrs["role"]
}

// Text returns the trimmed concatenation of all descendant text nodes.
func (e *Element) Text() string {
	var buf bytes.Buffer
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(e.node)
	return strings.TrimSpace(buf.String())
}

// InnerHTML renders the markup of the element's children.
func (e *Element) InnerHTML() string {
	var buf bytes.Buffer
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		// Render errors only occur on unwritable writers; bytes.Buffer never fails
		_ = html.Render(&buf, c)
	}
	return buf.String()
}

// OuterHTML renders the element's own markup including the tag itself.
func (e *Element) OuterHTML() string {
	var buf bytes.Buffer
	_ = html.Render(&buf, e.node)
	return buf.String()
}

// Parent returns the parent element, nil at the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Children returns child elements in source DOM order.
func (e *Element) Children() []*Element {
	return e.children
}

// FindDescendants returns all descendants (depth-first, pre-order) matching
// the predicate. The element itself is excluded.
func (e *Element) FindDescendants(pred func(*Element) bool) []*Element {
	var found []*Element
	var walk func(*Element)
	walk = func(el *Element) {
		for _, c := range el.children {
			if pred(c) {
				found = append(found, c)
			}
			walk(c)
		}
	}
	walk(e)
	return found
}

// CountDescendants counts descendants matching the predicate without
// allocating the result slice.
func (e *Element) CountDescendants(pred func(*Element) bool) int {
	count := 0
	var walk func(*Element)
	walk = func(el *Element) {
		for _, c := range el.children {
			if pred(c) {
				count++
			}
			walk(c)
		}
	}
	walk(e)
	return count
}

// NormalizeWhitespace collapses runs of whitespace into single spaces.
func NormalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// TruncateText truncates text to at most maxLen bytes on a rune boundary,
// with a trailing ellipsis when the budget allows one.
func TruncateText(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		if maxLen < 0 {
			maxLen = 0
		}
		return trimToRune(s, maxLen)
	}
	return trimToRune(s, maxLen-3) + "..."
}

// trimToRune cuts s to at most n bytes without splitting a rune.
func trimToRune(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
