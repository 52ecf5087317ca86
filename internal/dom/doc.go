// Package dom adapts parsed HTML into the element tree the recognition
// engine consumes.
//
// The engine never touches a parser-specific node type directly: it sees
// Element, a thin wrapper exposing tag, id, classes, attributes, text,
// inner markup, ordered children and ancestor traversal. Documents are
// loaded with automatic charset detection and can be searched by Go
// predicate or by XPath.
//
// Built on specialized libraries:
//   - x/net/html: the underlying node tree
//   - goquery: CSS-selector metadata extraction
//   - htmlquery: XPath support
//   - chardet + x/net/html/charset: encoding detection and conversion
package dom
