// Package dom is a small host document for form-page behaviors. It wraps an
// HTML node tree with the parts of browser semantics the behaviors rely on:
// selector queries, text and value mutation, event dispatch with bubbling,
// scroll offsets, inline style and the window location.
//
// A Document is not safe for concurrent use; events are dispatched
// synchronously, one at a time.
package dom

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// ErrInvalidSelector is returned when a CSS selector does not compile.
var ErrInvalidSelector = errors.New("invalid selector")

// Document is a parsed HTML page plus its browsing state.
type Document struct {
	root     *html.Node
	elements map[*html.Node]*Element
	location *url.URL
	history  []string
}

// Parse reads an HTML document. The location starts at "/".
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Document{
		root:     root,
		elements: make(map[*html.Node]*Element),
		location: &url.URL{Path: "/"},
	}, nil
}

// ParseString parses an HTML document held in memory.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// Render writes the document, including any mutations, as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.root)
}

// String renders the document to a string.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

// Root returns the <html> element.
func (d *Document) Root() *Element {
	for c := d.root.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			return d.wrap(c)
		}
	}
	return nil
}

// QueryAll returns every element matching selector, in document order.
func (d *Document) QueryAll(selector string) ([]*Element, error) {
	return d.queryAll(d.root, selector)
}

// Query returns the first element matching selector, or nil.
func (d *Document) Query(selector string) (*Element, error) {
	els, err := d.QueryAll(selector)
	if err != nil || len(els) == 0 {
		return nil, err
	}
	return els[0], nil
}

func (d *Document) queryAll(from *html.Node, selector string) ([]*Element, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", ErrInvalidSelector, selector, err)
	}
	nodes := sel.MatchAll(from)
	out := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if n == from {
			continue
		}
		out = append(out, d.wrap(n))
	}
	return out, nil
}

// wrap returns the one Element bound to n, so listeners and scroll state
// survive repeated queries.
func (d *Document) wrap(n *html.Node) *Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	if el, ok := d.elements[n]; ok {
		return el
	}
	el := &Element{doc: d, node: n}
	d.elements[n] = el
	return el
}

// Location returns a copy of the current URL.
func (d *Document) Location() *url.URL {
	u := *d.location
	return &u
}

// SetLocation replaces the current URL without recording a navigation.
func (d *Document) SetLocation(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid location %q: %w", raw, err)
	}
	d.location = u
	return nil
}

// Navigate resolves href against the current location, moves there and
// records it in the history.
func (d *Document) Navigate(href string) error {
	ref, err := url.Parse(href)
	if err != nil {
		return fmt.Errorf("invalid href %q: %w", href, err)
	}
	d.location = d.location.ResolveReference(ref)
	d.history = append(d.history, d.location.String())
	return nil
}

// History returns the URLs navigated to, oldest first.
func (d *Document) History() []string {
	return append([]string(nil), d.history...)
}
