// Package page is a headless rendition of the gallery front page: it binds to
// the page markup, fills the artwork, blog and event containers from the JSON
// API and drives the contact form.
package page

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"golang.org/x/net/html"
)

// ErrElementNotFound is returned when the page markup lacks an expected element.
var ErrElementNotFound = errors.New("element not found")

// Container accumulates rendered fragments as children.
type Container interface {
	Append(fragment *html.Node)
}

// Document is a parsed page. Every mutation and render goes through mu, so
// loaders filling different containers can run at the same time.
type Document struct {
	mu   sync.Mutex
	root *html.Node
}

// Element is one node of a Document.
type Element struct {
	doc  *Document
	node *html.Node
}

// ParseDocument parses page markup.
func ParseDocument(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse document: %w", err)
	}
	return &Document{root: root}, nil
}

// ElementByID finds the element carrying the given id attribute.
func (d *Document) ElementByID(id string) (*Element, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	node := findNode(d.root, func(n *html.Node) bool {
		return n.Type == html.ElementNode && attr(n, "id") == id
	})
	if node == nil {
		return nil, fmt.Errorf("%w: #%s", ErrElementNotFound, id)
	}
	return &Element{doc: d, node: node}, nil
}

// Render writes the whole document as HTML.
func (d *Document) Render(w io.Writer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return html.Render(w, d.root)
}

// Append adds fragment as the last child of the element.
func (e *Element) Append(fragment *html.Node) {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	if fragment.Parent != nil {
		fragment.Parent.RemoveChild(fragment)
	}
	e.node.AppendChild(fragment)
}

// Children returns the element children, skipping text and comments.
func (e *Element) Children() []*html.Node {
	e.doc.mu.Lock()
	defer e.doc.mu.Unlock()

	var out []*html.Node
	for c := e.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, c)
		}
	}
	return out
}

// Tag returns the element name, e.g. "form".
func (e *Element) Tag() string {
	return e.node.Data
}

func findNode(n *html.Node, match func(*html.Node) bool) *html.Node {
	if match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findNode(c, match); found != nil {
			return found
		}
	}
	return nil
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return sb.String()
}
