// Package dom is the in-memory host document the board runs against.
//
// A Document wraps a parsed HTML tree and adds what a browser would
// otherwise provide: click listeners, layout boxes and scroll offsets.
// Components receive a *Document at construction instead of reaching for
// a global, so tests can hand them a page built from a string.
package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/idilsaglam/projects/internal/clierr"
)

// Listener handles a click on the node it is bound to.
type Listener func() error

// ListenerID identifies one bound listener so it can be removed later.
type ListenerID int

// Box is the layout of a rendered node, in whatever unit the renderer uses.
type Box struct {
	Left, Top, Height int
}

type binding struct {
	id ListenerID
	fn Listener
}

// Document is a parsed page plus its runtime state.
type Document struct {
	doc *goquery.Document

	listeners map[*html.Node][]binding
	nextID    ListenerID

	boxes    map[*html.Node]Box
	scroll   map[*html.Node]int
	scrolled *html.Node

	selectors map[string]cascadia.Selector
}

// Parse reads an HTML page.
func Parse(r io.Reader) (*Document, error) {
	gd, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return newDocument(gd), nil
}

// ParseString is Parse for an in-memory page.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

func newDocument(gd *goquery.Document) *Document {
	return &Document{
		doc:       gd,
		listeners: map[*html.Node][]binding{},
		boxes:     map[*html.Node]Box{},
		scroll:    map[*html.Node]int{},
		selectors: map[string]cascadia.Selector{},
	}
}

// Root returns the document node.
func (d *Document) Root() *html.Node { return d.doc.Nodes[0] }

// Render writes the current tree as HTML.
func (d *Document) Render(w io.Writer) error {
	return html.Render(w, d.Root())
}

// ---------------------------------------------------
// Lookup
// ---------------------------------------------------

// ElementByID returns the element whose id attribute equals id.
func (d *Document) ElementByID(id string) (*html.Node, error) {
	sel := d.doc.Find("[id]").FilterFunction(func(_ int, s *goquery.Selection) bool {
		v, _ := s.Attr("id")
		return v == id
	})
	if sel.Length() == 0 {
		return nil, clierr.Newf(clierr.ElementNotFound, "no element with id %q", id).
			WithDetails(map[string]any{"id": id})
	}
	return sel.Nodes[0], nil
}

// Query returns the first element matching selector.
func (d *Document) Query(selector string) (*html.Node, error) {
	return d.QueryIn(d.Root(), selector)
}

// QueryAll returns every element matching selector, in document order.
// No match is not an error.
func (d *Document) QueryAll(selector string) ([]*html.Node, error) {
	return d.QueryAllIn(d.Root(), selector)
}

// QueryIn returns the first descendant of n matching selector.
func (d *Document) QueryIn(n *html.Node, selector string) (*html.Node, error) {
	nodes, err := d.QueryAllIn(n, selector)
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, clierr.Newf(clierr.ElementNotFound, "nothing matches %q", selector).
			WithDetails(map[string]any{"selector": selector})
	}
	return nodes[0], nil
}

// QueryAllIn returns the descendants of n matching selector.
func (d *Document) QueryAllIn(n *html.Node, selector string) ([]*html.Node, error) {
	m, err := d.compile(selector)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromNode(n).FindMatcher(m).Nodes, nil
}

func (d *Document) compile(selector string) (cascadia.Selector, error) {
	if m, ok := d.selectors[selector]; ok {
		return m, nil
	}
	m, err := cascadia.Compile(selector)
	if err != nil {
		return nil, clierr.Newf(clierr.InvalidSelector, "invalid selector %q: %v", selector, err)
	}
	d.selectors[selector] = m
	return m, nil
}

// ---------------------------------------------------
// Content
// ---------------------------------------------------

// CreateElement returns a detached element. attrs are name/value pairs.
func (d *Document) CreateElement(tag string, attrs ...string) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for i := 0; i+1 < len(attrs); i += 2 {
		n.Attr = append(n.Attr, html.Attribute{Key: attrs[i], Val: attrs[i+1]})
	}
	return n
}

// Text returns the combined text of n and its descendants, trimmed.
func (d *Document) Text(n *html.Node) string {
	return strings.TrimSpace(selection(n).Text())
}

// SetText replaces the children of n with a single text node.
func (d *Document) SetText(n *html.Node, text string) {
	selection(n).SetText(text)
}

// Attr returns the value of attribute name on n.
func (d *Document) Attr(n *html.Node, name string) (string, bool) {
	return selection(n).Attr(name)
}

// SetAttr sets attribute name on n.
func (d *Document) SetAttr(n *html.Node, name, val string) {
	selection(n).SetAttr(name, val)
}

// Data reads the data-<key> attribute of n.
func (d *Document) Data(n *html.Node, key string) (string, error) {
	v, ok := d.Attr(n, "data-"+key)
	if !ok {
		id, _ := d.Attr(n, "id")
		return "", clierr.Newf(clierr.MissingAttribute, "element %q has no data-%s attribute", id, key).
			WithDetails(map[string]any{"id": id, "attribute": "data-" + key})
	}
	return v, nil
}

// ---------------------------------------------------
// Tree mutation
// ---------------------------------------------------

// InsertStart makes n the first child of host, detaching it first if needed.
func (d *Document) InsertStart(host, n *html.Node) {
	selection(host).PrependNodes(n)
}

// InsertEnd makes n the last child of host, detaching it first if needed.
func (d *Document) InsertEnd(host, n *html.Node) {
	selection(host).AppendNodes(n)
}

// Remove detaches n from its parent. Detached nodes are left alone.
func (d *Document) Remove(n *html.Node) {
	if n.Parent != nil {
		n.Parent.RemoveChild(n)
	}
}

// Contains reports whether n is currently part of the document tree.
func (d *Document) Contains(n *html.Node) bool {
	for p := n; p != nil; p = p.Parent {
		if p == d.Root() {
			return true
		}
	}
	return false
}

// ---------------------------------------------------
// Events
// ---------------------------------------------------

// AddListener binds fn to clicks on n and returns its handle.
func (d *Document) AddListener(n *html.Node, fn Listener) ListenerID {
	d.nextID++
	d.listeners[n] = append(d.listeners[n], binding{id: d.nextID, fn: fn})
	return d.nextID
}

// RemoveListener unbinds the listener with handle id from n.
func (d *Document) RemoveListener(n *html.Node, id ListenerID) bool {
	bs := d.listeners[n]
	for i, b := range bs {
		if b.id == id {
			d.listeners[n] = append(bs[:i:i], bs[i+1:]...)
			if len(d.listeners[n]) == 0 {
				delete(d.listeners, n)
			}
			return true
		}
	}
	return false
}

// Listeners returns how many listeners are bound to n.
func (d *Document) Listeners(n *html.Node) int { return len(d.listeners[n]) }

// Click runs the listeners bound to n in bind order. A listener may
// unbind itself or others; the set is fixed when the click starts.
func (d *Document) Click(n *html.Node) error {
	bs := append([]binding(nil), d.listeners[n]...)
	var firstErr error
	for _, b := range bs {
		if err := b.fn(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// ---------------------------------------------------
// Layout
// ---------------------------------------------------

// SetBox records where n was laid out.
func (d *Document) SetBox(n *html.Node, b Box) { d.boxes[n] = b }

// Box returns the last recorded layout of n; zero if never laid out.
func (d *Document) Box(n *html.Node) Box { return d.boxes[n] }

// SetScrollTop records how far the scrollable n is scrolled.
func (d *Document) SetScrollTop(n *html.Node, v int) {
	if v < 0 {
		v = 0
	}
	d.scroll[n] = v
}

// ScrollTop returns the scroll offset of n.
func (d *Document) ScrollTop(n *html.Node) int { return d.scroll[n] }

// ScrollIntoView asks the renderer to bring n into view.
func (d *Document) ScrollIntoView(n *html.Node) { d.scrolled = n }

// TakeScrolled returns the node last passed to ScrollIntoView and clears it.
func (d *Document) TakeScrolled() *html.Node {
	n := d.scrolled
	d.scrolled = nil
	return n
}

func selection(n *html.Node) *goquery.Selection {
	return goquery.NewDocumentFromNode(n).Selection
}
