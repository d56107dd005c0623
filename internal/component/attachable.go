// Package component holds the pieces of UI that are built at runtime and
// placed into the host document.
package component

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/idilsaglam/projects/internal/clierr"
	"github.com/idilsaglam/projects/internal/dom"
)

// Attachable owns one rendered node and knows where to put it.
type Attachable struct {
	doc          *dom.Document
	host         *html.Node
	insertBefore bool
	node         *html.Node
}

// NewAttachable resolves the host element. An empty hostID means <body>.
// insertBefore places the node as the host's first child instead of its last.
func NewAttachable(doc *dom.Document, hostID string, insertBefore bool) (*Attachable, error) {
	var (
		host *html.Node
		err  error
	)
	if hostID == "" {
		host, err = doc.Query("body")
	} else {
		host, err = doc.ElementByID(hostID)
	}
	if err != nil {
		return nil, fmt.Errorf("attach host: %w", err)
	}
	return &Attachable{doc: doc, host: host, insertBefore: insertBefore}, nil
}

// SetNode sets the node that Attach inserts.
func (a *Attachable) SetNode(n *html.Node) { a.node = n }

func (a *Attachable) Node() *html.Node { return a.node }
func (a *Attachable) Host() *html.Node { return a.host }

// Attach inserts the node at the start or end of the host.
func (a *Attachable) Attach() error {
	if a.node == nil {
		return clierr.New(clierr.InternalError, "attach: nothing to attach")
	}
	if a.insertBefore {
		a.doc.InsertStart(a.host, a.node)
	} else {
		a.doc.InsertEnd(a.host, a.node)
	}
	return nil
}

// Detach removes the node from wherever it currently is.
func (a *Attachable) Detach() {
	if a.node != nil {
		a.doc.Remove(a.node)
	}
}

// Attached reports whether the node is in the document.
func (a *Attachable) Attached() bool {
	return a.node != nil && a.doc.Contains(a.node)
}
