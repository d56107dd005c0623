package component

import (
	"fmt"

	"golang.org/x/net/html"

	"github.com/idilsaglam/projects/internal/clierr"
	"github.com/idilsaglam/projects/internal/dom"
)

// TooltipOptions control where a tooltip lands relative to its owner.
type TooltipOptions struct {
	OffsetX int
	OffsetY int
}

// DefaultTooltipOptions match the page's pixel layout.
func DefaultTooltipOptions() TooltipOptions {
	return TooltipOptions{OffsetX: 20, OffsetY: 10}
}

// Tooltip is a card shown next to its owner until it is clicked.
// A closed tooltip is done for good.
type Tooltip struct {
	view *Attachable
	doc  *dom.Document

	ownerID       string
	text          string
	closeNotifier func()

	x, y   int
	closed bool
}

// NewTooltip builds the card for the element ownerID. The card is not in
// the document until Attach is called.
func NewTooltip(doc *dom.Document, closeNotifier func(), text, ownerID string, opts TooltipOptions) (*Tooltip, error) {
	view, err := NewAttachable(doc, ownerID, false)
	if err != nil {
		return nil, fmt.Errorf("tooltip: %w", err)
	}
	t := &Tooltip{
		view:          view,
		doc:           doc,
		ownerID:       ownerID,
		text:          text,
		closeNotifier: closeNotifier,
	}
	t.create(opts)
	return t, nil
}

func (t *Tooltip) create(opts TooltipOptions) {
	owner := t.view.Host()
	ob := t.doc.Box(owner)
	scroll := 0
	if owner.Parent != nil {
		scroll = t.doc.ScrollTop(owner.Parent)
	}

	// position is fixed at creation; later scrolling does not move the card
	t.x = ob.Left + opts.OffsetX
	t.y = ob.Top + ob.Height - scroll - opts.OffsetY

	el := t.doc.CreateElement("div",
		"class", "card",
		"style", fmt.Sprintf("position: absolute; left: %dpx; top: %dpx", t.x, t.y),
	)
	t.doc.SetText(el, t.text)
	t.doc.SetBox(el, dom.Box{Left: t.x, Top: t.y})
	t.doc.AddListener(el, func() error {
		t.Close()
		return nil
	})
	t.view.SetNode(el)
}

// Attach shows the card inside its owner.
func (t *Tooltip) Attach() error {
	if t.closed {
		return clierr.Newf(clierr.TooltipClosed, "tooltip for %q was already closed", t.ownerID)
	}
	return t.view.Attach()
}

// Close removes the card and tells the owner. Closing twice is a no-op.
func (t *Tooltip) Close() {
	if t.closed {
		return
	}
	t.closed = true
	t.view.Detach()
	t.doc.ClearListeners(t.view.Node())
	if t.closeNotifier != nil {
		t.closeNotifier()
	}
}

func (t *Tooltip) Node() *html.Node { return t.view.Node() }
func (t *Tooltip) OwnerID() string  { return t.ownerID }
func (t *Tooltip) Text() string     { return t.text }
func (t *Tooltip) Closed() bool     { return t.closed }
func (t *Tooltip) Visible() bool    { return !t.closed && t.view.Attached() }

// Position returns the card's offsets as computed at creation.
func (t *Tooltip) Position() (x, y int) { return t.x, t.y }
