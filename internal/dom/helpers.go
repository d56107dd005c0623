package dom

import (
	"fmt"

	"golang.org/x/net/html"
)

// ClearListeners unbinds every listener on n and returns n.
func (d *Document) ClearListeners(n *html.Node) *html.Node {
	delete(d.listeners, n)
	return n
}

// Relocate moves the element with id itemID to the end of the first element
// matching destinationSelector and scrolls it into view. When either lookup
// fails the document is left untouched.
func (d *Document) Relocate(itemID, destinationSelector string) error {
	el, err := d.ElementByID(itemID)
	if err != nil {
		return fmt.Errorf("relocate %s: %w", itemID, err)
	}
	dest, err := d.Query(destinationSelector)
	if err != nil {
		return fmt.Errorf("relocate %s: %w", itemID, err)
	}
	d.InsertEnd(dest, el)
	d.ScrollIntoView(el)
	return nil
}
