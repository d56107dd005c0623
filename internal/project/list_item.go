package project

import (
	"fmt"
	"log/slog"

	"golang.org/x/net/html"

	"github.com/idilsaglam/projects/internal/component"
	"github.com/idilsaglam/projects/internal/dom"
	"github.com/idilsaglam/projects/internal/model"
)

const extraInfoKey = "extra-info"

// SwitchFunc moves the item with the given id out of its current list.
type SwitchFunc func(id string) error

// ListItem is one project element on the page and the two controls on it.
type ListItem struct {
	doc  *dom.Document
	log  *slog.Logger
	opts component.TooltipOptions

	id       string
	listType ListType
	switchFn SwitchFunc

	hasActiveTooltip bool
	tooltip          *component.Tooltip

	el                       *html.Node
	infoBtn, switchBtn       *html.Node
	infoHandle, switchHandle dom.ListenerID
}

func newListItem(doc *dom.Document, id string, switchFn SwitchFunc, t ListType, opts Options) (*ListItem, error) {
	el, err := doc.ElementByID(id)
	if err != nil {
		return nil, err
	}
	i := &ListItem{
		doc:      doc,
		log:      opts.logger(),
		opts:     opts.Tooltip,
		id:       id,
		listType: t,
		switchFn: switchFn,
		el:       el,
	}
	if i.infoBtn, err = doc.QueryIn(el, "button:first-of-type"); err != nil {
		return nil, fmt.Errorf("project %s: more info control: %w", id, err)
	}
	if i.switchBtn, err = doc.QueryIn(el, "button:last-of-type"); err != nil {
		return nil, fmt.Errorf("project %s: switch control: %w", id, err)
	}
	i.connectMoreInfoButton()
	i.connectSwitchButton(t)
	return i, nil
}

func (i *ListItem) ID() string          { return i.id }
func (i *ListItem) Type() ListType      { return i.listType }
func (i *ListItem) Element() *html.Node { return i.el }

// InfoButton and SwitchButton are the controls clicks are dispatched to.
func (i *ListItem) InfoButton() *html.Node   { return i.infoBtn }
func (i *ListItem) SwitchButton() *html.Node { return i.switchBtn }

// Label is the current text of the switch control.
func (i *ListItem) Label() string { return i.doc.Text(i.switchBtn) }

func (i *ListItem) HasActiveTooltip() bool { return i.hasActiveTooltip }

// Tooltip returns the open tooltip, or nil.
func (i *ListItem) Tooltip() *component.Tooltip { return i.tooltip }

// ShowInfo opens the tooltip unless one is already open.
func (i *ListItem) ShowInfo() error {
	if i.hasActiveTooltip {
		return nil
	}
	text, err := i.doc.Data(i.el, extraInfoKey)
	if err != nil {
		i.log.Warn("more info unavailable", "project", i.id, "error", err)
		return err
	}
	tooltip, err := component.NewTooltip(i.doc, func() {
		i.hasActiveTooltip = false
		i.tooltip = nil
	}, text, i.id, i.opts)
	if err != nil {
		i.log.Error("create tooltip", "project", i.id, "error", err)
		return err
	}
	if err := tooltip.Attach(); err != nil {
		return err
	}
	i.hasActiveTooltip = true
	i.tooltip = tooltip
	i.log.Debug("tooltip opened", "project", i.id)
	return nil
}

// CloseTooltip dismisses the open tooltip the way a click on it would.
func (i *ListItem) CloseTooltip() error {
	if i.tooltip == nil {
		return nil
	}
	return i.doc.Click(i.tooltip.Node())
}

// Update rebinds the item to a new list.
func (i *ListItem) Update(switchFn SwitchFunc, t ListType) {
	i.switchFn = switchFn
	i.listType = t
	i.connectMoreInfoButton()
	i.connectSwitchButton(t)
}

func (i *ListItem) connectMoreInfoButton() {
	if i.infoHandle != 0 {
		i.doc.RemoveListener(i.infoBtn, i.infoHandle)
	}
	i.infoHandle = i.doc.AddListener(i.infoBtn, i.ShowInfo)
}

func (i *ListItem) connectSwitchButton(t ListType) {
	if i.switchHandle != 0 {
		i.doc.RemoveListener(i.switchBtn, i.switchHandle)
	}
	i.doc.SetText(i.switchBtn, t.SwitchLabel())
	i.switchHandle = i.doc.AddListener(i.switchBtn, func() error {
		return i.switchFn(i.id)
	})
}

// Snapshot reads the item's current state off the page.
func (i *ListItem) Snapshot() model.Project {
	p := model.Project{
		ID:     i.id,
		Status: string(i.listType),
		Action: i.Label(),
	}
	if h, err := i.doc.QueryIn(i.el, "h2"); err == nil {
		p.Title = i.doc.Text(h)
	}
	if d, err := i.doc.QueryIn(i.el, "p"); err == nil {
		p.Description = i.doc.Text(d)
	}
	p.ExtraInfo, _ = i.doc.Attr(i.el, "data-"+extraInfoKey)
	if i.tooltip != nil {
		x, y := i.tooltip.Position()
		p.Tooltip = &model.Tooltip{Text: i.tooltip.Text(), X: x, Y: y}
	}
	return p
}
