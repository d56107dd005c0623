// Package project is the board itself: two lists of projects on a host
// page, wired so that each list hands switched items to the other.
package project

import (
	"log/slog"
	"slices"

	"github.com/idilsaglam/projects/internal/clierr"
	"github.com/idilsaglam/projects/internal/component"
	"github.com/idilsaglam/projects/internal/dom"
	"github.com/idilsaglam/projects/internal/model"
)

// ListType tags a list and the items in it.
type ListType string

const (
	Active   ListType = "active"
	Finished ListType = "finished"
)

// Other returns the counterpart list type.
func (t ListType) Other() ListType {
	if t == Active {
		return Finished
	}
	return Active
}

// ContainerSelector matches the section holding the list.
func (t ListType) ContainerSelector() string { return "#" + string(t) + "-projects" }

// ListSelector matches the element items are appended to.
func (t ListType) ListSelector() string { return t.ContainerSelector() + " ul" }

// SwitchLabel is the text of an item's switch control while in a list of type t.
func (t ListType) SwitchLabel() string {
	if t == Active {
		return "Finish"
	}
	return "Activate"
}

// Options are shared by every list and item.
type Options struct {
	Logger  *slog.Logger
	Tooltip component.TooltipOptions
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// TransferFunc receives an item switched out of a list.
type TransferFunc func(item *ListItem) error

// ItemList is the ordered set of projects in one container.
type ItemList struct {
	doc  *dom.Document
	log  *slog.Logger
	opts Options

	listType      ListType
	projects      []*ListItem
	switchHandler TransferFunc
}

// NewItemList builds an item for every project already in the container.
func NewItemList(doc *dom.Document, t ListType, opts Options) (*ItemList, error) {
	l := &ItemList{doc: doc, log: opts.logger(), opts: opts, listType: t}

	nodes, err := doc.QueryAll(t.ContainerSelector() + " li")
	if err != nil {
		return nil, err
	}
	for _, n := range nodes {
		id, ok := doc.Attr(n, "id")
		if !ok || id == "" {
			l.log.Warn("skipping project without id", "list", t)
			continue
		}
		item, err := newListItem(doc, id, l.SwitchProject, t, opts)
		if err != nil {
			return nil, err
		}
		l.projects = append(l.projects, item)
	}
	l.log.Debug("list ready", "list", t, "projects", l.IDs())
	return l, nil
}

// SetSwitchHandler sets where switched items go. It must be set before
// the first switch.
func (l *ItemList) SetSwitchHandler(fn TransferFunc) { l.switchHandler = fn }

func (l *ItemList) Type() ListType { return l.listType }
func (l *ItemList) Len() int       { return len(l.projects) }

// Items returns the projects in order. The slice is a copy.
func (l *ItemList) Items() []*ListItem { return slices.Clone(l.projects) }

// IDs returns the project ids in order.
func (l *ItemList) IDs() []string {
	ids := make([]string, 0, len(l.projects))
	for _, p := range l.projects {
		ids = append(ids, p.ID())
	}
	return ids
}

// Find returns the project with the given id, or nil.
func (l *ItemList) Find(id string) *ListItem {
	if i := l.index(id); i >= 0 {
		return l.projects[i]
	}
	return nil
}

func (l *ItemList) index(id string) int {
	return slices.IndexFunc(l.projects, func(p *ListItem) bool { return p.ID() == id })
}

// AddProject takes ownership of item: its element moves to the end of this
// list's container and its controls are rebound to this list.
func (l *ItemList) AddProject(item *ListItem) error {
	if l.index(item.ID()) >= 0 {
		return clierr.Newf(clierr.DuplicateItem, "project %q is already %s", item.ID(), l.listType)
	}
	if err := l.doc.Relocate(item.ID(), l.listType.ListSelector()); err != nil {
		l.log.Error("move project", "project", item.ID(), "to", l.listType, "error", err)
		return err
	}
	l.projects = append(l.projects, item)
	item.Update(l.SwitchProject, l.listType)
	return nil
}

// SwitchProject hands the project to the switch handler. The project
// leaves this list before the handler runs, and comes back at the same
// position if the handler fails.
func (l *ItemList) SwitchProject(id string) error {
	idx := l.index(id)
	if idx < 0 {
		l.log.Warn("switch: project not in list", "project", id, "list", l.listType)
		return clierr.Newf(clierr.ItemNotFound, "project %q is not %s", id, l.listType).
			WithDetails(map[string]any{"id": id, "list": string(l.listType)})
	}
	if l.switchHandler == nil {
		l.log.Error("switch: no handler", "list", l.listType)
		return clierr.Newf(clierr.HandlerNotSet, "%s list has no switch handler", l.listType)
	}

	item := l.projects[idx]
	l.projects = slices.Delete(slices.Clone(l.projects), idx, idx+1)
	if err := l.switchHandler(item); err != nil {
		l.projects = slices.Insert(l.projects, idx, item)
		return err
	}
	l.log.Info("project switched", "project", id, "from", l.listType, "to", item.Type())
	return nil
}

// SetBox records the layout of a project's element.
func (l *ItemList) SetBox(id string, b dom.Box) {
	if p := l.Find(id); p != nil {
		l.doc.SetBox(p.Element(), b)
	}
}

// SetScrollTop records how far the list container is scrolled.
func (l *ItemList) SetScrollTop(v int) error {
	n, err := l.doc.Query(l.listType.ListSelector())
	if err != nil {
		return err
	}
	l.doc.SetScrollTop(n, v)
	return nil
}

// ScrollTop returns the list container's scroll offset.
func (l *ItemList) ScrollTop() int {
	n, err := l.doc.Query(l.listType.ListSelector())
	if err != nil {
		return 0
	}
	return l.doc.ScrollTop(n)
}

// Snapshot returns the projects as they currently read on the page.
func (l *ItemList) Snapshot() []model.Project {
	out := make([]model.Project, 0, len(l.projects))
	for _, p := range l.projects {
		out = append(out, p.Snapshot())
	}
	return out
}
