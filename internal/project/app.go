package project

import (
	"fmt"

	"github.com/idilsaglam/projects/internal/clierr"
	"github.com/idilsaglam/projects/internal/dom"
)

// App is the pair of lists on one page.
type App struct {
	doc      *dom.Document
	active   *ItemList
	finished *ItemList
}

// NewApp builds both lists and wires each to hand switched items to the other.
func NewApp(doc *dom.Document, opts Options) (*App, error) {
	active, err := NewItemList(doc, Active, opts)
	if err != nil {
		return nil, fmt.Errorf("active list: %w", err)
	}
	finished, err := NewItemList(doc, Finished, opts)
	if err != nil {
		return nil, fmt.Errorf("finished list: %w", err)
	}
	active.SetSwitchHandler(finished.AddProject)
	finished.SetSwitchHandler(active.AddProject)
	return &App{doc: doc, active: active, finished: finished}, nil
}

func (a *App) Document() *dom.Document { return a.doc }

// List returns the list of type t.
func (a *App) List(t ListType) *ItemList {
	if t == Finished {
		return a.finished
	}
	return a.active
}

// Find locates a project in either list.
func (a *App) Find(id string) (*ListItem, error) {
	for _, l := range []*ItemList{a.active, a.finished} {
		if p := l.Find(id); p != nil {
			return p, nil
		}
	}
	return nil, clierr.Newf(clierr.ItemNotFound, "no project %q", id).
		WithDetails(map[string]any{"id": id})
}

// Switch clicks the project's switch control.
func (a *App) Switch(id string) error {
	p, err := a.Find(id)
	if err != nil {
		return err
	}
	return a.doc.Click(p.SwitchButton())
}

// ShowInfo clicks the project's more info control.
func (a *App) ShowInfo(id string) error {
	p, err := a.Find(id)
	if err != nil {
		return err
	}
	return a.doc.Click(p.InfoButton())
}

// CloseTooltip clicks the project's open tooltip, if it has one.
func (a *App) CloseTooltip(id string) error {
	p, err := a.Find(id)
	if err != nil {
		return err
	}
	return p.CloseTooltip()
}
