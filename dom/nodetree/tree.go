package nodetree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/uistyle/dom"
	"github.com/npillmayer/uistyle/tree"
)

// Widget is a node of a host tree.
type Widget struct {
	tree.Node[*Widget] // we build on top of general purpose tree
	id                 dom.NodeID
	Type               string // runtime type, e.g. "Button"
	container          bool
	controller         bool
}

// ID returns the node id of the widget.
func (w *Widget) ID() dom.NodeID {
	return w.id
}

// IsContainer reports whether the widget is a layout container.
func (w *Widget) IsContainer() bool {
	return w.container
}

// IsController reports whether the widget is a top-level controller.
func (w *Widget) IsController() bool {
	return w.controller
}

func (w *Widget) String() string {
	return fmt.Sprintf("%s%s", w.Type, w.id)
}

// WidgetOption configures a widget at creation time.
type WidgetOption func(*Widget)

// Container flags a widget as a layout container.
func Container() WidgetOption {
	return func(w *Widget) { w.container = true }
}

// Controller flags a widget as a top-level controller.
func Controller() WidgetOption {
	return func(w *Widget) { w.controller = true }
}

// Tree is a host tree of widgets. The zero value is not usable, use New.
type Tree struct {
	widgets map[dom.NodeID]*Widget
	next    dom.NodeID
}

// New creates an empty widget tree.
func New() *Tree {
	return &Tree{widgets: make(map[dom.NodeID]*Widget)}
}

// NewWidget creates a widget of a given runtime type. The widget is not
// connected to any other widget.
func (t *Tree) NewWidget(typ string, opts ...WidgetOption) *Widget {
	t.next++
	w := &Widget{id: t.next, Type: typ}
	w.Payload = w // Payload will always reference the widget itself
	for _, opt := range opts {
		opt(w)
	}
	t.widgets[w.id] = w
	return w
}

// Widget returns the widget for an id, if it is known to the tree.
func (t *Tree) Widget(id dom.NodeID) (*Widget, bool) {
	w, ok := t.widgets[id]
	return w, ok
}

// Len returns the number of live widgets.
func (t *Tree) Len() int {
	return len(t.widgets)
}

// AddChild appends child to the children of parent. A child with another
// parent is moved.
func (t *Tree) AddChild(parent, child *Widget) {
	parent.Node.AddChild(&child.Node)
}

// InsertChildAt inserts child at position i of the children of parent.
func (t *Tree) InsertChildAt(parent *Widget, i int, child *Widget) {
	parent.Node.InsertChildAt(i, &child.Node)
}

// Remove detaches a widget from its parent. The widget and its subtree
// stay alive and may be added somewhere else.
func (t *Tree) Remove(w *Widget) {
	w.Node.Isolate()
}

// Destroy detaches a widget from its parent and forgets it, together with
// its complete subtree. It returns the ids of all destroyed widgets, parents
// first, which clients use to release per-node side tables.
func (t *Tree) Destroy(w *Widget) []dom.NodeID {
	w.Node.Isolate()
	var ids []dom.NodeID
	w.Node.TopDown(func(n *tree.Node[*Widget]) bool {
		ids = append(ids, n.Payload.id)
		delete(t.widgets, n.Payload.id)
		return true
	})
	tracer().Debugf("destroyed %d widgets", len(ids))
	return ids
}

// --- dom.Host --------------------------------------------------------------

// Children is part of interface dom.Host.
func (t *Tree) Children(id dom.NodeID) []dom.NodeID {
	w, ok := t.widgets[id]
	if !ok || w.ChildCount() == 0 {
		return nil
	}
	children := make([]dom.NodeID, 0, w.ChildCount())
	for _, ch := range w.Node.Children() {
		children = append(children, ch.Payload.id)
	}
	return children
}

// IsContainer is part of interface dom.Host.
func (t *Tree) IsContainer(id dom.NodeID) bool {
	w, ok := t.widgets[id]
	return ok && w.container
}

// IsController is part of interface dom.Host.
func (t *Tree) IsController(id dom.NodeID) bool {
	w, ok := t.widgets[id]
	return ok && w.controller
}

// TypeOf is part of interface dom.Host.
func (t *Tree) TypeOf(id dom.NodeID) string {
	if w, ok := t.widgets[id]; ok {
		return w.Type
	}
	return ""
}

var _ dom.Host = &Tree{}
