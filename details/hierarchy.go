package details

import (
	"errors"

	"github.com/npillmayer/uistyle/dom"
)

// ErrInvalidParent is returned by SetParent for parents which would create a
// cycle or which belong to another table.
var ErrInvalidParent = errors.New("invalid parent for element details")

// Parent returns the styling parent of d, or nil. A parent which has been
// released reads as nil.
func (d *Details) Parent() *Details {
	if d.parent == dom.NoNode || d.table == nil {
		return nil
	}
	p, ok := d.table.details[d.parent]
	if !ok || p.released {
		return nil
	}
	return p
}

// SetParent links d to a new styling parent, which may be nil. The link is
// never derived from the host tree; clients call SetParent whenever they
// re-parent a node. Identity paths of d, of its descendants and of its old
// and new siblings are invalidated.
func (d *Details) SetParent(parent *Details) error {
	if d.released {
		return ErrElementReleased
	}
	next := dom.NoNode
	if parent != nil {
		if parent.table != d.table || parent.released {
			return ErrInvalidParent
		}
		for p := parent; p != nil; p = p.Parent() {
			if p == d {
				return ErrInvalidParent
			}
		}
		next = parent.node
	}
	if next == d.parent {
		return nil
	}
	old := d.parent
	d.parent = next
	tracer().Debugf("re-parenting node %s: %s → %s", d.node, old, next)
	typ := d.CanonicalType()
	d.table.siblingsChanged(d, old, typ)
	d.table.siblingsChanged(nil, next, typ)
	return nil
}

// AddedToHierarchy is true if d has a live parent.
func (d *Details) AddedToHierarchy() bool {
	return d.Parent() != nil
}

// ClosestContainerAncestor returns the first ancestor of d the host
// considers a layout container, or nil.
func (d *Details) ClosestContainerAncestor() *Details {
	return d.closestAncestor(func(h dom.Host, id dom.NodeID) bool {
		return h.IsContainer(id)
	})
}

// ClosestControllerAncestor returns the first ancestor of d the host
// considers a top-level controller, or nil.
func (d *Details) ClosestControllerAncestor() *Details {
	return d.closestAncestor(func(h dom.Host, id dom.NodeID) bool {
		return h.IsController(id)
	})
}

// DirectParentController returns the parent of d if it is a controller.
func (d *Details) DirectParentController() *Details {
	p := d.Parent()
	if p == nil || d.table.host == nil || !d.table.host.IsController(p.node) {
		return nil
	}
	return p
}

func (d *Details) closestAncestor(pred func(dom.Host, dom.NodeID) bool) *Details {
	if d.table == nil || d.table.host == nil {
		return nil
	}
	for p := d.Parent(); p != nil; p = p.Parent() {
		if pred(d.table.host, p.node) {
			return p
		}
	}
	return nil
}

// siblingsChanged invalidates d (if non-nil) with its subtree, and those
// children of parent with their subtrees whose type-qualified position may
// have shifted, i.e. children of one of the given types. An empty type
// matches every child. Children without memoized state are skipped.
func (t *Table) siblingsChanged(d *Details, parent dom.NodeID, types ...string) {
	if d != nil {
		t.resetSubtree(d, true, "hierarchy")
	}
	if t == nil || t.host == nil || parent == dom.NoNode {
		return
	}
	for _, ch := range t.host.Children(parent) {
		if d != nil && ch == d.node {
			continue
		}
		sib, ok := t.details[ch]
		if !ok || !sib.memoizes() || !matchesType(t.typeOf(ch), types) {
			continue
		}
		t.resetSubtree(sib, true, "hierarchy")
	}
}

func matchesType(typ string, types []string) bool {
	for _, candidate := range types {
		if candidate == "" || candidate == typ {
			return true
		}
	}
	return false
}
