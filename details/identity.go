package details

import (
	"fmt"

	"github.com/npillmayer/uistyle/dom"
	"github.com/npillmayer/uistyle/maybe"
)

// IdentityPath returns the style identity path of d, or Nothing if the path
// cannot be resolved. The path is computed lazily and kept until the next
// invalidation of d.
func (d *Details) IdentityPath() maybe.Maybe[string] {
	if d.pathValid {
		return d.path
	}
	d.path = d.computeIdentityPath()
	d.pathValid = true
	return d.path
}

func (d *Details) computeIdentityPath() maybe.Maybe[string] {
	if d.released {
		return maybe.Nothing[string]()
	}
	if d.customIdentity != "" {
		return maybe.Just(d.customIdentity)
	}
	if d.elementID != "" {
		return maybe.Just(d.elementID)
	}
	parent := d.Parent()
	if parent == nil {
		return maybe.Nothing[string]()
	}
	pos, count := d.TypeQualifiedPosition()
	if pos == 0 {
		return maybe.Nothing[string]()
	}
	segment := fmt.Sprintf("%s#%d-%d", d.CanonicalType(), pos, count)
	return maybe.Map(func(prefix string) string {
		return prefix + "/" + segment
	}, parent.IdentityPath())
}

// ResolveStyleIdentityPath returns the identity path of d or
// ErrIdentityUnresolved.
func (t *Table) ResolveStyleIdentityPath(d *Details) (string, error) {
	if d == nil {
		return "", ErrIdentityUnresolved
	}
	if d.released {
		return "", ErrElementReleased
	}
	if path, ok := d.IdentityPath().Get(); ok {
		return path, nil
	}
	return "", ErrIdentityUnresolved
}

// TypeQualifiedPosition returns the 1-based ordinal of d among the children
// of its parent sharing d's canonical type, together with the number of
// those siblings. It returns (0, 0) if d is not attached to a parent or the
// host does not list d as a child of its parent.
func (d *Details) TypeQualifiedPosition() (int, int) {
	parent := d.Parent()
	if parent == nil || d.table.host == nil {
		return 0, 0
	}
	typ := d.CanonicalType()
	pos, count := 0, 0
	for _, ch := range d.table.host.Children(parent.node) {
		if d.table.typeOf(ch) != typ {
			continue
		}
		count++
		if ch == d.node {
			pos = count
		}
	}
	if pos == 0 {
		return 0, 0
	}
	return pos, count
}

func (t *Table) typeOf(id dom.NodeID) string {
	if d, ok := t.details[id]; ok {
		return d.CanonicalType()
	}
	return t.host.TypeOf(id)
}

// SetElementID assigns a stable element id. The id becomes the identity path
// of d and the root of the paths of its descendants.
func (d *Details) SetElementID(id string) {
	if d.elementID == id {
		return
	}
	d.elementID = id
	d.table.InvalidateSubtree(d)
}

// SetCustomElementStyleIdentity overrides the identity path of d. Elements
// below d use the override as their path prefix but are no longer cacheable,
// see StylesCacheable.
func (d *Details) SetCustomElementStyleIdentity(identity string) {
	if d.customIdentity == identity {
		return
	}
	d.customIdentity = identity
	d.table.InvalidateSubtree(d)
}

// CustomElementStyleIdentity returns the identity override, or "".
func (d *Details) CustomElementStyleIdentity() string {
	return d.customIdentity
}

// AncestorHasElementID is true if any ancestor of d carries an element id.
func (d *Details) AncestorHasElementID() bool {
	for p := d.Parent(); p != nil; p = p.Parent() {
		if p.elementID != "" {
			return true
		}
	}
	return false
}

// AncestorUsesCustomElementStyleIdentity is true if any ancestor of d
// overrides its identity path.
func (d *Details) AncestorUsesCustomElementStyleIdentity() bool {
	for p := d.Parent(); p != nil; p = p.Parent() {
		if p.customIdentity != "" {
			return true
		}
	}
	return false
}
