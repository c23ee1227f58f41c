package details

import (
	"strings"

	"github.com/npillmayer/uistyle/dom"
	"github.com/npillmayer/uistyle/dom/style"
)

// Resolver is the external cascade resolver. ResolveDeclarations matches the
// style rules against an element's classification and returns the ordered
// declarations. This is the expensive operation a Table tries to avoid.
type Resolver interface {
	ResolveDeclarations(*Details) (style.DeclarationSet, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(*Details) (style.DeclarationSet, error)

// ResolveDeclarations calls f(d).
func (f ResolverFunc) ResolveDeclarations(d *Details) (style.DeclarationSet, error) {
	return f(d)
}

// Reevaluator may optionally be implemented by resolvers. A cached
// declaration set containing dynamic declarations is a set of candidates;
// Reevaluate selects the currently effective declarations from it. Resolvers
// without this capability get dynamic sets re-resolved on every pass.
type Reevaluator interface {
	Reevaluate(*Details, style.DeclarationSet) (style.DeclarationSet, error)
}

// Table maps the nodes of a host tree to their styling details. A table is
// created per host tree; details are created lazily on first access.
type Table struct {
	host        dom.Host
	resolver    Resolver
	details     map[dom.NodeID]*Details
	store       *Store
	shareCache  bool
	syncRestyle bool
	restyle     func(*Details)
}

// NewTable creates a details table for a host tree. resolver may be nil for
// clients which only use the cache bookkeeping.
func NewTable(host dom.Host, resolver Resolver, opts ...Option) *Table {
	t := &Table{
		host:        host,
		resolver:    resolver,
		details:     make(map[dom.NodeID]*Details),
		shareCache:  true,
		syncRestyle: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.store == nil {
		t.store = NewStore()
	}
	registerStore(t.store)
	return t
}

// Host returns the host tree of t.
func (t *Table) Host() dom.Host {
	return t.host
}

// Store returns the declaration store of t.
func (t *Table) Store() *Store {
	return t.store
}

// Details returns the details for a node, creating them if necessary.
// There is exactly one Details per node and table. Details returns nil for
// dom.NoNode.
func (t *Table) Details(id dom.NodeID) *Details {
	if id == dom.NoNode {
		tracer().Errorf("requested details for non-existing node")
		return nil
	}
	if d, ok := t.details[id]; ok {
		return d
	}
	d := newDetails(t, id)
	t.details[id] = d
	register(d)
	return d
}

// Lookup returns the details for a node, if they exist.
func (t *Table) Lookup(id dom.NodeID) (*Details, bool) {
	d, ok := t.details[id]
	return d, ok
}

// Len returns the number of nodes with details.
func (t *Table) Len() int {
	return len(t.details)
}

// Release ends the lifetime of a node's details. All observer subscriptions
// are torn down before the details are dropped. Clients should call Release
// whenever the host destroys a node.
func (t *Table) Release(id dom.NodeID) {
	d, ok := t.details[id]
	if !ok {
		return
	}
	t.stopAllObservers(d)
	typ := d.CanonicalType()
	t.resetBelow(id, true, "release")
	delete(t.details, id)
	parent := d.parent
	d.released = true
	d.parent = dom.NoNode
	d.cached, d.hasCache, d.applied = emptySet, false, false
	d.path, d.pathValid = nil, false
	tracer().Debugf("released details for node %s", id)
	if p, ok := t.details[parent]; ok && !p.released {
		t.siblingsChanged(nil, parent, typ)
	}
}

// CopyDetails copies the classification of one element to another, as is
// done when a prototype element is cloned. Hierarchy, cache and observers
// are not copied.
func (t *Table) CopyDetails(from, to *Details) {
	if from == nil || to == nil || from == to {
		return
	}
	to.elementID = from.elementID
	to.customIdentity = from.customIdentity
	to.canonicalType = from.canonicalType
	to.classes = nil
	for c := range from.classes {
		if to.classes == nil {
			to.classes = make(map[string]struct{}, len(from.classes))
		}
		to.classes[c] = struct{}{}
	}
	to.disabled = from.disabled.Clone()
	to.noStyling = from.noStyling
	to.willApply, to.didApply = from.willApply, from.didApply
	if len(from.prototypes) > 0 {
		for k, v := range from.prototypes {
			to.Prototypes()[k] = v
		}
	}
	to.table.InvalidateSubtree(to)
}

// ChildForKeyPath finds a descendant of d by a dot-separated path of element
// ids, e.g. "header.title". Each segment is searched for in the subtree below
// the element found for the previous segment.
func (t *Table) ChildForKeyPath(d *Details, keyPath string) (*Details, bool) {
	if d == nil || keyPath == "" {
		return nil, false
	}
	current := d
	for _, key := range strings.Split(keyPath, ".") {
		var found *Details
		dom.Walk(t.host, current.node, func(n dom.NodeID) bool {
			if found != nil {
				return false
			}
			if n == current.node {
				return true
			}
			if c, ok := t.details[n]; ok && c.elementID == key {
				found = c
				return false
			}
			return true
		})
		if found == nil {
			return nil, false
		}
		current = found
	}
	return current, true
}
