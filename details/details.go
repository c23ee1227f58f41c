package details

import (
	"sort"

	"github.com/npillmayer/uistyle/dom"
	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/maybe"
	"github.com/npillmayer/uistyle/reactive"
)

// Keys for auxiliary element state, see AdditionalDetails and Prototypes.
const (
	IndexPathKey            = "uistyle.indexPath"
	PrototypeInitializedKey = "uistyle.prototypeInitialized"
)

// State is the styling classification state of an element.
type State uint8

// States of an element's styling life cycle:
//
//     Unstyled → AppliedStatic|AppliedDynamic → Invalidated → Applied…|Disabled
//
const (
	Unstyled State = iota
	AppliedStatic
	AppliedDynamic
	Invalidated
	Disabled
)

func (s State) String() string {
	switch s {
	case Unstyled:
		return "unstyled"
	case AppliedStatic:
		return "applied(static)"
	case AppliedDynamic:
		return "applied(dynamic)"
	case Invalidated:
		return "invalidated"
	case Disabled:
		return "disabled"
	}
	return "?"
}

// Details holds the styling metadata for a single node of a host tree.
// Details are created by a Table and live as long as their node is
// registered with the table.
type Details struct {
	table  *Table
	node   dom.NodeID
	parent dom.NodeID // resolved through the table, never held directly

	elementID      string
	customIdentity string
	canonicalType  string
	classes        map[string]struct{}
	disabled       style.PropertySet

	cached      style.DeclarationSet
	hasCache    bool
	applied     bool
	dynamic     bool
	invalidated bool
	noStyling   bool

	path      maybe.Maybe[string]
	pathValid bool

	observers  map[style.PropertyID]reactive.Subscription
	additional map[string]interface{}
	prototypes map[string]interface{}
	willApply  func(*Details)
	didApply   func(*Details)

	released bool
}

func newDetails(t *Table, id dom.NodeID) *Details {
	return &Details{
		table: t,
		node:  id,
	}
}

// Node returns the host node this record belongs to.
func (d *Details) Node() dom.NodeID {
	return d.node
}

// Table returns the table d belongs to.
func (d *Details) Table() *Table {
	return d.table
}

// Released is true after the element has been released from its table.
func (d *Details) Released() bool {
	return d.released
}

// --- Classification --------------------------------------------------------

// ElementID returns the user assigned element id, or "".
func (d *Details) ElementID() string {
	return d.elementID
}

// CanonicalType is the type used for rule matching. It defaults to the
// runtime type reported by the host.
func (d *Details) CanonicalType() string {
	if d.canonicalType != "" {
		return d.canonicalType
	}
	if d.table != nil && d.table.host != nil {
		return d.table.host.TypeOf(d.node)
	}
	return ""
}

// SetCanonicalType overrides the type used for rule matching. Changing it
// alters identity paths of d and its siblings.
func (d *Details) SetCanonicalType(typ string) {
	if d.canonicalType == typ {
		return
	}
	old := d.CanonicalType()
	d.canonicalType = typ
	d.table.siblingsChanged(d, d.parent, old, d.CanonicalType())
}

// StyleClasses returns the style classes of d in lexical order.
func (d *Details) StyleClasses() []string {
	if len(d.classes) == 0 {
		return nil
	}
	cl := make([]string, 0, len(d.classes))
	for c := range d.classes {
		cl = append(cl, c)
	}
	sort.Strings(cl)
	return cl
}

// HasStyleClass is a predicate.
func (d *Details) HasStyleClass(class string) bool {
	_, ok := d.classes[class]
	return ok
}

// SetStyleClasses replaces the style classes of d. Changing the classes of d
// invalidates the styles of d and of its descendants.
func (d *Details) SetStyleClasses(classes ...string) {
	next := make(map[string]struct{}, len(classes))
	for _, c := range classes {
		if c != "" {
			next[c] = struct{}{}
		}
	}
	if sameClasses(d.classes, next) {
		return
	}
	d.classes = next
	d.table.resetSubtree(d, false, "style classes")
}

// AddStyleClass adds a style class to d.
func (d *Details) AddStyleClass(class string) {
	if class == "" || d.HasStyleClass(class) {
		return
	}
	if d.classes == nil {
		d.classes = make(map[string]struct{})
	}
	d.classes[class] = struct{}{}
	d.table.resetSubtree(d, false, "style classes")
}

// RemoveStyleClass removes a style class from d.
func (d *Details) RemoveStyleClass(class string) {
	if !d.HasStyleClass(class) {
		return
	}
	delete(d.classes, class)
	d.table.resetSubtree(d, false, "style classes")
}

func sameClasses(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for c := range a {
		if _, ok := b[c]; !ok {
			return false
		}
	}
	return true
}

// --- Disabled properties ---------------------------------------------------

// AddDisabledProperty excludes a property from resolution for d.
func (d *Details) AddDisabledProperty(p style.PropertyID) {
	if d.disabled.Add(p) {
		d.table.reset(d, false, "disabled properties")
	}
}

// RemoveDisabledProperty re-enables a property for d.
func (d *Details) RemoveDisabledProperty(p style.PropertyID) {
	if d.disabled.Remove(p) {
		d.table.reset(d, false, "disabled properties")
	}
}

// HasDisabledProperty checks by property identity, not by value.
func (d *Details) HasDisabledProperty(p style.PropertyID) bool {
	return d.disabled.Contains(p)
}

// ClearDisabledProperties re-enables all properties for d.
func (d *Details) ClearDisabledProperties() {
	if d.disabled.Clear() {
		d.table.reset(d, false, "disabled properties")
	}
}

// DisabledProperties returns the disabled properties in lexical order.
func (d *Details) DisabledProperties() []style.PropertyID {
	return d.disabled.Sorted()
}

// --- Flags -----------------------------------------------------------------

// SetStylingDisabled switches styling of d off or on. While disabled,
// styling passes skip the element.
func (d *Details) SetStylingDisabled(disabled bool) {
	d.noStyling = disabled
}

func (d *Details) StylingDisabled() bool {
	return d.noStyling
}

// StylingApplied is true after a successful styling pass and until the next
// invalidation.
func (d *Details) StylingApplied() bool {
	return d.applied
}

// StylesContainPseudoClassesOrDynamicProperties reports if the last resolved
// declaration set depends on runtime conditions.
func (d *Details) StylesContainPseudoClassesOrDynamicProperties() bool {
	return d.dynamic
}

// StylingAppliedAndStatic is true if a cached declaration set may be reused
// verbatim.
func (d *Details) StylingAppliedAndStatic() bool {
	return d.applied && !d.dynamic
}

// StylesFullyResolved is the same derivation as StylingAppliedAndStatic.
func (d *Details) StylesFullyResolved() bool {
	return d.StylingAppliedAndStatic()
}

// StylingAppliedAndDisabled is true for disabled elements which have been
// styled before styling was switched off.
func (d *Details) StylingAppliedAndDisabled() bool {
	return d.applied && d.noStyling
}

// StylesCacheable is true iff d has an identity path, no ancestor uses a
// custom identity and styling is not disabled.
func (d *Details) StylesCacheable() bool {
	if d.noStyling || d.released {
		return false
	}
	if d.IdentityPath().IsNothing() {
		return false
	}
	return !d.AncestorUsesCustomElementStyleIdentity()
}

// State returns the classification state of d.
func (d *Details) State() State {
	switch {
	case d.noStyling:
		return Disabled
	case d.applied && d.dynamic:
		return AppliedDynamic
	case d.applied:
		return AppliedStatic
	case d.invalidated:
		return Invalidated
	}
	return Unstyled
}

// --- Auxiliary state -------------------------------------------------------

// AdditionalDetails is an open map for collaborators to stash per-element
// state, e.g. under IndexPathKey.
func (d *Details) AdditionalDetails() map[string]interface{} {
	if d.additional == nil {
		d.additional = make(map[string]interface{})
	}
	return d.additional
}

// Prototypes maps prototype names to prototype state, e.g. under
// PrototypeInitializedKey.
func (d *Details) Prototypes() map[string]interface{} {
	if d.prototypes == nil {
		d.prototypes = make(map[string]interface{})
	}
	return d.prototypes
}

// SetWillApplyStyling installs a hook called before each styling pass of d.
func (d *Details) SetWillApplyStyling(hook func(*Details)) {
	d.willApply = hook
}

// SetDidApplyStyling installs a hook called after each successful styling
// pass of d.
func (d *Details) SetDidApplyStyling(hook func(*Details)) {
	d.didApply = hook
}

func (d *Details) String() string {
	p, ok := d.IdentityPath().Get()
	if !ok {
		p = "?"
	}
	return "details(" + d.node.String() + ":" + p + ")"
}
