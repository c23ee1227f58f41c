package details

import (
	"strings"

	"github.com/npillmayer/uistyle/dom"
	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/maybe"
)

var emptySet style.DeclarationSet

// Store holds resolved declaration sets keyed by identity path and
// classification. Structurally identical elements, possibly from different
// tables, may share entries. Entries are never copied on hand-out.
type Store struct {
	entries map[string]style.DeclarationSet
}

// NewStore creates an empty declaration store.
func NewStore() *Store {
	return &Store{entries: make(map[string]style.DeclarationSet)}
}

func (s *Store) Get(key string) (style.DeclarationSet, bool) {
	set, ok := s.entries[key]
	return set, ok
}

func (s *Store) Put(key string, set style.DeclarationSet) {
	s.entries[key] = set
}

func (s *Store) Delete(key string) {
	delete(s.entries, key)
}

// Clear drops all entries.
func (s *Store) Clear() {
	if len(s.entries) > 0 {
		s.entries = make(map[string]style.DeclarationSet)
	}
}

func (s *Store) Len() int {
	return len(s.entries)
}

// cacheKey returns the store key for d, or false if d is not cacheable.
// Rules may match on classes of ancestors, therefore the classes of every
// ancestor are part of the key.
func (t *Table) cacheKey(d *Details) (string, bool) {
	if !d.StylesCacheable() {
		return "", false
	}
	path, _ := d.IdentityPath().Get()
	var b strings.Builder
	b.WriteString(path)
	b.WriteByte('|')
	b.WriteString(d.CanonicalType())
	b.WriteByte('|')
	b.WriteString(strings.Join(d.StyleClasses(), "."))
	b.WriteByte('|')
	for p := d.Parent(); p != nil; p = p.Parent() {
		b.WriteString(strings.Join(p.StyleClasses(), "."))
		b.WriteByte('/')
	}
	if d.disabled.Len() > 0 {
		b.WriteByte('|')
		b.WriteString(d.disabled.String())
	}
	return b.String(), true
}

// CachedDeclarations returns the cached declaration set of d. It returns
// Nothing unless d is cacheable and has been styled since its last
// invalidation. The set is returned as it has been resolved; filtering of
// disabled properties is up to the consumer.
func (t *Table) CachedDeclarations(d *Details) maybe.Maybe[style.DeclarationSet] {
	if d == nil || !d.applied || !d.hasCache || !d.StylesCacheable() {
		return maybe.Nothing[style.DeclarationSet]()
	}
	return maybe.Just(d.cached)
}

// SetCachedDeclarations stores the result of a resolution pass for d and
// marks d as styled.
func (t *Table) SetCachedDeclarations(d *Details, set style.DeclarationSet) {
	if d == nil || d.released {
		return
	}
	d.cached = set
	d.hasCache = true
	d.applied = true
	d.invalidated = false
	d.dynamic = set.HasDynamic()
	if !t.shareCache {
		return
	}
	if key, ok := t.cacheKey(d); ok {
		t.store.Put(key, set)
	}
}

// Invalidate clears the cached declarations and the applied flag of d. The
// shared store entry for d is dropped as well. Invalidation never fails.
func (t *Table) Invalidate(d *Details) {
	if d == nil {
		return
	}
	t.dropShared(d)
	t.reset(d, false, "explicit")
}

// InvalidateSubtree invalidates d and every descendant enumerated by the host.
func (t *Table) InvalidateSubtree(d *Details) {
	if d == nil {
		return
	}
	t.dropShared(d)
	t.reset(d, true, "subtree")
	if t == nil || t.host == nil {
		return
	}
	for _, n := range dom.Descendants(t.host, d.node) {
		if e, ok := t.details[n]; ok {
			t.dropShared(e)
			t.reset(e, true, "subtree")
		}
	}
}

// InvalidateAll invalidates every element of t and clears its store.
func (t *Table) InvalidateAll() {
	for _, d := range t.details {
		t.reset(d, true, "table")
	}
	t.store.Clear()
	tracer().Debugf("invalidated %d elements", len(t.details))
}

func (t *Table) dropShared(d *Details) {
	if t == nil || !t.shareCache || d.released {
		return
	}
	if key, ok := t.cacheKey(d); ok {
		t.store.Delete(key)
	}
}

// reset clears cache and applied state of d. With forgetPath, the memoized
// identity path is dropped as well. Paths are only dropped for complete
// subtrees, so a memoized path below d implies a memoized path for d.
// reset is safe to call on partially initialized details.
func (t *Table) reset(d *Details, forgetPath bool, reason string) {
	if d == nil {
		return
	}
	if d.applied || d.hasCache {
		tracer().Debugf("invalidating node %s (%s)", d.node, reason)
	}
	d.invalidated = d.invalidated || d.applied
	d.applied = false
	d.dynamic = false
	d.cached = emptySet
	d.hasCache = false
	if forgetPath {
		d.path = nil
		d.pathValid = false
	}
}

// memoizes is true if d holds any derived state a reset would clear.
func (d *Details) memoizes() bool {
	return d.pathValid || d.applied || d.hasCache
}

func (t *Table) resetSubtree(d *Details, forgetPath bool, reason string) {
	t.reset(d, forgetPath, reason)
	if t == nil || t.host == nil {
		return
	}
	t.resetBelow(d.node, forgetPath, reason)
}

func (t *Table) resetBelow(id dom.NodeID, forgetPath bool, reason string) {
	for _, n := range dom.Descendants(t.host, id) {
		if e, ok := t.details[n]; ok {
			t.reset(e, forgetPath, reason)
		}
	}
}
