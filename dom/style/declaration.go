package style

import (
	"fmt"
	"strings"
)

// Declaration is a resolved style declaration for an element. Declarations
// are produced by a cascade resolver; the styling core stores them but does
// not interpret them.
type Declaration struct {
	Property  PropertyID // the declared property
	Value     Property   // raw value, e.g. "15px"
	Condition string     // pseudo-class condition, e.g. "highlighted"; empty if unconditional
	Dynamic   bool       // value is bound to a reactive source
}

// IsDynamic is true for declarations whose applicability or value depends on
// runtime state: pseudo-class conditions and reactive values.
func (d Declaration) IsDynamic() bool {
	return d.Dynamic || d.Condition != ""
}

func (d Declaration) String() string {
	s := string(d.Property)
	if d.Condition != "" {
		s += ":" + d.Condition
	}
	s += "=" + d.Value.String()
	if d.Dynamic {
		s += "(~)"
	}
	return s
}

// DeclarationSet is an ordered, immutable sequence of declarations. Sets are
// passed by value and share their backing store, so handing a set to a cache
// or invalidating a cache never copies declarations. The zero value is an
// empty set.
type DeclarationSet struct {
	decls   []Declaration
	dynamic bool
}

// NewDeclarationSet creates a declaration set from a sequence of declarations.
// The input is copied once, at construction time.
func NewDeclarationSet(decls ...Declaration) DeclarationSet {
	if len(decls) == 0 {
		return DeclarationSet{}
	}
	set := DeclarationSet{decls: make([]Declaration, len(decls))}
	copy(set.decls, decls)
	for _, d := range decls {
		if d.IsDynamic() {
			set.dynamic = true
			break
		}
	}
	return set
}

// Len returns the number of declarations.
func (set DeclarationSet) Len() int {
	return len(set.decls)
}

// Empty is a predicate: does the set contain no declarations?
func (set DeclarationSet) Empty() bool {
	return len(set.decls) == 0
}

// At returns the i-th declaration. It panics if i is out of range.
func (set DeclarationSet) At(i int) Declaration {
	if i < 0 || i >= len(set.decls) {
		panic(fmt.Sprintf("declaration index out of bounds: %d with length %d", i, len(set.decls)))
	}
	return set.decls[i]
}

// Each calls f for every declaration, in order, until f returns false.
func (set DeclarationSet) Each(f func(int, Declaration) bool) {
	for i, d := range set.decls {
		if !f(i, d) {
			return
		}
	}
}

// Declarations returns a copy of the declarations.
func (set DeclarationSet) Declarations() []Declaration {
	if len(set.decls) == 0 {
		return nil
	}
	r := make([]Declaration, len(set.decls))
	copy(r, set.decls)
	return r
}

// Lookup finds the effective declaration for a property. With multiple
// declarations for the same property, the last one wins.
func (set DeclarationSet) Lookup(id PropertyID) (Declaration, bool) {
	for i := len(set.decls) - 1; i >= 0; i-- {
		if set.decls[i].Property == id {
			return set.decls[i], true
		}
	}
	return Declaration{}, false
}

// HasDynamic is true if at least one declaration is dynamic (see
// Declaration.IsDynamic).
func (set DeclarationSet) HasDynamic() bool {
	return set.dynamic
}

// Same is true if both sets share the same backing store, i.e. one has been
// handed out as the other without re-resolution.
func (set DeclarationSet) Same(other DeclarationSet) bool {
	if len(set.decls) != len(other.decls) {
		return false
	}
	return len(set.decls) == 0 || &set.decls[0] == &other.decls[0]
}

func (set DeclarationSet) String() string {
	s := make([]string, len(set.decls))
	for i, d := range set.decls {
		s[i] = d.String()
	}
	return "[" + strings.Join(s, " ") + "]"
}
