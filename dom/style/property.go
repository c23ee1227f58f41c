package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'uistyle.dom'
func tracer() tracing.Trace {
	return tracing.Select("uistyle.dom")
}

// PropertyID identifies a declared style property, e.g. "color" or
// "margin-top". Properties are compared by identity only; two declarations
// for the same PropertyID address the same property, regardless of value.
type PropertyID string

// Property is a raw value for a style property. For example, with
//
//     color: black
//
// a property value of "black" is set. Values are opaque to the styling
// core, which never interprets them.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// --- Property sets ---------------------------------------------------------

// PropertySet is a set of property identifiers. The zero value is an empty
// set ready to use. Mutators report whether membership changed, which
// clients use to decide if cached styling has become stale.
type PropertySet struct {
	m map[PropertyID]struct{}
}

// Add inserts id. It returns false if id has already been a member.
func (ps *PropertySet) Add(id PropertyID) bool {
	if ps.Contains(id) {
		return false
	}
	if ps.m == nil {
		ps.m = make(map[PropertyID]struct{})
	}
	ps.m[id] = struct{}{}
	return true
}

// Remove deletes id. It returns false if id has not been a member.
func (ps *PropertySet) Remove(id PropertyID) bool {
	if !ps.Contains(id) {
		return false
	}
	delete(ps.m, id)
	return true
}

// Contains is a predicate for membership of id.
func (ps *PropertySet) Contains(id PropertyID) bool {
	if ps == nil || ps.m == nil {
		return false
	}
	_, ok := ps.m[id]
	return ok
}

// Clear removes all members. It returns false if the set has been empty.
func (ps *PropertySet) Clear() bool {
	if ps.Len() == 0 {
		return false
	}
	ps.m = nil
	return true
}

// Len returns the number of members.
func (ps *PropertySet) Len() int {
	if ps == nil {
		return 0
	}
	return len(ps.m)
}

// Sorted returns the members in lexical order.
func (ps *PropertySet) Sorted() []PropertyID {
	if ps.Len() == 0 {
		return nil
	}
	r := make([]PropertyID, 0, len(ps.m))
	for id := range ps.m {
		r = append(r, id)
	}
	sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
	return r
}

// Clone returns an independent copy of the set.
func (ps *PropertySet) Clone() PropertySet {
	var c PropertySet
	for _, id := range ps.Sorted() {
		c.Add(id)
	}
	return c
}

func (ps *PropertySet) String() string {
	ids := ps.Sorted()
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = string(id)
	}
	return "{" + strings.Join(s, ",") + "}"
}
