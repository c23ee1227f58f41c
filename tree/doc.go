/*
Package tree implements an all-purpose mutable tree type.

Nodes carry a payload of a type parameter T and maintain an ordered slice of
children together with a back-link to their parent. The tree is meant to be
used from a single goroutine (usually the UI thread); it does no locking.

Hosts for styled elements build on this type the same way styled trees do:
by composition, i.e. a host node references a tree.Node and the tree node's
payload references the host node.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uistyle.tree'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.tree")
}
