/*
Package details tracks per-element styling metadata for a UI tree.

Status

Work in progress.

Overview

For every styleable node of a host tree (see package dom) a Table holds one
Details record. A Details knows the element's position in the styling
hierarchy, its style classification (classes, canonical type, disabled
properties), the last resolved declaration set and the reactive values it
observes. The styling pass asks a Table whether a previously resolved
declaration set may be reused; if not, it calls out to an external cascade
Resolver and caches the result.

Identity paths

Cache reuse is keyed by an element's style identity path. An element
carrying an element id is identified by that id. Any other element appends
a segment to its parent's path,

    <canonical type>#<ordinal>-<count>

where ordinal and count refer to the siblings sharing the same canonical
type. For a container "root" with two unnamed cells the paths are

    root/Cell#1-2
    root/Cell#2-2

An element without an id whose ancestor chain ends in a parentless node
has no identity path and will never be served from a cache.

Threading

All operations are meant to be called from the single thread driving the
styling. The only shared state is the process-wide reset coordinator,
which is guarded internally.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package details

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'uistyle.details'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.details")
}
