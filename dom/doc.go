/*
Package dom describes the host tree which styled elements live in.

Status

Early draft, API may change frequently. Please stay patient.

Overview

Styling metadata is attached to elements of a tree owned by somebody else:
a widget toolkit, an HTML document, a scene graph. We call the owner of
this tree the host. The styling core never walks or mutates the host's tree
directly; it only asks a small set of questions, bundled in interface Host:

   Children(id)       // enumerate the children of a node, in order
   IsContainer(id)    // is this node a layout container?
   IsController(id)   // is this node a top-level controller?
   TypeOf(id)         // runtime type of a node, used as default canonical type

Nodes are referenced by NodeID. An id is a non-owning handle: holding it never
keeps a host node alive, and hosts are free to hand out ids from an arena,
a counter or a hash. Sub-packages contain concrete hosts (package nodetree
for an in-memory widget tree, package htmlhost for HTML documents).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'uistyle.dom'
func tracer() tracing.Trace {
	return tracing.Select("uistyle.dom")
}
