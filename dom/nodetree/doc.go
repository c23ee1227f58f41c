/*
Package nodetree is a straightforward in-memory implementation of a host tree.

Overview

A nodetree.Tree holds widgets, each one with a runtime type and two
classification flags (container, controller). Widgets are linked by a
generic tree.Node, and the tree implements dom.Host. It serves as a reference
host for embedding applications which do not bring a toolkit of their own,
and for testing the styling core.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package nodetree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uistyle.dom'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.dom")
}
