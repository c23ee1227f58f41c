/*
Package htmlhost adapts HTML documents parsed by golang.org/x/net/html to
the host tree interface of package dom.

Every document and element node is assigned a node id when the document is
wrapped. Text, comment and doctype nodes are not part of the host tree.
Attach transfers element ids, style classes and parent links of a document
to a details table, and UserAgent is a minimal cascade resolver which
answers the user-agent default declarations for HTML elements.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package htmlhost

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'uistyle.dom'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.dom")
}
