package main

import (
	"github.com/npillmayer/uistyle/details"
	"github.com/npillmayer/uistyle/dom"
	"github.com/npillmayer/uistyle/dom/htmlhost"
)

type summary struct {
	elements   int
	cacheable  int
	unresolved int
	dynamic    int
}

func summarize(tbl *details.Table, doc *htmlhost.Document) summary {
	var s summary
	dom.Walk(doc, doc.Root(), func(id dom.NodeID) bool {
		d, ok := tbl.Lookup(id)
		if !ok {
			return true
		}
		s.elements++
		if d.StylesCacheable() {
			s.cacheable++
		}
		if d.IdentityPath().IsNothing() {
			s.unresolved++
		}
		if d.StylesContainPseudoClassesOrDynamicProperties() {
			s.dynamic++
		}
		return true
	})
	return s
}
