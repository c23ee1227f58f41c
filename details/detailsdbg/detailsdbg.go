/*
Package detailsdbg implements helpers to debug a table of element details.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package detailsdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/uistyle/details"
	"github.com/npillmayer/uistyle/dom"
	tp "github.com/xlab/treeprint"
)

// Dump returns a textual tree of the details below root. Every line shows
// the identity path (or '?' if unresolved), the canonical type, the style
// classes and the styling state of an element.
func Dump(t *details.Table, root dom.NodeID) string {
	p := tp.New()
	ppt(p, t, root)
	return p.String()
}

func ppt(p tp.Tree, t *details.Table, id dom.NodeID) {
	label := Label(t, id)
	children := t.Host().Children(id)
	if len(children) == 0 {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range children {
		ppt(branch, t, ch)
	}
}

// Label formats a single node for Dump.
func Label(t *details.Table, id dom.NodeID) string {
	d, ok := t.Lookup(id)
	if !ok {
		return fmt.Sprintf("%s %s (no details)", id, t.Host().TypeOf(id))
	}
	path := d.IdentityPath().WithDefault("?")
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s", path, d.CanonicalType())
	if cl := d.StyleClasses(); len(cl) > 0 {
		b.WriteString(" ." + strings.Join(cl, "."))
	}
	fmt.Fprintf(&b, " [%s", d.State())
	if d.StylesCacheable() {
		b.WriteString(",cacheable")
	}
	if props := d.ObservedProperties(); len(props) > 0 {
		fmt.Fprintf(&b, ",observes=%d", len(props))
	}
	b.WriteString("]")
	return b.String()
}

// --- GraphViz --------------------------------------------------------------

type node struct {
	Name  string
	Label string
	State string
}

type edge struct {
	N1, N2 string
}

// ToGraphViz outputs a diagram of the details below root in GraphViz (DOT)
// format. Cacheable elements are drawn filled.
func ToGraphViz(t *details.Table, root dom.NodeID, w io.Writer) error {
	head := template.Must(template.New("details").Parse(graphHeadTmpl))
	nodeTmpl := template.Must(template.New("node").Parse(nodeTmpl))
	edgeTmpl := template.Must(template.New("edge").Parse(edgeTmpl))
	if err := head.Execute(w, "Helvetica"); err != nil {
		return err
	}
	var err error
	dom.Walk(t.Host(), root, func(id dom.NodeID) bool {
		if err != nil {
			return false
		}
		n := node{Name: name(id), Label: Label(t, id), State: "white"}
		if d, ok := t.Lookup(id); ok && d.StylesCacheable() {
			n.State = "lightblue3"
		}
		if err = nodeTmpl.Execute(w, n); err != nil {
			return false
		}
		for _, ch := range t.Host().Children(id) {
			if err = edgeTmpl.Execute(w, edge{name(id), name(ch)}); err != nil {
				return false
			}
		}
		return true
	})
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, "}\n")
	return err
}

func name(id dom.NodeID) string {
	return fmt.Sprintf("node%05d", uint64(id))
}

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "TB"];
  node [fontname = "{{ . }}" fontsize=12] ;
  edge [fontname = "{{ . }}" fontsize=12] ;
`

const nodeTmpl = `{{ .Name }}	[ label={{ printf "%q" .Label }} shape=box style=filled fillcolor={{ .State }} ] ;
`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} ;
`
