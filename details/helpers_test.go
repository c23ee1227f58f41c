package details

import (
	"errors"

	"github.com/npillmayer/uistyle/dom"
	"github.com/npillmayer/uistyle/dom/nodetree"
	"github.com/npillmayer/uistyle/dom/style"
)

// countingResolver resolves a fixed set of declarations per canonical type
// and counts its invocations.
type countingResolver struct {
	calls int
	fail  bool
	decls map[string][]style.Declaration
}

var errNoRules = errors.New("no rules")

func (r *countingResolver) ResolveDeclarations(d *Details) (style.DeclarationSet, error) {
	r.calls++
	if r.fail {
		return style.DeclarationSet{}, errNoRules
	}
	if decls, ok := r.decls[d.CanonicalType()]; ok {
		return style.NewDeclarationSet(decls...), nil
	}
	return style.NewDeclarationSet(style.Declaration{Property: "color", Value: "black"}), nil
}

// dynamicResolver additionally re-evaluates dynamic sets.
type dynamicResolver struct {
	countingResolver
	reevaluations int
	highlighted   bool
}

func (r *dynamicResolver) Reevaluate(d *Details, set style.DeclarationSet) (style.DeclarationSet, error) {
	r.reevaluations++
	var effective []style.Declaration
	set.Each(func(_ int, decl style.Declaration) bool {
		if decl.Condition == "" || (decl.Condition == "highlighted" && r.highlighted) {
			effective = append(effective, decl)
		}
		return true
	})
	return style.NewDeclarationSet(effective...), nil
}

// fixture is a small widget tree
//
//	Window (controller, id "root")
//	└── List (container)
//	    ├── Cell
//	    │   └── Label
//	    └── Cell
type fixture struct {
	host                *nodetree.Tree
	table               *Table
	window, list        *nodetree.Widget
	cell1, cell2, label *nodetree.Widget
	resolver            *countingResolver
}

func newFixture(opts ...Option) *fixture {
	f := &fixture{host: nodetree.New(), resolver: &countingResolver{}}
	f.window = f.host.NewWidget("Window", nodetree.Controller())
	f.list = f.host.NewWidget("List", nodetree.Container())
	f.cell1 = f.host.NewWidget("Cell")
	f.cell2 = f.host.NewWidget("Cell")
	f.label = f.host.NewWidget("Label")
	f.host.AddChild(f.window, f.list)
	f.host.AddChild(f.list, f.cell1)
	f.host.AddChild(f.list, f.cell2)
	f.host.AddChild(f.cell1, f.label)
	f.table = NewTable(f.host, f.resolver, opts...)
	attach(f.table, f.window.ID())
	f.table.Details(f.window.ID()).SetElementID("root")
	return f
}

// attach links details parents along the host tree.
func attach(t *Table, root dom.NodeID) {
	dom.Walk(t.Host(), root, func(id dom.NodeID) bool {
		p := t.Details(id)
		for _, ch := range t.Host().Children(id) {
			if err := t.Details(ch).SetParent(p); err != nil {
				panic(err)
			}
		}
		return true
	})
}

func (f *fixture) details(w *nodetree.Widget) *Details {
	return f.table.Details(w.ID())
}
