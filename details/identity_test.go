package details

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uistyle/dom"
	"github.com/npillmayer/uistyle/dom/nodetree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityPathOfRepeatedCells(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.details")
	defer teardown()
	//
	host := nodetree.New()
	tbl := NewTable(host, nil)
	root := host.NewWidget("View")
	b1, b2 := host.NewWidget("Cell"), host.NewWidget("Cell")
	host.AddChild(root, b1)
	host.AddChild(root, b2)
	attach(tbl, root.ID())
	tbl.Details(root.ID()).SetElementID("root")
	//
	d1, d2 := tbl.Details(b1.ID()), tbl.Details(b2.ID())
	p1, err := tbl.ResolveStyleIdentityPath(d1)
	require.NoError(t, err)
	p2, err := tbl.ResolveStyleIdentityPath(d2)
	require.NoError(t, err)
	if p1 != "root/Cell#1-2" || p2 != "root/Cell#2-2" {
		t.Errorf("expected paths root/Cell#1-2 and root/Cell#2-2, are %q and %q", p1, p2)
	}
	assert.True(t, d1.StylesCacheable())
	assert.True(t, d2.StylesCacheable())
	again, _ := d1.IdentityPath().Get()
	assert.Equal(t, p1, again, "identity path should be stable")
	pos, count := d2.TypeQualifiedPosition()
	assert.Equal(t, 2, pos)
	assert.Equal(t, 2, count)
}

func TestIdentityPathFollowsSiblingOrdinal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.details")
	defer teardown()
	//
	f := newFixture()
	c1 := f.details(f.cell1)
	p, _ := c1.IdentityPath().Get()
	assert.Equal(t, "root/List#1-1/Cell#1-2", p)
	label, _ := f.details(f.label).IdentityPath().Get()
	assert.Equal(t, "root/List#1-1/Cell#1-2/Label#1-1", label)
	// a new cell in front of cell1 shifts ordinals
	c0 := f.host.NewWidget("Cell")
	f.host.InsertChildAt(f.list, 0, c0)
	require.NoError(t, f.table.Details(c0.ID()).SetParent(f.details(f.list)))
	p, _ = c1.IdentityPath().Get()
	assert.Equal(t, "root/List#1-1/Cell#2-3", p)
	label, _ = f.details(f.label).IdentityPath().Get()
	assert.Equal(t, "root/List#1-1/Cell#2-3/Label#1-1", label)
	// a sibling of another type does not
	sep := f.host.NewWidget("Separator")
	f.host.AddChild(f.list, sep)
	require.NoError(t, f.table.Details(sep.ID()).SetParent(f.details(f.list)))
	p, _ = c1.IdentityPath().Get()
	assert.Equal(t, "root/List#1-1/Cell#2-3", p)
}

func TestIdentityPathWithElementID(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.details")
	defer teardown()
	//
	f := newFixture()
	c2 := f.details(f.cell2)
	c2.SetElementID("footer")
	p, _ := c2.IdentityPath().Get()
	assert.Equal(t, "footer", p)
	assert.True(t, c2.AncestorHasElementID())
	assert.False(t, f.details(f.window).AncestorHasElementID())
	// numbering of unnamed siblings is not affected by ids
	p, _ = f.details(f.cell1).IdentityPath().Get()
	assert.Equal(t, "root/List#1-1/Cell#1-2", p)
}

func TestIdentityUnresolved(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.details")
	defer teardown()
	//
	f := newFixture()
	w := f.details(f.window)
	w.SetElementID("")
	assert.True(t, w.IdentityPath().IsNothing())
	_, err := f.table.ResolveStyleIdentityPath(f.details(f.cell1))
	assert.ErrorIs(t, err, ErrIdentityUnresolved)
	assert.False(t, f.details(f.cell1).StylesCacheable())
	// styling still works, but without reuse
	c1 := f.details(f.cell1)
	_, err = f.table.Style(c1)
	require.NoError(t, err)
	_, err = f.table.Style(c1)
	require.NoError(t, err)
	assert.Equal(t, 2, f.resolver.calls)
	assert.True(t, f.table.CachedDeclarations(c1).IsNothing())
}

func TestIdentityDetachedElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.details")
	defer teardown()
	//
	f := newFixture()
	l := f.details(f.label)
	require.NoError(t, l.SetParent(nil))
	assert.False(t, l.AddedToHierarchy())
	assert.True(t, l.IdentityPath().IsNothing())
	pos, count := l.TypeQualifiedPosition()
	assert.Equal(t, 0, pos+count)
	var nothing *Details
	_, err := f.table.ResolveStyleIdentityPath(nothing)
	assert.ErrorIs(t, err, ErrIdentityUnresolved)
}

func TestCustomElementStyleIdentity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.details")
	defer teardown()
	//
	f := newFixture()
	c1 := f.details(f.cell1)
	c1.SetCustomElementStyleIdentity("prototype.cell")
	p, _ := c1.IdentityPath().Get()
	assert.Equal(t, "prototype.cell", p)
	assert.True(t, c1.StylesCacheable())
	label := f.details(f.label)
	p, _ = label.IdentityPath().Get()
	assert.Equal(t, "prototype.cell/Label#1-1", p)
	assert.True(t, label.AncestorUsesCustomElementStyleIdentity())
	assert.False(t, label.StylesCacheable(), "descendants of custom identities are not cacheable")
	c1.SetCustomElementStyleIdentity("")
	assert.True(t, label.StylesCacheable())
}

func TestCanonicalType(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.details")
	defer teardown()
	//
	f := newFixture()
	c2 := f.details(f.cell2)
	assert.Equal(t, "Cell", c2.CanonicalType())
	c2.SetCanonicalType("HeaderCell")
	p, _ := c2.IdentityPath().Get()
	assert.Equal(t, "root/List#1-1/HeaderCell#1-1", p)
	p, _ = f.details(f.cell1).IdentityPath().Get()
	assert.Equal(t, "root/List#1-1/Cell#1-1", p)
	var unattached Details
	assert.Equal(t, "", unattached.CanonicalType())
	assert.Equal(t, dom.NoNode, unattached.Node())
}
