package details

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uistyle/dom/nodetree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHierarchyQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.details")
	defer teardown()
	//
	f := newFixture()
	label := f.details(f.label)
	assert.Same(t, f.details(f.cell1), label.Parent())
	assert.True(t, label.AddedToHierarchy())
	assert.Same(t, f.details(f.list), label.ClosestContainerAncestor())
	assert.Same(t, f.details(f.window), label.ClosestControllerAncestor())
	assert.Nil(t, label.DirectParentController())
	assert.Same(t, f.details(f.window), f.details(f.list).DirectParentController())
	assert.Nil(t, f.details(f.window).ClosestContainerAncestor())
	assert.False(t, f.details(f.window).AddedToHierarchy())
}

func TestSetParentRejectsCycles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.details")
	defer teardown()
	//
	f := newFixture()
	err := f.details(f.list).SetParent(f.details(f.label))
	assert.ErrorIs(t, err, ErrInvalidParent)
	err = f.details(f.list).SetParent(f.details(f.list))
	assert.ErrorIs(t, err, ErrInvalidParent)
	other := newFixture()
	err = f.details(f.label).SetParent(other.details(other.list))
	assert.ErrorIs(t, err, ErrInvalidParent)
	assert.Same(t, f.details(f.window), f.details(f.list).Parent())
}

func TestReparentInvalidates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.details")
	defer teardown()
	//
	f := newFixture()
	require.NoError(t, f.table.StyleSubtree(f.details(f.window)))
	side := f.host.NewWidget("List", nodetree.Container())
	f.host.AddChild(f.window, side)
	require.NoError(t, f.table.Details(side.ID()).SetParent(f.details(f.window)))
	c1 := f.details(f.cell1)
	assert.False(t, c1.StylingApplied(), "a new sibling of the same type should invalidate")
	assert.True(t, f.details(f.window).StylingApplied())
	p, _ := c1.IdentityPath().Get()
	assert.Equal(t, "root/List#1-2/Cell#1-2", p)
	// move the second cell over to the new list
	f.host.Remove(f.cell2)
	f.host.AddChild(side, f.cell2)
	c2 := f.details(f.cell2)
	require.NoError(t, c2.SetParent(f.table.Details(side.ID())))
	p, _ = c2.IdentityPath().Get()
	assert.Equal(t, "root/List#2-2/Cell#1-1", p)
	p, _ = c1.IdentityPath().Get()
	assert.Equal(t, "root/List#1-2/Cell#1-1", p)
}

func TestAppendInvalidatesSameTypeSiblingsOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.details")
	defer teardown()
	//
	f := newFixture()
	list := f.details(f.list)
	require.NoError(t, f.table.StyleSubtree(f.details(f.window)))
	assert.Equal(t, 5, f.resolver.calls)
	divider := f.host.NewWidget("Divider")
	f.host.AddChild(f.list, divider)
	require.NoError(t, f.table.Details(divider.ID()).SetParent(list))
	for _, w := range []*nodetree.Widget{f.cell1, f.cell2, f.label} {
		if d := f.details(w); !d.StylingApplied() {
			t.Errorf("expected %v to keep its styles, is %s", d, d.State())
		}
	}
	require.NoError(t, f.table.StyleSubtree(list))
	assert.Equal(t, 6, f.resolver.calls)
	p, _ := f.table.Details(divider.ID()).IdentityPath().Get()
	assert.Equal(t, "root/List#1-1/Divider#1-1", p)
	// another cell shifts the counts of the cells and of everything below them
	cell3 := f.host.NewWidget("Cell")
	f.host.AddChild(f.list, cell3)
	require.NoError(t, f.table.Details(cell3.ID()).SetParent(list))
	assert.False(t, f.details(f.label).StylingApplied())
	assert.True(t, f.table.Details(divider.ID()).StylingApplied())
	require.NoError(t, f.table.StyleSubtree(list))
	if f.resolver.calls != 10 {
		t.Errorf("expected 4 cells and labels to be re-resolved, resolver called %d times", f.resolver.calls)
	}
	p, _ = f.details(f.label).IdentityPath().Get()
	assert.Equal(t, "root/List#1-1/Cell#1-3/Label#1-1", p)
}
