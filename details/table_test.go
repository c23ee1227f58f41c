package details

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uistyle/dom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailsAreUniquePerNode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.details")
	defer teardown()
	//
	f := newFixture()
	assert.Same(t, f.table.Details(f.cell1.ID()), f.table.Details(f.cell1.ID()))
	assert.Equal(t, 5, f.table.Len())
	assert.Nil(t, f.table.Details(dom.NoNode))
	_, ok := f.table.Lookup(dom.NodeID(4711))
	assert.False(t, ok)
}

func TestChildForKeyPath(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.details")
	defer teardown()
	//
	f := newFixture()
	f.details(f.list).SetElementID("items")
	f.details(f.label).SetElementID("title")
	title, ok := f.table.ChildForKeyPath(f.details(f.window), "items.title")
	require.True(t, ok)
	assert.Same(t, f.details(f.label), title)
	_, ok = f.table.ChildForKeyPath(f.details(f.window), "items.missing")
	assert.False(t, ok)
	_, ok = f.table.ChildForKeyPath(f.details(f.window), "")
	assert.False(t, ok)
}

func TestCopyDetails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.details")
	defer teardown()
	//
	f := newFixture()
	proto := f.details(f.cell1)
	proto.SetStyleClasses("odd", "row")
	proto.AddDisabledProperty("color")
	proto.Prototypes()["row"] = true
	proto.AdditionalDetails()[IndexPathKey] = []int{0, 1}
	clone := f.details(f.cell2)
	_, err := f.table.Style(clone)
	require.NoError(t, err)
	f.table.CopyDetails(proto, clone)
	assert.Equal(t, []string{"odd", "row"}, clone.StyleClasses())
	assert.True(t, clone.HasDisabledProperty("color"))
	assert.Equal(t, true, clone.Prototypes()["row"])
	assert.NotContains(t, clone.AdditionalDetails(), IndexPathKey)
	assert.False(t, clone.StylingApplied())
	proto.RemoveStyleClass("odd")
	assert.True(t, clone.HasStyleClass("odd"), "copies should be independent")
	clone.Prototypes()[PrototypeInitializedKey] = true
	assert.NotContains(t, proto.Prototypes(), PrototypeInitializedKey)
}

func TestStateStrings(t *testing.T) {
	states := map[State]string{
		Unstyled:       "unstyled",
		AppliedStatic:  "applied(static)",
		AppliedDynamic: "applied(dynamic)",
		Invalidated:    "invalidated",
		Disabled:       "disabled",
	}
	for s, str := range states {
		if s.String() != str {
			t.Errorf("expected state %d to read %q, is %q", s, str, s.String())
		}
	}
}

func TestReleaseAfterDetach(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.details")
	defer teardown()
	//
	f := newFixture()
	label, c2 := f.details(f.label), f.details(f.cell2)
	p, _ := label.IdentityPath().Get()
	assert.Equal(t, "root/List#1-1/Cell#1-2/Label#1-1", p)
	p, _ = c2.IdentityPath().Get()
	assert.Equal(t, "root/List#1-1/Cell#2-2", p)
	f.host.Remove(f.cell1)
	f.table.Release(f.cell1.ID())
	assert.True(t, label.IdentityPath().IsNothing(), "path below a released element should be dropped")
	assert.Nil(t, label.Parent())
	p, _ = c2.IdentityPath().Get()
	assert.Equal(t, "root/List#1-1/Cell#1-1", p)
}
