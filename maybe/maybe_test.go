package maybe_test

import (
	"strings"
	"testing"

	"github.com/npillmayer/uistyle/dom/style"
	. "github.com/npillmayer/uistyle/maybe"
)

func TestMatchIdentityPath(t *testing.T) {
	resolved := Just("root/List#1-1")
	unresolved := Nothing[string]()
	//
	var path string
	switch m := resolved.Match(); m {
	case m.Just(&path):
	case m.Nothing():
		t.Error("expected resolved path to match Just")
	}
	if path != "root/List#1-1" {
		t.Errorf("expected path to be root/List#1-1, is %q", path)
	}
	path = "?"
	switch m := unresolved.Match(); m {
	case m.Just(&path):
		t.Error("expected unresolved path to match Nothing")
	case m.Nothing():
	}
	if path != "?" {
		t.Errorf("expected path to stay untouched, is %q", path)
	}
	if unresolved.String() != "Nothing" || resolved.String() != "Just" {
		t.Errorf("expected Just/Nothing, is %s/%s", resolved, unresolved)
	}
}

func TestPathPrefixing(t *testing.T) {
	segment := func(prefix string) string {
		return prefix + "/Cell#2-3"
	}
	p := Map(segment, Just("root/List#1-1"))
	if v := p.WithDefault("?"); v != "root/List#1-1/Cell#2-3" {
		t.Errorf("expected segment appended to prefix, is %q", v)
	}
	// a detached parent leaves the child unresolved
	q := Nothing[string]().Map(segment)
	if v := q.WithDefault("?"); v != "?" {
		t.Errorf("expected unresolved path to default to ?, is %q", v)
	}
}

func TestLookupCachedDeclarations(t *testing.T) {
	set := style.NewDeclarationSet(
		style.Declaration{Property: "display", Value: "block"},
		style.Declaration{Property: "color", Value: "red", Condition: "hover"},
	)
	cache := map[string]style.DeclarationSet{"root/List#1-1": set}
	cached := func(path string) Maybe[style.DeclarationSet] {
		s, ok := cache[path]
		return FromPair(s, ok)
	}
	hit := AndThen(cached, Just("root/List#1-1"))
	s, ok := hit.Get()
	if !ok || !s.Same(set) {
		t.Errorf("expected cached set to be handed out, is %v", hit)
	}
	if !s.HasDynamic() {
		t.Error("expected cached set to be dynamic")
	}
	miss := AndThen(cached, Just("root/List#2-2"))
	if !miss.IsNothing() {
		t.Errorf("expected cache miss, is %v", miss)
	}
	if unresolved := AndThen(cached, Nothing[string]()); !unresolved.IsNothing() {
		t.Error("expected unresolved path not to hit the cache")
	}
}

func TestGetIdentityPath(t *testing.T) {
	x := Just("root/Cell#1-2")
	if v, ok := x.Get(); !ok || v != "root/Cell#1-2" {
		t.Errorf("expected Get() to return the wrapped path, is %q/%v", v, ok)
	}
	if x.IsNothing() {
		t.Error("expected Just(…) not to be nothing")
	}
	y := FromPair("", false)
	if !y.IsNothing() {
		t.Errorf("expected FromPair(…, false) to be nothing, is %v", y)
	}
	if _, ok := y.Get(); ok {
		t.Error("expected Get() on Nothing to report !ok")
	}
	if strings.Contains(y.WithDefault("?"), "/") {
		t.Error("expected default for unresolved path")
	}
}
