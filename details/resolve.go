package details

import (
	"github.com/npillmayer/uistyle/dom"
	"github.com/npillmayer/uistyle/dom/style"
	"go.uber.org/multierr"
)

// Style runs the styling pass for d and returns the effective declarations.
//
// Disabled elements are skipped and keep whatever has been resolved for them
// before. Otherwise the element's own cache is consulted first, then the
// shared store and finally the resolver. A resolver failure is returned as a
// *ResolutionError and leaves d unstyled.
func (t *Table) Style(d *Details) (style.DeclarationSet, error) {
	if d == nil || d.released {
		return emptySet, ErrElementReleased
	}
	if d.noStyling {
		tracer().Debugf("styling disabled for node %s, skipping", d.node)
		return d.cached, nil
	}
	if d.willApply != nil {
		d.willApply(d)
	}
	set, err := t.resolve(d)
	if err != nil {
		path, _ := d.IdentityPath().Get()
		t.reset(d, false, "resolution failed")
		tracer().Errorf("resolving styles for node %s: %v", d.node, err)
		return emptySet, &ResolutionError{Node: d.node, Path: path, Err: err}
	}
	if d.didApply != nil {
		d.didApply(d)
	}
	return set, nil
}

func (t *Table) resolve(d *Details) (style.DeclarationSet, error) {
	if cached, ok := t.CachedDeclarations(d).Get(); ok {
		if set, ok, err := t.reuse(d, cached); ok || err != nil {
			tracer().Debugf("cache hit for node %s", d.node)
			return set, err
		}
	}
	key, cacheable := t.cacheKey(d)
	if !cacheable {
		tracer().Debugf("node %s: %v, styles not cacheable", d.node, ErrIdentityUnresolved)
	}
	if cacheable && t.shareCache {
		if shared, found := t.store.Get(key); found {
			if set, ok, err := t.reuse(d, shared); ok || err != nil {
				if err == nil {
					tracer().Debugf("shared cache hit for node %s: %s", d.node, key)
					t.SetCachedDeclarations(d, shared)
				}
				return set, err
			}
		}
	}
	if t.resolver == nil {
		return emptySet, ErrNoResolver
	}
	set, err := t.resolver.ResolveDeclarations(d)
	if err != nil {
		return emptySet, err
	}
	t.SetCachedDeclarations(d, set)
	if set.HasDynamic() {
		if re, ok := t.resolver.(Reevaluator); ok {
			return re.Reevaluate(d, set)
		}
	}
	return set, nil
}

// reuse decides if a cached set may be served for d. Static sets are served
// verbatim, dynamic ones only if the resolver can re-evaluate them.
func (t *Table) reuse(d *Details, set style.DeclarationSet) (style.DeclarationSet, bool, error) {
	if !set.HasDynamic() {
		return set, true, nil
	}
	re, ok := t.resolver.(Reevaluator)
	if !ok {
		return emptySet, false, nil
	}
	effective, err := re.Reevaluate(d, set)
	if err != nil {
		return emptySet, false, err
	}
	return effective, true, nil
}

// StyleSubtree runs the styling pass for d and all its descendants. The
// pass continues after failures; all errors are returned combined.
func (t *Table) StyleSubtree(d *Details) error {
	if d == nil || d.released {
		return ErrElementReleased
	}
	if t.host == nil {
		_, err := t.Style(d)
		return err
	}
	var errs error
	count := 0
	dom.Walk(t.host, d.node, func(id dom.NodeID) bool {
		if _, err := t.Style(t.Details(id)); err != nil {
			errs = multierr.Append(errs, err)
		}
		count++
		return true
	})
	tracer().Infof("styled %d elements, %d errors", count, len(multierr.Errors(errs)))
	return errs
}
