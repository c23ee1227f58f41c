package details

import (
	"sort"

	"github.com/npillmayer/uistyle/dom"
	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/reactive"
)

// ObserveValue binds a declared property of d to a reactive value source.
// Whenever the source changes, d is invalidated and re-styled, either by the
// table's restyle handler or synchronously (see WithRestyleHandler).
// An existing subscription for the same property is replaced.
func (t *Table) ObserveValue(d *Details, property style.PropertyID, source reactive.Source) {
	if d == nil || d.released || source == nil {
		return
	}
	t.StopObserving(d, property)
	id := d.node
	sub := source.Subscribe(func() {
		t.valueChanged(id, property)
	})
	if d.observers == nil {
		d.observers = make(map[style.PropertyID]reactive.Subscription)
	}
	d.observers[property] = sub
	tracer().Debugf("node %s observes property %q", d.node, property)
}

// StopObserving removes the subscription for a property. Calling it for a
// property without subscription is a no-op.
func (t *Table) StopObserving(d *Details, property style.PropertyID) {
	if d == nil {
		return
	}
	sub, ok := d.observers[property]
	if !ok {
		return
	}
	delete(d.observers, property)
	if sub != nil {
		sub.Unsubscribe()
	}
}

// ObservedProperties lists the properties d currently observes.
func (d *Details) ObservedProperties() []style.PropertyID {
	if len(d.observers) == 0 {
		return nil
	}
	props := make([]style.PropertyID, 0, len(d.observers))
	for p := range d.observers {
		props = append(props, p)
	}
	sort.Slice(props, func(i, j int) bool { return props[i] < props[j] })
	return props
}

func (t *Table) stopAllObservers(d *Details) {
	for _, p := range d.ObservedProperties() {
		t.StopObserving(d, p)
	}
}

// valueChanged is the callback of observer subscriptions. It holds on to the
// node id only; if the element has gone in the meantime, the notification is
// dropped.
func (t *Table) valueChanged(id dom.NodeID, property style.PropertyID) {
	d, ok := t.details[id]
	if !ok || d.released {
		tracer().Debugf("value change for %q on node %s: %v", property, id, ErrObserverTargetGone)
		return
	}
	tracer().Debugf("value of %q changed for node %s", property, id)
	t.Invalidate(d)
	if t.restyle != nil {
		t.restyle(d)
		return
	}
	if t.syncRestyle && t.resolver != nil {
		if _, err := t.Style(d); err != nil {
			tracer().Errorf("restyling node %s after change of %q: %v", id, property, err)
		}
	}
}
