package details

import (
	"sync"
	"weak"
)

// The reset coordinator keeps weak references to every Details and Store
// ever created, so that global style changes can invalidate all of them.
// Registration never keeps an element alive. Dead and released entries are
// pruned lazily during sweeps.
var coordinator = struct {
	sync.Mutex
	elements   []weak.Pointer[Details]
	stores     []weak.Pointer[Store]
	sweepEvery int
	sinceSweep int
}{
	sweepEvery: defaultSweepInterval,
}

// InitCoordinator prepares the global reset coordinator. It drops every
// registration made so far. Applications call it once at start-up, tests
// before each scenario.
func InitCoordinator() {
	coordinator.Lock()
	defer coordinator.Unlock()
	coordinator.elements = nil
	coordinator.stores = nil
	coordinator.sinceSweep = 0
	coordinator.sweepEvery = defaultSweepInterval
}

// ClearCoordinator drops all registrations, e.g. at shutdown.
func ClearCoordinator() {
	coordinator.Lock()
	defer coordinator.Unlock()
	coordinator.elements = nil
	coordinator.stores = nil
	coordinator.sinceSweep = 0
}

// RegisteredCount returns the number of registry entries, including those
// not pruned yet.
func RegisteredCount() int {
	coordinator.Lock()
	defer coordinator.Unlock()
	return len(coordinator.elements)
}

// ResetAllCachedData invalidates every live element of every table and
// clears all declaration stores. It is used when global style rules change
// and returns the number of elements reset.
func ResetAllCachedData() int {
	coordinator.Lock()
	defer coordinator.Unlock()
	live := coordinator.elements[:0]
	count := 0
	for _, ref := range coordinator.elements {
		d := ref.Value()
		if d == nil || d.released {
			continue
		}
		d.table.reset(d, true, "global reset")
		live = append(live, ref)
		count++
	}
	clear(coordinator.elements[len(live):])
	coordinator.elements = live
	stores := coordinator.stores[:0]
	for _, ref := range coordinator.stores {
		if s := ref.Value(); s != nil {
			s.Clear()
			stores = append(stores, ref)
		}
	}
	clear(coordinator.stores[len(stores):])
	coordinator.stores = stores
	coordinator.sinceSweep = 0
	tracer().Infof("global reset of cached style data for %d elements", count)
	return count
}

func register(d *Details) {
	coordinator.Lock()
	defer coordinator.Unlock()
	coordinator.elements = append(coordinator.elements, weak.Make(d))
	coordinator.sinceSweep++
	if coordinator.sinceSweep >= coordinator.sweepEvery {
		prune()
	}
}

func registerStore(s *Store) {
	coordinator.Lock()
	defer coordinator.Unlock()
	for _, ref := range coordinator.stores {
		if ref.Value() == s {
			return
		}
	}
	coordinator.stores = append(coordinator.stores, weak.Make(s))
}

// prune drops dead entries. The caller holds the lock.
func prune() {
	live := coordinator.elements[:0]
	for _, ref := range coordinator.elements {
		if d := ref.Value(); d != nil && !d.released {
			live = append(live, ref)
		}
	}
	tracer().Debugf("pruned %d stale registry entries", len(coordinator.elements)-len(live))
	clear(coordinator.elements[len(live):])
	coordinator.elements = live
	coordinator.sinceSweep = 0
}

func setSweepInterval(n int) {
	coordinator.Lock()
	defer coordinator.Unlock()
	coordinator.sweepEvery = n
}
