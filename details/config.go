package details

import (
	"github.com/npillmayer/schuko"
)

// Configuration keys read by WithConfiguration.
const (
	ConfSharedCache   = "styling.cache.shared"   // bool, reuse a shared identity-keyed store
	ConfRegistrySweep = "styling.registry.sweep" // int, registrations between eager prunes
	ConfRestyleSync   = "styling.restyle.sync"   // bool, observers restyle synchronously
)

const defaultSweepInterval = 1024

// Option is a type to help initializing tables at creation time.
type Option func(*Table)

// WithConfiguration configures a table from a schuko configuration.
// Unset keys keep their defaults.
func WithConfiguration(conf schuko.Configuration) Option {
	return func(t *Table) {
		if conf == nil {
			return
		}
		if conf.IsSet(ConfSharedCache) {
			t.shareCache = conf.GetBool(ConfSharedCache)
		}
		if conf.IsSet(ConfRestyleSync) {
			t.syncRestyle = conf.GetBool(ConfRestyleSync)
		}
		if conf.IsSet(ConfRegistrySweep) {
			if n := conf.GetInt(ConfRegistrySweep); n > 0 {
				setSweepInterval(n)
			}
		}
		tracer().Debugf("details table configured: shared cache=%v, sync restyle=%v",
			t.shareCache, t.syncRestyle)
	}
}

// WithRestyleHandler installs a handler which is called whenever an observed
// reactive value invalidates an element. Without a handler, the table
// re-runs the styling pass for the element itself (if configured to do so).
func WithRestyleHandler(handler func(*Details)) Option {
	return func(t *Table) {
		t.restyle = handler
	}
}

// WithSharedStore lets a table use a declaration store shared with other
// tables, e.g. for documents of identical structure.
func WithSharedStore(store *Store) Option {
	return func(t *Table) {
		if store != nil {
			t.store = store
		}
	}
}
