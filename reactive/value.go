package reactive

// Source is anything clients may subscribe to for change notifications.
type Source interface {
	Subscribe(func()) Subscription
}

// Subscription is a handle for a registered callback.
// Unsubscribe is safe to call more than once.
type Subscription interface {
	Unsubscribe()
}

// Value is a reactive value of type T.
type Value[T any] struct {
	value     T
	listeners map[uint64]func()
	order     []uint64
	next      uint64
	released  bool
}

// NewValue creates a reactive value with an initial value v.
func NewValue[T any](v T) *Value[T] {
	return &Value[T]{
		value:     v,
		listeners: make(map[uint64]func()),
	}
}

// Get returns the current value.
func (rv *Value[T]) Get() T {
	return rv.value
}

// Set stores v and calls every listener before returning.
// Setting a released value stores v but notifies no-one.
func (rv *Value[T]) Set(v T) {
	rv.value = v
	if rv.released {
		return
	}
	// listeners may unsubscribe during notification
	ids := make([]uint64, len(rv.order))
	copy(ids, rv.order)
	for _, id := range ids {
		if fn, ok := rv.listeners[id]; ok {
			fn()
		}
	}
}

// Subscribe registers fn to be called on every change.
func (rv *Value[T]) Subscribe(fn func()) Subscription {
	if rv.released || fn == nil {
		tracer().Debugf("subscription to released reactive value is inert")
		return inert{}
	}
	rv.next++
	id := rv.next
	rv.listeners[id] = fn
	rv.order = append(rv.order, id)
	return &subscription[T]{source: rv, id: id}
}

// Release drops all listeners. Later subscriptions are inert, and
// outstanding subscriptions may still be unsubscribed without effect.
func (rv *Value[T]) Release() {
	if rv.released {
		return
	}
	tracer().Debugf("releasing reactive value with %d listeners", len(rv.listeners))
	rv.released = true
	rv.listeners = nil
	rv.order = nil
}

// Released is true after Release has been called.
func (rv *Value[T]) Released() bool {
	return rv.released
}

// ListenerCount returns the number of live subscriptions.
func (rv *Value[T]) ListenerCount() int {
	return len(rv.listeners)
}

func (rv *Value[T]) remove(id uint64) {
	if rv.released {
		return
	}
	if _, ok := rv.listeners[id]; !ok {
		return
	}
	delete(rv.listeners, id)
	for i, x := range rv.order {
		if x == id {
			rv.order = append(rv.order[:i], rv.order[i+1:]...)
			break
		}
	}
}

var _ Source = &Value[int]{}

// --- Subscriptions ---------------------------------------------------------

type subscription[T any] struct {
	source *Value[T]
	id     uint64
}

func (s *subscription[T]) Unsubscribe() {
	if s.source == nil {
		return
	}
	s.source.remove(s.id)
	s.source = nil
}

type inert struct{}

func (inert) Unsubscribe() {}

// Func adapts a subscribe function to the Source interface.
type Func func(func()) Subscription

// Subscribe calls f(fn).
func (f Func) Subscribe(fn func()) Subscription {
	return f(fn)
}

// UnsubscribeFunc adapts a plain function to the Subscription interface.
// The function is called at most once.
type UnsubscribeFunc func()

// Unsubscribe calls the function.
func (f UnsubscribeFunc) Unsubscribe() {
	if f != nil {
		f()
	}
}
