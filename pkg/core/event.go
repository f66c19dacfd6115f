package core

import (
	"slices"

	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/reactive"
)

// Event is a typed output of a widget. Listeners run synchronously in
// registration order; a panicking listener is reported and skipped.
//
// The zero value is ready to use.
type Event[T any] struct {
	name      string
	listeners []*eventListener[T]
	emitted   int
}

type eventListener[T any] struct {
	fn     func(T)
	active bool
}

// NewEvent creates a named event. The name appears in panic reports.
func NewEvent[T any](name string) *Event[T] {
	return &Event[T]{name: name}
}

// Listen registers fn and returns its subscription.
func (e *Event[T]) Listen(fn func(T)) reactive.Subscription {
	l := &eventListener[T]{fn: fn, active: true}
	e.listeners = append(e.listeners, l)
	return reactive.SubscriptionFunc(func() {
		l.active = false
		e.listeners = slices.DeleteFunc(e.listeners, func(x *eventListener[T]) bool { return x == l })
	})
}

// Emit delivers v to every listener registered before the call and still
// subscribed when its turn comes.
func (e *Event[T]) Emit(v T) {
	e.emitted++
	op := "core.Event.Emit"
	if e.name != "" {
		op += "(" + e.name + ")"
	}
	for _, l := range slices.Clone(e.listeners) {
		if !l.active {
			continue
		}
		errors.Guard(op, func() { l.fn(v) })
	}
}

// Emitted returns how many times the event fired.
func (e *Event[T]) Emitted() int { return e.emitted }

// ListenerCount returns the number of registered listeners.
func (e *Event[T]) ListenerCount() int { return len(e.listeners) }
