// Package reactive provides observable state cells and memoized derived views.
//
// A [Cell] is the single source of truth for one piece of widget state.
// Writing a different value commits it: the version advances and every
// subscriber is called synchronously, exactly once, in subscription order.
// A [Derived] view is a pure projection of one or more sources that is
// recomputed lazily, only when one of its dependencies committed since the
// last read.
//
// Cells are not safe for concurrent use. Like the rest of the widget core
// they belong to the single event loop that delivers input events and frames.
package reactive

import (
	"reflect"

	"github.com/go-drift/motion/pkg/errors"
)

// Source is anything a derived view or binding can depend on.
type Source interface {
	// Version increases every time the source's value changes.
	Version() uint64
	// Watch registers fn to run after every change.
	Watch(fn func()) Subscription
}

// Readable is a Source with a typed value.
type Readable[T any] interface {
	Source
	Value() T
}

// Cell is a mutable value with change notification.
type Cell[T any] struct {
	value     T
	version   uint64
	equal     func(a, b T) bool
	listeners listenerList[T]
}

// NewCell creates a cell whose writes are compared by value.
func NewCell[T comparable](initial T) *Cell[T] {
	return &Cell[T]{
		value: initial,
		equal: func(a, b T) bool { return a == b },
	}
}

// NewRef creates a cell for composite values (slices, maps, pointers).
// Writes are compared by identity: publishing a new slice is always a change
// even when its contents are deeply equal, so callers must copy on write and
// never mutate a published value in place.
func NewRef[T any](initial T) *Cell[T] {
	return &Cell[T]{
		value: initial,
		equal: sameIdentity[T],
	}
}

// NewCellFunc creates a cell with a custom equality.
func NewCellFunc[T any](initial T, equal func(a, b T) bool) *Cell[T] {
	return &Cell[T]{value: initial, equal: equal}
}

// Value returns the current value.
func (c *Cell[T]) Value() T {
	return c.value
}

// Version returns the number of committed changes.
func (c *Cell[T]) Version() uint64 {
	return c.version
}

// Set commits value. Writing a value equal to the current one is not a
// commit and notifies nobody.
func (c *Cell[T]) Set(value T) {
	if c.equal != nil && c.equal(c.value, value) {
		return
	}
	c.value = value
	c.version++
	c.listeners.notify(value)
}

// Update applies transform to the current value and commits the result.
func (c *Cell[T]) Update(transform func(T) T) {
	c.Set(transform(c.value))
}

// Subscribe registers fn to receive every committed value.
func (c *Cell[T]) Subscribe(fn func(T)) Subscription {
	return c.listeners.add(fn)
}

// Watch registers fn to run after every commit.
func (c *Cell[T]) Watch(fn func()) Subscription {
	return c.listeners.add(func(T) { fn() })
}

// SubscriberCount returns the number of live subscriptions.
func (c *Cell[T]) SubscriberCount() int {
	return c.listeners.len()
}

// sameIdentity compares reference-like values by the storage they point at.
func sameIdentity[T any](a, b T) bool {
	va, vb := reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem()
	switch va.Kind() {
	case reflect.Slice:
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() == vb.IsNil()
		}
		// Zero-capacity slices may share a sentinel address.
		if va.Cap() == 0 || vb.Cap() == 0 {
			return false
		}
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len() && va.Cap() == vb.Cap()
	case reflect.Map, reflect.Pointer, reflect.Chan, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Func:
		return false
	}
	if va.Comparable() && vb.Comparable() {
		return va.Equal(vb)
	}
	return false
}

type listener[T any] struct {
	id     uint64
	fn     func(T)
	active bool
}

// listenerList keeps subscribers in registration order.
type listenerList[T any] struct {
	entries []*listener[T]
	nextID  uint64
}

func (l *listenerList[T]) add(fn func(T)) Subscription {
	l.nextID++
	entry := &listener[T]{id: l.nextID, fn: fn, active: true}
	l.entries = append(l.entries, entry)
	return SubscriptionFunc(func() {
		if !entry.active {
			return
		}
		entry.active = false
		for i, e := range l.entries {
			if e == entry {
				l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
				break
			}
		}
	})
}

func (l *listenerList[T]) notify(value T) {
	// Snapshot so subscriptions added during notification wait for the next commit.
	snapshot := make([]*listener[T], len(l.entries))
	copy(snapshot, l.entries)
	for _, entry := range snapshot {
		if !entry.active {
			continue
		}
		errors.Guard("reactive.notify", func() { entry.fn(value) })
	}
}

func (l *listenerList[T]) len() int {
	return len(l.entries)
}
