package reactive

// Subscription is the capability to stop receiving notifications.
type Subscription interface {
	// Unsubscribe removes the listener. Calling it more than once is a no-op.
	Unsubscribe()
}

// SubscriptionFunc adapts a plain function to [Subscription]. The function
// itself must tolerate repeated calls.
type SubscriptionFunc func()

// Unsubscribe calls f.
func (f SubscriptionFunc) Unsubscribe() { f() }

// Subscriptions collects subscriptions for scoped cleanup.
type Subscriptions []Subscription

// Add appends s and returns it.
func (s *Subscriptions) Add(sub Subscription) Subscription {
	*s = append(*s, sub)
	return sub
}

// Unsubscribe releases every collected subscription in reverse order.
func (s *Subscriptions) Unsubscribe() {
	for i := len(*s) - 1; i >= 0; i-- {
		(*s)[i].Unsubscribe()
	}
	*s = nil
}

// Derived is a read-only value computed from other sources.
//
// The dependency list is explicit: compute may only read the sources passed
// to [NewDerived]. Reading Value recomputes only when at least one dependency
// changed since the previous computation.
type Derived[T any] struct {
	compute  func() T
	deps     []Source
	value    T
	computed bool
	seen     uint64
	computes int
}

// NewDerived creates a derived view over deps.
func NewDerived[T any](compute func() T, deps ...Source) *Derived[T] {
	return &Derived[T]{compute: compute, deps: deps}
}

// Map derives a view from a single typed source.
func Map[S, T any](src Readable[S], fn func(S) T) *Derived[T] {
	return NewDerived(func() T { return fn(src.Value()) }, src)
}

// Value returns the memoized value, recomputing it if a dependency changed.
func (d *Derived[T]) Value() T {
	v := d.depVersion()
	if !d.computed || v != d.seen {
		d.value = d.compute()
		d.seen = v
		d.computed = true
		d.computes++
	}
	return d.value
}

// Version changes whenever any dependency changes. Dependency versions only
// grow, so their sum is strictly increasing across commits.
func (d *Derived[T]) Version() uint64 {
	return d.depVersion()
}

// Watch registers fn to run after any dependency commits.
func (d *Derived[T]) Watch(fn func()) Subscription {
	var subs Subscriptions
	for _, dep := range d.deps {
		subs.Add(dep.Watch(fn))
	}
	return SubscriptionFunc(subs.Unsubscribe)
}

// Subscribe registers fn to receive the recomputed value after any
// dependency commits.
func (d *Derived[T]) Subscribe(fn func(T)) Subscription {
	return d.Watch(func() { fn(d.Value()) })
}

// Computations reports how many times compute has run.
func (d *Derived[T]) Computations() int {
	return d.computes
}

func (d *Derived[T]) depVersion() uint64 {
	var sum uint64
	for _, dep := range d.deps {
		sum += dep.Version()
	}
	return sum
}
