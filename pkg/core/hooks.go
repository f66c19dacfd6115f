package core

import (
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/reactive"
)

// UseDisposable creates a resource and registers it for automatic disposal.
// The resource will be disposed when the instance is disposed.
//
// Example:
//
//	p.shimmer = core.UseDisposable(p.Instance, func() *animation.Scheduler {
//	    return animation.NewScheduler(p.ID() + "/shimmer")
//	})
func UseDisposable[D Disposable](in *Instance, create func() D) D {
	d := create()
	in.OnDispose(d.Dispose)
	return d
}

// UseSubscription ties sub to the instance lifetime.
func UseSubscription(in *Instance, sub reactive.Subscription) reactive.Subscription {
	in.OnDispose(sub.Unsubscribe)
	return sub
}

// UseEffect runs fn with the source value after every commit, from mount
// until dispose. Use it for side effects that are neither bindings nor
// output events, such as starting an animation when a derived flag flips.
func UseEffect[T any](in *Instance, src reactive.Readable[T], fn func(T)) {
	var sub reactive.Subscription
	in.AfterMount(func() {
		sub = src.Watch(func() { fn(src.Value()) })
	})
	in.OnDispose(func() {
		if sub != nil {
			sub.Unsubscribe()
		}
	})
}

// UseInterval calls fn every interval of animation time, starting one
// interval after mount (or after the call, when already mounted), until fn
// returns false, the returned stop func is called, or the instance is
// disposed. Intervals follow the animation clock, so a fake clock drives
// them deterministically.
func UseInterval(in *Instance, interval time.Duration, fn func() bool) func() {
	if in.IsDisposed() || interval <= 0 {
		return func() {}
	}
	var (
		ticker     *animation.Ticker
		unregister func()
		stopped    bool
		fired      time.Duration
	)
	halt := func() {
		if stopped {
			return
		}
		stopped = true
		ticker.Stop()
		unregister()
	}
	ticker = animation.NewTicker(func(elapsed time.Duration) {
		for !stopped && ticker.IsActive() && fired+interval <= elapsed {
			fired += interval
			keep := true
			errors.Guard("core.UseInterval", func() { keep = fn() })
			if !keep {
				halt()
			}
		}
	})
	unregister = in.OnDispose(ticker.Stop)
	in.AfterMount(func() {
		if !stopped {
			ticker.Start()
		}
	})
	return halt
}
