package core

import (
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/binding"
	"github.com/go-drift/motion/pkg/dom"
	"github.com/go-drift/motion/pkg/errors"
)

// Phase is the lifecycle phase of an [Instance].
type Phase int

const (
	// Constructed means cells exist and no DOM has been built.
	Constructed Phase = iota
	// Mounted means the subtree exists and bindings are live.
	Mounted
	// Disposed is terminal.
	Disposed
)

// String returns a human-readable representation of the phase.
func (p Phase) String() string {
	switch p {
	case Constructed:
		return "constructed"
	case Mounted:
		return "mounted"
	case Disposed:
		return "disposed"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Disposable is implemented by resources with explicit teardown.
type Disposable interface {
	Dispose()
}

type disposer struct {
	id uint64
	fn func()
}

// Instance is one mounted widget: its id, DOM subtree, scheduler and binder.
//
// Embed *Instance in widget structs:
//
//	type Counter struct {
//	    *core.Instance
//	    value *reactive.Cell[int]
//	}
//
//	func NewCounter() *Counter {
//	    c := &Counter{Instance: core.NewInstance("counter")}
//	    binding.Text(c.Binder(), c.Ref("value"), c.value, strconv.Itoa)
//	    return c
//	}
type Instance struct {
	id         string
	kind       string
	phase      Phase
	root       *dom.Node
	sched      *animation.Scheduler
	binder     *binding.Binder
	afterMount []func()
	disposers  []disposer
	nextID     uint64
	mu         sync.Mutex
}

// NewInstance creates a constructed instance of the given widget kind.
func NewInstance(kind string) *Instance {
	id := kind + "-" + uuid.NewString()[:8]
	return &Instance{
		id:     id,
		kind:   kind,
		sched:  animation.NewScheduler(id),
		binder: binding.New(id),
	}
}

// ID returns the instance id ("like-1b9d6bcd").
func (in *Instance) ID() string { return in.id }

// Kind returns the widget kind.
func (in *Instance) Kind() string { return in.kind }

// Phase returns the current lifecycle phase.
func (in *Instance) Phase() Phase { return in.phase }

// Root returns the widget's subtree root, or nil before mount.
func (in *Instance) Root() *dom.Node { return in.root }

// Scheduler returns the instance's animation scheduler.
func (in *Instance) Scheduler() *animation.Scheduler { return in.sched }

// Binder returns the instance's render binder.
func (in *Instance) Binder() *binding.Binder { return in.binder }

// Ref refers to the node with key inside this widget's subtree. The ref
// may be created at any time and resolves once the subtree exists.
func (in *Instance) Ref(key string) dom.Ref {
	return dom.ScopedRef(in.Root, key)
}

// Animate schedules spec in slot. Before mount the request is queued.
func (in *Instance) Animate(slot animation.Slot, spec animation.Spec) *animation.Handle {
	return in.sched.Schedule(slot, spec)
}

// Mount builds the widget subtree under host, installs bindings, starts
// queued animations and runs after-mount callbacks, in that order.
// Mounting twice, or after Dispose, is reported and ignored.
func (in *Instance) Mount(host *dom.Node, tag string, build func(root *dom.Node)) {
	if in.phase != Constructed {
		in.Ignore("mount", in.phase.String())
		return
	}
	in.root = host.Append(tag, in.kind)
	in.root.SetAttr(binding.Writer, "data-instance", in.id)
	if build != nil {
		build(in.root)
	}
	in.phase = Mounted
	in.binder.Install()
	in.sched.Mount()

	callbacks := in.afterMount
	in.afterMount = nil
	for _, fn := range callbacks {
		errors.Guard("core.Instance.AfterMount", fn)
	}
}

// AfterMount runs fn once the subtree exists. If the instance is already
// mounted fn runs now; after Dispose it never runs.
func (in *Instance) AfterMount(fn func()) {
	switch in.phase {
	case Constructed:
		in.afterMount = append(in.afterMount, fn)
	case Mounted:
		errors.Guard("core.Instance.AfterMount", fn)
	}
}

// OnDispose registers a cleanup function to be called when the instance is disposed.
// Returns an unregister function that can be called to remove the disposer.
// The cleanup function will only be called once.
func (in *Instance) OnDispose(cleanup func()) func() {
	if cleanup == nil {
		return func() {}
	}

	in.mu.Lock()
	defer in.mu.Unlock()

	if in.phase == Disposed {
		// Already disposed, run cleanup immediately
		cleanup()
		return func() {}
	}

	in.nextID++
	id := in.nextID
	in.disposers = append(in.disposers, disposer{id: id, fn: cleanup})

	return func() {
		in.mu.Lock()
		defer in.mu.Unlock()
		if i := slices.IndexFunc(in.disposers, func(d disposer) bool { return d.id == id }); i >= 0 {
			in.disposers = slices.Delete(in.disposers, i, i+1)
		}
	}
}

// Disposers returns the number of registered cleanup functions.
func (in *Instance) Disposers() int {
	in.mu.Lock()
	defer in.mu.Unlock()
	return len(in.disposers)
}

// Dispose tears the instance down: animations, bindings, disposers (LIFO),
// then the subtree. Safe to call more than once.
func (in *Instance) Dispose() {
	in.mu.Lock()
	if in.phase == Disposed {
		in.mu.Unlock()
		return
	}
	in.phase = Disposed
	disposers := in.disposers
	in.disposers = nil
	in.afterMount = nil
	in.mu.Unlock()

	in.sched.Dispose()
	in.binder.Close()
	for i := len(disposers) - 1; i >= 0; i-- {
		errors.Guard("core.Instance.Dispose", disposers[i].fn)
	}
	if in.root != nil {
		in.root.Remove()
	}
}

// IsDisposed returns true if this instance has been disposed.
func (in *Instance) IsDisposed() bool {
	return in.phase == Disposed
}

// Ignore reports an event that is not legal in state. The caller must not
// mutate state, animate or emit after calling it.
func (in *Instance) Ignore(event, state string) {
	errors.Report(errors.IllegalTransition(in.kind+"."+event, in.id, event, state))
}
