package animation

import (
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/go-drift/motion/pkg/graphics"
)

// Slot addresses an animation target inside one widget instance: an element
// role plus the property set it animates ("knob.x", "badge.scale").
// At most one handle occupies a slot at any instant.
type Slot string

// SlotOf joins an element role and a property set into a slot name.
func SlotOf(role string, props ...string) Slot {
	if len(props) == 0 {
		return Slot(role)
	}
	return Slot(role + "." + strings.Join(props, "+"))
}

// Observer receives scheduler lifecycle notifications.
type Observer interface {
	AnimationStarted(widget string, slot Slot)
	AnimationFinished(widget string, slot Slot, status Status, elapsed time.Duration)
}

var (
	observerMu sync.RWMutex
	observer   Observer
)

// SetObserver installs the process-wide observer. Returns the previous one.
func SetObserver(o Observer) Observer {
	observerMu.Lock()
	defer observerMu.Unlock()
	prev := observer
	observer = o
	return prev
}

func currentObserver() Observer {
	observerMu.RLock()
	defer observerMu.RUnlock()
	return observer
}

type schedulerPhase int

const (
	phaseConstructed schedulerPhase = iota
	phaseMounted
	phaseDisposed
)

// slotMemory is the last displayed state of a slot's properties.
type slotMemory struct {
	values   map[string]float64
	velocity map[string]float64
	colors   map[string]graphics.Color
}

// Scheduler owns the running handles of one widget instance.
//
// Scheduling is synchronous and single-threaded: the previous occupant of a
// slot is cancelled before the new handle is created, so exclusion holds by
// construction. Different slots animate concurrently.
//
// Requests made before [Scheduler.Mount] are queued and start on mount; a
// newer request for the same slot supersedes (cancels) a queued one.
// After [Scheduler.Dispose] every request returns a cancelled handle.
type Scheduler struct {
	widget string
	phase  schedulerPhase
	slots  map[Slot]*Handle
	order  []*Handle
	memory map[Slot]*slotMemory
}

// NewScheduler creates a scheduler for the widget with the given id.
func NewScheduler(widget string) *Scheduler {
	return &Scheduler{
		widget: widget,
		slots:  make(map[Slot]*Handle),
		memory: make(map[Slot]*slotMemory),
	}
}

// Schedule starts spec in slot, cancelling the slot's current handle first.
func (s *Scheduler) Schedule(slot Slot, spec Spec) *Handle {
	h := newHandle(s.widget, slot, spec)
	if s.phase == phaseDisposed {
		h.Cancel()
		return h
	}

	if prior := s.slots[slot]; prior != nil {
		prior.Cancel()
	}

	mem := s.memoryFor(slot)
	h.prepare(mem.values, mem.velocity, mem.colors)
	s.slots[slot] = h
	h.onFinish = append(h.onFinish, func(status Status) { s.release(h, status) })

	if s.phase == phaseMounted {
		s.begin(h)
	} else {
		s.order = append(s.order, h)
	}
	return h
}

// Cancel cancels the handle in slot, if any.
func (s *Scheduler) Cancel(slot Slot) {
	if h := s.slots[slot]; h != nil {
		h.Cancel()
	}
}

// Current returns the handle occupying slot, or nil.
func (s *Scheduler) Current(slot Slot) *Handle {
	return s.slots[slot]
}

// Active returns the number of occupied slots.
func (s *Scheduler) Active() int {
	return len(s.slots)
}

// Slots returns the occupied slots.
func (s *Scheduler) Slots() []Slot {
	out := make([]Slot, 0, len(s.slots))
	for slot := range s.slots {
		out = append(out, slot)
	}
	return out
}

// Displayed returns the last displayed value of prop in slot. For a running
// handle that is its current frame value.
func (s *Scheduler) Displayed(slot Slot, prop string) float64 {
	if h := s.slots[slot]; h != nil {
		if v, ok := h.Value(prop); ok && h.frames > 0 {
			return v
		}
	}
	if mem := s.memory[slot]; mem != nil {
		if v, ok := mem.values[prop]; ok {
			return v
		}
	}
	return defaultValue(prop)
}

// Seed records v as the displayed value of prop in slot, for properties
// whose resting value is not the default (a circle that starts hidden at
// scale 0). Seeding a slot that already animated overwrites its memory.
func (s *Scheduler) Seed(slot Slot, prop string, v float64) {
	s.memoryFor(slot).values[prop] = v
}

// Mounted reports whether Mount has run and Dispose has not.
func (s *Scheduler) Mounted() bool { return s.phase == phaseMounted }

// Mount starts every queued handle. Later requests start immediately.
func (s *Scheduler) Mount() {
	if s.phase != phaseConstructed {
		return
	}
	s.phase = phaseMounted
	queued := s.order
	s.order = nil
	for _, h := range queued {
		s.begin(h)
	}
}

// Dispose cancels every handle, including infinite loops. The scheduler
// accepts no further work.
func (s *Scheduler) Dispose() {
	if s.phase == phaseDisposed {
		return
	}
	s.phase = phaseDisposed
	for _, h := range s.order {
		h.Cancel()
	}
	s.order = nil
	for _, h := range s.slots {
		h.Cancel()
	}
	s.slots = make(map[Slot]*Handle)
}

func (s *Scheduler) begin(h *Handle) {
	if h.Status() != Running {
		return
	}
	if o := currentObserver(); o != nil {
		o.AnimationStarted(s.widget, h.slot)
	}
	h.start()
}

func (s *Scheduler) release(h *Handle, status Status) {
	if h.frames > 0 {
		mem := s.memoryFor(h.slot)
		maps.Copy(mem.values, h.current)
		maps.Copy(mem.velocity, h.velocity)
		maps.Copy(mem.colors, h.currentColor)
		if status == Completed {
			for prop := range h.velocity {
				mem.velocity[prop] = 0
			}
		}
	}
	if s.slots[h.slot] == h {
		delete(s.slots, h.slot)
	}
	if o := currentObserver(); o != nil && !h.started.IsZero() {
		o.AnimationFinished(s.widget, h.slot, status, Since(h.started))
	}
}

func (s *Scheduler) memoryFor(slot Slot) *slotMemory {
	mem := s.memory[slot]
	if mem == nil {
		mem = &slotMemory{
			values:   make(map[string]float64),
			velocity: make(map[string]float64),
			colors:   make(map[string]graphics.Color),
		}
		s.memory[slot] = mem
	}
	return mem
}
