package animation

import (
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/go-drift/motion/pkg/dom"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/graphics"
)

// Status represents the lifecycle state of a [Handle].
//
//	           tick reaches progress 1
//	Running ─────────────────────────► Completed
//	   │
//	   │ Cancel / superseded / dispose
//	   └─────────────────────────────► Cancelled
//
// Completed and Cancelled are terminal.
type Status int

const (
	// Running means the handle is (or will be, once mounted) writing frames.
	Running Status = iota
	// Completed means the handle wrote its final frame.
	Completed
	// Cancelled means the handle was stopped before completing.
	Cancelled
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case Running:
		return "running"
	case Completed:
		return "completed"
	case Cancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Infinite makes a handle loop until it is cancelled.
const Infinite = -1

// RestartPolicy decides where a handle starts when its slot was busy.
type RestartPolicy int

const (
	// ResetThenPlay starts from the first keyframe given in the Spec.
	ResetThenPlay RestartPolicy = iota
	// ResumeFromCurrent starts from the value the slot is currently
	// displaying, so re-targeting mid-flight never jumps.
	ResumeFromCurrent
)

// Track animates one numeric property through keyframes. A track with a
// single value animates from the slot's current value to that value.
type Track struct {
	Prop   string
	Values Keyframes
}

// To animates prop from its current value to v.
func To(prop string, v float64) Track {
	return Track{Prop: prop, Values: Keyframes{v}}
}

// FromTo animates prop from a to b.
func FromTo(prop string, a, b float64) Track {
	return Track{Prop: prop, Values: Keyframes{a, b}}
}

// Keys animates prop through every stop in values.
func Keys(prop string, values ...float64) Track {
	return Track{Prop: prop, Values: Keyframes(values)}
}

// ColorTrack animates one color property.
type ColorTrack struct {
	Prop     string
	From, To graphics.Color
	// FromCurrent starts from the slot's current color instead of From.
	FromCurrent bool
}

// Spec describes one animation request.
type Spec struct {
	// Target is resolved on every frame. Frames whose target is missing
	// are skipped.
	Target dom.Ref
	Tracks []Track
	Colors []ColorTrack
	// Duration of one play. Ignored when Spring is set.
	Duration time.Duration
	// Delay before the first frame is written.
	Delay time.Duration
	// Curve shapes progress. Nil means linear.
	Curve Curve
	// Spring, when set, drives every track's final keyframe with a spring
	// simulation instead of a fixed duration.
	Spring *SpringDescription
	// Repeat is the number of extra plays, or Infinite.
	Repeat int
	// Restart selects where the handle starts when the slot was busy.
	Restart RestartPolicy
	// Text, when set, renders the first track's value as the target's text
	// on every frame. Rounding happens here and nowhere else.
	Text func(v float64) string
}

var handleIDs atomic.Uint64

// Handle is one running or finished animation.
//
// Handles are created by [Scheduler.Schedule]. Only the owning scheduler
// starts them; callers observe, await or cancel them.
type Handle struct {
	id      uint64
	slot    Slot
	widget  string
	writer  dom.Writer
	spec    Spec
	tracks  []Track
	colors  []ColorTrack
	springs []*SpringSimulation
	status  Status
	ticker  *Ticker
	started time.Time
	lastT   time.Duration

	current      map[string]float64
	velocity     map[string]float64
	currentColor map[string]graphics.Color

	done       chan struct{}
	cancelled  chan struct{}
	onComplete []func()
	onFinish   []func(Status)
	missing    bool
	frames     int
}

func newHandle(widget string, slot Slot, spec Spec) *Handle {
	id := handleIDs.Add(1)
	return &Handle{
		id:           id,
		slot:         slot,
		widget:       widget,
		writer:       dom.Writer("handle:" + strconv.FormatUint(id, 10)),
		spec:         spec,
		status:       Running,
		current:      make(map[string]float64),
		velocity:     make(map[string]float64),
		currentColor: make(map[string]graphics.Color),
		done:         make(chan struct{}),
		cancelled:    make(chan struct{}),
	}
}

// ID returns the process-unique handle id.
func (h *Handle) ID() uint64 { return h.id }

// Slot returns the slot the handle was scheduled into.
func (h *Handle) Slot() Slot { return h.slot }

// Writer returns the tag used for this handle's writes in the document journal.
func (h *Handle) Writer() dom.Writer { return h.writer }

// Status returns the current lifecycle state.
func (h *Handle) Status() Status { return h.status }

// Frames returns the number of frames that wrote to the target.
func (h *Handle) Frames() int { return h.frames }

// Done is closed when the handle completes. It is never closed for a
// cancelled handle, so "animate out, then remove" sequences stay put
// when a newer animation supersedes the exit.
func (h *Handle) Done() <-chan struct{} { return h.done }

// CancelledC is closed when the handle is cancelled.
func (h *Handle) CancelledC() <-chan struct{} { return h.cancelled }

// OnComplete registers fn to run once the handle completes. It never runs
// for a cancelled handle. If the handle already completed, fn runs now.
func (h *Handle) OnComplete(fn func()) *Handle {
	switch h.status {
	case Completed:
		errors.Guard("animation.Handle.OnComplete", fn)
	case Running:
		h.onComplete = append(h.onComplete, fn)
	}
	return h
}

// Value returns the current unrounded value of prop and whether the handle
// animates it.
func (h *Handle) Value(prop string) (float64, bool) {
	v, ok := h.current[prop]
	return v, ok
}

// Cancel stops the handle. Cancelling a finished handle is a no-op.
func (h *Handle) Cancel() {
	if h.status != Running {
		return
	}
	h.status = Cancelled
	if h.ticker != nil {
		h.ticker.Stop()
	}
	close(h.cancelled)
	h.onComplete = nil
	h.finish()
}

// prepare resolves implicit start values against the slot's memory.
func (h *Handle) prepare(values map[string]float64, velocities map[string]float64, colors map[string]graphics.Color) {
	h.tracks = make([]Track, len(h.spec.Tracks))
	for i, tr := range h.spec.Tracks {
		cur, known := values[tr.Prop]
		if !known {
			cur = defaultValue(tr.Prop)
		}
		switch {
		case len(tr.Values) == 1:
			tr.Values = Keyframes{cur, tr.Values[0]}
		case h.spec.Restart == ResumeFromCurrent && known && len(tr.Values) > 0:
			vals := append(Keyframes(nil), tr.Values...)
			vals[0] = cur
			tr.Values = vals
		}
		h.tracks[i] = tr
		h.current[tr.Prop] = tr.Values.First()
	}
	h.colors = make([]ColorTrack, len(h.spec.Colors))
	for i, ct := range h.spec.Colors {
		if c, ok := colors[ct.Prop]; ok && (ct.FromCurrent || h.spec.Restart == ResumeFromCurrent) {
			ct.From = c
		}
		h.colors[i] = ct
		h.currentColor[ct.Prop] = ct.From
	}
	if h.spec.Spring != nil {
		h.springs = make([]*SpringSimulation, len(h.tracks))
		for i, tr := range h.tracks {
			v := 0.0
			if h.spec.Restart == ResumeFromCurrent {
				v = velocities[tr.Prop]
			}
			h.springs[i] = NewSpringSimulation(*h.spec.Spring, tr.Values.First(), v, tr.Values.Last())
		}
	}
}

// start begins frame delivery. Called by the scheduler once the widget is mounted.
func (h *Handle) start() {
	if h.status != Running || h.ticker != nil {
		return
	}
	h.started = Now()
	h.ticker = NewTicker(h.tick)
	h.ticker.Start()
}

func (h *Handle) tick(elapsed time.Duration) {
	// A queued frame may arrive after cancellation; it must not write.
	if h.status != Running {
		return
	}
	t := elapsed - h.spec.Delay
	if t < 0 {
		return
	}

	finished := false
	if h.springs != nil {
		finished = h.stepSprings(t)
	} else {
		var progress float64
		progress, finished = h.progress(t)
		eased := progress
		if h.spec.Curve != nil {
			eased = h.spec.Curve(progress)
		}
		for _, tr := range h.tracks {
			h.current[tr.Prop] = tr.Values.At(eased)
		}
		for _, ct := range h.colors {
			h.currentColor[ct.Prop] = graphics.Lerp(ct.From, ct.To, eased)
		}
	}
	h.write()

	if finished {
		h.complete()
	}
}

// progress returns normalized progress within the current play and
// whether the last play has ended.
func (h *Handle) progress(t time.Duration) (float64, bool) {
	d := h.spec.Duration
	if d <= 0 {
		return 1, h.spec.Repeat != Infinite
	}
	if h.spec.Repeat == Infinite {
		return float64(t%d) / float64(d), false
	}
	total := d * time.Duration(h.spec.Repeat+1)
	if t >= total {
		return 1, true
	}
	return float64(t%d) / float64(d), false
}

func (h *Handle) stepSprings(t time.Duration) bool {
	dt := (t - h.lastT).Seconds()
	h.lastT = t
	done := true
	for i, sim := range h.springs {
		sim.Step(dt)
		prop := h.tracks[i].Prop
		h.current[prop] = sim.Position()
		h.velocity[prop] = sim.Velocity()
		if !sim.IsDone() {
			done = false
		}
	}
	return done
}

func (h *Handle) write() {
	n, ok := h.spec.Target.Resolve()
	if !ok {
		if !h.missing {
			h.missing = true
			errors.Report(errors.MissingTarget("animation.Handle.tick", h.widget, h.spec.Target.Key()))
		}
		return
	}
	for _, tr := range h.tracks {
		n.SetProp(h.writer, tr.Prop, h.current[tr.Prop])
	}
	for _, ct := range h.colors {
		n.SetColor(h.writer, ct.Prop, h.currentColor[ct.Prop])
	}
	if h.spec.Text != nil && len(h.tracks) > 0 {
		n.SetText(h.writer, h.spec.Text(h.current[h.tracks[0].Prop]))
	}
	h.frames++
}

func (h *Handle) complete() {
	h.status = Completed
	if h.ticker != nil {
		h.ticker.Stop()
	}
	close(h.done)
	callbacks := h.onComplete
	h.onComplete = nil
	h.finish()
	for _, fn := range callbacks {
		errors.Guard("animation.Handle.OnComplete", fn)
	}
}

func (h *Handle) finish() {
	hooks := h.onFinish
	h.onFinish = nil
	for _, fn := range hooks {
		fn(h.status)
	}
}

func defaultValue(prop string) float64 {
	switch prop {
	case "scale", "opacity":
		return 1
	default:
		return 0
	}
}
