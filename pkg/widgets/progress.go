package widgets

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/binding"
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/dom"
	"github.com/go-drift/motion/pkg/reactive"
)

// ProgressPhase is the run state of a [ProgressCard].
type ProgressPhase int

const (
	ProgressIdle ProgressPhase = iota
	ProgressRunning
	ProgressComplete
)

func (p ProgressPhase) String() string {
	switch p {
	case ProgressIdle:
		return "idle"
	case ProgressRunning:
		return "running"
	case ProgressComplete:
		return "complete"
	default:
		return fmt.Sprintf("ProgressPhase(%d)", int(p))
	}
}

// Progress timing.
const (
	ProgressStep     = 2
	ProgressInterval = 50 * time.Millisecond
	ShimmerDuration  = time.Second
	ShimmerTravel    = 400
)

var shimmerSlot = animation.SlotOf("shimmer", "x")

// ProgressCard runs a simulated task from 0 to 100 percent with a shimmer
// sweeping over the bar while it runs.
type ProgressCard struct {
	*core.Instance
	pointers
	phase    *reactive.Cell[ProgressPhase]
	progress *reactive.Cell[int]

	ProgressChange core.Event[int]
	Completed      core.Event[struct{}]
}

// NewProgressCard creates an idle card showing initial percent.
func NewProgressCard(initial int) *ProgressCard {
	p := &ProgressCard{
		Instance: core.NewInstance("progress"),
		phase:    reactive.NewCell(ProgressIdle),
		progress: reactive.NewCell(min(max(initial, 0), 100)),
	}
	p.pointers.in = p.Instance
	running := reactive.Map(p.phase, func(ph ProgressPhase) bool { return ph == ProgressRunning })
	style := ButtonPress
	style.Disabled = running.Value
	p.press("start", style)
	p.press("reset", style)

	b := p.Binder()
	binding.Prop(b, p.Ref("bar"), "width", reactive.Map(p.progress, func(v int) float64 { return float64(v) }))
	binding.Text(b, p.Ref("percent"), p.progress, func(v int) string { return strconv.Itoa(v) + "%" })
	binding.Attr(b, p.Ref("progress"), "data-phase", p.phase, nil)
	for _, key := range []string{"start", "reset"} {
		binding.Class(b, p.Ref(key), "disabled", running)
	}
	return p
}

// Phase returns the run state.
func (p *ProgressCard) Phase() ProgressPhase { return p.phase.Value() }

// Progress returns the committed percentage.
func (p *ProgressCard) Progress() int { return p.progress.Value() }

// Mount builds the card under host.
func (p *ProgressCard) Mount(host *dom.Node) {
	p.Instance.Mount(host, "div", func(root *dom.Node) {
		track := root.Append("div", "track")
		track.Append("div", "bar")
		track.Append("div", "shimmer")
		root.Append("span", "percent")
		root.Append("button", "start").SetText(binding.Writer, "Start")
		root.Append("button", "reset").SetText(binding.Writer, "Reset")
	})
}

// Start runs the card from zero. Ignored while running.
func (p *ProgressCard) Start() {
	if ok := p.accept("start"); !ok {
		return
	}
	p.phase.Set(ProgressRunning)
	p.progress.Set(0)
	p.Animate(shimmerSlot, animation.Spec{
		Target:   p.Ref("shimmer"),
		Tracks:   []animation.Track{animation.FromTo("x", 0, ShimmerTravel)},
		Duration: ShimmerDuration,
		Repeat:   animation.Infinite,
	})
	core.UseInterval(p.Instance, ProgressInterval, p.step)
}

// Reset returns an idle or complete card to zero. Ignored while running.
func (p *ProgressCard) Reset() {
	if ok := p.accept("reset"); !ok {
		return
	}
	p.phase.Set(ProgressIdle)
	p.progress.Set(0)
	p.Scheduler().Cancel(shimmerSlot)
}

func (p *ProgressCard) accept(event string) bool {
	switch {
	case p.IsDisposed():
		p.Ignore(event, "disposed")
		return false
	case p.phase.Value() == ProgressRunning:
		p.Ignore(event, ProgressRunning.String())
		return false
	}
	return true
}

// step advances one interval. The tick that reaches 100 also completes.
func (p *ProgressCard) step() bool {
	next := min(p.progress.Value()+ProgressStep, 100)
	p.progress.Set(next)
	p.ProgressChange.Emit(next)
	if next < 100 {
		return true
	}
	p.phase.Set(ProgressComplete)
	p.Scheduler().Cancel(shimmerSlot)
	p.Completed.Emit(struct{}{})
	return false
}
