package widgets

import (
	"strconv"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/binding"
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/dom"
	"github.com/go-drift/motion/pkg/reactive"
)

// CounterDuration is the length of one display re-tween.
const CounterDuration = 500 * time.Millisecond

var counterSlot = animation.SlotOf("display", "value")

// Counter is a number with decrement, reset and increment buttons.
//
// The committed value changes instantly. The displayed number tweens toward
// it with an ease-out cubic, and every change mid-flight restarts the tween
// from the number currently on screen, so rapid clicks never jump.
type Counter struct {
	*core.Instance
	pointers
	count *reactive.Cell[int]

	ValueChange core.Event[int]
}

// NewCounter creates a counter starting at initial.
func NewCounter(initial int) *Counter {
	c := &Counter{
		Instance: core.NewInstance("counter"),
		count:    reactive.NewCell(initial),
	}
	c.pointers.in = c.Instance
	c.press("minus", IconButtonPress)
	c.press("plus", IconButtonPress)
	c.press("reset", ButtonPress)

	c.Scheduler().Seed(counterSlot, "value", float64(initial))
	core.UseEffect(c.Instance, c.count, c.retween)
	return c
}

// Value returns the committed value.
func (c *Counter) Value() int { return c.count.Value() }

// Displayed returns the unrounded value currently on screen.
func (c *Counter) Displayed() float64 {
	return c.Scheduler().Displayed(counterSlot, "value")
}

// Mount builds the counter under host.
func (c *Counter) Mount(host *dom.Node) {
	c.Instance.Mount(host, "div", func(root *dom.Node) {
		display := root.Append("div", "display")
		display.SetText(binding.Writer, strconv.Itoa(c.count.Value()))
		display.SetProp(binding.Writer, "value", float64(c.count.Value()))
		root.Append("button", "minus").SetText(binding.Writer, "-")
		root.Append("button", "reset").SetText(binding.Writer, "Reset")
		root.Append("button", "plus").SetText(binding.Writer, "+")
	})
}

// Increment adds one.
func (c *Counter) Increment() { c.commit("increment", c.count.Value()+1) }

// Decrement subtracts one.
func (c *Counter) Decrement() { c.commit("decrement", c.count.Value()-1) }

// Reset returns to zero. ValueChange fires even when already at zero.
func (c *Counter) Reset() { c.commit("reset", 0) }

func (c *Counter) commit(event string, v int) {
	if c.IsDisposed() {
		c.Ignore(event, "disposed")
		return
	}
	c.count.Set(v)
	c.ValueChange.Emit(v)
}

func (c *Counter) retween(target int) {
	c.Animate(counterSlot, animation.Spec{
		Target:   c.Ref("display"),
		Tracks:   []animation.Track{animation.To("value", float64(target))},
		Duration: CounterDuration,
		Curve:    animation.EaseOutCubic,
		Restart:  animation.ResumeFromCurrent,
		Text:     func(v float64) string { return strconv.Itoa(animation.DisplayInt(v)) },
	})
}
