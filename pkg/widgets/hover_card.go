package widgets

import (
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/binding"
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/dom"
	"github.com/go-drift/motion/pkg/graphics"
	"github.com/go-drift/motion/pkg/reactive"
)

// Hover card slots. The button's scale is shared with its press effect;
// its background color has a slot of its own so a press does not cancel
// the color fade.
var (
	overlaySlot     = animation.SlotOf("overlay", "opacity")
	contentSlot     = animation.SlotOf("content", "y")
	buttonColorSlot = animation.SlotOf("button", "backgroundColor")
	circleSlot      = animation.SlotOf("circle", "scale", "opacity")
)

// HoverCard lifts its content, tints an overlay, grows a decorative
// circle and highlights its button while hovered.
type HoverCard struct {
	*core.Instance
	pointers
	hovered *reactive.Cell[bool]

	ButtonClick core.Event[struct{}]
}

// NewHoverCard creates a card at rest.
func NewHoverCard() *HoverCard {
	h := &HoverCard{
		Instance: core.NewInstance("hover-card"),
		hovered:  reactive.NewCell(false),
	}
	h.pointers.in = h.Instance
	h.press("button", PressStyle{
		Hover:         1.05,
		Pressed:       0.95,
		HoverDuration: 300 * time.Millisecond,
		PressDuration: 100 * time.Millisecond,
	})
	h.Scheduler().Seed(overlaySlot, "opacity", 0)
	h.Scheduler().Seed(circleSlot, "scale", 0)
	h.Scheduler().Seed(circleSlot, "opacity", 0)

	binding.Class(h.Binder(), h.Ref(h.Kind()), "hovered", h.hovered)
	return h
}

// Hovered reports whether the pointer is over the card.
func (h *HoverCard) Hovered() bool { return h.hovered.Value() }

// Mount builds the card under host.
func (h *HoverCard) Mount(host *dom.Node) {
	h.Instance.Mount(host, "div", func(root *dom.Node) {
		root.Append("div", "overlay").SetProp(binding.Writer, "opacity", 0)
		circle := root.Append("div", "circle")
		circle.SetProp(binding.Writer, "scale", 0)
		circle.SetProp(binding.Writer, "opacity", 0)
		content := root.Append("div", "content")
		content.Append("h3", "title").SetText(binding.Writer, "Hover me")
		button := content.Append("button", "button")
		button.SetText(binding.Writer, "Learn more")
		button.SetColor(binding.Writer, "backgroundColor", graphics.Blue500)
	})
}

// Enter starts the hover-in transition. Ignored while hovered.
func (h *HoverCard) Enter() {
	if !h.accept("enter", false) {
		return
	}
	h.hovered.Set(true)
	h.transition(0.1, -5, graphics.Blue600, 1, 0.1)
	h.presses["button"].Handle(PointerEnter)
}

// Leave starts the hover-out transition. Ignored while not hovered.
func (h *HoverCard) Leave() {
	if !h.accept("leave", true) {
		return
	}
	h.hovered.Set(false)
	h.transition(0, 0, graphics.Blue500, 0, 0)
	h.presses["button"].Handle(PointerLeave)
}

// Click presses the card button.
func (h *HoverCard) Click() {
	if h.IsDisposed() {
		h.Ignore("click", "disposed")
		return
	}
	h.ButtonClick.Emit(struct{}{})
}

func (h *HoverCard) accept(event string, hovered bool) bool {
	switch {
	case h.IsDisposed():
		h.Ignore(event, "disposed")
		return false
	case h.hovered.Value() != hovered:
		state := "resting"
		if h.hovered.Value() {
			state = "hovered"
		}
		h.Ignore(event, state)
		return false
	}
	return true
}

func (h *HoverCard) transition(overlay, y float64, color graphics.Color, circleScale, circleOpacity float64) {
	d := 300 * time.Millisecond
	h.Animate(overlaySlot, animation.Spec{
		Target:   h.Ref("overlay"),
		Tracks:   []animation.Track{animation.To("opacity", overlay)},
		Duration: d,
		Restart:  animation.ResumeFromCurrent,
	})
	h.Animate(contentSlot, animation.Spec{
		Target:   h.Ref("content"),
		Tracks:   []animation.Track{animation.To("y", y)},
		Duration: d,
		Restart:  animation.ResumeFromCurrent,
	})
	h.Animate(buttonColorSlot, animation.Spec{
		Target: h.Ref("button"),
		Colors: []animation.ColorTrack{{
			Prop:        "backgroundColor",
			From:        graphics.Blue500,
			To:          color,
			FromCurrent: true,
		}},
		Duration: d,
	})
	h.Animate(circleSlot, animation.Spec{
		Target: h.Ref("circle"),
		Tracks: []animation.Track{
			animation.To("scale", circleScale),
			animation.To("opacity", circleOpacity),
		},
		Duration: 400 * time.Millisecond,
		Restart:  animation.ResumeFromCurrent,
	})
}
