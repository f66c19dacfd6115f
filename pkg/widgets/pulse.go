package widgets

import (
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/binding"
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/dom"
)

// PulseButton is a call-to-action button with a breathing badge and a
// ripple ring that loop until the button is disposed.
type PulseButton struct {
	*core.Instance
	pointers

	Clicked core.Event[struct{}]
}

// NewPulseButton creates a pulse button. Its loops start on mount.
func NewPulseButton() *PulseButton {
	p := &PulseButton{Instance: core.NewInstance("pulse")}
	p.pointers.in = p.Instance
	p.press("button", ButtonPress)
	p.AfterMount(p.loop)
	return p
}

// Mount builds the button under host.
func (p *PulseButton) Mount(host *dom.Node) {
	p.Instance.Mount(host, "div", func(root *dom.Node) {
		root.Append("div", "ripple")
		button := root.Append("button", "button")
		button.SetText(binding.Writer, "Notifications")
		button.Append("span", "badge").SetText(binding.Writer, "3")
	})
}

// Click emits Clicked.
func (p *PulseButton) Click() {
	if p.IsDisposed() {
		p.Ignore("click", "disposed")
		return
	}
	p.Clicked.Emit(struct{}{})
}

func (p *PulseButton) loop() {
	p.Animate(animation.SlotOf("badge", "scale"), animation.Spec{
		Target:   p.Ref("badge"),
		Tracks:   []animation.Track{animation.Keys("scale", 1, 1.2, 1)},
		Duration: 1500 * time.Millisecond,
		Curve:    animation.EaseInOut,
		Repeat:   animation.Infinite,
	})
	p.Animate(animation.SlotOf("ripple", "scale", "opacity"), animation.Spec{
		Target: p.Ref("ripple"),
		Tracks: []animation.Track{
			animation.Keys("scale", 1, 1.5, 1.8),
			animation.Keys("opacity", 0.5, 0.2, 0),
		},
		Duration: 2 * time.Second,
		Curve:    animation.EaseOut,
		Repeat:   animation.Infinite,
	})
}
