package widgets

import (
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/binding"
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/dom"
)

// LoadingSpinner shows three independent loops: a breathing outer ring,
// a rotating spinner and a fading label.
type LoadingSpinner struct {
	*core.Instance
}

// NewLoadingSpinner creates a spinner. Its loops start on mount and stop
// on dispose.
func NewLoadingSpinner() *LoadingSpinner {
	s := &LoadingSpinner{Instance: core.NewInstance("spinner")}
	s.AfterMount(s.loop)
	return s
}

// Mount builds the spinner under host.
func (s *LoadingSpinner) Mount(host *dom.Node) {
	s.Instance.Mount(host, "div", func(root *dom.Node) {
		root.Append("div", "outer-ring")
		root.Append("div", "spinner-wheel")
		root.Append("p", "text").SetText(binding.Writer, "Loading...")
	})
}

func (s *LoadingSpinner) loop() {
	breathe := 1500 * time.Millisecond
	s.Animate(animation.SlotOf("outer-ring", "scale", "opacity"), animation.Spec{
		Target: s.Ref("outer-ring"),
		Tracks: []animation.Track{
			animation.Keys("scale", 1, 1.2, 1),
			animation.Keys("opacity", 1, 0.5, 1),
		},
		Duration: breathe,
		Curve:    animation.EaseInOut,
		Repeat:   animation.Infinite,
	})
	s.Animate(animation.SlotOf("spinner-wheel", "rotate"), animation.Spec{
		Target:   s.Ref("spinner-wheel"),
		Tracks:   []animation.Track{animation.FromTo("rotate", 0, 360)},
		Duration: time.Second,
		Repeat:   animation.Infinite,
	})
	s.Animate(animation.SlotOf("text", "opacity"), animation.Spec{
		Target:   s.Ref("text"),
		Tracks:   []animation.Track{animation.Keys("opacity", 1, 0.5, 1)},
		Duration: breathe,
		Curve:    animation.EaseInOut,
		Repeat:   animation.Infinite,
	})
}
