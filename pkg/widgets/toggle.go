package widgets

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/binding"
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/dom"
	"github.com/go-drift/motion/pkg/reactive"
)

// ToggleVariant selects the look and knob travel of a [Toggle].
type ToggleVariant int

const (
	// ToggleAnimated is the labelled dark/light mode switch.
	ToggleAnimated ToggleVariant = iota
	ToggleMinimal
	ToggleIcon
	// ToggleMaterial also grows the knob while on.
	ToggleMaterial
	ToggleSquare
	// ToggleGlow fades a glow in around the knob and track.
	ToggleGlow
	// ToggleSlide slides a background fill in behind the knob.
	ToggleSlide
)

// String returns the variant name.
func (v ToggleVariant) String() string {
	if s, ok := toggleStyles[v]; ok {
		return s.name
	}
	return fmt.Sprintf("ToggleVariant(%d)", int(v))
}

type toggleStyle struct {
	name              string
	onClass, offClass string
	knobOff, knobOn   float64
	knobScaleOn       float64
	label             bool
	icon              bool
	glow              bool
	slide             bool
}

var toggleStyles = map[ToggleVariant]toggleStyle{
	ToggleAnimated: {name: "animated", onClass: "bg-blue-500", offClass: "bg-gray-300", knobOn: 40, label: true},
	ToggleMinimal:  {name: "minimal", onClass: "bg-green-500", offClass: "bg-gray-300", knobOn: 32},
	ToggleIcon:     {name: "icon", onClass: "bg-blue-500", offClass: "bg-red-400", knobOn: 32, icon: true},
	ToggleMaterial: {name: "material", onClass: "bg-purple-200", offClass: "bg-gray-300", knobOn: 24, knobScaleOn: 1.2},
	ToggleSquare:   {name: "square", onClass: "bg-orange-500", offClass: "bg-white", knobOn: 32},
	ToggleGlow:     {name: "glow", onClass: "bg-cyan-500", offClass: "bg-gray-300", knobOn: 32, glow: true},
	ToggleSlide:    {name: "slide", onClass: "bg-gray-200", offClass: "bg-gray-200", knobOff: 4, knobOn: 52, slide: true},
}

// SlideBackgroundSpring drives the slide variant's background fill.
var SlideBackgroundSpring = animation.SpringDescription{Mass: 1, Stiffness: 300, Damping: 30}

// Toggle is an on/off switch whose knob springs between two positions.
//
// Output: Toggled fires with the new value after every click.
type Toggle struct {
	*core.Instance
	style toggleStyle
	on    *reactive.Cell[bool]

	Toggled core.Event[bool]
}

// NewToggle creates a toggle of the given variant.
func NewToggle(variant ToggleVariant, initial bool) *Toggle {
	style, ok := toggleStyles[variant]
	if !ok {
		style = toggleStyles[ToggleAnimated]
	}
	t := &Toggle{
		Instance: core.NewInstance("toggle-" + style.name),
		style:    style,
		on:       reactive.NewCell(initial),
	}

	b := t.Binder()
	binding.ClassSwitch(b, t.Ref(t.Kind()), t.on, style.onClass, style.offClass)
	binding.Attr(b, t.Ref(t.Kind()), "aria-checked", t.on, nil)
	if style.label {
		label := reactive.Map(t.on, func(on bool) string {
			if on {
				return "Dark mode"
			}
			return "Light mode"
		})
		binding.Text(b, t.Ref("label"), label, nil)
	}
	if style.icon {
		icon := reactive.Map(t.on, func(on bool) string {
			if on {
				return "check"
			}
			return "x"
		})
		binding.Attr(b, t.Ref("icon"), "data-icon", icon, nil)
	}
	if style.knobScaleOn > 0 {
		binding.ClassSwitch(b, t.Ref("knob"), t.on, "bg-purple-600", "bg-gray-500")
	}
	return t
}

// Value returns the committed state.
func (t *Toggle) Value() bool { return t.on.Value() }

// State exposes the committed state for derived views.
func (t *Toggle) State() reactive.Readable[bool] { return t.on }

// Mount builds the switch under host and moves the knob to its initial side.
func (t *Toggle) Mount(host *dom.Node) {
	t.AfterMount(func() { t.moveKnob(t.on.Value()) })
	t.Instance.Mount(host, "button", func(root *dom.Node) {
		if t.style.slide {
			bg := root.Append("div", "background")
			bg.SetProp(binding.Writer, "x", -100)
			t.Scheduler().Seed("background.x", "x", -100)
		}
		root.Append("div", "knob")
		if t.style.icon {
			root.Find("knob").Append("span", "icon")
		}
		if t.style.label {
			root.Append("span", "label")
		}
	})
}

// Click flips the switch.
func (t *Toggle) Click() {
	if t.IsDisposed() {
		t.Ignore("click", "disposed")
		return
	}
	next := !t.on.Value()
	t.on.Set(next)
	t.moveKnob(next)
	t.Toggled.Emit(next)
}

func (t *Toggle) moveKnob(on bool) {
	spring := animation.KnobSpring()
	x := t.style.knobOff
	if on {
		x = t.style.knobOn
	}
	tracks := []animation.Track{animation.To("x", x)}
	props := []string{"x"}
	if t.style.knobScaleOn > 0 {
		scale := 1.0
		if on {
			scale = t.style.knobScaleOn
		}
		tracks = append(tracks, animation.To("scale", scale))
		props = append(props, "scale")
	}
	t.Animate(animation.SlotOf("knob", props...), animation.Spec{
		Target:  t.Ref("knob"),
		Tracks:  tracks,
		Spring:  &spring,
		Restart: animation.ResumeFromCurrent,
	})

	if t.style.glow {
		glow := 0.0
		if on {
			glow = 1
		}
		for _, role := range []string{"knob", t.Kind()} {
			t.Animate(animation.SlotOf(role, "glow"), animation.Spec{
				Target:   t.Ref(role),
				Tracks:   []animation.Track{animation.To("glow", glow)},
				Duration: 300 * time.Millisecond,
				Curve:    animation.EaseOut,
			})
		}
	}
	if t.style.slide {
		bg := -100.0
		if on {
			bg = 0
		}
		spring := SlideBackgroundSpring
		t.Animate("background.x", animation.Spec{
			Target:  t.Ref("background"),
			Tracks:  []animation.Track{animation.To("x", bg)},
			Spring:  &spring,
			Restart: animation.ResumeFromCurrent,
		})
	}
}
