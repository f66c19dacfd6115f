package widgets

import (
	"fmt"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/core"
)

// PointerEvent is a mouse interaction on an element.
type PointerEvent int

const (
	PointerEnter PointerEvent = iota
	PointerLeave
	PointerDown
	PointerUp
)

func (e PointerEvent) String() string {
	switch e {
	case PointerEnter:
		return "enter"
	case PointerLeave:
		return "leave"
	case PointerDown:
		return "down"
	case PointerUp:
		return "up"
	default:
		return fmt.Sprintf("PointerEvent(%d)", int(e))
	}
}

// PressStyle configures hover and press scaling.
type PressStyle struct {
	// Hover is the scale while hovered and after release. Zero means 1.
	Hover float64
	// Pressed is the scale while the pointer is down.
	Pressed float64
	// HoverDuration applies to enter and leave.
	HoverDuration time.Duration
	// PressDuration applies to down and up.
	PressDuration time.Duration
	// Disabled, when set and true, suppresses enter, down and up. Leave
	// always runs so a disabled element settles back to rest.
	Disabled func() bool
}

// Standard press styles.
var (
	// ButtonPress grows slightly on hover and shrinks on press.
	ButtonPress = PressStyle{Hover: 1.05, Pressed: 0.95, HoverDuration: 200 * time.Millisecond, PressDuration: 100 * time.Millisecond}
	// IconButtonPress is the stronger variant for small round buttons.
	IconButtonPress = PressStyle{Hover: 1.1, Pressed: 0.9, HoverDuration: 200 * time.Millisecond, PressDuration: 100 * time.Millisecond}
	// TapPress has no hover growth, only a deep press.
	TapPress = PressStyle{Hover: 1, Pressed: 0.85, HoverDuration: 100 * time.Millisecond, PressDuration: 100 * time.Millisecond}
	// StarPress is used by rating stars.
	StarPress = PressStyle{Hover: 1.2, Pressed: 0.9, HoverDuration: 200 * time.Millisecond, PressDuration: 100 * time.Millisecond}
)

// Press drives the scale slot of one element role.
type Press struct {
	in    *core.Instance
	role  string
	style PressStyle
}

// NewPress binds style to the element with key role inside in.
func NewPress(in *core.Instance, role string, style PressStyle) *Press {
	if style.Hover == 0 {
		style.Hover = 1
	}
	return &Press{in: in, role: role, style: style}
}

// Slot returns the slot the press animates.
func (p *Press) Slot() animation.Slot {
	return animation.SlotOf(p.role, "scale")
}

// Handle animates the response to ev. It returns nil when the element is
// disabled and ev is suppressed.
func (p *Press) Handle(ev PointerEvent) *animation.Handle {
	disabled := p.style.Disabled != nil && p.style.Disabled()
	var target float64
	var d time.Duration
	switch ev {
	case PointerEnter:
		target, d = p.style.Hover, p.style.HoverDuration
	case PointerLeave:
		target, d = 1, p.style.HoverDuration
		disabled = false
	case PointerDown:
		target, d = p.style.Pressed, p.style.PressDuration
	case PointerUp:
		target, d = p.style.Hover, p.style.PressDuration
	default:
		return nil
	}
	if disabled {
		return nil
	}
	return p.in.Animate(p.Slot(), animation.Spec{
		Target:   p.in.Ref(p.role),
		Tracks:   []animation.Track{animation.To("scale", target)},
		Duration: d,
		Restart:  animation.ResumeFromCurrent,
	})
}

// pointers routes pointer events to the presses of one widget.
type pointers struct {
	in      *core.Instance
	presses map[string]*Press
}

func (p *pointers) press(role string, style PressStyle) *Press {
	if p.presses == nil {
		p.presses = make(map[string]*Press)
	}
	pr := NewPress(p.in, role, style)
	p.presses[role] = pr
	return pr
}

// Pointer delivers a pointer event to the element with key role.
// Events for elements without pointer effects are ignored.
func (p *pointers) Pointer(role string, ev PointerEvent) {
	pr := p.presses[role]
	if pr == nil || p.in.IsDisposed() {
		p.in.Ignore("pointer-"+ev.String(), role)
		return
	}
	pr.Handle(ev)
}
