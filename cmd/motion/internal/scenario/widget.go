// Package scenario builds widgets from scenario config and drives them.
package scenario

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/go-drift/motion/cmd/motion/internal/config"
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/dom"
	"github.com/go-drift/motion/pkg/widgets"
)

// Emit receives one output event of a widget.
type Emit func(widget, event string, value any)

// Widget is a built widget with a uniform action surface.
type Widget struct {
	ID   string
	Kind string

	mount   func(host *dom.Node)
	dispose func()
	inst    *core.Instance
	actions map[string]func(arg string) error
}

// Mount builds the widget's subtree under host.
func (w *Widget) Mount(host *dom.Node) { w.mount(host) }

// Dispose tears the widget down.
func (w *Widget) Dispose() { w.dispose() }

// Instance returns the widget's core instance.
func (w *Widget) Instance() *core.Instance { return w.inst }

// Actions lists the action names the widget accepts, sorted.
func (w *Widget) Actions() []string {
	return slices.Sorted(maps.Keys(w.actions))
}

// Do runs action with arg.
func (w *Widget) Do(action, arg string) error {
	fn, ok := w.actions[action]
	if !ok {
		return fmt.Errorf("widget %q (%s): unknown action %q", w.ID, w.Kind, action)
	}
	return fn(arg)
}

func listen[T any](ev *core.Event[T], emit Emit, widget, name string) {
	ev.Listen(func(v T) { emit(widget, name, v) })
}

// pointer adds the pointer actions of a widget ("pointer" with "role:event").
func pointer(actions map[string]func(string) error, deliver func(role string, ev widgets.PointerEvent)) {
	events := map[string]widgets.PointerEvent{
		"enter": widgets.PointerEnter,
		"leave": widgets.PointerLeave,
		"down":  widgets.PointerDown,
		"up":    widgets.PointerUp,
	}
	actions["pointer"] = func(arg string) error {
		role, name, ok := strings.Cut(arg, ":")
		ev, known := events[name]
		if !ok || !known {
			return fmt.Errorf("pointer %q: want role:enter|leave|down|up", arg)
		}
		deliver(role, ev)
		return nil
	}
}

func none(fn func()) func(string) error {
	return func(string) error { fn(); return nil }
}

func number(fn func(int)) func(string) error {
	return func(arg string) error {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("want a number, got %q", arg)
		}
		fn(n)
		return nil
	}
}

var toggleVariants = map[string]widgets.ToggleVariant{
	"":         widgets.ToggleAnimated,
	"animated": widgets.ToggleAnimated,
	"minimal":  widgets.ToggleMinimal,
	"icon":     widgets.ToggleIcon,
	"material": widgets.ToggleMaterial,
	"square":   widgets.ToggleSquare,
	"glow":     widgets.ToggleGlow,
	"slide":    widgets.ToggleSlide,
}

// Build creates the widget cfg describes and wires its outputs to emit.
func Build(cfg config.Widget, emit Emit) (*Widget, error) {
	w := &Widget{ID: cfg.ID, Kind: cfg.Kind, actions: make(map[string]func(string) error)}
	switch cfg.Kind {
	case "toggle":
		variant, ok := toggleVariants[cfg.Variant]
		if !ok {
			return nil, fmt.Errorf("widget %q: unknown toggle variant %q", cfg.ID, cfg.Variant)
		}
		t := widgets.NewToggle(variant, cfg.On)
		listen(&t.Toggled, emit, cfg.ID, "toggled")
		w.actions["click"] = none(t.Click)
		w.mount, w.dispose, w.inst = t.Mount, t.Dispose, t.Instance

	case "like":
		count := widgets.DefaultLikeCount
		if cfg.Count != nil {
			count = *cfg.Count
		}
		l := widgets.NewLikeButton(cfg.Liked, count)
		listen(&l.LikedChange, emit, cfg.ID, "likedChange")
		w.actions["click"] = none(l.Click)
		pointer(w.actions, l.Pointer)
		w.mount, w.dispose, w.inst = l.Mount, l.Dispose, l.Instance

	case "like-variant":
		variant := widgets.LikeVariant(cfg.Variant)
		if variant == "" {
			variant = widgets.LikeHeart
		}
		l := widgets.NewVariantLikeButton(variant, cfg.Liked)
		listen(&l.LikedChange, emit, cfg.ID, "likedChange")
		w.actions["click"] = none(l.Click)
		pointer(w.actions, l.Pointer)
		w.mount, w.dispose, w.inst = l.Mount, l.Dispose, l.Instance

	case "counter":
		c := widgets.NewCounter(cfg.Value)
		listen(&c.ValueChange, emit, cfg.ID, "valueChange")
		w.actions["increment"] = none(c.Increment)
		w.actions["decrement"] = none(c.Decrement)
		w.actions["reset"] = none(c.Reset)
		pointer(w.actions, c.Pointer)
		w.mount, w.dispose, w.inst = c.Mount, c.Dispose, c.Instance

	case "rating":
		r := widgets.NewStarRating(cfg.Rating)
		listen(&r.RatingChange, emit, cfg.ID, "ratingChange")
		w.actions["click"] = number(r.Click)
		w.actions["enter"] = number(r.Enter)
		w.actions["leave"] = number(r.Leave)
		w.mount, w.dispose, w.inst = r.Mount, r.Dispose, r.Instance

	case "chips":
		c := widgets.NewChipInput(cfg.Chips)
		listen(&c.ChipsChange, emit, cfg.ID, "chipsChange")
		listen(&c.ChipAdded, emit, cfg.ID, "chipAdded")
		listen(&c.ChipRemoved, emit, cfg.ID, "chipRemoved")
		w.actions["input"] = func(arg string) error { c.SetInput(arg); return nil }
		w.actions["key"] = func(arg string) error { c.KeyDown(arg); return nil }
		w.actions["remove"] = number(c.RemoveChip)
		pointer(w.actions, c.Pointer)
		w.mount, w.dispose, w.inst = c.Mount, c.Dispose, c.Instance

	case "progress":
		p := widgets.NewProgressCard(cfg.Progress)
		listen(&p.ProgressChange, emit, cfg.ID, "progressChange")
		listen(&p.Completed, emit, cfg.ID, "completed")
		w.actions["start"] = none(p.Start)
		w.actions["reset"] = none(p.Reset)
		pointer(w.actions, p.Pointer)
		w.mount, w.dispose, w.inst = p.Mount, p.Dispose, p.Instance

	case "tasks":
		tasks := cfg.Tasks
		if tasks == nil {
			tasks = widgets.DefaultTasks()
		}
		l := widgets.NewTaskList(tasks)
		listen(&l.TasksChange, emit, cfg.ID, "tasksChange")
		listen(&l.TaskToggled, emit, cfg.ID, "taskToggled")
		w.actions["toggle"] = number(l.Toggle)
		w.mount, w.dispose, w.inst = l.Mount, l.Dispose, l.Instance

	case "pulse":
		p := widgets.NewPulseButton()
		listen(&p.Clicked, emit, cfg.ID, "clicked")
		w.actions["click"] = none(p.Click)
		pointer(w.actions, p.Pointer)
		w.mount, w.dispose, w.inst = p.Mount, p.Dispose, p.Instance

	case "hover-card":
		h := widgets.NewHoverCard()
		listen(&h.ButtonClick, emit, cfg.ID, "buttonClick")
		w.actions["enter"] = none(h.Enter)
		w.actions["leave"] = none(h.Leave)
		w.actions["click"] = none(h.Click)
		pointer(w.actions, h.Pointer)
		w.mount, w.dispose, w.inst = h.Mount, h.Dispose, h.Instance

	case "spinner":
		s := widgets.NewLoadingSpinner()
		w.mount, w.dispose, w.inst = s.Mount, s.Dispose, s.Instance

	default:
		return nil, fmt.Errorf("widget %q: unknown kind %q", cfg.ID, cfg.Kind)
	}
	return w, nil
}
