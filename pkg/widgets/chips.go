package widgets

import (
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/binding"
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/dom"
	"github.com/go-drift/motion/pkg/reactive"
)

// DefaultChips are the chips of a fresh chip input.
var DefaultChips = []string{"React", "TypeScript", "Tailwind"}

// ChipDuration is the length of the enter and exit animations.
const ChipDuration = 200 * time.Millisecond

// ChipRemovePress scales a chip's remove button.
var ChipRemovePress = PressStyle{Hover: 1.2, Pressed: 0.8, HoverDuration: 100 * time.Millisecond, PressDuration: 100 * time.Millisecond}

type chipEntry struct {
	id   int
	text string
}

// ChipInput is a text field that turns entries into removable chips.
//
// Adding mutates the list first and then animates the new chip in.
// Removing animates the chip out first and splices it once the exit
// completes; an exit superseded by another animation keeps the chip.
type ChipInput struct {
	*core.Instance
	pointers
	entries *reactive.Cell[[]chipEntry]
	input   *reactive.Cell[string]
	nextID  int

	ChipsChange core.Event[[]string]
	ChipAdded   core.Event[string]
	ChipRemoved core.Event[string]
}

// NewChipInput creates a chip input holding initial.
func NewChipInput(initial []string) *ChipInput {
	c := &ChipInput{
		Instance: core.NewInstance("chips"),
		input:    reactive.NewCell(""),
	}
	c.pointers.in = c.Instance
	entries := make([]chipEntry, 0, len(initial))
	for _, text := range initial {
		entries = append(entries, c.newEntry(text))
	}
	c.entries = reactive.NewRef(entries)

	binding.Attr(c.Binder(), c.Ref("input"), "value", c.input, nil)
	core.UseEffect(c.Instance, c.entries, c.reconcile)
	return c
}

// Chips returns the committed chip texts in order.
func (c *ChipInput) Chips() []string {
	entries := c.entries.Value()
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.text
	}
	return out
}

// Input returns the current input text.
func (c *ChipInput) Input() string { return c.input.Value() }

// Mount builds the chip row and the input under host.
func (c *ChipInput) Mount(host *dom.Node) {
	c.Instance.Mount(host, "div", func(root *dom.Node) {
		root.Append("div", "chip-list")
		root.Append("input", "input")
		c.reconcile(c.entries.Value())
	})
}

// SetInput replaces the input text, as typing does.
func (c *ChipInput) SetInput(s string) {
	if c.IsDisposed() {
		c.Ignore("input", "disposed")
		return
	}
	c.input.Set(s)
}

// KeyDown handles a key pressed in the input. Enter adds the trimmed
// input as a chip; Backspace on an empty input removes the last chip.
// Other keys are editing and change nothing here.
func (c *ChipInput) KeyDown(key string) {
	if c.IsDisposed() {
		c.Ignore("keydown", "disposed")
		return
	}
	switch key {
	case "Enter":
		text := strings.TrimSpace(c.input.Value())
		if text == "" {
			c.Ignore("enter", "empty input")
			return
		}
		c.add(text)
	case "Backspace":
		if c.input.Value() != "" {
			return
		}
		n := len(c.entries.Value())
		if n == 0 {
			c.Ignore("backspace", "no chips")
			return
		}
		c.RemoveChip(n - 1)
	}
}

// RemoveChip animates the chip at index out and removes it afterwards.
func (c *ChipInput) RemoveChip(index int) {
	if c.IsDisposed() {
		c.Ignore("remove", "disposed")
		return
	}
	entries := c.entries.Value()
	if index < 0 || index >= len(entries) {
		c.Ignore("remove", "index "+strconv.Itoa(index))
		return
	}
	e := entries[index]
	if c.Root() == nil || c.Root().Find(chipKey(e.id)) == nil {
		c.splice(e.id)
		return
	}
	c.Animate(animation.SlotOf(chipKey(e.id), "scale", "opacity"), animation.Spec{
		Target: c.Ref(chipKey(e.id)),
		Tracks: []animation.Track{
			animation.To("scale", 0),
			animation.To("opacity", 0),
		},
		Duration: ChipDuration,
		Restart:  animation.ResumeFromCurrent,
	}).OnComplete(func() { c.splice(e.id) })
}

// RemoveKey returns the key of the remove button of the chip at index, for
// use with Pointer. It returns "" when index is out of range.
func (c *ChipInput) RemoveKey(index int) string {
	entries := c.entries.Value()
	if index < 0 || index >= len(entries) {
		return ""
	}
	return chipKey(entries[index].id) + "-remove"
}

func (c *ChipInput) add(text string) {
	e := c.newEntry(text)
	next := append(slices.Clone(c.entries.Value()), e)
	c.entries.Set(next)
	c.input.Set("")
	c.ChipAdded.Emit(text)
	c.ChipsChange.Emit(c.Chips())

	c.Animate(animation.SlotOf(chipKey(e.id), "scale", "opacity"), animation.Spec{
		Target: c.Ref(chipKey(e.id)),
		Tracks: []animation.Track{
			animation.FromTo("scale", 0, 1),
			animation.FromTo("opacity", 0, 1),
		},
		Duration: ChipDuration,
	})
}

func (c *ChipInput) splice(id int) {
	entries := c.entries.Value()
	i := slices.IndexFunc(entries, func(e chipEntry) bool { return e.id == id })
	if i < 0 {
		return
	}
	text := entries[i].text
	c.entries.Set(slices.Delete(slices.Clone(entries), i, i+1))
	delete(c.presses, chipKey(id)+"-remove")
	c.ChipRemoved.Emit(text)
	c.ChipsChange.Emit(c.Chips())
}

func (c *ChipInput) newEntry(text string) chipEntry {
	c.nextID++
	e := chipEntry{id: c.nextID, text: text}
	c.press(chipKey(e.id)+"-remove", ChipRemovePress)
	return e
}

// reconcile makes the chip list children match entries, keyed by id.
func (c *ChipInput) reconcile(entries []chipEntry) {
	root := c.Root()
	if root == nil {
		return
	}
	list := root.Find("chip-list")
	if list == nil {
		return
	}
	want := make(map[string]bool, len(entries))
	for _, e := range entries {
		want[chipKey(e.id)] = true
	}
	for _, child := range list.Children() {
		if !want[child.Key()] {
			child.Remove()
		}
	}
	for i, e := range entries {
		key := chipKey(e.id)
		if list.Find(key) != nil {
			continue
		}
		chip := list.Insert(i, "span", key)
		chip.SetClass(binding.Writer, "chip", true)
		chip.Append("span", key+"-label").SetText(binding.Writer, e.text)
		chip.Append("button", key+"-remove").SetText(binding.Writer, "×")
	}
}

func chipKey(id int) string { return "chip-" + strconv.Itoa(id) }
