package widgets

import (
	"strconv"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/binding"
	"github.com/go-drift/motion/pkg/core"
	"github.com/go-drift/motion/pkg/dom"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/graphics"
	"github.com/go-drift/motion/pkg/reactive"
)

// DefaultLikeCount is the starting count of a fresh like button.
const DefaultLikeCount = 42

// LikeChange is emitted after every like or unlike.
type LikeChange struct {
	Liked bool
	Count int
}

// LikeButton is a heart with a counter. Liking bounces the heart and sends
// a ripple out from the button; the count pops on every change.
type LikeButton struct {
	*core.Instance
	pointers
	liked   *reactive.Cell[bool]
	count   *reactive.Cell[int]
	ripples int

	LikedChange core.Event[LikeChange]
}

// NewLikeButton creates a like button.
func NewLikeButton(initialLiked bool, initialCount int) *LikeButton {
	l := &LikeButton{
		Instance: core.NewInstance("like"),
		liked:    reactive.NewCell(initialLiked),
		count:    reactive.NewCell(initialCount),
	}
	l.pointers.in = l.Instance
	l.press("like", TapPress)

	b := l.Binder()
	binding.Class(b, l.Ref("like"), "liked", l.liked)
	binding.ClassSwitch(b, l.Ref("heart"), l.liked, "text-red-500", "text-gray-400")
	binding.Class(b, l.Ref("heart"), "filled", l.liked)
	binding.Text(b, l.Ref("count"), l.count, strconv.Itoa)
	return l
}

// Liked returns the committed liked state.
func (l *LikeButton) Liked() bool { return l.liked.Value() }

// Count returns the committed count.
func (l *LikeButton) Count() int { return l.count.Value() }

// Mount builds the button under host.
func (l *LikeButton) Mount(host *dom.Node) {
	l.Instance.Mount(host, "button", func(root *dom.Node) {
		root.Append("span", "heart")
		root.Append("span", "count")
	})
}

// Click likes or unlikes.
func (l *LikeButton) Click() {
	if l.IsDisposed() {
		l.Ignore("click", "disposed")
		return
	}
	wasLiked := l.liked.Value()
	l.liked.Set(!wasLiked)
	if wasLiked {
		l.count.Update(func(c int) int { return c - 1 })
	} else {
		l.count.Update(func(c int) int { return c + 1 })
	}

	if !wasLiked {
		l.Animate(animation.SlotOf("heart", "scale"), animation.Spec{
			Target:   l.Ref("heart"),
			Tracks:   []animation.Track{animation.Keys("scale", 1, 1.3, 1)},
			Duration: 300 * time.Millisecond,
		})
		l.ripple()
	}
	l.Animate(animation.SlotOf("count", "scale", "opacity"), animation.Spec{
		Target: l.Ref("count"),
		Tracks: []animation.Track{
			animation.FromTo("scale", 1.5, 1),
			animation.FromTo("opacity", 0, 1),
		},
		Duration: 200 * time.Millisecond,
	})

	l.LikedChange.Emit(LikeChange{Liked: l.liked.Value(), Count: l.count.Value()})
}

// Ripples returns the number of ripple elements currently in the button.
func (l *LikeButton) Ripples() int {
	if l.Root() == nil {
		return 0
	}
	return len(l.Root().FindAll("ripple-"))
}

// ripple adds a ring that expands and fades, then removes itself.
// Each ripple is its own element, so bursts overlap instead of superseding.
func (l *LikeButton) ripple() {
	root := l.Root()
	if root == nil || !root.Attached() {
		errors.Report(errors.MissingTarget("widgets.LikeButton.ripple", l.ID(), "like"))
		return
	}
	l.ripples++
	key := "ripple-" + strconv.Itoa(l.ripples)
	node := root.Append("div", key)
	node.SetClass(binding.Writer, "ripple", true)
	node.SetColor(binding.Writer, "borderColor", graphics.Red500)

	l.Animate(animation.SlotOf(key, "scale", "opacity"), animation.Spec{
		Target: dom.NodeRef(node),
		Tracks: []animation.Track{
			animation.FromTo("scale", 0, 2),
			animation.FromTo("opacity", 1, 0),
		},
		Duration: 600 * time.Millisecond,
	}).OnComplete(node.Remove)
}
