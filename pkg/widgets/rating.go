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

// MaxRating is the number of stars.
const MaxRating = 5

// StarRating is a row of five stars with hover preview.
//
// A star is active when its index is at most the hovered star or, with no
// hover, the committed rating.
type StarRating struct {
	*core.Instance
	pointers
	rating *reactive.Cell[int]
	hover  *reactive.Cell[int]
	active [MaxRating]*reactive.Derived[bool]

	RatingChange core.Event[int]
}

// NewStarRating creates a rating with initial stars selected.
func NewStarRating(initial int) *StarRating {
	r := &StarRating{
		Instance: core.NewInstance("rating"),
		rating:   reactive.NewCell(min(max(initial, 0), MaxRating)),
		hover:    reactive.NewCell(0),
	}
	r.pointers.in = r.Instance

	b := r.Binder()
	shown := reactive.NewDerived(func() int {
		if h := r.hover.Value(); h > 0 {
			return h
		}
		return r.rating.Value()
	}, r.hover, r.rating)
	for i := range MaxRating {
		star := i + 1
		key := starKey(star)
		r.press(key, StarPress)
		r.active[i] = reactive.Map[int, bool](shown, func(n int) bool { return star <= n })
		binding.Class(b, r.Ref(key), "active", r.active[i])
		binding.Class(b, r.Ref(key), "current",
			reactive.Map[int, bool](r.rating, func(n int) bool { return star == n }))
	}
	binding.Text(b, r.Ref("rating-text"), r.rating, func(n int) string {
		if n == 0 {
			return "Rate this"
		}
		return strconv.Itoa(n) + "-star rating"
	})
	return r
}

func starKey(star int) string { return "star-" + strconv.Itoa(star) }

// Rating returns the committed rating, 0 when unrated.
func (r *StarRating) Rating() int { return r.rating.Value() }

// Hover returns the hovered star, 0 when none.
func (r *StarRating) Hover() int { return r.hover.Value() }

// Active reports whether star (1-based) is shown as active.
func (r *StarRating) Active(star int) bool {
	if star < 1 || star > MaxRating {
		return false
	}
	return r.active[star-1].Value()
}

// Mount builds the stars under host.
func (r *StarRating) Mount(host *dom.Node) {
	r.Instance.Mount(host, "div", func(root *dom.Node) {
		row := root.Append("div", "stars")
		for star := 1; star <= MaxRating; star++ {
			row.Append("button", starKey(star)).SetText(binding.Writer, "★")
		}
		root.Append("p", "rating-text")
	})
}

// Click commits star as the rating.
func (r *StarRating) Click(star int) {
	if !r.validStar("click", star) {
		return
	}
	r.rating.Set(star)
	r.Animate(animation.SlotOf("rating-text", "scale", "opacity"), animation.Spec{
		Target: r.Ref("rating-text"),
		Tracks: []animation.Track{
			animation.FromTo("scale", 1.5, 1),
			animation.FromTo("opacity", 0, 1),
		},
		Duration: 300 * time.Millisecond,
	})
	r.RatingChange.Emit(star)
}

// Enter previews star and grows it.
func (r *StarRating) Enter(star int) {
	if !r.validStar("enter", star) {
		return
	}
	r.hover.Set(star)
	r.presses[starKey(star)].Handle(PointerEnter)
}

// Leave clears the preview for star.
func (r *StarRating) Leave(star int) {
	if !r.validStar("leave", star) {
		return
	}
	r.hover.Set(0)
	r.presses[starKey(star)].Handle(PointerLeave)
}

func (r *StarRating) validStar(event string, star int) bool {
	switch {
	case r.IsDisposed():
		r.Ignore(event, "disposed")
		return false
	case star < 1 || star > MaxRating:
		r.Ignore(event, "star "+strconv.Itoa(star))
		return false
	}
	return true
}
