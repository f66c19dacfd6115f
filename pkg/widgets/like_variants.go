package widgets

import (
	"fmt"
	"math"
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

// LikeVariant selects the icon and accent color of a [VariantLikeButton].
type LikeVariant string

const (
	LikeHeart    LikeVariant = "heart"
	LikeThumbs   LikeVariant = "thumbs"
	LikeStar     LikeVariant = "star"
	LikeBookmark LikeVariant = "bookmark"
)

// LikeVariants lists every variant in display order.
var LikeVariants = []LikeVariant{LikeHeart, LikeThumbs, LikeStar, LikeBookmark}

// Accent returns the CSS color name of the variant.
func (v LikeVariant) Accent() string {
	switch v {
	case LikeThumbs:
		return "blue"
	case LikeStar:
		return "yellow"
	case LikeBookmark:
		return "purple"
	default:
		return "red"
	}
}

// Burst geometry.
const (
	ParticleCount   = 6
	ParticleRadius  = 30.0
	ParticleStagger = 50 * time.Millisecond
)

// VariantLikeChange is emitted after every like or unlike.
type VariantLikeChange struct {
	Variant LikeVariant
	Liked   bool
}

// VariantLikeButton is an icon button that bursts into a ring and a circle
// of particles when liked.
type VariantLikeButton struct {
	*core.Instance
	pointers
	variant LikeVariant
	accent  graphics.Color
	liked   *reactive.Cell[bool]
	bursts  int

	LikedChange core.Event[VariantLikeChange]
}

// NewVariantLikeButton creates a like button for variant.
func NewVariantLikeButton(variant LikeVariant, initialLiked bool) *VariantLikeButton {
	accent, ok := graphics.Named(variant.Accent())
	if !ok {
		accent = graphics.Red500
	}
	l := &VariantLikeButton{
		Instance: core.NewInstance("like-" + string(variant)),
		variant:  variant,
		accent:   accent,
		liked:    reactive.NewCell(initialLiked),
	}
	l.pointers.in = l.Instance
	l.press(l.Kind(), TapPress)

	b := l.Binder()
	binding.ClassSwitch(b, l.Ref("icon"), l.liked, "text-"+variant.Accent(), "text-gray-400")
	binding.Class(b, l.Ref("icon"), "filled", l.liked)
	return l
}

// Variant returns the button's variant.
func (l *VariantLikeButton) Variant() LikeVariant { return l.variant }

// Liked returns the committed liked state.
func (l *VariantLikeButton) Liked() bool { return l.liked.Value() }

// Mount builds the button under host.
func (l *VariantLikeButton) Mount(host *dom.Node) {
	l.Instance.Mount(host, "button", func(root *dom.Node) {
		root.Append("div", "icon").SetAttr(binding.Writer, "data-icon", string(l.variant))
		root.Append("div", "rings")
		root.Append("div", "particles")
	})
}

// Click likes or unlikes.
func (l *VariantLikeButton) Click() {
	if l.IsDisposed() {
		l.Ignore("click", "disposed")
		return
	}
	wasLiked := l.liked.Value()
	l.liked.Set(!wasLiked)
	if !wasLiked {
		l.Animate(animation.SlotOf("icon", "scale", "rotate"), animation.Spec{
			Target: l.Ref("icon"),
			Tracks: []animation.Track{
				animation.Keys("scale", 1, 1.3, 1),
				animation.Keys("rotate", 0, -10, 10, -10, 0),
			},
			Duration: 500 * time.Millisecond,
		})
		l.burst()
	}
	l.LikedChange.Emit(VariantLikeChange{Variant: l.variant, Liked: !wasLiked})
}

// Particles returns the number of particle elements currently shown.
func (l *VariantLikeButton) Particles() int {
	if l.Root() == nil {
		return 0
	}
	return len(l.Root().FindAll("particle-"))
}

func (l *VariantLikeButton) burst() {
	root := l.Root()
	if root == nil || !root.Attached() {
		errors.Report(errors.MissingTarget("widgets.VariantLikeButton.burst", l.ID(), l.Kind()))
		return
	}
	rings, particles := root.Find("rings"), root.Find("particles")
	if rings == nil || particles == nil {
		errors.Report(errors.MissingTarget("widgets.VariantLikeButton.burst", l.ID(), "rings"))
		return
	}
	l.bursts++
	id := strconv.Itoa(l.bursts)

	ring := rings.Append("div", "ring-"+id)
	ring.SetColor(binding.Writer, "borderColor", l.accent)
	l.Animate(animation.SlotOf(ring.Key(), "scale", "opacity"), animation.Spec{
		Target: dom.NodeRef(ring),
		Tracks: []animation.Track{
			animation.FromTo("scale", 0, 2),
			animation.FromTo("opacity", 1, 0),
		},
		Duration: 600 * time.Millisecond,
	}).OnComplete(ring.Remove)

	for i := range ParticleCount {
		p := particles.Append("div", fmt.Sprintf("particle-%s-%d", id, i))
		p.SetColor(binding.Writer, "backgroundColor", l.accent)
		angle := float64(i) * 2 * math.Pi / ParticleCount
		l.Animate(animation.SlotOf(p.Key(), "scale", "x", "y"), animation.Spec{
			Target: dom.NodeRef(p),
			Tracks: []animation.Track{
				animation.Keys("scale", 0, 1, 0),
				animation.FromTo("x", 0, math.Cos(angle)*ParticleRadius),
				animation.FromTo("y", 0, math.Sin(angle)*ParticleRadius),
			},
			Duration: 600 * time.Millisecond,
			Delay:    time.Duration(i) * ParticleStagger,
		}).OnComplete(p.Remove)
	}
}
