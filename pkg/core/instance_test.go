package core

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/binding"
	"github.com/go-drift/motion/pkg/dom"
	"github.com/go-drift/motion/pkg/errors"
	"github.com/go-drift/motion/pkg/reactive"
	motiontest "github.com/go-drift/motion/pkg/testing"
)

type recordingHandler struct {
	errs []*errors.MotionError
}

func (h *recordingHandler) HandleError(err *errors.MotionError) { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(*errors.PanicError)      {}

func TestInstanceLifecycleOrder(t *testing.T) {
	tester := motiontest.NewTester(t)
	in := NewInstance("counter")
	count := reactive.NewCell(7)

	binding.Text(in.Binder(), in.Ref("value"), count, strconv.Itoa)
	queued := in.Animate("value.scale", animation.Spec{
		Target:   in.Ref("value"),
		Tracks:   []animation.Track{animation.FromTo("scale", 1.5, 1)},
		Duration: 200 * time.Millisecond,
	})

	var seen []string
	in.AfterMount(func() {
		seen = append(seen, "after-mount:"+in.Root().Find("value").Text())
	})

	assert.Equal(t, Constructed, in.Phase())
	assert.Nil(t, in.Root())
	_, ok := in.Ref("value").Resolve()
	assert.False(t, ok)

	in.Mount(tester.Root(), "div", func(root *dom.Node) {
		root.Append("span", "value")
		seen = append(seen, "build")
	})

	assert.Equal(t, Mounted, in.Phase())
	assert.Equal(t, []string{"build", "after-mount:7"}, seen, "bindings are installed before after-mount callbacks")
	assert.True(t, animation.HasActiveTickers(), "queued animation starts on mount")

	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Equal(t, animation.Completed, queued.Status())
	v, _ := in.Root().Find("value").Prop("scale")
	assert.Equal(t, 1.0, v)
	assert.Equal(t, in.ID(), func() string { s, _ := in.Root().Attr("data-instance"); return s }())
}

func TestInstanceDisposeTearsEverythingDown(t *testing.T) {
	tester := motiontest.NewTester(t)
	in := NewInstance("spinner")
	label := reactive.NewCell("Loading")
	binding.Text(in.Binder(), in.Ref("text"), label, nil)

	var order []int
	in.OnDispose(func() { order = append(order, 1) })
	unregister := in.OnDispose(func() { order = append(order, 2) })
	in.OnDispose(func() { order = append(order, 3) })
	unregister()

	in.Mount(tester.Root(), "div", func(root *dom.Node) {
		root.Append("span", "text")
	})
	loop := in.Animate("ring.rotate", animation.Spec{
		Target:   in.Ref("text"),
		Tracks:   []animation.Track{animation.FromTo("rotate", 0, 360)},
		Duration: time.Second,
		Repeat:   animation.Infinite,
	})
	tester.Advance(100 * time.Millisecond)
	root := in.Root()

	in.Dispose()
	in.Dispose()

	assert.Equal(t, []int{3, 1}, order, "disposers run LIFO, unregistered ones are skipped")
	assert.Equal(t, animation.Cancelled, loop.Status())
	assert.False(t, animation.HasActiveTickers())
	assert.False(t, root.Attached())
	assert.Zero(t, label.SubscriberCount())
	assert.True(t, in.IsDisposed())

	late := false
	in.OnDispose(func() { late = true })
	assert.True(t, late, "disposer registered after dispose runs immediately")
}

func TestMountTwiceIsIgnored(t *testing.T) {
	handler := &recordingHandler{}
	errors.SetHandler(handler)
	t.Cleanup(func() { errors.SetHandler(nil) })

	tester := motiontest.NewTester(t)
	in := NewInstance("toggle")
	builds := 0
	build := func(*dom.Node) { builds++ }

	in.Mount(tester.Root(), "button", build)
	in.Mount(tester.Root(), "button", build)

	assert.Equal(t, 1, builds)
	assert.Len(t, tester.Root().Children(), 1)
	require.Len(t, handler.errs, 1)
	assert.Equal(t, errors.KindIllegalTransition, handler.errs[0].Kind)
}

func TestAnimateAfterDisposeReturnsCancelledHandle(t *testing.T) {
	tester := motiontest.NewTester(t)
	in := NewInstance("like")
	in.Mount(tester.Root(), "button", nil)
	in.Dispose()

	h := in.Animate("heart.scale", animation.Spec{Duration: time.Second})
	assert.Equal(t, animation.Cancelled, h.Status())
}

func TestInstanceIDsAreUnique(t *testing.T) {
	a, b := NewInstance("chip"), NewInstance("chip")
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Contains(t, a.ID(), "chip-")
}
