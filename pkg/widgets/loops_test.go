package widgets_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/motion/pkg/animation"
	motiontest "github.com/go-drift/motion/pkg/testing"
	"github.com/go-drift/motion/pkg/widgets"
)

func TestPulseLoopsUntilDisposed(t *testing.T) {
	tester := motiontest.NewTester(t)
	pulse := widgets.NewPulseButton()
	clicks := 0
	pulse.Clicked.Listen(func(struct{}) { clicks++ })
	pulse.Mount(tester.Root())

	require.Equal(t, 2, pulse.Scheduler().Active())
	tester.Advance(750 * time.Millisecond)
	assert.Greater(t, prop(tester, "badge", "scale"), 1.0)
	tester.Advance(10 * time.Second)
	assert.Equal(t, 2, pulse.Scheduler().Active(), "infinite loops never complete")
	assert.ErrorIs(t, tester.PumpAndSettle(time.Second), motiontest.ErrSettleTimeout)

	pulse.Click()
	assert.Equal(t, 1, clicks)

	pulse.Dispose()
	assert.Zero(t, pulse.Scheduler().Active())
	assert.False(t, animation.HasActiveTickers())
	pulse.Click()
	assert.Equal(t, 1, clicks)
}

func TestPulseButtonPress(t *testing.T) {
	tester := motiontest.NewTester(t)
	pulse := widgets.NewPulseButton()
	pulse.Mount(tester.Root())

	pulse.Pointer("button", widgets.PointerDown)
	tester.Advance(100 * time.Millisecond)
	assert.InDelta(t, 0.95, prop(tester, "button", "scale"), 1e-9)
}

func TestSpinnerLoops(t *testing.T) {
	tester := motiontest.NewTester(t)
	spinner := widgets.NewLoadingSpinner()
	spinner.Mount(tester.Root())
	require.Equal(t, 3, spinner.Scheduler().Active())
	assert.Equal(t, "Loading...", tester.Find(motiontest.ByKey("text")).First().Text())

	tester.Advance(250 * time.Millisecond)
	assert.InDelta(t, 90, prop(tester, "spinner-wheel", "rotate"), 1e-6)
	tester.Advance(time.Second)
	assert.InDelta(t, 90, prop(tester, "spinner-wheel", "rotate"), 1e-6, "one full turn per second")

	spinner.Dispose()
	assert.False(t, animation.HasActiveTickers())
	assert.False(t, tester.Find(motiontest.ByKey("spinner-wheel")).Exists())
}

func TestHoverCardEnterAndLeave(t *testing.T) {
	tester := motiontest.NewTester(t)
	card := widgets.NewHoverCard()
	card.Mount(tester.Root())

	card.Enter()
	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.InDelta(t, 0.1, prop(tester, "overlay", "opacity"), 1e-9)
	assert.InDelta(t, -5, prop(tester, "content", "y"), 1e-9)
	assert.InDelta(t, 1.05, prop(tester, "button", "scale"), 1e-9)
	assert.InDelta(t, 1, prop(tester, "circle", "scale"), 1e-9)
	assert.InDelta(t, 0.1, prop(tester, "circle", "opacity"), 1e-9)
	bg, _ := tester.Find(motiontest.ByKey("button")).First().Color("backgroundColor")
	assert.Equal(t, "#2563eb", bg.Hex())

	card.Leave()
	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.InDelta(t, 0, prop(tester, "overlay", "opacity"), 1e-9)
	assert.InDelta(t, 0, prop(tester, "content", "y"), 1e-9)
	assert.InDelta(t, 1, prop(tester, "button", "scale"), 1e-9)
	assert.InDelta(t, 0, prop(tester, "circle", "scale"), 1e-9)
	bg, _ = tester.Find(motiontest.ByKey("button")).First().Color("backgroundColor")
	assert.Equal(t, "#3b82f6", bg.Hex())
}

func TestHoverCardFlickerReversesFromCurrent(t *testing.T) {
	tester := motiontest.NewTester(t)
	card := widgets.NewHoverCard()
	card.Mount(tester.Root())

	card.Enter()
	tester.Advance(150 * time.Millisecond)
	y := prop(tester, "content", "y")
	require.Less(t, y, 0.0)
	require.Greater(t, y, -5.0)

	card.Leave()
	tester.Pump()
	assert.InDelta(t, y, prop(tester, "content", "y"), 1e-9)
	tester.Advance(16 * time.Millisecond)
	assert.Greater(t, prop(tester, "content", "y"), y)

	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.InDelta(t, 0, prop(tester, "content", "y"), 1e-9)
	assert.False(t, card.Hovered())
}

func TestHoverCardIgnoresRepeatedEnter(t *testing.T) {
	rep := captureReports(t)
	tester := motiontest.NewTester(t)
	card := widgets.NewHoverCard()
	clicks := 0
	card.ButtonClick.Listen(func(struct{}) { clicks++ })
	card.Mount(tester.Root())

	card.Leave()
	card.Enter()
	card.Enter()
	assert.Equal(t, 2, rep.illegal())
	assert.True(t, card.Hovered())
	assert.True(t, tester.Find(motiontest.ByKey(card.Kind())).First().HasClass("hovered"))

	card.Click()
	assert.Equal(t, 1, clicks)
}
