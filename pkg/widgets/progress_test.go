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

func TestProgressRunsToCompletion(t *testing.T) {
	tester := motiontest.NewTester(t)
	card := widgets.NewProgressCard(30)
	var progress recorder[int]
	completed := 0
	card.ProgressChange.Listen(progress.add)
	card.Completed.Listen(func(struct{}) { completed++ })
	card.Mount(tester.Root())
	assert.Equal(t, "30%", tester.Find(motiontest.ByKey("percent")).First().Text())

	card.Start()
	assert.Equal(t, widgets.ProgressRunning, card.Phase())
	assert.Zero(t, card.Progress())
	assert.True(t, tester.Find(motiontest.ByKey("start")).First().HasClass("disabled"))

	tester.Advance(widgets.ProgressInterval)
	assert.Equal(t, []int{2}, progress.got)
	assert.Greater(t, prop(tester, "shimmer", "x"), 0.0)

	tester.Advance(49 * widgets.ProgressInterval)
	assert.Equal(t, 100, card.Progress())
	assert.Equal(t, widgets.ProgressComplete, card.Phase())
	assert.Len(t, progress.got, 50)
	assert.Equal(t, 100, progress.last())
	assert.Equal(t, 1, completed)
	assert.InDelta(t, 100, prop(tester, "bar", "width"), 1e-9)
	assert.Equal(t, "100%", tester.Find(motiontest.ByKey("percent")).First().Text())
	assert.False(t, tester.Find(motiontest.ByKey("start")).First().HasClass("disabled"))
	assert.Zero(t, card.Scheduler().Active(), "shimmer stops on completion")
	assert.False(t, animation.HasActiveTickers())

	tester.Advance(time.Second)
	assert.Len(t, progress.got, 50)
	assert.Equal(t, 1, completed)
}

func TestProgressIgnoresStartAndResetWhileRunning(t *testing.T) {
	rep := captureReports(t)
	tester := motiontest.NewTester(t)
	card := widgets.NewProgressCard(0)
	var progress recorder[int]
	card.ProgressChange.Listen(progress.add)
	card.Mount(tester.Root())

	card.Start()
	tester.Advance(5 * widgets.ProgressInterval)
	card.Start()
	card.Reset()

	assert.Equal(t, 10, card.Progress())
	assert.Equal(t, widgets.ProgressRunning, card.Phase())
	assert.Equal(t, 2, rep.illegal())

	tester.Advance(widgets.ProgressInterval)
	assert.Equal(t, []int{2, 4, 6, 8, 10, 12}, progress.got, "one interval, not two")
}

func TestProgressResetAfterComplete(t *testing.T) {
	tester := motiontest.NewTester(t)
	card := widgets.NewProgressCard(0)
	card.Mount(tester.Root())

	card.Start()
	tester.Advance(50 * widgets.ProgressInterval)
	require.Equal(t, widgets.ProgressComplete, card.Phase())

	card.Reset()
	assert.Equal(t, widgets.ProgressIdle, card.Phase())
	assert.Zero(t, card.Progress())
	assert.Equal(t, "0%", tester.Find(motiontest.ByKey("percent")).First().Text())

	card.Start()
	tester.Advance(3 * widgets.ProgressInterval)
	assert.Equal(t, 6, card.Progress())
}

func TestProgressDisabledButtonsIgnoreHover(t *testing.T) {
	tester := motiontest.NewTester(t)
	card := widgets.NewProgressCard(0)
	card.Mount(tester.Root())

	card.Pointer("start", widgets.PointerEnter)
	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.InDelta(t, 1.05, prop(tester, "start", "scale"), 1e-9)

	card.Start()
	card.Pointer("reset", widgets.PointerEnter)
	card.Pointer("reset", widgets.PointerDown)
	assert.Nil(t, card.Scheduler().Current(animation.SlotOf("reset", "scale")))

	card.Pointer("start", widgets.PointerLeave)
	assert.NotNil(t, card.Scheduler().Current(animation.SlotOf("start", "scale")), "leave runs while disabled")
}

func TestProgressDisposeStopsInterval(t *testing.T) {
	tester := motiontest.NewTester(t)
	card := widgets.NewProgressCard(0)
	var progress recorder[int]
	card.ProgressChange.Listen(progress.add)
	card.Mount(tester.Root())

	card.Start()
	tester.Advance(2 * widgets.ProgressInterval)
	card.Dispose()
	tester.Advance(time.Second)

	assert.Len(t, progress.got, 2)
	assert.False(t, animation.HasActiveTickers())
}

func TestProgressRepeatedCyclesKeepDisposersBounded(t *testing.T) {
	tester := motiontest.NewTester(t)
	card := widgets.NewProgressCard(0)
	card.Mount(tester.Root())
	base := card.Disposers()

	for range 5 {
		card.Start()
		require.NoError(t, tester.PumpAndSettle(10*time.Second))
		require.Equal(t, widgets.ProgressComplete, card.Phase())
		card.Reset()
		assert.Equal(t, base, card.Disposers())
	}
}

func TestProgressStartBeforeMountWaitsForMount(t *testing.T) {
	tester := motiontest.NewTester(t)
	card := widgets.NewProgressCard(0)
	var progress recorder[int]
	card.ProgressChange.Listen(progress.add)

	card.Start()
	tester.Advance(10 * widgets.ProgressInterval)
	assert.Empty(t, progress.got)
	assert.Zero(t, card.Progress())

	card.Mount(tester.Root())
	tester.Advance(widgets.ProgressInterval)
	assert.Equal(t, []int{2}, progress.got)
}
