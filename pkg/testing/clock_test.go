package testing

import (
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/dom"
)

func TestFakeClock_Advance(t *testing.T) {
	clk := NewFakeClock()
	start := clk.Now()

	clk.Advance(100 * time.Millisecond)
	elapsed := clk.Now().Sub(start)

	if elapsed != 100*time.Millisecond {
		t.Errorf("expected 100ms elapsed, got %v", elapsed)
	}
}

func TestFakeClock_Set(t *testing.T) {
	clk := NewFakeClock()
	target := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	clk.Set(target)
	if !clk.Now().Equal(target) {
		t.Errorf("expected %v, got %v", target, clk.Now())
	}
}

func TestTester_InstallsClock(t *testing.T) {
	tester := NewTester(t)
	clk := tester.Clock()

	if clk == nil {
		t.Fatal("expected non-nil clock")
	}
	if !animation.Now().Equal(clk.Now()) {
		t.Fatalf("animation clock not replaced: %v vs %v", animation.Now(), clk.Now())
	}

	start := clk.Now()
	tester.Advance(500 * time.Millisecond)
	if got := animation.Since(start); got != 500*time.Millisecond {
		t.Errorf("Since = %v, want 500ms", got)
	}
	if tester.Frames() != 32 {
		t.Errorf("Frames = %d, want 32", tester.Frames())
	}
}

func TestTester_AdvanceDrivesHandle(t *testing.T) {
	tester := NewTester(t)
	box := tester.Root().Append("div", "box")

	sched := animation.NewScheduler("box")
	sched.Mount()
	h := sched.Schedule("box.width", animation.Spec{
		Target:   dom.NodeRef(box),
		Tracks:   []animation.Track{animation.FromTo("width", 50, 200)},
		Duration: time.Second,
	})

	tester.Advance(500 * time.Millisecond)
	mid := box.PropOr("width", 0)
	if mid <= 50 || mid >= 200 {
		t.Errorf("expected width between 50 and 200 halfway, got %v", mid)
	}

	tester.Advance(600 * time.Millisecond)
	if got := box.PropOr("width", 0); got != 200 {
		t.Errorf("expected final width 200, got %v", got)
	}
	if h.Status() != animation.Completed {
		t.Errorf("status = %v, want completed", h.Status())
	}
}

func TestPumpAndSettle(t *testing.T) {
	tester := NewTester(t)
	box := tester.Root().Append("div", "box")

	sched := animation.NewScheduler("box")
	sched.Mount()
	sched.Schedule("box.opacity", animation.Spec{
		Target:   dom.NodeRef(box),
		Tracks:   []animation.Track{animation.FromTo("opacity", 0, 1)},
		Duration: 100 * time.Millisecond,
	})

	if err := tester.PumpAndSettle(time.Second); err != nil {
		t.Errorf("expected settle after animation completes, got: %v", err)
	}
}

func TestPumpAndSettle_InfiniteTimesOut(t *testing.T) {
	tester := NewTester(t)
	box := tester.Root().Append("div", "spinner")

	sched := animation.NewScheduler("spinner")
	sched.Mount()
	sched.Schedule("spinner.rotate", animation.Spec{
		Target:   dom.NodeRef(box),
		Tracks:   []animation.Track{animation.FromTo("rotate", 0, 360)},
		Duration: time.Second,
		Repeat:   animation.Infinite,
	})

	if err := tester.PumpAndSettle(200 * time.Millisecond); err != ErrSettleTimeout {
		t.Fatalf("expected ErrSettleTimeout, got %v", err)
	}

	sched.Dispose()
	if err := tester.PumpAndSettle(200 * time.Millisecond); err != nil {
		t.Errorf("expected settle after dispose, got %v", err)
	}
}

func TestFakeClock_InstallRestores(t *testing.T) {
	before := animation.Now()
	clk := NewFakeClock()
	restore := clk.Install()

	if !animation.Now().Equal(Epoch) {
		t.Fatalf("installed clock reads %v, want %v", animation.Now(), Epoch)
	}
	restore()
	if animation.Now().Before(before) {
		t.Errorf("previous clock not restored: %v", animation.Now())
	}
}

func TestFakeClock_FrameStepsTickers(t *testing.T) {
	clk := NewFakeClock()
	defer clk.Install()()

	var seen []time.Duration
	ticker := animation.NewTicker(func(elapsed time.Duration) { seen = append(seen, elapsed) })
	ticker.Start()

	clk.Frame(16 * time.Millisecond)
	clk.Frame(16 * time.Millisecond)

	if len(seen) != 2 || seen[1] != 32*time.Millisecond {
		t.Errorf("ticker saw %v, want two frames ending at 32ms", seen)
	}
	if clk.Elapsed() != 32*time.Millisecond {
		t.Errorf("Elapsed = %v, want 32ms", clk.Elapsed())
	}
}
