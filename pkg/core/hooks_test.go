package core

import (
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/dom"
	"github.com/go-drift/motion/pkg/reactive"
	motiontest "github.com/go-drift/motion/pkg/testing"
)

// mockDisposable for testing UseDisposable
type mockDisposable struct {
	disposed bool
}

func (m *mockDisposable) Dispose() {
	m.disposed = true
}

func TestUseDisposable(t *testing.T) {
	in := NewInstance("test")

	d := UseDisposable(in, func() *mockDisposable {
		return &mockDisposable{}
	})

	if d.disposed {
		t.Error("resource should not be disposed initially")
	}

	in.Dispose()

	if !d.disposed {
		t.Error("resource should be disposed when the instance is disposed")
	}
}

func TestUseSubscription(t *testing.T) {
	in := NewInstance("test")
	cell := reactive.NewCell(0)

	UseSubscription(in, cell.Subscribe(func(int) {}))
	if cell.SubscriberCount() != 1 {
		t.Errorf("Expected 1 subscriber, got %d", cell.SubscriberCount())
	}

	in.Dispose()

	if cell.SubscriberCount() != 0 {
		t.Errorf("Expected 0 subscribers after dispose, got %d", cell.SubscriberCount())
	}
}

func TestUseEffectWaitsForMount(t *testing.T) {
	tester := motiontest.NewTester(t)
	in := NewInstance("test")
	cell := reactive.NewCell(0)

	var got []int
	UseEffect(in, cell, func(v int) { got = append(got, v) })

	cell.Set(1)
	if len(got) != 0 {
		t.Fatalf("effect ran before mount: %v", got)
	}

	in.Mount(tester.Root(), "div", func(*dom.Node) {})
	cell.Set(2)
	in.Dispose()
	cell.Set(3)

	if len(got) != 1 || got[0] != 2 {
		t.Errorf("got %v, want [2]", got)
	}
}

func mountedInstance(tester *motiontest.Tester, kind string) *Instance {
	in := NewInstance(kind)
	in.Mount(tester.Root(), "div", nil)
	return in
}

func TestUseInterval(t *testing.T) {
	tester := motiontest.NewTester(t)
	in := mountedInstance(tester, "progress")

	ticks := 0
	UseInterval(in, 50*time.Millisecond, func() bool {
		ticks++
		return ticks < 5
	})

	tester.Advance(120 * time.Millisecond)
	if ticks != 2 {
		t.Errorf("after 120ms: ticks = %d, want 2", ticks)
	}

	tester.Advance(time.Second)
	if ticks != 5 {
		t.Errorf("interval should stop when fn returns false: ticks = %d", ticks)
	}
}

func TestUseIntervalStopsOnDispose(t *testing.T) {
	tester := motiontest.NewTester(t)
	in := mountedInstance(tester, "progress")

	ticks := 0
	UseInterval(in, 50*time.Millisecond, func() bool {
		ticks++
		return true
	})
	tester.Advance(100 * time.Millisecond)
	in.Dispose()
	tester.Advance(time.Second)

	if ticks != 2 {
		t.Errorf("ticks = %d, want 2", ticks)
	}
}

func TestUseIntervalCatchesUpOnLongFrames(t *testing.T) {
	tester := motiontest.NewTester(t)
	in := mountedInstance(tester, "progress")

	ticks := 0
	stop := UseInterval(in, 10*time.Millisecond, func() bool {
		ticks++
		return true
	})
	tester.Advance(motiontest.FrameDuration)
	tester.Advance(motiontest.FrameDuration)
	stop()
	stop()
	tester.Advance(time.Second)

	if ticks != 3 {
		t.Errorf("ticks = %d, want 3 (32ms of 10ms intervals)", ticks)
	}
}

func TestUseIntervalWaitsForMount(t *testing.T) {
	tester := motiontest.NewTester(t)
	in := NewInstance("progress")

	ticks := 0
	UseInterval(in, 10*time.Millisecond, func() bool {
		ticks++
		return true
	})
	tester.Advance(100 * time.Millisecond)
	if ticks != 0 {
		t.Fatalf("ticked %d times before mount", ticks)
	}

	in.Mount(tester.Root(), "div", nil)
	tester.Advance(25 * time.Millisecond)
	if ticks != 2 {
		t.Errorf("ticks after mount = %d, want 2", ticks)
	}
}

func TestUseIntervalStoppedBeforeMountNeverTicks(t *testing.T) {
	tester := motiontest.NewTester(t)
	in := NewInstance("progress")

	ticks := 0
	stop := UseInterval(in, 10*time.Millisecond, func() bool {
		ticks++
		return true
	})
	stop()
	in.Mount(tester.Root(), "div", nil)
	tester.Advance(100 * time.Millisecond)

	if ticks != 0 {
		t.Errorf("ticks = %d, want 0", ticks)
	}
	if n := in.Disposers(); n != 0 {
		t.Errorf("disposers = %d, want 0", n)
	}
}

func TestUseIntervalReleasesDisposer(t *testing.T) {
	tester := motiontest.NewTester(t)
	in := mountedInstance(tester, "progress")
	base := in.Disposers()

	for range 5 {
		ticks := 0
		UseInterval(in, 10*time.Millisecond, func() bool {
			ticks++
			return ticks < 3
		})
		if got := in.Disposers(); got != base+1 {
			t.Fatalf("running interval: disposers = %d, want %d", got, base+1)
		}
		tester.Advance(50 * time.Millisecond)
		if got := in.Disposers(); got != base {
			t.Fatalf("finished interval: disposers = %d, want %d", got, base)
		}
	}
}
