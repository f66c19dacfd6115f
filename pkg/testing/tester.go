package testing

import (
	"errors"
	"testing"
	"time"

	"github.com/go-drift/motion/pkg/animation"
	"github.com/go-drift/motion/pkg/dom"
)

// FrameDuration is the fake frame interval used by Advance and PumpAndSettle.
const FrameDuration = 16 * time.Millisecond

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: animations did not settle")

// Tester drives widgets against a fake clock and an in-memory document.
// Frames only advance when the test asks for them.
type Tester struct {
	clock   *FakeClock
	restore func()
	doc     *dom.Document
	frames  int
}

// NewTester creates a tester and installs its fake clock. The previous
// clock is restored and every leftover ticker is stopped on cleanup.
func NewTester(tb testing.TB) *Tester {
	tb.Helper()
	clk := NewFakeClock()
	t := &Tester{
		clock: clk,
		doc:   dom.NewDocument(),
	}
	t.doc.Journal().Enable()
	t.restore = clk.Install()
	tb.Cleanup(t.Cleanup)
	return t
}

// Cleanup restores global animation state.
func (t *Tester) Cleanup() {
	if t.restore != nil {
		t.restore()
		t.restore = nil
	}
}

// Clock returns the fake clock.
func (t *Tester) Clock() *FakeClock {
	return t.clock
}

// Document returns the document widgets are mounted into.
func (t *Tester) Document() *dom.Document {
	return t.doc
}

// Root returns the document root.
func (t *Tester) Root() *dom.Node {
	return t.doc.Root()
}

// Journal returns the document's write journal. Recording is enabled.
func (t *Tester) Journal() *dom.Journal {
	return t.doc.Journal()
}

// Frames returns the number of frames pumped.
func (t *Tester) Frames() int {
	return t.frames
}

// Pump runs a single frame without moving the clock.
func (t *Tester) Pump() {
	t.frames++
	animation.StepTickers()
}

// Advance moves the clock forward by d, pumping one frame per FrameDuration.
// The last frame lands exactly on d.
func (t *Tester) Advance(d time.Duration) {
	for d > 0 {
		step := min(d, FrameDuration)
		t.clock.Frame(step)
		t.frames++
		d -= step
	}
}

// PumpAndSettle runs frames until no animation is running or the timeout
// is reached. Each frame advances the fake clock by FrameDuration.
// Returns ErrSettleTimeout if animations are still running at the timeout;
// infinite loops never settle.
func (t *Tester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed < timeout {
		t.Pump()
		if !animation.HasActiveTickers() {
			return nil
		}
		t.clock.Advance(FrameDuration)
		elapsed += FrameDuration
	}
	return ErrSettleTimeout
}

// Find evaluates finder against the document root.
func (t *Tester) Find(finder Finder) FinderResult {
	return FinderResult{
		nodes:  finder.Evaluate(t.doc.Root()),
		finder: finder,
	}
}

// CaptureSnapshot captures the current document.
func (t *Tester) CaptureSnapshot() *Snapshot {
	return CaptureSnapshot(t.doc.Root())
}
