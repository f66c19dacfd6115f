package testing

import (
	"sync"
	"time"

	"github.com/go-drift/motion/pkg/animation"
)

// Epoch is the instant every FakeClock starts at.
var Epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// FakeClock is an [animation.Clock] that only moves when told to.
// Safe for concurrent use, though frames are stepped on one goroutine.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a clock reading [Epoch].
func NewFakeClock() *FakeClock {
	return &FakeClock{now: Epoch}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Elapsed returns the time travelled since Epoch.
func (c *FakeClock) Elapsed() time.Duration {
	return c.Now().Sub(Epoch)
}

// Advance moves the clock forward by d without stepping any ticker.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set jumps to t. Running tickers see the jump as one long frame.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Frame advances by d and steps every active ticker once.
func (c *FakeClock) Frame(d time.Duration) {
	c.Advance(d)
	animation.StepTickers()
}

// Install makes c the animation clock and drops leftover tickers. The
// returned func restores the previous clock and drops tickers again.
func (c *FakeClock) Install() (restore func()) {
	animation.ResetTickers()
	prev := animation.SetClock(c)
	return func() {
		animation.ResetTickers()
		animation.SetClock(prev)
	}
}
