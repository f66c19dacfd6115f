// Package animation provides the tween engine and the per-slot animation
// scheduler used by every widget.
//
// # Core Components
//
//   - [Scheduler]: owns the mapping from slot to running [Handle] for one
//     widget instance. Scheduling into an occupied slot cancels the previous
//     handle first, so two handles never write the same target.
//
//   - [Handle]: one running transition over numeric and color properties of a
//     single node. Handles complete, or are cancelled; completion is
//     observable through [Handle.Done] and [Handle.OnComplete], and a
//     cancelled handle never reports completion.
//
//   - Curves and [Keyframes]: deterministic progress mapping. [EaseOutCubic]
//     drives counters and progress fills, [SpringSimulation] drives knob and
//     scale snaps.
//
//   - [Ticker]: the frame primitive. Tickers are stepped by [StepTickers],
//     called once per frame by the host loop.
//
// # Basic Usage
//
//	sched := animation.NewScheduler(id)
//	sched.Mount()
//	h := sched.Schedule("heart.scale", animation.Spec{
//	    Target:   dom.KeyRef(root, "heart"),
//	    Tracks:   []animation.Track{animation.Keys("scale", 1, 1.3, 1)},
//	    Duration: 300 * time.Millisecond,
//	})
//	h.OnComplete(func() { ... })
//
//	// Host loop, once per frame:
//	animation.StepTickers()
//
//	// Teardown:
//	sched.Dispose()
package animation

import (
	"slices"
	"sync"
	"time"
)

var (
	tickerMu sync.Mutex
	// activeTickers is kept in start order; frames step tickers in that order.
	activeTickers []*Ticker
	frame         uint64
)

// Ticker calls a callback on each frame while active.
//
// The callback receives the elapsed time since Start was called. A ticker
// started while a frame is being stepped is first called on the following
// frame, so a state commit is always visible to bindings before the first
// animation write of the same transition.
type Ticker struct {
	callback func(elapsed time.Duration)
	isActive bool
	start    time.Time
}

// NewTicker creates a new ticker with the given callback.
func NewTicker(callback func(elapsed time.Duration)) *Ticker {
	return &Ticker{
		callback: callback,
	}
}

// Start activates the ticker.
func (t *Ticker) Start() {
	if t.isActive {
		return
	}
	t.isActive = true
	t.start = Now()
	tickerMu.Lock()
	activeTickers = append(activeTickers, t)
	tickerMu.Unlock()
}

// Stop deactivates the ticker. A stopped ticker is skipped even if it was
// already part of the frame being stepped.
func (t *Ticker) Stop() {
	if !t.isActive {
		return
	}
	t.isActive = false
	tickerMu.Lock()
	if i := slices.Index(activeTickers, t); i >= 0 {
		activeTickers = slices.Delete(activeTickers, i, i+1)
	}
	tickerMu.Unlock()
}

// IsActive returns whether the ticker is currently running.
func (t *Ticker) IsActive() bool {
	return t.isActive
}

// Elapsed returns the time since the ticker started.
func (t *Ticker) Elapsed() time.Duration {
	if !t.isActive {
		return 0
	}
	return Now().Sub(t.start)
}

// StepTickers advances all active tickers by one frame.
// Call it once per frame from the host loop.
func StepTickers() {
	tickerMu.Lock()
	frame++
	if len(activeTickers) == 0 {
		tickerMu.Unlock()
		return
	}
	// Snapshot so tickers started by callbacks wait for the next frame.
	tickers := slices.Clone(activeTickers)
	tickerMu.Unlock()

	now := Now()
	for _, ticker := range tickers {
		if ticker.isActive && ticker.callback != nil {
			ticker.callback(now.Sub(ticker.start))
		}
	}
}

// HasActiveTickers returns true if any tickers are active.
func HasActiveTickers() bool {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers) > 0
}

// ActiveTickers returns the number of running tickers.
func ActiveTickers() int {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return len(activeTickers)
}

// Frame returns the number of frames stepped so far.
func Frame() uint64 {
	tickerMu.Lock()
	defer tickerMu.Unlock()
	return frame
}

// ResetTickers stops every active ticker without calling it again.
// Hosts call it on teardown; tests call it between cases.
func ResetTickers() {
	tickerMu.Lock()
	tickers := slices.Clone(activeTickers)
	tickerMu.Unlock()
	for _, ticker := range tickers {
		ticker.Stop()
	}
}
