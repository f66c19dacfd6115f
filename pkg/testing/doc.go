// Package testing provides deterministic test helpers for motion widgets.
//
// # Quick Start
//
// Create a tester, mount a widget into its document, and step frames on a
// fake clock:
//
//	func TestLike(t *testing.T) {
//	    tester := motiontest.NewTester(t)
//	    like := widgets.NewLikeButton(false, widgets.DefaultLikeCount)
//	    like.Mount(tester.Root())
//
//	    like.Click()
//	    tester.Advance(300 * time.Millisecond)
//
//	    if got := tester.Find(motiontest.ByKey("count")).First().Text(); got != "43" {
//	        t.Errorf("count = %q", got)
//	    }
//	}
//
// # Frames
//
// Nothing moves until the test asks. [Tester.Pump] runs one frame at the
// current time, [Tester.Advance] moves the clock in 16ms frames, and
// [Tester.PumpAndSettle] runs frames until every animation has finished.
// Infinite loops never settle; advance them by a fixed duration instead.
//
// # Write Journal
//
// The tester enables the document journal. Every write carries its writer
// ("bind" or "handle:N"), so tests can check that a superseded handle never
// wrote after it was cancelled.
//
// # Snapshot Testing
//
// Capture and compare document snapshots:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/like.snapshot.json")
//
// Update golden files with:
//
//	MOTION_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Import Alias
//
// This package is named "testing", which conflicts with the standard
// library. Use an alias:
//
//	import motiontest "github.com/go-drift/motion/pkg/testing"
package testing
