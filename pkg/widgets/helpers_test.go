package widgets_test

import (
	"testing"

	"github.com/go-drift/motion/pkg/errors"
	motiontest "github.com/go-drift/motion/pkg/testing"
)

type reports struct {
	errs   []*errors.MotionError
	panics int
}

func (r *reports) HandleError(err *errors.MotionError) { r.errs = append(r.errs, err) }
func (r *reports) HandlePanic(*errors.PanicError)      { r.panics++ }

func (r *reports) illegal() int {
	n := 0
	for _, err := range r.errs {
		if errors.Is(err, errors.ErrIllegalTransition) {
			n++
		}
	}
	return n
}

func captureReports(t *testing.T) *reports {
	t.Helper()
	r := &reports{}
	errors.SetHandler(r)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return r
}

// recorder collects every value an output event delivers.
type recorder[T any] struct {
	got []T
}

func (r *recorder[T]) add(v T) { r.got = append(r.got, v) }

func (r *recorder[T]) last() T {
	var zero T
	if len(r.got) == 0 {
		return zero
	}
	return r.got[len(r.got)-1]
}

func prop(tester *motiontest.Tester, key, name string) float64 {
	return tester.Find(motiontest.ByKey(key)).First().PropOr(name, -1)
}
