package scenario

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/go-drift/motion/cmd/motion/internal/config"
	"github.com/go-drift/motion/pkg/dom"
	motiontest "github.com/go-drift/motion/pkg/testing"
)

// Event is one output event observed during a run.
type Event struct {
	At     time.Duration
	Widget string
	Name   string
	Value  any
}

func (e Event) String() string {
	if e.Value == struct{}{} {
		return fmt.Sprintf("%8s  %-10s %s", e.At, e.Widget, e.Name)
	}
	return fmt.Sprintf("%8s  %-10s %s %+v", e.At, e.Widget, e.Name, e.Value)
}

// Result is the outcome of a headless run.
type Result struct {
	Events  []Event
	Elapsed time.Duration
	Frames  int
	// Tree is the rendered document after the last step.
	Tree string
}

// WriteTo prints the events followed by the final tree.
func (r *Result) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, e := range r.Events {
		k, err := fmt.Fprintln(w, e)
		n += int64(k)
		if err != nil {
			return n, err
		}
	}
	k, err := fmt.Fprintf(w, "\n%d frames, %s\n\n%s", r.Frames, r.Elapsed, r.Tree)
	n += int64(k)
	return n, err
}

// Run builds the scenario's widgets and replays its steps against a fake
// clock. Frames are stepped only during waits, one per sc.Frame.
// The widgets are disposed before Run returns.
func Run(ctx context.Context, sc *config.Scenario, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	clock := motiontest.NewFakeClock()
	defer clock.Install()()

	res := &Result{}
	emit := func(widget, name string, v any) {
		res.Events = append(res.Events, Event{At: clock.Elapsed(), Widget: widget, Name: name, Value: v})
	}

	doc := dom.NewDocument()
	built := make(map[string]*Widget, len(sc.Widgets))
	order := make([]*Widget, 0, len(sc.Widgets))
	defer func() {
		for i := len(order) - 1; i >= 0; i-- {
			order[i].Dispose()
		}
	}()
	for _, cfg := range sc.Widgets {
		w, err := Build(cfg, emit)
		if err != nil {
			return nil, err
		}
		w.Mount(doc.Root())
		built[w.ID] = w
		order = append(order, w)
		logger.Debug("mounted widget", "id", w.ID, "kind", w.Kind, "instance", w.Instance().ID())
	}

	for i, st := range sc.Steps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if st.Widget != "" {
			logger.Debug("step", "index", i, "widget", st.Widget, "action", st.Action, "arg", st.Arg)
			if err := built[st.Widget].Do(st.Action, st.Arg); err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
		}
		for remaining := st.Wait; remaining > 0; {
			step := min(remaining, sc.Frame)
			clock.Frame(step)
			res.Frames++
			remaining -= step
		}
	}

	res.Elapsed = clock.Elapsed()
	res.Tree = doc.String()
	logger.Info("scenario finished", "widgets", len(order), "steps", len(sc.Steps), "events", len(res.Events), "elapsed", res.Elapsed)
	return res, nil
}
