package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/motion/pkg/animation"
	motiontest "github.com/go-drift/motion/pkg/testing"
	"github.com/go-drift/motion/pkg/widgets"
)

func TestKind(t *testing.T) {
	assert.Equal(t, "like", Kind("like-1b9d6bcd"))
	assert.Equal(t, "toggle-glow", Kind("toggle-glow-0a1b2c3d"))
	assert.Equal(t, "plain", Kind("plain"))
}

func TestObserverCountsLifecycle(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs := NewObserver(reg)
	prev := animation.SetObserver(obs)
	t.Cleanup(func() { animation.SetObserver(prev) })

	tester := motiontest.NewTester(t)
	like := widgets.NewLikeButton(false, widgets.DefaultLikeCount)
	like.Mount(tester.Root())

	like.Click()
	// heart bounce, ripple and count pop
	assert.Equal(t, 3.0, testutil.ToFloat64(obs.started.WithLabelValues("like")))
	assert.Equal(t, 3.0, testutil.ToFloat64(obs.running.WithLabelValues("like")))

	tester.Advance(100 * time.Millisecond)
	like.Click()
	// the count pop supersedes the first one
	assert.Equal(t, 1.0, testutil.ToFloat64(obs.finished.WithLabelValues("like", "cancelled")))

	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.Equal(t, 3.0, testutil.ToFloat64(obs.finished.WithLabelValues("like", "completed")))
	assert.Zero(t, testutil.ToFloat64(obs.running.WithLabelValues("like")))
	assert.Equal(t, 2, testutil.CollectAndCount(obs.duration))
}
