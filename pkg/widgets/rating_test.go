package widgets_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	motiontest "github.com/go-drift/motion/pkg/testing"
	"github.com/go-drift/motion/pkg/widgets"
)

func activeStars(tester *motiontest.Tester) []string {
	var keys []string
	for _, n := range tester.Find(motiontest.ByClass("active")).All() {
		keys = append(keys, n.Key())
	}
	return keys
}

func TestStarRatingActiveClasses(t *testing.T) {
	tester := motiontest.NewTester(t)
	rating := widgets.NewStarRating(0)
	var changes recorder[int]
	rating.RatingChange.Listen(changes.add)
	rating.Mount(tester.Root())

	assert.Empty(t, activeStars(tester))
	assert.Equal(t, "Rate this", tester.Find(motiontest.ByKey("rating-text")).First().Text())

	rating.Click(3)
	assert.Equal(t, []string{"star-1", "star-2", "star-3"}, activeStars(tester))
	assert.True(t, tester.Find(motiontest.ByKey("star-3")).First().HasClass("current"))
	assert.Equal(t, "3-star rating", tester.Find(motiontest.ByKey("rating-text")).First().Text())
	assert.Equal(t, []int{3}, changes.got)

	rating.Enter(5)
	assert.Len(t, activeStars(tester), 5)
	assert.Equal(t, 3, rating.Rating(), "hover never commits")

	rating.Leave(5)
	assert.Equal(t, []string{"star-1", "star-2", "star-3"}, activeStars(tester))

	rating.Enter(1)
	for star := 1; star <= widgets.MaxRating; star++ {
		assert.Equal(t, star <= 1, rating.Active(star), "star %d", star)
	}
}

func TestStarRatingTextPops(t *testing.T) {
	tester := motiontest.NewTester(t)
	rating := widgets.NewStarRating(2)
	rating.Mount(tester.Root())

	rating.Click(4)
	tester.Advance(150 * time.Millisecond)
	assert.Greater(t, prop(tester, "rating-text", "scale"), 1.0)
	assert.Less(t, prop(tester, "rating-text", "opacity"), 1.0)

	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.InDelta(t, 1, prop(tester, "rating-text", "scale"), 1e-9)
	assert.InDelta(t, 1, prop(tester, "rating-text", "opacity"), 1e-9)
}

func TestStarRatingHoverScalesStar(t *testing.T) {
	tester := motiontest.NewTester(t)
	rating := widgets.NewStarRating(0)
	rating.Mount(tester.Root())

	rating.Enter(2)
	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.InDelta(t, 1.2, prop(tester, "star-2", "scale"), 1e-9)

	rating.Leave(2)
	require.NoError(t, tester.PumpAndSettle(time.Second))
	assert.InDelta(t, 1, prop(tester, "star-2", "scale"), 1e-9)
}

func TestStarRatingIgnoresOutOfRange(t *testing.T) {
	rep := captureReports(t)
	tester := motiontest.NewTester(t)
	rating := widgets.NewStarRating(2)
	var changes recorder[int]
	rating.RatingChange.Listen(changes.add)
	rating.Mount(tester.Root())

	rating.Click(0)
	rating.Click(6)
	rating.Enter(-1)

	assert.Equal(t, 2, rating.Rating())
	assert.Zero(t, rating.Hover())
	assert.Empty(t, changes.got)
	assert.Zero(t, rating.Scheduler().Active())
	assert.Equal(t, 3, rep.illegal())
}
