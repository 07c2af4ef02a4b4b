package widget

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkRangeInvariants(t *testing.T, st RangeState) {
	t.Helper()
	require.LessOrEqual(t, st.Minimum, st.Maximum, "min<=max: %v", st)
	require.LessOrEqual(t, st.Minimum, st.Value, "min<=value: %v", st)
	require.GreaterOrEqual(t, st.Extent, 0, "extent>=0: %v", st)
	require.LessOrEqual(t, st.SecondValue(), st.Maximum, "second<=max: %v", st)
}

func TestNewRangeModelClamps(t *testing.T) {
	type in struct {
		min, max, v, e int
		res            RangeState
	}
	w := []in{
		{0, 100, 20, 30, RangeState{0, 100, 20, 30, false}},
		{0, 100, -5, 30, RangeState{0, 100, 0, 30, false}},
		{0, 100, 90, 30, RangeState{0, 100, 90, 10, false}},
		{0, 100, 200, 30, RangeState{0, 100, 100, 0, false}},
		{0, 100, 20, -3, RangeState{0, 100, 20, 0, false}},
		{50, 10, 0, 0, RangeState{50, 50, 50, 0, false}},
		{math.MinInt, math.MaxInt, math.MinInt, 5, RangeState{math.MinInt, math.MaxInt, math.MinInt, 5, false}},
		{math.MinInt, math.MaxInt, math.MinInt, math.MaxInt, RangeState{math.MinInt, math.MaxInt, math.MinInt, math.MaxInt, false}},
		{math.MinInt, math.MaxInt, -1, math.MaxInt, RangeState{math.MinInt, math.MaxInt, -1, math.MaxInt, false}},
		{math.MinInt, math.MaxInt, 0, math.MaxInt, RangeState{math.MinInt, math.MaxInt, 0, math.MaxInt, false}},
		{math.MinInt, math.MaxInt, 1, math.MaxInt, RangeState{math.MinInt, math.MaxInt, 1, math.MaxInt - 1, false}},
	}
	for i, u := range w {
		rm := NewRangeModel(u.min, u.max, u.v, u.e)
		assert.Equal(t, u.res, rm.State(), "case %d", i)
	}
}

func TestRangeModelSetValueKeepsSecondValue(t *testing.T) {
	rm := NewRangeModel(0, 100, 20, 30)
	rm.SetValue(10)
	assert.Equal(t, 10, rm.Value())
	assert.Equal(t, 50, rm.SecondValue())

	// past the second value: extent pins at zero, value stays
	rm.SetValue(60)
	assert.Equal(t, 60, rm.Value())
	assert.Equal(t, 0, rm.Extent())
}

func TestRangeModelSetValueIdempotentClamp(t *testing.T) {
	rm := NewRangeModel(0, 100, 20, 30)
	n := 0
	rm.AddChangeListener(func(*RangeChangeEvent) { n++ })

	rm.SetValue(150)
	st := rm.State()
	assert.Equal(t, 100, st.Value)
	assert.Equal(t, 0, st.Extent)
	assert.Equal(t, 1, n)

	rm.SetValue(150)
	assert.Equal(t, st, rm.State())
	assert.Equal(t, 1, n, "no-op set must not notify")
}

func TestRangeModelSetValueKeepExtent(t *testing.T) {
	rm := NewRangeModel(0, 100, 20, 30)
	rm.SetValueKeepExtent(60)
	assert.Equal(t, RangeState{0, 100, 60, 30, false}, rm.State())
	rm.SetValueKeepExtent(90)
	assert.Equal(t, RangeState{0, 100, 70, 30, false}, rm.State())
	rm.SetValueKeepExtent(-10)
	assert.Equal(t, RangeState{0, 100, 0, 30, false}, rm.State())
}

func TestRangeModelSetSecondValueBelowValue(t *testing.T) {
	rm := NewRangeModel(0, 100, 20, 30)
	rm.SetSecondValue(10)
	assert.Equal(t, 20, rm.Value())
	assert.Equal(t, 0, rm.Extent())

	rm.SetSecondValue(500)
	assert.Equal(t, 20, rm.Value())
	assert.Equal(t, 100, rm.SecondValue())
}

func TestRangeModelSetExtent(t *testing.T) {
	rm := NewRangeModel(0, 100, 20, 30)
	rm.SetExtent(1000)
	assert.Equal(t, 80, rm.Extent())
	rm.SetExtent(-1)
	assert.Equal(t, 0, rm.Extent())
}

func TestRangeModelBounds(t *testing.T) {
	rm := NewRangeModel(0, 100, 20, 30)
	rm.SetMaximum(40)
	assert.Equal(t, RangeState{0, 40, 20, 20, false}, rm.State())

	rm.SetMinimum(150)
	assert.Equal(t, RangeState{150, 150, 150, 0, false}, rm.State())

	rm.SetMaximum(-10)
	assert.Equal(t, RangeState{-10, -10, -10, 0, false}, rm.State())

	rm.SetRange(0, 10, 5, 20)
	assert.Equal(t, RangeState{0, 10, 5, 5, false}, rm.State())
}

func TestRangeModelSetValueExtentNotifiesOnce(t *testing.T) {
	rm := NewRangeModel(0, 100, 20, 30)
	var evs []*RangeChangeEvent
	rm.AddChangeListener(func(ev *RangeChangeEvent) { evs = append(evs, ev) })

	rm.SetValueExtent(40, 10)
	require.Len(t, evs, 1)
	assert.Equal(t, RangeState{0, 100, 20, 30, false}, evs[0].Old)
	assert.Equal(t, RangeState{0, 100, 40, 10, false}, evs[0].New)
	assert.False(t, evs[0].BoundsChanged())

	rm.SetMaximum(45)
	require.Len(t, evs, 2)
	assert.True(t, evs[1].BoundsChanged())
	assert.Equal(t, 5, rm.Extent())
}

func TestRangeModelAdjustingNotifies(t *testing.T) {
	rm := NewRangeModel(0, 100, 20, 30)
	n := 0
	rm.AddChangeListener(func(ev *RangeChangeEvent) {
		n++
		assert.True(t, ev.New.ValueIsAdjusting)
	})
	rm.SetValueIsAdjusting(true)
	rm.SetValueIsAdjusting(true)
	assert.Equal(t, 1, n)
	assert.True(t, rm.ValueIsAdjusting())
}

func TestRangeModelRandomWalk(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	rm := NewRangeModel(0, 100, 20, 30)
	rnd := func() int { return r.Intn(400) - 200 }
	walkRangeModel(t, r, rm, rnd)
}

func TestRangeModelRandomWalkWideDomain(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	rm := NewRangeModel(math.MinInt, math.MaxInt, math.MinInt, 5)
	checkRangeInvariants(t, rm.State())
	extremes := []int{math.MinInt, math.MinInt + 1, -1, 0, 1, math.MaxInt - 1, math.MaxInt}
	rnd := func() int {
		if r.Intn(2) == 0 {
			return extremes[r.Intn(len(extremes))]
		}
		return int(r.Uint64())
	}
	walkRangeModel(t, r, rm, rnd)

	rm.SetRange(math.MinInt, math.MaxInt, math.MinInt, 0)
	rm.SetSecondValue(math.MaxInt)
	assert.Equal(t, math.MaxInt, rm.Extent(), "saturated")
	rm.SetValue(0)
	assert.Equal(t, 0, rm.Value())
	assert.Equal(t, 0, rm.Extent(), "past the high edge: zero extent")
}

func walkRangeModel(t *testing.T, r *rand.Rand, rm *RangeModel, rnd func() int) {
	t.Helper()
	for i := 0; i < 5000; i++ {
		switch r.Intn(9) {
		case 0:
			rm.SetValue(rnd())
		case 1:
			rm.SetValueKeepExtent(rnd())
		case 2:
			rm.SetSecondValue(rnd())
		case 3:
			rm.SetExtent(rnd())
		case 4:
			rm.SetValueExtent(rnd(), rnd())
		case 5:
			rm.SetMinimum(rnd())
		case 6:
			rm.SetMaximum(rnd())
		case 7:
			rm.SetRange(rnd(), rnd(), rnd(), rnd())
		case 8:
			rm.SetValueIsAdjusting(r.Intn(2) == 0)
		}
		checkRangeInvariants(t, rm.State())
	}
}
