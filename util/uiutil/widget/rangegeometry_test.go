package widget

import (
	"image"
	"testing"

	"github.com/jmigpin/rangeslider/util/uiutil/event"
	"github.com/stretchr/testify/assert"
)

func testGeometry(value, extent int) RangeGeometry {
	st := DefaultSliderThumb()
	return ComputeRangeGeometry(&st, testHBounds, RangeState{Maximum: 100, Value: value, Extent: extent})
}

func TestRangeGeometryBand(t *testing.T) {
	g := testGeometry(20, 30)
	assert.Equal(t, image.Rect(41, 1, 52, 20), g.Low)
	assert.Equal(t, image.Rect(101, 1, 112, 20), g.High)
	assert.Equal(t, image.Rect(52, 1, 101, 20), g.Band)
	assert.Equal(t, image.Rect(52, 8, 101, 12), g.Fill)
}

func TestRangeGeometryBandEmptyWhenTouching(t *testing.T) {
	g := testGeometry(50, 0)
	assert.Equal(t, g.Low, g.High)
	assert.True(t, g.Band.Empty())
	assert.True(t, g.Fill.Empty())

	g = testGeometry(50, 5) // thumbs overlap
	assert.True(t, g.Band.Empty())
}

func TestRangeGeometryVertical(t *testing.T) {
	st := DefaultSliderThumb()
	st.Orientation = Vertical
	b := image.Rect(0, 0, 21, 213)
	g := ComputeRangeGeometry(&st, b, RangeState{Maximum: 100, Value: 20, Extent: 30})
	assert.Equal(t, image.Rect(1, 161, 20, 172), g.Low)
	assert.Equal(t, image.Rect(1, 101, 20, 112), g.High)
	// between the bottom of the high thumb and the top of the low thumb
	assert.Equal(t, image.Rect(1, 112, 20, 161), g.Band)
	assert.Equal(t, image.Rect(8, 112, 12, 161), g.Fill)
}

func TestRangeGeometryClassify(t *testing.T) {
	g := testGeometry(20, 30)
	assert.Equal(t, ZoneResizeLow, g.Classify(image.Pt(45, 10)))
	assert.Equal(t, ZoneResizeHigh, g.Classify(image.Pt(105, 10)))
	assert.Equal(t, ZoneMoveBoth, g.Classify(image.Pt(70, 10)))
	assert.Equal(t, ZoneNone, g.Classify(image.Pt(150, 10)))
	assert.Equal(t, ZoneNone, g.Classify(image.Pt(70, 0)))
}

func TestRangeGeometryClassifyZeroExtent(t *testing.T) {
	g := testGeometry(50, 0)
	assert.Equal(t, ZoneResizeHigh, g.Classify(image.Pt(105, 10)))

	var zero RangeGeometry
	assert.Equal(t, ZoneNone, zero.Classify(image.Pt(0, 0)))
}

func TestRangeZoneCursor(t *testing.T) {
	type in struct {
		z   RangeZone
		o   Orientation
		inv bool
		c   event.Cursor
	}
	w := []in{
		{ZoneResizeHigh, Horizontal, false, event.EResizeCursor},
		{ZoneResizeLow, Horizontal, false, event.WResizeCursor},
		{ZoneResizeHigh, Horizontal, true, event.WResizeCursor},
		{ZoneResizeHigh, Vertical, false, event.NResizeCursor},
		{ZoneResizeLow, Vertical, false, event.SResizeCursor},
		{ZoneResizeLow, Vertical, true, event.NResizeCursor},
		{ZoneMoveBoth, Vertical, false, event.MoveCursor},
		{ZoneNone, Horizontal, false, event.DefaultCursor},
	}
	for _, u := range w {
		assert.Equal(t, u.c, u.z.Cursor(u.o, u.inv), "%v %v inv=%v", u.z, u.o, u.inv)
	}
}
