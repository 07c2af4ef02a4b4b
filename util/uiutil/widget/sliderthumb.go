package widget

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/jmigpin/rangeslider/util/imageutil"
	"github.com/jmigpin/rangeslider/util/mathutil"
)

type Insets struct {
	Top, Right, Bottom, Left int
}

func (ins Insets) startEnd(axis XYAxis) (int, int) {
	if axis.YAxis {
		return ins.Top, ins.Bottom
	}
	return ins.Left, ins.Right
}
func (ins Insets) crossStartEnd(axis XYAxis) (int, int) {
	if axis.YAxis {
		return ins.Left, ins.Right
	}
	return ins.Top, ins.Bottom
}

//----------

// Geometry and painting of a single value slider thumb. All functions are pure in their arguments: the thumb rectangle for a value depends only on the bounds, the domain and the thumb configuration.
//
// Horizontal values grow to the right, vertical values grow upwards. Inverted flips the direction.
type SliderThumb struct {
	Orientation    Orientation
	Inverted       bool
	Size           image.Point // X: along the track, Y: across the track
	TrackThickness int
	Insets         Insets
}

func DefaultSliderThumb() SliderThumb {
	return SliderThumb{
		Size:           image.Point{11, 19},
		TrackThickness: 4,
		Insets:         Insets{1, 1, 1, 1},
	}
}

func (st *SliderThumb) axis() XYAxis {
	return st.Orientation.Axis()
}

// Values are laid out starting from the end of the axis (right, or bottom).
func (st *SliderThumb) fromEnd() bool {
	return (st.Orientation == Vertical) != st.Inverted
}

// Inner area in x oriented coordinates.
func (st *SliderThumb) inner(bounds image.Rectangle) image.Rectangle {
	axis := st.axis()
	r := axis.Rectangle(bounds)
	s, e := st.Insets.startEnd(axis)
	cs, ce := st.Insets.crossStartEnd(axis)
	r.Min.X += s
	r.Max.X -= e
	r.Min.Y += cs
	r.Max.Y -= ce
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

//----------

// Rectangle where the thumb is drawn for the given value.
func (st *SliderThumb) Geometry(bounds image.Rectangle, min, max, value int) image.Rectangle {
	r := st.inner(bounds)
	tl := mathutil.LimitInt(st.Size.X, 0, r.Dx())
	tc := mathutil.LimitInt(st.Size.Y, 0, r.Dy())
	travel := r.Dx() - tl

	pos := travelPos(travel, min, max, value)
	if st.fromEnd() {
		pos = travel - pos
	}

	x0 := r.Min.X + pos
	y0 := r.Min.Y + (r.Dy()-tc)/2
	u := image.Rect(x0, y0, x0+tl, y0+tc)
	return st.axis().Rectangle(u)
}

func travelPos(travel, min, max, value int) int {
	if max <= min || travel <= 0 {
		return 0
	}
	f := (float64(value) - float64(min)) / (float64(max) - float64(min))
	f = mathutil.LimitFloat64(f, 0, 1)
	return int(math.Round(f * float64(travel)))
}

// Insets to use when scaling pixels to units: the thumb center travels from start to end.
func (st *SliderThumb) TravelInsets() (int, int) {
	s, e := st.Insets.startEnd(st.axis())
	tl := st.Size.X
	if tl < 0 {
		tl = 0
	}
	return s + tl/2, e + tl - tl/2
}

// Track line, going through the thumbs centers.
func (st *SliderThumb) TrackRect(bounds image.Rectangle) image.Rectangle {
	r := st.inner(bounds)
	tl := mathutil.LimitInt(st.Size.X, 0, r.Dx())
	th := mathutil.LimitInt(st.TrackThickness, 0, r.Dy())
	x0 := r.Min.X + tl/2
	x1 := r.Max.X - (tl - tl/2)
	y0 := r.Min.Y + (r.Dy()-th)/2
	u := image.Rect(x0, y0, x1, y0+th)
	return st.axis().Rectangle(u)
}

func (st *SliderThumb) Measure() image.Point {
	s, e := st.Insets.startEnd(st.axis())
	cs, ce := st.Insets.crossStartEnd(st.axis())
	p := image.Point{200 + s + e, st.Size.Y + cs + ce}
	return st.axis().Point(p)
}

//----------

func (st *SliderThumb) PaintTrack(img draw.Image, bounds image.Rectangle, c color.Color) {
	imageutil.FillRectangle(img, st.TrackRect(bounds), c)
}

func (st *SliderThumb) PaintThumb(img draw.Image, r image.Rectangle, fill, border color.Color) {
	imageutil.FillRectangle(img, r, fill)
	if border != nil {
		imageutil.StrokeRectangle(img, r, 1, border)
	}
}
