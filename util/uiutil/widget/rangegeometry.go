package widget

import (
	"image"

	"github.com/jmigpin/rangeslider/util/uiutil/event"
)

type RangeZone int

const (
	ZoneNone RangeZone = iota
	ZoneMoveBoth
	ZoneResizeLow
	ZoneResizeHigh
)

func (z RangeZone) String() string {
	switch z {
	case ZoneMoveBoth:
		return "moveboth"
	case ZoneResizeLow:
		return "resizelow"
	case ZoneResizeHigh:
		return "resizehigh"
	}
	return "none"
}

//----------

// Snapshot of the rectangles painted in one frame. Replaced as a whole on every paint, never patched.
type RangeGeometry struct {
	Low  image.Rectangle // thumb of the value
	High image.Rectangle // thumb of the second value
	Band image.Rectangle // space between the thumbs
	Fill image.Rectangle // painted range inside the band

	Orientation Orientation
	Inverted    bool
}

func ComputeRangeGeometry(thumb *SliderThumb, bounds image.Rectangle, st RangeState) RangeGeometry {
	g := RangeGeometry{Orientation: thumb.Orientation, Inverted: thumb.Inverted}
	g.Low = thumb.Geometry(bounds, st.Minimum, st.Maximum, st.Value)
	g.High = thumb.Geometry(bounds, st.Minimum, st.Maximum, st.SecondValue())
	g.Band = bandRect(thumb.Orientation.Axis(), g.Low, g.High)
	g.Fill = fillRect(thumb.Orientation.Axis(), g.Band)
	return g
}

// Span strictly between the thumbs along the axis. The cross axis span is the low thumb's.
func bandRect(axis XYAxis, low, high image.Rectangle) image.Rectangle {
	l := axis.Rectangle(low)
	h := axis.Rectangle(high)
	a, b := l, h
	if a.Min.X > b.Min.X {
		a, b = b, a
	}
	if b.Min.X <= a.Max.X {
		return image.Rectangle{}
	}
	u := image.Rectangle{
		Min: image.Point{a.Max.X, l.Min.Y},
		Max: image.Point{b.Min.X, l.Max.Y},
	}
	if u.Empty() {
		return image.Rectangle{}
	}
	return axis.Rectangle(u)
}

// A quarter of the band thickness, centered.
func fillRect(axis XYAxis, band image.Rectangle) image.Rectangle {
	if band.Empty() {
		return image.Rectangle{}
	}
	u := axis.Rectangle(band)
	h := u.Dy() / 4
	if h < 1 {
		h = 1
	}
	u.Min.Y += (u.Dy() - h) / 2
	u.Max.Y = u.Min.Y + h
	return axis.Rectangle(u)
}

//----------

// The high thumb has precedence: with a zero extent both thumbs overlap, and growing the range from the high end is always possible.
func (g *RangeGeometry) Classify(p image.Point) RangeZone {
	switch {
	case p.In(g.High):
		return ZoneResizeHigh
	case p.In(g.Low):
		return ZoneResizeLow
	case p.In(g.Band):
		return ZoneMoveBoth
	}
	return ZoneNone
}

//----------

// Cursor suggestion for a zone: arrows point to where the dragged edge grows.
func (z RangeZone) Cursor(o Orientation, inverted bool) event.Cursor {
	switch z {
	case ZoneMoveBoth:
		return event.MoveCursor
	case ZoneResizeHigh, ZoneResizeLow:
		high := z == ZoneResizeHigh
		if inverted {
			high = !high
		}
		if o == Vertical {
			if high {
				return event.NResizeCursor
			}
			return event.SResizeCursor
		}
		if high {
			return event.EResizeCursor
		}
		return event.WResizeCursor
	}
	return event.DefaultCursor
}
