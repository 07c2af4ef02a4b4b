package widget

import "image"

// Allows calculations to be done X oriented, and have it translated to Y axis.
// Usefull for layouts that want to layout elements in a vertical or horizontal
// direction depending on a flag.
type XYAxis struct {
	YAxis bool
}

func (xy XYAxis) Point(p image.Point) image.Point {
	if xy.YAxis {
		return image.Point{p.Y, p.X}
	}
	return p
}
func (xy XYAxis) Rectangle(r image.Rectangle) image.Rectangle {
	if xy.YAxis {
		return image.Rect(r.Min.Y, r.Min.X, r.Max.Y, r.Max.X)
	}
	return r
}

// Coordinate along the axis.
func (xy XYAxis) Main(p image.Point) int {
	return xy.Point(p).X
}

//----------

type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) Axis() XYAxis {
	return XYAxis{YAxis: o == Vertical}
}

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}
