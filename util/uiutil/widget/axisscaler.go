package widget

import "math"

// Pixel to domain units conversion for one axis.
type AxisScaler struct {
	unitsPerPixel float64
}

// The available length excludes the insets. A non-positive available length results in a zero scale (drags become no-ops).
func (as *AxisScaler) Recompute(length, insetStart, insetEnd, min, max int) {
	avail := length - insetStart - insetEnd
	if avail <= 0 {
		as.unitsPerPixel = 0
		return
	}
	u := (float64(max) - float64(min)) / float64(avail)
	if math.IsNaN(u) || math.IsInf(u, 0) || u < 0 {
		u = 0
	}
	as.unitsPerPixel = u
}

func (as *AxisScaler) UnitsPerPixel() float64 {
	return as.unitsPerPixel
}

func (as *AxisScaler) ToUnits(deltaPixels int) float64 {
	return float64(deltaPixels) * as.unitsPerPixel
}
