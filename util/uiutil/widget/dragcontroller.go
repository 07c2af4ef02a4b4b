package widget

import (
	"image"

	"github.com/jmigpin/rangeslider/util/mathutil"
	"github.com/jmigpin/rangeslider/util/uiutil/event"
)

// Press-drag-release state machine for a range model. The zone is decided at press time and kept for the whole gesture. Moves are applied relative to the model snapshot taken at press time.
type DragController struct {
	dragging bool
	zone     RangeZone
	press    image.Point

	snapValue, snapExtent int

	model       *RangeModel
	scaler      *AxisScaler
	orientation Orientation
	inverted    bool
}

func (dc *DragController) Dragging() bool {
	return dc.dragging
}

// Zone of the current gesture, or ZoneNone if idle.
func (dc *DragController) Zone() RangeZone {
	return dc.zone
}

//----------

// Classifies the point with the last painted geometry and starts a gesture. A press outside the thumbs and band starts a gesture with no effect.
func (dc *DragController) Press(p image.Point, geom *RangeGeometry, model *RangeModel, scaler *AxisScaler) RangeZone {
	if dc.dragging {
		dc.Cancel()
	}
	*dc = DragController{
		dragging:    true,
		zone:        geom.Classify(p),
		press:       p,
		snapValue:   model.Value(),
		snapExtent:  model.Extent(),
		model:       model,
		scaler:      scaler,
		orientation: geom.Orientation,
		inverted:    geom.Inverted,
	}
	if dc.zone != ZoneNone {
		dc.model.SetValueIsAdjusting(true)
	}
	return dc.zone
}

func (dc *DragController) Move(p image.Point) {
	if !dc.dragging || dc.zone == ZoneNone {
		return
	}
	dc.apply(dc.unitDelta(p))
}

func (dc *DragController) Release() {
	dc.end()
}

// Aborts the gesture keeping the model as it is (ex: pointer grab lost, model replaced).
func (dc *DragController) Cancel() {
	dc.end()
}

func (dc *DragController) end() {
	if dc.dragging && dc.zone != ZoneNone {
		dc.model.SetValueIsAdjusting(false)
	}
	*dc = DragController{}
}

//----------

// Advisory cursor for an idle pointer at p.
func (dc *DragController) Hover(p image.Point, geom *RangeGeometry) event.Cursor {
	return geom.Classify(p).Cursor(geom.Orientation, geom.Inverted)
}

//----------

// Displacement from the press point in units, positive towards bigger values.
func (dc *DragController) unitDelta(p image.Point) float64 {
	px := dc.orientation.Axis().Main(p.Sub(dc.press))
	if dc.orientation == Vertical {
		px = -px // values grow upwards, pixels downwards
	}
	if dc.inverted {
		px = -px
	}
	return dc.scaler.ToUnits(px)
}

func (dc *DragController) apply(d float64) {
	switch dc.zone {
	case ZoneMoveBoth:
		v := truncAdd(dc.snapValue, d)
		dc.model.SetValueKeepExtent(v)
	case ZoneResizeHigh:
		e := truncAdd(dc.snapExtent, d)
		v, e := collapseRange(dc.snapValue, e, ZoneResizeHigh)
		dc.model.SetValueExtent(v, e)
	case ZoneResizeLow:
		// saturate: can't push the low edge below the minimum through this path, otherwise the model clamp would move the high edge
		lim := float64(dc.model.Minimum()) - float64(dc.snapValue)
		if d < lim {
			d = lim
		}
		v := truncAdd(dc.snapValue, d)
		sv := dc.snapValue + dc.snapExtent
		v, e := collapseRange(v, sv-v, ZoneResizeLow)
		dc.model.SetValueExtent(v, e)
	}
}

// Candidate (value, extent) of a resize drag. A negative extent means the dragged thumb went past the other one: the range collapses to zero extent at the dragged thumb position (the other edge is pushed along).
func collapseRange(value, extent int, dragged RangeZone) (int, int) {
	if extent >= 0 {
		return value, extent
	}
	switch dragged {
	case ZoneResizeHigh:
		return value + extent, 0
	default: // ZoneResizeLow: the value is the dragged thumb
		return value, 0
	}
}

func truncAdd(base int, d float64) int {
	return mathutil.TruncFloat64ToInt(float64(base) + d)
}
