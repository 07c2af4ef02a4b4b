package widget

import (
	"fmt"
	"image"
	"image/color"

	"github.com/jmigpin/rangeslider/util/fontutil"
	"github.com/jmigpin/rangeslider/util/imageutil"
	"github.com/jmigpin/rangeslider/util/uiutil/event"
)

// Slider with two thumbs selecting the [value, value+extent] sub-range of a range model. The low thumb moves the value keeping the second value, the high thumb moves the second value, and the band between them moves both.
type RangeSlider struct {
	ENode
	Thumb SliderThumb

	model         *RangeModel
	modelListener *ChangeListener
	listeners     ChangeNotifier

	scalerX, scalerY AxisScaler
	geom             RangeGeometry // last painted
	drag             DragController
	hoverZone        RangeZone

	showLabels bool
	labelFmt   func(RangeState) string

	ctx ImageContext
}

func NewRangeSlider(ctx ImageContext, min, max, value, extent int) *RangeSlider {
	rs := &RangeSlider{ctx: ctx, Thumb: DefaultSliderThumb()}
	rs.labelFmt = defaultRangeLabel
	rs.SetModel(NewRangeModel(min, max, value, extent))
	return rs
}

func NewDefaultRangeSlider(ctx ImageContext) *RangeSlider {
	return NewRangeSlider(ctx, 0, 100, 0, 10)
}

//----------

func (rs *RangeSlider) Model() *RangeModel {
	return rs.model
}

// Replaces the model. An ongoing drag is cancelled since its snapshot refers to the old model.
func (rs *RangeSlider) SetModel(m *RangeModel) {
	if m == nil || m == rs.model {
		return
	}
	rs.drag.Cancel()
	if rs.model != nil {
		rs.model.RemoveChangeListener(rs.modelListener)
	}
	old := RangeState{}
	if rs.model != nil {
		old = rs.model.State()
	}
	rs.model = m
	rs.modelListener = m.AddChangeListener(rs.onModelChange)
	rs.recomputeScalers()
	rs.MarkNeedsLayoutAndPaint()

	if old != m.State() {
		rs.listeners.Notify(&RangeChangeEvent{Old: old, New: m.State()})
	}
}

func (rs *RangeSlider) onModelChange(ev *RangeChangeEvent) {
	if ev.BoundsChanged() {
		rs.recomputeScalers()
	}
	rs.MarkNeedsPaint()
	rs.listeners.Notify(ev)
}

//----------

func (rs *RangeSlider) Value() int           { return rs.model.Value() }
func (rs *RangeSlider) SetValue(v int)       { rs.model.SetValue(v) }
func (rs *RangeSlider) SecondValue() int     { return rs.model.SecondValue() }
func (rs *RangeSlider) SetSecondValue(v int) { rs.model.SetSecondValue(v) }
func (rs *RangeSlider) Extent() int          { return rs.model.Extent() }
func (rs *RangeSlider) SetExtent(e int)      { rs.model.SetExtent(e) }
func (rs *RangeSlider) Minimum() int         { return rs.model.Minimum() }
func (rs *RangeSlider) SetMinimum(m int)     { rs.model.SetMinimum(m) }
func (rs *RangeSlider) Maximum() int         { return rs.model.Maximum() }
func (rs *RangeSlider) SetMaximum(m int)     { rs.model.SetMaximum(m) }

func (rs *RangeSlider) ValueIsAdjusting() bool {
	return rs.model.ValueIsAdjusting()
}

//----------

func (rs *RangeSlider) AddChangeListener(fn func(*RangeChangeEvent)) *ChangeListener {
	return rs.listeners.Add(fn)
}
func (rs *RangeSlider) RemoveChangeListener(l *ChangeListener) bool {
	return rs.listeners.Remove(l)
}
func (rs *RangeSlider) ChangeListeners() []*ChangeListener {
	return rs.listeners.Listeners()
}

//----------

func (rs *RangeSlider) Orientation() Orientation {
	return rs.Thumb.Orientation
}
func (rs *RangeSlider) SetOrientation(o Orientation) {
	if o == rs.Thumb.Orientation {
		return
	}
	rs.drag.Cancel()
	rs.Thumb.Orientation = o
	rs.recomputeScalers()
	rs.MarkNeedsLayoutAndPaint()
}

func (rs *RangeSlider) Inverted() bool {
	return rs.Thumb.Inverted
}
func (rs *RangeSlider) SetInverted(v bool) {
	if v == rs.Thumb.Inverted {
		return
	}
	rs.drag.Cancel()
	rs.Thumb.Inverted = v
	rs.MarkNeedsPaint()
}

func (rs *RangeSlider) ShowLabels() bool {
	return rs.showLabels
}
func (rs *RangeSlider) SetShowLabels(v bool) {
	rs.showLabels = v
	rs.recomputeScalers()
	rs.MarkNeedsLayoutAndPaint()
}

// Text shown by the labels. Nil restores the default "value - secondValue".
func (rs *RangeSlider) SetLabelFormat(fn func(RangeState) string) {
	if fn == nil {
		fn = defaultRangeLabel
	}
	rs.labelFmt = fn
	rs.MarkNeedsPaint()
}

func defaultRangeLabel(st RangeState) string {
	return fmt.Sprintf("%d - %d", st.Value, st.SecondValue())
}

//----------

// Geometry used for hit testing (last paint).
func (rs *RangeSlider) Geometry() RangeGeometry {
	return rs.geom
}

func (rs *RangeSlider) activeScaler() *AxisScaler {
	if rs.Thumb.Orientation == Vertical {
		return &rs.scalerY
	}
	return &rs.scalerX
}

func (rs *RangeSlider) recomputeScalers() {
	b := rs.sliderBounds()
	min, max := rs.model.Minimum(), rs.model.Maximum()

	h := rs.Thumb
	h.Orientation = Horizontal
	s, e := h.TravelInsets()
	rs.scalerX.Recompute(b.Dx(), s, e, min, max)

	v := rs.Thumb
	v.Orientation = Vertical
	s, e = v.TravelInsets()
	rs.scalerY.Recompute(b.Dy(), s, e, min, max)
}

//----------

// Bounds of the track and thumbs (excludes the labels area).
func (rs *RangeSlider) sliderBounds() image.Rectangle {
	b := rs.Bounds
	if !rs.showLabels {
		return b
	}
	lh := rs.labelSize()
	if rs.Thumb.Orientation == Vertical {
		b.Min.Y += lh.Y
	} else {
		b.Max.Y -= lh.Y
	}
	return b.Intersect(rs.Bounds)
}

func (rs *RangeSlider) labelsBounds() image.Rectangle {
	b := rs.Bounds
	lh := rs.labelSize()
	if rs.Thumb.Orientation == Vertical {
		b.Max.Y = b.Min.Y + lh.Y
	} else {
		b.Min.Y = b.Max.Y - lh.Y
	}
	return b.Intersect(rs.Bounds)
}

func (rs *RangeSlider) labelSize() image.Point {
	ff := rs.TreeThemeFontFace()
	return fontutil.MeasureText(ff, rs.labelFmt(rs.model.State()))
}

//----------

func (rs *RangeSlider) Measure(hint image.Point) image.Point {
	m := rs.Thumb.Measure()
	if rs.showLabels {
		ls := rs.labelSize()
		m.Y += ls.Y
		if ls.X > m.X {
			m.X = ls.X
		}
	}
	if m.X > hint.X {
		m.X = hint.X
	}
	if m.Y > hint.Y {
		m.Y = hint.Y
	}
	return m
}

func (rs *RangeSlider) Layout() {
	rs.recomputeScalers()
}

func (rs *RangeSlider) Paint() {
	img := rs.ctx.Image()
	imageutil.FillRectangle(img, rs.Bounds, rs.TreeThemePaletteColor("rangeslider_bg"))

	sb := rs.sliderBounds()
	st := rs.model.State()
	rs.geom = ComputeRangeGeometry(&rs.Thumb, sb, st)

	rs.Thumb.PaintTrack(img, sb, rs.TreeThemePaletteColor("rangeslider_track"))
	imageutil.FillRectangle(img, rs.geom.Fill, rs.TreeThemePaletteColor("rangeslider_range"))

	// high thumb painted last: it is on top, and also wins the hit test
	border := rs.TreeThemePaletteColor("rangeslider_thumb_border")
	rs.Thumb.PaintThumb(img, rs.geom.Low, rs.thumbColor(ZoneResizeLow), border)
	rs.Thumb.PaintThumb(img, rs.geom.High, rs.thumbColor(ZoneResizeHigh), border)

	if rs.showLabels {
		rs.paintLabels(st)
	}
}

func (rs *RangeSlider) thumbColor(z RangeZone) color.Color {
	dragging := rs.activeDrag()
	active := rs.hoverZone
	if dragging {
		active = rs.drag.Zone()
	}
	if active == z || active == ZoneMoveBoth {
		if dragging {
			return rs.TreeThemePaletteColor("rangeslider_thumb_select")
		}
		return rs.TreeThemePaletteColor("rangeslider_thumb_hover")
	}
	return rs.TreeThemePaletteColor("rangeslider_thumb")
}

func (rs *RangeSlider) paintLabels(st RangeState) {
	ff := rs.TreeThemeFontFace()
	str := rs.labelFmt(st)
	lb := rs.labelsBounds()
	size := fontutil.MeasureText(ff, str)
	r := lb
	r.Min.X += (lb.Dx() - size.X) / 2
	r = r.Intersect(lb)
	fontutil.DrawText(rs.ctx.Image(), ff, str, r, rs.TreeThemePaletteColor("rangeslider_label_fg"))
}

//----------

func (rs *RangeSlider) OnInputEvent(ev interface{}, p image.Point) event.Handled {
	switch evt := ev.(type) {
	case *event.MouseDown:
		if evt.Button == event.ButtonLeft {
			rs.press(evt.Point)
			return event.HandledYes
		}
	case *event.MouseMove:
		switch {
		case !rs.drag.Dragging():
			rs.hover(evt.Point)
		case !evt.Buttons.Has(event.ButtonLeft):
			// the release was missed (ex: happened over another node)
			rs.release(evt.Point)
		case !rs.activeDrag():
			rs.hover(evt.Point) // press outside the zones
		default:
			rs.drag.Move(evt.Point)
		}
	case *event.MouseUp:
		if evt.Button == event.ButtonLeft && rs.drag.Dragging() {
			rs.drag.Move(evt.Point)
			rs.release(evt.Point)
		}

	case *event.MouseDragStart:
		if evt.Button != event.ButtonLeft {
			break
		}
		if !rs.drag.Dragging() {
			rs.press(evt.Point)
		}
		rs.drag.Move(evt.Point2)
	case *event.MouseDragMove:
		rs.drag.Move(evt.Point)
	case *event.MouseDragEnd:
		if rs.drag.Dragging() {
			rs.drag.Move(evt.Point)
			rs.release(evt.Point)
		}
	case *event.MouseDragCancel:
		rs.drag.Cancel()
		rs.MarkNeedsPaint()

	case *event.MouseLeave:
		if !rs.activeDrag() {
			rs.setHoverZone(ZoneNone)
			rs.Cursor = event.NoneCursor
		}
	}
	return event.NotHandled
}

// Dragging a thumb or the band (a press outside the zones is a no-op gesture).
func (rs *RangeSlider) activeDrag() bool {
	return rs.drag.Dragging() && rs.drag.Zone() != ZoneNone
}

func (rs *RangeSlider) press(p image.Point) {
	z := rs.drag.Press(p, &rs.geom, rs.model, rs.activeScaler())
	rs.Cursor = z.Cursor(rs.geom.Orientation, rs.geom.Inverted)
	rs.MarkNeedsPaint() // thumb select colors
}

func (rs *RangeSlider) release(p image.Point) {
	rs.drag.Release()
	rs.hover(p)
	rs.MarkNeedsPaint()
}

func (rs *RangeSlider) hover(p image.Point) {
	rs.Cursor = rs.drag.Hover(p, &rs.geom)
	rs.setHoverZone(rs.geom.Classify(p))
}

func (rs *RangeSlider) setHoverZone(z RangeZone) {
	if z != rs.hoverZone {
		rs.hoverZone = z
		rs.MarkNeedsPaint()
	}
}
