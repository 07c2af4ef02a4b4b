package widget

import (
	"fmt"
	"math"

	"github.com/jmigpin/rangeslider/util/mathutil"
)

type RangeState struct {
	Minimum, Maximum int
	Value, Extent    int

	// True while the user is dragging (a gesture is in progress).
	ValueIsAdjusting bool
}

func (st RangeState) SecondValue() int {
	return st.Value + st.Extent
}

func (st RangeState) String() string {
	return fmt.Sprintf("[%v,%v]{v=%v,e=%v,adj=%v}", st.Minimum, st.Maximum, st.Value, st.Extent, st.ValueIsAdjusting)
}

// Keeps min<=value, value+extent<=max, extent>=0. The maximum wins over the value and the value wins over the extent.
func (st RangeState) clamped() RangeState {
	if st.Maximum < st.Minimum {
		st.Maximum = st.Minimum
	}
	st.Value = mathutil.LimitInt(st.Value, st.Minimum, st.Maximum)
	st.Extent = mathutil.LimitInt(st.Extent, 0, span(st.Value, st.Maximum))
	return st
}

// Distance from a to b (a<=b), saturated at math.MaxInt for domains wider than an int.
func span(a, b int) int {
	d := b - a
	if d < 0 {
		return math.MaxInt
	}
	return d
}

//----------

// Selected sub-range [value, value+extent] of the [minimum, maximum] domain. Out of range input is clamped, never rejected. Listeners are notified once per net change.
type RangeModel struct {
	st        RangeState
	listeners ChangeNotifier
}

func NewRangeModel(min, max, value, extent int) *RangeModel {
	rm := &RangeModel{}
	st := RangeState{Minimum: min, Maximum: max, Value: value, Extent: extent}
	rm.st = st.clamped()
	return rm
}

//----------

func (rm *RangeModel) State() RangeState { return rm.st }

func (rm *RangeModel) Minimum() int           { return rm.st.Minimum }
func (rm *RangeModel) Maximum() int           { return rm.st.Maximum }
func (rm *RangeModel) Value() int             { return rm.st.Value }
func (rm *RangeModel) Extent() int            { return rm.st.Extent }
func (rm *RangeModel) SecondValue() int       { return rm.st.SecondValue() }
func (rm *RangeModel) ValueIsAdjusting() bool { return rm.st.ValueIsAdjusting }

//----------

// Moves the low edge keeping the high edge (second value) fixed. If the value goes past the high edge, the extent becomes zero (the value is not moved back).
func (rm *RangeModel) SetValue(v int) {
	st := rm.st
	v = mathutil.LimitInt(v, st.Minimum, st.Maximum)
	sv := st.SecondValue()
	st.Value = v
	st.Extent = 0
	if sv > v {
		st.Extent = span(v, sv)
	}
	rm.set(st)
}

// Moves both edges keeping the extent. The range stops at the domain edges.
func (rm *RangeModel) SetValueKeepExtent(v int) {
	st := rm.st
	st.Value = mathutil.LimitInt(v, st.Minimum, st.Maximum-st.Extent)
	rm.set(st)
}

// Moves the high edge. A second value below the value results in a zero extent.
func (rm *RangeModel) SetSecondValue(v int) {
	st := rm.st
	v = mathutil.LimitInt(v, st.Minimum, st.Maximum)
	st.Extent = 0
	if v > st.Value {
		st.Extent = span(st.Value, v)
	}
	rm.set(st)
}

func (rm *RangeModel) SetExtent(e int) {
	st := rm.st
	st.Extent = e
	rm.set(st)
}

// Sets value and extent with one notification. The value is clamped first, then the extent.
func (rm *RangeModel) SetValueExtent(v, e int) {
	st := rm.st
	st.Value = v
	st.Extent = e
	rm.set(st)
}

// If the new minimum is above the maximum, the maximum is moved along.
func (rm *RangeModel) SetMinimum(m int) {
	st := rm.st
	st.Minimum = m
	if st.Maximum < m {
		st.Maximum = m
	}
	rm.set(st)
}

// If the new maximum is below the minimum, the minimum is moved along.
func (rm *RangeModel) SetMaximum(m int) {
	st := rm.st
	st.Maximum = m
	if st.Minimum > m {
		st.Minimum = m
	}
	rm.set(st)
}

func (rm *RangeModel) SetRange(min, max, value, extent int) {
	st := rm.st
	st.Minimum = min
	st.Maximum = max
	st.Value = value
	st.Extent = extent
	rm.set(st)
}

func (rm *RangeModel) SetValueIsAdjusting(v bool) {
	st := rm.st
	st.ValueIsAdjusting = v
	rm.set(st)
}

//----------

func (rm *RangeModel) set(st RangeState) {
	st = st.clamped()
	if st == rm.st {
		return
	}
	old := rm.st
	rm.st = st
	rm.listeners.Notify(&RangeChangeEvent{Old: old, New: st})
}

//----------

func (rm *RangeModel) AddChangeListener(fn func(*RangeChangeEvent)) *ChangeListener {
	return rm.listeners.Add(fn)
}
func (rm *RangeModel) RemoveChangeListener(l *ChangeListener) bool {
	return rm.listeners.Remove(l)
}
func (rm *RangeModel) ChangeListeners() []*ChangeListener {
	return rm.listeners.Listeners()
}
