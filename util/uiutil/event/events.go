package event

import (
	"image"
)

//----------

type WindowClose struct{}
type WindowResize struct{ Rect image.Rectangle }
type WindowExpose struct{ Rect image.Rectangle }

// Input events are delivered wrapped with the point at which they happened.
type WindowInput struct {
	Point image.Point
	Event interface{}
}

//----------

type Handled bool

const (
	NotHandled Handled = false
	HandledYes Handled = true
)

//----------

type MouseEnter struct{}
type MouseLeave struct{}

type MouseDown struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseUp struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}

type MouseDragStart struct {
	Point   image.Point // starting (press) point
	Point2  image.Point // current point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseDragMove struct {
	Point   image.Point
	Buttons MouseButtons
	Mods    KeyModifiers
}
type MouseDragEnd struct {
	Point   image.Point
	Button  MouseButton
	Buttons MouseButtons
	Mods    KeyModifiers
}

// Sent when the pointer grab was lost in the middle of a gesture (ex: window unmapped, focus stolen). Receivers should abort without applying further changes.
type MouseDragCancel struct{}

//----------

type MouseButton int32

const (
	ButtonNone MouseButton = iota
	ButtonLeft MouseButton = 1 << (iota - 1)
	ButtonMiddle
	ButtonRight
	ButtonWheelUp
	ButtonWheelDown
	ButtonWheelLeft
	ButtonWheelRight
)

type MouseButtons int32

func (mb MouseButtons) Has(b MouseButton) bool {
	return int32(mb)&int32(b) > 0
}
func (mb MouseButtons) Is(b MouseButton) bool {
	return int32(mb) == int32(b)
}

//----------

type KeyModifiers uint16

const (
	ModShift KeyModifiers = 1 << iota
	ModLock
	ModCtrl
	Mod1 // alt
)

func (km KeyModifiers) HasAny(m KeyModifiers) bool {
	return km&m > 0
}
