package xinput

import (
	"image"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/rangeslider/util/uiutil/event"
)

// Translates x pointer events into uiutil events. Keyboard input is not translated.

func ButtonPress(ev *xproto.ButtonPressEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButtonToEventButton(ev.Detail)
	bs := translateModifiersToEventMouseButtons(ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	ev2 := &event.MouseDown{Point: p, Button: b, Buttons: bs, Mods: m}
	return &event.WindowInput{Point: p, Event: ev2}
}

func ButtonRelease(ev *xproto.ButtonReleaseEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	b := translateButtonToEventButton(ev.Detail)
	bs := translateModifiersToEventMouseButtons(ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	ev2 := &event.MouseUp{Point: p, Button: b, Buttons: bs, Mods: m}
	return &event.WindowInput{Point: p, Event: ev2}
}

func MotionNotify(ev *xproto.MotionNotifyEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	bs := translateModifiersToEventMouseButtons(ev.State)
	m := translateModifiersToEventKeyModifiers(ev.State)
	ev2 := &event.MouseMove{Point: p, Buttons: bs, Mods: m}
	return &event.WindowInput{Point: p, Event: ev2}
}

// Another client grabbed the pointer (ex: window manager move): ongoing gestures are aborted.
func LeaveNotify(ev *xproto.LeaveNotifyEvent) *event.WindowInput {
	p := image.Point{int(ev.EventX), int(ev.EventY)}
	if ev.Mode == xproto.NotifyModeGrab {
		return &event.WindowInput{Point: p, Event: &event.MouseDragCancel{}}
	}
	return &event.WindowInput{Point: p, Event: &event.MouseLeave{}}
}

//----------

func translateModifiersToEventKeyModifiers(v uint16) event.KeyModifiers {
	type pair struct {
		a uint16
		b event.KeyModifiers
	}
	pairs := []pair{
		{xproto.KeyButMaskShift, event.ModShift},
		{xproto.KeyButMaskControl, event.ModCtrl},
		{xproto.KeyButMaskLock, event.ModLock},
		{xproto.KeyButMaskMod1, event.Mod1},
	}
	var w event.KeyModifiers
	for _, p := range pairs {
		if v&p.a > 0 {
			w |= p.b
		}
	}
	return w
}

func translateModifiersToEventMouseButtons(v uint16) event.MouseButtons {
	type pair struct {
		a uint16
		b event.MouseButton
	}
	pairs := []pair{
		{xproto.KeyButMaskButton1, event.ButtonLeft},
		{xproto.KeyButMaskButton2, event.ButtonMiddle},
		{xproto.KeyButMaskButton3, event.ButtonRight},
		{xproto.KeyButMaskButton4, event.ButtonWheelUp},
		{xproto.KeyButMaskButton5, event.ButtonWheelDown},
	}
	var w event.MouseButtons
	for _, p := range pairs {
		if v&p.a > 0 {
			w |= event.MouseButtons(p.b)
		}
	}
	return w
}

func translateButtonToEventButton(xb xproto.Button) event.MouseButton {
	switch xb {
	case 1:
		return event.ButtonLeft
	case 2:
		return event.ButtonMiddle
	case 3:
		return event.ButtonRight
	case 4:
		return event.ButtonWheelUp
	case 5:
		return event.ButtonWheelDown
	case 6:
		return event.ButtonWheelLeft
	case 7:
		return event.ButtonWheelRight
	}
	return event.ButtonNone
}
