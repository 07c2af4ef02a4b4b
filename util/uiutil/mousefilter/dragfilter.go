package mousefilter

import (
	"image"

	"github.com/jmigpin/rangeslider/util/uiutil/event"
)

// Produce mousedrag* events. Keeps track of the first mouse button used.
type DragFilter struct {
	pressEv  *event.MouseDown
	dragging bool
	emitEvFn func(interface{}, image.Point)
}

func NewDragFilter(emitEvFn func(interface{}, image.Point)) *DragFilter {
	return &DragFilter{emitEvFn: emitEvFn}
}

func (dragf *DragFilter) Filter(ev interface{}) {
	switch t := ev.(type) {
	case *event.MouseDown:
		dragf.keepStartingPoint(t)
	case *event.MouseMove:
		dragf.startOrMove(t)
	case *event.MouseUp:
		dragf.end(t)
	}
}

func (dragf *DragFilter) Dragging() bool {
	return dragf.dragging
}

// Aborts an ongoing drag (ex: the window lost the pointer grab).
func (dragf *DragFilter) Cancel() {
	if dragf.dragging {
		p := dragf.pressEv.Point
		dragf.emitEv(&event.MouseDragCancel{}, p)
	}
	dragf.pressEv = nil
	dragf.dragging = false
}

//----------

func (dragf *DragFilter) keepStartingPoint(ev *event.MouseDown) {
	if dragf.pressEv == nil {
		dragf.pressEv = ev
	}
}

func (dragf *DragFilter) startOrMove(ev *event.MouseMove) {
	if dragf.pressEv == nil {
		return
	}
	if !dragf.dragging {
		if DetectMove(dragf.pressEv.Point, ev.Point) {
			dragf.dragging = true
			b := dragf.pressEv.Button
			start := dragf.pressEv.Point
			ev2 := &event.MouseDragStart{Point: start, Point2: ev.Point, Button: b, Buttons: ev.Buttons, Mods: ev.Mods}
			dragf.emitEv(ev2, start)
		}
	} else {
		ev2 := &event.MouseDragMove{Point: ev.Point, Buttons: ev.Buttons, Mods: ev.Mods}
		dragf.emitEv(ev2, ev.Point)
	}
}

func (dragf *DragFilter) end(ev *event.MouseUp) {
	if dragf.pressEv != nil && ev.Button == dragf.pressEv.Button {
		if dragf.dragging {
			ev2 := &event.MouseDragEnd{Point: ev.Point, Button: ev.Button, Buttons: ev.Buttons, Mods: ev.Mods}
			dragf.emitEv(ev2, ev.Point)
		}
		// reset
		dragf.pressEv = nil
		dragf.dragging = false
	}
}

//----------

func (dragf *DragFilter) emitEv(ev interface{}, p image.Point) {
	dragf.emitEvFn(ev, p)
}
