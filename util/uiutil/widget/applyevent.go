package widget

import (
	"image"

	"github.com/jmigpin/rangeslider/util/uiutil/event"
)

// Delivers input events to the node tree: enter/leave tracking, depth first delivery of mouse events, and routing of drag events to the node where the drag started (even if the pointer leaves its bounds).
type ApplyEvent struct {
	drag  AEDragState
	press AEPressState
	cctx  CursorContext
}

func NewApplyEvent(cctx CursorContext) *ApplyEvent {
	ae := &ApplyEvent{cctx: cctx}
	return ae
}

//----------

func (ae *ApplyEvent) Apply(node Node, ev interface{}, p image.Point) {
	if !ae.drag.dragging {
		ae.mouseEnterLeave(node, p)
	}

	switch evt := ev.(type) {
	case nil: // allow running the rest of the function without an event
	case *event.MouseDragStart:
		ae.dragStart(node, evt)
		if ae.drag.dragging {
			ae.mouseEnterLeave(node, ae.drag.startEv.Point)
		}
	case *event.MouseDragMove:
		ae.dragMove(evt, p)
	case *event.MouseDragEnd:
		ae.dragEnd(evt, p)
		if !ae.drag.dragging {
			ae.mouseEnterLeave(node, p)
		}
	case *event.MouseDragCancel:
		ae.dragCancel(node, evt, p)
		ae.mouseEnterLeave(node, p)
	default:
		// ex: event.MouseDown, event.MouseMove, event.MouseUp
		ae.depthFirstEv(node, evt, p)
		if up, ok := evt.(*event.MouseUp); ok {
			ae.pressEnd(up, p)
		}
	}

	ae.setCursor(node, p)
}

func (ae *ApplyEvent) Dragging() bool {
	return ae.drag.dragging
}

//----------

func (ae *ApplyEvent) setCursor(node Node, p image.Point) {
	if ae.cctx == nil {
		return
	}
	var c event.Cursor
	if ae.drag.dragging {
		c = ae.drag.node.Embed().Cursor
	} else {
		c = ae.treeCursor(node, p)
	}
	ae.cctx.SetCursor(c)
}

func (ae *ApplyEvent) treeCursor(node Node, p image.Point) event.Cursor {
	ne := node.Embed()
	if !p.In(ne.Bounds) {
		return event.NoneCursor
	}
	var c event.Cursor
	ne.IterateWrappersReverse(func(child Node) bool {
		c = ae.treeCursor(child, p)
		return c == event.NoneCursor // continue while no cursor was set
	})
	if c == event.NoneCursor {
		c = ne.Cursor
	}
	return c
}

//----------

func (ae *ApplyEvent) mouseEnterLeave(node Node, p image.Point) {
	ae.mouseLeave(node, p) // run leave first
	ae.mouseEnter(node, p)
}

func (ae *ApplyEvent) mouseEnter(node Node, p image.Point) event.Handled {
	ne := node.Embed()
	if !p.In(ne.Bounds) {
		return event.NotHandled
	}

	// later childs are drawn over previous ones, run loop backwards
	h := event.NotHandled
	ne.IterateWrappersReverse(func(c Node) bool {
		h = ae.mouseEnter(c, p)
		return h == event.NotHandled
	})

	if !h {
		if !ne.HasAnyMarks(MarkPointerInside) {
			ne.AddMarks(MarkPointerInside)
			h = ae.runEv(node, &event.MouseEnter{}, p)
		}
	}
	return h
}

func (ae *ApplyEvent) mouseLeave(node Node, p image.Point) event.Handled {
	ne := node.Embed()

	h := event.NotHandled
	ne.IterateWrappersReverse(func(c Node) bool {
		h = ae.mouseLeave(c, p)
		return h == event.NotHandled
	})

	if !h {
		if ne.HasAnyMarks(MarkPointerInside) && !p.In(ne.Bounds) {
			ne.RemoveMarks(MarkPointerInside)
			h = ae.runEv(node, &event.MouseLeave{}, p)
		}
	}
	return h
}

//----------

func (ae *ApplyEvent) dragStart(node Node, ev *event.MouseDragStart) {
	if ae.drag.dragging {
		return
	}
	p := ev.Point // use the starting point, not the current point
	ae.findDragNode(node, ev, p)
}

// Depth first, reverse order.
func (ae *ApplyEvent) findDragNode(node Node, ev *event.MouseDragStart, p image.Point) bool {
	if !p.In(node.Embed().Bounds) {
		return false
	}

	found := false
	node.Embed().IterateWrappersReverse(func(c Node) bool {
		found = ae.findDragNode(c, ev, p)
		return !found // continue while not found
	})

	if !found {
		// deepest node
		canDrag := !node.Embed().HasAnyMarks(MarkNotDraggable)
		if canDrag {
			ae.drag.dragging = true
			ae.drag.startEv = ev
			ae.drag.node = node
			ae.runEv(ae.drag.node, ev, p)
			return true
		}
	}
	return found
}

func (ae *ApplyEvent) dragMove(ev *event.MouseDragMove, p image.Point) {
	if !ae.drag.dragging {
		return
	}
	ae.runEv(ae.drag.node, ev, p)
}

func (ae *ApplyEvent) dragEnd(ev *event.MouseDragEnd, p image.Point) {
	if !ae.drag.dragging {
		return
	}
	if ev.Button != ae.drag.startEv.Button {
		return
	}
	ae.runEv(ae.drag.node, ev, p)
	ae.drag = AEDragState{}
}

// Without a drag node (ex: a press that didn't move yet), every node gets the cancel.
func (ae *ApplyEvent) dragCancel(node Node, ev *event.MouseDragCancel, p image.Point) {
	ae.press = AEPressState{}
	if !ae.drag.dragging {
		ae.broadcastEv(node, ev, p)
		return
	}
	ae.runEv(ae.drag.node, ev, p)
	ae.drag = AEDragState{}
}

func (ae *ApplyEvent) broadcastEv(node Node, ev interface{}, p image.Point) {
	node.Embed().IterateWrappers2(func(c Node) {
		ae.broadcastEv(c, ev, p)
	})
	ae.runEv(node, ev, p)
}

//----------

func (ae *ApplyEvent) depthFirstEv(node Node, ev interface{}, p image.Point) event.Handled {
	if !p.In(node.Embed().Bounds) {
		return event.NotHandled
	}

	// later childs are drawn over previous ones, run loop backwards
	h := event.NotHandled
	node.Embed().IterateWrappersReverse(func(c Node) bool {
		h = ae.depthFirstEv(c, ev, p)
		return h == event.NotHandled
	})

	if !h {
		h = ae.runEv(node, ev, p)
		ae.trackPress(node, ev, h)
	}
	return h
}

//----------

// The node that handled a mouse down gets the matching mouse up, even if the pointer is released outside of it.
func (ae *ApplyEvent) trackPress(node Node, ev interface{}, h event.Handled) {
	switch t := ev.(type) {
	case *event.MouseDown:
		if h && ae.press.node == nil {
			ae.press = AEPressState{node: node, button: t.Button}
		}
	case *event.MouseUp:
		if node == ae.press.node {
			ae.press.upSent = true
		}
	}
}

func (ae *ApplyEvent) pressEnd(ev *event.MouseUp, p image.Point) {
	if ae.press.node == nil {
		return
	}
	if ev.Button != ae.press.button {
		ae.press.upSent = false
		return
	}
	if !ae.press.upSent {
		ae.runEv(ae.press.node, ev, p)
	}
	ae.press = AEPressState{}
}

//----------

func (ae *ApplyEvent) runEv(node Node, ev interface{}, p image.Point) event.Handled {
	return node.OnInputEvent(ev, p)
}

//----------

type AEDragState struct {
	dragging bool
	startEv  *event.MouseDragStart
	node     Node
}

type AEPressState struct {
	node   Node
	button event.MouseButton
	upSent bool
}
