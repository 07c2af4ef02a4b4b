package widget

import (
	"fmt"
	"image"
	"testing"

	"github.com/jmigpin/rangeslider/util/uiutil/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recNode struct {
	ENode
	name string
	evs  *[]string
}

func (n *recNode) OnInputEvent(ev interface{}, p image.Point) event.Handled {
	*n.evs = append(*n.evs, fmt.Sprintf("%s:%T", n.name, ev))
	return event.NotHandled
}

func TestApplyEventDragRouting(t *testing.T) {
	var evs []string
	root := &recNode{name: "root", evs: &evs}
	root.SetWrapperForRoot(root)
	root.Bounds = image.Rect(0, 0, 100, 100)
	child := &recNode{name: "child", evs: &evs}
	root.Append(child)
	child.Bounds = image.Rect(10, 10, 50, 50)
	child.Cursor = event.MoveCursor

	ctx := newTestCtx()
	ae := NewApplyEvent(ctx)

	p := image.Pt(20, 20)
	ae.Apply(root, &event.MouseMove{Point: p}, p)
	assert.Equal(t, []string{
		"child:*event.MouseEnter",
		"root:*event.MouseEnter",
		"child:*event.MouseMove",
		"root:*event.MouseMove",
	}, evs)
	assert.Equal(t, event.MoveCursor, ctx.cursor)

	evs = nil
	p2 := image.Pt(30, 30)
	ae.Apply(root, &event.MouseDragStart{Point: p, Point2: p2, Button: event.ButtonLeft}, p2)
	p3 := image.Pt(90, 90)
	ae.Apply(root, &event.MouseDragMove{Point: p3}, p3)
	assert.Equal(t, event.MoveCursor, ctx.cursor, "drag keeps the drag node cursor")
	ae.Apply(root, &event.MouseDragEnd{Point: p3, Button: event.ButtonLeft}, p3)
	assert.Equal(t, []string{
		"child:*event.MouseDragStart",
		"child:*event.MouseDragMove",
		"child:*event.MouseDragEnd",
		"child:*event.MouseLeave",
	}, evs)
	assert.False(t, ae.Dragging())
	assert.Equal(t, event.NoneCursor, ctx.cursor, "outside the child, root has no cursor set")
}

func TestApplyEventDragCancel(t *testing.T) {
	var evs []string
	root := &recNode{name: "root", evs: &evs}
	root.SetWrapperForRoot(root)
	root.Bounds = image.Rect(0, 0, 100, 100)

	ae := NewApplyEvent(nil)
	p := image.Pt(20, 20)
	ae.Apply(root, &event.MouseDragStart{Point: p, Point2: p, Button: event.ButtonLeft}, p)
	assert.True(t, ae.Dragging())
	ae.Apply(root, &event.MouseDragCancel{}, p)
	assert.False(t, ae.Dragging())
	assert.Contains(t, evs, "root:*event.MouseDragCancel")

	// no drag node: all nodes get the cancel
	child := &recNode{name: "child", evs: &evs}
	root.Append(child)
	child.Bounds = image.Rect(50, 50, 60, 60)
	evs = nil
	ae.Apply(root, &event.MouseDragCancel{}, p)
	assert.Equal(t, []string{
		"child:*event.MouseDragCancel",
		"root:*event.MouseDragCancel",
	}, evs)

	// not draggable nodes don't start drags
	root.AddMarks(MarkNotDraggable)
	ae.Apply(root, &event.MouseDragStart{Point: p, Point2: p, Button: event.ButtonLeft}, p)
	assert.False(t, ae.Dragging())
}

func TestPadLayout(t *testing.T) {
	ctx := newTestCtx()
	rs := NewRangeSlider(ctx, 0, 100, 20, 30)
	pad := NewPad(ctx, rs)
	pad.SetWrapperForRoot(pad)
	pad.SetAll(5)
	pad.Bounds = image.Rect(0, 0, 223, 31)

	assert.Equal(t, image.Pt(212, 31), pad.Measure(image.Pt(1000, 1000)))
	pad.LayoutTree()
	assert.Equal(t, image.Rect(5, 5, 218, 26), rs.Bounds)
	pad.PaintTree()
	assert.Equal(t, testGeometry(20, 30).Low.Add(image.Pt(5, 5)), rs.Geometry().Low)
}

func TestApplyEventReleaseOutsidePressNode(t *testing.T) {
	ctx := newTestCtx()
	rs := NewRangeSlider(ctx, 0, 100, 20, 30)
	pad := NewPad(ctx, rs)
	pad.SetWrapperForRoot(pad)
	pad.SetAll(5)
	pad.Bounds = image.Rect(0, 0, 223, 31)
	pad.LayoutTree()
	pad.PaintTree()
	ae := NewApplyEvent(ctx)

	p := image.Pt(50, 6) // low thumb
	ae.Apply(pad, &event.MouseDown{Point: p, Button: event.ButtonLeft}, p)
	require.True(t, rs.ValueIsAdjusting())

	// released over the pad, inside the drag move pad (no drag events)
	p2 := image.Pt(50, 3)
	ae.Apply(pad, &event.MouseUp{Point: p2, Button: event.ButtonLeft}, p2)
	assert.False(t, rs.ValueIsAdjusting())
	assert.False(t, rs.drag.Dragging())

	p3 := image.Pt(150, 15)
	ae.Apply(pad, &event.MouseMove{Point: p3}, p3)
	assert.Equal(t, RangeState{0, 100, 20, 30, false}, rs.Model().State())

	// a release inside is delivered only once
	n := 0
	rs.AddChangeListener(func(*RangeChangeEvent) { n++ })
	ae.Apply(pad, &event.MouseDown{Point: p, Button: event.ButtonLeft}, p)
	ae.Apply(pad, &event.MouseUp{Point: p, Button: event.ButtonLeft}, p)
	assert.Equal(t, 2, n, "adjusting on, adjusting off")
	assert.False(t, rs.ValueIsAdjusting())
}
