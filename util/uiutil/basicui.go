package uiutil

import (
	"context"
	"image"
	"image/draw"

	"github.com/jmigpin/rangeslider/driver"
	"github.com/jmigpin/rangeslider/util/chanutil"
	"github.com/jmigpin/rangeslider/util/uiutil/event"
	"github.com/jmigpin/rangeslider/util/uiutil/mousefilter"
	"github.com/jmigpin/rangeslider/util/uiutil/widget"
	"github.com/rs/zerolog"
)

// Window, event loop and paint scheduling. Event handling, layout and paint all run in the goroutine that calls Run.
type BasicUI struct {
	RootNode widget.Node // see SetRootNode
	Win      driver.Window
	Log      zerolog.Logger

	eventsQ   *chanutil.ChanQ
	movef     *mousefilter.MoveFilter
	dragf     *mousefilter.DragFilter
	ae        *widget.ApplyEvent
	curCursor event.Cursor
	exposed   bool
	closing   bool
}

func NewBasicUI(win driver.Window, fps int, log zerolog.Logger) *BasicUI {
	ui := &BasicUI{
		Win:       win,
		Log:       log,
		eventsQ:   chanutil.NewChanQ(16, 16),
		curCursor: -1, // force the first set
	}
	ui.movef = mousefilter.NewMoveFilter(ui.eventsQ.In(), fps, nil)
	ui.dragf = mousefilter.NewDragFilter(ui.applyInput)
	ui.ae = widget.NewApplyEvent(ui)
	return ui
}

// Runs until the window is closed or the context is done.
func (ui *BasicUI) Run(ctx context.Context) {
	defer ui.eventsQ.Close()
	go ui.readLoop()

	out := ui.eventsQ.Out()
	for !ui.closing {
		select {
		case <-ctx.Done():
			ui.Log.Debug().Err(ctx.Err()).Msg("ui loop done")
			return
		case ev := <-out:
			ui.HandleEvent(ev)
			if !ui.closing {
				ui.paintIfNeeded()
			}
		}
	}
}

func (ui *BasicUI) readLoop() {
	for {
		ev, ok := ui.Win.NextEvent()
		if !ok {
			ui.movef.Filter(&event.WindowClose{})
			return
		}
		ui.movef.Filter(ev)
	}
}

// Sets the root of the node tree. Its bounds follow the window size.
func (ui *BasicUI) SetRootNode(n widget.Node) {
	en := n.Embed()
	en.SetWrapperForRoot(n)
	if ui.RootNode != nil {
		en.Bounds = ui.RootNode.Embed().Bounds
	}
	ui.RootNode = n
	en.MarkNeedsLayoutAndPaint()
}

func (ui *BasicUI) Close() error {
	return ui.Win.Close()
}

//----------

func (ui *BasicUI) HandleEvent(ev interface{}) {
	switch t := ev.(type) {
	case *event.WindowClose:
		ui.closing = true
	case *event.WindowResize:
		ui.resize(t.Rect)
	case *event.WindowExpose:
		ui.exposed = true
	case *event.WindowInput:
		ui.handleInput(t)
	case *UIRunFuncEvent:
		t.Func()
	case error:
		ui.Log.Error().Err(t).Msg("window")
	default:
		ui.Log.Debug().Msgf("unhandled event: %#v", ev)
	}
}

func (ui *BasicUI) handleInput(wi *event.WindowInput) {
	if ui.RootNode == nil {
		return
	}
	if _, ok := wi.Event.(*event.MouseDragCancel); ok {
		if ui.dragf.Dragging() {
			ui.dragf.Cancel() // emits the cancel to the drag node
			return
		}
		ui.dragf.Cancel() // forget a pending press
	}
	ui.applyInput(wi.Event, wi.Point)
	ui.dragf.Filter(wi.Event)
}

func (ui *BasicUI) applyInput(ev interface{}, p image.Point) {
	ui.ae.Apply(ui.RootNode, ev, p)
}

func (ui *BasicUI) resize(r image.Rectangle) {
	if err := ui.Win.ResizeImage(r); err != nil {
		ui.Log.Error().Err(err).Msg("resize image")
		return
	}
	ui.exposed = true
	if ui.RootNode == nil {
		return
	}
	en := ui.RootNode.Embed()
	if !en.Bounds.Eq(r) {
		en.Bounds = r
		en.MarkNeedsLayoutAndPaint()
	}
}

//----------

func (ui *BasicUI) paintIfNeeded() {
	if ui.RootNode == nil {
		return
	}
	en := ui.RootNode.Embed()
	if en.TreeNeedsLayout() {
		en.LayoutMarked()
	}
	var r image.Rectangle
	if ui.exposed {
		ui.exposed = false
		if en.PaintTree() {
			r = en.Bounds
		}
	} else {
		r = en.PaintMarked()
	}
	if r.Empty() {
		return
	}
	if err := ui.Win.PutImage(r); err != nil {
		ui.Log.Error().Err(err).Msg("put image")
	}
}

//----------

// Implements widget.ImageContext.
func (ui *BasicUI) Image() draw.Image {
	return ui.Win.Image()
}

// Implements widget.CursorContext.
func (ui *BasicUI) SetCursor(c event.Cursor) {
	if c == event.NoneCursor {
		c = event.DefaultCursor
	}
	if ui.curCursor == c {
		return
	}
	ui.curCursor = c
	ui.Win.SetCursor(c)
}

// Safe to call from any goroutine. The func is dropped if the ui loop has ended.
func (ui *BasicUI) RunOnUIThread(f func()) {
	if !ui.eventsQ.Send(&UIRunFuncEvent{f}) {
		ui.Log.Debug().Msg("ui closed, func not run")
	}
}

type UIRunFuncEvent struct {
	Func func()
}
