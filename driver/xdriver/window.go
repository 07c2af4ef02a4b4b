package xdriver

import (
	"image"
	"image/draw"
	"os"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/rangeslider/driver/xdriver/wimage"
	"github.com/jmigpin/rangeslider/driver/xdriver/wmprotocols"
	"github.com/jmigpin/rangeslider/driver/xdriver/xcursors"
	"github.com/jmigpin/rangeslider/driver/xdriver/xinput"
	"github.com/jmigpin/rangeslider/driver/xdriver/xutil"
	"github.com/jmigpin/rangeslider/util/uiutil/event"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Window struct {
	Conn   *xgb.Conn
	Window xproto.Window
	Screen *xproto.ScreenInfo
	GCtx   xproto.Gcontext

	Cursors *xcursors.Cursors
	Wmp     *wmprotocols.WMP
	WImg    *wimage.WImage

	log       zerolog.Logger
	events    chan interface{}
	closeOnce sync.Once
}

func NewWindow(log zerolog.Logger) (*Window, error) {
	conn, err := xgb.NewConnDisplay(os.Getenv("DISPLAY"))
	if err != nil {
		return nil, errors.Wrap(err, "x conn")
	}

	win := &Window{
		Conn:   conn,
		log:    log.With().Str("driver", "x11").Logger(),
		events: make(chan interface{}, 8),
	}

	if err := win.initialize(); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "win init")
	}

	go win.eventLoop()

	return win, nil
}

func (win *Window) initialize() error {
	si := xproto.Setup(win.Conn)
	win.Screen = si.DefaultScreen(win.Conn)

	window, err := xproto.NewWindowId(win.Conn)
	if err != nil {
		return err
	}
	win.Window = window

	var evMask uint32 = 0 |
		xproto.EventMaskStructureNotify |
		xproto.EventMaskExposure |
		xproto.EventMaskPointerMotion |
		xproto.EventMaskButtonPress |
		xproto.EventMaskButtonRelease |
		xproto.EventMaskLeaveWindow |
		0
	// mask/values order is defined by the protocol
	mask := uint32(xproto.CwEventMask)
	values := []uint32{evMask}

	_ = xproto.CreateWindow(
		win.Conn,
		win.Screen.RootDepth,
		win.Window,
		win.Screen.Root,
		0, 0, 320, 80,
		0, // border width
		xproto.WindowClassInputOutput,
		win.Screen.RootVisual,
		mask, values)

	_ = xproto.MapWindow(win.Conn, window)

	if err := xutil.LoadAtoms(win.Conn, &atoms, false); err != nil {
		return errors.Wrap(err, "atoms")
	}

	gCtx, err := xproto.NewGcontextId(win.Conn)
	if err != nil {
		return err
	}
	win.GCtx = gCtx
	c2 := xproto.CreateGCChecked(win.Conn, win.GCtx, xproto.Drawable(win.Window), 0, nil)
	if err := c2.Check(); err != nil {
		return errors.Wrap(err, "graphical context")
	}

	win.Cursors = xcursors.NewCursors(win.Conn, win.Window)

	opt := &wimage.Options{Conn: win.Conn, Window: win.Window, ScreenInfo: win.Screen, GCtx: win.GCtx}
	win.WImg = wimage.NewWImage(opt)

	wmp, err := wmprotocols.NewWMP(win.Conn, win.Window, win.log)
	if err != nil {
		return err
	}
	win.Wmp = wmp

	return nil
}

func (win *Window) Close() error {
	win.closeOnce.Do(func() {
		win.Conn.Close()
	})
	return nil
}

//----------

func (win *Window) NextEvent() (interface{}, bool) {
	ev, ok := <-win.events
	return ev, ok
}

func (win *Window) eventLoop() {
	defer close(win.events)
	for {
		if !win.handleEvent() {
			return
		}
	}
}

func (win *Window) handleEvent() bool {
	ev, xerr := win.Conn.WaitForEvent()
	if ev == nil && xerr == nil {
		// connection closed
		win.events <- &event.WindowClose{}
		return false
	}
	if xerr != nil {
		win.events <- errors.Wrap(xerr, "x event")
	}
	if ev == nil {
		return true
	}
	switch t := ev.(type) {
	case xproto.ConfigureNotifyEvent: // window structure (position,size,...)
		r := image.Rect(0, 0, int(t.Width), int(t.Height)) // must use (0,0)
		win.events <- &event.WindowResize{Rect: r}
	case xproto.ExposeEvent: // region needs paint
		r := image.Rect(0, 0, int(t.Width), int(t.Height))
		win.events <- &event.WindowExpose{Rect: r}
	case xproto.MapNotifyEvent, xproto.ReparentNotifyEvent:
	case xproto.UnmapNotifyEvent:
		win.events <- &event.WindowInput{Event: &event.MouseDragCancel{}}

	case xproto.ButtonPressEvent:
		win.events <- xinput.ButtonPress(&t)
	case xproto.ButtonReleaseEvent:
		win.events <- xinput.ButtonRelease(&t)
	case xproto.MotionNotifyEvent:
		win.events <- xinput.MotionNotify(&t)
	case xproto.LeaveNotifyEvent:
		win.events <- xinput.LeaveNotify(&t)

	case xproto.ClientMessageEvent:
		win.Wmp.OnClientMessage(&t, win.events)

	default:
		win.log.Debug().Msgf("unhandled event: %#v", ev)
	}
	return true
}

//----------

func (win *Window) SetWindowName(str string) {
	b := []byte(str)
	_ = xproto.ChangeProperty(
		win.Conn,
		xproto.PropModeReplace,
		win.Window,       // requestor window
		atoms.NetWMName,  // property
		atoms.Utf8String, // target
		8,                // format
		uint32(len(b)),
		b)
}

func (win *Window) Image() draw.Image {
	return win.WImg.Image()
}
func (win *Window) PutImage(rect image.Rectangle) error {
	return win.WImg.PutImage(rect)
}
func (win *Window) ResizeImage(r image.Rectangle) error {
	if r.Eq(win.Image().Bounds()) {
		return nil
	}
	return win.WImg.Resize(r)
}

func (win *Window) SetCursor(c event.Cursor) {
	if err := win.Cursors.SetEventCursor(c); err != nil {
		win.log.Warn().Err(err).Stringer("cursor", c).Msg("set cursor")
	}
}

//----------

var atoms struct {
	NetWMName  xproto.Atom `loadAtoms:"_NET_WM_NAME"`
	Utf8String xproto.Atom `loadAtoms:"UTF8_STRING"`
}
