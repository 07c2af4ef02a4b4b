package wmprotocols

import (
	"encoding/binary"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/rangeslider/driver/xdriver/xutil"
	"github.com/jmigpin/rangeslider/util/uiutil/event"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// https://tronche.com/gui/x/icccm/sec-4.html#s-4.2.8.1

type WMP struct {
	conn *xgb.Conn
	win  xproto.Window
	log  zerolog.Logger
}

func NewWMP(conn *xgb.Conn, win xproto.Window, log zerolog.Logger) (*WMP, error) {
	if err := xutil.LoadAtoms(conn, &atoms, false); err != nil {
		return nil, errors.Wrap(err, "wmp atoms")
	}
	wmp := &WMP{conn: conn, win: win, log: log}
	if err := wmp.setupWindowProperty(); err != nil {
		return nil, errors.Wrap(err, "wmp property")
	}
	return wmp, nil
}

func (wmp *WMP) setupWindowProperty() error {
	data := make([]byte, 4)
	binary.LittleEndian.PutUint32(data, uint32(atoms.WM_DELETE_WINDOW))
	cookie := xproto.ChangePropertyChecked(
		wmp.conn,
		xproto.PropModeAppend,
		wmp.win,
		atoms.WM_PROTOCOLS, // property
		xproto.AtomAtom,    // type
		32,                 // format
		uint32(len(data))/4,
		data)
	return cookie.Check()
}

// Sends a window close event if the window manager asked to delete the window.
func (wmp *WMP) OnClientMessage(ev *xproto.ClientMessageEvent, events chan<- interface{}) {
	if IsDeleteWindow(ev, atoms.WM_PROTOCOLS, atoms.WM_DELETE_WINDOW) {
		events <- &event.WindowClose{}
		return
	}
	if ev.Type == atoms.WM_PROTOCOLS && ev.Format != 32 {
		wmp.log.Warn().Uint8("format", ev.Format).Msg("wm protocols: unexpected format")
	}
}

func IsDeleteWindow(ev *xproto.ClientMessageEvent, protocols, deleteWindow xproto.Atom) bool {
	if ev.Type != protocols || ev.Format != 32 {
		return false
	}
	for _, e := range ev.Data.Data32 {
		if xproto.Atom(e) == deleteWindow {
			return true
		}
	}
	return false
}

var atoms struct {
	WM_PROTOCOLS     xproto.Atom
	WM_DELETE_WINDOW xproto.Atom
}
