package xcursors

import (
	"image/color"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/BurntSushi/xgbutil/xcursor"
	"github.com/jmigpin/rangeslider/util/imageutil"
	"github.com/jmigpin/rangeslider/util/uiutil/event"
	"github.com/pkg/errors"
)

// https://tronche.com/gui/x/xlib/appendix/b/
// https://godoc.org/github.com/BurntSushi/xgbutil/xcursor

type Cursors struct {
	conn *xgb.Conn
	win  xproto.Window
	m    map[Cursor]xproto.Cursor
}

func NewCursors(conn *xgb.Conn, win xproto.Window) *Cursors {
	return &Cursors{
		conn: conn,
		win:  win,
		m:    make(map[Cursor]xproto.Cursor),
	}
}

func (cs *Cursors) SetEventCursor(c event.Cursor) error {
	return cs.SetCursor(FromEventCursor(c))
}

func (cs *Cursors) SetCursor(c Cursor) error {
	xc, ok := cs.m[c]
	if !ok {
		xc2, err := cs.loadCursor(c, color.Black, color.White)
		if err != nil {
			return errors.Wrapf(err, "load cursor %v", c)
		}
		cs.m[c] = xc2
		xc = xc2
	}
	mask := uint32(xproto.CwCursor)
	values := []uint32{uint32(xc)}
	return xproto.ChangeWindowAttributesChecked(cs.conn, cs.win, mask, values).Check()
}

func (cs *Cursors) loadCursor(c Cursor, fg, bg color.Color) (xproto.Cursor, error) {
	if c == XCNone {
		return 0, nil // parent window cursor
	}
	fontId, err := xproto.NewFontId(cs.conn)
	if err != nil {
		return 0, err
	}
	cursor, err := xproto.NewCursorId(cs.conn)
	if err != nil {
		return 0, err
	}
	name := "cursor"
	err = xproto.OpenFontChecked(cs.conn, fontId, uint16(len(name)), name).Check()
	if err != nil {
		return 0, err
	}

	ur, ug, ub, _ := imageutil.ColorUint16s(fg)
	vr, vg, vb, _ := imageutil.ColorUint16s(bg)

	err = xproto.CreateGlyphCursorChecked(
		cs.conn, cursor,
		fontId, fontId,
		uint16(c), uint16(c)+1, // glyph and its mask
		ur, ug, ub,
		vr, vg, vb).Check()
	if err != nil {
		return 0, err
	}

	if err := xproto.CloseFontChecked(cs.conn, fontId).Check(); err != nil {
		return 0, err
	}
	return cursor, nil
}

//----------

type Cursor uint16

// Resets to the parent window cursor. Value after the last x cursor glyph (152).
const XCNone Cursor = 200

func FromEventCursor(c event.Cursor) Cursor {
	switch c {
	case event.NSResizeCursor:
		return xcursor.SBVDoubleArrow
	case event.WEResizeCursor:
		return xcursor.SBHDoubleArrow
	case event.MoveCursor:
		return xcursor.Fleur
	case event.PointerCursor:
		return xcursor.Hand2
	case event.NResizeCursor:
		return xcursor.TopSide
	case event.SResizeCursor:
		return xcursor.BottomSide
	case event.EResizeCursor:
		return xcursor.RightSide
	case event.WResizeCursor:
		return xcursor.LeftSide
	}
	return XCNone // none, default
}
