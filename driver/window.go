package driver

import (
	"image"
	"image/draw"

	"github.com/jmigpin/rangeslider/driver/tcelldriver"
	"github.com/jmigpin/rangeslider/driver/xdriver"
	"github.com/jmigpin/rangeslider/util/uiutil/event"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type Window interface {
	// Returns events from uiutil/event, or an error. Returns false after the window is closed.
	NextEvent() (interface{}, bool)

	Close() error
	SetWindowName(string)

	Image() draw.Image
	PutImage(image.Rectangle) error
	ResizeImage(image.Rectangle) error

	SetCursor(event.Cursor)
}

//----------

type Kind string

const (
	X11      Kind = "x11"
	Terminal Kind = "term"
)

func NewWindow(kind Kind, log zerolog.Logger) (Window, error) {
	switch kind {
	case X11, "":
		return xdriver.NewWindow(log)
	case Terminal:
		return tcelldriver.NewWindow(log)
	}
	return nil, errors.Errorf("unknown driver: %q", kind)
}
