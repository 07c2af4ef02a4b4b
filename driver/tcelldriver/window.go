package tcelldriver

import (
	"image"
	"image/draw"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/jmigpin/rangeslider/util/uiutil/event"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Terminal window. Each cell shows two vertically stacked pixels with an upper half block: the top pixel is the foreground and the bottom pixel the background. The window image is twice as tall as the terminal.
type Window struct {
	screen tcell.Screen
	log    zerolog.Logger

	imgMu sync.Mutex
	img   *image.RGBA

	buttons   event.MouseButtons // last known pressed buttons
	events    chan interface{}
	closeOnce sync.Once
}

func NewWindow(log zerolog.Logger) (*Window, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "tcell screen")
	}
	return NewWindowScreen(s, log)
}

// Allows using a simulation screen.
func NewWindowScreen(s tcell.Screen, log zerolog.Logger) (*Window, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "tcell init")
	}
	s.EnableMouse()
	s.EnableFocus()
	s.HideCursor()

	w, h := s.Size()
	win := &Window{
		screen: s,
		log:    log.With().Str("driver", "term").Logger(),
		img:    image.NewRGBA(image.Rect(0, 0, w, h*2)),
		events: make(chan interface{}, 8),
	}
	go win.eventLoop()
	return win, nil
}

func (win *Window) Close() error {
	win.closeOnce.Do(func() {
		win.screen.Fini()
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
		ev := win.screen.PollEvent()
		if ev == nil { // screen finalized
			win.events <- &event.WindowClose{}
			return
		}
		for _, ev2 := range win.translate(ev) {
			win.events <- ev2
		}
	}
}

func (win *Window) translate(ev tcell.Event) []interface{} {
	switch t := ev.(type) {
	case *tcell.EventResize:
		w, h := t.Size()
		r := image.Rect(0, 0, w, h*2)
		return []interface{}{&event.WindowResize{Rect: r}, &event.WindowExpose{Rect: r}}
	case *tcell.EventMouse:
		var u []interface{}
		u, win.buttons = translateMouse(win.buttons, t)
		return u
	case *tcell.EventFocus:
		if !t.Focused {
			return []interface{}{&event.WindowInput{Event: &event.MouseDragCancel{}}}
		}
	case *tcell.EventKey:
		switch {
		case t.Key() == tcell.KeyCtrlC, t.Key() == tcell.KeyRune && t.Rune() == 'q':
			return []interface{}{&event.WindowClose{}}
		case t.Key() == tcell.KeyEscape:
			return []interface{}{&event.WindowInput{Event: &event.MouseDragCancel{}}}
		}
	default:
		win.log.Debug().Msgf("unhandled event: %T", ev)
	}
	return nil
}

//----------

var buttonPairs = []struct {
	a tcell.ButtonMask
	b event.MouseButton
}{
	{tcell.Button1, event.ButtonLeft},
	{tcell.Button3, event.ButtonMiddle},
	{tcell.Button2, event.ButtonRight},
}

var wheelPairs = []struct {
	a tcell.ButtonMask
	b event.MouseButton
}{
	{tcell.WheelUp, event.ButtonWheelUp},
	{tcell.WheelDown, event.ButtonWheelDown},
	{tcell.WheelLeft, event.ButtonWheelLeft},
	{tcell.WheelRight, event.ButtonWheelRight},
}

// Terminals only report the buttons state: presses and releases are found by comparing with the previous state.
func translateMouse(prev event.MouseButtons, ev *tcell.EventMouse) ([]interface{}, event.MouseButtons) {
	x, y := ev.Position()
	p := image.Point{x, y * 2}
	mods := translateModifiers(ev.Modifiers())

	var cur event.MouseButtons
	for _, bp := range buttonPairs {
		if ev.Buttons()&bp.a != 0 {
			cur |= event.MouseButtons(bp.b)
		}
	}

	var u []interface{}
	wrap := func(ev2 interface{}) {
		u = append(u, &event.WindowInput{Point: p, Event: ev2})
	}
	for _, bp := range buttonPairs {
		was, is := prev.Has(bp.b), cur.Has(bp.b)
		switch {
		case !was && is:
			wrap(&event.MouseDown{Point: p, Button: bp.b, Buttons: cur, Mods: mods})
		case was && !is:
			wrap(&event.MouseUp{Point: p, Button: bp.b, Buttons: cur, Mods: mods})
		}
	}
	for _, wp := range wheelPairs {
		if ev.Buttons()&wp.a != 0 {
			wrap(&event.MouseDown{Point: p, Button: wp.b, Buttons: cur, Mods: mods})
			wrap(&event.MouseUp{Point: p, Button: wp.b, Buttons: cur, Mods: mods})
		}
	}
	if len(u) == 0 {
		wrap(&event.MouseMove{Point: p, Buttons: cur, Mods: mods})
	}
	return u, cur
}

func translateModifiers(m tcell.ModMask) event.KeyModifiers {
	var w event.KeyModifiers
	if m&tcell.ModShift != 0 {
		w |= event.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		w |= event.ModCtrl
	}
	if m&tcell.ModAlt != 0 {
		w |= event.Mod1
	}
	return w
}

//----------

func (win *Window) SetWindowName(s string) {
	win.screen.SetTitle(s)
}

func (win *Window) Image() draw.Image {
	win.imgMu.Lock()
	defer win.imgMu.Unlock()
	return win.img
}

func (win *Window) ResizeImage(r image.Rectangle) error {
	win.imgMu.Lock()
	defer win.imgMu.Unlock()
	if !r.Eq(win.img.Bounds()) {
		win.img = image.NewRGBA(r)
	}
	return nil
}

func (win *Window) PutImage(r image.Rectangle) error {
	img := win.Image().(*image.RGBA)
	r = r.Intersect(img.Bounds())
	if r.Empty() {
		return nil
	}
	// whole cells
	y0, y1 := r.Min.Y/2, (r.Max.Y+1)/2
	for y := y0; y < y1; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			top := img.RGBAAt(x, y*2)
			bot := img.RGBAAt(x, y*2+1)
			st := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(top.R), int32(top.G), int32(top.B))).
				Background(tcell.NewRGBColor(int32(bot.R), int32(bot.G), int32(bot.B)))
			win.screen.SetContent(x, y, '▀', nil, st)
		}
	}
	win.screen.Show()
	return nil
}

// Terminals have no pointer shape.
func (win *Window) SetCursor(c event.Cursor) {
	win.log.Trace().Stringer("cursor", c).Msg("set cursor")
}
