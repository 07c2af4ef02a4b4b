package wimage

import (
	"image"
	"image/draw"
	"sync"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xproto"
	"github.com/jmigpin/rangeslider/util/imageutil"
	"github.com/pkg/errors"
)

type Options struct {
	Conn       *xgb.Conn
	Window     xproto.Window
	ScreenInfo *xproto.ScreenInfo
	GCtx       xproto.Gcontext
}

// Window image kept in client memory and copied to the window with put image requests.
type WImage struct {
	opt *Options
	img *imageutil.BGRA
}

func NewWImage(opt *Options) *WImage {
	r := image.Rect(0, 0, 1, 1)
	return &WImage{opt: opt, img: imageutil.NewBGRA(&r)}
}

func (wi *WImage) Image() draw.Image {
	return wi.img
}

func (wi *WImage) Resize(r image.Rectangle) error {
	if r.Dx() > 0xffff || r.Dy() > 0xffff {
		return errors.Errorf("wimage: size too big: %v", r.Size())
	}
	wi.img = imageutil.NewBGRA(&r)
	return nil
}

func (wi *WImage) PutImage(r image.Rectangle) error {
	r = r.Intersect(wi.img.Bounds())
	if r.Empty() {
		return nil
	}
	chunks, err := putImageChunks(r)
	if err != nil {
		return err
	}
	var wg sync.WaitGroup
	for _, c := range chunks {
		wg.Add(1)
		go func(c image.Rectangle) {
			defer wg.Done()
			wi.send(c)
		}(c)
	}
	wg.Wait()
	return nil
}

func (wi *WImage) send(r image.Rectangle) {
	w := r.Dx()
	data := make([]byte, w*r.Dy()*4)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := (y - r.Min.Y) * w * 4
		j := wi.img.PixOffset(r.Min.X, y)
		copy(data[i:i+w*4], wi.img.Pix[j:])
	}
	_ = xproto.PutImage( // unchecked: errors arrive in the event loop
		wi.opt.Conn,
		xproto.ImageFormatZPixmap,
		xproto.Drawable(wi.opt.Window),
		wi.opt.GCtx,
		uint16(w), uint16(r.Dy()),
		int16(r.Min.X), int16(r.Min.Y),
		0, // left pad, must be 0 for ZPixmap format
		wi.opt.ScreenInfo.RootDepth,
		data)
}

//----------

// X max request length is (2^16)*4 bytes: the rectangle is split in horizontal bands that fit.
func putImageChunks(r image.Rectangle) ([]image.Rectangle, error) {
	putImgReqSize := 28
	maxReqSize := (1 << 16) * 4
	maxSize := (maxReqSize - putImgReqSize) / 4 // pixels
	if r.Dx() > maxSize {
		return nil, errors.Errorf("wimage: dx>max, %v>%v", r.Dx(), maxSize)
	}
	h := maxSize / r.Dx()
	var u []image.Rectangle
	for y := r.Min.Y; y < r.Max.Y; y += h {
		c := image.Rect(r.Min.X, y, r.Max.X, y+h)
		u = append(u, c.Intersect(r))
	}
	return u, nil
}
