package fontutil

import (
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"
)

func DefaultFont() *Font {
	f, err := FontsMan.Font(goregular.TTF)
	if err != nil {
		panic(err)
	}
	return f
}

func DefaultFontFace() *FontFace {
	return DefaultFont().FontFace2(12)
}

//----------

var FontsMan = NewFontsManager()

//----------

// Not safe for concurrent use: fonts and faces are expected to be used in the ui goroutine.
type FontsManager struct {
	fontsCache map[string]*Font
}

func NewFontsManager() *FontsManager {
	fm := &FontsManager{}
	fm.ClearFontsCache()
	return fm
}

func (fm *FontsManager) ClearFontsCache() {
	fm.fontsCache = map[string]*Font{}
}

func (fm *FontsManager) Font(ttf []byte) (*Font, error) {
	f, ok := fm.fontsCache[string(ttf)]
	if ok {
		return f, nil
	}
	f, err := NewFont(ttf)
	if err != nil {
		return nil, err
	}
	fm.fontsCache[string(ttf)] = f
	return f, nil
}

//----------

type Font struct {
	Font       *truetype.Font
	facesCache map[truetype.Options]*FontFace
}

func NewFont(ttf []byte) (*Font, error) {
	font, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	f := &Font{Font: font}
	f.ClearFacesCache()
	return f, nil
}

func (f *Font) ClearFacesCache() {
	for _, ff := range f.facesCache {
		_ = ff.Face.Close()
	}
	f.facesCache = map[truetype.Options]*FontFace{}
}

func (f *Font) FontFace(opt truetype.Options) *FontFace {
	if opt.Size == 0 {
		opt.Size = 12 // truetype default
	}
	if opt.DPI == 0 {
		opt.DPI = 72
	}
	ff, ok := f.facesCache[opt]
	if ok {
		return ff
	}
	ff = NewFontFace(f, opt)
	f.facesCache[opt] = ff
	return ff
}

func (f *Font) FontFace2(size float64) *FontFace {
	opt := truetype.Options{Size: size, Hinting: font.HintingFull}
	return f.FontFace(opt)
}

//----------

type FontFace struct {
	Font    *Font
	Face    font.Face
	Size    float64 // in points, readonly
	Metrics font.Metrics

	lineHeight fixed.Int26_6
	baselineY  fixed.Int26_6
}

func NewFontFace(font *Font, opt truetype.Options) *FontFace {
	face := truetype.NewFace(font.Font, &opt)
	ff := &FontFace{Font: font, Face: face, Size: opt.Size}
	ff.Metrics = face.Metrics()

	ff.lineHeight = ff.Metrics.Ascent + ff.Metrics.Descent
	if ff.Metrics.Height > ff.lineHeight {
		ff.lineHeight = ff.Metrics.Height
	}
	ff.baselineY = ff.Metrics.Ascent
	return ff
}

func (ff *FontFace) LineHeight() fixed.Int26_6 {
	return ff.lineHeight
}
func (ff *FontFace) LineHeightInt() int {
	return ff.lineHeight.Ceil()
}

func (ff *FontFace) BaseLine() fixed.Point26_6 {
	return fixed.Point26_6{X: 0, Y: ff.baselineY}
}
