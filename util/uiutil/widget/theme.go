package widget

import (
	"image/color"

	"github.com/jmigpin/rangeslider/util/fontutil"
	"github.com/jmigpin/rangeslider/util/imageutil"
)

type Theme struct {
	FontFace          *fontutil.FontFace
	Palette           Palette
	PaletteNamePrefix string
}

func (t *Theme) SetPaletteColor(name string, c color.Color) {
	if t.Palette == nil {
		t.Palette = MakePalette()
	}
	if c == nil {
		delete(t.Palette, name)
		return
	}
	t.Palette[name] = c
}

//----------

type Palette map[string]color.Color

func MakePalette() Palette {
	return make(Palette)
}

func (pal Palette) Copy() Palette {
	pal2 := MakePalette()
	for k, v := range pal {
		pal2[k] = v
	}
	return pal2
}

// Values from other palette override the existing ones.
func (pal Palette) Merge(p2 Palette) {
	for k, v := range p2 {
		pal[k] = v
	}
}

//----------

var DefaultPalette = Palette{
	"text_fg": cint(0x000000),
	"text_bg": cint(0xffffff),
	"bg":      cint(0xf0f0f0),

	"rangeslider_bg":           cint(0xf0f0f0),
	"rangeslider_track":        cint(0xb8b8b8),
	"rangeslider_range":        cint(0x3b6fb6),
	"rangeslider_thumb":        cint(0x707070),
	"rangeslider_thumb_border": cint(0x404040),
	"rangeslider_thumb_hover":  imageutil.Tint(cint(0x707070), 0.3),
	"rangeslider_thumb_select": cint(0x3b6fb6),
	"rangeslider_label_fg":     cint(0x202020),
}

func cint(c int) color.RGBA {
	return imageutil.RgbaFromInt(c)
}
