package imageutil

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

func RgbaColor(c color.Color) color.RGBA {
	if u, ok := c.(color.RGBA); ok {
		return u
	}
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func RgbaFromInt(u int) color.RGBA {
	v := u & 0xffffff
	r := uint8((v << 0) >> 16)
	g := uint8((v << 8) >> 16)
	b := uint8((v << 16) >> 16)
	return color.RGBA{r, g, b, 255}
}

// Ex. usage: x cursors colors.
func ColorUint16s(c color.Color) (uint16, uint16, uint16, uint16) {
	r, g, b, a := c.RGBA()
	return uint16(r), uint16(g), uint16(b), uint16(a)
}

//----------

// Parses "#rrggbb" (or "#rgb").
func ParseHexColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}

func SprintHexColor(c color.Color) string {
	u := RgbaColor(c)
	return fmt.Sprintf("#%02x%02x%02x", u.R, u.G, u.B)
}

//----------

// Turn color lighter by v percent (0.0, 1.0).
func Tint(c color.Color, v float64) color.Color {
	return blend(c, color.White, v)
}

// Turn color darker by v percent (0.0, 1.0).
func Shade(c color.Color, v float64) color.Color {
	return blend(c, color.Black, v)
}

func TintOrShade(c color.Color, v float64) color.Color {
	if IsLighter(c) {
		return Shade(c, v)
	}
	return Tint(c, v)
}

func IsLighter(c color.Color) bool {
	c2 := RgbaColor(c)
	u := int(c2.R) + int(c2.G) + int(c2.B)
	return u > 256*3/2
}

func blend(c, to color.Color, v float64) color.Color {
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	a := RgbaColor(c).A
	c1, _ := colorful.MakeColor(opaque(c))
	c2, _ := colorful.MakeColor(opaque(to))
	r, g, b := c1.BlendLab(c2, v).Clamped().RGB255()
	return color.RGBA{r, g, b, a}
}

// colorful.MakeColor fails on zero alpha colors.
func opaque(c color.Color) color.Color {
	u := RgbaColor(c)
	u.A = 255
	return u
}
