package fontutil

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Size of a single line of text.
func MeasureText(ff *FontFace, str string) image.Point {
	w := font.MeasureString(ff.Face, str)
	return image.Point{w.Ceil(), ff.LineHeightInt()}
}

// Draws a single line of text with the top-left at bounds.Min, clipped to bounds.
func DrawText(img draw.Image, ff *FontFace, str string, bounds image.Rectangle, fg color.Color) {
	if bounds.Empty() {
		return
	}
	dst, ok := subImage(img, bounds)
	if !ok {
		return
	}
	min := fixed.P(bounds.Min.X, bounds.Min.Y)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: ff.Face,
		Dot:  min.Add(ff.BaseLine()),
	}
	d.DrawString(str)
}

func subImage(img draw.Image, r image.Rectangle) (draw.Image, bool) {
	type subImager interface {
		SubImage(image.Rectangle) image.Image
	}
	type subImager2 interface {
		SubImage(image.Rectangle) draw.Image
	}
	switch t := img.(type) {
	case subImager2:
		return t.SubImage(r), true
	case subImager:
		u, ok := t.SubImage(r).(draw.Image)
		return u, ok
	}
	return img, true
}
