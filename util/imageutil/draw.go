package imageutil

import (
	"image"
	"image/color"
	"image/draw"
)

func DrawUniform(dst draw.Image, r image.Rectangle, c color.Color, op draw.Op) {
	if c == nil {
		return
	}
	// correct color for bgra, and take the fast lane on the embedded rgba
	if bgra, ok := dst.(*BGRA); ok {
		c = BgraColor(c)
		dst = &bgra.RGBA
	}
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, op)
}

func FillRectangle(img draw.Image, r image.Rectangle, c color.Color) {
	DrawUniform(img, r, c, draw.Src)
}

// Draws only the outline of the rectangle, with the given thickness.
func StrokeRectangle(img draw.Image, r image.Rectangle, thickness int, c color.Color) {
	if r.Empty() || thickness <= 0 {
		return
	}
	t := thickness
	top := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t)
	bottom := image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y)
	left := image.Rect(r.Min.X, r.Min.Y, r.Min.X+t, r.Max.Y)
	right := image.Rect(r.Max.X-t, r.Min.Y, r.Max.X, r.Max.Y)
	for _, u := range []image.Rectangle{top, bottom, left, right} {
		FillRectangle(img, u.Intersect(r), c)
	}
}
