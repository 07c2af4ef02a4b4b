package fontutil

import (
	"image"
	"image/color"
	"testing"
)

func TestMeasureText(t *testing.T) {
	ff := DefaultFontFace()
	m1 := MeasureText(ff, "1")
	m2 := MeasureText(ff, "100")
	if m1.Y <= 0 || m1.Y != m2.Y {
		t.Fatalf("bad line height: %v %v", m1, m2)
	}
	if m2.X <= m1.X {
		t.Fatalf("expecting wider text: %v %v", m1, m2)
	}
}

func TestDrawTextClipped(t *testing.T) {
	ff := DefaultFontFace()
	img := image.NewRGBA(image.Rect(0, 0, 100, 40))
	r := image.Rect(10, 10, 60, 30)
	DrawText(img, ff, "20 - 50", r, color.Black)

	drawn := false
	for y := 0; y < 40; y++ {
		for x := 0; x < 100; x++ {
			if img.RGBAAt(x, y).A == 0 {
				continue
			}
			if !image.Pt(x, y).In(r) {
				t.Fatalf("pixel drawn outside bounds at %v,%v", x, y)
			}
			drawn = true
		}
	}
	if !drawn {
		t.Fatal("nothing drawn")
	}
}

func TestFontFaceCache(t *testing.T) {
	f := DefaultFont()
	if f.FontFace2(10) != f.FontFace2(10) {
		t.Fatal("expecting cached face")
	}
}
