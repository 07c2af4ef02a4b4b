package widget

import (
	"image"

	"github.com/jmigpin/rangeslider/util/imageutil"
)

// Pads a single child and paints the padding (and any space the child leaves unpainted) with the "bg" color.
type Pad struct {
	ENode
	Top, Right, Bottom, Left int
	ctx                      ImageContext
}

func NewPad(ctx ImageContext, child Node) *Pad {
	p := &Pad{ctx: ctx}
	p.Append(child)
	return p
}

func (p *Pad) Set(t, r, b, l int) {
	p.Top = t
	p.Right = r
	p.Bottom = b
	p.Left = l
	p.MarkNeedsLayoutAndPaint()
}
func (p *Pad) SetAll(v int) {
	p.Set(v, v, v, v)
}

func (p *Pad) Measure(hint image.Point) image.Point {
	h := hint
	h.X -= p.Right + p.Left
	h.Y -= p.Top + p.Bottom
	if h.X < 0 {
		h.X = 0
	}
	if h.Y < 0 {
		h.Y = 0
	}
	m := p.ENode.Measure(h)
	m.X += p.Right + p.Left
	m.Y += p.Top + p.Bottom
	return m
}

func (p *Pad) Layout() {
	u := p.Bounds
	u.Min = u.Min.Add(image.Point{p.Left, p.Top})
	u.Max = u.Max.Sub(image.Point{p.Right, p.Bottom})
	u = u.Intersect(p.Bounds)
	p.IterateWrappers2(func(c Node) {
		c.Embed().Bounds = u
	})
}

func (p *Pad) Paint() {
	c := p.TreeThemePaletteColor("bg")
	imageutil.FillRectangle(p.ctx.Image(), p.Bounds, c)
}
