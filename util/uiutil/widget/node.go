package widget

import (
	"container/list"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/jmigpin/rangeslider/util/fontutil"
	"github.com/jmigpin/rangeslider/util/imageutil"
	"github.com/jmigpin/rangeslider/util/uiutil/event"
)

type Node interface {
	fullNode() // ensure that EmbedNode can't be directly assigned to a Node

	Embed() *EmbedNode

	InsertBefore(n Node, mark *EmbedNode)
	Append(n ...Node)
	Remove(child Node)

	Measure(hint image.Point) image.Point

	LayoutMarked()
	LayoutTree()
	Layout() // set childs bounds, don't call childs layout
	ChildsLayoutTree()

	PaintMarked() image.Rectangle
	PaintTree() bool
	Paint()
	ChildsPaintTree()

	OnThemeChange()
	OnInputEvent(ev interface{}, p image.Point) event.Handled
}

//----------

// Doesn't allow embed to be assigned to a Node directly, which prevents a range of programming mistakes. This is the node other widgets should inherit from.
type ENode struct {
	EmbedNode
}

func (ENode) fullNode() {}

//----------

type EmbedNode struct {
	Bounds  image.Rectangle
	Cursor  event.Cursor
	Wrapper Node
	Parent  *EmbedNode

	marks  Marks
	childs list.List
	elem   *list.Element

	theme Theme
}

func (en *EmbedNode) Embed() *EmbedNode {
	return en
}

// Only the root node should need to set the wrapper explicitly.
func (en *EmbedNode) SetWrapperForRoot(n Node) {
	en.Wrapper = n
}

//----------

// If a node wants its InsertBefore implementation to be used, the wrapper must be set.
func (en *EmbedNode) Append(nodes ...Node) {
	for _, n := range nodes {
		if en.Wrapper != nil {
			en.Wrapper.InsertBefore(n, nil)
		} else {
			en.InsertBefore(n, nil)
		}
	}
}

func (en *EmbedNode) InsertBefore(child Node, next *EmbedNode) {
	childe := child.Embed()

	if childe == en {
		panic("inserting into itself")
	}
	if childe.Parent != nil {
		panic("element already has a parent")
	}

	var elem *list.Element
	if next == nil {
		elem = en.childs.PushBack(childe)
	} else {
		// ensure next element is a child of this node
		if next.Parent != en {
			panic("next is not a child of this node")
		}
		elem = en.childs.InsertBefore(childe, next.elem)
	}

	childe.elem = elem
	childe.Parent = en
	childe.Wrapper = child // auto set the wrapper

	en.MarkNeedsLayoutAndPaint()

	childe.themeChangeCallback()
}

func (en *EmbedNode) Remove(child Node) {
	childe := child.Embed()
	if childe.Parent != en {
		panic("not a child of this node")
	}
	en.childs.Remove(childe.elem)
	childe.elem = nil
	childe.Parent = nil

	en.MarkNeedsLayoutAndPaint()
}

//----------

func elemWrapper(e *list.Element) Node {
	if e == nil {
		return nil
	}
	return e.Value.(*EmbedNode).Wrapper
}

// Stops when f returns false.
func (en *EmbedNode) IterateWrappersReverse(f func(Node) bool) {
	for e := en.childs.Back(); e != nil; e = e.Prev() {
		if !f(elemWrapper(e)) {
			break
		}
	}
}
func (en *EmbedNode) IterateWrappers2(f func(Node)) {
	for e := en.childs.Front(); e != nil; e = e.Next() {
		f(elemWrapper(e))
	}
}

//----------

func (en *EmbedNode) HasAnyMarks(m Marks) bool {
	return en.marks.HasAny(m)
}

func (en *EmbedNode) AddMarks(m Marks) {
	en.markUp(m)
}

func (en *EmbedNode) RemoveMarks(m Marks) {
	// direcly non-removable marks
	u := MarkNeedsPaint | MarkNeedsLayout |
		MarkChildNeedsPaint | MarkChildNeedsLayout
	if m.HasAny(u) {
		panic(fmt.Sprintf("mark not directly removable: %v", u))
	}
	en.marks.Remove(m)
}

func (en *EmbedNode) markUp(m Marks) {
	old := en.marks
	en.marks |= m
	changed := en.marks ^ old

	if en.Parent != nil && changed != 0 {
		var u Marks
		if changed.HasAny(MarkNeedsPaint | MarkChildNeedsPaint) {
			u.Add(MarkChildNeedsPaint)
		}
		if changed.HasAny(MarkNeedsLayout | MarkChildNeedsLayout) {
			u.Add(MarkChildNeedsLayout)
		}
		if u != 0 {
			en.Parent.markUp(u)
		}
	}
}

func (en *EmbedNode) MarkNeedsLayout() {
	en.AddMarks(MarkNeedsLayout)
}
func (en *EmbedNode) MarkNeedsPaint() {
	en.AddMarks(MarkNeedsPaint)
}
func (en *EmbedNode) MarkNeedsLayoutAndPaint() {
	en.AddMarks(MarkNeedsLayout | MarkNeedsPaint)
}

func (en *EmbedNode) TreeNeedsPaint() bool {
	return en.HasAnyMarks(MarkNeedsPaint | MarkChildNeedsPaint)
}
func (en *EmbedNode) TreeNeedsLayout() bool {
	return en.HasAnyMarks(MarkNeedsLayout | MarkChildNeedsLayout)
}

//----------

func (en *EmbedNode) Measure(hint image.Point) image.Point {
	var max image.Point
	en.IterateWrappers2(func(c Node) {
		m := c.Measure(hint)
		if m.X > max.X {
			max.X = m.X
		}
		if m.Y > max.Y {
			max.Y = m.Y
		}
	})
	return max
}

//----------

func (en *EmbedNode) LayoutMarked() {
	if en.HasAnyMarks(MarkNeedsLayout) {
		en.Wrapper.LayoutTree()
	} else if en.HasAnyMarks(MarkChildNeedsLayout) {
		en.marks.Remove(MarkChildNeedsLayout)
		en.IterateWrappers2(func(c Node) {
			c.LayoutMarked()
		})
	}
}

func (en *EmbedNode) LayoutTree() {
	en.marks.Remove(MarkNeedsLayout | MarkChildNeedsLayout)

	// keep/set default bounds before layouting childs
	cbm := map[*EmbedNode]image.Rectangle{}
	en.IterateWrappers2(func(c Node) {
		ce := c.Embed()
		cbm[ce] = ce.Bounds
		ce.Bounds = en.Bounds // parent bounds
	})

	en.Wrapper.Layout()
	en.Wrapper.ChildsLayoutTree()

	// auto detect if it needs paint if bounds change
	en.IterateWrappers2(func(c Node) {
		ce := c.Embed()
		if cb, ok := cbm[ce]; ok && ce.Bounds != cb {
			ce.MarkNeedsPaint()
		}
	})
}

func (en *EmbedNode) Layout() {
}

func (en *EmbedNode) ChildsLayoutTree() {
	en.IterateWrappers2(func(c Node) {
		c.LayoutTree()
	})
}

//----------

func (en *EmbedNode) PaintMarked() image.Rectangle {
	u := image.Rectangle{}
	if en.HasAnyMarks(MarkNeedsPaint) {
		if en.Wrapper.PaintTree() {
			u = u.Union(en.Bounds)
		}
	} else if en.HasAnyMarks(MarkChildNeedsPaint) {
		en.marks.Remove(MarkChildNeedsPaint)
		en.IterateWrappers2(func(c Node) {
			r := c.PaintMarked()
			u = u.Union(r)
		})
	}
	return u
}

func (en *EmbedNode) PaintTree() bool {
	en.marks.Remove(MarkNeedsPaint | MarkChildNeedsPaint)
	if en.Bounds.Empty() {
		return false
	}
	en.Wrapper.Paint()
	en.Wrapper.ChildsPaintTree()
	return true
}

func (en *EmbedNode) Paint() {
}

func (en *EmbedNode) ChildsPaintTree() {
	en.IterateWrappers2(func(c Node) {
		c.PaintTree()
	})
}

//----------

func (en *EmbedNode) OnInputEvent(ev interface{}, p image.Point) event.Handled {
	return event.NotHandled
}

//----------

func (en *EmbedNode) Theme() *Theme {
	return &en.theme
}

func (en *EmbedNode) SetThemePalette(p Palette) {
	defer en.themeChangeCallback()
	defer en.MarkNeedsPaint()

	en.theme.Palette = p.Copy()
}

func (en *EmbedNode) SetThemePaletteColor(name string, c color.Color) {
	defer en.themeChangeCallback()
	defer en.MarkNeedsPaint()

	en.theme.SetPaletteColor(name, c)
}

func (en *EmbedNode) SetThemePaletteNamePrefix(prefix string) {
	defer en.themeChangeCallback()
	defer en.MarkNeedsPaint()

	en.theme.PaletteNamePrefix = prefix
}

//----------

func (en *EmbedNode) TreeThemePaletteColor(name string) color.Color {
	if c, ok := en.treeThemePaletteColor2(name); ok {
		return c
	}
	// last resort: a color that is not white/black to help debug
	return imageutil.RgbaFromInt(0xff0000)
}

func (en *EmbedNode) treeThemePaletteColor2(name string) (color.Color, bool) {
	if en.theme.PaletteNamePrefix != "" && !strings.HasPrefix(name, en.theme.PaletteNamePrefix) {
		s := en.theme.PaletteNamePrefix + name
		if c, ok := en.treeThemePaletteColor2(s); ok {
			return c, true
		}
	}
	if c, ok := en.theme.Palette[name]; ok {
		return c, true
	}
	if en.Parent != nil {
		return en.Parent.treeThemePaletteColor2(name)
	}
	// at root tree (parent is nil) and not found, try default palette
	if c, ok := DefaultPalette[name]; ok {
		return c, true
	}
	return nil, false
}

//----------

func (en *EmbedNode) SetThemeFontFace(ff *fontutil.FontFace) {
	defer en.themeChangeCallback()
	defer en.MarkNeedsLayoutAndPaint()

	en.theme.FontFace = ff
}

func (en *EmbedNode) TreeThemeFontFace() *fontutil.FontFace {
	for n := en; n != nil; n = n.Parent {
		if n.theme.FontFace != nil {
			return n.theme.FontFace
		}
	}
	return fontutil.DefaultFontFace()
}

//----------

func (en *EmbedNode) themeChangeCallback() {
	if en.Wrapper != nil {
		en.Wrapper.OnThemeChange()
	}
	en.IterateWrappers2(func(c Node) {
		c.Embed().themeChangeCallback()
	})
}

func (en *EmbedNode) OnThemeChange() {
}

//----------

type Marks uint16

func (m *Marks) Add(u Marks)        { *m |= u }
func (m *Marks) Remove(u Marks)     { *m &^= u }
func (m Marks) HasAny(u Marks) bool { return m&u > 0 }

const (
	MarkNeedsPaint Marks = 1 << iota
	MarkNeedsLayout

	MarkChildNeedsPaint
	MarkChildNeedsLayout

	MarkPointerInside // mouseEnter/mouseLeave events
	MarkNotDraggable  // won't emit mouseDrag events
)
