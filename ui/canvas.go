// Package ui implements an immediate-mode layout and widget engine over a
// pix.Buffer. Widgets carve rectangular regions off a canvas with a cut
// protocol, draw text and fills into them, and resolve mouse interaction
// against the region that is current at the moment of the check.
package ui

import (
	"github.com/OpticalFlyer/clef/font"
	"github.com/OpticalFlyer/clef/pix"
)

// CutDir selects which axis sequential Cut calls consume.
type CutDir int

const (
	Horizontal CutDir = iota
	Vertical
)

// Rect is an axis-aligned region in destination pixels. Width or height may
// go negative through cut arithmetic; such rects are treated as empty by
// fills and hit tests.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the point lies inside the rect. Always false for
// empty rects.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Visuals is the drawing style in effect for the current region: the active
// font, integer text scale, cut direction and draw color. The canvas saves
// and restores it together with the region around every nested callback, so
// a callback may change any of it freely.
type Visuals struct {
	Font  *font.Font
	Scale int
	Dir   CutDir
	Color pix.Color
}

// Input is the host's once-per-frame snapshot of the pointer. CursorOK is
// false when there is no usable cursor position, e.g. the pointer left the
// window; all hover tests fail then.
type Input struct {
	LeftDown   bool
	MiddleDown bool
	RightDown  bool
	CursorX    int
	CursorY    int
	CursorOK   bool
}

// Canvas composes the frame's pixel buffer, the current region and style,
// and the input snapshot. It borrows the buffer exclusively for one frame's
// draw pass; the host uploads the buffer afterwards.
type Canvas struct {
	Pix     *pix.Buffer
	Rect    Rect
	Visuals Visuals
	Input   Input
}

// New returns a canvas covering the whole buffer with default visuals:
// vertical cuts, white text at scale 2.
func New(buf *pix.Buffer, fnt *font.Font) *Canvas {
	return &Canvas{
		Pix:  buf,
		Rect: Rect{Width: buf.Width, Height: buf.Height},
		Visuals: Visuals{
			Font:  fnt,
			Scale: 2,
			Dir:   Vertical,
			Color: pix.White,
		},
	}
}

// enter runs body against r, then restores the caller's region and visuals.
// Every region operation funnels through here so the save/restore pairing
// has exactly one implementation.
func (c *Canvas) enter(r Rect, body func(*Canvas)) {
	prevRect, prevVisuals := c.Rect, c.Visuals
	c.Rect = r
	body(c)
	c.Rect, c.Visuals = prevRect, prevVisuals
}

// Cut carves a width×height rect off the current region along the active
// direction and runs body against it. The remainder advances along the cut
// axis and shrinks on both axes, matching the long-standing cut arithmetic
// callers lay out against.
func (c *Canvas) Cut(width, height int, body func(*Canvas)) {
	carved := Rect{X: c.Rect.X, Y: c.Rect.Y, Width: width, Height: height}
	switch c.Visuals.Dir {
	case Horizontal:
		c.Rect.X += width
	case Vertical:
		c.Rect.Y += height
	}
	c.Rect.Width -= width
	c.Rect.Height -= height

	c.enter(carved, body)
}

// CutTop carves a full-width strip of the given height from the top of the
// current region, regardless of the active direction.
func (c *Canvas) CutTop(height int, body func(*Canvas)) {
	carved := Rect{X: c.Rect.X, Y: c.Rect.Y, Width: c.Rect.Width, Height: height}
	c.Rect.Y += height
	c.Rect.Height -= height

	c.enter(carved, body)
}

// Center runs body against a width×height rect centered in the current
// region. The region is not consumed; siblings may overlap the centered
// area.
func (c *Canvas) Center(width, height int, body func(*Canvas)) {
	c.enter(Rect{
		X:      c.Rect.X + c.Rect.Width/2 - width/2,
		Y:      c.Rect.Y + c.Rect.Height/2 - height/2,
		Width:  width,
		Height: height,
	}, body)
}

// Clear resets the whole buffer to transparent black.
func (c *Canvas) Clear() {
	c.Pix.Clear()
}

// Fill paints the current region with the given color. Empty regions are a
// no-op.
func (c *Canvas) Fill(color pix.Color) {
	c.Pix.FillRect(c.Rect.X, c.Rect.Y, c.Rect.Width, c.Rect.Height, color)
}

// Text draws s with the current font, scale and color at the top left of
// the current region, then consumes the drawn area so consecutive calls
// stack along the active direction.
func (c *Canvas) Text(s string) {
	v := c.Visuals
	cells := v.Font.Draw(c.Pix, s, c.Rect.X, c.Rect.Y+v.Font.CellHeight*v.Scale, v.Color, v.Scale)
	c.Cut(cells*v.Font.CellWidth*v.Scale, v.Font.CellHeight*v.Scale, func(*Canvas) {})
}

// CellWidth is one layout cell's width in destination pixels at the current
// scale.
func (c *Canvas) CellWidth() int {
	return c.Visuals.Font.CellWidth * c.Visuals.Scale
}

// LineHeight is one text line's height in destination pixels at the current
// scale.
func (c *Canvas) LineHeight() int {
	return c.Visuals.Font.CellHeight * c.Visuals.Scale
}

// Hover reports whether the cursor is inside the current region. It is
// evaluated fresh for every nested region, so clicks attribute to the
// innermost region checked.
func (c *Canvas) Hover() bool {
	return c.Input.CursorOK && c.Rect.Contains(c.Input.CursorX, c.Input.CursorY)
}

// MouseLeft reports a held left button over the current region.
func (c *Canvas) MouseLeft() bool {
	return c.Hover() && c.Input.LeftDown
}

// MouseMiddle reports a held middle button over the current region.
func (c *Canvas) MouseMiddle() bool {
	return c.Hover() && c.Input.MiddleDown
}

// MouseRight reports a held right button over the current region.
func (c *Canvas) MouseRight() bool {
	return c.Hover() && c.Input.RightDown
}
