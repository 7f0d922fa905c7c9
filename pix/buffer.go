// Package pix implements the raw RGBA frame surface the renderer draws into.
package pix

// Color is an RGBA8 pixel value. Writes replace the destination pixel
// outright; there is no alpha compositing.
type Color [4]byte

// Common colors used by the widgets.
var (
	Transparent = Color{0, 0, 0, 0}
	White       = Color{255, 255, 255, 255}
)

// Invert flips every channel, including alpha. Selected tabs use it to swap
// foreground and background.
func (c Color) Invert() Color {
	return Color{255 - c[0], 255 - c[1], 255 - c[2], 255 - c[3]}
}

// Buffer is a flat row-major RGBA8 surface, 4 bytes per pixel. Pix is laid
// out exactly as ebiten's WritePixels expects, so a frame can be uploaded
// without conversion.
type Buffer struct {
	Pix    []byte
	Width  int
	Height int
}

// New allocates a cleared surface of the given size.
func New(width, height int) *Buffer {
	return &Buffer{
		Pix:    make([]byte, width*height*4),
		Width:  width,
		Height: height,
	}
}

// Set writes one pixel. Coordinates outside the surface are dropped.
func (b *Buffer) Set(x, y int, c Color) {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return
	}
	i := (y*b.Width + x) * 4
	copy(b.Pix[i:i+4], c[:])
}

// At returns the pixel at (x, y), or transparent black outside the surface.
func (b *Buffer) At(x, y int) Color {
	if x < 0 || y < 0 || x >= b.Width || y >= b.Height {
		return Transparent
	}
	var c Color
	i := (y*b.Width + x) * 4
	copy(c[:], b.Pix[i:i+4])
	return c
}

// SetScaled paints the logical pixel (x, y) as a scale×scale block of
// destination pixels. Parts of the block outside the surface are dropped.
func (b *Buffer) SetScaled(x, y, scale int, c Color) {
	for dy := y * scale; dy < y*scale+scale; dy++ {
		for dx := x * scale; dx < x*scale+scale; dx++ {
			b.Set(dx, dy, c)
		}
	}
}

// FillRect fills every pixel inside the rectangle. Degenerate rectangles
// (non-positive width or height) and out-of-range spans are a no-op.
func (b *Buffer) FillRect(x, y, width, height int, c Color) {
	for yy := y; yy < y+height; yy++ {
		for xx := x; xx < x+width; xx++ {
			b.Set(xx, yy, c)
		}
	}
}

// Clear resets the whole surface to transparent black.
func (b *Buffer) Clear() {
	clear(b.Pix)
}
