// Package font loads bitmap fonts from BDF glyph streams and draws scaled,
// ligature-aware text into a pix.Buffer.
package font

import "github.com/OpticalFlyer/clef/pix"

// Font holds the glyphs of one bitmap font. CellWidth and CellHeight are the
// fixed layout advance used for every cell; individual glyph bitmaps carry
// their own bounds and offsets, which only affect where pixels land, never
// how far the text cursor moves.
//
// Glyphs and Ligatures may be extended after parsing. That is the supported
// path for symbols absent from the base font, see AddAccidentals.
type Font struct {
	CellWidth  int
	CellHeight int
	Glyphs     map[rune]Glyph
	Ligatures  map[[2]rune]Glyph
}

// Glyph is one renderable bitmap shape. Bitmap is row-major with each row
// padded to whole bytes; bit 7 of a byte is the leftmost pixel of its
// 8-pixel group.
type Glyph struct {
	Width  int
	Height int
	XOff   int
	YOff   int
	Bitmap []byte
}

// Draw blits the glyph into buf with its bottom-left corner anchored at the
// origin, adjusted by the glyph offsets. The origin is in destination pixels
// and is divided by scale here because SetScaled multiplies coordinates back
// up when painting scale×scale blocks. Pixels outside the surface are
// dropped.
func (g Glyph) Draw(buf *pix.Buffer, originX, originY int, color pix.Color, scale int) {
	rowBytes := (g.Width + 7) / 8
	for y := 0; y < g.Height; y++ {
		row := g.Bitmap[y*rowBytes : (y+1)*rowBytes]
		for i, b := range row {
			for bit := 0; bit < 8; bit++ {
				if b&(0x80>>bit) == 0 {
					continue
				}
				buf.SetScaled(
					originX/scale+i*8+bit+g.XOff,
					originY/scale+y-g.Height-g.YOff,
					scale, color)
			}
		}
	}
}

// lookup resolves the glyph at position i with one-codepoint lookahead:
// a matching ligature pair wins over the single glyph and consumes the next
// codepoint as well. pair reports whether two codepoints were consumed.
func (f *Font) lookup(runes []rune, i int) (g Glyph, ok, pair bool) {
	if i+1 < len(runes) {
		if lig, found := f.Ligatures[[2]rune{runes[i], runes[i+1]}]; found {
			return lig, true, true
		}
	}
	g, ok = f.Glyphs[runes[i]]
	return g, ok, false
}

// Measure returns the number of layout cells text occupies, counting each
// ligature pair as one cell. It agrees with Draw without touching pixels.
func (f *Font) Measure(text string) int {
	runes := []rune(text)
	cells := 0
	for i := 0; i < len(runes); i++ {
		if _, _, pair := f.lookup(runes, i); pair {
			i++
		}
		cells++
	}
	return cells
}

// Draw renders text at (x, y) and returns the number of cells consumed. The
// cursor advances one cell width per cell; codepoints with no glyph advance
// the cursor but draw nothing. Line breaks are the caller's problem.
func (f *Font) Draw(buf *pix.Buffer, text string, x, y int, color pix.Color, scale int) int {
	runes := []rune(text)
	cells := 0
	for i := 0; i < len(runes); i++ {
		g, ok, pair := f.lookup(runes, i)
		if pair {
			i++
		}
		if ok {
			g.Draw(buf, x, y, color, scale)
		}
		x += f.CellWidth * scale
		cells++
	}
	return cells
}
