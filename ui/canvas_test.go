package ui

import (
	"testing"

	"github.com/OpticalFlyer/clef/font"
	"github.com/OpticalFlyer/clef/pix"
)

func testFont() *font.Font {
	return &font.Font{
		CellWidth:  4,
		CellHeight: 5,
		Glyphs: map[rune]font.Glyph{
			'A': {Width: 4, Height: 5, Bitmap: []byte{0xF0, 0xF0, 0xF0, 0xF0, 0xF0}},
		},
		Ligatures: map[[2]rune]font.Glyph{},
	}
}

func newTestCanvas(width, height int) *Canvas {
	c := New(pix.New(width, height), testFont())
	c.Visuals.Scale = 1
	return c
}

func TestCenter(t *testing.T) {
	c := newTestCanvas(100, 100)

	var got Rect
	c.Center(50, 50, func(c *Canvas) {
		got = c.Rect
	})

	if want := (Rect{X: 25, Y: 25, Width: 50, Height: 50}); got != want {
		t.Errorf("centered rect = %+v; want %+v", got, want)
	}
	// Center does not consume the parent region.
	if want := (Rect{Width: 100, Height: 100}); c.Rect != want {
		t.Errorf("parent rect after Center = %+v; want %+v", c.Rect, want)
	}
}

func TestCutVertical(t *testing.T) {
	c := newTestCanvas(100, 100)
	c.Visuals.Dir = Vertical

	var carved Rect
	c.Cut(10, 20, func(c *Canvas) {
		carved = c.Rect
	})

	if want := (Rect{X: 0, Y: 0, Width: 10, Height: 20}); carved != want {
		t.Errorf("carved rect = %+v; want %+v", carved, want)
	}
	if want := (Rect{X: 0, Y: 20, Width: 90, Height: 80}); c.Rect != want {
		t.Errorf("remainder = %+v; want %+v", c.Rect, want)
	}
}

func TestCutHorizontal(t *testing.T) {
	c := newTestCanvas(100, 100)
	c.Visuals.Dir = Horizontal

	var carved Rect
	c.Cut(10, 20, func(c *Canvas) {
		carved = c.Rect
	})

	if want := (Rect{X: 0, Y: 0, Width: 10, Height: 20}); carved != want {
		t.Errorf("carved rect = %+v; want %+v", carved, want)
	}
	if want := (Rect{X: 10, Y: 0, Width: 90, Height: 80}); c.Rect != want {
		t.Errorf("remainder = %+v; want %+v", c.Rect, want)
	}
}

// The remainder shrinks on both axes whatever the direction. Layout code
// depends on this arithmetic; do not change it without revisiting every
// caller.
func TestCutShrinksBothAxes(t *testing.T) {
	for _, dir := range []CutDir{Horizontal, Vertical} {
		c := newTestCanvas(100, 100)
		c.Visuals.Dir = dir
		c.Cut(10, 20, func(*Canvas) {})
		if c.Rect.Width != 90 || c.Rect.Height != 80 {
			t.Errorf("dir %v: remainder %dx%d; want 90x80", dir, c.Rect.Width, c.Rect.Height)
		}
	}
}

func TestCutTop(t *testing.T) {
	c := newTestCanvas(100, 100)
	c.Visuals.Dir = Horizontal // CutTop ignores the direction

	var carved Rect
	c.CutTop(15, func(c *Canvas) {
		carved = c.Rect
	})

	if want := (Rect{X: 0, Y: 0, Width: 100, Height: 15}); carved != want {
		t.Errorf("carved rect = %+v; want %+v", carved, want)
	}
	if want := (Rect{X: 0, Y: 15, Width: 100, Height: 85}); c.Rect != want {
		t.Errorf("remainder = %+v; want %+v", c.Rect, want)
	}
}

func TestScopedRestore(t *testing.T) {
	c := newTestCanvas(100, 100)
	c.Visuals.Color = pix.Color{1, 2, 3, 4}

	before := c.Visuals
	c.Cut(10, 10, func(c *Canvas) {
		c.Visuals.Color = pix.White
		c.Visuals.Scale = 7
		c.Visuals.Dir = Horizontal
		c.Center(4, 4, func(c *Canvas) {
			c.Visuals.Scale = 9
		})
		if c.Visuals.Scale != 7 {
			t.Error("Center leaked visuals into its caller")
		}
	})
	if c.Visuals != before {
		t.Errorf("visuals after Cut = %+v; want %+v", c.Visuals, before)
	}
}

// Nested cuts restore each level's rect byte for byte, at any depth.
func TestNestedScoping(t *testing.T) {
	c := newTestCanvas(200, 200)

	var descend func(depth int)
	descend = func(depth int) {
		if depth == 0 {
			return
		}
		c.Cut(10, 10, func(c *Canvas) {
			before := c.Rect
			descend(depth - 1)
			if c.Rect != before {
				t.Fatalf("depth %d: rect changed from %+v to %+v", depth, before, c.Rect)
			}
		})
	}
	descend(6)
}

func TestFillEmptyRectNoop(t *testing.T) {
	c := newTestCanvas(10, 10)
	c.Rect = Rect{X: 2, Y: 2, Width: -5, Height: 3}
	c.Fill(pix.White)
	for _, v := range c.Pix.Pix {
		if v != 0 {
			t.Fatal("fill of a negative-width rect wrote pixels")
		}
	}
}

func TestTextConsumesAndStacks(t *testing.T) {
	c := newTestCanvas(64, 32)
	c.Visuals.Dir = Vertical

	c.Text("AA")
	// Two cells consumed: the remainder drops below the line and shrinks.
	if want := (Rect{X: 0, Y: 5, Width: 64 - 8, Height: 32 - 5}); c.Rect != want {
		t.Errorf("rect after Text = %+v; want %+v", c.Rect, want)
	}
	c.Text("A")

	// First line renders in rows 0-4, second in rows 5-9.
	if c.Pix.At(0, 0) != pix.White {
		t.Error("first line did not render at the top")
	}
	if c.Pix.At(0, 5) != pix.White {
		t.Error("second line did not stack below the first")
	}
	if c.Pix.At(0, 10) != pix.Transparent {
		t.Error("unexpected pixels below the second line")
	}
}

func TestHover(t *testing.T) {
	c := newTestCanvas(100, 100)
	c.Input = Input{CursorX: 5, CursorY: 5, CursorOK: true}

	if !c.Hover() {
		t.Error("cursor inside the root region; Hover() = false")
	}

	// The innermost region owns the cursor; a sibling that excludes it does
	// not.
	c.Cut(10, 10, func(c *Canvas) {
		if !c.Hover() {
			t.Error("cursor inside carved region; Hover() = false")
		}
	})
	if c.Hover() {
		t.Error("cursor outside the remainder; Hover() = true")
	}
}

func TestHoverWithoutCursor(t *testing.T) {
	c := newTestCanvas(100, 100)
	c.Input = Input{CursorX: 5, CursorY: 5, CursorOK: false, LeftDown: true}

	if c.Hover() {
		t.Error("Hover() = true with no cursor")
	}
	if c.MouseLeft() {
		t.Error("MouseLeft() = true with no cursor")
	}
}

func TestMouseButtons(t *testing.T) {
	c := newTestCanvas(100, 100)
	c.Input = Input{CursorX: 5, CursorY: 5, CursorOK: true, LeftDown: true, RightDown: true}

	if !c.MouseLeft() {
		t.Error("MouseLeft() = false; want true")
	}
	if c.MouseMiddle() {
		t.Error("MouseMiddle() = true; want false")
	}
	if !c.MouseRight() {
		t.Error("MouseRight() = false; want true")
	}
}
