package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/OpticalFlyer/clef/ui"
)

// applyTouch lets the first active touch stand in for the mouse: its
// position becomes the cursor and it counts as a held left button. Extra
// touches are ignored; there is no multi-touch gesture here.
func (g *Clef) applyTouch(in *ui.Input) {
	touches := make([]ebiten.TouchID, 0, 8)
	touches = ebiten.AppendTouchIDs(touches)
	if len(touches) == 0 {
		return
	}

	x, y := ebiten.TouchPosition(touches[0])
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return
	}
	in.CursorX, in.CursorY, in.CursorOK = x, y, true
	in.LeftDown = true
}
