package ui

// Tabs draws a strip of tab headers divided evenly across the current region
// along the active direction, and updates *selected when the left button is
// held over a header.
//
// Selection is written before any header renders, and a header renders
// highlighted only if it is selected and no other header is being clicked.
// Without that second condition the old selection would flash highlighted for
// one frame while the mouse is pressed over a different header.
func (c *Canvas) Tabs(names []string, selected *int) {
	n := len(names)
	if n == 0 {
		return
	}

	rects := make([]Rect, n)
	for i := range rects {
		switch c.Visuals.Dir {
		case Horizontal:
			w := c.Rect.Width / n
			rects[i] = Rect{X: c.Rect.X + i*w, Y: c.Rect.Y, Width: w, Height: c.Rect.Height}
		case Vertical:
			h := c.Rect.Height / n
			rects[i] = Rect{X: c.Rect.X, Y: c.Rect.Y + i*h, Width: c.Rect.Width, Height: h}
		}
	}

	pressed := -1
	for i, r := range rects {
		if c.Input.LeftDown && c.Input.CursorOK && r.Contains(c.Input.CursorX, c.Input.CursorY) {
			pressed = i
		}
	}
	if pressed >= 0 {
		*selected = pressed
	}

	for i, r := range rects {
		highlighted := i == *selected && (pressed == -1 || pressed == i)
		name := names[i]
		c.enter(r, func(c *Canvas) {
			if highlighted {
				c.Fill(c.Visuals.Color)
				c.Visuals.Color = c.Visuals.Color.Invert()
			}
			c.Center(c.Visuals.Font.Measure(name)*c.CellWidth(), c.LineHeight(), func(c *Canvas) {
				c.Text(name)
			})
		})
	}
}
