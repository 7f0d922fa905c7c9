// Package explorer implements the application's screens: the chord grid and
// the tuning board, composed behind a tab strip.
package explorer

import (
	"fmt"

	"github.com/OpticalFlyer/clef/audio"
	"github.com/OpticalFlyer/clef/ui"
)

// Screen identifies one of the top-level tabs.
type Screen int

const (
	Explore Screen = iota
	Tuning
)

// Name returns the screen's display name.
func (s Screen) Name() string {
	switch s {
	case Explore:
		return "Explore"
	case Tuning:
		return "Tuning"
	}
	return ""
}

// screenNames is the fixed tab order of the header strip.
var screenNames = []string{Explore.Name(), Tuning.Name()}

// TonePlayer sounds a tone at the given frequency. Satisfied by
// *audio.Engine.
type TonePlayer interface {
	Play(freq float64)
}

// Reference pitch bounds for the tuning board.
const (
	minA4     = 400
	defaultA4 = 440
	maxA4     = 480
)

// Explorer is the root widget. Across frames it owns only the selected
// screen, the reference pitch and the previous frame's button state;
// everything else is immediate-mode.
type Explorer struct {
	Screen Screen
	A4     int
	Player TonePlayer

	leftWasDown bool
	clicked     bool
}

// New returns an Explorer on the Explore screen at standard pitch. player
// may be nil; the tuning board then stays silent.
func New(player TonePlayer) *Explorer {
	return &Explorer{A4: defaultA4, Player: player}
}

// Draw renders one frame into the canvas's full region.
func (e *Explorer) Draw(c *ui.Canvas) {
	e.clicked = c.Input.LeftDown && !e.leftWasDown
	e.leftWasDown = c.Input.LeftDown

	c.Visuals.Dir = ui.Vertical
	c.CutTop(c.LineHeight(), func(c *ui.Canvas) {
		c.Visuals.Dir = ui.Horizontal
		selected := int(e.Screen)
		c.Tabs(screenNames, &selected)
		e.Screen = Screen(selected)
	})

	switch e.Screen {
	case Explore:
		e.drawExplore(c)
	case Tuning:
		e.drawTuning(c)
	}
}

// chordRows is the Explore grid: every root alteration from double flat to
// three-halves sharp, as plain chord, seventh and minor. The stacked
// accidentals are ligatures, so all rows measure the same cell count.
var chordRows = [3]string{
	"C  C♯  C♭  C♮  C𝄪  C𝄫  C𝄲  C𝄳  C𝄲♯  C𝄳♭ ",
	"C7 C♯7 C♭7 C♮7 C𝄪7 C𝄫7 C𝄲7 C𝄳7 C𝄲♯7 C𝄳♭7",
	"Cm C♯m C♭m C♮m C𝄪m C𝄫m C𝄲m C𝄳m C𝄲♯m C𝄳♭m",
}

func (e *Explorer) drawExplore(c *ui.Canvas) {
	width := c.Visuals.Font.Measure(chordRows[0]) * c.CellWidth()
	c.Center(width, c.LineHeight()*len(chordRows), func(c *ui.Canvas) {
		c.Visuals.Dir = ui.Vertical
		for _, row := range chordRows {
			c.Text(row)
		}
	})
}

// noteNames is one octave of note buttons on the tuning board, from middle C.
var noteNames = []string{"C", "C♯", "D", "D♯", "E", "F", "F♯", "G", "G♯", "A", "A♯", "B"}

func (e *Explorer) drawTuning(c *ui.Canvas) {
	width := 0
	for _, name := range noteNames {
		width += (c.Visuals.Font.Measure(name) + 2) * c.CellWidth()
	}

	c.Center(width, c.LineHeight()*4, func(c *ui.Canvas) {
		c.Visuals.Dir = ui.Vertical
		c.CutTop(c.LineHeight(), func(c *ui.Canvas) {
			c.Visuals.Dir = ui.Horizontal
			c.Text(fmt.Sprintf("A4 = %d Hz ", e.A4))
			e.button(c, "-", func() { e.A4 = max(e.A4-1, minA4) })
			c.Text(" ")
			e.button(c, "+", func() { e.A4 = min(e.A4+1, maxA4) })
		})
		c.CutTop(c.LineHeight(), func(*ui.Canvas) {}) // spacer row
		c.CutTop(c.LineHeight(), func(c *ui.Canvas) {
			c.Visuals.Dir = ui.Horizontal
			for i, name := range noteNames {
				midi := 60 + i
				e.button(c, " "+name+" ", func() {
					if e.Player != nil {
						e.Player.Play(audio.NoteFreq(midi, float64(e.A4)))
					}
				})
			}
		})
	})
}

// button carves a label-sized cell, renders it inverted while hovered, and
// fires onClick on the frame the left button goes down over it.
func (e *Explorer) button(c *ui.Canvas, label string, onClick func()) {
	width := c.Visuals.Font.Measure(label) * c.CellWidth()
	c.Cut(width, c.LineHeight(), func(c *ui.Canvas) {
		if c.Hover() {
			c.Fill(c.Visuals.Color)
			c.Visuals.Color = c.Visuals.Color.Invert()
			if e.clicked {
				onClick()
			}
		}
		c.Text(label)
	})
}
