package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/clef/audio"
	"github.com/OpticalFlyer/clef/explorer"
	"github.com/OpticalFlyer/clef/font"
	"github.com/OpticalFlyer/clef/pix"
	"github.com/OpticalFlyer/clef/ui"
)

// Initial window size; the frame buffer follows the window on resize.
const (
	initialWidth  = 640
	initialHeight = 480
)

// Cozette's fixed cell advance. The BDF global metrics are not used; the
// whole layout is built on this one advance.
const (
	cellWidth  = 6
	cellHeight = 13
)

// Clef implements ebiten.Game. Every frame it snapshots the pointer, lets
// the explorer draw into the frame buffer, and uploads the buffer to the
// screen.
type Clef struct {
	font      *font.Font
	explorer  *explorer.Explorer
	textScale int

	frame   *pix.Buffer
	surface *ebiten.Image
	width   int
	height  int

	input     ui.Input
	debugMode bool
}

func (g *Clef) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.debugMode = !g.debugMode
	}

	in := ui.Input{
		LeftDown:   ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		MiddleDown: ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle),
		RightDown:  ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight),
	}
	if x, y := ebiten.CursorPosition(); x >= 0 && y >= 0 && x < g.width && y < g.height {
		in.CursorX, in.CursorY, in.CursorOK = x, y, true
	}
	g.applyTouch(&in)

	g.input = in
	return nil
}

func (g *Clef) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}

	c := ui.New(g.frame, g.font)
	c.Visuals.Scale = g.textScale
	c.Input = g.input

	c.Clear()
	g.explorer.Draw(c)

	g.surface.WritePixels(g.frame.Pix)
	screen.DrawImage(g.surface, nil)

	if g.debugMode {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.2f TPS: %.2f", ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
}

func (g *Clef) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width = outsideWidth
		g.height = outsideHeight
		g.frame = pix.New(outsideWidth, outsideHeight)
		g.surface = ebiten.NewImage(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

func loadFont(path string) (*font.Font, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening font %s failed: %w", path, err)
	}
	defer fh.Close()

	f, err := font.ParseBDF(fh, cellWidth, cellHeight)
	if err != nil {
		return nil, fmt.Errorf("parsing font %s failed: %w", path, err)
	}
	font.AddAccidentals(f)
	return f, nil
}

func main() {
	fontPath := flag.String("font", "cozette.bdf", "path to the BDF font file")
	textScale := flag.Int("scale", 2, "integer text scale factor")
	flag.Parse()

	if *textScale < 1 {
		log.Fatal("scale must be at least 1")
	}

	f, err := loadFont(*fontPath)
	if err != nil {
		log.Fatal(err)
	}

	engine := audio.NewEngine()
	if err := engine.Init(); err != nil {
		// A machine without audio still gets the visuals.
		log.Printf("audio disabled: %v", err)
	}
	defer engine.Close()

	app := &Clef{
		font:      f,
		explorer:  explorer.New(engine),
		textScale: *textScale,
	}

	ebiten.SetWindowSize(initialWidth, initialHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Clef")
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
