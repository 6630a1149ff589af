//go:build ebiten

package view

import (
	"image/color"
	"log"
	"sync/atomic"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pkg/errors"

	"automaton/src/grid"
	"automaton/src/universe"
)

var buttonColors = map[Button]color.Color{
	ButtonIncrement: color.RGBA{R: 0xff, A: 0xff},
	ButtonAuto:      color.Black,
	ButtonClear:     color.RGBA{B: 0xff, A: 0xff},
}

//Window is the desktop front end: the field of squares and three buttons
type Window struct {
	u       universe.Universe
	layout  Layout
	pointer *Pointer
	auto    *universe.AutoAdvance
	area    grid.Area
	dirty   atomic.Bool
}

//NewWindow creates the window, framesPerStep is the cadence of the automatic mode
func NewWindow(layout Layout, framesPerStep int) (*Window, error) {
	return &Window{
		layout: layout,
		auto:   universe.NewAutoAdvance(framesPerStep),
	}, nil
}

//Register implements universe.Viewer
func (w *Window) Register(u universe.Universe) {
	w.u = u
	w.pointer = NewPointer(u, w.layout, w.auto)
	w.area = u.Area()
}

//Refresh implements universe.Viewer, the new generation is fetched on the next frame
func (w *Window) Refresh() {
	w.dirty.Store(true)
}

//Start opens the window and runs the game loop until the window is closed
func (w *Window) Start() {
	ebiten.SetWindowTitle("Cellular Automaton")
	ebiten.SetWindowSize(w.layout.Width, w.layout.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Panicln(err)
	}
}

//Update implements ebiten.Game
func (w *Window) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	px, py := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		w.pointer.Press(px, py)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		w.pointer.Drag(px, py)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		w.pointer.Release()
	}
	w.pointer.Frame()
	if w.dirty.Swap(false) {
		w.area = w.u.Area()
	}
	return nil
}

//Draw implements ebiten.Game
func (w *Window) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	for y := range w.area {
		for x, alive := range w.area[y] {
			r := w.layout.CellRect(x, y)
			fx, fy := float32(r.Min.X), float32(r.Min.Y)
			size := float32(r.Dx())
			if alive {
				vector.DrawFilledRect(screen, fx, fy, size, size, color.Black, false)
			} else {
				vector.StrokeRect(screen, fx, fy, size, size, 1, color.Black, false)
			}
		}
	}
	for _, b := range w.layout.Buttons() {
		r := w.layout.ButtonRect(b)
		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), buttonColors[b], false)
		ebitenutil.DebugPrintAt(screen, b.Label(), r.Min.X+8, r.Min.Y+18)
	}
	if w.pointer.AutoEnabled() {
		r := w.layout.ButtonRect(ButtonAuto)
		vector.StrokeRect(screen, float32(r.Min.X-2), float32(r.Min.Y-2), float32(r.Dx()+4), float32(r.Dy()+4), 2, color.RGBA{G: 0xa0, A: 0xff}, false)
	}
}

//Layout implements ebiten.Game
func (w *Window) Layout(_, _ int) (int, int) {
	return w.layout.Width, w.layout.Height
}
