package view

import "image"

//Button is the control placed to the right of the field
type Button int

const (
	ButtonNone      Button = iota
	ButtonIncrement        //one step
	ButtonAuto             //automatic mode on/off
	ButtonClear            //kill all cells
)

//window geometry
const (
	DefWindowWidth  = 1000
	DefWindowHeight = 800
	ButtonSize      = 50
	ButtonMargin    = 10
	ButtonSpacing   = 60
)

//Label returns the text drawn on the button
func (b Button) Label() string {
	switch b {
	case ButtonIncrement:
		return "i++"
	case ButtonAuto:
		return "auto"
	case ButtonClear:
		return "clear"
	}
	return ""
}

//Layout maps the field and the buttons to the window pixels
type Layout struct {
	GridSize int
	CellSize int
	Width    int
	Height   int
}

//NewLayout creates the layout of the gridSize x gridSize field of cellSize pixel cells
//the window is never smaller than 1000x800 and always fits the field and the buttons
func NewLayout(gridSize int, cellSize int) Layout {
	l := Layout{GridSize: gridSize, CellSize: cellSize}
	l.Width = max(DefWindowWidth, l.fieldSize()+2*ButtonMargin+ButtonSize)
	l.Height = max(DefWindowHeight, l.fieldSize(), l.ButtonRect(ButtonClear).Max.Y+ButtonMargin)
	return l
}

//Buttons returns all buttons from top to bottom
func (l Layout) Buttons() []Button {
	return []Button{ButtonIncrement, ButtonAuto, ButtonClear}
}

//CellRect returns the pixel rectangle of the cell x, y
func (l Layout) CellRect(x int, y int) image.Rectangle {
	return image.Rect(x*l.CellSize, y*l.CellSize, (x+1)*l.CellSize, (y+1)*l.CellSize)
}

//CellAt returns the cell under the pixel px, py
//ok is false when the pixel is outside of the field
func (l Layout) CellAt(px int, py int) (x int, y int, ok bool) {
	if px < 0 || py < 0 || px >= l.fieldSize() || py >= l.fieldSize() {
		return 0, 0, false
	}
	return px / l.CellSize, py / l.CellSize, true
}

//ButtonRect returns the pixel rectangle of the button
func (l Layout) ButtonRect(b Button) image.Rectangle {
	if b == ButtonNone {
		return image.Rectangle{}
	}
	x := l.fieldSize() + ButtonMargin
	y := ButtonMargin + int(b-ButtonIncrement)*ButtonSpacing
	return image.Rect(x, y, x+ButtonSize, y+ButtonSize)
}

//ButtonAt returns the button under the pixel px, py or ButtonNone
func (l Layout) ButtonAt(px int, py int) Button {
	p := image.Pt(px, py)
	for _, b := range l.Buttons() {
		if p.In(l.ButtonRect(b)) {
			return b
		}
	}
	return ButtonNone
}

func (l Layout) fieldSize() int {
	return l.GridSize * l.CellSize
}
