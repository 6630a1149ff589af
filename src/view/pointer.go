package view

import "automaton/src/universe"

//Controls is the part of the universe driven by the mouse
type Controls interface {
	InverseCell(x int, y int) error
	Step()
	Clear()
}

//Pointer turns the mouse events of the window into commands
type Pointer struct {
	c        Controls
	layout   Layout
	auto     *universe.AutoAdvance
	dragging bool
	last     [2]int
	hasLast  bool
}

//NewPointer creates the Pointer, auto is the timer switched by the auto button
func NewPointer(c Controls, layout Layout, auto *universe.AutoAdvance) *Pointer {
	return &Pointer{c: c, layout: layout, auto: auto}
}

//Press handles the pressed mouse button: activates the button or inverts the cell under the pointer
func (p *Pointer) Press(px int, py int) {
	p.dragging = true
	p.hasLast = false
	switch p.layout.ButtonAt(px, py) {
	case ButtonIncrement:
		p.c.Step()
		return
	case ButtonAuto:
		p.auto.Toggle()
		return
	case ButtonClear:
		p.c.Clear()
		return
	}
	p.inverse(px, py)
}

//Drag handles the pointer moved with the pressed button
//every cell is inverted once when the pointer enters it
func (p *Pointer) Drag(px int, py int) {
	if !p.dragging {
		return
	}
	x, y, ok := p.layout.CellAt(px, py)
	if !ok {
		p.hasLast = false
		return
	}
	if p.hasLast && p.last == [2]int{x, y} {
		return
	}
	p.inverse(px, py)
}

//Release handles the released mouse button
func (p *Pointer) Release() {
	p.dragging = false
	p.hasLast = false
}

//Frame counts one frame of the automatic mode, returns true if the step was requested
func (p *Pointer) Frame() bool {
	if p.auto.Tick() {
		p.c.Step()
		return true
	}
	return false
}

//AutoEnabled reports whether the automatic mode is on
func (p *Pointer) AutoEnabled() bool {
	return p.auto.Enabled()
}

func (p *Pointer) inverse(px int, py int) {
	x, y, ok := p.layout.CellAt(px, py)
	if !ok {
		return
	}
	//the layout yields cells inside the field, the only failure is the closed universe
	if err := p.c.InverseCell(x, y); err != nil {
		return
	}
	p.last = [2]int{x, y}
	p.hasLast = true
}
