//go:build !ebiten

package view

import (
	"github.com/pkg/errors"

	"automaton/src/universe"
)

//ErrNoWindow is returned when the binary is built without the ebiten tag
var ErrNoWindow = errors.New("view: the window requires building with the 'ebiten' tag")

//Window is a placeholder of the desktop front end in the headless build
type Window struct{}

//NewWindow always fails in the headless build
func NewWindow(Layout, int) (*Window, error) {
	return nil, ErrNoWindow
}

//Register is a no-op placeholder.
func (w *Window) Register(universe.Universe) {}

//Refresh is a no-op placeholder.
func (w *Window) Refresh() {}

//Start is a no-op placeholder.
func (w *Window) Start() {}
