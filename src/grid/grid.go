package grid

import (
	"crypto/md5"
	"fmt"

	"github.com/pkg/errors"
)

/*
	Grid is the square field of the Life game
	The cells of the current generation are kept in one Area and are never updated in place by Step:
	the next generation is calculated into another Area which then replaces the current one
*/

//Area is one generation of cells, addressed as Area[y][x]
type Area [][]bool

//Grid is the simulation engine: the cells of the current generation and the rule to advance them
type Grid struct {
	size           int
	engine         Engine
	cells          Area
	spare          Area //previous generation, reused by engines which recycle buffers
	recycle        bool
	nextGeneration func() (next Area, liveCells int, changed bool)
}

//New creates the size x size grid with all cells dead using the default engine
func New(size int) (*Grid, error) {
	return NewWithEngine(size, EngineFresh)
}

//NewWithEngine creates the size x size grid with all cells dead
//engine selects the algorithm used by Step, all of them produce the same generations
func NewWithEngine(size int, engine Engine) (*Grid, error) {
	if size <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimension, "size %d", size)
	}
	setup, ok := engines[engine]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownEngine, "%q", engine)
	}
	g := &Grid{
		size:   size,
		engine: engine,
		cells:  newArea(size),
	}
	setup(g)
	return g, nil
}

//Size returns the width (and height) of the grid
func (g *Grid) Size() int {
	return g.size
}

//Engine returns the name of the algorithm used by Step
func (g *Grid) Engine() Engine {
	return g.engine
}

//IsAlive returns the state of the cell x, y
func (g *Grid) IsAlive(x int, y int) (bool, error) {
	if err := g.checkBounds(x, y); err != nil {
		return false, err
	}
	return g.cells[y][x], nil
}

//Toggle inverts the state of the cell x, y
func (g *Grid) Toggle(x int, y int) error {
	if err := g.checkBounds(x, y); err != nil {
		return err
	}
	g.cells[y][x] = !g.cells[y][x]
	return nil
}

//Set sets the state of the cell x, y
func (g *Grid) Set(x int, y int, alive bool) error {
	if err := g.checkBounds(x, y); err != nil {
		return err
	}
	g.cells[y][x] = alive
	return nil
}

//Clear kills all cells
func (g *Grid) Clear() {
	for y := range g.cells {
		clear(g.cells[y])
	}
}

//Step calculates the next generation and installs it in place of the current one
//returns the number of live cells in the new generation and whether any cell has changed its state
func (g *Grid) Step() (liveCells int, changed bool) {
	var next Area
	next, liveCells, changed = g.nextGeneration()
	prev := g.cells
	g.cells = next
	if g.recycle {
		g.spare = prev
	}
	return
}

//Neighbours returns the number of live cells around x, y
//cells outside the grid are not counted, the field has no wraparound
func (g *Grid) Neighbours(x int, y int) (int, error) {
	if err := g.checkBounds(x, y); err != nil {
		return 0, err
	}
	return liveNeighbours(g.cells, x, y), nil
}

//LiveCells returns the number of live cells
func (g *Grid) LiveCells() int {
	liveCells := 0
	g.Walk(func(x int, y int, alive bool) {
		if alive {
			liveCells++
		}
	})
	return liveCells
}

//Walk calls cb for each cell of the current generation, row by row
func (g *Grid) Walk(cb func(x int, y int, alive bool)) {
	for y := range g.cells {
		for x := range g.cells[y] {
			cb(x, y, g.cells[y][x])
		}
	}
}

//Snapshot returns a copy of the current generation which is safe to keep after the grid changes
func (g *Grid) Snapshot() Area {
	a := newArea(g.size)
	for y := range g.cells {
		copy(a[y], g.cells[y])
	}
	return a
}

//Fingerprint returns the digest of the current generation
//two generations of the same grid are equal if their fingerprints are equal
func (g *Grid) Fingerprint() string {
	b := make([]byte, 0, g.size*g.size)
	g.Walk(func(x int, y int, alive bool) {
		if alive {
			b = append(b, 1)
		} else {
			b = append(b, 0)
		}
	})
	return fmt.Sprintf("%x", md5.Sum(b))
}

func (g *Grid) checkBounds(x int, y int) error {
	if x < 0 || y < 0 || x >= g.size || y >= g.size {
		return errors.Wrapf(ErrOutOfBounds, "(%d,%d) on %dx%d grid", x, y, g.size, g.size)
	}
	return nil
}

//evolve calculates rows [y1, y2) of the next generation of src into dst
func evolve(src Area, dst Area, y1 int, y2 int) (liveCells int, changed bool) {
	for y := y1; y < y2; y++ {
		for x := range src[y] {
			nextState := NextState(src[y][x], liveNeighbours(src, x, y))
			if nextState {
				liveCells++
			}
			changed = changed || nextState != src[y][x]
			dst[y][x] = nextState
		}
	}
	return
}

//liveNeighbours counts live cells in the Moore neighbourhood of x, y
func liveNeighbours(a Area, x int, y int) (n int) {
	size := len(a)
	for dy := -1; dy < 2; dy++ {
		for dx := -1; dx < 2; dx++ {
			//skip my position
			if dx == 0 && dy == 0 {
				continue
			}
			nx := x + dx
			ny := y + dy
			//skip coordinates outside the area
			if nx < 0 || ny < 0 || nx >= size || ny >= size {
				continue
			}
			if a[ny][nx] {
				n++
			}
		}
	}
	return
}

//newArea allocates the square area on one backing slice
func newArea(size int) Area {
	a := make(Area, size)
	b := make([]bool, size*size)
	for i := range a {
		start := size * i
		a[i] = b[start : start+size : start+size]
	}
	return a
}
