package grid

/*
	The simplest engine: creates the new area with full size on each step
	All cells are calculated into the new area and then this area replaces the current one
*/

func setupFresh(g *Grid) {
	g.nextGeneration = func() (Area, int, bool) {
		next := newArea(g.size)
		liveCells, changed := evolve(g.cells, next, 0, g.size)
		return next, liveCells, changed
	}
}
