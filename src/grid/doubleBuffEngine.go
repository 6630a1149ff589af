package grid

/*
	Engine with two buffers
	The next generation is calculated into the spare area kept from the previous step,
	then the current and the spare areas are swapped. No allocations after the first step
*/

func setupDoubleBuff(g *Grid) {
	g.recycle = true
	g.nextGeneration = func() (Area, int, bool) {
		next := g.spare
		if len(next) != g.size {
			next = newArea(g.size)
		}
		//every cell of next is overwritten, no need to clear it
		liveCells, changed := evolve(g.cells, next, 0, g.size)
		return next, liveCells, changed
	}
}
