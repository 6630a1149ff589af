package grid

/*
NextState applies Conway's rules to one cell:
a live cell survives with 2 or 3 live neighbours, a dead cell is born with exactly 3, any other cell is dead
*/
func NextState(alive bool, neighbours int) bool {
	return (alive && neighbours == 2) || neighbours == 3
}
