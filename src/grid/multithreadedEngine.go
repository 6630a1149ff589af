package grid

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

/*
	Engine with multithreaded computation
	the field is split into bands of rows each of which is computed by individual goroutine
	all goroutines read the current area and write only their own rows of the new one
*/

//DefMinRowsPerWorker is the minimum band height for one worker
const DefMinRowsPerWorker = 3

//DefBandsPerWorker is the number of bands queued per worker, the faster workers take the rest
const DefBandsPerWorker = 4

//band describes the rows [y1, y2) computed by one worker
type band struct {
	y1        int
	y2        int
	liveCells int
	changed   bool
}

func setupMultithreaded(g *Grid) {
	setupWorkers(g, runtime.NumCPU())
}

//setupWorkers installs the generation computed by at most workers goroutines at once
func setupWorkers(g *Grid, workers int) {
	bands := splitRows(g.size, workers*DefBandsPerWorker)
	g.nextGeneration = func() (Area, int, bool) {
		next := newArea(g.size)
		var eg errgroup.Group
		eg.SetLimit(workers)
		for i := range bands {
			b := &bands[i]
			eg.Go(func() error {
				b.liveCells, b.changed = evolve(g.cells, next, b.y1, b.y2)
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			//workers never fail
			panic(err)
		}
		liveCells, changed := 0, false
		for _, b := range bands {
			liveCells += b.liveCells
			changed = changed || b.changed
		}
		return next, liveCells, changed
	}
}

//splitRows divides size rows between at most workers bands
func splitRows(size int, workers int) []band {
	if workers < 1 {
		workers = 1
	}
	rowsPerWorker := (size + workers - 1) / workers
	if rowsPerWorker < DefMinRowsPerWorker {
		rowsPerWorker = DefMinRowsPerWorker
	}
	bands := make([]band, 0, workers)
	for y1 := 0; y1 < size; y1 += rowsPerWorker {
		bands = append(bands, band{y1: y1, y2: min(y1+rowsPerWorker, size)})
	}
	return bands
}
