package grid

import "sort"

//Engine is the name of the algorithm which calculates the next generation
type Engine string

const (
	EngineFresh         Engine = "fresh"
	EngineDoubleBuff    Engine = "doubleBuff"
	EngineMultithreaded Engine = "multithreaded"
)

//engines maps the engine name to the func which prepares the grid to use it
var engines = map[Engine]func(g *Grid){
	EngineFresh:         setupFresh,
	EngineDoubleBuff:    setupDoubleBuff,
	EngineMultithreaded: setupMultithreaded,
}

//Engines returns the names of all known engines in alphabetical order
func Engines() []Engine {
	names := make([]Engine, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
