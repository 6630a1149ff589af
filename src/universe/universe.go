package universe

import (
	"time"

	"automaton/src/grid"
)

//Universe is the control layer around the grid engine
//all commands are executed one by one by the universe's main loop
type Universe interface {
	Status() Status
	Options() Options
	Area() grid.Area
	StateCh() chan Status
	AddTemplate(tmpl Template)
	Templates() []Template
	SettleTemplate(name string) error
	SettleWithRandomData()
	Settle(vc [][]int) error
	InverseCell(x int, y int) error
	RegisterViewer(v Viewer)
	Run()
	Stop()
	ToggleRun()
	Step()
	Clear()
	Close()
}

//Options represents the Universe's configurable options
type Options struct {
	Size            int
	Engine          grid.Engine
	Interval        time.Duration
	MaxSteps        int
	MaxSkippedTicks int
	HaltOnStable    bool
	Seed            int64
	Advanced        map[string]interface{} //advanced options (engine specific)
}

//Status represents the status of the Universe at concrete moment
type Status struct {
	IterationNum  int
	RunningMode   RunningState
	LiveCells     int
	IterationTime time.Duration
	Stagnant      bool //the last generation repeats one of the recent ones
	Details       map[string]interface{} //advanced details (engine specific), read only
}

//Viewer is the interface to any Viewer - the object who can display simulation data or control the engine
type Viewer interface {
	Refresh()
	Register(u Universe)
	Start()
}

//Template represent the seeding template which can used to settle the universe with predefined data
type Template struct {
	Name        string  //template name
	Descr       string  //template descr
	Coordinates [][]int //array of [x,y] coordinates
}

//RunningState is the universe running status at the concrete moment
type RunningState int

//default options
const (
	DefSimulationInterval = time.Millisecond * 100
	DefMaxSteps           = 1000
	DefSize               = 35
	DefMaxSkippedTicks    = 5
	DefHistoryDepth       = 3
)

const (
	RunningStateManual   RunningState = 0x0
	RunningStateStep     RunningState = 0x1
	RunningStateRun      RunningState = 0x2
	RunningStateFinished RunningState = 0x3
)

func (s RunningState) String() string {
	switch s {
	case RunningStateManual:
		return "waiting"
	case RunningStateStep:
		return "do the step"
	case RunningStateRun:
		return "running"
	case RunningStateFinished:
		return "finished"
	}
	return "unknown"
}

//DefaultOptions returns the options of the batch simulation
func DefaultOptions() Options {
	return Options{
		Size:            DefSize,
		Engine:          grid.EngineFresh,
		Interval:        DefSimulationInterval,
		MaxSteps:        DefMaxSteps,
		MaxSkippedTicks: DefMaxSkippedTicks,
		HaltOnStable:    true,
	}
}
