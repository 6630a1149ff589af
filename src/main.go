package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"

	"automaton/src/config"
	"automaton/src/universe"
	"automaton/src/view"
)

func main() {
	c, err := config.Parse(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	var stateCh chan universe.Status
	if c.Mode == config.ModeBatch {
		stateCh = make(chan universe.Status, 10) //the buffered channel to getting the universe status
	}

	u, err := newUniverse(c, stateCh)
	if err != nil {
		log.Fatal(err)
	}
	defer u.Close()

	switch c.Mode {
	case config.ModeConsole:
		v := view.NewConsoleUI()
		u.RegisterViewer(v)
		v.Start()
	case config.ModeWindow:
		v, err := view.NewWindow(view.NewLayout(c.Size, c.CellSize), c.FramesPerStep)
		if err != nil {
			log.Fatal(err)
		}
		u.RegisterViewer(v)
		v.Start()
	case config.ModeBatch:
		runBatch(u, stateCh)
	}
}

//newUniverse creates the universe and settles it with the configured data
func newUniverse(c config.Config, stateCh chan universe.Status) (*universe.BaseUniverse, error) {
	o := c.UniverseOptions()
	if c.Mode == config.ModeBatch && o.MaxSteps == 0 {
		o.MaxSteps = universe.DefMaxSteps
	}
	u, err := universe.NewBaseUniverse(o, stateCh)
	if err != nil {
		return nil, err
	}
	switch {
	case c.Random:
		u.SettleWithRandomData()
	case c.Template != "":
		if err = u.SettleTemplate(c.Template); err != nil {
			u.Close()
			return nil, errors.Wrap(err, "[newUniverse] failed to settle")
		}
	}
	return u, nil
}

//runBatch runs the simulation until it finishes, printing the progress
func runBatch(u universe.Universe, stateCh chan universe.Status) {
	v := view.NewConsoleOut()
	u.RegisterViewer(v)
	v.Start()

	startTime := time.Now()
	u.Run()
	for st := range stateCh {
		if st.RunningMode == universe.RunningStateFinished {
			totalTime := time.Since(startTime).Round(time.Millisecond)
			fmt.Printf("Finished, iteration is: %v, total running time: %v\n", st.IterationNum, totalTime)
			return
		}
	}
}
