package view

import (
	"fmt"
	"io"
	"os"
	"sort"
	"time"

	"github.com/logrusorgru/aurora"

	"automaton/src/universe"
)

//ConsoleOut prints the progress of the batch simulation
type ConsoleOut struct {
	u         universe.Universe
	out       io.Writer
	startTime time.Time
	every     int
}

//NewConsoleOut creates the viewer writing to stdout
func NewConsoleOut() *ConsoleOut {
	return NewConsoleOutTo(os.Stdout, 10)
}

//NewConsoleOutTo creates the viewer writing to out, progress is reported every n iterations
func NewConsoleOutTo(out io.Writer, every int) *ConsoleOut {
	if every <= 0 {
		every = 1
	}
	return &ConsoleOut{out: out, every: every}
}

//Refresh implements universe.Viewer
func (c *ConsoleOut) Refresh() {
	st := c.u.Status()
	switch st.RunningMode {
	case universe.RunningStateFinished:
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		resultData := map[string]interface{}{
			"Last iteration": st.IterationNum,
			"Total time":     totalTime,
			"Live cells":     st.LiveCells,
			"Stable":         st.Stagnant,
		}
		for k, v := range st.Details {
			resultData[k] = v
		}
		_, _ = fmt.Fprintln(c.out, aurora.Red("\nFinished:"))
		c.printHashData(resultData)
	case universe.RunningStateRun:
		if st.IterationNum%c.every == 0 {
			_, _ = fmt.Fprintf(c.out, "  Iterations done: %v, live cells: %v\n", st.IterationNum, st.LiveCells)
		}
	}
}

//Register implements universe.Viewer and prints the configuration
func (c *ConsoleOut) Register(u universe.Universe) {
	c.u = u
	o := c.u.Options()
	_, _ = fmt.Fprintln(c.out, aurora.Green("Running configuration:"))
	_, _ = fmt.Fprintf(c.out, "  Dimension: %v x %v\n", o.Size, o.Size)
	_, _ = fmt.Fprintf(c.out, "  Interval: %v\n", o.Interval)
	_, _ = fmt.Fprintf(c.out, "  Max iterations: %v steps\n", o.MaxSteps)
	c.printHashData(o.Advanced)
}

//Start implements universe.Viewer
func (c *ConsoleOut) Start() {
	c.startTime = time.Now()
	_, _ = fmt.Fprintln(c.out, "\nSimulation started...")
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.out, "  %s: %v\n", propName, d[propName])
	}
}
