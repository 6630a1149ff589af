package view

import (
	"bytes"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"automaton/src/universe"
)

//syncBuffer is written from the universe's goroutine and read by the test
type syncBuffer struct {
	b bytes.Buffer
	sync.Mutex
}

func (s *syncBuffer) Write(p []byte) (int, error) {
	s.Lock()
	defer s.Unlock()
	return s.b.Write(p)
}

func (s *syncBuffer) String() string {
	s.Lock()
	defer s.Unlock()
	return s.b.String()
}

func TestConsoleOut(t *testing.T) {
	o := universe.DefaultOptions()
	o.Size = 8
	o.Interval = 0
	o.MaxSteps = 4
	o.HaltOnStable = false
	u, err := universe.NewBaseUniverse(o, nil)
	require.NoError(t, err)
	defer u.Close()
	require.NoError(t, u.SettleTemplate("blinker"))

	out := &syncBuffer{}
	c := NewConsoleOutTo(out, 2)
	u.RegisterViewer(c)
	c.Start()

	header := out.String()
	require.Contains(t, header, "Dimension: 8 x 8")
	require.Contains(t, header, "Max iterations: 4 steps")
	require.Contains(t, header, "engine: fresh")
	require.Contains(t, header, "Simulation started...")

	u.Run()
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "Last iteration: 4")
	}, 5*time.Second, time.Millisecond)

	report := out.String()
	require.Contains(t, report, "Iterations done: 2, live cells: 3")
	require.NotContains(t, report, "Iterations done: 1,")
	require.Contains(t, report, "Live cells: 3")
	require.Contains(t, report, "Finished:")
	require.Contains(t, report[strings.Index(report, "Finished:"):], "engine: fresh")
}
