package universe

import (
	"testing"

	"automaton/src/grid"
)

const benchSize = 200

var testTemplate = Template{"ts1", "", [][]int{{1, 1}, {1, 2}, {2, 1}, {2, 2}, {3, 3}, {4, 2}, {4, 3}, {5, 3}}}

func universeStep(u Universe, b *testing.B) {
	u.AddTemplate(testTemplate)
	stateCh := u.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u.Clear()
		<-stateCh //wait for finish
		if err := u.SettleTemplate("ts1"); err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		u.Step()
		for {
			st := <-stateCh
			if st.RunningMode == RunningStateManual {
				break
			}
		}
	}
	u.Close()
}

func universeRun(u Universe, b *testing.B) {
	u.AddTemplate(testTemplate)
	stateCh := u.StateCh()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		u.Clear()
		<-stateCh //wait for finish
		if err := u.SettleTemplate("ts1"); err != nil {
			b.Fatal(err)
		}
		b.StartTimer()
		u.Run()
		for {
			st := <-stateCh
			if st.RunningMode == RunningStateFinished {
				break
			}
		}
	}
	u.Close()
}

func newBenchUniverse(b *testing.B, e grid.Engine) Universe {
	o := DefaultOptions()
	o.Interval = 0
	o.Size = benchSize
	o.Engine = e
	o.MaxSteps = 100
	o.HaltOnStable = false
	u, err := NewBaseUniverse(o, make(chan Status, 10))
	if err != nil {
		b.Fatal(err)
	}
	return u
}

func Benchmark_Step(b *testing.B) {
	for _, e := range grid.Engines() {
		b.Run(string(e), func(b *testing.B) {
			universeStep(newBenchUniverse(b, e), b)
		})
	}
}

func Benchmark_Universe(b *testing.B) {
	for _, e := range grid.Engines() {
		b.Run(string(e), func(b *testing.B) {
			universeRun(newBenchUniverse(b, e), b)
		})
	}
}
