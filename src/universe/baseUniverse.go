package universe

import (
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	"github.com/pkg/errors"

	"automaton/src/grid"
)

//BaseUniverse is the universe's engine
//implements Universe interface
//owns the grid and serializes all access to it in the main loop goroutine
type BaseUniverse struct {
	options Options
	state   struct {
		Status
		sync.Mutex
	}
	area struct {
		*grid.Grid
		sync.Mutex
	}
	templates struct {
		m map[string]Template
		sync.Mutex
	}
	history   []string      //fingerprints of the recent generations, touched by the main loop only
	runCh     chan struct{} //closed when the current run ends, touched by the main loop only
	rng       *rand.Rand
	stateCh   chan Status
	views     []Viewer
	controlCh chan func()
	closeCh   chan struct{}
	closeOnce sync.Once
	done      chan struct{}
}

//NewBaseUniverse creates the BaseUniverse instance and starts its main loop
//stateCh may be nil, otherwise the caller has to read every Status written to it
func NewBaseUniverse(o Options, stateCh chan Status) (*BaseUniverse, error) {
	g, err := grid.NewWithEngine(o.Size, o.Engine)
	if err != nil {
		return nil, errors.Wrap(err, "[NewBaseUniverse] failed to create the grid")
	}
	o.Advanced = map[string]interface{}{
		"engine": string(o.Engine),
	}
	if o.HaltOnStable {
		o.Advanced["halt on stable"] = true
	}

	u := &BaseUniverse{
		options:   o,
		rng:       rand.New(rand.NewPCG(uint64(o.Seed), 0)),
		controlCh: make(chan func(), 1),
		closeCh:   make(chan struct{}),
		done:      make(chan struct{}),
		stateCh:   stateCh,
	}
	u.area.Grid = g
	u.state.Details = map[string]interface{}{
		"engine": string(o.Engine),
	}
	u.templates.m = map[string]Template{}
	for _, t := range DefaultTemplates() {
		u.templates.m[t.Name] = t
	}
	go u.mainLoop()
	return u, nil
}

//AddTemplate adds the seeding template to the internal storage
//the universe can be populated with this template by call SettleTemplate
func (u *BaseUniverse) AddTemplate(tmpl Template) {
	u.templates.Lock()
	u.templates.m[tmpl.Name] = tmpl
	u.templates.Unlock()
}

//Templates returns all known templates sorted by name
func (u *BaseUniverse) Templates() []Template {
	u.templates.Lock()
	defer u.templates.Unlock()
	tt := make([]Template, 0, len(u.templates.m))
	for _, t := range u.templates.m {
		tt = append(tt, t)
	}
	sort.Slice(tt, func(i, j int) bool { return tt[i].Name < tt[j].Name })
	return tt
}

//Settle settles the universe with data
//vc - array of x,y coordinates, nothing is settled if any of them is invalid
func (u *BaseUniverse) Settle(vc [][]int) error {
	return u.call(func() error {
		if err := u.settle(vc); err != nil {
			return err
		}
		u.refreshView()
		return nil
	})
}

//SettleTemplate populates the universe with the seeding template
func (u *BaseUniverse) SettleTemplate(name string) error {
	u.templates.Lock()
	tmpl, ok := u.templates.m[name]
	u.templates.Unlock()
	if !ok {
		return errors.Wrapf(ErrUnknownTemplate, "%q", name)
	}
	return errors.Wrapf(u.Settle(tmpl.Coordinates), "template %q", name)
}

//SettleWithRandomData clears the universe and populates it with random data, returns immediately
//ignored while the simulation is running
func (u *BaseUniverse) SettleWithRandomData() {
	u.exec(func() {
		mode := u.mode()
		if mode != RunningStateManual && mode != RunningStateFinished {
			return
		}
		u.clear()
		u.area.Lock()
		size := u.area.Size()
		for i := 0; i < size*size; i++ {
			_ = u.area.Set(u.rng.IntN(size), u.rng.IntN(size), true)
		}
		liveCells := u.area.LiveCells()
		u.area.Unlock()
		u.state.Lock()
		u.state.LiveCells = liveCells
		u.state.Unlock()
		u.refreshView()
	})
}

//InverseCell inverses the cell state at point x, y
func (u *BaseUniverse) InverseCell(x int, y int) error {
	return u.call(func() error {
		u.area.Lock()
		err := u.area.Toggle(x, y)
		liveCells := u.area.LiveCells()
		u.area.Unlock()
		if err != nil {
			return err
		}
		u.touched(liveCells)
		u.refreshView()
		return nil
	})
}

//RegisterViewer registers the viewer - the universe will call the viewer when the state is changed
//the viewer is registered before it is added to the list so its first Refresh sees the universe
func (u *BaseUniverse) RegisterViewer(v Viewer) {
	v.Register(u)
	_ = u.call(func() error {
		u.views = append(u.views, v)
		return nil
	})
}

//StateCh returns the channel with the universe's status updates
func (u *BaseUniverse) StateCh() chan Status {
	return u.stateCh
}

//Status returns current universe status represented by Status struct
func (u *BaseUniverse) Status() Status {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.Status
}

//Options returns current universe configuration represented by Options struct
func (u *BaseUniverse) Options() Options {
	return u.options
}

//Area returns the copy of the current generation
func (u *BaseUniverse) Area() grid.Area {
	u.area.Lock()
	defer u.area.Unlock()
	return u.area.Snapshot()
}

//Run starts the universe simulation, returns immediately
func (u *BaseUniverse) Run() {
	u.exec(u.run)
}

//Stop stops the universe simulation, returns immediately
//the Status struct will be written the stateCh on finish
func (u *BaseUniverse) Stop() {
	u.exec(u.stop)
}

//ToggleRun starts the stopped simulation or stops the running one, returns immediately
func (u *BaseUniverse) ToggleRun() {
	u.exec(func() {
		if u.mode() == RunningStateRun {
			u.stop()
		} else {
			u.run()
		}
	})
}

//Step do one simulation step, returns immediately
//the Status struct will be written to the stateCh on start and on finish
func (u *BaseUniverse) Step() {
	u.exec(u.step)
}

//Clear clears the universe (kill all cells and reset all counters), returns immediately
//the Status struct will be written to the stateCh on finish
func (u *BaseUniverse) Clear() {
	u.exec(u.clear)
}

//Close stops the main loop and the running simulation, returns immediately
func (u *BaseUniverse) Close() {
	u.closeOnce.Do(func() {
		close(u.closeCh)
	})
}

//mainLoop - the main cycle, should start as a goroutine
//waits for command and executes
func (u *BaseUniverse) mainLoop() {
	defer close(u.done)
	for {
		select {
		case cmd := <-u.controlCh:
			cmd()
		case <-u.closeCh:
			return
		}
	}
}

//exec queues the command for the main loop, returns false if the universe is closed
func (u *BaseUniverse) exec(cmd func()) bool {
	select {
	case u.controlCh <- cmd:
		return true
	case <-u.done:
		return false
	}
}

//call executes the command in the main loop and waits for its result
//must not be called from the main loop itself
func (u *BaseUniverse) call(cmd func() error) error {
	res := make(chan error, 1)
	if !u.exec(func() { res <- cmd() }) {
		return ErrClosed
	}
	select {
	case err := <-res:
		return err
	case <-u.done:
		return ErrClosed
	}
}

//settle places live cells at all coordinates of vc
func (u *BaseUniverse) settle(vc [][]int) error {
	u.area.Lock()
	size := u.area.Size()
	for _, v := range vc {
		if len(v) != 2 {
			u.area.Unlock()
			return errors.Wrapf(ErrBadCoordinates, "%v", v)
		}
		if v[0] < 0 || v[1] < 0 || v[0] >= size || v[1] >= size {
			u.area.Unlock()
			return errors.Wrapf(grid.ErrOutOfBounds, "(%d,%d) on %dx%d grid", v[0], v[1], size, size)
		}
	}
	for _, v := range vc {
		_ = u.area.Set(v[0], v[1], true)
	}
	liveCells := u.area.LiveCells()
	u.area.Unlock()
	u.touched(liveCells)
	return nil
}

//touched records the edit of the cells made outside of the simulation
func (u *BaseUniverse) touched(liveCells int) {
	u.history = u.history[:0]
	u.state.Lock()
	u.state.LiveCells = liveCells
	u.state.Stagnant = false
	u.state.Unlock()
}

func (u *BaseUniverse) mode() RunningState {
	u.state.Lock()
	defer u.state.Unlock()
	return u.state.RunningMode
}

//switchRunningState switch the state of the universe to RunningState
//also writes the new state to the stateCh to signal upper control software
func (u *BaseUniverse) switchRunningState(to RunningState) {
	u.state.Lock()
	u.state.RunningMode = to
	st := u.state.Status
	u.state.Unlock()
	if u.stateCh != nil {
		select {
		case u.stateCh <- st:
		case <-u.closeCh:
		}
	}
}

//run starts the universe simulation
//simulation will stop on Stop() calling or when the boundary conditions are reached
func (u *BaseUniverse) run() {
	if u.mode() == RunningStateRun {
		return
	}
	u.endRun()
	u.runCh = make(chan struct{})
	u.switchRunningState(RunningStateRun)
	go u.runLoop(u.runCh)
}

//endRun releases the run loop of the current run if any
func (u *BaseUniverse) endRun() {
	if u.runCh != nil {
		close(u.runCh)
		u.runCh = nil
	}
}

//runLoop feeds the main loop with one step command per interval until runCh is closed
//a tick which comes while the previous step is still calculated is skipped,
//too many skipped ticks in a row finish the run
func (u *BaseUniverse) runLoop(runCh chan struct{}) {
	var ticks <-chan time.Time
	if u.options.Interval > 0 {
		ticker := time.NewTicker(u.options.Interval)
		defer ticker.Stop()
		ticks = ticker.C
	}
	skipped := 0
	var stepped chan struct{}
	for {
		select {
		case <-runCh:
			return
		case <-u.done:
			return
		default:
		}
		if stepped != nil && ticks == nil {
			//no interval: the next step starts right after the previous one
			select {
			case <-stepped:
			case <-runCh:
				return
			case <-u.done:
				return
			}
		}
		if stepped != nil {
			select {
			case <-stepped:
				skipped = 0
			default:
				skipped++
				if skipped > u.options.MaxSkippedTicks {
					u.exec(func() {
						if u.runCh == runCh {
							u.endRun()
							u.switchRunningState(RunningStateFinished)
						}
					})
					return
				}
			}
		}
		if skipped == 0 {
			done := make(chan struct{})
			ok := u.exec(func() {
				defer close(done)
				//the run could be stopped while this command was waiting in the queue
				if u.runCh == runCh {
					u.step()
				}
			})
			if !ok {
				return
			}
			stepped = done
		}
		if ticks != nil {
			select {
			case <-ticks:
			case <-runCh:
				return
			case <-u.done:
				return
			}
		}
	}
}

//stop stops the universe running cycle
func (u *BaseUniverse) stop() {
	if u.mode() == RunningStateRun {
		u.endRun()
		u.switchRunningState(RunningStateManual)
	}
}

//step calculates the next generation of the entire universe
func (u *BaseUniverse) step() {
	rm := u.mode()
	if rm == RunningStateFinished {
		rm = RunningStateManual
	}
	u.switchRunningState(RunningStateStep)

	u.area.Lock()
	start := time.Now()
	liveCells, changed := u.area.Step()
	elapsed := time.Since(start)
	repeated := false
	if u.options.HaltOnStable {
		repeated = u.remember(u.area.Fingerprint())
	}
	u.area.Unlock()

	u.state.Lock()
	u.state.IterationNum++
	u.state.LiveCells = liveCells
	u.state.IterationTime = elapsed
	u.state.Stagnant = !changed || repeated
	iteration := u.state.IterationNum
	u.state.Unlock()

	finished := u.options.MaxSteps != 0 && iteration >= u.options.MaxSteps
	if u.options.HaltOnStable && (liveCells == 0 || !changed || repeated) {
		finished = true
	}
	if finished {
		u.endRun()
		u.switchRunningState(RunningStateFinished)
	} else {
		u.switchRunningState(rm)
	}
	u.refreshView()
}

//remember adds the fingerprint to the history
//returns true if the same generation is already there
func (u *BaseUniverse) remember(fp string) bool {
	repeated := false
	for _, h := range u.history {
		if h == fp {
			repeated = true
			break
		}
	}
	u.history = append(u.history, fp)
	if len(u.history) > DefHistoryDepth {
		u.history = u.history[1:]
	}
	return repeated
}

//clear clears the universe data, reset all counters
func (u *BaseUniverse) clear() {
	u.area.Lock()
	u.area.Clear()
	u.area.Unlock()

	u.history = u.history[:0]
	u.state.Lock()
	u.state.IterationNum = 0
	u.state.LiveCells = 0
	u.state.IterationTime = 0
	u.state.Stagnant = false
	u.state.Unlock()
	u.endRun()
	u.switchRunningState(RunningStateManual)
	u.refreshView()
}

//refreshView calls Refresh event for all registered views
func (u *BaseUniverse) refreshView() {
	for _, v := range u.views {
		v.Refresh()
	}
}
