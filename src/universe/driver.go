package universe

import "time"

//The driver running state at the concrete moment
type State int

const (
	StateRunning State = iota
	StatePaused
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	}
	return "unknown"
}

//Intent is a control request produced by a Viewer and consumed by the Driver
//all simulation state changes are mediated through these transitions
type Intent int

const (
	IntentPause Intent = iota
	IntentResume
	IntentStep
	IntentQuit
	IntentSpeedUp
	IntentSpeedDown
)

//default options
const (
	DefInterval = time.Millisecond * 100
	MinInterval = time.Millisecond * 10
	MaxInterval = time.Second * 2
	DefMaxSteps = 1000
	DefWidth    = 40
	DefHeight   = 15
	DefDensity  = 0.5
	DefSeed     = 1
)

//Options represents the driver's configurable options
type Options struct {
	Interval       time.Duration //delay between generations
	StartPaused    bool          //start in StatePaused instead of StateRunning
	MaxSteps       int           //stop after this many generations, 0 means unlimited
	StopWhenStable bool          //stop when a generation leaves the grid unchanged
	Step           StepFunc      //step engine, Grid.Step when nil
}

var DefaultOptions = Options{
	Interval: DefInterval,
}

//Snapshot represents the simulation at a concrete moment, as handed to viewers
type Snapshot struct {
	Grid       *Grid
	Generation int
	State      State
	Interval   time.Duration
	AliveCells int
	StepTime   time.Duration
}

//Viewer is the interface to any viewer - the object who can display
//simulation data and produce control intents
//a viewer never mutates the simulation directly
type Viewer interface {
	Render(s Snapshot)
	Intents() <-chan Intent
}

//Driver owns the current grid, the generation counter and the running state
//no other component mutates them
type Driver struct {
	grid           *Grid
	generation     int
	state          State
	interval       time.Duration
	maxSteps       int
	stopWhenStable bool
	step           StepFunc
	stepTime       time.Duration
}

//NewDriver creates the driver owning the given grid
func NewDriver(g *Grid, o *Options) *Driver {
	if o == nil {
		o = &DefaultOptions
	}
	d := &Driver{
		grid:           g,
		state:          StateRunning,
		interval:       o.Interval,
		maxSteps:       o.MaxSteps,
		stopWhenStable: o.StopWhenStable,
		step:           o.Step,
	}
	if d.interval <= 0 {
		d.interval = DefInterval
	}
	if d.step == nil {
		d.step = (*Grid).Step
	}
	if o.StartPaused {
		d.state = StatePaused
	}
	return d
}

//Grid returns the current generation's grid
func (d *Driver) Grid() *Grid {
	return d.grid
}

//Generation returns the number of generations applied so far
func (d *Driver) Generation() int {
	return d.generation
}

//State returns the current running state
func (d *Driver) State() State {
	return d.state
}

//Interval returns the current delay between generations
func (d *Driver) Interval() time.Duration {
	return d.interval
}

//Snapshot captures the current simulation state for rendering
func (d *Driver) Snapshot() Snapshot {
	return Snapshot{
		Grid:       d.grid,
		Generation: d.generation,
		State:      d.state,
		Interval:   d.interval,
		AliveCells: d.grid.AliveCells(),
		StepTime:   d.stepTime,
	}
}

//Apply performs one state machine transition
//intents that do not apply to the current state are ignored
//StateStopped is terminal, nothing leaves it
func (d *Driver) Apply(in Intent) {
	if d.state == StateStopped {
		return
	}
	switch in {
	case IntentPause:
		if d.state == StateRunning {
			d.state = StatePaused
		}
	case IntentResume:
		if d.state == StatePaused {
			d.state = StateRunning
		}
	case IntentStep:
		//a single step is only meaningful while paused and keeps the driver paused
		if d.state == StatePaused {
			d.advance()
		}
	case IntentQuit:
		d.state = StateStopped
	case IntentSpeedUp:
		d.setInterval(d.interval / 2)
	case IntentSpeedDown:
		d.setInterval(d.interval * 2)
	}
}

//Tick advances one generation when running, no-op in any other state
func (d *Driver) Tick() {
	if d.state != StateRunning {
		return
	}
	d.advance()
}

//Run drives the simulation loop until the driver is stopped
//each cycle waits for the next tick deadline or a viewer intent, whichever
//comes first, then renders a snapshot, so viewers never observe a partial
//generation
func (d *Driver) Run(v Viewer) {
	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()
	v.Render(d.Snapshot())
	for d.state != StateStopped {
		select {
		case <-ticker.C:
			d.Tick()
		case in, ok := <-v.Intents():
			if !ok {
				d.Apply(IntentQuit)
				break
			}
			prev := d.interval
			d.Apply(in)
			if d.interval != prev {
				ticker.Reset(d.interval)
			}
		}
		v.Render(d.Snapshot())
	}
}

//advance applies exactly one generation and checks the stop conditions
func (d *Driver) advance() {
	start := time.Now()
	next := d.step(d.grid)
	d.stepTime = time.Since(start)
	changed := !d.grid.Equal(next)
	d.grid = next
	d.generation++
	if d.maxSteps > 0 && d.generation >= d.maxSteps {
		d.state = StateStopped
	}
	if d.stopWhenStable && !changed {
		d.state = StateStopped
	}
}

//setInterval clamps and stores the delay between generations
func (d *Driver) setInterval(interval time.Duration) {
	if interval < MinInterval {
		interval = MinInterval
	}
	if interval > MaxInterval {
		interval = MaxInterval
	}
	d.interval = interval
}
