package main

import (
	"fmt"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"time"

	"github.com/integrii/flaggy"

	"golife/src/pattern"
	"golife/src/universe"
	"golife/src/view"
)

var engines = map[string]universe.StepFunc{
	"simple":   (*universe.Grid).Step,
	"parallel": (*universe.Grid).StepParallel,
}

type cliOptions struct {
	interval time.Duration
	engine   string
	paused   bool
	batch    bool
	steps    int

	seed    int64
	density float64
	width   int
	height  int

	path string

	random *flaggy.Subcommand
	file   *flaggy.Subcommand
}

func main() {
	o := initOptions()

	grid, err := buildGrid(o)
	if err != nil {
		fail(err)
	}

	d := universe.NewDriver(grid, &universe.Options{
		Interval:       o.interval,
		StartPaused:    o.paused,
		MaxSteps:       batchSteps(o),
		StopWhenStable: o.batch,
		Step:           engines[o.engine],
	})

	if o.batch {
		out := view.NewConsoleOut(o.steps)
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigCh
			out.Interrupt()
		}()
		d.Run(out)
		return
	}

	ui, err := view.NewConsoleUI()
	if err != nil {
		fail(err)
	}
	go d.Run(ui)
	if err := ui.Start(); err != nil {
		fail(err)
	}
}

func initOptions() *cliOptions {
	o := &cliOptions{
		interval: universe.DefInterval,
		engine:   "simple",
		steps:    universe.DefMaxSteps,
		seed:     universe.DefSeed,
		density:  universe.DefDensity,
		width:    universe.DefWidth,
		height:   universe.DefHeight,
	}

	flaggy.SetName("golife")
	flaggy.SetDescription("Conway's Game of Life in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true

	flaggy.Duration(&o.interval, "i", "interval", "Delay between generations in format the number with 'ms' suffix, for example 100ms")
	flaggy.String(&o.engine, "e", "engine", "Step engine ["+strings.Join(engineNames(), "|")+"]")
	flaggy.Bool(&o.paused, "P", "paused", "Start the simulation paused")
	flaggy.Bool(&o.batch, "b", "batch", "Run without the interactive UI")
	flaggy.Int(&o.steps, "m", "steps", "Generations to simulate in batch mode")

	o.random = flaggy.NewSubcommand("random")
	o.random.Description = "Seed the universe with random cells"
	o.random.Int64(&o.seed, "s", "seed", "Seed for the random generator")
	o.random.Float64(&o.density, "D", "density", "Fraction of alive cells, in range [0,1]")
	o.random.Int(&o.width, "x", "width", "Width of the universe")
	o.random.Int(&o.height, "y", "height", "Height of the universe")
	flaggy.AttachSubcommand(o.random, 1)

	o.file = flaggy.NewSubcommand("file")
	o.file.Description = "Load the universe from a plaintext cell file"
	o.file.String(&o.path, "p", "path", "Path to the pattern file")
	flaggy.AttachSubcommand(o.file, 1)

	flaggy.Parse()

	if _, ok := engines[o.engine]; !ok {
		flaggy.ShowHelpAndExit("unknown engine")
	}
	if o.file.Used && o.path == "" {
		flaggy.ShowHelpAndExit("file mode requires --path")
	}
	if o.batch && o.steps < 1 {
		flaggy.ShowHelpAndExit("batch mode requires a positive --steps")
	}

	return o
}

//buildGrid produces the initial universe
//without a subcommand it falls back to a random universe with default seed
func buildGrid(o *cliOptions) (*universe.Grid, error) {
	if o.file.Used {
		return pattern.ParseFile(o.path)
	}
	return universe.Random(o.width, o.height, o.seed, o.density)
}

//batchSteps limits the generation count in batch mode only
func batchSteps(o *cliOptions) int {
	if o.batch {
		return o.steps
	}
	return 0
}

func engineNames() []string {
	names := make([]string, 0, len(engines))
	for k := range engines {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
