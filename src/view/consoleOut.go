package view

import (
	"fmt"
	"time"

	"github.com/cheggaaa/pb/v3"

	"golife/src/universe"
)

//ConsoleOut is the non-interactive viewer for batch runs
//it shows a progress bar over the planned generations and a summary on finish
type ConsoleOut struct {
	intents   chan universe.Intent
	bar       *pb.ProgressBar
	startTime time.Time
	started   bool
}

func NewConsoleOut(totalSteps int) *ConsoleOut {
	return &ConsoleOut{
		intents: make(chan universe.Intent, 1),
		bar:     pb.New(totalSteps),
	}
}

//Intents returns the batch control channel, only Interrupt writes to it
func (c *ConsoleOut) Intents() <-chan universe.Intent {
	return c.intents
}

//Interrupt asks the driver to stop, used on process signals
func (c *ConsoleOut) Interrupt() {
	select {
	case c.intents <- universe.IntentQuit:
	default:
	}
}

func (c *ConsoleOut) Render(s universe.Snapshot) {
	if !c.started {
		c.started = true
		c.startTime = time.Now()
		fmt.Println("Simulation started...")
		c.bar.Start()
	}
	c.bar.SetCurrent(int64(s.Generation))
	if s.State == universe.StateStopped {
		c.bar.Finish()
		totalTime := time.Since(c.startTime).Round(time.Millisecond)
		fmt.Println("Finished:")
		fmt.Printf("  Generations: %v\n", s.Generation)
		fmt.Printf("  Live cells: %v\n", s.AliveCells)
		fmt.Printf("  Total time: %v\n", totalTime)
	}
}
