package view

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"golife/src/universe"
)

type keyBinding struct {
	key      interface{}
	name     string
	descr    string
	handler  func(v *gocui.View) error
	viewName string
}

//ConsoleUI is the interactive terminal viewer
//it paints driver snapshots and translates keypresses into intents,
//it never touches the simulation state itself
type ConsoleUI struct {
	g       *gocui.Gui
	k       []keyBinding
	intents chan universe.Intent

	mu   sync.Mutex
	snap universe.Snapshot

	liveFiller string
	deadFiller string
}

var stateDescr = map[universe.State]string{
	universe.StateRunning: aurora.Colorize("running", aurora.CyanFg).String(),
	universe.StatePaused:  aurora.Colorize("paused", aurora.BlueFg).String(),
	universe.StateStopped: aurora.Colorize("stopped", aurora.RedFg).String(),
}

//NewConsoleUI creates the terminal viewer, taking over the terminal
func NewConsoleUI() (*ConsoleUI, error) {
	t := ConsoleUI{
		intents:    make(chan universe.Intent, 8),
		liveFiller: aurora.Green("█").BgBrightGreen().String(),
		deadFiller: "░",
	}

	var err error
	t.g, err = gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return nil, err
	}

	t.k = []keyBinding{
		{'q',
			"Q",
			"Quit",
			t.cmdQuit,
			""},
		{gocui.KeyCtrlC,
			"^C",
			"Quit",
			t.cmdQuit,
			""},
		{'p',
			"P",
			"Pause",
			t.cmdIntent(universe.IntentPause),
			""},
		{'r',
			"R",
			"Resume",
			t.cmdIntent(universe.IntentResume),
			""},
		{'n',
			"N",
			"Next step",
			t.cmdIntent(universe.IntentStep),
			""},
		{'+',
			"+",
			"Faster",
			t.cmdIntent(universe.IntentSpeedUp),
			""},
		{'-',
			"-",
			"Slower",
			t.cmdIntent(universe.IntentSpeedDown),
			""},
	}
	t.g.SetManagerFunc(t.layout)

	if err := t.initKeyBindings(t.k); err != nil {
		t.g.Close()
		return nil, err
	}

	return &t, nil
}

func (t *ConsoleUI) initKeyBindings(k []keyBinding) error {
	for _, kb := range k {
		h := kb.handler
		if err := t.g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, view *gocui.View) error { return h(view) }); err != nil {
			return err
		}
	}
	return nil
}

//Start runs the terminal main loop, blocking until the user quits
func (t *ConsoleUI) Start() error {
	defer t.g.Close()
	if err := t.g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

//Intents returns the stream of control intents produced by keypresses
func (t *ConsoleUI) Intents() <-chan universe.Intent {
	return t.intents
}

//Render stores the snapshot and schedules a repaint
//safe to call from the driver goroutine
func (t *ConsoleUI) Render(s universe.Snapshot) {
	t.mu.Lock()
	t.snap = s
	t.mu.Unlock()
	t.renderField()
	t.renderConfiguration()
	t.renderStatus()
}

func (t *ConsoleUI) snapshot() universe.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.snap
}

func (t *ConsoleUI) renderField() {
	t.g.Update(func(g *gocui.Gui) error {
		v, e := g.View("universe")
		if e != nil {
			return nil
		}
		//the entire field is redrawn at once
		v.Clear()

		s := t.snapshot()
		if s.Grid == nil {
			return nil
		}

		crop := false
		maxW, maxH := v.Size()
		if s.Grid.Width() > maxW || s.Grid.Height() > maxH {
			crop = true
		}

		var b bytes.Buffer
		for y := 0; y < s.Grid.Height(); y++ {
			if y >= maxH {
				break
			}
			if y != 0 {
				b.WriteByte(10)
			}
			if crop && y == (maxH-1) {
				b.WriteString(aurora.Red("The universe is larger than the viewing area").BgBlack().String())
				break
			}
			for x := 0; x < s.Grid.Width(); x++ {
				if x >= maxW {
					break
				}
				if s.Grid.IsAlive(x, y) {
					b.WriteString(t.liveFiller)
				} else {
					b.WriteString(t.deadFiller)
				}
			}
		}
		_, _ = fmt.Fprint(v, b.String())
		return nil
	})
}

func (t *ConsoleUI) renderStatus() {
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("status"); e == nil {
			s := t.snapshot()
			v.Clear()
			_, _ = fmt.Fprintln(v, t.renderProp("Generation", "%v", s.Generation))
			_, _ = fmt.Fprintln(v, t.renderProp("Live Cells", "%v", s.AliveCells))
			_, _ = fmt.Fprintln(v, t.renderProp("Step time", "%v", s.StepTime.Round(time.Microsecond)))
			_, _ = fmt.Fprintln(v, t.renderProp("Mode", "%v", stateDescr[s.State]))
		}
		return nil
	})
}

func (t *ConsoleUI) renderConfiguration() {
	t.g.Update(func(g *gocui.Gui) error {
		if v, e := g.View("configuration"); e == nil {
			s := t.snapshot()
			v.Clear()
			if s.Grid != nil {
				_, _ = fmt.Fprintln(v, t.renderProp("Dimension", "%v x %v", s.Grid.Width(), s.Grid.Height()))
			}
			_, _ = fmt.Fprintln(v, t.renderProp("Interval", "%v", s.Interval))
		}
		return nil
	})
}

func (t *ConsoleUI) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *ConsoleUI) layout(g *gocui.Gui) error {

	maxX, maxY := g.Size()
	leftColumnWidth := 28
	minWindowHeight := 12

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("universe")
		return nil

	} else {
		if _, err := t.headerLayout(g, 3, "Conway's Game of Life"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
		t.renderConfiguration()
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
		t.renderStatus()
	}

	if v, err := g.SetView("universe", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Universe"
		v.Frame = true
		t.renderField()
	} else {
		t.renderField()
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		b := bytes.Buffer{}
		b.WriteString("KEYBINDINGS: ")
		for i, k := range t.k {
			if i != 0 {
				b.WriteString(", ")
			}
			b.WriteString(aurora.Green(k.name).String())
			b.WriteString(": ")
			b.WriteString(k.descr)
		}
		_, _ = fmt.Fprintln(v, b.String())
	}

	return nil
}

func (t *ConsoleUI) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
	maxX, _ := g.Size()
	if v, err = g.SetView("header", -1, -1, maxX+1, height); err != nil {
		if err == gocui.ErrUnknownView && v != nil {
			v.Frame = false
			v.BgColor = gocui.ColorCyan
			v.FgColor = gocui.ColorBlack
		}
	}
	if v != nil {
		v.Clear()
		pad := 0
		if maxX > len(text) {
			pad = (maxX - len(text)) / 2
		}
		_, _ = fmt.Fprintln(v, strings.Repeat("\n", height/2+1)+strings.Repeat(" ", pad)+text)
	}
	return
}

//cmdIntent makes a key handler that forwards the intent to the driver
//the send never blocks the terminal loop, a busy driver drops the keypress
func (t *ConsoleUI) cmdIntent(in universe.Intent) func(v *gocui.View) error {
	return func(_ *gocui.View) error {
		select {
		case t.intents <- in:
		default:
		}
		return nil
	}
}

func (t *ConsoleUI) cmdQuit(_ *gocui.View) error {
	//quit must reach the driver, so this send waits
	t.intents <- universe.IntentQuit
	return gocui.ErrQuit
}
