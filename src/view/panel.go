package view

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jroimartin/gocui"
	"github.com/logrusorgru/aurora"

	"lifeterm/src/universe"
)

type runningMode int

const (
	modeWaiting runningMode = iota
	modeRunning
	modeFinished
)

const (
	leftColumnWidth = 28
	minWindowHeight = 20
)

type keyBindings struct {
	key      interface{}
	name     string
	descr    string
	handler  func(g *gocui.Gui) error
	viewName string
}

var (
	runningModeDescr = map[runningMode]string{
		modeWaiting:  aurora.Colorize("waiting", aurora.BlueFg).String(),
		modeRunning:  aurora.Colorize("running", aurora.CyanFg).String(),
		modeFinished: aurora.Colorize("finished", aurora.RedFg).String(),
	}
)

//PanelAnimator shows the board in the framed terminal UI with the configuration and status panes
//the board is stepped on a timer while running, or by the 'n' key
type PanelAnimator struct {
	interval time.Duration
	drawer   Drawer
	k        []keyBindings

	//the fields below are only touched from the gocui main loop
	b      *universe.Board
	status universe.Status
	mode   runningMode
}

//NewPanelAnimator creates the PanelAnimator, interval is the pause between steps in the running mode
func NewPanelAnimator(interval time.Duration) *PanelAnimator {
	if interval <= 0 {
		interval = DefInterval
	}
	t := PanelAnimator{
		interval: interval,
		drawer: Drawer{
			Live: aurora.Green("█").BgBrightGreen().String(),
			Dead: "░",
		},
		mode: modeRunning,
	}
	t.k = []keyBindings{
		{'q', "Q", "Exit", t.cmdQuit, ""},
		{gocui.KeyCtrlC, "^C", "Exit", t.cmdQuit, ""},
		{'n', "N", "Next step", t.cmdNextRound, ""},
		{'r', "R", "Run", t.cmdRun, ""},
		{'s', "S", "Stop", t.cmdStop, ""},
	}
	return &t
}

//Animate runs the UI until the quit key or the context cancellation
func (t *PanelAnimator) Animate(ctx context.Context, b *universe.Board) error {
	t.b = b
	t.status = universe.Status{Population: b.Population()}

	g, err := gocui.NewGui(gocui.OutputNormal)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer g.Close()

	g.SetManagerFunc(t.layout)
	if err := t.initKeyBindings(g, t.k); err != nil {
		return err
	}

	done := make(chan struct{})
	defer close(done)
	go t.tick(ctx, g, done)

	if err := g.MainLoop(); err != nil && err != gocui.ErrQuit {
		return err
	}
	return nil
}

//tick asks the main loop for a step every interval, the step itself runs inside gui.Update
func (t *PanelAnimator) tick(ctx context.Context, g *gocui.Gui, done chan struct{}) {
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ctx.Done():
			g.Update(t.cmdQuit)
			return
		case <-ticker.C:
			g.Update(func(g *gocui.Gui) error {
				if t.mode == modeRunning {
					t.step()
				}
				return t.refresh(g)
			})
		}
	}
}

func (t *PanelAnimator) initKeyBindings(g *gocui.Gui, k []keyBindings) error {
	for _, kb := range k {
		h := kb.handler
		if err := g.SetKeybinding(kb.viewName, kb.key, gocui.ModNone, func(gui *gocui.Gui, _ *gocui.View) error { return h(gui) }); err != nil {
			return err
		}
	}
	return nil
}

//step advances the board and finishes the run when nothing is alive or nothing changed
func (t *PanelAnimator) step() {
	prev, _ := universe.NewBoard(t.b.Width(), t.b.Height(), t.b.LiveCells())
	start := time.Now()
	t.b.Step()
	t.status.IterationTime = time.Since(start)
	t.status.Iteration++
	t.status.Population = t.b.Population()
	if t.status.Population == 0 || t.b.Equal(prev) {
		t.mode = modeFinished
	}
}

func (t *PanelAnimator) refresh(g *gocui.Gui) error {
	if v, e := g.View("battlefield"); e == nil {
		v.Clear()
		maxW, maxH := v.Size()
		_, _ = fmt.Fprint(v, t.renderField(maxW, maxH))
	}
	if v, e := g.View("status"); e == nil {
		v.Clear()
		_, _ = fmt.Fprint(v, t.renderStatus())
	}
	if v, e := g.View("configuration"); e == nil {
		v.Clear()
		_, _ = fmt.Fprint(v, t.renderConfiguration())
	}
	return nil
}

//renderField draws the part of the board fitting into maxW x maxH
//the last visible line is replaced by the warning when the board is cropped
func (t *PanelAnimator) renderField(maxW int, maxH int) string {
	crop := t.b.Width() > maxW || t.b.Height() > maxH
	w := t.b.Width()
	if w > maxW {
		w = maxW
	}

	var b bytes.Buffer
	for y := 0; y < t.b.Height() && y < maxH; y++ {
		//line feed char
		if y != 0 {
			b.WriteByte('\n')
		}
		if crop && y == maxH-1 {
			b.WriteString(aurora.Red("The field size is larger than the viewing area").BgBlack().String())
			break
		}
		b.WriteString(t.drawer.row(t.b, y, w))
	}
	return b.String()
}

func (t *PanelAnimator) renderStatus() string {
	var b strings.Builder
	b.WriteString(t.renderProp("Step", "%v", t.status.Iteration) + "\n")
	b.WriteString(t.renderProp("Live Cells", "%v", t.status.Population) + "\n")
	b.WriteString(t.renderProp("Evaluation time", "%v", t.status.IterationTime.Round(time.Microsecond)) + "\n")
	b.WriteString(t.renderProp("Mode", "%v", runningModeDescr[t.mode]) + "\n")
	return b.String()
}

func (t *PanelAnimator) renderConfiguration() string {
	var b strings.Builder
	b.WriteString(t.renderProp("Dimension", "%v x %v", t.b.Width(), t.b.Height()) + "\n")
	b.WriteString(t.renderProp("Interval", "%v", t.interval) + "\n")
	return b.String()
}

func (t *PanelAnimator) renderProp(name string, valueformat string, values ...interface{}) string {
	return fmt.Sprintf(" "+aurora.Colorize(name, aurora.GreenFg).String()+": "+valueformat, values...)
}

func (t *PanelAnimator) renderHelp() string {
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
	return b.String()
}

func (t *PanelAnimator) layout(g *gocui.Gui) error {
	maxX, maxY := g.Size()

	if maxY < minWindowHeight {
		if _, err := t.headerLayout(g, maxY, "Terminal height too small"); err != nil {
			if err != gocui.ErrUnknownView {
				return err
			}
		}
		_ = g.DeleteView("configuration")
		_ = g.DeleteView("status")
		_ = g.DeleteView("battlefield")
		_ = g.DeleteView("help")
		return nil
	}
	if _, err := t.headerLayout(g, 3, "This is \"The Life\" game simulation"); err != nil {
		if err != gocui.ErrUnknownView {
			return err
		}
	}

	if v, err := g.SetView("configuration", 0, 3, leftColumnWidth, 3+(maxY-5-3)/2); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Configuration"
		v.Frame = true
	}

	if v, err := g.SetView("status", 0, 3+(maxY-5-3)/2+1, leftColumnWidth, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Status"
		v.Frame = true
	}

	if v, err := g.SetView("battlefield", leftColumnWidth+1, 3, maxX-1, maxY-5); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Title = "Board"
		v.Frame = true
	}

	if v, err := g.SetView("help", -1, maxY-5, maxX, maxY-3); err != nil {
		if err != gocui.ErrUnknownView || v == nil {
			return err
		}
		v.Frame = false
		_, _ = fmt.Fprintln(v, t.renderHelp())
	}

	return t.refresh(g)
}

func (t *PanelAnimator) headerLayout(g *gocui.Gui, height int, text string) (v *gocui.View, err error) {
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

func (t *PanelAnimator) cmdQuit(_ *gocui.Gui) error {
	return gocui.ErrQuit
}

func (t *PanelAnimator) cmdNextRound(g *gocui.Gui) error {
	if t.mode != modeRunning {
		t.step()
	}
	return t.refresh(g)
}

func (t *PanelAnimator) cmdRun(g *gocui.Gui) error {
	if t.mode == modeWaiting {
		t.mode = modeRunning
	}
	return t.refresh(g)
}

func (t *PanelAnimator) cmdStop(g *gocui.Gui) error {
	if t.mode == modeRunning {
		t.mode = modeWaiting
	}
	return t.refresh(g)
}
