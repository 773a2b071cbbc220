package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	astar "github.com/pdrpinto/gridastar"
)

// Canvas is the part of tcell.Screen the viewer draws on.
type Canvas interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Styles colours the viewer's cells.
type Styles struct {
	Empty, Obstacle, Open, Closed, Current, Path, Endpoint, Status tcell.Style
}

// DefaultStyles returns the viewer's default palette.
func DefaultStyles() Styles {
	return Styles{
		Empty:    tcell.StyleDefault.Foreground(tcell.ColorGray),
		Obstacle: tcell.StyleDefault.Foreground(tcell.ColorWhite),
		Open:     tcell.StyleDefault.Foreground(tcell.ColorYellow),
		Closed:   tcell.StyleDefault.Foreground(tcell.ColorBlue),
		Current:  tcell.StyleDefault.Foreground(tcell.ColorRed).Reverse(true),
		Path:     tcell.StyleDefault.Foreground(tcell.ColorGreen),
		Endpoint: tcell.StyleDefault.Foreground(tcell.ColorPurple),
		Status:   tcell.StyleDefault,
	}
}

// Viewer glyphs for search state.
const (
	GlyphOpen   = 'o'
	GlyphClosed = '+'
)

// Viewer shows a search in progress on a terminal, one expansion per key
// press. Each cell takes two columns; the status line sits below the grid.
type Viewer struct {
	Styles Styles

	grid        *astar.Grid
	stepper     *astar.Stepper
	start, goal astar.Position
	last        astar.StepSnapshot
}

// NewViewer returns a viewer for a search from start to goal on g.
func NewViewer(g *astar.Grid, start, goal astar.Position) (*Viewer, error) {
	stepper, err := astar.NewStepper(g, start, goal)
	if err != nil {
		return nil, err
	}
	return &Viewer{
		Styles:  DefaultStyles(),
		grid:    g,
		stepper: stepper,
		start:   start,
		goal:    goal,
	}, nil
}

// Snapshot returns the state after the most recent step.
func (v *Viewer) Snapshot() astar.StepSnapshot { return v.last }

// HandleKey applies a key press: space or 'n' steps, enter runs the search
// to the end, and 'q', Esc or Ctrl-C quit. It reports whether to quit.
func (v *Viewer) HandleKey(key tcell.Key, r rune) (quit bool) {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyEnter:
		v.stepper.Run()
		v.last = v.stepper.Step()
	case tcell.KeyRune:
		switch r {
		case 'q':
			return true
		case ' ', 'n':
			v.last = v.stepper.Step()
		}
	}
	return false
}

// Draw paints the grid, the search state and the status line on c.
func (v *Viewer) Draw(c Canvas) {
	state := make(map[astar.Position]rune)
	for _, p := range v.stepper.Closed() {
		state[p] = GlyphClosed
	}
	for _, p := range v.stepper.Open() {
		state[p] = GlyphOpen
	}
	for _, p := range v.last.Path {
		state[p] = GlyphPath
	}

	for p, blocked := range v.grid.Cells() {
		r, style := GlyphEmpty, v.Styles.Empty
		switch {
		case blocked:
			r, style = GlyphObstacle, v.Styles.Obstacle
		case p == v.start:
			r, style = GlyphStart, v.Styles.Endpoint
		case p == v.goal:
			r, style = GlyphGoal, v.Styles.Endpoint
		case v.last.StepIndex > 0 && !v.last.Done && p == v.last.Current:
			r, style = state[p], v.Styles.Current
		default:
			if s, ok := state[p]; ok {
				r = s
				switch s {
				case GlyphPath:
					style = v.Styles.Path
				case GlyphOpen:
					style = v.Styles.Open
				case GlyphClosed:
					style = v.Styles.Closed
				}
			}
		}
		c.SetContent(2*p.Col, p.Row, r, nil, style)
		c.SetContent(2*p.Col+1, p.Row, ' ', nil, v.Styles.Empty)
	}

	drawString(c, 0, v.grid.Rows()+1, v.status(), v.Styles.Status)
}

func (v *Viewer) status() string {
	snap := v.last
	var outcome string
	switch {
	case snap.Found:
		outcome = fmt.Sprintf("found, %d moves", snap.Path.Len())
	case snap.Done:
		outcome = "no path"
	default:
		outcome = "searching"
	}
	return fmt.Sprintf("step %d  open %d  %s  [space] step  [enter] run  [q] quit",
		snap.StepIndex, snap.OpenSize, outcome)
}

// Run draws and handles input on screen until the user quits. The caller
// owns screen and must have initialised it.
func (v *Viewer) Run(screen tcell.Screen) {
	for {
		screen.Clear()
		v.Draw(screen)
		screen.Show()

		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if v.HandleKey(ev.Key(), ev.Rune()) {
				return
			}
		}
	}
}

func drawString(c Canvas, x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.SetContent(x, y, r, nil, style)
		x++
	}
}
