// Package terminal shows a finished grid in an interactive, scrollable
// terminal view built on tcell.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"shapegrid/canvas"
	"shapegrid/core"
)

// Viewer displays a grid on a tcell screen. The last screen row is a status
// line; the rest is a window onto the grid that the arrow keys (or hjkl)
// move around. q, Esc and Ctrl-C quit.
//
// A Viewer is driven from a single goroutine: Run owns the screen until it
// returns.
type Viewer struct {
	screen tcell.Screen
	grid   *canvas.Grid
	caps   Capabilities
	title  string

	offset core.Point

	gridStyle   tcell.Style
	statusStyle tcell.Style
}

// NewViewer creates a viewer for grid on an initialised screen.
func NewViewer(screen tcell.Screen, grid *canvas.Grid, caps Capabilities) *Viewer {
	v := &Viewer{
		screen:      screen,
		grid:        grid,
		caps:        caps,
		gridStyle:   tcell.StyleDefault,
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
	if caps.SupportsColor {
		v.statusStyle = tcell.StyleDefault.
			Background(tcell.ColorNavy).
			Foreground(tcell.ColorWhite)
	}
	return v
}

// SetTitle sets the text shown at the start of the status line.
func (v *Viewer) SetTitle(title string) {
	v.title = title
}

// Offset returns the grid cell shown in the top-left screen corner.
func (v *Viewer) Offset() core.Point {
	return v.offset
}

// viewport returns how many grid columns and rows fit on screen.
func (v *Viewer) viewport() (width, height int) {
	sw, sh := v.screen.Size()
	return sw, max(sh-1, 0)
}

// Scroll moves the window by dx, dy cells, clamped to the grid.
func (v *Viewer) Scroll(dx, dy int) {
	gw, gh := v.grid.Size()
	vw, vh := v.viewport()

	v.offset.X = clamp(v.offset.X+dx, 0, max(gw-vw, 0))
	v.offset.Y = clamp(v.offset.Y+dy, 0, max(gh-vh, 0))
}

// HandleKey applies a key press and reports whether the viewer should quit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) (quit bool) {
	_, vh := v.viewport()

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		v.Scroll(0, -1)
	case tcell.KeyDown:
		v.Scroll(0, 1)
	case tcell.KeyLeft:
		v.Scroll(-1, 0)
	case tcell.KeyRight:
		v.Scroll(1, 0)
	case tcell.KeyPgUp:
		v.Scroll(0, -vh)
	case tcell.KeyPgDn:
		v.Scroll(0, vh)
	case tcell.KeyHome:
		v.offset = core.Point{}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return true
		case 'k':
			v.Scroll(0, -1)
		case 'j':
			v.Scroll(0, 1)
		case 'h':
			v.Scroll(-1, 0)
		case 'l':
			v.Scroll(1, 0)
		}
	}
	return false
}

// Draw paints the visible part of the grid and the status line.
func (v *Viewer) Draw() {
	v.screen.Clear()
	vw, vh := v.viewport()

	for y := 0; y < vh; y++ {
		for x := 0; x < vw; x++ {
			p := core.Point{X: v.offset.X + x, Y: v.offset.Y + y}
			if !v.grid.Contains(p) {
				continue
			}
			v.screen.SetContent(x, y, v.displayRune(v.grid.Get(p)), nil, v.gridStyle)
		}
	}

	v.drawStatus(vh, vw)
	v.screen.Show()
}

func (v *Viewer) displayRune(r rune) rune {
	if r > 0x7f && !v.caps.UTF8 {
		return '?'
	}
	return r
}

func (v *Viewer) drawStatus(y, width int) {
	gw, gh := v.grid.Size()
	vw, vh := v.viewport()
	status := fmt.Sprintf(" %s  x %d-%d/%d  y %d-%d/%d  arrows/hjkl scroll, q quit",
		v.title,
		v.offset.X, min(v.offset.X+vw, gw)-1, gw,
		v.offset.Y, min(v.offset.Y+vh, gh)-1, gh)

	runes := []rune(status)
	for x := 0; x < width; x++ {
		r := ' '
		if x < len(runes) {
			r = runes[x]
		}
		v.screen.SetContent(x, y, r, nil, v.statusStyle)
	}
}

// Run draws the grid and processes events until the user quits or the
// screen is finalised.
func (v *Viewer) Run() error {
	v.screen.HideCursor()
	v.Draw()

	for {
		switch ev := v.screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			v.Scroll(0, 0)
			v.screen.Sync()
			v.Draw()
		case *tcell.EventKey:
			if v.HandleKey(ev) {
				return nil
			}
			v.Draw()
		}
	}
}

// Show opens the user's terminal, runs a viewer on grid and restores the
// terminal afterwards.
func Show(grid *canvas.Grid, title string, caps Capabilities) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to setup terminal: %w", err)
	}
	defer screen.Fini()

	v := NewViewer(screen, grid, caps)
	v.SetTitle(title)
	return v.Run()
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
