package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/games/bricks"
)

// Glyphs used for the playing field.
const (
	BrickGlyph  = '█'
	PaddleGlyph = '▀'
	BallGlyph   = '●'
	BorderHoriz = '─'
)

// Minimum terminal size that still shows a playable field.
const (
	MinScreenW = 40
	MinScreenH = 12
)

const (
	hudRows    = 2 // Status line and separator
	buttonRows = 1 // On-screen controls
	helpRows   = 1 // Key help below the screen buffer
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// button is an on-screen control with its clickable area in cells.
type button struct {
	label  string
	action core.Action
	area   core.Rect
}

// Renderer draws a session onto a cell buffer, scaling the logical canvas
// to whatever terminal area is left between the HUD and the controls.
type Renderer struct {
	screen *core.Screen
	help   help.Model
}

// NewRenderer creates a renderer for a terminal of the given size.
func NewRenderer(width, height int) *Renderer {
	r := &Renderer{
		screen: core.NewScreen(0, 0),
		help:   help.New(),
	}
	r.Resize(width, height)
	return r
}

// Resize adapts the renderer to a new terminal size.
func (r *Renderer) Resize(width, height int) {
	r.screen.Resize(width, core.Max(height-helpRows, 0))
	r.help.Width = width
}

// Screen returns the cell buffer of the last Draw.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

// TooSmall reports whether the terminal cannot show the field.
func (r *Renderer) TooSmall() bool {
	return r.screen.Width() < MinScreenW || r.screen.Height()+helpRows < MinScreenH
}

// View draws the session and returns the styled frame with the help line.
func (r *Renderer) View(s *bricks.Session, keys KeyMap, pressed core.Action) string {
	r.Draw(s, pressed)
	return RenderScreen(r.screen) + "\n" + r.help.View(keys)
}

// Draw renders the session into the cell buffer. pressed highlights the
// matching on-screen button.
func (r *Renderer) Draw(s *bricks.Session, pressed core.Action) {
	dst := r.screen
	dst.Clear()

	if r.TooSmall() {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	r.drawHUD(s)

	vp := newViewport(r.fieldArea(), s.Canvas())
	for _, b := range s.Bricks() {
		dst.FillRect(vp.cells(b.Bounds()), BrickGlyph, b.Color())
	}
	dst.FillRect(vp.cells(s.Paddle().Bounds()), PaddleGlyph, core.ColorWhite)
	if ball := vp.cells(s.Ball().Bounds()); ball.W > 0 && ball.H > 0 {
		dst.SetCell(ball.X, ball.Y, BallGlyph, core.ColorCyan)
	}

	r.drawButtons(s.Paused(), pressed)
	r.drawOverlay(s)
}

// fieldArea is the part of the screen the canvas is scaled into.
func (r *Renderer) fieldArea() core.Rect {
	h := r.screen.Height() - hudRows - buttonRows
	return core.NewRect(0, hudRows, r.screen.Width(), core.Max(h, 0))
}

func (r *Renderer) drawHUD(s *bricks.Session) {
	dst := r.screen

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", s.Score()))
	dst.DrawTextCentered(0, fmt.Sprintf("Lives: %d", s.Lives()))

	diff := s.Difficulty().Title()
	dst.DrawText(dst.Width()-len(diff)-1, 0, diff)

	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
}

// buttons lays out the on-screen controls centered on the bottom row.
func (r *Renderer) buttons(paused bool) []button {
	pauseLabel := "[Pause]"
	if paused {
		pauseLabel = "[Resume]"
	}
	labels := []struct {
		label  string
		action core.Action
	}{
		{"[← Left]", core.ActionLeft},
		{pauseLabel, core.ActionPause},
		{"[Right →]", core.ActionRight},
	}

	const gap = 3
	total := gap * (len(labels) - 1)
	for _, l := range labels {
		total += len([]rune(l.label))
	}

	y := r.screen.Height() - buttonRows
	x := (r.screen.Width() - total) / 2

	out := make([]button, 0, len(labels))
	for _, l := range labels {
		w := len([]rune(l.label))
		out = append(out, button{label: l.label, action: l.action, area: core.NewRect(x, y, w, 1)})
		x += w + gap
	}
	return out
}

// ButtonAt returns the action of the on-screen button at cell (x, y).
func (r *Renderer) ButtonAt(x, y int, paused bool) (core.Action, bool) {
	if r.TooSmall() {
		return core.ActionNone, false
	}
	for _, b := range r.buttons(paused) {
		if b.area.Contains(x, y) {
			return b.action, true
		}
	}
	return core.ActionNone, false
}

func (r *Renderer) drawButtons(paused bool, pressed core.Action) {
	for _, b := range r.buttons(paused) {
		color := core.ColorGray
		if b.action == pressed {
			color = core.ColorYellow
		}
		r.screen.DrawTextColor(b.area.X, b.area.Y, b.label, color)
	}
}

func (r *Renderer) drawOverlay(s *bricks.Session) {
	const hint = "R: Play again  B: Menu"

	switch s.Status() {
	case bricks.StatusPaused:
		r.drawCenteredBox("PAUSED", "Space: Resume  B: Menu")
	case bricks.StatusGameOver:
		r.drawCenteredBox(fmt.Sprintf("Game Over! Score: %d", s.Score()), hint)
	case bricks.StatusVictory:
		r.drawCenteredBox(fmt.Sprintf("Victory! Score: %d", s.Score()), hint)
	}
}

// drawCenteredBox draws a centered message box over the field.
func (r *Renderer) drawCenteredBox(title, subtitle string) {
	dst := r.screen
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// viewport maps canvas units to screen cells.
type viewport struct {
	area   core.Rect
	canvas bricks.Canvas
}

func newViewport(area core.Rect, canvas bricks.Canvas) viewport {
	return viewport{area: area, canvas: canvas}
}

// cells converts a canvas rectangle to the cells it covers, clipped to the
// field. Anything visible covers at least one cell.
func (v viewport) cells(r core.Rect) core.Rect {
	if v.canvas.W <= 0 || v.canvas.H <= 0 {
		return core.Rect{}
	}

	x0 := v.area.X + r.X*v.area.W/v.canvas.W
	y0 := v.area.Y + r.Y*v.area.H/v.canvas.H
	x1 := core.Max(v.area.X+r.Right()*v.area.W/v.canvas.W, x0+1)
	y1 := core.Max(v.area.Y+r.Bottom()*v.area.H/v.canvas.H, y0+1)

	x0 = core.Max(x0, v.area.X)
	y0 = core.Max(y0, v.area.Y)
	x1 = core.Min(x1, v.area.Right())
	y1 = core.Min(y1, v.area.Bottom())
	if x1 <= x0 || y1 <= y0 {
		return core.Rect{}
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}
