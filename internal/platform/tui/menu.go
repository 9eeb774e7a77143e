package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("208"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// MenuModel is the Bubble Tea model for the difficulty picker.
type MenuModel struct {
	cfg      config.Config
	items    []config.Difficulty
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	quitting bool
	selected *config.Difficulty
}

// NewMenuModel creates a menu listing every difficulty, easiest first.
func NewMenuModel(cfg config.Config, rt core.RuntimeConfig) MenuModel {
	h := help.New()
	h.Width = rt.ScreenW

	return MenuModel{
		cfg:    cfg,
		items:  config.Difficulties,
		cursor: 1, // Medium
		width:  rt.ScreenW,
		height: rt.ScreenH,
		keys:   DefaultMenuKeyMap(),
		help:   h,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		selected := m.items[m.cursor]
		m.selected = &selected
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("B R I C K S"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select Difficulty:", m.width))
	b.WriteString("\n\n")

	for i, d := range m.items {
		line := "  " + d.Title()
		if i == m.cursor {
			line = selectedStyle.Render("> " + d.Title())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if p, err := m.cfg.Preset(m.items[m.cursor]); err == nil {
		info := fmt.Sprintf("ball speed %d  |  paddle %d  |  brick hits %v", p.BallSpeed, p.PaddleWidth, p.HitsByRow)
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(info), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen difficulty, or nil if none selected.
func (m MenuModel) Selected() *config.Difficulty {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Size returns the last known terminal size.
func (m MenuModel) Size() (int, int) {
	return m.width, m.height
}

// centerText centers text within given width. Styled text is measured by
// its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Difficulty config.Difficulty
	Runtime    core.RuntimeConfig
	Quit       bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(cfg config.Config, rt core.RuntimeConfig, opts ...tea.ProgramOption) (MenuResult, error) {
	model := NewMenuModel(cfg, rt)

	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	finalModel, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return MenuResult{Runtime: rt, Quit: true}, fmt.Errorf("tui: menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.IsQuitting() || m.Selected() == nil {
		return MenuResult{Runtime: rt, Quit: true}, nil
	}

	rt.ScreenW, rt.ScreenH = m.Size()
	return MenuResult{Difficulty: *m.Selected(), Runtime: rt}, nil
}
