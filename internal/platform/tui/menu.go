package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuChoice is what the player picked on the title screen.
type MenuChoice int

const (
	MenuChoiceNone MenuChoice = iota
	MenuChoicePlay
	MenuChoiceScores
	MenuChoiceQuit
)

// MenuItem is one selectable line of the title menu.
type MenuItem struct {
	Title  string
	Choice MenuChoice
}

var menuItems = []MenuItem{
	{Title: "Play", Choice: MenuChoicePlay},
	{Title: "High Scores", Choice: MenuChoiceScores},
	{Title: "Quit", Choice: MenuChoiceQuit},
}

var (
	menuTitleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuSelectedStyle = menuTitleStyle.Background(lipgloss.Color("57")).Padding(0, 1)
	menuItemStyle     = lipgloss.NewStyle().Padding(0, 1)
	menuDimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the Bubble Tea model for the title screen.
type MenuModel struct {
	items      []MenuItem
	cursor     int
	width      int
	height     int
	best       int
	difficulty string
	keyMapper  *KeyMapper
	choice     MenuChoice
}

// NewMenuModel creates a new menu model.
// best is the high score shown under the title.
func NewMenuModel(best int, difficulty string, width, height int) MenuModel {
	return MenuModel{
		items:      menuItems,
		width:      width,
		height:     height,
		best:       best,
		difficulty: difficulty,
		keyMapper:  NewKeyMapper(),
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
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.choice = MenuChoiceQuit
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		m.choice = m.items[m.cursor].Choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.choice != MenuChoiceNone {
		return ""
	}

	lines := []string{
		menuTitleStyle.Render("S T A R S H I P"),
		"",
		menuDimStyle.Render(m.bestLine()),
		"",
	}
	for i, item := range m.items {
		if i == m.cursor {
			lines = append(lines, menuSelectedStyle.Render(item.Title))
		} else {
			lines = append(lines, menuItemStyle.Render(item.Title))
		}
	}
	lines = append(lines, "", menuDimStyle.Render("↑/↓: navigate  •  enter: select  •  q: quit"))

	body := lipgloss.JoinVertical(lipgloss.Center, lines...)
	if m.width <= 0 || m.height <= 0 {
		return body
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
}

func (m MenuModel) bestLine() string {
	if m.difficulty == "" {
		return fmt.Sprintf("Best score: %d", m.best)
	}
	return fmt.Sprintf("Best score (%s): %d", m.difficulty, m.best)
}

// Choice returns what the player picked.
func (m MenuModel) Choice() MenuChoice {
	return m.choice
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// RunMenu runs the title screen and returns the player's choice.
func RunMenu(best int, difficulty string, width, height int) (MenuChoice, error) {
	p := tea.NewProgram(
		NewMenuModel(best, difficulty, width, height),
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuChoiceQuit, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok || m.Choice() == MenuChoiceNone {
		return MenuChoiceQuit, nil
	}
	return m.Choice(), nil
}
