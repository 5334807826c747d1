package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/palettekit/palettekit/internal/fuzzy"
	"github.com/palettekit/palettekit/internal/palette"
)

var (
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("12"))
	matchedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// matchesMsg signals that a background ranking pass finished. The model
// re-reads the picker's match list on receipt; stale passes were already
// dropped by the picker, so there is nothing to check here.
type matchesMsg struct{}

// Model is the Bubble Tea model for the palette: a query input above the
// ranked match list. All ranking state lives in the Picker; the model only
// renders it and translates key events.
type Model struct {
	picker  *palette.Picker
	input   textinput.Model
	height  int
	matches []fuzzy.Match
}

// New creates a palette model around an already-configured picker. The
// picker is opened here; the caller runs the returned model in a
// tea.Program.
func New(picker *palette.Picker) Model {
	ti := textinput.New()
	ti.Placeholder = "Execute a command..."
	ti.Prompt = "> "
	ti.Focus()
	ti.CharLimit = 256

	picker.Open(nil)

	return Model{
		picker: picker,
		input:  ti,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.rank(""))
}

// rank starts a background ranking pass and waits for it off the UI loop.
func (m Model) rank(query string) tea.Cmd {
	done := m.picker.UpdateMatches(query)
	return func() tea.Msg {
		<-done
		return matchesMsg{}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.picker.Dismiss()
			return m, tea.Quit
		case "enter":
			m.picker.Confirm()
			return m, tea.Quit
		case "up", "ctrl+p":
			m.picker.SetSelectedIndex(m.picker.SelectedIndex() - 1)
			return m, nil
		case "down", "ctrl+n":
			m.picker.SetSelectedIndex(m.picker.SelectedIndex() + 1)
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if m.input.Value() != before {
			return m, tea.Batch(cmd, m.rank(m.input.Value()))
		}
		return m, cmd

	case matchesMsg:
		m.matches = m.picker.Matches()
		return m, nil

	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.input.Width = msg.Width - 4
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(promptStyle.Render("Command Palette"))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.matches) == 0 {
		b.WriteString(dimStyle.Render("No matches"))
		b.WriteString("\n")
		return b.String()
	}

	selected := m.picker.SelectedIndex()
	for i, match := range m.matches[:m.visibleRows()] {
		line := renderMatch(match)
		if i == selected {
			line = selectedStyle.Render("▌ " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("%d commands · enter runs · esc dismisses", len(m.matches))))
	b.WriteString("\n")
	return b.String()
}

// visibleRows caps the rendered list to the terminal height, leaving room
// for the input and footer.
func (m Model) visibleRows() int {
	rows := len(m.matches)
	if m.height > 0 && rows > m.height-6 {
		rows = m.height - 6
		if rows < 1 {
			rows = 1
		}
	}
	return rows
}

// renderMatch bolds the matched rune positions within the command name.
func renderMatch(match fuzzy.Match) string {
	if len(match.Positions) == 0 {
		return match.Text
	}

	hit := make(map[int]bool, len(match.Positions))
	for _, p := range match.Positions {
		hit[p] = true
	}

	var b strings.Builder
	for i, r := range []rune(match.Text) {
		if hit[i] {
			b.WriteString(matchedStyle.Render(string(r)))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}
