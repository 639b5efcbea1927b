package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/wordbridge/pkg/poet"
)

var (
	promptStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	cursorStyle = lipgloss.NewStyle().Foreground(colorGray)
	inputStyle  = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// PoemModel - Interactive rendering session
// =============================================================================

// PoemEntry is one rendered line of an interactive session.
type PoemEntry struct {
	Input   string
	Output  string
	Bridges int

	styled string
}

// PoemModel is the bubbletea model for the interactive command. Each line the
// user enters is rendered by the poet and appended to the history.
type PoemModel struct {
	Poet    *poet.Poet
	Input   []rune
	History []PoemEntry
	Height  int
}

// NewPoemModel creates a new session model for p.
func NewPoemModel(p *poet.Poet) PoemModel {
	return PoemModel{Poet: p, Height: 10}
}

func (m PoemModel) Init() tea.Cmd {
	return nil
}

func (m PoemModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyCtrlD, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(string(m.Input))
			m.Input = nil
			if line != "" {
				m.History = append(m.History, m.render(line))
			}
		case tea.KeyBackspace:
			if len(m.Input) > 0 {
				m.Input = m.Input[:len(m.Input)-1]
			}
		case tea.KeyCtrlU:
			m.Input = nil
		case tea.KeySpace:
			m.Input = append(m.Input, ' ')
		case tea.KeyRunes:
			m.Input = append(m.Input, msg.Runes...)
		}
	case tea.WindowSizeMsg:
		m.Height = max((msg.Height-6)/2, 3)
	}
	return m, nil
}

// render renders line and a copy of it with bridge words highlighted.
func (m PoemModel) render(line string) PoemEntry {
	e := PoemEntry{Input: line, Output: m.Poet.Render(line)}

	words := strings.Fields(line)
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteByte(' ')
			if bridge, _, ok := m.Poet.Bridge(words[i-1], w); ok {
				b.WriteString(StyleBridge.Render(bridge))
				b.WriteByte(' ')
				e.Bridges++
			}
		}
		b.WriteString(StyleValue.Render(w))
	}
	e.styled = b.String()
	return e
}

func (m PoemModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Wordbridge"))
	b.WriteString(" ")
	b.WriteString(StyleDim.Render(m.Poet.String()))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render("type a sentence  ⏎ render  ctrl+u clear  esc quit"))
	b.WriteString("\n\n")

	start := max(len(m.History)-m.Height, 0)
	for _, e := range m.History[start:] {
		b.WriteString(inputStyle.Render(iconInfo + " " + e.Input))
		b.WriteString("\n  ")
		b.WriteString(e.styled)
		b.WriteString("\n")
	}
	if len(m.History) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(promptStyle.Render("> "))
	b.WriteString(string(m.Input))
	b.WriteString(cursorStyle.Render("█"))
	b.WriteString("\n")
	return b.String()
}
