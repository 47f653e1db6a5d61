package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/liri/internal/tui/styles"
)

// InputModel asks one free-text question
type InputModel struct {
	question  string
	input     textinput.Model
	submitted bool
	aborted   bool
}

// NewInputModel creates a focused text input for the question.
// The placeholder shows what an empty answer will fall back to.
func NewInputModel(question, placeholder string) InputModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 200
	ti.Width = 50
	ti.Prompt = ""
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	ti.Focus()

	return InputModel{
		question: question,
		input:    ti,
	}
}

// Init implements tea.Model
func (m InputModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m InputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyEnter:
			m.submitted = true
			m.input.Blur()
			return m, tea.Quit
		case tea.KeyCtrlC, tea.KeyEsc:
			m.aborted = true
			m.input.Blur()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements tea.Model
func (m InputModel) View() string {
	head := styles.PromptMarkStyle.Render("?") + " " + styles.QuestionStyle.Render(m.question) + " "
	if m.submitted {
		return head + styles.SelectedItemStyle.Render(m.input.Value()) + "\n"
	}
	return head + m.input.View() + "\n"
}

// Value returns the current answer
func (m InputModel) Value() string {
	return m.input.Value()
}

// Submitted reports whether the user pressed enter
func (m InputModel) Submitted() bool {
	return m.submitted
}

// Aborted reports whether the user cancelled the question
func (m InputModel) Aborted() bool {
	return m.aborted
}
