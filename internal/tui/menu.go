package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/mmcdole/liri/internal/domain"
	"github.com/mmcdole/liri/internal/tui/styles"
)

// MenuModel is a single-choice list with type-to-filter
type MenuModel struct {
	title   string
	choices []domain.Selection
	labels  []string
	keys    MenuKeyMap

	filter   string
	visible  []fuzzy.Match // Filtered view; MatchedIndexes drive highlighting
	cursor   int
	chosen   bool
	aborted  bool
	selected domain.Selection
}

// NewMenuModel creates a menu over the given choices
func NewMenuModel(title string, choices []domain.Selection) MenuModel {
	labels := make([]string, len(choices))
	for i, c := range choices {
		labels[i] = c.String()
	}

	m := MenuModel{
		title:   title,
		choices: choices,
		labels:  labels,
		keys:    DefaultMenuKeyMap(),
	}
	m.applyFilter()
	return m
}

// Init implements tea.Model
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.aborted = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Clear):
		if m.filter == "" {
			m.aborted = true
			return m, tea.Quit
		}
		m.filter = ""
		m.applyFilter()

	case key.Matches(keyMsg, m.keys.Select):
		if len(m.visible) == 0 {
			return m, nil
		}
		m.selected = m.choices[m.visible[m.cursor].Index]
		m.chosen = true
		return m, tea.Quit

	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case key.Matches(keyMsg, m.keys.Delete):
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.applyFilter()
		}

	case keyMsg.Type == tea.KeyRunes:
		m.filter += string(keyMsg.Runes)
		m.applyFilter()
	}

	return m, nil
}

// applyFilter recomputes the visible choices and resets the cursor
func (m *MenuModel) applyFilter() {
	m.cursor = 0

	query := strings.ToLower(strings.TrimSpace(m.filter))
	if query == "" {
		m.visible = make([]fuzzy.Match, len(m.labels))
		for i, l := range m.labels {
			m.visible[i] = fuzzy.Match{Str: l, Index: i}
		}
		return
	}

	m.visible = fuzzy.Find(query, m.labels)
}

// View implements tea.Model
func (m MenuModel) View() string {
	head := styles.PromptMarkStyle.Render("?") + " " + styles.QuestionStyle.Render(m.title)
	if m.chosen {
		return head + " " + styles.SelectedItemStyle.Render(m.selected.String()) + "\n"
	}

	var b strings.Builder
	b.WriteString(head)
	if m.filter != "" {
		b.WriteString(" ")
		b.WriteString(styles.FilterStyle.Render(m.filter))
	}
	b.WriteString("\n")

	if len(m.visible) == 0 {
		b.WriteString("  ")
		b.WriteString(styles.DimStyle.Render("no matching option"))
		b.WriteString("\n")
	}

	for i, match := range m.visible {
		if i == m.cursor {
			b.WriteString(styles.SelectedItemStyle.Render(styles.Cursor + " "))
			b.WriteString(styles.HighlightMatches(match.Str, match.MatchedIndexes, styles.SelectedItemStyle))
		} else {
			b.WriteString("  ")
			b.WriteString(styles.HighlightMatches(match.Str, match.MatchedIndexes, styles.NormalItemStyle))
		}
		b.WriteString("\n")
	}

	b.WriteString(m.helpView())
	return b.String()
}

func (m MenuModel) helpView() string {
	var parts []string
	for _, binding := range m.keys.ShortHelp() {
		h := binding.Help()
		parts = append(parts, styles.HelpKeyStyle.Render(h.Key)+" "+styles.HelpDescStyle.Render(h.Desc))
	}
	return strings.Join(parts, styles.HelpDescStyle.Render(" • ")) + "\n"
}

// Selected returns the chosen selection and whether one was made
func (m MenuModel) Selected() (domain.Selection, bool) {
	return m.selected, m.chosen
}

// Aborted reports whether the user cancelled the menu
func (m MenuModel) Aborted() bool {
	return m.aborted
}
