package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Cyan      = lipgloss.Color("#22D3EE")
	Magenta   = lipgloss.Color("#E879F9")
	Green     = lipgloss.Color("#10B981")
	Blue      = lipgloss.Color("#3B82F6")
	Red       = lipgloss.Color("#EF4444")
	DimGray   = lipgloss.Color("#6B7280")
	LightGray = lipgloss.Color("#9CA3AF")
	White     = lipgloss.Color("#F9FAFB")
)

// Raw glyphs (unstyled)
const (
	Banner    = "**************************************************************************"
	Separator = "-----------"
	Cursor    = "❯"
)

// Menu and prompt styles, rendered to stdout
var (
	QuestionStyle = lipgloss.NewStyle().
			Foreground(White).
			Bold(true)

	PromptMarkStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(Cyan).
				Bold(true)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Magenta).
				Bold(true)

	FilterStyle = lipgloss.NewStyle().
			Foreground(Cyan)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Cyan)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Output holds the result styles bound to one renderer, so colour follows
// the capabilities of the writer being rendered to.
type Output struct {
	Banner    lipgloss.Style
	Separator lipgloss.Style
	Label     lipgloss.Style
	Value     lipgloss.Style
	Text      lipgloss.Style
	Author    lipgloss.Style
	Error     lipgloss.Style
}

// NewOutput creates result styles for the given renderer.
// Tabs are left as-is so the display text matches the journal.
func NewOutput(r *lipgloss.Renderer) Output {
	base := r.NewStyle().TabWidth(lipgloss.NoTabConversion)
	return Output{
		Banner:    base.Foreground(Cyan),
		Separator: base.Foreground(Blue),
		Label:     base.Foreground(Magenta),
		Value:     base.Foreground(Green),
		Text:      base.Foreground(Magenta),
		Author:    base.Foreground(Green),
		Error:     base.Foreground(Red).Bold(true),
	}
}

// RenderLines styles each line of s separately. Rendering a multi-line block
// in one call pads every line to the widest one.
func RenderLines(style lipgloss.Style, s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if l != "" {
			lines[i] = style.Render(l)
		}
	}
	return strings.Join(lines, "\n")
}

// HighlightMatches renders s with the characters at the matched byte
// offsets highlighted
func HighlightMatches(s string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(s)
	}

	hits := make(map[int]bool, len(matched))
	for _, i := range matched {
		hits[i] = true
	}

	var b strings.Builder
	for i, r := range s {
		if hits[i] {
			b.WriteString(MatchHighlightStyle.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}
