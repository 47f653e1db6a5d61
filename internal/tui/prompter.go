package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/mmcdole/liri/internal/domain"
)

// NewPrompter returns an interactive prompter when in is a terminal and a
// line-oriented one otherwise (pipes, redirected files, CI).
func NewPrompter(in *os.File, out io.Writer) domain.Prompter {
	if term.IsTerminal(int(in.Fd())) {
		return &TerminalPrompter{in: in, out: out}
	}
	return NewLinePrompter(in, out)
}

// TerminalPrompter drives bubbletea programs for each question
type TerminalPrompter struct {
	in  io.Reader
	out io.Writer
}

// Select shows the menu and blocks until the user picks an option
func (p *TerminalPrompter) Select(ctx context.Context, title string, choices []domain.Selection) (domain.Selection, error) {
	final, err := p.run(ctx, NewMenuModel(title, choices))
	if err != nil {
		return 0, fmt.Errorf("menu failed: %w", err)
	}

	menu := final.(MenuModel)
	if sel, ok := menu.Selected(); ok {
		return sel, nil
	}
	return 0, domain.ErrAborted
}

// Ask shows a text input and returns the raw answer
func (p *TerminalPrompter) Ask(ctx context.Context, question string) (string, error) {
	final, err := p.run(ctx, NewInputModel(question, ""))
	if err != nil {
		return "", fmt.Errorf("prompt failed: %w", err)
	}

	input := final.(InputModel)
	if input.Aborted() {
		return "", domain.ErrAborted
	}
	return input.Value(), nil
}

func (p *TerminalPrompter) run(ctx context.Context, model tea.Model) (tea.Model, error) {
	prog := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out),
	)
	return prog.Run()
}
