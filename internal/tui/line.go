package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/mmcdole/liri/internal/domain"
)

// LinePrompter asks questions one line at a time.
// Selections may be given as a number, an exact name, or a fuzzy name.
type LinePrompter struct {
	reader *bufio.Reader
	out    io.Writer
}

// NewLinePrompter creates a prompter reading answers from in
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		reader: bufio.NewReader(in),
		out:    out,
	}
}

// Select prints the numbered choices and resolves one answer line
func (p *LinePrompter) Select(_ context.Context, title string, choices []domain.Selection) (domain.Selection, error) {
	fmt.Fprintf(p.out, "? %s\n", title)
	for i, c := range choices {
		fmt.Fprintf(p.out, "  %d) %s\n", i+1, c)
	}
	fmt.Fprint(p.out, "> ")

	answer, err := p.readLine()
	if err != nil {
		return 0, err
	}
	if answer == "" {
		return 0, domain.ErrAborted
	}

	return ResolveSelection(answer, choices)
}

// Ask prints the question and returns the raw answer line.
// End of input counts as an empty answer.
func (p *LinePrompter) Ask(_ context.Context, question string) (string, error) {
	fmt.Fprintf(p.out, "? %s ", question)
	return p.readLine()
}

func (p *LinePrompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}

// ResolveSelection maps a typed answer to one of choices: a 1-based index,
// an exact label, or the closest fuzzy match. Ties and misses are errors.
func ResolveSelection(answer string, choices []domain.Selection) (domain.Selection, error) {
	answer = strings.TrimSpace(answer)

	if n, err := strconv.Atoi(answer); err == nil {
		if n >= 1 && n <= len(choices) {
			return choices[n-1], nil
		}
		return 0, &domain.UnknownSelectionError{Input: answer}
	}

	labels := make([]string, len(choices))
	for i, c := range choices {
		if strings.EqualFold(c.String(), answer) {
			return c, nil
		}
		labels[i] = c.String()
	}

	ranks := fuzzy.RankFindFold(answer, labels)
	if len(ranks) == 0 {
		return 0, &domain.UnknownSelectionError{Input: answer}
	}
	sort.Sort(ranks)
	if len(ranks) > 1 && ranks[0].Distance == ranks[1].Distance {
		return 0, &domain.UnknownSelectionError{Input: answer}
	}

	return choices[ranks[0].OriginalIndex], nil
}
