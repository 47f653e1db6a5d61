// Package present renders results to the terminal and records the same
// lines, in the same order, to the journal.
package present

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/mmcdole/liri/internal/domain"
	"github.com/mmcdole/liri/internal/tui/styles"
)

// Journal receives every presented line
type Journal interface {
	Record(event, line string)
	Failure(event string, err error)
}

// Event names written to the journal
const (
	EventFavorites = "favorites"
	EventSong      = "song"
	EventMovie     = "movie"
	EventFailure   = "failure"
)

// Presenter writes results to a display writer and a journal
type Presenter struct {
	out     io.Writer
	journal Journal
	styles  styles.Output
}

// New creates a presenter. Colour is used only when out is a colour terminal.
func New(out io.Writer, journal Journal) *Presenter {
	return &Presenter{
		out:     out,
		journal: journal,
		styles:  styles.NewOutput(lipgloss.NewRenderer(out)),
	}
}

// Favorites presents each post between separators. Zero posts still prints the banners.
func (p *Presenter) Favorites(posts []domain.FavoritePost) {
	p.banner(EventFavorites)
	for _, post := range posts {
		p.separator(EventFavorites)
		for _, f := range post.Fields() {
			p.journal.Record(EventFavorites, line(f))
			style := p.styles.Text
			if f.Label == "Author" {
				style = p.styles.Author
			}
			fmt.Fprintln(p.out, p.styles.Label.Render(f.Label+":"), styles.RenderLines(style, f.Value))
		}
		p.separator(EventFavorites)
	}
	p.banner(EventFavorites)
}

// Song presents a song result
func (p *Presenter) Song(song domain.SongResult) {
	p.block(EventSong, song.Fields())
}

// Movie presents a movie result
func (p *Presenter) Movie(movie domain.MovieResult) {
	p.block(EventMovie, movie.Fields())
}

// Failure reports a terminal error to both outputs
func (p *Presenter) Failure(err error) {
	p.journal.Failure(EventFailure, err)
	fmt.Fprintln(p.out, styles.RenderLines(p.styles.Error, "Error: "+err.Error()))
}

func (p *Presenter) block(event string, fields []domain.Field) {
	p.banner(event)
	for _, f := range fields {
		p.journal.Record(event, line(f))
		fmt.Fprintln(p.out, p.styles.Label.Render(f.Label+":"), styles.RenderLines(p.styles.Value, f.Value))
	}
	p.banner(event)
}

func (p *Presenter) banner(event string) {
	p.journal.Record(event, styles.Banner)
	fmt.Fprintln(p.out, p.styles.Banner.Render(styles.Banner))
}

func (p *Presenter) separator(event string) {
	p.journal.Record(event, styles.Separator)
	fmt.Fprintln(p.out, p.styles.Separator.Render(styles.Separator))
}

// line is the journal form of a field; the display prints the same label and value.
func line(f domain.Field) string {
	return f.Label + ": " + f.Value
}
