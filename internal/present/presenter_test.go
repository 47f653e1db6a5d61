package present

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/liri/internal/domain"
	"github.com/mmcdole/liri/internal/journal"
)

type recordedLine struct {
	event string
	line  string
}

type fakeJournal struct {
	lines    []recordedLine
	failures []error
}

func (j *fakeJournal) Record(event, line string) {
	j.lines = append(j.lines, recordedLine{event, line})
}

func (j *fakeJournal) Failure(_ string, err error) {
	j.failures = append(j.failures, err)
}

func displayLines(buf *bytes.Buffer) []string {
	return strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
}

func journalLines(j *fakeJournal) []string {
	out := make([]string, len(j.lines))
	for i, l := range j.lines {
		out[i] = l.line
	}
	return out
}

var (
	sign = domain.SongResult{
		Title:        "The Sign",
		Album:        "The Sign (US Album) [Remastered]",
		Artist:       "Ace of Base",
		ExternalLink: "https://open.spotify.com/track/0hrBpAOgrt8RXigk83LLNE",
	}
	nobody = domain.MovieResult{
		Title:                "Mr. Nobody",
		Year:                 "2009",
		IMDBRating:           "7.8",
		RottenTomatoesRating: domain.NotAvailable,
		Country:              "Belgium",
		Language:             "English",
		Plot:                 "A boy stands on a station platform.",
		Actors:               "Jared Leto",
	}
	posts = []domain.FavoritePost{
		{Text: "hello world", AuthorDescription: "a bio"},
		{Text: "second", AuthorDescription: ""},
		{Text: "line one\nlonger line two\tend", AuthorDescription: "bio\twith tab"},
	}
)

func TestDisplayMatchesJournal(t *testing.T) {
	tests := []struct {
		name    string
		present func(p *Presenter)
		event   string
		fields  int
	}{
		{"song", func(p *Presenter) { p.Song(sign) }, EventSong, 4},
		{"movie", func(p *Presenter) { p.Movie(nobody) }, EventMovie, 8},
		{"favorites", func(p *Presenter) { p.Favorites(posts) }, EventFavorites, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			j := &fakeJournal{}
			tt.present(New(&out, j))

			assert.Equal(t, strings.Join(journalLines(j), "\n")+"\n", out.String())

			labelled := 0
			for _, l := range j.lines {
				assert.Equal(t, tt.event, l.event)
				if strings.Contains(l.line, ": ") {
					labelled++
				}
			}
			assert.Equal(t, tt.fields, labelled)
		})
	}
}

func TestMovieFieldsInOrder(t *testing.T) {
	var out bytes.Buffer
	New(&out, &fakeJournal{}).Movie(nobody)

	lines := displayLines(&out)
	require.Len(t, lines, 10)
	assert.Equal(t, "Title: Mr. Nobody", lines[1])
	assert.Equal(t, "Rotten Tomatoes Rating: N/A", lines[4])
	assert.Equal(t, "Actors: Jared Leto", lines[8])
}

func TestFavoritesEmpty(t *testing.T) {
	var out bytes.Buffer
	j := &fakeJournal{}
	New(&out, j).Favorites(nil)

	for _, l := range displayLines(&out) {
		assert.NotContains(t, l, "Tweet:")
	}
	assert.Len(t, j.lines, 2)
}

func TestFailure(t *testing.T) {
	var out bytes.Buffer
	j := &fakeJournal{}
	err := &domain.NoMatchError{Service: "spotify", Query: "zzz"}

	New(&out, j).Failure(err)

	assert.Contains(t, out.String(), `Error: spotify: no match for "zzz"`)
	require.Len(t, j.failures, 1)
	assert.True(t, errors.Is(j.failures[0], err))
}

func TestPresenterWithJournal(t *testing.T) {
	var out, log bytes.Buffer
	New(&out, journal.New(&log, "run-9")).Song(sign)

	for _, f := range sign.Fields() {
		want := f.Label + ": " + f.Value
		assert.Contains(t, out.String(), want)
		assert.Contains(t, log.String(), want)
	}
	assert.Equal(t, 6, strings.Count(log.String(), "event=song"))
}

func TestMultilineValueMatchesJournal(t *testing.T) {
	var out bytes.Buffer
	j := &fakeJournal{}
	post := domain.FavoritePost{Text: "line one\nlonger line two\tend", AuthorDescription: "a bio"}

	New(&out, j).Favorites([]domain.FavoritePost{post})

	assert.Contains(t, out.String(), "Tweet: line one\nlonger line two\tend\n")
	assert.Contains(t, journalLines(j), "Tweet: line one\nlonger line two\tend")
}
