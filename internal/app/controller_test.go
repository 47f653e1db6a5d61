package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmcdole/liri/internal/domain"
	"github.com/mmcdole/liri/internal/log"
)

type fakePrompter struct {
	selection domain.Selection
	selectErr error
	answer    string
	asked     []string
}

func (p *fakePrompter) Select(context.Context, string, []domain.Selection) (domain.Selection, error) {
	return p.selection, p.selectErr
}

func (p *fakePrompter) Ask(_ context.Context, question string) (string, error) {
	p.asked = append(p.asked, question)
	return p.answer, nil
}

// fakeRemote implements all three clients and counts calls
type fakeRemote struct {
	calls   int
	queries []string

	posts []domain.FavoritePost
	song  domain.SongResult
	movie domain.MovieResult
	err   error
}

func (r *fakeRemote) Favorites(context.Context) ([]domain.FavoritePost, error) {
	r.calls++
	return r.posts, r.err
}

func (r *fakeRemote) SearchTrack(_ context.Context, query string) (domain.SongResult, error) {
	r.calls++
	r.queries = append(r.queries, query)
	return r.song, r.err
}

func (r *fakeRemote) LookupTitle(_ context.Context, title string) (domain.MovieResult, error) {
	r.calls++
	r.queries = append(r.queries, title)
	return r.movie, r.err
}

type fakePresenter struct {
	calls     int
	favorites []domain.FavoritePost
	song      *domain.SongResult
	movie     *domain.MovieResult
}

func (p *fakePresenter) Favorites(posts []domain.FavoritePost) {
	p.calls++
	p.favorites = posts
}

func (p *fakePresenter) Song(song domain.SongResult) {
	p.calls++
	p.song = &song
}

func (p *fakePresenter) Movie(movie domain.MovieResult) {
	p.calls++
	p.movie = &movie
}

type harness struct {
	prompter  *fakePrompter
	remote    *fakeRemote
	presenter *fakePresenter
	ctrl      *Controller
}

func newHarness(t *testing.T, sel domain.Selection, answer, fallbackContent string) *harness {
	t.Helper()

	path := filepath.Join(t.TempDir(), "random.txt")
	if fallbackContent != "" {
		require.NoError(t, os.WriteFile(path, []byte(fallbackContent), 0o644))
	}

	h := &harness{
		prompter: &fakePrompter{selection: sel, answer: answer},
		remote: &fakeRemote{
			song:  domain.SongResult{Title: "The Sign", Album: "The Sign", Artist: "Ace of Base", ExternalLink: "https://open.spotify.com/track/x"},
			movie: domain.MovieResult{Title: "Mr. Nobody", RottenTomatoesRating: domain.NotAvailable},
		},
		presenter: &fakePresenter{},
	}
	h.ctrl = NewController(Options{
		Prompter:     h.prompter,
		Favorites:    h.remote,
		Songs:        h.remote,
		Movies:       h.remote,
		Presenter:    h.presenter,
		FallbackPath: path,
		Logger:       log.NullLogger(),
	})
	return h
}

func TestRunDispatchesOnce(t *testing.T) {
	for _, sel := range domain.Selections() {
		t.Run(sel.String(), func(t *testing.T) {
			h := newHarness(t, sel, "", "spotify-this-song,I Want it That Way")

			require.NoError(t, h.ctrl.Run(context.Background()))
			assert.Equal(t, 1, h.remote.calls)
			assert.Equal(t, 1, h.presenter.calls)
		})
	}
}

func TestEmptyAnswersUseDefaults(t *testing.T) {
	h := newHarness(t, domain.SearchSong, "   ", "")
	require.NoError(t, h.ctrl.Run(context.Background()))
	assert.Equal(t, []string{"The Sign - Ace of Base"}, h.remote.queries)
	assert.Equal(t, []string{SongQuestion}, h.prompter.asked)

	h = newHarness(t, domain.SearchMovie, "", "")
	require.NoError(t, h.ctrl.Run(context.Background()))
	assert.Equal(t, []string{"Mr. Nobody."}, h.remote.queries)
	assert.Equal(t, []string{MovieQuestion}, h.prompter.asked)
}

func TestAnswerIsTrimmed(t *testing.T) {
	h := newHarness(t, domain.SearchMovie, "  Heat ", "")
	require.NoError(t, h.ctrl.Run(context.Background()))
	assert.Equal(t, []string{"Heat"}, h.remote.queries)
}

func TestStoredQuery(t *testing.T) {
	h := newHarness(t, domain.RunStoredQuery, "ignored", "foo,Bohemian Rhapsody,bar")

	require.NoError(t, h.ctrl.Run(context.Background()))
	assert.Equal(t, []string{"Bohemian Rhapsody"}, h.remote.queries)
	assert.Empty(t, h.prompter.asked)
	require.NotNil(t, h.presenter.song)
}

func TestStoredQueryMissingFile(t *testing.T) {
	h := newHarness(t, domain.RunStoredQuery, "", "")

	err := h.ctrl.Run(context.Background())

	var dataErr *domain.DataSourceError
	require.True(t, errors.As(err, &dataErr))
	assert.Zero(t, h.remote.calls)
	assert.Zero(t, h.presenter.calls)
}

func TestEmptyFavoritesIsSuccess(t *testing.T) {
	h := newHarness(t, domain.ShowFavorites, "", "")
	h.remote.posts = []domain.FavoritePost{}

	require.NoError(t, h.ctrl.Run(context.Background()))
	assert.Equal(t, 1, h.presenter.calls)
	assert.Empty(t, h.presenter.favorites)
}

func TestNoMatchPresentsNothing(t *testing.T) {
	h := newHarness(t, domain.SearchSong, "zzzzqqqq", "")
	h.remote.err = &domain.NoMatchError{Service: "spotify", Query: "zzzzqqqq"}

	err := h.ctrl.Run(context.Background())

	var noMatch *domain.NoMatchError
	require.True(t, errors.As(err, &noMatch))
	assert.Equal(t, domain.ExitNoMatch, domain.ExitCode(err))
	assert.Equal(t, 1, h.remote.calls)
	assert.Zero(t, h.presenter.calls)
}

func TestSelectionErrorStopsBeforeDispatch(t *testing.T) {
	h := newHarness(t, domain.SearchSong, "", "")
	h.prompter.selectErr = domain.ErrAborted

	err := h.ctrl.Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrAborted)
	assert.Zero(t, h.remote.calls)
	assert.Empty(t, h.prompter.asked)
}

func TestUnknownSelection(t *testing.T) {
	h := newHarness(t, domain.Selection(99), "", "")

	err := h.ctrl.Run(context.Background())

	var selErr *domain.UnknownSelectionError
	require.True(t, errors.As(err, &selErr))
	assert.Equal(t, domain.ExitUnknownSelection, domain.ExitCode(err))
	assert.Zero(t, h.remote.calls)
}

func TestPreflightFailureSkipsRemoteCall(t *testing.T) {
	h := newHarness(t, domain.ShowFavorites, "", "")
	h.ctrl.preflight = func(sel domain.Selection) error {
		return errors.New("social bearer token is required")
	}

	err := h.ctrl.Run(context.Background())
	require.Error(t, err)
	assert.Equal(t, domain.ExitFailure, domain.ExitCode(err))
	assert.Zero(t, h.remote.calls)
}
