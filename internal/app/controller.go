package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmcdole/liri/internal/domain"
	"github.com/mmcdole/liri/internal/fallback"
)

// Prompt text shown to the user
const (
	MenuTitle     = "Select Your Search Option"
	SongQuestion  = "Which song should I search for ?"
	MovieQuestion = "Which movie should I search for ?"
)

// Controller runs one menu selection through to presented output
type Controller struct {
	prompter  domain.Prompter
	favorites domain.FavoritesSource
	songs     domain.SongSearcher
	movies    domain.MovieLookup
	presenter domain.Presenter

	fallbackPath string
	preflight    func(domain.Selection) error
	logger       *slog.Logger
}

// Options are the collaborators a Controller dispatches to
type Options struct {
	Prompter  domain.Prompter
	Favorites domain.FavoritesSource
	Songs     domain.SongSearcher
	Movies    domain.MovieLookup
	Presenter domain.Presenter

	// FallbackPath is the stored query file read by do-what-it-says
	FallbackPath string
	// Preflight, if set, runs after selection and before any remote call
	Preflight func(domain.Selection) error
	Logger    *slog.Logger
}

// NewController creates a controller from its collaborators
func NewController(opts Options) *Controller {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		prompter:     opts.Prompter,
		favorites:    opts.Favorites,
		songs:        opts.Songs,
		movies:       opts.Movies,
		presenter:    opts.Presenter,
		fallbackPath: opts.FallbackPath,
		preflight:    opts.Preflight,
		logger:       logger,
	}
}

// Run asks for one selection and performs it. It never returns to the menu.
func (c *Controller) Run(ctx context.Context) error {
	sel, err := c.prompter.Select(ctx, MenuTitle, domain.Selections())
	if err != nil {
		return err
	}

	c.logger.Info("selection made", "selection", sel.String())
	return c.Dispatch(ctx, sel)
}

// Dispatch performs the action for sel
func (c *Controller) Dispatch(ctx context.Context, sel domain.Selection) error {
	if !sel.Valid() {
		c.logger.Info("no right option", "selection", int(sel))
		return &domain.UnknownSelectionError{Input: sel.String()}
	}

	if c.preflight != nil {
		if err := c.preflight(sel); err != nil {
			return err
		}
	}

	switch sel {
	case domain.ShowFavorites:
		return c.showFavorites(ctx)
	case domain.SearchSong:
		query, err := c.ask(ctx, SongQuestion, domain.DefaultSong)
		if err != nil {
			return err
		}
		return c.searchSong(ctx, query)
	case domain.SearchMovie:
		title, err := c.ask(ctx, MovieQuestion, domain.DefaultMovie)
		if err != nil {
			return err
		}
		return c.searchMovie(ctx, title)
	case domain.RunStoredQuery:
		query, err := fallback.ReadQuery(c.fallbackPath)
		if err != nil {
			return err
		}
		c.logger.Debug("read stored query", "path", c.fallbackPath, "query", query)
		return c.searchSong(ctx, query)
	}

	// Valid() covers every case above
	return &domain.UnknownSelectionError{Input: sel.String()}
}

// ask prompts for free text, substituting def for an empty answer
func (c *Controller) ask(ctx context.Context, question, def string) (string, error) {
	answer, err := c.prompter.Ask(ctx, question)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(answer) == "" {
		return def, nil
	}
	return strings.TrimSpace(answer), nil
}

func (c *Controller) showFavorites(ctx context.Context) error {
	posts, err := c.favorites.Favorites(ctx)
	if err != nil {
		return fmt.Errorf("my-tweets: %w", err)
	}
	c.logger.Info("presenting favorites", "count", len(posts))
	c.presenter.Favorites(posts)
	return nil
}

func (c *Controller) searchSong(ctx context.Context, query string) error {
	song, err := c.songs.SearchTrack(ctx, query)
	if err != nil {
		return fmt.Errorf("song search: %w", err)
	}
	c.logger.Info("presenting song", "query", query, "title", song.Title)
	c.presenter.Song(song)
	return nil
}

func (c *Controller) searchMovie(ctx context.Context, title string) error {
	movie, err := c.movies.LookupTitle(ctx, title)
	if err != nil {
		return fmt.Errorf("movie search: %w", err)
	}
	c.logger.Info("presenting movie", "query", title, "title", movie.Title)
	c.presenter.Movie(movie)
	return nil
}
