package source

import (
	"fmt"
	"log/slog"

	"github.com/mmcdole/liri/internal/config"
	"github.com/mmcdole/liri/internal/domain"
	"github.com/mmcdole/liri/internal/source/movie"
	"github.com/mmcdole/liri/internal/source/music"
	"github.com/mmcdole/liri/internal/source/social"
)

// Sources groups the three remote collaborators the controller dispatches to
type Sources struct {
	Favorites domain.FavoritesSource
	Songs     domain.SongSearcher
	Movies    domain.MovieLookup
}

// NewSources builds every client from the application config.
// Construction performs no network calls; credentials are checked per action
// by config.Validate.
func NewSources(cfg *config.Config, logger *slog.Logger) (*Sources, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}
	if cfg.Movie.BaseURL == "" {
		return nil, fmt.Errorf("movie base URL is required")
	}

	timeout := cfg.HTTP.Timeout

	return &Sources{
		Favorites: social.NewClient(cfg.Social.BaseURL, cfg.Social.BearerToken, cfg.Social.ScreenName, timeout, logger.With("source", "twitter")),
		Songs: music.NewClient(music.Options{
			BaseURL:      cfg.Music.BaseURL,
			TokenURL:     cfg.Music.TokenURL,
			ClientID:     cfg.Music.ClientID,
			ClientSecret: cfg.Music.ClientSecret,
			Timeout:      timeout,
		}, logger.With("source", "spotify")),
		Movies: movie.NewClient(cfg.Movie.BaseURL, cfg.Movie.APIKey, timeout, logger.With("source", "omdb")),
	}, nil
}
