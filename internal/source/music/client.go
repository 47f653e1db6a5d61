package music

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/mmcdole/liri/internal/domain"
)

const (
	serviceName    = "spotify"
	defaultTimeout = 30 * time.Second
)

// Client searches the Spotify catalog for tracks
type Client struct {
	api    *spotify.Client
	logger *slog.Logger
}

// Options configures a Spotify client
type Options struct {
	BaseURL      string
	TokenURL     string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// NewClient creates a Spotify client using the client-credentials grant.
// The token is fetched lazily on the first search.
func NewClient(opts Options, logger *slog.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	creds := &clientcredentials.Config{
		ClientID:     opts.ClientID,
		ClientSecret: opts.ClientSecret,
		TokenURL:     opts.TokenURL,
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, &http.Client{Timeout: timeout})
	httpClient := creds.Client(ctx)
	httpClient.Timeout = timeout

	return NewClientWithHTTP(httpClient, opts.BaseURL, logger)
}

// NewClientWithHTTP wraps an already authenticated HTTP client
func NewClientWithHTTP(httpClient *http.Client, baseURL string, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}

	var clientOpts []spotify.ClientOption
	if baseURL != "" {
		clientOpts = append(clientOpts, spotify.WithBaseURL(strings.TrimRight(baseURL, "/")+"/"))
	}

	return &Client{
		api:    spotify.New(httpClient, clientOpts...),
		logger: logger,
	}
}

// SearchTrack returns the first track matching query
func (c *Client) SearchTrack(ctx context.Context, query string) (domain.SongResult, error) {
	c.logger.Debug("spotify search", "query", query)

	res, err := c.api.Search(ctx, query, spotify.SearchTypeTrack, spotify.Limit(1))
	if err != nil {
		c.logger.Error("spotify search failed", "query", query, "error", err)
		return domain.SongResult{}, &domain.RemoteAPIError{Service: serviceName, Err: err}
	}

	if res.Tracks == nil || len(res.Tracks.Tracks) == 0 {
		return domain.SongResult{}, &domain.NoMatchError{Service: serviceName, Query: query}
	}

	song, err := MapTrack(res.Tracks.Tracks[0])
	if err != nil {
		return domain.SongResult{}, err
	}

	c.logger.Debug("spotify match", "query", query, "track", song.Title)
	return song, nil
}

// MapTrack converts a Spotify track to a SongResult.
// The artist is the album's first artist, falling back to the track's.
func MapTrack(track spotify.FullTrack) (domain.SongResult, error) {
	artist := ""
	switch {
	case len(track.Album.Artists) > 0:
		artist = track.Album.Artists[0].Name
	case len(track.Artists) > 0:
		artist = track.Artists[0].Name
	}

	song := domain.SongResult{
		Title:        track.Name,
		Album:        track.Album.Name,
		Artist:       artist,
		ExternalLink: track.ExternalURLs["spotify"],
	}

	if song.Title == "" {
		return domain.SongResult{}, &domain.MalformedResponseError{Service: serviceName, Reason: "track has no name"}
	}
	if song.Artist == "" {
		return domain.SongResult{}, &domain.MalformedResponseError{Service: serviceName, Reason: fmt.Sprintf("track %q has no artist", song.Title)}
	}

	return song, nil
}
