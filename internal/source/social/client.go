package social

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/oauth2"

	"github.com/mmcdole/liri/internal/domain"
)

const (
	serviceName    = "twitter"
	defaultTimeout = 30 * time.Second
	favoritesPath  = "favorites/list.json"
)

// Client fetches favorited tweets from the Twitter v1.1 API
type Client struct {
	baseURL    string
	screenName string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a favorites client authenticated with an app bearer token.
// A zero timeout uses the default.
func NewClient(baseURL, bearerToken, screenName string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	base := &http.Client{Timeout: timeout}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	httpClient := oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{
		AccessToken: bearerToken,
		TokenType:   "Bearer",
	}))
	httpClient.Timeout = timeout

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/") + "/",
		screenName: screenName,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Favorites returns the most recent favorited posts in API order.
// An empty list is not an error.
func (c *Client) Favorites(ctx context.Context) ([]domain.FavoritePost, error) {
	query := url.Values{}
	query.Set("count", strconv.Itoa(domain.FavoritesPageSize))
	query.Set("tweet_mode", "extended")
	if c.screenName != "" {
		query.Set("screen_name", c.screenName)
	}

	body, err := c.doRequest(ctx, favoritesPath, query)
	if err != nil {
		return nil, err
	}

	var tweets []Tweet
	if err := json.Unmarshal(body, &tweets); err != nil {
		return nil, &domain.MalformedResponseError{Service: serviceName, Reason: "failed to parse favorites", Err: err}
	}

	posts := MapFavorites(tweets)
	if len(posts) > domain.FavoritesPageSize {
		posts = posts[:domain.FavoritesPageSize]
	}
	c.logger.Debug("fetched favorites", "count", len(posts))
	return posts, nil
}

// doRequest performs one GET against the API. No retries.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.baseURL + path
	if query != nil {
		reqURL = fmt.Sprintf("%s?%s", reqURL, query.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("twitter request", "url", reqURL)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("twitter request failed", "error", err)
		return nil, &domain.RemoteAPIError{Service: serviceName, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RemoteAPIError{Service: serviceName, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr ErrorResponse
		msg := strings.TrimSpace(string(body))
		if json.Unmarshal(body, &apiErr) == nil && apiErr.message() != "" {
			msg = apiErr.message()
		}
		c.logger.Error("twitter request error", "status", resp.StatusCode, "body", string(body))
		return nil, &domain.RemoteAPIError{Service: serviceName, StatusCode: resp.StatusCode, Err: errors.New(msg)}
	}

	return body, nil
}

// MapFavorites converts API tweets to domain posts, preserving order
func MapFavorites(tweets []Tweet) []domain.FavoritePost {
	posts := make([]domain.FavoritePost, 0, len(tweets))
	for _, t := range tweets {
		text := t.FullText
		if text == "" {
			text = t.Text
		}
		posts = append(posts, domain.FavoritePost{
			Text:              text,
			AuthorDescription: t.User.Description,
		})
	}
	return posts
}
