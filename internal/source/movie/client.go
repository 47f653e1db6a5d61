package movie

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mmcdole/liri/internal/domain"
)

const (
	serviceName    = "omdb"
	defaultTimeout = 30 * time.Second
)

// Client looks up movie metadata in OMDb
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a new OMDb client. A zero timeout uses the default.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// LookupTitle fetches the movie with the given exact title
func (c *Client) LookupTitle(ctx context.Context, title string) (domain.MovieResult, error) {
	query := url.Values{}
	query.Set("apikey", c.apiKey)
	query.Set("t", title)

	body, err := c.doRequest(ctx, query)
	if err != nil {
		return domain.MovieResult{}, err
	}

	var resp Response
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.MovieResult{}, &domain.MalformedResponseError{Service: serviceName, Reason: "failed to parse response", Err: err}
	}

	if resp.Title == "" {
		reason := "missing Title"
		if resp.Error != "" {
			reason = fmt.Sprintf("missing Title (%s)", resp.Error)
		}
		return domain.MovieResult{}, &domain.MalformedResponseError{Service: serviceName, Reason: reason}
	}

	c.logger.Debug("omdb match", "query", title, "title", resp.Title, "year", resp.Year)
	return MapMovie(resp), nil
}

// doRequest performs one GET against OMDb. No retries.
func (c *Client) doRequest(ctx context.Context, query url.Values) ([]byte, error) {
	reqURL := c.baseURL
	if query != nil {
		sep := "?"
		if strings.Contains(reqURL, "?") {
			sep = "&"
		}
		reqURL = reqURL + sep + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.Debug("omdb request", "title", query.Get("t"))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("omdb request failed", "error", err)
		return nil, &domain.RemoteAPIError{Service: serviceName, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.RemoteAPIError{Service: serviceName, StatusCode: resp.StatusCode, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("omdb request error", "status", resp.StatusCode, "body", string(body))
		return nil, &domain.RemoteAPIError{Service: serviceName, StatusCode: resp.StatusCode, Err: errors.New(strings.TrimSpace(string(body)))}
	}

	return body, nil
}

// MapMovie converts an OMDb response to a MovieResult
func MapMovie(resp Response) domain.MovieResult {
	return domain.MovieResult{
		Title:                resp.Title,
		Year:                 resp.Year,
		IMDBRating:           resp.IMDBRating,
		RottenTomatoesRating: rottenTomatoesRating(resp.Ratings),
		Country:              resp.Country,
		Language:             resp.Language,
		Plot:                 resp.Plot,
		Actors:               resp.Actors,
	}
}

func rottenTomatoesRating(ratings []Rating) string {
	if len(ratings) <= rottenTomatoesIndex || ratings[rottenTomatoesIndex].Value == "" {
		return domain.NotAvailable
	}
	return ratings[rottenTomatoesIndex].Value
}
