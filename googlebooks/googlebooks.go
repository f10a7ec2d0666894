// Package googlebooks is a thin client for the Google Books volumes search
// API. Responses are passed through undecoded beyond JSON, since the caller
// imposes no schema on them.
package googlebooks

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	serverError "github.com/kritsada-kn/book-catalog/errors"
	"golang.org/x/time/rate"
)

const DefaultBaseURL = "https://www.googleapis.com/books/v1/volumes"

type Client struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

func NewClient(baseURL string, timeout time.Duration) *Client {

	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		limiter: rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// FetchDetails searches the volumes API by stored title and author and
// returns the decoded response body unmodified. The query keeps the
// upstream's intitle/inauthor operators on the raw field values.
func (c *Client) FetchDetails(ctx context.Context, title string, author string) (any, error) {

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, serverError.UpstreamUnavailableError.New(err)
	}

	// Spaces are not valid in a request line; the upstream reads "+" as the
	// term separator either way.
	query := strings.ReplaceAll(fmt.Sprintf("intitle:%s+inauthor:%s", title, author), " ", "+")
	url := fmt.Sprintf("%s?q=%s", c.baseURL, query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, serverError.UpstreamUnavailableError.New(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serverError.UpstreamUnavailableError.New(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, serverError.UpstreamUnavailableError.New(fmt.Errorf("unexpected status code: %d", resp.StatusCode))
	}

	var details any
	if err := json.NewDecoder(resp.Body).Decode(&details); err != nil {
		return nil, serverError.UpstreamUnavailableError.New(err)
	}

	return details, nil
}
