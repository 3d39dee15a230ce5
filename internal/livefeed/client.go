package livefeed

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"
)

// DefaultFeedURL is the WHO disease outbreak news endpoint
const DefaultFeedURL = "https://www.who.int/api/news/diseaseoutbreaknews"

// Client fetches outbreak news from an external feed. The fetch is strictly
// best-effort: any failure returns nil rather than an error.
type Client struct {
	feedURL    string
	httpClient *http.Client
}

// Config holds configuration for the live feed client
type Config struct {
	FeedURL string
	Timeout time.Duration // Default: 5s
}

// NewClient creates a new live feed client
func NewClient(config Config) *Client {
	if config.FeedURL == "" {
		config.FeedURL = DefaultFeedURL
	}
	if config.Timeout == 0 {
		config.Timeout = 5 * time.Second
	}

	return &Client{
		feedURL: config.FeedURL,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Fetch retrieves the current outbreak news payload. It returns nil on any
// failure (network, non-2xx status, malformed payload) and never blocks
// beyond the configured timeout.
func (c *Client) Fetch(ctx context.Context) map[string]interface{} {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Live feed fetch failed: %v", err)
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Printf("Live feed returned status %d", resp.StatusCode)
		return nil
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Printf("Live feed returned malformed payload: %v", err)
		return nil
	}

	return payload
}
