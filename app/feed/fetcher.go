package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client downloads and parses feed documents. The same client also serves
// raw page downloads for article extraction.
type Client struct {
	httpClient *http.Client
	parser     *Parser
	userAgent  string
	timeout    time.Duration
}

func NewClient(httpClient *http.Client, userAgent string, timeoutSeconds int) *Client {
	return &Client{
		httpClient: httpClient,
		parser:     NewParser(),
		userAgent:  userAgent,
		timeout:    time.Duration(timeoutSeconds) * time.Second,
	}
}

func (c *Client) Fetch(ctx context.Context, url string) ([]Entry, error) {
	data, err := c.FetchPage(ctx, url)
	if err != nil {
		return nil, err
	}

	return c.parser.Run(data)
}

func (c *Client) FetchPage(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}
