package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// NoRepoFound is the placeholder returned whenever a lookup cannot produce a
// repository URL, for any reason.
const NoRepoFound = "No repo found"

// Client searches the GitHub repository index. Lookups are best-effort: any
// failure degrades to the placeholder and nothing propagates to the caller.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	timeout    time.Duration
}

func NewClient(httpClient *http.Client, baseURL, token string, timeoutSeconds int) *Client {
	return &Client{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		timeout:    time.Duration(timeoutSeconds) * time.Second,
	}
}

// FindRepo resolves a headline to the most-starred repository matching its
// first word. The first-word heuristic is deliberately crude and is part of
// the contract; do not widen it to the full headline.
func (c *Client) FindRepo(ctx context.Context, headline string) string {
	term := firstWord(headline)
	if term == "" {
		return NoRepoFound
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	query := url.Values{
		"q":        {term},
		"sort":     {"stars"},
		"order":    {"desc"},
		"per_page": {"1"},
	}
	searchURL := fmt.Sprintf("%s/search/repositories?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", searchURL, nil)
	if err != nil {
		return NoRepoFound
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Debug("Repository search failed", "term", term, "error", err)
		return NoRepoFound
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Debug("Repository search returned non-OK status", "term", term, "status", resp.StatusCode)
		return NoRepoFound
	}

	var result struct {
		Items []struct {
			FullName string `json:"full_name"`
			HTMLURL  string `json:"html_url"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		slog.Debug("Repository search returned malformed body", "term", term, "error", err)
		return NoRepoFound
	}

	if len(result.Items) == 0 || result.Items[0].HTMLURL == "" {
		return NoRepoFound
	}

	return result.Items[0].HTMLURL
}

func firstWord(headline string) string {
	fields := strings.Fields(headline)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
