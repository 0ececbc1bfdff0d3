package feed

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/go-shiori/go-readability"
)

// Article is the readable part of a fetched page.
type Article struct {
	Title  string
	Byline string
	Text   string
}

// ContentExtractor pulls the readable article text out of a web page. Unlike
// the aggregation pipeline this component reports errors to the caller: it is
// a direct lookup, not a best-effort fan-out.
type ContentExtractor struct {
	client *Client
}

func NewContentExtractor(client *Client) *ContentExtractor {
	return &ContentExtractor{client: client}
}

func (e *ContentExtractor) Extract(ctx context.Context, pageURL string) (Article, error) {
	data, err := e.client.FetchPage(ctx, pageURL)
	if err != nil {
		return Article{}, err
	}

	return e.Run(data, pageURL)
}

func (e *ContentExtractor) Run(data []byte, pageURL string) (Article, error) {
	if len(data) == 0 {
		return Article{}, fmt.Errorf("HTML data is empty")
	}

	// A nil base URL is fine; readability only uses it to resolve
	// relative links.
	base, _ := url.Parse(pageURL)

	parsed, err := readability.FromReader(bytes.NewReader(data), base)
	if err != nil {
		return Article{}, fmt.Errorf("failed to extract content: %w", err)
	}

	text := strings.TrimSpace(parsed.TextContent)
	if text == "" {
		return Article{}, fmt.Errorf("no content extracted from HTML data")
	}

	slog.Debug("Content extracted successfully",
		"title", parsed.Title,
		"content_length", len(text))

	return Article{
		Title:  parsed.Title,
		Byline: parsed.Byline,
		Text:   text,
	}, nil
}
