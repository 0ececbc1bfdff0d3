package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"strconv"
	"strings"

	"github.com/mmcdole/gofeed"
)

type Parser struct {
	gofeedParser *gofeed.Parser
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
	}
}

// Run parses raw feed data into loosely-structured entries. No field is
// defaulted here; resolution happens in Normalize.
func (p *Parser) Run(data []byte) ([]Entry, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	entries := make([]Entry, 0, len(feed.Items))
	for _, item := range feed.Items {
		if item == nil {
			continue
		}
		entries = append(entries, p.convertItem(item))
	}

	return entries, nil
}

func (p *Parser) convertItem(item *gofeed.Item) Entry {
	entry := Entry{
		GUID:       cmp.Or(item.GUID, item.Link),
		Title:      item.Title,
		Link:       item.Link,
		Summary:    item.Description,
		Content:    item.Content,
		Authors:    p.extractAuthors(item),
		Links:      p.extractLinks(item),
		Transcript: p.extractTranscript(item),
	}

	if item.PublishedParsed != nil {
		entry.Published = item.PublishedParsed
	} else if item.UpdatedParsed != nil {
		entry.Published = item.UpdatedParsed
	}

	for _, enclosure := range item.Enclosures {
		if enclosure == nil {
			continue
		}
		converted := Enclosure{
			URL:  enclosure.URL,
			Type: enclosure.Type,
		}
		if enclosure.Length != "" {
			if length, err := strconv.ParseInt(enclosure.Length, 10, 64); err == nil {
				converted.Length = length
			}
		}
		entry.Enclosures = append(entry.Enclosures, converted)
	}

	return entry
}

func (p *Parser) extractAuthors(item *gofeed.Item) []string {
	var authors []string

	if len(item.Authors) > 0 {
		for _, author := range item.Authors {
			if author != nil {
				authorStr := p.formatAuthor(author.Name, author.Email)
				if authorStr != "" {
					authors = append(authors, authorStr)
				}
			}
		}
	} else if item.Author != nil {
		authorStr := p.formatAuthor(item.Author.Name, item.Author.Email)
		if authorStr != "" {
			authors = append(authors, authorStr)
		}
	}

	return authors
}

func (p *Parser) formatAuthor(name, email string) string {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name != "" {
		return name
	}
	return email
}

// extractLinks collects every link relation visible on the item. gofeed
// models plain hrefs directly; rel/type-qualified relations (atom:link in
// RSS items, podcast:transcript pointers) only survive in the extension
// tree.
func (p *Parser) extractLinks(item *gofeed.Item) []Link {
	var links []Link

	for _, href := range item.Links {
		if href != "" {
			links = append(links, Link{Href: href})
		}
	}

	for _, ext := range item.Extensions["atom"]["link"] {
		link := Link{
			Href: ext.Attrs["href"],
			Rel:  ext.Attrs["rel"],
			Type: ext.Attrs["type"],
		}
		if link.Href != "" {
			links = append(links, link)
		}
	}

	for _, ext := range item.Extensions["podcast"]["transcript"] {
		link := Link{
			Href: ext.Attrs["url"],
			Rel:  "transcript",
			Type: ext.Attrs["type"],
		}
		if link.Href != "" {
			links = append(links, link)
		}
	}

	return links
}

// extractTranscript returns inline transcript text when the feed embeds one
// directly. Transcript URLs are handled as link relations instead.
func (p *Parser) extractTranscript(item *gofeed.Item) string {
	for _, ext := range item.Extensions["podcast"]["transcript"] {
		if text := strings.TrimSpace(ext.Value); text != "" {
			return text
		}
	}

	if text, ok := item.Custom["transcript"]; ok {
		return strings.TrimSpace(text)
	}

	return ""
}
