package feed

import (
	"strings"

	"github.com/digestlab/ai-digest/app/sources"
)

// Body character budgets per category. Truncation counts runes and cuts
// mid-word; the trailing ellipsis is appended even when the text fits the
// budget.
const (
	PodcastBodyLimit = 640
	NewsBodyLimit    = 220

	ellipsis = "..."
)

// Normalize resolves one raw entry into a fully-populated item. Total
// function: a missing field degrades to its documented default, never to an
// error. The publish time is the one exception that stays absent — coercing
// it to "now" would corrupt the today filter downstream.
func Normalize(entry Entry, category sources.Category) Item {
	item := Item{
		Title:     NoTitle,
		Author:    UnknownAuthor,
		Published: entry.Published,
		Link:      resolveLink(entry),
	}

	if title := strings.TrimSpace(entry.Title); title != "" {
		item.Title = title
	}

	if len(entry.Authors) > 0 {
		item.Author = strings.Join(entry.Authors, ", ")
	}

	switch category {
	case sources.CategoryPodcast:
		item.Body = Truncate(resolvePodcastBody(entry), PodcastBodyLimit)
	case sources.CategoryNews:
		if summary := strings.TrimSpace(entry.Summary); summary != "" {
			item.Body = Truncate(summary, NewsBodyLimit)
		}
	}

	return item
}

// resolveLink prefers the entry's direct link, then the first enclosure URL.
// An enclosure list that exists but is empty is never indexed.
func resolveLink(entry Entry) string {
	if entry.Link != "" {
		return entry.Link
	}
	if len(entry.Enclosures) > 0 && entry.Enclosures[0].URL != "" {
		return entry.Enclosures[0].URL
	}
	return NoLink
}

// resolvePodcastBody walks the podcast body chain: inline transcript text,
// then a link relation tagged as a transcript, then the summary, then the
// placeholder. First match wins.
func resolvePodcastBody(entry Entry) string {
	if entry.Transcript != "" {
		return entry.Transcript
	}

	for _, link := range entry.Links {
		if link.Rel == "transcript" || strings.Contains(link.Type, "transcript") {
			return "Transcript available here: " + link.Href
		}
	}

	if summary := strings.TrimSpace(entry.Summary); summary != "" {
		return summary
	}

	return NoSummary
}

// Truncate cuts text to at most limit runes and appends the ellipsis
// unconditionally, matching the display contract even for short text.
func Truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) > limit {
		text = string(runes[:limit])
	}
	return text + ellipsis
}
