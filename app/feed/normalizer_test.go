package feed

import (
	"strings"
	"testing"
	"time"

	"github.com/digestlab/ai-digest/app/sources"
)

func TestNormalizeDefaults(t *testing.T) {
	item := Normalize(Entry{}, sources.CategoryNews)

	if item.Title != NoTitle {
		t.Errorf("Expected title %q, got: %q", NoTitle, item.Title)
	}
	if item.Author != UnknownAuthor {
		t.Errorf("Expected author %q, got: %q", UnknownAuthor, item.Author)
	}
	if item.Published != nil {
		t.Errorf("Expected nil published time, got: %v", item.Published)
	}
	if item.Link != NoLink {
		t.Errorf("Expected link %q, got: %q", NoLink, item.Link)
	}
	if item.Body != "" {
		t.Errorf("Expected empty news body without summary, got: %q", item.Body)
	}
}

func TestNormalizeNeverCoercesMissingTimestamp(t *testing.T) {
	item := Normalize(Entry{Title: "Dated entry"}, sources.CategoryNews)

	if item.Published != nil {
		t.Error("Expected missing timestamp to stay absent, not default to now")
	}
	if item.PublishedLabel("2006-01-02") != UnknownDate {
		t.Errorf("Expected unknown date label, got: %q", item.PublishedLabel("2006-01-02"))
	}
}

func TestNormalizeAuthorJoin(t *testing.T) {
	tests := []struct {
		name     string
		authors  []string
		expected string
	}{
		{"single author", []string{"Jane Doe"}, "Jane Doe"},
		{"multiple authors", []string{"Jane Doe", "John Smith"}, "Jane Doe, John Smith"},
		{"no authors", nil, UnknownAuthor},
		{"empty list", []string{}, UnknownAuthor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Normalize(Entry{Authors: tt.authors}, sources.CategoryPublication)
			if item.Author != tt.expected {
				t.Errorf("Expected author %q, got: %q", tt.expected, item.Author)
			}
		})
	}
}

func TestNormalizeLinkFallback(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		expected string
	}{
		{
			"direct link wins",
			Entry{Link: "https://example.com/post", Enclosures: []Enclosure{{URL: "https://example.com/audio.mp3"}}},
			"https://example.com/post",
		},
		{
			"first enclosure URL",
			Entry{Enclosures: []Enclosure{{URL: "https://example.com/audio.mp3"}, {URL: "https://example.com/video.mp4"}}},
			"https://example.com/audio.mp3",
		},
		{
			"empty enclosure list is not indexed",
			Entry{Enclosures: []Enclosure{}},
			NoLink,
		},
		{
			"enclosure without URL",
			Entry{Enclosures: []Enclosure{{Type: "audio/mpeg"}}},
			NoLink,
		},
		{
			"nothing at all",
			Entry{},
			NoLink,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Normalize(tt.entry, sources.CategoryPodcast)
			if item.Link != tt.expected {
				t.Errorf("Expected link %q, got: %q", tt.expected, item.Link)
			}
		})
	}
}

func TestNormalizePodcastBodyChain(t *testing.T) {
	tests := []struct {
		name     string
		entry    Entry
		expected string
	}{
		{
			"inline transcript wins",
			Entry{Transcript: "Full transcript text", Summary: "A summary"},
			"Full transcript text...",
		},
		{
			"transcript link relation by rel",
			Entry{
				Links:   []Link{{Href: "https://example.com/ep1"}, {Href: "https://example.com/ep1.txt", Rel: "transcript"}},
				Summary: "A summary",
			},
			"Transcript available here: https://example.com/ep1.txt...",
		},
		{
			"transcript link relation by MIME type",
			Entry{
				Links:   []Link{{Href: "https://example.com/ep1.vtt", Type: "text/transcript-vtt"}},
				Summary: "A summary",
			},
			"Transcript available here: https://example.com/ep1.vtt...",
		},
		{
			"summary fallback is trimmed",
			Entry{Summary: "  hello world  "},
			"hello world...",
		},
		{
			"placeholder when nothing is available",
			Entry{},
			NoSummary + "...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := Normalize(tt.entry, sources.CategoryPodcast)
			if item.Body != tt.expected {
				t.Errorf("Expected body %q, got: %q", tt.expected, item.Body)
			}
		})
	}
}

func TestNormalizeNewsBody(t *testing.T) {
	item := Normalize(Entry{Summary: "  breaking story  "}, sources.CategoryNews)
	if item.Body != "breaking story..." {
		t.Errorf("Expected trimmed summary with ellipsis, got: %q", item.Body)
	}

	// Unlike podcasts, a news entry without a summary gets no placeholder
	item = Normalize(Entry{Title: "Headline"}, sources.CategoryNews)
	if item.Body != "" {
		t.Errorf("Expected empty body for news entry without summary, got: %q", item.Body)
	}
}

func TestNormalizePublicationBodyUnused(t *testing.T) {
	item := Normalize(Entry{Summary: "Abstract text"}, sources.CategoryPublication)
	if item.Body != "" {
		t.Errorf("Expected empty body for publication entries, got: %q", item.Body)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		limit    int
		expected string
	}{
		{"short text keeps ellipsis", "hello world", 640, "hello world..."},
		{"exact budget", "abcde", 5, "abcde..."},
		{"over budget cuts mid-word", "abcdefgh", 5, "abcde..."},
		{"empty text", "", 220, "..."},
		{"multibyte runes are not split", "héllo wörld", 7, "héllo w..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Truncate(tt.text, tt.limit)
			if result != tt.expected {
				t.Errorf("Expected %q, got: %q", tt.expected, result)
			}
		})
	}
}

func TestTruncateProperties(t *testing.T) {
	inputs := []string{"", "x", strings.Repeat("a", 219), strings.Repeat("a", 220), strings.Repeat("a", 10000)}

	for _, input := range inputs {
		result := Truncate(input, NewsBodyLimit)
		if !strings.HasSuffix(result, ellipsis) {
			t.Errorf("Expected result to end with ellipsis for input length %d", len(input))
		}
		if got := len([]rune(result)); got > NewsBodyLimit+len(ellipsis) {
			t.Errorf("Expected at most %d runes, got: %d", NewsBodyLimit+len(ellipsis), got)
		}
	}
}

func TestNormalizePreservesTimestamp(t *testing.T) {
	published := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)
	item := Normalize(Entry{Published: &published}, sources.CategoryNews)

	if item.Published == nil || !item.Published.Equal(published) {
		t.Errorf("Expected published time %v, got: %v", published, item.Published)
	}
	if item.PublishedLabel("2006-01-02 15:04") != "2025-03-14 09:30" {
		t.Errorf("Unexpected published label: %q", item.PublishedLabel("2006-01-02 15:04"))
	}
}
