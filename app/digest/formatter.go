package digest

import (
	"fmt"

	"github.com/digestlab/ai-digest/app/feed"
	"github.com/digestlab/ai-digest/app/sources"
)

// Single placeholders returned when a category produces no items. An
// aggregation result is never empty: the worst case is one of these lines.
const (
	noNewsPlaceholder         = "No AI news found today."
	noPodcastsPlaceholder     = "No new podcast episodes found."
	noPublicationsPlaceholder = "No new AI publications today."
	noProjectsPlaceholder     = "No project ideas found today."
	noCaseStudiesPlaceholder  = "No case studies available."
)

func placeholderFor(category sources.Category) string {
	switch category {
	case sources.CategoryPodcast:
		return noPodcastsPlaceholder
	case sources.CategoryPublication:
		return noPublicationsPlaceholder
	default:
		return noNewsPlaceholder
	}
}

// formatItem renders one normalized item as its category's display line.
func formatItem(item feed.Item, category sources.Category) string {
	switch category {
	case sources.CategoryPodcast:
		return fmt.Sprintf("- **%s** (%s) → %s\n  🎧 %s",
			item.Title, item.PublishedLabel("2006-01-02"), item.Link, item.Body)
	case sources.CategoryPublication:
		return fmt.Sprintf("- %s by %s (%s) → %s",
			item.Title, item.Author, item.PublishedLabel("2006-01-02"), item.Link)
	default:
		line := fmt.Sprintf("- **%s** by %s (%s) → %s",
			item.Title, item.Author, item.PublishedLabel("2006-01-02 15:04"), item.Link)
		if item.Body != "" {
			line += "\n  📝 " + item.Body
		}
		return line
	}
}

func formatProjectIdea(headline, repoURL string) string {
	return fmt.Sprintf("- **%s**\n  💡 Related repo: %s", headline, repoURL)
}
