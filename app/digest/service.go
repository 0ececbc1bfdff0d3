package digest

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
	"sync"
	"time"

	"github.com/digestlab/ai-digest/app/feed"
	"github.com/digestlab/ai-digest/app/sources"
)

// Default per-call item caps, matching the tool surface defaults.
const (
	DefaultNewsLimit        = 20
	DefaultPodcastLimit     = 5
	DefaultPublicationLimit = 8
	DefaultCaseStudyLimit   = 8
	DefaultProjectLimit     = 3
)

// caseStudyLinks is a static list; no fetch is involved.
var caseStudyLinks = []string{
	"https://huggingface.co/blog?tag=case-studies",
	"https://www.kdnuggets.com/",
}

// Fetcher retrieves and parses one feed endpoint.
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]feed.Entry, error)
}

// RepoFinder resolves a headline to a repository URL. Implementations never
// fail; they answer with a placeholder instead.
type RepoFinder interface {
	FindRepo(ctx context.Context, headline string) string
}

// Service implements the content aggregation operations behind the tool
// surface. It holds no mutable state: every call re-fetches the configured
// sources and composes its result from scratch.
type Service struct {
	registry *sources.Registry
	fetcher  Fetcher
	repos    RepoFinder
	workers  int

	// now is swapped in tests to pin the today filter.
	now func() time.Time
}

func NewService(registry *sources.Registry, fetcher Fetcher, repos RepoFinder, workers int) *Service {
	if workers < 1 {
		workers = 1
	}
	return &Service{
		registry: registry,
		fetcher:  fetcher,
		repos:    repos,
		workers:  workers,
		now:      time.Now,
	}
}

// News aggregates the news sources. A non-empty source name restricts the
// run to that single registry entry; an unrecognized name produces a
// one-element result naming the valid options instead of an error.
func (s *Service) News(ctx context.Context, todayOnly bool, maxItems int, source string) []string {
	srcs := s.registry.Category(sources.CategoryNews)

	if source != "" {
		src, ok := s.registry.Find(sources.CategoryNews, source)
		if !ok {
			return []string{fmt.Sprintf("Unknown source %q. Valid sources: %s",
				source, strings.Join(s.registry.Names(sources.CategoryNews), ", "))}
		}
		srcs = []sources.Source{src}
	}

	return s.collect(ctx, sources.CategoryNews, todayOnly, maxItems, srcs)
}

// Podcasts aggregates the podcast sources. The standalone tool applies no
// date filter; the daily digest calls collect directly with todayOnly set.
func (s *Service) Podcasts(ctx context.Context, maxItems int) []string {
	return s.collect(ctx, sources.CategoryPodcast, false, maxItems,
		s.registry.Category(sources.CategoryPodcast))
}

// Publications aggregates the research publication sources.
func (s *Service) Publications(ctx context.Context, todayOnly bool, maxItems int) []string {
	return s.collect(ctx, sources.CategoryPublication, todayOnly, maxItems,
		s.registry.Category(sources.CategoryPublication))
}

// CaseStudies returns the static case-study link list trimmed to maxItems.
func (s *Service) CaseStudies(maxItems int) []string {
	if maxItems <= 0 {
		return []string{noCaseStudiesPlaceholder}
	}
	links := caseStudyLinks
	if len(links) > maxItems {
		links = links[:maxItems]
	}
	out := make([]string, len(links))
	copy(out, links)
	return out
}

// ProjectIdeas correlates today's news headlines with repository lookups.
// Headlines are shuffled before the cap is applied, so repeated calls
// surface different suggestions from the same day's news.
func (s *Service) ProjectIdeas(ctx context.Context, maxProjects int) []string {
	if maxProjects <= 0 {
		return []string{noProjectsPlaceholder}
	}

	items := s.collectItems(ctx, sources.CategoryNews, true, DefaultNewsLimit,
		s.registry.Category(sources.CategoryNews))
	if len(items) == 0 {
		return []string{noProjectsPlaceholder}
	}

	headlines := make([]string, len(items))
	for i, item := range items {
		headlines[i] = item.Title
	}
	rand.Shuffle(len(headlines), func(i, j int) {
		headlines[i], headlines[j] = headlines[j], headlines[i]
	})
	if len(headlines) > maxProjects {
		headlines = headlines[:maxProjects]
	}

	ideas := make([]string, 0, len(headlines))
	for _, headline := range headlines {
		ideas = append(ideas, formatProjectIdea(headline, s.repos.FindRepo(ctx, headline)))
	}
	return ideas
}

// Digest composes the full daily report: greeting plus the four category
// sections in fixed order. Always succeeds; every section already guarantees
// a non-empty placeholder.
func (s *Service) Digest(ctx context.Context, name string) string {
	greeting := "👋 Good morning!\n"
	if name != "" {
		greeting = fmt.Sprintf("👋 Good morning, %s!\n", name)
	}

	episodes := s.collect(ctx, sources.CategoryPodcast, true, DefaultPodcastLimit,
		s.registry.Category(sources.CategoryPodcast))
	news := s.collect(ctx, sources.CategoryNews, true, DefaultNewsLimit,
		s.registry.Category(sources.CategoryNews))
	pubs := s.collect(ctx, sources.CategoryPublication, true, DefaultPublicationLimit,
		s.registry.Category(sources.CategoryPublication))
	ideas := s.ProjectIdeas(ctx, DefaultProjectLimit)

	var b strings.Builder
	b.WriteString(greeting)
	b.WriteString("\n📰 AI Podcasts' Summary (Today):\n" + strings.Join(episodes, "\n") + "\n")
	b.WriteString("\n📰 AI News (Today):\n" + strings.Join(news, "\n") + "\n")
	b.WriteString("\n📚 Publications (Today):\n" + strings.Join(pubs, "\n") + "\n")
	b.WriteString("\n💡 Project Ideas (Today):\n" + strings.Join(ideas, "\n") + "\n")

	return b.String()
}

// collect runs one aggregation and formats the surviving items. An empty
// result degrades to the category placeholder, never an empty list.
func (s *Service) collect(ctx context.Context, category sources.Category, todayOnly bool, maxItems int, srcs []sources.Source) []string {
	items := s.collectItems(ctx, category, todayOnly, maxItems, srcs)
	if len(items) == 0 {
		return []string{placeholderFor(category)}
	}

	lines := make([]string, 0, len(items))
	for _, item := range items {
		lines = append(lines, formatItem(item, category))
	}
	return lines
}

// collectItems fans the per-source fetches out across a bounded worker pool
// and assembles the normalized, filtered items strictly in registry order.
// A failing source is logged and contributes nothing; it never aborts the
// aggregation. Both the per-source contribution and the final list are
// capped at maxItems, so the result is "first N in source order", not
// "globally freshest N".
func (s *Service) collectItems(ctx context.Context, category sources.Category, todayOnly bool, maxItems int, srcs []sources.Source) []feed.Item {
	if maxItems <= 0 || len(srcs) == 0 {
		return nil
	}

	now := s.now()
	results := make([][]feed.Item, len(srcs))

	var wg sync.WaitGroup
	sem := make(chan struct{}, s.workers)

	for i, src := range srcs {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			entries, err := s.fetcher.Fetch(ctx, src.URL)
			if err != nil {
				slog.Warn("Feed fetch failed", "source", src.Name, "error", err)
				return
			}

			var items []feed.Item
			for _, entry := range entries {
				item := feed.Normalize(entry, category)
				if !matchesToday(item.Published, todayOnly, now) {
					continue
				}
				items = append(items, item)
				if len(items) >= maxItems {
					break
				}
			}
			results[i] = items
		}()
	}
	wg.Wait()

	var out []feed.Item
	for _, items := range results {
		out = append(out, items...)
	}
	if len(out) > maxItems {
		out = out[:maxItems]
	}
	return out
}
