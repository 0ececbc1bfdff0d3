package sources

// Category partitions the source registry by content kind.
type Category string

const (
	CategoryNews        Category = "news"
	CategoryPodcast     Category = "podcast"
	CategoryPublication Category = "publication"
)

// Source is one feed endpoint in the registry. Immutable after startup.
type Source struct {
	Name     string
	Category Category
	URL      string
	Enabled  bool
}

// Registry holds the configured sources in declaration order. Iteration
// order determines aggregation output order, so the backing slice is never
// reordered.
type Registry struct {
	sources []Source
}

// New builds a registry from an explicit source list, preserving its order.
func New(srcs []Source) *Registry {
	return &Registry{sources: srcs}
}

// Default returns the built-in registry.
func Default() *Registry {
	return &Registry{
		sources: []Source{
			{Name: "huggingface", Category: CategoryNews, URL: "https://huggingface.co/blog/feed", Enabled: true},
			{Name: "kdnuggets", Category: CategoryNews, URL: "https://www.kdnuggets.com/feed", Enabled: true},
			{Name: "openai", Category: CategoryNews, URL: "https://openai.com/blog/rss", Enabled: true},
			{Name: "towardsai", Category: CategoryNews, URL: "https://towardsai.net/feed", Enabled: true},
			{Name: "googleai", Category: CategoryNews, URL: "https://blog.google/technology/ai/rss/", Enabled: true},
			{Name: "everydayai", Category: CategoryPodcast, URL: "https://rss.buzzsprout.com/2175779.rss", Enabled: true},
			{Name: "arxiv", Category: CategoryPublication, URL: "https://export.arxiv.org/rss/cs.AI", Enabled: true},
		},
	}
}

// Category returns the enabled sources of one category in registry order.
func (r *Registry) Category(category Category) []Source {
	var matched []Source
	for _, source := range r.sources {
		if source.Category == category && source.Enabled {
			matched = append(matched, source)
		}
	}
	return matched
}

// Names returns the enabled source names of one category in registry order.
func (r *Registry) Names(category Category) []string {
	var names []string
	for _, source := range r.Category(category) {
		names = append(names, source.Name)
	}
	return names
}

// Find looks up an enabled source of one category by name.
func (r *Registry) Find(category Category, name string) (Source, bool) {
	for _, source := range r.Category(category) {
		if source.Name == name {
			return source, true
		}
	}
	return Source{}, false
}

// All returns a copy of every configured source, including disabled ones.
func (r *Registry) All() []Source {
	out := make([]Source, len(r.sources))
	copy(out, r.sources)
	return out
}

func (r *Registry) Len() int {
	return len(r.sources)
}
