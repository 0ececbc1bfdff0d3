package cfg

type Cfg struct {
	// Transport configuration
	Transport    string
	Port         string
	APIAccessKey string

	// Feed configuration
	SourcesFile string
	FeedTimeout int
	Workers     int

	// Repository search configuration
	GitHubAPIURL  string
	GitHubToken   string
	SearchTimeout int

	// Application metadata
	UserAgent string
	Debug     bool
	Version   string
}
