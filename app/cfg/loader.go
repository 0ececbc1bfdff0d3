package cfg

import (
	"cmp"
	"fmt"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Transport configuration
	Transport    string `long:"transport" env:"TRANSPORT" default:"stdio" choice:"stdio" choice:"http" description:"Serving transport: stdio (JSON-RPC on stdin/stdout) or http"`
	Port         string `long:"port" env:"PORT" default:"8080" description:"HTTP transport port"`
	APIAccessKey string `long:"api-key" env:"API_ACCESS_KEY" description:"API access key required by the HTTP transport (optional)"`

	// Feed configuration
	SourcesFile string `long:"sources-file" env:"SOURCES_FILE" description:"YAML file overriding the built-in feed source registry (optional)"`
	FeedTimeout int    `long:"feed-timeout" env:"FEED_TIMEOUT" default:"30" description:"Per-source feed fetch timeout in seconds"`
	Workers     int    `long:"workers" env:"WORKERS" default:"4" description:"Number of concurrent source fetches per aggregation"`

	// Repository search configuration
	GitHubAPIURL  string `long:"github-api-url" env:"GITHUB_API_URL" default:"https://api.github.com" description:"GitHub API base URL for repository search"`
	GitHubToken   string `long:"github-token" env:"GITHUB_TOKEN" description:"GitHub API token for repository search (optional)"`
	SearchTimeout int    `long:"search-timeout" env:"SEARCH_TIMEOUT" default:"5" description:"Repository search timeout in seconds"`

	// Application metadata
	UserAgent   string `long:"user-agent" env:"USER_AGENT" description:"User agent string for HTTP requests"`
	Debug       bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
	ShowVersion bool   `long:"version" description:"Print version and exit"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.ShowVersion {
		fmt.Println("ai-digest " + GetVersion())
		return nil, nil
	}

	cfg := &Cfg{
		Transport:     raw.Transport,
		Port:          raw.Port,
		APIAccessKey:  raw.APIAccessKey,
		SourcesFile:   raw.SourcesFile,
		FeedTimeout:   raw.FeedTimeout,
		Workers:       raw.Workers,
		GitHubAPIURL:  raw.GitHubAPIURL,
		GitHubToken:   raw.GitHubToken,
		SearchTimeout: raw.SearchTimeout,
		UserAgent:     cmp.Or(raw.UserAgent, "ai-digest/"+GetVersion()),
		Debug:         raw.Debug,
		Version:       GetVersion(),
	}

	if cfg.Workers < 1 {
		cfg.Workers = 1
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}
