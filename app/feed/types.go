package feed

import (
	"time"

	"github.com/lysyi3m/feed-ghost/app/configuration"
	"github.com/lysyi3m/feed-ghost/app/cookies"
)

// Feed parsing types

type Metadata struct {
	Title           string
	Link            string
	Description     string
	Language        string
	FeedPublishedAt *time.Time
}

type Item struct {
	GUID         string
	Title        string
	Link         string
	PublishedAt  time.Time
	Categories   []string
	EnclosureURL string // first enclosure, usually the .torrent file
}

// Entry is a feed item after name and link extraction
type Entry struct {
	GUID        string
	Name        string
	Link        string
	PublishedAt time.Time
	Categories  []string
	Cookies     cookies.Bag

	IsFiltered   bool
	FilterReason string
}

// Configuration file types

type Config struct {
	Name       string           // Derived from filename (without .yml extension)
	URL        string           `yaml:"url"`
	Settings   ConfigSettings   `yaml:"settings"`
	Extraction ConfigExtraction `yaml:"extraction"`
	Filters    []ConfigFilter   `yaml:"filters"`
}

type ConfigSettings struct {
	Enabled  bool          `yaml:"enabled"`
	Interval time.Duration `yaml:"interval"`
	MaxItems int           `yaml:"max_items"`
}

type ConfigExtraction struct {
	NamePattern   string               `yaml:"name_pattern"`
	LinkPattern   string               `yaml:"link_pattern"`
	LinkTransform any                  `yaml:"link_transform"` // [pattern, replacement]
	Cookies       []cookies.Definition `yaml:"cookies"`
}

type ConfigFilter struct {
	Field    string   `yaml:"field"`
	Includes []string `yaml:"includes"`
	Excludes []string `yaml:"excludes"`
}

// Aggregator is a validated configuration file, ready for extraction.
type Aggregator struct {
	*configuration.RSSAggregatorConfiguration

	Enabled  bool
	MaxItems int
	Filters  []ConfigFilter
}
