package configuration

import (
	"fmt"
	"net/url"
	"time"
)

const DefaultPollInterval = 15 * time.Minute

// RSSAggregatorConfiguration describes an aggregator that polls a single RSS or
// Atom feed.
type RSSAggregatorConfiguration struct {
	*AggregatorConfiguration

	url      string
	interval time.Duration
}

func NewRSSAggregatorConfiguration() *RSSAggregatorConfiguration {
	return &RSSAggregatorConfiguration{
		AggregatorConfiguration: NewAggregatorConfiguration(),
		interval:                DefaultPollInterval,
	}
}

func (c *RSSAggregatorConfiguration) GetURL() string {
	return c.url
}

// SetURL accepts absolute http and https URLs only.
func (c *RSSAggregatorConfiguration) SetURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid feed URL %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid feed URL %q: scheme must be http or https", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid feed URL %q: host is required", rawURL)
	}

	c.url = rawURL
	return nil
}

func (c *RSSAggregatorConfiguration) GetInterval() time.Duration {
	return c.interval
}

func (c *RSSAggregatorConfiguration) SetInterval(interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("poll interval must be positive, got %s", interval)
	}
	c.interval = interval
	return nil
}

// IsValid also requires a feed URL, which has no sensible default.
func (c *RSSAggregatorConfiguration) IsValid() bool {
	return c.AggregatorConfiguration.IsValid() && c.url != ""
}
