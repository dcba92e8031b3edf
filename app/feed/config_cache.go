package feed

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lysyi3m/feed-ghost/app/configuration"
	"github.com/lysyi3m/feed-ghost/app/cookies"
)

// ConfigCache loads aggregator definitions from <feedsDir>/<name>.yml. Only the
// map is guarded; cached aggregators must be treated as read-only.
type ConfigCache struct {
	feedsDir string
	cache    map[string]*Aggregator
	mu       sync.RWMutex
}

func NewConfigCache(feedsDir string) *ConfigCache {
	return &ConfigCache{
		feedsDir: feedsDir,
		cache:    make(map[string]*Aggregator),
	}
}

func (cc *ConfigCache) Run() error {
	if _, err := os.Stat(cc.feedsDir); os.IsNotExist(err) {
		return nil
	}

	files, err := filepath.Glob(filepath.Join(cc.feedsDir, "*.yml"))
	if err != nil {
		return fmt.Errorf("failed to find YML files: %w", err)
	}

	for _, file := range files {
		fileName := filepath.Base(file)
		name := fileName[:len(fileName)-len(filepath.Ext(fileName))]

		aggregator, err := cc.LoadConfig(name)
		if err != nil {
			return fmt.Errorf("error loading %s: %w", file, err)
		}

		slog.Debug("Configuration loaded",
			"aggregator", name,
			"enabled", aggregator.Enabled,
			"interval", aggregator.GetInterval(),
			"transform", aggregator.GetLinkTransformPattern() != nil,
			"cookies", aggregator.GetLinkCookies() != nil)
	}

	return nil
}

func (cc *ConfigCache) LoadConfig(name string) (*Aggregator, error) {
	configFile := cc.getConfigFilePath(name)
	feedConfig, err := cc.parseConfig(configFile)
	if err != nil {
		return nil, err
	}

	feedConfig.Name = name

	if err := cc.validateConfig(feedConfig); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	aggregator, err := BuildAggregator(feedConfig)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", configFile, err)
	}

	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.cache[name] = aggregator

	return aggregator, nil
}

func (cc *ConfigCache) GetConfig(name string) (*Aggregator, error) {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	aggregator, ok := cc.cache[name]
	if !ok {
		return nil, fmt.Errorf("aggregator config with name '%s' not found", name)
	}
	return aggregator, nil
}

func (cc *ConfigCache) GetConfigs() map[string]*Aggregator {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	configsCopy := make(map[string]*Aggregator, len(cc.cache))
	for k, v := range cc.cache {
		configsCopy[k] = v
	}
	return configsCopy
}

func (cc *ConfigCache) GetEnabledConfigs() map[string]*Aggregator {
	cc.mu.RLock()
	defer cc.mu.RUnlock()

	enabledConfigs := make(map[string]*Aggregator)
	for k, v := range cc.cache {
		if v.Enabled && v.IsValid() {
			enabledConfigs[k] = v
		}
	}
	return enabledConfigs
}

func (cc *ConfigCache) GetConfigCount() int {
	cc.mu.RLock()
	defer cc.mu.RUnlock()
	return len(cc.cache)
}

func (cc *ConfigCache) parseConfig(configFile string) (*Config, error) {
	data, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	var feedConfig Config
	if err := yaml.Unmarshal(data, &feedConfig); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if feedConfig.Settings.Interval == 0 {
		feedConfig.Settings.Interval = configuration.DefaultPollInterval
	}
	if feedConfig.Settings.MaxItems == 0 {
		feedConfig.Settings.MaxItems = 100
	}

	return &feedConfig, nil
}

func (cc *ConfigCache) validateConfig(feedConfig *Config) error {
	if feedConfig == nil {
		return fmt.Errorf("feedConfig is nil")
	}

	if feedConfig.Name == "" {
		return fmt.Errorf("aggregator name is required")
	}
	if feedConfig.URL == "" {
		return fmt.Errorf("feed URL is required")
	}
	if feedConfig.Settings.MaxItems < 0 {
		return fmt.Errorf("max items must be non-negative")
	}

	validFields := map[string]bool{
		"name":     true,
		"link":     true,
		"category": true,
	}

	for i, filter := range feedConfig.Filters {
		if !validFields[filter.Field] {
			return fmt.Errorf("invalid filter field at index %d: %s", i, filter.Field)
		}
		if len(filter.Includes) == 0 && len(filter.Excludes) == 0 {
			return fmt.Errorf("filter at index %d must have at least one include or exclude rule", i)
		}
	}

	return nil
}

func (cc *ConfigCache) getConfigFilePath(name string) string {
	return filepath.Join(cc.feedsDir, name+".yml")
}

// BuildAggregator runs a decoded configuration file through the validated
// configuration setters.
func BuildAggregator(feedConfig *Config) (*Aggregator, error) {
	rss := configuration.NewRSSAggregatorConfiguration()
	rss.SetName(feedConfig.Name)

	if err := rss.SetURL(feedConfig.URL); err != nil {
		return nil, err
	}
	if err := rss.SetInterval(feedConfig.Settings.Interval); err != nil {
		return nil, err
	}

	extraction := feedConfig.Extraction
	if extraction.NamePattern != "" {
		if err := rss.SetNameExtractPattern(extraction.NamePattern); err != nil {
			return nil, fmt.Errorf("name_pattern: %w", err)
		}
	}
	if extraction.LinkPattern != "" {
		if err := rss.SetLinkExtractPattern(extraction.LinkPattern); err != nil {
			return nil, fmt.Errorf("link_pattern: %w", err)
		}
	}
	if err := rss.SetLinkTransformValue(extraction.LinkTransform); err != nil {
		return nil, fmt.Errorf("link_transform: %w", err)
	}

	if len(extraction.Cookies) > 0 {
		bag, err := cookies.NewStaticBag(extraction.Cookies)
		if err != nil {
			return nil, fmt.Errorf("cookies: %w", err)
		}
		if err := rss.SetLinkCookies(bag); err != nil {
			return nil, fmt.Errorf("cookies: %w", err)
		}
	}

	return &Aggregator{
		RSSAggregatorConfiguration: rss,
		Enabled:                    feedConfig.Settings.Enabled,
		MaxItems:                   feedConfig.Settings.MaxItems,
		Filters:                    feedConfig.Filters,
	}, nil
}
