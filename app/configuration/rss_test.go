package configuration

import (
	"testing"
	"time"
)

func TestRSSAggregatorConfigurationDefaults(t *testing.T) {
	config := NewRSSAggregatorConfiguration()

	if config.GetInterval() != DefaultPollInterval {
		t.Errorf("Expected interval %v, got %v", DefaultPollInterval, config.GetInterval())
	}
	if config.GetNameExtractPattern() != DefaultExtractPattern {
		t.Errorf("Expected default name pattern, got '%s'", config.GetNameExtractPattern())
	}
	if config.IsValid() {
		t.Error("Expected configuration without URL to be invalid")
	}
}

func TestRSSAggregatorConfigurationURL(t *testing.T) {
	config := NewRSSAggregatorConfiguration()

	if err := config.SetURL("https://tracker.example.org/rss?cat=1"); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if config.GetURL() != "https://tracker.example.org/rss?cat=1" {
		t.Errorf("Expected URL to be stored, got '%s'", config.GetURL())
	}
	if !config.IsValid() {
		t.Error("Expected configuration with URL to be valid")
	}

	for _, invalid := range []string{"", "tracker.example.org/rss", "ftp://tracker.example.org/rss", "https://", "://bad"} {
		if err := config.SetURL(invalid); err == nil {
			t.Errorf("Expected error for URL %q", invalid)
		}
	}
	if config.GetURL() != "https://tracker.example.org/rss?cat=1" {
		t.Errorf("Expected previous URL to be kept, got '%s'", config.GetURL())
	}
}

func TestRSSAggregatorConfigurationInterval(t *testing.T) {
	config := NewRSSAggregatorConfiguration()

	if err := config.SetInterval(30 * time.Minute); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if config.GetInterval() != 30*time.Minute {
		t.Errorf("Expected interval 30m, got %v", config.GetInterval())
	}

	if err := config.SetInterval(0); err == nil {
		t.Error("Expected error for zero interval")
	}
	if err := config.SetInterval(-time.Second); err == nil {
		t.Error("Expected error for negative interval")
	}
	if config.GetInterval() != 30*time.Minute {
		t.Errorf("Expected previous interval to be kept, got %v", config.GetInterval())
	}
}

func TestRSSAggregatorConfigurationRespectsValidFlag(t *testing.T) {
	config := NewRSSAggregatorConfiguration()
	if err := config.SetURL("https://tracker.example.org/rss"); err != nil {
		t.Fatal(err)
	}

	config.SetValid(false)
	if config.IsValid() {
		t.Error("Expected configuration to be invalid after SetValid(false)")
	}
}
