package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lysyi3m/feed-ghost/app/cfg"
	"github.com/lysyi3m/feed-ghost/app/feed"
)

func main() {
	appCfg, err := cfg.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if appCfg == nil {
		// Help was shown
		return
	}

	setupLogger(appCfg.Debug)

	if err := run(appCfg, os.Stdout); err != nil {
		slog.Error("Feed Ghost failed", "error", err)
		os.Exit(1)
	}
}

func setupLogger(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}

func run(appCfg *cfg.Cfg, out io.Writer) error {
	slog.Info("Loading aggregator configurations", "feeds_dir", appCfg.FeedsDir, "version", appCfg.Version)

	configCache := feed.NewConfigCache(appCfg.FeedsDir)
	if err := configCache.Run(); err != nil {
		return fmt.Errorf("failed to load aggregator configurations: %w", err)
	}

	slog.Info("Aggregator configurations loaded",
		"total", configCache.GetConfigCount(),
		"enabled", len(configCache.GetEnabledConfigs()))

	if appCfg.Input == "" {
		return nil
	}

	aggregator, err := configCache.GetConfig(appCfg.Aggregator)
	if err != nil {
		return err
	}
	if !aggregator.IsValid() {
		return fmt.Errorf("aggregator '%s' is not valid", appCfg.Aggregator)
	}

	data, err := os.ReadFile(appCfg.Input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	metadata, items, err := feed.NewParser().Run(data)
	if err != nil {
		return err
	}

	entries := feed.NewExtractor().Run(items, aggregator)
	entries = feed.NewFilterer().Run(entries, aggregator.Filters)

	accepted := 0
	for _, entry := range entries {
		if entry.IsFiltered {
			slog.Debug("Entry filtered", "name", entry.Name, "reason", entry.FilterReason)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", entry.Name, entry.Link)
		accepted++
	}

	slog.Info("Input processed",
		"aggregator", aggregator.GetName(),
		"feed", metadata.Title,
		"items", len(items),
		"extracted", len(entries),
		"accepted", accepted)

	return nil
}
