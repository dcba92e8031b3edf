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
	FeedsDir   string `long:"feeds-dir" env:"FEEDS_DIR" default:"./feeds" description:"Directory containing aggregator configuration files"`
	Input      string `long:"input" env:"INPUT" description:"Local RSS/Atom file to run through an aggregator (optional)"`
	Aggregator string `long:"aggregator" env:"AGGREGATOR" description:"Aggregator used for --input"`
	Debug      bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

// Load parses command-line arguments and environment variables. It returns
// nil, nil when help was requested.
func Load(args []string) (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.ParseArgs(args); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	if raw.Input != "" && raw.Aggregator == "" {
		return nil, fmt.Errorf("--aggregator is required when --input is set")
	}

	return &Cfg{
		FeedsDir:   raw.FeedsDir,
		Input:      raw.Input,
		Aggregator: raw.Aggregator,
		Debug:      raw.Debug,
		Version:    GetVersion(),
	}, nil
}
