package main

import (
	"flag"

	"github.com/lixenwraith/whack/config"
)

// options holds command-line overrides
type options struct {
	configPath string
	debug      bool
	muted      bool
	seconds    int
}

// parseFlags parses args into options using fs
func parseFlags(fs *flag.FlagSet, args []string) (*options, error) {
	opts := &options{}
	fs.StringVar(&opts.configPath, "config", "", "Path to a TOML config file (default ./whack.toml if present)")
	fs.BoolVar(&opts.debug, "debug", false, "Write debug logs to logs/whack.log and show metrics")
	fs.BoolVar(&opts.muted, "muted", false, "Start with sound muted")
	fs.IntVar(&opts.seconds, "seconds", 0, "Round length in seconds")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// apply overrides cfg with the flags that were set explicitly
func (o *options) apply(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = o.debug
		case "muted":
			cfg.Round.Muted = o.muted
		case "seconds":
			cfg.Round.Seconds = o.seconds
		}
	})
}
