package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/founderstack/internal/flagx"
)

// Flags lists every flag owned by the config layer, JSON path included.
var Flags = append([]string{"-s", "-d", "-w", "-m", "-t", "-l"}, flagx.ConfigFlags...)

// parseFlags populates Config fields from the config flags in args. Other
// flags are ignored, so subcommands can parse theirs independently.
func parseFlags(cfg *Config, args []string) {
	fs := flag.NewFlagSet("config", flag.ContinueOnError)

	fs.StringVar(&cfg.Storage, "s", cfg.Storage, "storage backend: sqlite, file or memory")
	fs.StringVar(&cfg.DataPath, "d", cfg.DataPath, "data path (SQLite file or directory)")
	debounce := fs.Int("w", int(cfg.SaveDebounce.Milliseconds()), "save debounce (in milliseconds)")
	fs.StringVar(&cfg.Model, "m", cfg.Model, "suggestion model")
	timeout := fs.Int("t", int(cfg.SuggestTimeout.Seconds()), "suggestion timeout (in seconds)")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.String("c", "", "path to config file (short)")
	fs.String("config", "", "path to config file")

	if err := fs.Parse(flagx.FilterArgs(args, Flags)); err != nil {
		panic(err)
	}

	cfg.SaveDebounce = time.Duration(*debounce) * time.Millisecond
	cfg.SuggestTimeout = time.Duration(*timeout) * time.Second
}
