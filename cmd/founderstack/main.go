// Command founderstack tracks the companies of a solo founder: their logins,
// subscriptions, cards, loans, banks and documents.
//
// Without a subcommand it starts the interactive shell.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"path"

	"github.com/dmitrijs2005/founderstack/internal/config"
	"github.com/dmitrijs2005/founderstack/internal/flagx"
	"github.com/dmitrijs2005/founderstack/internal/logging"
	"github.com/google/subcommands"
)

func main() {
	completion().Complete("founderstack")

	cfg := config.LoadConfig()

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("%v", err)
	}

	args := flagx.StripArgs(os.Args[1:], config.Flags)
	if len(args) == 0 {
		args = []string{"repl"}
	}

	e := &env{cfg: cfg, log: logger}
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	commander.Register(&versionCmd{}, "")
	for _, c := range commands(e) {
		commander.Register(c, "portfolio")
	}

	_ = flag.CommandLine.Parse(args)
	status := commander.Execute(context.Background())

	closeLog()
	os.Exit(int(status))
}

// newLogger writes JSON logs to cfg.LogFile, or stderr when unset.
func newLogger(cfg *config.Config) (logging.Logger, func(), error) {
	if cfg.LogFile == "" {
		return logging.NewJSON(os.Stderr, cfg.LogLevel), func() {}, nil
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, err
	}
	return logging.NewJSON(f, cfg.LogLevel), func() { _ = f.Close() }, nil
}
