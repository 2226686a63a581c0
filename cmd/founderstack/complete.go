package main

import (
	"github.com/dmitrijs2005/founderstack/internal/config"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command line for shell completion. Install with
// COMP_INSTALL=1 founderstack.
func completion() *complete.Command {
	jsonFiles := predict.Files("*.json")

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"c":      jsonFiles,
			"config": jsonFiles,
			"s":      predict.Set{config.StorageSQLite, config.StorageFile, config.StorageMemory},
			"d":      predict.Files("*"),
			"w":      predict.Something,
			"m":      predict.Something,
			"t":      predict.Something,
			"l":      predict.Set{"debug", "info", "warn", "error"},
		},
		Sub: map[string]*complete.Command{
			"repl":    {Flags: map[string]complete.Predictor{"width": predict.Something}},
			"burn":    {Flags: map[string]complete.Predictor{"json": predict.Nothing}},
			"search":  {Flags: map[string]complete.Predictor{"json": predict.Nothing}, Args: predict.Something},
			"export":  {Flags: map[string]complete.Predictor{"o": jsonFiles, "q": predict.Something}},
			"reset":   {Flags: map[string]complete.Predictor{"yes": predict.Nothing}},
			"version": {},
			"help":    {Args: predict.Set{"repl", "burn", "search", "export", "reset", "version"}},
		},
	}
}
