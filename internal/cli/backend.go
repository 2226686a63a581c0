package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/dmitrijs2005/founderstack/internal/config"
	"github.com/dmitrijs2005/founderstack/internal/filex"
	"github.com/dmitrijs2005/founderstack/internal/logging"
	"github.com/dmitrijs2005/founderstack/internal/storage"
	"github.com/dmitrijs2005/founderstack/internal/suggest"
)

// Backend is the persistence stack selected by the configuration.
type Backend struct {
	Adapter  *storage.Adapter
	Sessions *storage.SessionStore
	close    func() error
}

// OpenBackend opens the slot named by cfg.Storage and builds the snapshot
// adapter and session store on top of it.
func OpenBackend(ctx context.Context, cfg *config.Config, log logging.Logger) (*Backend, error) {
	b := &Backend{close: func() error { return nil }}

	var slot storage.Slot
	switch cfg.Storage {
	case config.StorageSQLite:
		if cfg.DataPath != ":memory:" {
			if _, err := filex.EnsureDir(filepath.Dir(cfg.DataPath)); err != nil {
				return nil, err
			}
		}
		db, err := storage.InitDatabase(ctx, cfg.DataPath)
		if err != nil {
			return nil, fmt.Errorf("open database %s: %w", cfg.DataPath, err)
		}
		slot = storage.NewSQLiteSlot(db)
		b.close = db.Close
	case config.StorageFile:
		fs, err := storage.NewFileSlot(cfg.DataPath)
		if err != nil {
			return nil, fmt.Errorf("open data dir %s: %w", cfg.DataPath, err)
		}
		slot = fs
	case config.StorageMemory:
		slot = storage.NewMemorySlot()
	default:
		return nil, fmt.Errorf("unknown storage %q", cfg.Storage)
	}

	b.Adapter = storage.NewAdapter(slot, log.With("component", "storage"))
	b.Sessions = storage.NewSessionStore(slot)
	return b, nil
}

func (b *Backend) Close() error {
	return b.close()
}

// NewSuggestClient returns a client backed by Gemini when an API key is
// configured. Without one every call serves its fallback.
func NewSuggestClient(ctx context.Context, cfg *config.Config, log logging.Logger) *suggest.Client {
	log = log.With("component", "suggest")

	var gen suggest.Generator
	if g, err := suggest.NewGenAIGenerator(ctx, cfg.APIKey); err != nil {
		log.Info(ctx, "live suggestions disabled", "error", err)
	} else {
		gen = g
	}

	return suggest.New(gen, log,
		suggest.WithModel(cfg.Model),
		suggest.WithSmartModel(cfg.SmartModel),
		suggest.WithTimeout(cfg.SuggestTimeout),
	)
}
