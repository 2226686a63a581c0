package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/founderstack/internal/common"
	"github.com/dmitrijs2005/founderstack/internal/logging"
	"github.com/dmitrijs2005/founderstack/internal/models"
)

// DBKey is the slot key holding the serialized snapshot.
const DBKey = "founderstack_db_v1"

// Adapter loads and saves the whole snapshot as one blob in a Slot.
type Adapter struct {
	slot Slot
	log  logging.Logger
	now  func() time.Time
}

type AdapterOption func(*Adapter)

// WithNow overrides the clock used for seed timestamps and backfills.
func WithNow(now func() time.Time) AdapterOption {
	return func(a *Adapter) { a.now = now }
}

func NewAdapter(slot Slot, log logging.Logger, opts ...AdapterOption) *Adapter {
	a := &Adapter{slot: slot, log: log, now: time.Now}
	for _, o := range opts {
		o(a)
	}
	return a
}

// Load returns the stored snapshot, migrated to the current shape. A missing,
// unreadable or corrupt blob is replaced by the seed dataset, which is
// written back and returned.
func (a *Adapter) Load(ctx context.Context) models.Snapshot {
	now := a.now()

	data, err := a.slot.Get(ctx, DBKey)
	if err != nil {
		a.log.Error(ctx, "failed to read state, falling back to seed", "key", DBKey, "error", err)
		return a.writeSeed(ctx, now)
	}
	if data == nil {
		a.log.Info(ctx, "no stored state, writing seed", "key", DBKey)
		return a.writeSeed(ctx, now)
	}

	snap, err := decode(data, now)
	if err != nil {
		a.log.Error(ctx, "failed to load state, falling back to seed", "key", DBKey, "error", err)
		return a.writeSeed(ctx, now)
	}
	return snap
}

// Save writes snap. It reports success instead of returning an error; the
// failure is logged.
func (a *Adapter) Save(ctx context.Context, snap models.Snapshot) bool {
	if err := a.save(ctx, snap); err != nil {
		a.log.Error(ctx, "failed to save state", "key", DBKey, "error", err)
		return false
	}
	return true
}

// Clear removes the stored blob and returns the seed dataset. The seed is
// not written; the next Load does that.
func (a *Adapter) Clear(ctx context.Context) models.Snapshot {
	if err := a.slot.Delete(ctx, DBKey); err != nil {
		a.log.Error(ctx, "failed to clear state", "key", DBKey, "error", err)
	}
	return Seed(a.now())
}

func (a *Adapter) save(ctx context.Context, snap models.Snapshot) error {
	data, err := json.Marshal(snap.Normalized())
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	return a.slot.Set(ctx, DBKey, data)
}

func (a *Adapter) writeSeed(ctx context.Context, now time.Time) models.Snapshot {
	seed := Seed(now)
	if err := a.save(ctx, seed); err != nil {
		a.log.Error(ctx, "failed to write seed", "key", DBKey, "error", err)
	}
	return seed
}

// decode parses a stored blob, runs the migration chain and binds the result
// to a Snapshot.
func decode(data []byte, now time.Time) (models.Snapshot, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %v", common.ErrCorruptState, err)
	}
	if doc == nil {
		return models.Snapshot{}, fmt.Errorf("%w: not an object", common.ErrCorruptState)
	}

	migrate(doc, now)

	migrated, err := json.Marshal(doc)
	if err != nil {
		return models.Snapshot{}, fmt.Errorf("re-encode state: %w", err)
	}

	var snap models.Snapshot
	if err := json.Unmarshal(migrated, &snap); err != nil {
		return models.Snapshot{}, fmt.Errorf("%w: %v", common.ErrCorruptState, err)
	}
	return snap.Normalized(), nil
}
