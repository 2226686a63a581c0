package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/founderstack/internal/dbx"
	"github.com/dmitrijs2005/founderstack/internal/storage/migrations"
)

// SQLiteSlot stores values in the slots table of a local SQLite database.
type SQLiteSlot struct {
	db  *sql.DB
	now func() time.Time
}

// InitDatabase opens (creating if needed) the database at dsn and brings its
// schema up to date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	return dbx.Open(ctx, dsn, migrations.FS)
}

func NewSQLiteSlot(db *sql.DB) *SQLiteSlot {
	return &SQLiteSlot{db: db, now: time.Now}
}

func (r *SQLiteSlot) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get slot[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteSlot) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO slots (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`, key, value, r.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to set slot[%s]: %w", key, err)
	}
	return nil
}

// Delete removes all keys in one transaction.
func (r *SQLiteSlot) Delete(ctx context.Context, keys ...string) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		for _, k := range keys {
			if _, err := tx.ExecContext(ctx, `DELETE FROM slots WHERE key = ?`, k); err != nil {
				return fmt.Errorf("failed to delete slot[%s]: %w", k, err)
			}
		}
		return nil
	})
}

// UpdatedAt returns when key was last written, or the zero time when absent.
func (r *SQLiteSlot) UpdatedAt(ctx context.Context, key string) (time.Time, error) {
	var ms int64
	err := r.db.QueryRowContext(ctx, `SELECT updated_at FROM slots WHERE key = ?`, key).Scan(&ms)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to get slot[%s] timestamp: %w", key, err)
	}
	return time.UnixMilli(ms), nil
}
