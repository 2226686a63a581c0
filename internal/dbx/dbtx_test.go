package dbx

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

var testMigrations = fstest.MapFS{
	"00001_kv.sql": &fstest.MapFile{Data: []byte(`-- +goose Up
CREATE TABLE kv (k TEXT PRIMARY KEY, v TEXT NOT NULL);

-- +goose Down
DROP TABLE kv;
`)},
}

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := Open(context.Background(), filepath.Join(t.TempDir(), "test.db"), testMigrations)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&n))
	return n
}

func TestOpen_AppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='goose_db_version'`).Scan(&n))
	require.Equal(t, 1, n)
	require.Equal(t, 0, countRows(t, db))
}

func TestOpen_MemoryDSNKeepsSchema(t *testing.T) {
	db, err := Open(context.Background(), ":memory:", testMigrations)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO kv(k, v) VALUES ('a', 'b')`)
	require.NoError(t, err)
	require.Equal(t, 1, countRows(t, db))
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, Migrate(context.Background(), db, testMigrations))
}

func TestOpen_BadMigrationFails(t *testing.T) {
	bad := fstest.MapFS{
		"00001_bad.sql": &fstest.MapFile{Data: []byte("-- +goose Up\nCREATE TABLEX nope;\n")},
	}
	_, err := Open(context.Background(), filepath.Join(t.TempDir(), "bad.db"), bad)
	require.Error(t, err)
}

func TestWithTx_CommitsOnSuccess(t *testing.T) {
	db := openTestDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO kv(k, v) VALUES ('ok', 'ok')`)
		return err
	})
	require.NoError(t, err)
	require.Equal(t, 1, countRows(t, db), "must commit on success")
}

func TestWithTx_RollbackOnFnError(t *testing.T) {
	db := openTestDB(t)

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO kv(k, v) VALUES ('fail', 'x')`)
		require.NoError(t, e)
		return errors.New("boom")
	})
	require.Error(t, err)
	require.Equal(t, 0, countRows(t, db), "must rollback when fn returns error")
}

func TestWithTx_RollbackOnPanic(t *testing.T) {
	db := openTestDB(t)

	defer func() {
		if r := recover(); r == nil {
			t.Fatalf("expected panic to propagate")
		}
		require.Equal(t, 0, countRows(t, db), "must rollback on panic")
	}()

	_ = WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		_, e := tx.ExecContext(ctx, `INSERT INTO kv(k, v) VALUES ('panic', 'x')`)
		require.NoError(t, e)
		panic("kaput")
	})
}

func TestWithTx_BeginError(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, db.Close())

	err := WithTx(context.Background(), db, nil, func(ctx context.Context, tx DBTX) error {
		return nil
	})
	require.Error(t, err, "begin should fail when DB is closed")
}
