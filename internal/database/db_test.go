package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T, name string) *DB {
	t.Helper()

	db, err := New(Config{
		Path: filepath.Join(t.TempDir(), "nested", name+".db"),
		Name: name,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestNew_CreatesDirectoryAndDefaultsProfile(t *testing.T) {
	db := newTestDB(t, NameReports)

	assert.Equal(t, NameReports, db.Name())
	assert.Equal(t, ProfileStandard, db.profile)
	assert.True(t, filepath.IsAbs(db.Path()))
	assert.FileExists(t, db.Path())
}

func TestBuildConnectionString(t *testing.T) {
	standard := buildConnectionString("/tmp/a.db", ProfileStandard)
	assert.Contains(t, standard, "journal_mode(WAL)")
	assert.Contains(t, standard, "synchronous(NORMAL)")

	cache := buildConnectionString("/tmp/a.db", ProfileCache)
	assert.Contains(t, cache, "synchronous(OFF)")
	assert.NotContains(t, cache, "auto_vacuum")
}

func TestMigrate_ReportsSchema(t *testing.T) {
	db := newTestDB(t, NameReports)

	require.NoError(t, db.Migrate())
	// idempotent
	require.NoError(t, db.Migrate())

	var name string
	err := db.Conn().QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = 'reports'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "reports", name)

	_, err = db.Conn().Exec(`INSERT INTO reports (id, game, headline, payload, created_at) VALUES ('x', 'lotto', 0, x'00', 0)`)
	assert.Error(t, err, "game is constrained")
}

func TestMigrate_UnknownNameIsNoop(t *testing.T) {
	db := newTestDB(t, "scratch")

	require.NoError(t, db.Migrate())

	var count int
	require.NoError(t, db.Conn().QueryRow(`SELECT COUNT(*) FROM sqlite_master`).Scan(&count))
	assert.Zero(t, count)
}

type unreadableFS struct{}

func (unreadableFS) Open(name string) (fs.File, error) {
	return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrPermission}
}

func (unreadableFS) ReadFile(name string) ([]byte, error) {
	return nil, &fs.PathError{Op: "read", Path: name, Err: fs.ErrPermission}
}

func TestMigrate_ReadErrorIsReturned(t *testing.T) {
	db := newTestDB(t, NameReports)

	original := schemas
	schemas = unreadableFS{}
	t.Cleanup(func() { schemas = original })

	err := db.Migrate()
	require.Error(t, err)
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Contains(t, err.Error(), "reports_schema.sql")
}

func TestWithTransaction(t *testing.T) {
	db := newTestDB(t, "tx")
	_, err := db.Conn().Exec(`CREATE TABLE items (v INTEGER)`)
	require.NoError(t, err)

	count := func() int {
		var n int
		require.NoError(t, db.Conn().QueryRow(`SELECT COUNT(*) FROM items`).Scan(&n))
		return n
	}

	err = WithTransaction(db.Conn(), func(tx *sql.Tx) error {
		_, err := tx.Exec(`INSERT INTO items (v) VALUES (1)`)
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, 1, count())

	boom := errors.New("boom")
	err = WithTransaction(db.Conn(), func(tx *sql.Tx) error {
		_, _ = tx.Exec(`INSERT INTO items (v) VALUES (2)`)
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, count())

	err = WithTransaction(db.Conn(), func(tx *sql.Tx) error {
		_, _ = tx.Exec(`INSERT INTO items (v) VALUES (3)`)
		panic("unexpected")
	})
	assert.ErrorContains(t, err, "panic in transaction")
	assert.Equal(t, 1, count())

	assert.Error(t, WithTransaction(nil, func(*sql.Tx) error { return nil }))
}

func TestHealthAndMaintenance(t *testing.T) {
	db := newTestDB(t, NameReports)
	require.NoError(t, db.Migrate())

	require.NoError(t, db.HealthCheck(context.Background()))
	require.NoError(t, db.WALCheckpoint(""))

	stats, err := db.GetStats()
	require.NoError(t, err)
	assert.Positive(t, stats.PageCount)
	assert.Positive(t, stats.PageSize)
}
