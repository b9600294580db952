package kv

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE settings (key TEXT PRIMARY KEY, value BLOB NOT NULL);
CREATE TABLE secrets  (key TEXT PRIMARY KEY, value BLOB NOT NULL);`)
	require.NoError(t, err)
	return db
}

func TestSQLite_SetAndGet(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), TableSettings)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "currentFolder", []byte(`"Work"`)))

	v, err := r.Get(ctx, "currentFolder")
	require.NoError(t, err)
	require.Equal(t, []byte(`"Work"`), v)
}

func TestSQLite_Get_Absent_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), TableSettings)

	v, err := r.Get(context.Background(), "absent")
	require.NoError(t, err)
	require.Nil(t, v)
}

func TestSQLite_Set_Upserts(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t), TableSettings)
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "k", []byte("old")))
	require.NoError(t, r.Set(ctx, "k", []byte("new")))

	v, err := r.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), v)
}

func TestSQLite_TablesAreIsolated(t *testing.T) {
	db := setupDB(t)
	settings := NewSQLiteRepository(db, TableSettings)
	secrets := NewSQLiteRepository(db, TableSecrets)
	ctx := context.Background()

	require.NoError(t, secrets.Set(ctx, "imgurClientId", []byte(`"abc"`)))

	v, err := settings.Get(ctx, "imgurClientId")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, settings.Set(ctx, "imgurClientId", []byte(`"other"`)))
	v, err = secrets.Get(ctx, "imgurClientId")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"abc"`), v)
}

func TestSQLite_ErrorsAreWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db, TableSettings)
	ctx := context.Background()
	_, err := db.Exec(`DROP TABLE settings`)
	require.NoError(t, err)

	_, err = r.Get(ctx, "k")
	assert.ErrorContains(t, err, "failed to get settings[k]")
	assert.ErrorContains(t, r.Set(ctx, "k", []byte("v")), "failed to set settings[k]")
}

func TestNewSQLiteRepository_UnknownTablePanics(t *testing.T) {
	assert.Panics(t, func() { NewSQLiteRepository(setupDB(t), "users; DROP TABLE settings") })
}
