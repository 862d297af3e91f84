package secrets

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE secrets (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)
	return NewSQLiteStore(db)
}

func TestSQLiteStore_GetAbsentKey(t *testing.T) {
	s := setupStore(t)

	v, err := s.Get(context.Background(), "auth_token")
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "auth_token", "AT1"))
	require.NoError(t, s.Set(ctx, "auth_token", "AT2"))

	v, err := s.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.Equal(t, "AT2", v)
}

func TestSQLiteStore_DeleteIsIdempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "auth_token", "AT1"))
	require.NoError(t, s.Delete(ctx, "auth_token"))
	require.NoError(t, s.Delete(ctx, "auth_token"))

	v, err := s.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.Empty(t, v)
}

func TestSQLiteStore_Clear(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "auth_token", "AT1"))
	require.NoError(t, s.Set(ctx, "auth_refresh_token", "RT1"))

	require.NoError(t, s.Clear(ctx))
	require.NoError(t, s.Clear(ctx)) // second clear is a no-op

	for _, key := range []string{"auth_token", "auth_refresh_token"} {
		v, err := s.Get(ctx, key)
		require.NoError(t, err)
		require.Empty(t, v)
	}
}

func TestSQLiteStore_ErrorsWrapUnavailable(t *testing.T) {
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	// no secrets table: every call must fail and wrap the sentinel
	s := NewSQLiteStore(db)
	ctx := context.Background()

	_, err = s.Get(ctx, "auth_token")
	require.ErrorIs(t, err, ErrUnavailable)
	require.ErrorIs(t, s.Set(ctx, "auth_token", "x"), ErrUnavailable)
	require.ErrorIs(t, s.Clear(ctx), ErrUnavailable)
}

func TestOpen_MigratesAndStores(t *testing.T) {
	store, db, err := Open(context.Background(), "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "auth_token", "AT1"))
	v, err := store.Get(ctx, "auth_token")
	require.NoError(t, err)
	require.Equal(t, "AT1", v)
}
