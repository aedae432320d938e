package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emizen/notesapp/internal/common"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE session (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func TestGet_Missing(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	_, err := r.Get(context.Background(), "last_logged_in_user")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestSetGetOverwrite(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "last_logged_in_user", "alice@test.com"))

	got, err := r.Get(ctx, "last_logged_in_user")
	require.NoError(t, err)
	assert.Equal(t, "alice@test.com", got)

	require.NoError(t, r.Set(ctx, "last_logged_in_user", "bob@test.com"))

	got, err = r.Get(ctx, "last_logged_in_user")
	require.NoError(t, err)
	assert.Equal(t, "bob@test.com", got)
}

func TestDelete(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, "last_logged_in_user", "alice@test.com"))
	require.NoError(t, r.Delete(ctx, "last_logged_in_user"))

	_, err := r.Get(ctx, "last_logged_in_user")
	assert.ErrorIs(t, err, common.ErrNotFound)

	// deleting an absent key is a no-op
	require.NoError(t, r.Delete(ctx, "last_logged_in_user"))
}
