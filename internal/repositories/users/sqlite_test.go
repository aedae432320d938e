package users

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emizen/notesapp/internal/common"
	"github.com/emizen/notesapp/internal/models"

	_ "modernc.org/sqlite"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE users (
  email TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  mobile TEXT NOT NULL,
  password_digest TEXT NOT NULL
);
`)
	require.NoError(t, err)

	return db
}

func testUser() *models.User {
	return &models.User{
		Name:           "Alice",
		Email:          "alice@test.com",
		Mobile:         "9876543210",
		PasswordDigest: "0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef",
	}
}

func TestCreateAndGetByEmail_RoundTrip(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	u := testUser()
	require.NoError(t, r.Create(ctx, u))

	got, err := r.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	assert.Equal(t, u, got)
}

func TestExists(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	ok, err := r.Exists(ctx, "alice@test.com")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, r.Create(ctx, testUser()))

	ok, err = r.Exists(ctx, "alice@test.com")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCreate_DuplicateEmail(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, testUser()))

	dup := testUser()
	dup.Name = "Other"
	err := r.Create(ctx, dup)
	require.ErrorIs(t, err, common.ErrDuplicateEmail)

	// still exactly one record for that email
	var n int
	require.NoError(t, db.QueryRow(
		`SELECT count(*) FROM users WHERE email = ?`, "alice@test.com").Scan(&n))
	assert.Equal(t, 1, n)
}

func TestGetByMobile(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, testUser()))

	got, err := r.GetByMobile(ctx, "9876543210")
	require.NoError(t, err)
	assert.Equal(t, "alice@test.com", got.Email)

	_, err = r.GetByMobile(ctx, "6000000000")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetByEmail_NotFound(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)

	_, err := r.GetByEmail(context.Background(), "nobody@test.com")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestGetAll(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()

	require.NoError(t, r.Create(ctx, testUser()))

	second := testUser()
	second.Email = "bob@test.com"
	second.Mobile = "6123456789"
	require.NoError(t, r.Create(ctx, second))

	all, err := r.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	emails := make(map[string]struct{})
	for _, u := range all {
		emails[u.Email] = struct{}{}
	}
	assert.Equal(t, map[string]struct{}{"alice@test.com": {}, "bob@test.com": {}}, emails)
}
