package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emizen/notesapp/internal/repositories/session"
)

func TestSession_LoginLogoutAcrossRestarts(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	users := NewUserService(db, testLogger())
	registerAlice(t, users)

	sess := NewSessionService(db, testLogger())
	require.NoError(t, sess.Restore(ctx))
	assert.False(t, sess.IsLoggedIn())

	require.NoError(t, sess.Login(ctx, "alice@test.com"))
	assert.True(t, sess.IsLoggedIn())
	assert.Equal(t, "alice@test.com", sess.CurrentEmail())

	// "restart": a fresh service over the same database restores the marker
	restarted := NewSessionService(db, testLogger())
	require.NoError(t, restarted.Restore(ctx))
	assert.True(t, restarted.IsLoggedIn())

	require.NoError(t, restarted.Logout(ctx))
	assert.False(t, restarted.IsLoggedIn())

	// and after another restart the logout is still in effect
	again := NewSessionService(db, testLogger())
	require.NoError(t, again.Restore(ctx))
	assert.False(t, again.IsLoggedIn())
	assert.Equal(t, "", again.CurrentEmail())
}

func TestSession_RestoreClearsStaleMarker(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	// marker points at a user that was never registered
	require.NoError(t,
		session.NewSQLiteRepository(db).Set(ctx, "last_logged_in_user", "ghost@test.com"))

	sess := NewSessionService(db, testLogger())
	require.NoError(t, sess.Restore(ctx))
	assert.False(t, sess.IsLoggedIn())

	// the stale marker is gone for good
	again := NewSessionService(db, testLogger())
	require.NoError(t, again.Restore(ctx))
	assert.False(t, again.IsLoggedIn())
}

func TestEndToEnd_RegisterLoginLogout(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	users := NewUserService(db, testLogger())
	sess := NewSessionService(db, testLogger())

	_, err := users.Register(ctx, "Alice", "alice@test.com", "9876543210", validPassword)
	require.NoError(t, err)

	u, err := users.Authenticate(ctx, "alice@test.com", validPassword)
	require.NoError(t, err)
	require.NoError(t, sess.Login(ctx, u.Email))
	assert.True(t, sess.IsLoggedIn())

	require.NoError(t, sess.Logout(ctx))
	assert.False(t, sess.IsLoggedIn())
}
