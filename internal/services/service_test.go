package services

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emizen/notesapp/internal/blobs"
	"github.com/emizen/notesapp/internal/logging"
	"github.com/emizen/notesapp/internal/storage"
)

// setupDB opens a migrated database in a per-test temp dir, so service
// tests run against the exact schema the app ships.
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func testBlobStore(t *testing.T) *blobs.FileStore {
	t.Helper()
	s, err := blobs.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}
