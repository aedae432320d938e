// Package notes persists notes in the local SQLite database. Photo
// references are stored as a JSON-encoded string array so the insertion
// order of attachments survives round-trips.
package notes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/emizen/notesapp/internal/common"
	"github.com/emizen/notesapp/internal/dbx"
	"github.com/emizen/notesapp/internal/models"
)

// SQLiteRepository implements Repository using a DBTX (either *sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

// NewSQLiteRepository returns a new SQLiteRepository bound to the given DBTX.
func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// CreateOrUpdate upserts a note by id. On conflict, title, description and
// photo refs are replaced; created_at keeps its original value.
func (r *SQLiteRepository) CreateOrUpdate(ctx context.Context, note *models.Note) error {
	refs, err := encodeRefs(note.PhotoRefs)
	if err != nil {
		return fmt.Errorf("failed to encode photo refs: %w", err)
	}

	query := `insert into notes (id, title, description, photo_refs, created_at)
			values (?, ?, ?, ?, ?)
			on conflict(id) do update set title = excluded.title,
				description = excluded.description,
				photo_refs = excluded.photo_refs
	`
	_, err = r.db.ExecContext(ctx, query,
		note.ID, note.Title, note.Description, refs,
		note.CreatedAt.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("failed to upsert note: %w", err)
	}
	return nil
}

// GetAll lists all notes in persisted order.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`select id, title, description, photo_refs, created_at from notes`)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	var result []models.Note
	for rows.Next() {
		note, err := scanNote(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, *note)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID returns a single note, or common.ErrNotFound.
func (r *SQLiteRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	row := r.db.QueryRowContext(ctx,
		`select id, title, description, photo_refs, created_at from notes where id = ?`, id)

	note, err := scanNote(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select note: %w", err)
	}
	return note, nil
}

// DeleteByID removes a note row. An absent id is a no-op.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `delete from notes where id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
	}
	return nil
}

func scanNote(scan func(dest ...any) error) (*models.Note, error) {
	note := &models.Note{}
	var refs, createdAt string
	if err := scan(&note.ID, &note.Title, &note.Description, &refs, &createdAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(refs), &note.PhotoRefs); err != nil {
		return nil, fmt.Errorf("failed to decode photo refs: %w", err)
	}
	ts, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	note.CreatedAt = ts
	return note, nil
}

// encodeRefs marshals refs, mapping a nil slice to the empty JSON array so
// the column never holds "null".
func encodeRefs(refs []string) (string, error) {
	if refs == nil {
		refs = []string{}
	}
	b, err := json.Marshal(refs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
