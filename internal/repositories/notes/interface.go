package notes

import (
	"context"

	"github.com/emizen/notesapp/internal/models"
)

// Repository describes the durable note collection.
type Repository interface {
	// CreateOrUpdate inserts a new note or replaces an existing one by ID.
	// The stored creation time is written once and preserved on replace.
	CreateOrUpdate(ctx context.Context, note *models.Note) error

	// GetAll returns every note in persisted order. Callers may re-sort by
	// CreatedAt if a stable order is desired.
	GetAll(ctx context.Context) ([]models.Note, error)

	// GetByID returns a note by its identifier, or common.ErrNotFound.
	GetByID(ctx context.Context, id string) (*models.Note, error)

	// DeleteByID removes the note with that id. Deleting an absent id is a
	// no-op, not an error.
	DeleteByID(ctx context.Context, id string) error
}
