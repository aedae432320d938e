package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/emizen/notesapp/internal/blobs"
	"github.com/emizen/notesapp/internal/common"
	"github.com/emizen/notesapp/internal/dbx"
	"github.com/emizen/notesapp/internal/logging"
	"github.com/emizen/notesapp/internal/models"
	"github.com/emizen/notesapp/internal/repositories/notes"
	"github.com/emizen/notesapp/internal/validation"
)

// NoteService owns the note lifecycle and the note-to-blob coupling.
type NoteService struct {
	db    *sql.DB
	blobs blobs.Store
	log   logging.Logger
}

// NewNoteService constructs a NoteService over the shared database handle
// and the blob store.
func NewNoteService(db *sql.DB, store blobs.Store, log logging.Logger) *NoteService {
	return &NoteService{db: db, blobs: store, log: log}
}

func (s *NoteService) notesRepo() notes.Repository {
	return notes.NewSQLiteRepository(s.db)
}

// Create validates the fields, stores each photo blob, then persists a new
// note referencing the stored filenames. Blobs are always written before
// the note, so a saved note can never point at a photo that was never
// written; a crash in between leaves at worst an orphaned blob.
func (s *NoteService) Create(ctx context.Context, title, description string, photos [][]byte) (*models.Note, error) {
	if err := validation.CheckNoteTitle(title); err != nil {
		return nil, err
	}
	if err := validation.CheckNoteDescription(description); err != nil {
		return nil, err
	}

	refs := make([]string, 0, len(photos))
	for _, p := range photos {
		ref, err := s.blobs.Write(p)
		if err != nil {
			return nil, fmt.Errorf("storing photo: %w", err)
		}
		refs = append(refs, ref)
	}

	note := &models.Note{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		PhotoRefs:   refs,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.notesRepo().CreateOrUpdate(ctx, note); err != nil {
		return nil, err
	}

	s.log.Info(ctx, "note saved", "id", note.ID, "photos", len(refs))
	return note, nil
}

// Update re-saves an existing note under its id, attaching any new photos
// after the ones already present. The stored creation time is preserved.
func (s *NoteService) Update(ctx context.Context, id, title, description string, newPhotos [][]byte) (*models.Note, error) {
	if err := validation.CheckNoteTitle(title); err != nil {
		return nil, err
	}
	if err := validation.CheckNoteDescription(description); err != nil {
		return nil, err
	}

	repo := s.notesRepo()
	note, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	note.Title = title
	note.Description = description
	for _, p := range newPhotos {
		ref, err := s.blobs.Write(p)
		if err != nil {
			return nil, fmt.Errorf("storing photo: %w", err)
		}
		note.PhotoRefs = append(note.PhotoRefs, ref)
	}

	if err := repo.CreateOrUpdate(ctx, note); err != nil {
		return nil, err
	}
	return note, nil
}

// Delete removes the note and then deletes its photo blobs. Blob cleanup is
// best effort: a failed removal is logged and never fails the deletion.
// Deleting an unknown id is a no-op.
func (s *NoteService) Delete(ctx context.Context, id string) error {
	var note *models.Note

	// read and remove in one transaction so the refs we clean up are the
	// ones the deleted row actually held
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := notes.NewSQLiteRepository(tx)

		var err error
		note, err = repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		return repo.DeleteByID(ctx, id)
	})
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	for _, ref := range note.PhotoRefs {
		if err := s.blobs.Delete(ref); err != nil {
			s.log.Warn(ctx, "failed to delete photo blob", "ref", ref, "error", err)
		}
	}
	return nil
}

// List returns all notes in persisted order.
func (s *NoteService) List(ctx context.Context) ([]models.Note, error) {
	return s.notesRepo().GetAll(ctx)
}

// Get returns a single note, or common.ErrNotFound.
func (s *NoteService) Get(ctx context.Context, id string) (*models.Note, error) {
	return s.notesRepo().GetByID(ctx, id)
}

// Photo returns the content of an attached photo blob.
func (s *NoteService) Photo(ctx context.Context, ref string) ([]byte, error) {
	return s.blobs.Read(ref)
}
