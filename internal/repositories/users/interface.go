package users

import (
	"context"

	"github.com/emizen/notesapp/internal/models"
)

// Repository describes the durable user table. Implementations must enforce
// per-email uniqueness; records are never updated or deleted once created.
type Repository interface {
	// Exists reports whether a record with that exact email exists.
	Exists(ctx context.Context, email string) (bool, error)

	// Create persists a new user. Returns common.ErrDuplicateEmail when the
	// email is already taken.
	Create(ctx context.Context, user *models.User) error

	// GetByEmail returns the user with that exact email, or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// GetByMobile returns the user with that exact mobile number, or
	// common.ErrNotFound.
	GetByMobile(ctx context.Context, mobile string) (*models.User, error)

	// GetAll lists every user, in no particular order.
	GetAll(ctx context.Context) ([]models.User, error)
}
