// Package users persists registered accounts in the local SQLite database.
package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"

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

// Exists reports whether a user with that exact email is already stored.
func (r *SQLiteRepository) Exists(ctx context.Context, email string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`select count(*) from users where email = ?`, email).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check user existence: %w", err)
	}
	return n > 0, nil
}

// Create inserts a new user record. The unique constraint on email is
// mapped to common.ErrDuplicateEmail.
func (r *SQLiteRepository) Create(ctx context.Context, user *models.User) error {
	query := `insert into users (email, name, mobile, password_digest) values (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		user.Email, user.Name, user.Mobile, user.PasswordDigest)
	if err != nil {
		if isUniqueViolation(err) {
			return common.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		code := serr.Code()
		return code == sqlitelib.SQLITE_CONSTRAINT_UNIQUE ||
			code == sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

func (r *SQLiteRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.getOne(ctx,
		`select email, name, mobile, password_digest from users where email = ?`, email)
}

func (r *SQLiteRepository) GetByMobile(ctx context.Context, mobile string) (*models.User, error) {
	return r.getOne(ctx,
		`select email, name, mobile, password_digest from users where mobile = ?`, mobile)
}

func (r *SQLiteRepository) getOne(ctx context.Context, query string, arg any) (*models.User, error) {
	u := &models.User{}
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&u.Email, &u.Name, &u.Mobile, &u.PasswordDigest)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to select user: %w", err)
	}
	return u, nil
}

// GetAll lists all stored users. Intended for diagnostics; no order is
// guaranteed.
func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.db.QueryContext(ctx,
		`select email, name, mobile, password_digest from users`)
	if err != nil {
		return nil, fmt.Errorf("failed to select users: %w", err)
	}
	defer rows.Close()

	var result []models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.Email, &u.Name, &u.Mobile, &u.PasswordDigest); err != nil {
			return nil, err
		}
		result = append(result, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
