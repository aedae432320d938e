// Package services contains the application business rules sitting between
// the interactive front end and the repositories. Services construct
// repositories over the shared *sql.DB handle per call, the same way the
// stores are single-writer by construction.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/emizen/notesapp/internal/common"
	"github.com/emizen/notesapp/internal/cryptox"
	"github.com/emizen/notesapp/internal/dbx"
	"github.com/emizen/notesapp/internal/logging"
	"github.com/emizen/notesapp/internal/models"
	"github.com/emizen/notesapp/internal/repositories/users"
	"github.com/emizen/notesapp/internal/validation"
)

// UserService handles account registration and credential checks.
type UserService struct {
	db  *sql.DB
	log logging.Logger
}

// NewUserService constructs a UserService over the shared database handle.
func NewUserService(db *sql.DB, log logging.Logger) *UserService {
	return &UserService{db: db, log: log}
}

func (s *UserService) usersRepo() users.Repository {
	return users.NewSQLiteRepository(s.db)
}

// Register validates the sign-up fields, hashes the password and persists
// the new account. The stored record never contains the plaintext password.
// A taken email yields common.ErrDuplicateEmail.
func (s *UserService) Register(ctx context.Context, name, email, mobile, password string) (*models.User, error) {
	if err := validation.CheckName(name); err != nil {
		return nil, err
	}
	if err := validation.CheckEmail(email); err != nil {
		return nil, err
	}
	if err := validation.CheckMobile(mobile); err != nil {
		return nil, err
	}
	if err := validation.CheckPassword(password, name); err != nil {
		return nil, err
	}

	user := &models.User{
		Name:           name,
		Email:          email,
		Mobile:         validation.NormalizeMobile(mobile),
		PasswordDigest: cryptox.HashPassword(password),
	}

	// existence check and insert run in one transaction so two racing
	// registrations cannot both pass the check
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := users.NewSQLiteRepository(tx)

		taken, err := repo.Exists(ctx, email)
		if err != nil {
			return fmt.Errorf("checking email: %w", err)
		}
		if taken {
			return common.ErrDuplicateEmail
		}
		return repo.Create(ctx, user)
	})
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "user registered", "email", email)
	return user, nil
}

// Authenticate looks the user up by email or mobile number and verifies the
// password. Unknown user and wrong password are indistinguishable to the
// caller: both return common.ErrInvalidCredentials.
func (s *UserService) Authenticate(ctx context.Context, identifier, password string) (*models.User, error) {
	repo := s.usersRepo()

	var (
		user *models.User
		err  error
	)
	if strings.Contains(identifier, "@") {
		if verr := validation.CheckEmail(identifier); verr != nil {
			return nil, verr
		}
		user, err = repo.GetByEmail(ctx, identifier)
	} else {
		if verr := validation.CheckMobile(identifier); verr != nil {
			return nil, verr
		}
		user, err = repo.GetByMobile(ctx, validation.NormalizeMobile(identifier))
	}
	if errors.Is(err, common.ErrNotFound) {
		return nil, common.ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("looking up user: %w", err)
	}

	if !cryptox.VerifyPassword(password, user.PasswordDigest) {
		return nil, common.ErrInvalidCredentials
	}
	return user, nil
}

// All lists every registered account. Diagnostics only.
func (s *UserService) All(ctx context.Context) ([]models.User, error) {
	return s.usersRepo().GetAll(ctx)
}
