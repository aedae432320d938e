package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/emizen/notesapp/internal/common"
	"github.com/emizen/notesapp/internal/logging"
	"github.com/emizen/notesapp/internal/repositories/session"
	"github.com/emizen/notesapp/internal/repositories/users"
)

// markerKey is the session table key holding the last-logged-in email.
const markerKey = "last_logged_in_user"

// SessionService tracks the currently authenticated user. The in-memory
// state is derived from a single persisted marker at startup and kept in
// sync on login/logout. The mutex covers incidental concurrent calls; the
// app itself is single-user.
type SessionService struct {
	db  *sql.DB
	log logging.Logger

	mu    sync.Mutex
	email string
}

// NewSessionService constructs a SessionService over the shared database
// handle. Call Restore before using the query methods.
func NewSessionService(db *sql.DB, log logging.Logger) *SessionService {
	return &SessionService{db: db, log: log}
}

func (s *SessionService) sessionRepo() session.Repository {
	return session.NewSQLiteRepository(s.db)
}

// Restore initializes the in-memory state from the persisted marker. A
// marker naming a user that no longer exists is treated as logged out and
// the stale marker is cleared.
func (s *SessionService) Restore(ctx context.Context) error {
	repo := s.sessionRepo()

	email, err := repo.Get(ctx, markerKey)
	if errors.Is(err, common.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading session marker: %w", err)
	}

	if _, err := users.NewSQLiteRepository(s.db).GetByEmail(ctx, email); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.log.Warn(ctx, "session marker references unknown user, clearing", "email", email)
			return repo.Delete(ctx, markerKey)
		}
		return fmt.Errorf("checking session marker: %w", err)
	}

	s.mu.Lock()
	s.email = email
	s.mu.Unlock()
	return nil
}

// Login persists email as the session marker and flips the in-memory state.
func (s *SessionService) Login(ctx context.Context, email string) error {
	if err := s.sessionRepo().Set(ctx, markerKey, email); err != nil {
		return fmt.Errorf("saving session marker: %w", err)
	}

	s.mu.Lock()
	s.email = email
	s.mu.Unlock()

	s.log.Info(ctx, "session started", "email", email)
	return nil
}

// Logout clears the persisted marker and the in-memory state.
func (s *SessionService) Logout(ctx context.Context) error {
	if err := s.sessionRepo().Delete(ctx, markerKey); err != nil {
		return fmt.Errorf("clearing session marker: %w", err)
	}

	s.mu.Lock()
	s.email = ""
	s.mu.Unlock()
	return nil
}

// IsLoggedIn reports whether a user is currently authenticated.
func (s *SessionService) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email != ""
}

// CurrentEmail returns the authenticated user's email, or the empty string.
func (s *SessionService) CurrentEmail() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.email
}
