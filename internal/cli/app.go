// Package cli implements the interactive front end. It is glue only: every
// decision about validity, authentication and persistence is delegated to
// the services, and the REPL turns their errors into user-facing messages.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/emizen/notesapp/internal/blobs"
	"github.com/emizen/notesapp/internal/config"
	"github.com/emizen/notesapp/internal/logging"
	"github.com/emizen/notesapp/internal/services"
	"github.com/emizen/notesapp/internal/storage"
)

// App wires the services together and drives the REPL.
type App struct {
	config  *config.Config
	users   *services.UserService
	notes   *services.NoteService
	session *services.SessionService
	log     logging.Logger
	reader  *bufio.Reader
	db      *sql.DB
}

// NewApp opens the database and blob directory under cfg.DataDir, builds
// the services and restores the persisted session state.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	db, err := storage.Open(ctx, cfg.DatabasePath())
	if err != nil {
		return nil, err
	}

	store, err := blobs.NewFileStore(cfg.BlobDir())
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	app := &App{
		config:  cfg,
		users:   services.NewUserService(db, log),
		notes:   services.NewNoteService(db, store, log),
		session: services.NewSessionService(db, log),
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
		db:      db,
	}

	if err := app.session.Restore(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

// Run drives the REPL until EOF or an exit command, then closes the app.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Println("Welcome to the notes CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

// Close releases the database handle.
func (a *App) Close() {
	_ = a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.session.IsLoggedIn()
}

func (a *App) status() string {
	if email := a.session.CurrentEmail(); email != "" {
		return "(" + email + ")"
	}
	return ""
}
