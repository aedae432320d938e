package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/emizen/notesapp/internal/cli"
	"github.com/emizen/notesapp/internal/config"
	"github.com/emizen/notesapp/internal/logging"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	app, err := cli.NewApp(ctx, cfg, log)
	if err != nil {
		log.Error(ctx, "failed to start", "error", err)
		os.Exit(1)
	}

	app.Run(ctx)
}
