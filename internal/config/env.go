package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with values from the process environment. A .env
// file in the working directory is loaded first, if present; variables
// already set in the environment win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("NOTES_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("NOTES_DB_FILE"); v != "" {
		cfg.DatabaseFile = v
	}
	if v := os.Getenv("NOTES_BLOB_DIR"); v != "" {
		cfg.BlobDirName = v
	}
}
