// Package config loads runtime settings for the notes CLI. Values come from
// defaults, the environment, an optional JSON file and command-line flags,
// in that order of precedence.
package config

import "path/filepath"

// Config holds runtime settings for the notes CLI.
//
// Fields:
//   - DataDir: directory holding the database file and the photo blobs.
//   - DatabaseFile: SQLite database filename, resolved under DataDir.
//   - BlobDirName: photo directory name, resolved under DataDir.
type Config struct {
	DataDir      string
	DatabaseFile string
	BlobDirName  string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DataDir = "."
	c.DatabaseFile = "notes.db"
	c.BlobDirName = "photos"
}

// DatabasePath returns the full path of the SQLite database file.
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.DatabaseFile)
}

// BlobDir returns the full path of the photo blob directory.
func (c *Config) BlobDir() string {
	return filepath.Join(c.DataDir, c.BlobDirName)
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from the environment, JSON (if present) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
