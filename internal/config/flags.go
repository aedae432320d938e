package config

import (
	"flag"
	"os"

	"github.com/emizen/notesapp/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   data directory holding the database and photos
//	-b string   photo directory name under the data directory
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-b"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory holding the database and photos")
	fs.StringVar(&cfg.BlobDirName, "b", cfg.BlobDirName, "photo directory name under the data directory")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
