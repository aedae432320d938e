package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverlaysNonEmptyFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path,
		[]byte(`{"data_dir": "/srv/notes", "blob_dir": "images"}`), 0o600))

	oldArgs := os.Args
	os.Args = []string{"notes", "-c", path}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, "/srv/notes", cfg.DataDir)
	assert.Equal(t, "images", cfg.BlobDirName)
	assert.Equal(t, "notes.db", cfg.DatabaseFile, "fields absent from JSON keep defaults")
}

func TestParseJson_NoFlagNoop(t *testing.T) {
	oldArgs := os.Args
	os.Args = []string{"notes"}
	t.Cleanup(func() { os.Args = oldArgs })

	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)

	assert.Equal(t, ".", cfg.DataDir)
}
