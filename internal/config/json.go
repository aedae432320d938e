package config

import (
	"encoding/json"
	"os"

	"github.com/emizen/notesapp/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Empty fields
// leave the corresponding Config value untouched.
type JsonConfig struct {
	DataDir      string `json:"data_dir"`
	DatabaseFile string `json:"database_file"`
	BlobDirName  string `json:"blob_dir"`
}

// parseJson overlays cfg with values loaded from the JSON file named by the
// -c/-config flags. If neither flag is given, no JSON is loaded. Read or
// unmarshal errors panic (caller should recover if desired).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DataDir != "" {
		cfg.DataDir = jc.DataDir
	}
	if jc.DatabaseFile != "" {
		cfg.DatabaseFile = jc.DatabaseFile
	}
	if jc.BlobDirName != "" {
		cfg.BlobDirName = jc.BlobDirName
	}
}
