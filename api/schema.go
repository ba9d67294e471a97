package api

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/qri-io/jsonschema"

	dbfs "github.com/intervyou/intervyou/db"
)

// LoadSessionSchema compiles the embedded JSON schema used to validate
// session creation payloads. Compiled once at startup.
func LoadSessionSchema() (*jsonschema.Schema, error) {
	b, err := fs.ReadFile(dbfs.SeedFiles, "seed/session_schema.json")
	if err != nil {
		return nil, fmt.Errorf("read session schema: %w", err)
	}

	rs := &jsonschema.Schema{}
	if err := json.Unmarshal(b, rs); err != nil {
		return nil, fmt.Errorf("compile session schema: %w", err)
	}

	return rs, nil
}
