package core

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/gridlegend/gridlegend/internal/config"
)

// MarshalLegend pretty-prints a registry snapshot as JSON.
func MarshalLegend(w io.Writer, r *Registry) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r.Snapshot())
}

// UnmarshalLegend decodes a snapshot document and rejects schema versions
// with a different major version.
func UnmarshalLegend(r io.Reader) (Snapshot, error) {
	var s Snapshot
	if err := json.NewDecoder(r).Decode(&s); err != nil {
		return s, err
	}
	if s.SchemaVersion == "" {
		return s, fmt.Errorf("legend document has no schema_version")
	}
	if err := config.CheckSchema(&s.SchemaVersion); err != nil {
		return s, err
	}
	return s, nil
}
