// Package storage persists whole JSON documents to local disk. Each
// collection lives in a single file that is read and rewritten in full;
// callers serialize their own read-modify-write cycles.
package storage

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// ReadCollection parses the JSON document at path. A missing, empty or
// unparseable file is replaced with def and def is returned, so startup
// never fails on a damaged document. Any other I/O error propagates.
func ReadCollection[T any](path string, def T) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return def, fmt.Errorf("read %s: %w", filepath.Base(path), err)
		}
		slog.Warn("document missing, seeding default", "file", filepath.Base(path))
		if werr := WriteCollection(path, def); werr != nil {
			return def, werr
		}
		return def, nil
	}
	if strings.TrimSpace(string(data)) == "" {
		slog.Warn("document empty, seeding default", "file", filepath.Base(path))
		if werr := WriteCollection(path, def); werr != nil {
			return def, werr
		}
		return def, nil
	}
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		slog.Warn("document unparseable, seeding default", "file", filepath.Base(path), "error", err)
		if werr := WriteCollection(path, def); werr != nil {
			return def, werr
		}
		return def, nil
	}
	return out, nil
}

// WriteCollection serializes data and overwrites the file in full, matching
// the two-space indentation of the original documents.
func WriteCollection[T any](path string, data T) error {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
