package storage

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
)

// SnapshotStore persists a single JSON document with an embedded schema
// version tag. It is deliberately forgiving on the read side: a missing
// file, unreadable JSON, or an unrecognized version all come back as "no
// saved state" so corruption can never crash the game.
type SnapshotStore struct {
	path     string
	accepted map[string]bool
}

// NewSnapshotStore creates a store at path that will read back only the
// given schema versions.
func NewSnapshotStore(path string, versions ...string) *SnapshotStore {
	accepted := make(map[string]bool, len(versions))
	for _, v := range versions {
		accepted[v] = true
	}
	return &SnapshotStore{path: path, accepted: accepted}
}

// Save marshals v and writes it atomically. v is expected to carry its own
// version tag in a top-level "version" field.
func (s *SnapshotStore) Save(v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return atomicWrite(s.path, data, 0644)
}

// Load reads the snapshot into into. Returns false when there is nothing
// usable; the whole payload is discarded on a version mismatch rather than
// partially applied.
func (s *SnapshotStore) Load(into any) bool {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("reading snapshot", "path", s.path, "error", err)
		}
		return false
	}

	var probe struct {
		Version string `json:"version"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		slog.Warn("unreadable snapshot discarded", "path", s.path, "error", err)
		return false
	}
	if !s.accepted[probe.Version] {
		slog.Warn("snapshot version not recognized, starting fresh", "path", s.path, "version", probe.Version)
		return false
	}

	if err := json.Unmarshal(data, into); err != nil {
		slog.Warn("corrupt snapshot discarded", "path", s.path, "error", err)
		return false
	}
	return true
}

// Clear removes the snapshot file. Missing files are fine.
func (s *SnapshotStore) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
