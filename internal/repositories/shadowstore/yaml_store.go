/*
Package shadowstore persists the shadow store as a single YAML file,
loaded fully on every invocation and rewritten atomically on mutation.
*/
package shadowstore

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hcastellon/shdw/internal/core/domain/shadow"
	"github.com/hcastellon/shdw/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// ConfigDirEnv overrides the directory holding the store file. Used by
// tests and by users who keep their dotfiles elsewhere.
const ConfigDirEnv = "SHDW_CONFIG_DIR"

const storeFileName = "shadows.yaml"

// YAMLStore implements the ShadowStore interface on a YAML file.
type YAMLStore struct {
	path string
}

// New creates a store backed by the file at path.
func New(path string) ports.ShadowStore {
	return &YAMLStore{path: path}
}

// DefaultPath returns the platform-conventional store location,
// honoring the SHDW_CONFIG_DIR override.
func DefaultPath() (string, error) {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return filepath.Join(dir, storeFileName), nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate user config directory: %w", err)
	}
	return filepath.Join(dir, "shdw", storeFileName), nil
}

// Path returns the location of the backing file.
func (s *YAMLStore) Path() string {
	return s.path
}

// Load reads and parses the store file. A missing or empty file is not
// an error; it means no shadows have been recorded yet.
func (s *YAMLStore) Load() (shadow.StoreState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return emptyState(), nil
		}
		return emptyState(), fmt.Errorf("failed to read store file %s: %w", s.path, err)
	}
	if len(data) == 0 {
		return emptyState(), nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	// Decode into a zero state so a file without a version key really
	// reads as version 0 and goes through migration.
	var state shadow.StoreState
	if err := decoder.Decode(&state); err != nil {
		// A file containing only comments or a bare document marker
		// decodes to EOF; treat it like an empty file.
		if errors.Is(err, io.EOF) {
			return emptyState(), nil
		}
		return emptyState(), fmt.Errorf("failed to parse store file %s: %w: %v", s.path, shadow.ErrStoreCorrupt, err)
	}

	if state.Version > shadow.CurrentStoreVersion {
		return emptyState(), fmt.Errorf("store file %s has version %d, newer than this binary supports: %w", s.path, state.Version, shadow.ErrStoreCorrupt)
	}
	if state.Version < shadow.CurrentStoreVersion {
		state = migrate(state)
	}

	return state, nil
}

// Save writes the full state back, sorting shadows for deterministic
// files. The write goes to a temp file in the same directory followed
// by a rename, so a crash mid-write never leaves a truncated store and
// concurrent readers never observe a partial one. Racing writers are
// last-writer-wins; this is an interactively driven single-user tool
// and the race is documented rather than locked away.
func (s *YAMLStore) Save(state shadow.StoreState) error {
	state.Version = shadow.CurrentStoreVersion
	state.Shadows = state.Shadows.Sorted()

	data, err := yaml.Marshal(state)
	if err != nil {
		return fmt.Errorf("failed to marshal store state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".shadows-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to create temp store file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmp != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp store file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp store file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		return fmt.Errorf("failed to set store file permissions: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to rename temp store file into place: %w", err)
	}

	tmp = nil
	return nil
}

func emptyState() shadow.StoreState {
	return shadow.StoreState{Version: shadow.CurrentStoreVersion}
}

// migrate upgrades older store versions in memory. The upgraded state
// is persisted on the next Save, not eagerly.
func migrate(state shadow.StoreState) shadow.StoreState {
	// Version 0 is a pre-versioning file; its fields are already
	// compatible with version 1.
	state.Version = shadow.CurrentStoreVersion
	return state
}
