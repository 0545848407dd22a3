package notes

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// Store reads and writes a history file. The filesystem is abstracted so
// tests can run against an in-memory one.
type Store struct {
	fs   afero.Fs
	path string
}

// NewStore creates a store for the history file at path on the real
// filesystem.
func NewStore(path string) *Store {
	return NewStoreOn(afero.NewOsFs(), path)
}

// NewStoreOn creates a store backed by the given filesystem.
func NewStoreOn(fs afero.Fs, path string) *Store {
	return &Store{fs: fs, path: path}
}

// Path returns the location the store persists to.
func (s *Store) Path() string {
	return s.path
}

// Load reads the history file. A missing file yields an empty history.
func (s *Store) Load() (History, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return History{Builds: []Build{}}, nil
		}
		return History{}, fmt.Errorf("failed to read history file: %w", err)
	}

	var history History
	if err := json.Unmarshal(data, &history); err != nil {
		return History{}, fmt.Errorf("failed to parse history file: %w", err)
	}
	return history, nil
}

// Save writes the history file, creating parent directories as needed.
func (s *Store) Save(history History) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}

	if err := afero.WriteFile(s.fs, s.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write history file: %w", err)
	}
	return nil
}

// Accumulate loads the history, inserts the build per the policy, trims to
// limit entries, and writes the result back.
func (s *Store) Accumulate(build Build, policy Policy, limit int) (History, error) {
	history, err := s.Load()
	if err != nil {
		return History{}, err
	}

	history = history.Insert(build, policy, limit)
	if err := s.Save(history); err != nil {
		return History{}, err
	}
	return history, nil
}
