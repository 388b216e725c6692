package savefile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Store is the single save file on disk. A missing file is a normal state.
type Store struct {
	Path string
}

// NewStore returns a store for the file at path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Exists reports whether a save file is present.
func (s *Store) Exists() bool {
	_, err := os.Stat(s.Path)
	return err == nil
}

// Read returns the file contents.
func (s *Store) Read() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("savefile: cannot read %s: %w", s.Path, err)
	}
	return data, nil
}

// Write replaces the save file: any existing file is removed first.
func (s *Store) Write(data []byte) error {
	if err := s.Remove(); err != nil {
		return err
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("savefile: cannot write %s: %w", s.Path, err)
	}
	return nil
}

// Remove deletes the save file. Removing a missing file is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.Path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("savefile: cannot remove %s: %w", s.Path, err)
	}
	return nil
}
