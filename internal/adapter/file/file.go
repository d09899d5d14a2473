// Package file implements the contestant repository as a single JSON
// document on disk. This is the roster's default storage.
package file

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"slimdown/internal/domain"
)

// Store keeps the whole roster in one JSON file. Every operation reads the
// document fresh and every mutation rewrites it in full, so the file is
// always a complete snapshot and external edits are picked up on the next
// read.
type Store struct {
	mu   sync.Mutex
	path string
}

var _ domain.ContestantRepository = (*Store)(nil)

// NewStore returns a store backed by the JSON document at path. The file is
// created on first mutation.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the location of the backing document.
func (s *Store) Path() string {
	return s.path
}

// Add appends a contestant to the document.
func (s *Store) Add(ctx context.Context, c domain.Contestant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.load()
	if err != nil {
		return err
	}
	for i := range roster {
		if roster[i].Name == c.Name {
			return errors.New("contestant already exists")
		}
	}
	return s.save(append(roster, c))
}

// Get retrieves a contestant by name.
func (s *Store) Get(ctx context.Context, name string) (*domain.Contestant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.load()
	if err != nil {
		return nil, err
	}
	for i := range roster {
		if roster[i].Name == name {
			c := roster[i]
			return &c, nil
		}
	}
	return nil, nil
}

// List returns all contestants in enrollment order.
func (s *Store) List(ctx context.Context) ([]domain.Contestant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// Update replaces the record with the same name, keeping its position.
func (s *Store) Update(ctx context.Context, c domain.Contestant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.load()
	if err != nil {
		return err
	}
	for i := range roster {
		if roster[i].Name == c.Name {
			roster[i] = c
			return s.save(roster)
		}
	}
	return errors.New("contestant not found")
}

// Remove deletes a contestant by name.
func (s *Store) Remove(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	roster, err := s.load()
	if err != nil {
		return err
	}
	for i := range roster {
		if roster[i].Name == name {
			return s.save(append(roster[:i], roster[i+1:]...))
		}
	}
	return errors.New("contestant not found")
}

func (s *Store) load() ([]domain.Contestant, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read roster: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}
	var roster []domain.Contestant
	if err := json.Unmarshal(data, &roster); err != nil {
		return nil, fmt.Errorf("parse roster %s: %w", s.path, err)
	}
	return roster, nil
}

func (s *Store) save(roster []domain.Contestant) error {
	if roster == nil {
		roster = []domain.Contestant{}
	}
	data, err := json.MarshalIndent(roster, "", "  ")
	if err != nil {
		return err
	}
	return writeAtomic(s.path, append(data, '\n'))
}

// writeAtomic writes data to a temp file and renames it into place, so
// readers never observe a partial document.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".slimdown-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
