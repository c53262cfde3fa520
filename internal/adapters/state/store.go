// Package state implements the persistent modification state database
// backed by a flat JSON file.
package state

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/remake/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultPath is where the state database lives, relative to the working
// directory the engine runs in.
const DefaultPath = ".remake/state.json"

var _ ports.StateStore = (*Store)(nil)

// record is the on-disk layout of the state database.
type record struct {
	// Clones maps a modified file path to its pristine clone path.
	Clones map[string]string `json:"clones"`

	// Built maps a modification id to the content hash recorded when the
	// modification was last applied.
	Built map[string]string `json:"built"`
}

// Store implements ports.StateStore using a flat JSON file. Every mutation
// is written through to disk so an interrupted build never loses the clone
// registry it would need to restore files.
type Store struct {
	path  string
	mu    sync.RWMutex
	cache record
}

// NewStore creates a StateStore backed by the file at the given path. A
// missing file starts the store empty.
func NewStore(path string) (*Store, error) {
	s := &Store{
		path: filepath.Clean(path),
		cache: record{
			Clones: make(map[string]string),
			Built:  make(map[string]string),
		},
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read state database")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.cache); err != nil {
		return zerr.Wrap(err, "failed to unmarshal state database")
	}
	if s.cache.Clones == nil {
		s.cache.Clones = make(map[string]string)
	}
	if s.cache.Built == nil {
		s.cache.Built = make(map[string]string)
	}

	return nil
}

func (s *Store) save() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(s.cache, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal state database")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.Wrap(err, "failed to create directory for state database")
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.Wrap(err, "failed to write state database")
	}

	return nil
}

// Clone returns the registered clone path for the file at path.
func (s *Store) Clone(path string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	clone, ok := s.cache.Clones[path]
	return clone, ok
}

// PutClone registers clonePath as the pristine copy of path.
func (s *Store) PutClone(path, clonePath string) error {
	s.mu.Lock()
	s.cache.Clones[path] = clonePath
	s.mu.Unlock()

	return s.save()
}

// DeleteClone removes the clone registration for path.
func (s *Store) DeleteClone(path string) error {
	s.mu.Lock()
	delete(s.cache.Clones, path)
	s.mu.Unlock()

	return s.save()
}

// BuiltHash returns the content hash recorded for the modification id.
func (s *Store) BuiltHash(id string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hash, ok := s.cache.Built[id]
	return hash, ok
}

// PutBuiltHash records the content hash for the modification id.
func (s *Store) PutBuiltHash(id, hash string) error {
	s.mu.Lock()
	s.cache.Built[id] = hash
	s.mu.Unlock()

	return s.save()
}

// DeleteBuiltHash removes the recorded hash for the modification id.
func (s *Store) DeleteBuiltHash(id string) error {
	s.mu.Lock()
	delete(s.cache.Built, id)
	s.mu.Unlock()

	return s.save()
}

// Clear drops all registrations and removes the database file.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.cache = record{
		Clones: make(map[string]string),
		Built:  make(map[string]string),
	}
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.Wrap(err, "failed to remove state database")
	}
	return nil
}

// Flush writes the current state to disk. Mutations already write through;
// Flush is the shutdown guarantee.
func (s *Store) Flush() error {
	return s.save()
}
