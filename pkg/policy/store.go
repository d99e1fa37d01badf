package policy

import (
	"sync"
)

// Store holds the active policy Set and swaps it on reload. Readers get a
// whole snapshot; a failed reload keeps the previous one.
type Store struct {
	mu   sync.RWMutex
	set  *Set
	path string
}

// NewStore creates a store serving the defaults. With a non-empty path,
// Load reads overrides from that file.
func NewStore(path string) *Store {
	return &Store{set: DefaultSet(), path: path}
}

// Load reads the policy file, if any, and makes it current.
func (s *Store) Load() error {
	if s.path == "" {
		return nil
	}
	set, err := Load(s.path)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.set = set
	s.mu.Unlock()
	return nil
}

// Reload re-reads the policy file (hot reload).
func (s *Store) Reload() error {
	return s.Load()
}

// Current returns the active snapshot.
func (s *Store) Current() *Set {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set
}

// Path returns the policy file path, empty when running on defaults.
func (s *Store) Path() string {
	return s.path
}
