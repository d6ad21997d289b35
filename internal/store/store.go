// Package store persists user records as a single pretty-printed JSON
// file mapping user IDs to records. Every save rewrites the whole
// file; this is atomic enough for a single-writer process only, and
// concurrent processes can clobber each other's writes.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/Jruth44/kaizen-nutrition/internal/models"
)

// UserStore owns the on-disk mapping of user ID to UserRecord.
type UserStore struct {
	mu    sync.Mutex
	path  string
	users map[string]models.UserRecord
}

// NewUserStore loads the store from path. A missing file starts an
// empty store; any other read or decode failure is an error.
func NewUserStore(path string) (*UserStore, error) {
	s := &UserStore{
		path:  path,
		users: make(map[string]models.UserRecord),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read user data: %w", err)
	}

	if err := json.Unmarshal(data, &s.users); err != nil {
		return nil, fmt.Errorf("failed to decode user data: %w", err)
	}

	return s, nil
}

// Get returns the record for id and whether it exists.
func (s *UserStore) Get(id string) (models.UserRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, ok := s.users[id]
	return record, ok
}

// Put replaces the record for id and rewrites the whole file.
func (s *UserStore) Put(id string, record models.UserRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[id] = record
	return s.save()
}

// save writes the full mapping, pretty-printed. Caller holds the lock.
func (s *UserStore) save() error {
	data, err := json.MarshalIndent(s.users, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to encode user data: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to save user data: %w", err)
	}

	return nil
}
