// Package session keeps parsed student profiles for the lifetime of
// the process.
package session

import (
	"sync"

	"github.com/yigit/electa/internal/app/models"
)

// Store maps roll numbers to student profiles. Writes overwrite any
// prior entry for the same roll number (last write wins); entries are
// never evicted. Safe for concurrent use.
type Store struct {
	mu       sync.RWMutex
	profiles map[string]*models.StudentProfile
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{profiles: make(map[string]*models.StudentProfile)}
}

// Put registers a profile under its roll number, replacing any
// existing entry.
func (s *Store) Put(profile *models.StudentProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[profile.RollNo] = profile
}

// Get returns the profile registered for a roll number.
func (s *Store) Get(rollNo string) (*models.StudentProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[rollNo]
	return profile, ok
}

// Len returns the number of registered profiles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.profiles)
}
