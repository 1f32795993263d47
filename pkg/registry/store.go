package registry

import (
	"sort"
	"sync"

	"github.com/getfaked/faked/pkg/matching"
)

// Store is a thread-safe in-memory store of call matchers.
//
// The description index records each matcher's description at registration
// time. UseArgumentsPredicate changes a matcher's description afterwards, so
// removal must go through the recorded key, not a fresh Describe call.
type Store struct {
	mu       sync.RWMutex
	matchers map[string]*matching.Matcher
	byDesc   map[string]string // registration-time description -> matcher ID
	descByID map[string]string // matcher ID -> registration-time description
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		matchers: make(map[string]*matching.Matcher),
		byDesc:   make(map[string]string),
		descByID: make(map[string]string),
	}
}

// Add stores a matcher, deduplicating by description: if a matcher with the
// same canonical description is already registered, the existing matcher is
// returned and the new one is discarded. The returned bool reports whether m
// itself was added.
func (s *Store) Add(m *matching.Matcher) (*matching.Matcher, bool) {
	if m == nil {
		return nil, false
	}
	desc := m.Describe()

	s.mu.Lock()
	defer s.mu.Unlock()
	if existingID, ok := s.byDesc[desc]; ok {
		return s.matchers[existingID], false
	}
	s.matchers[m.ID()] = m
	s.byDesc[desc] = m.ID()
	s.descByID[m.ID()] = desc
	return m, true
}

// Get retrieves a matcher by ID. Returns nil if not found.
func (s *Store) Get(id string) *matching.Matcher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.matchers[id]
}

// GetByDescription retrieves a matcher by its canonical description.
// Returns nil if not found.
func (s *Store) GetByDescription(desc string) *matching.Matcher {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byDesc[desc]
	if !ok {
		return nil
	}
	return s.matchers[id]
}

// Delete removes a matcher by ID. Returns true if deleted, false if not
// found.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matchers[id]; !ok {
		return false
	}
	delete(s.matchers, id)
	delete(s.byDesc, s.descByID[id])
	delete(s.descByID, id)
	return true
}

// List returns all stored matchers, sorted by description for deterministic
// iteration.
func (s *Store) List() []*matching.Matcher {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]*matching.Matcher, 0, len(s.matchers))
	for _, m := range s.matchers {
		result = append(result, m)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Describe() < result[j].Describe()
	})
	return result
}

// Count returns the number of stored matchers.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.matchers)
}

// Clear removes all matchers.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matchers = make(map[string]*matching.Matcher)
	s.byDesc = make(map[string]string)
	s.descByID = make(map[string]string)
}
