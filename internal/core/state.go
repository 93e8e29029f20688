package core

import "sync"

// StateStore holds each room's current document text. It is a flat
// last-write-wins snapshot: no diffing, no history, never persisted.
// Absence of an entry means empty text.
type StateStore struct {
	mu   sync.RWMutex
	docs map[string]string
}

// NewStateStore constructs an empty state store.
func NewStateStore() *StateStore {
	return &StateStore{docs: make(map[string]string)}
}

// Get returns the room's current text, or "" if never written.
func (s *StateStore) Get(room string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.docs[room]
}

// Set replaces the room's text unconditionally.
func (s *StateStore) Set(room, text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[room] = text
}
