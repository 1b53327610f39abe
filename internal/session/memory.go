package session

import (
	"context"
	"sync"
)

// MemoryStore keeps pending forms in a mutex-guarded map. State does not
// survive a restart, which is acceptable: a token only spans one prompt-reply
// turn. The lock guards same-chat messages racing on the token.
type MemoryStore struct {
	mu    sync.RWMutex
	forms map[int64]Form
}

// NewMemoryStore constructs an empty in-process store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{forms: make(map[int64]Form)}
}

// Get returns the chat's pending form, FormNone when absent.
func (s *MemoryStore) Get(_ context.Context, chatID int64) Form {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.forms[chatID]
}

// Set overwrites the chat's pending form.
func (s *MemoryStore) Set(_ context.Context, chatID int64, form Form) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.forms[chatID] = form
}

// Clear marks the chat idle.
func (s *MemoryStore) Clear(_ context.Context, chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.forms, chatID)
}
