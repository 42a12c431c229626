package main

import "sync"

// SessionStore tracks which users have passed the membership check in
// the current process lifetime. Nothing is persisted: every user must
// re-verify with /start after a restart.
//
// The map is only touched at state-transition points (a passed /start
// check, a lookup's verified test), never held across remote calls.
type SessionStore struct {
	mu       sync.RWMutex
	verified map[int64]struct{}
}

func NewSessionStore() *SessionStore {
	return &SessionStore{verified: make(map[int64]struct{})}
}

// MarkVerified records that the user passed the membership check.
func (s *SessionStore) MarkVerified(userID int64) {
	s.mu.Lock()
	s.verified[userID] = struct{}{}
	s.mu.Unlock()
}

// IsVerified reports whether the user passed the check this session.
func (s *SessionStore) IsVerified(userID int64) bool {
	s.mu.RLock()
	_, ok := s.verified[userID]
	s.mu.RUnlock()
	return ok
}
