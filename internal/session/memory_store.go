package session

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// MemoryStore is the ephemeral session registry for hosts that give us
// no durable storage (function instances, test processes). Its entire
// contents are lost whenever the process is recycled; callers must
// treat a vanished session as an expected re-login prompt, not an
// error. This is a documented property of the deployment, not a bug.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
	now      func() time.Time
}

// NewMemoryStore creates an in-process session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

func (m *MemoryStore) Create(_ context.Context, s Session) error {
	if s.Token == "" || s.UserID == "" {
		return fmt.Errorf("session: missing token or user_id")
	}
	if s.Expired(m.now()) {
		return fmt.Errorf("session: expires_at must be in the future")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Lazy sweep: drop expired entries while we hold the lock so the
	// map does not grow unboundedly between restarts.
	now := m.now()
	for token, sess := range m.sessions {
		if sess.Expired(now) {
			delete(m.sessions, token)
		}
	}

	m.sessions[s.Token] = s
	return nil
}

func (m *MemoryStore) Get(_ context.Context, token string) (*Session, error) {
	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	// Expired reads as absent, indistinguishable from never-existed.
	if s.Expired(m.now()) {
		m.mu.Lock()
		delete(m.sessions, token)
		m.mu.Unlock()
		return nil, nil
	}

	return &s, nil
}

func (m *MemoryStore) Delete(_ context.Context, token string) error {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
	return nil
}

// Len reports the number of live entries. Diagnostic use only.
func (m *MemoryStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
