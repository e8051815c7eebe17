package session

import (
	"context"
	"time"
)

// Session represents an authenticated admin session. It carries the
// identity summary resolved at login so protected routes never re-read
// the credential store.
type Session struct {
	Token     string    // opaque unguessable identifier, see GenerateToken
	UserID    string    // references users.id
	UserEmail string    // canonical (lower-cased) email
	UserName  string    // display name
	CreatedAt time.Time // mint time
	ExpiresAt time.Time // absolute expiry time
}

// Expired reports whether the session's age exceeds its window.
func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}

// Store defines how sessions are stored and retrieved.
//
// Get must treat expired sessions as absent: callers cannot distinguish
// "never existed", "destroyed", and "expired", and must not be able to.
// Delete is idempotent; deleting an unknown token is not an error.
type Store interface {
	Create(ctx context.Context, s Session) error
	Get(ctx context.Context, token string) (*Session, error)
	Delete(ctx context.Context, token string) error
}
