package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/kiema2001/prof-mbinda-backend/internal/auth/credentials"
	"github.com/kiema2001/prof-mbinda-backend/internal/logger"
	"github.com/kiema2001/prof-mbinda-backend/internal/model"
	"github.com/kiema2001/prof-mbinda-backend/internal/session"
)

// ErrInvalidCredentials covers both unknown email and wrong password.
// Callers surface one uniform message so login attempts cannot probe
// which identities exist.
var ErrInvalidCredentials = errors.New("invalid credentials")

// dummyHash keeps the bcrypt cost of a failed lookup in line with a
// failed comparison, so response timing does not reveal whether the
// email exists. bcrypt hash of an unused filler value.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Service verifies credentials and mints/destroys sessions. It holds
// no authentication state itself; a caller's state lives entirely in
// the session store.
type Service struct {
	users    model.UserStore
	sessions session.Store
	ttl      time.Duration
	log      *logger.Logger
}

// NewService creates an authenticator over the given credential and
// session stores.
func NewService(
	users model.UserStore,
	sessions session.Store,
	ttl time.Duration,
	log *logger.Logger,
) *Service {
	return &Service{
		users:    users,
		sessions: sessions,
		ttl:      ttl,
		log:      log,
	}
}

// NormalizeEmail lowers an identity to its canonical form. Lookups and
// uniqueness checks always operate on this form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Login verifies the submitted credentials and mints a session.
// Unknown email and wrong password both return ErrInvalidCredentials
// with nothing to tell them apart.
func (s *Service) Login(
	ctx context.Context,
	email string,
	password string,
) (string, model.UserSummary, error) {

	email = NormalizeEmail(email)

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			// Burn a comparison anyway, see dummyHash.
			_ = credentials.VerifyPassword(dummyHash, password)
			return "", model.UserSummary{}, ErrInvalidCredentials
		}
		return "", model.UserSummary{}, fmt.Errorf("auth: credential lookup: %w", err)
	}

	if err := credentials.VerifyPassword(user.PasswordHash, password); err != nil {
		return "", model.UserSummary{}, ErrInvalidCredentials
	}

	token, err := session.GenerateToken()
	if err != nil {
		return "", model.UserSummary{}, fmt.Errorf("auth: mint session: %w", err)
	}

	now := time.Now()
	sess := session.Session{
		Token:     token,
		UserID:    user.ID,
		UserEmail: user.Email,
		UserName:  user.FullName,
		CreatedAt: now,
		ExpiresAt: now.Add(s.ttl),
	}

	// Synchronous create: a status check issued after Login returns
	// must see the session (read-your-writes).
	if err := s.sessions.Create(ctx, sess); err != nil {
		return "", model.UserSummary{}, fmt.Errorf("auth: persist session: %w", err)
	}

	s.log.Info("login", "user_id", user.ID, "email", user.Email)

	return token, user.Summary(), nil
}

// Logout destroys the session. Always succeeds from the caller's
// perspective; destroying an unknown or already-destroyed token is a
// no-op.
func (s *Service) Logout(ctx context.Context, token string) {
	if token == "" {
		return
	}
	if err := s.sessions.Delete(ctx, token); err != nil {
		s.log.Error("logout: session delete failed", "error", err)
	}
}

// Status resolves a token to the identity that owns it. Absent,
// destroyed and expired tokens all report anonymous; the error return
// is reserved for store faults.
func (s *Service) Status(ctx context.Context, token string) (model.UserSummary, bool, error) {
	if token == "" {
		return model.UserSummary{}, false, nil
	}

	sess, err := s.sessions.Get(ctx, token)
	if err != nil {
		return model.UserSummary{}, false, fmt.Errorf("auth: session lookup: %w", err)
	}
	if sess == nil {
		return model.UserSummary{}, false, nil
	}

	return model.UserSummary{
		ID:    sess.UserID,
		Email: sess.UserEmail,
		Name:  sess.UserName,
	}, true, nil
}

// TTL reports the configured session lifetime.
func (s *Service) TTL() time.Duration {
	return s.ttl
}
