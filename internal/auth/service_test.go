package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kiema2001/prof-mbinda-backend/internal/auth/credentials"
	"github.com/kiema2001/prof-mbinda-backend/internal/logger"
	"github.com/kiema2001/prof-mbinda-backend/internal/model"
	"github.com/kiema2001/prof-mbinda-backend/internal/session"
)

type fakeUserStore struct {
	users map[string]model.User
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (f *fakeUserStore) Create(_ context.Context, u model.User) (model.User, error) {
	f.users[u.Email] = u
	return u, nil
}

func newTestService(t *testing.T) (*Service, *session.MemoryStore) {
	t.Helper()

	hash, err := credentials.HashPassword("correct-horse")
	require.NoError(t, err)

	users := &fakeUserStore{users: map[string]model.User{
		"admin@example.org": {
			ID:           "user-1",
			Email:        "admin@example.org",
			PasswordHash: hash,
			FullName:     "Administrator",
		},
	}}

	sessions := session.NewMemoryStore()
	svc := NewService(users, sessions, 24*time.Hour, logger.New(0))
	return svc, sessions
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	token, user, err := svc.Login(ctx, "admin@example.org", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, "user-1", user.ID)
	assert.Equal(t, "Administrator", user.Name)

	got, ok, err := svc.Status(ctx, token)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, user, got)
}

func TestLogin_NormalizesEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	token, _, err := svc.Login(ctx, "  ADMIN@Example.ORG ", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
}

func TestLogin_UniformFailure(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	// Wrong password and unknown email must be indistinguishable.
	_, _, errWrongPass := svc.Login(ctx, "admin@example.org", "nope")
	_, _, errNoUser := svc.Login(ctx, "ghost@example.org", "nope")

	require.ErrorIs(t, errWrongPass, ErrInvalidCredentials)
	require.ErrorIs(t, errNoUser, ErrInvalidCredentials)
	assert.Equal(t, errWrongPass.Error(), errNoUser.Error())
}

func TestStatus_UnknownToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	_, ok, err := svc.Status(ctx, "never-minted")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = svc.Status(ctx, "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLogout_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	token, _, err := svc.Login(ctx, "admin@example.org", "correct-horse")
	require.NoError(t, err)

	other, _, err := svc.Login(ctx, "admin@example.org", "correct-horse")
	require.NoError(t, err)

	svc.Logout(ctx, token)
	svc.Logout(ctx, token) // second call is a no-op

	_, ok, err := svc.Status(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)

	// The repeated logout must not touch any other session.
	_, ok, err = svc.Status(ctx, other)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStatus_ExpiredSession(t *testing.T) {
	ctx := context.Background()

	hash, err := credentials.HashPassword("correct-horse")
	require.NoError(t, err)

	users := &fakeUserStore{users: map[string]model.User{
		"admin@example.org": {ID: "user-1", Email: "admin@example.org", PasswordHash: hash},
	}}
	sessions := session.NewMemoryStore()
	svc := NewService(users, sessions, time.Millisecond, logger.New(0))

	token, _, err := svc.Login(ctx, "admin@example.org", "correct-horse")
	require.NoError(t, err)

	time.Sleep(5 * time.Millisecond)

	_, ok, err := svc.Status(ctx, token)
	require.NoError(t, err)
	assert.False(t, ok)
}
