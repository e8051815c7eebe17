package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSession(t *testing.T, ttl time.Duration) Session {
	t.Helper()
	token, err := GenerateToken()
	require.NoError(t, err)
	now := time.Now()
	return Session{
		Token:     token,
		UserID:    "user-1",
		UserEmail: "admin@mbindalab.com",
		UserName:  "Administrator",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := testSession(t, time.Hour)
	require.NoError(t, store.Create(ctx, s))

	got, err := store.Get(ctx, s.Token)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, s.UserID, got.UserID)
	assert.Equal(t, s.UserEmail, got.UserEmail)
}

func TestMemoryStore_GetUnknownToken(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	got, err := store.Get(ctx, "never-minted")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_CreateRejectsIncomplete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := testSession(t, time.Hour)
	s.UserID = ""
	assert.Error(t, store.Create(ctx, s))

	s = testSession(t, -time.Minute)
	assert.Error(t, store.Create(ctx, s))
}

func TestMemoryStore_DeleteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := testSession(t, time.Hour)
	require.NoError(t, store.Create(ctx, s))

	require.NoError(t, store.Delete(ctx, s.Token))
	require.NoError(t, store.Delete(ctx, s.Token))
	require.NoError(t, store.Delete(ctx, "never-minted"))

	got, err := store.Get(ctx, s.Token)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_DeleteDoesNotAffectOtherSessions(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	a := testSession(t, time.Hour)
	b := testSession(t, time.Hour)
	require.NoError(t, store.Create(ctx, a))
	require.NoError(t, store.Create(ctx, b))

	require.NoError(t, store.Delete(ctx, a.Token))

	got, err := store.Get(ctx, b.Token)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, b.UserID, got.UserID)
}

func TestMemoryStore_ExpiredReadsAsAbsent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	s := testSession(t, time.Hour)
	require.NoError(t, store.Create(ctx, s))

	// Move the store's clock past the expiry window without ever
	// deleting the session explicitly.
	store.now = func() time.Time { return time.Now().Add(25 * time.Hour) }

	got, err := store.Get(ctx, s.Token)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestMemoryStore_CreateSweepsExpired(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	base := time.Now()
	store.now = func() time.Time { return base }

	old := testSession(t, 0)
	old.ExpiresAt = base.Add(time.Minute)
	require.NoError(t, store.Create(ctx, old))

	store.now = func() time.Time { return base.Add(2 * time.Minute) }

	fresh := testSession(t, 0)
	fresh.CreatedAt = base.Add(2 * time.Minute)
	fresh.ExpiresAt = base.Add(2 * time.Hour)
	require.NoError(t, store.Create(ctx, fresh))

	assert.Equal(t, 1, store.Len())
}

func TestGenerateToken_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		token, err := GenerateToken()
		require.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.False(t, seen[token], "token reused")
		seen[token] = true
	}
}
