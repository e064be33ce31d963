package token

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreIssueAndValidate(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	tok, err := store.Issue(ctx, Identity{Username: "admin", Role: "admin"})
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	identity, ok, err := store.Validate(ctx, tok)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "admin", identity.Username)
	assert.Equal(t, "admin", identity.Role)
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore(time.Hour)

	_, ok, err := store.Validate(context.Background(), "deadbeef")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreRevoke(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	tok, err := store.Issue(ctx, Identity{Username: "admin", Role: "admin"})
	require.NoError(t, err)

	require.NoError(t, store.Revoke(ctx, tok))

	_, ok, err := store.Validate(ctx, tok)
	require.NoError(t, err)
	assert.False(t, ok)

	// Revoking twice is fine
	assert.NoError(t, store.Revoke(ctx, tok))
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	tok, err := store.Issue(ctx, Identity{Username: "admin", Role: "admin"})
	require.NoError(t, err)

	// Still valid just before the TTL
	current = current.Add(59 * time.Second)
	_, ok, err := store.Validate(ctx, tok)
	require.NoError(t, err)
	assert.True(t, ok)

	// Expired after the TTL
	current = current.Add(2 * time.Second)
	_, ok, err = store.Validate(ctx, tok)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemoryStoreEvictsExpiredOnIssue(t *testing.T) {
	store := NewMemoryStore(time.Minute)
	ctx := context.Background()

	current := time.Now()
	store.now = func() time.Time { return current }

	for i := 0; i < 10; i++ {
		_, err := store.Issue(ctx, Identity{Username: "admin", Role: "admin"})
		require.NoError(t, err)
	}

	current = current.Add(2 * time.Minute)
	_, err := store.Issue(ctx, Identity{Username: "admin", Role: "admin"})
	require.NoError(t, err)

	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.Len(t, store.tokens, 1, "expired tokens should be evicted")
}

func TestTokensAreUnique(t *testing.T) {
	store := NewMemoryStore(time.Hour)
	ctx := context.Background()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		tok, err := store.Issue(ctx, Identity{Username: "admin", Role: "admin"})
		require.NoError(t, err)
		assert.Len(t, tok, 64)
		assert.False(t, seen[tok])
		seen[tok] = true
	}
}
