package token

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Identity is the authenticated principal a token resolves to.
type Identity struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Store issues and validates opaque bearer tokens. Implementations are
// injected into the auth middleware; nothing holds token state globally.
type Store interface {
	// Issue creates a new token bound to identity.
	Issue(ctx context.Context, identity Identity) (string, error)

	// Validate resolves a token to its identity.
	// ok=false means the token is unknown, revoked or expired.
	Validate(ctx context.Context, token string) (Identity, bool, error)

	// Revoke invalidates a token. Revoking an unknown token is not an error.
	Revoke(ctx context.Context, token string) error
}

// newToken returns 32 random bytes hex-encoded.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
