package auth

import (
	"context"
)

// Service handles the admin session lifecycle.
type Service interface {
	// Login checks the credentials and issues a session token.
	Login(ctx context.Context, req *LoginRequest) (*LoginResponse, error)

	// Logout revokes a session token. Revoking an unknown token is not
	// an error.
	Logout(ctx context.Context, token string) error
}
