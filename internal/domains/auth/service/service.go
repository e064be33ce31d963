package service

import (
	"context"
	"crypto/subtle"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"texarea-backend/internal/domains/auth"
	"texarea-backend/pkg/logger"
	"texarea-backend/pkg/token"
)

// Credentials is the single admin account the API accepts. When
// PasswordHash is set it takes precedence over the plaintext Password.
type Credentials struct {
	Username     string
	Password     string
	PasswordHash string
}

type authService struct {
	store token.Store
	creds Credentials
	ttl   time.Duration
}

func NewAuthService(store token.Store, creds Credentials, ttl time.Duration) auth.Service {
	return &authService{
		store: store,
		creds: creds,
		ttl:   ttl,
	}
}

func (s *authService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if !s.checkCredentials(req.Username, req.Password) {
		logger.Warn("Failed login attempt", nil)
		return nil, auth.ErrInvalidCredentials
	}

	tok, err := s.store.Issue(ctx, token.Identity{
		Username: req.Username,
		Role:     "admin",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", auth.ErrSessionStore, err)
	}

	logger.Info("Admin logged in", map[string]interface{}{"username": req.Username})

	return &auth.LoginResponse{
		Token:     tok,
		Username:  req.Username,
		Role:      "admin",
		ExpiresIn: int64(s.ttl.Seconds()),
	}, nil
}

func (s *authService) Logout(ctx context.Context, tok string) error {
	if err := s.store.Revoke(ctx, tok); err != nil {
		return fmt.Errorf("%w: %v", auth.ErrSessionStore, err)
	}
	return nil
}

func (s *authService) checkCredentials(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.creds.Username)) == 1

	if s.creds.PasswordHash != "" {
		passOK := bcrypt.CompareHashAndPassword([]byte(s.creds.PasswordHash), []byte(password)) == nil
		return userOK && passOK
	}

	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(s.creds.Password)) == 1
	return userOK && passOK
}
