package token

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	identity  Identity
	expiresAt time.Time
}

// MemoryStore keeps tokens in-process with a fixed TTL. Expired entries
// are dropped on every Issue call, so the map cannot grow without bound.
// Intended for development and tests; production should use RedisStore.
type MemoryStore struct {
	mu     sync.RWMutex
	tokens map[string]memoryEntry
	ttl    time.Duration
	now    func() time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		tokens: make(map[string]memoryEntry),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *MemoryStore) Issue(_ context.Context, identity Identity) (string, error) {
	tok, err := newToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	for t, e := range s.tokens {
		if now.After(e.expiresAt) {
			delete(s.tokens, t)
		}
	}

	s.tokens[tok] = memoryEntry{
		identity:  identity,
		expiresAt: now.Add(s.ttl),
	}
	return tok, nil
}

func (s *MemoryStore) Validate(_ context.Context, tok string) (Identity, bool, error) {
	s.mu.RLock()
	entry, ok := s.tokens[tok]
	s.mu.RUnlock()

	if !ok {
		return Identity{}, false, nil
	}

	if s.now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.tokens, tok)
		s.mu.Unlock()
		return Identity{}, false, nil
	}

	return entry.identity, true, nil
}

func (s *MemoryStore) Revoke(_ context.Context, tok string) error {
	s.mu.Lock()
	delete(s.tokens, tok)
	s.mu.Unlock()
	return nil
}
