package session

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

type memoryStore struct {
	sessions *gocache.Cache
}

// NewMemoryStore creates an in-process session store backed by an expiring
// cache. Suitable for a single instance; sessions do not survive restarts.
func NewMemoryStore() Store {
	return &memoryStore{
		sessions: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

// Create starts a session for the user and returns its token
func (s *memoryStore) Create(_ context.Context, userID int64, ttl time.Duration) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	s.sessions.Set(token, userID, ttl)
	return token, nil
}

// Get resolves a token to a user ID
func (s *memoryStore) Get(_ context.Context, token string) (int64, error) {
	val, found := s.sessions.Get(token)
	if !found {
		return 0, ErrNotFound
	}
	return val.(int64), nil
}

// Destroy ends the session
func (s *memoryStore) Destroy(_ context.Context, token string) error {
	s.sessions.Delete(token)
	return nil
}
