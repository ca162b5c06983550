package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

// ErrNotFound is returned when a token does not resolve to a live session
var ErrNotFound = errors.New("session not found")

// Store holds server-side session state keyed by an opaque token.
// The cookie only ever carries the token, so destroying a session here
// revokes it regardless of what the client kept.
type Store interface {
	// Create starts a session for the user and returns its token.
	Create(ctx context.Context, userID int64, ttl time.Duration) (string, error)
	// Get resolves a token to the user ID it was created for.
	// Returns ErrNotFound for unknown or expired tokens.
	Get(ctx context.Context, token string) (int64, error)
	// Destroy ends the session. Destroying an unknown token is not an error.
	Destroy(ctx context.Context, token string) error
}

// newToken generates a 256-bit random session token, hex-encoded
func newToken() (string, error) {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
