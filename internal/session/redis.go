package session

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed session store. Redis owns expiry
// through key TTLs, so sessions survive process restarts and are shared
// across instances.
func NewRedisStore(redisURL string) (Store, error) {
	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		// If URL parsing fails, try as simple host:port
		opt = &redis.Options{
			Addr:     redisURL,
			Password: "",
			DB:       0,
		}
	}

	client := redis.NewClient(opt)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisStore{client: client}, nil
}

func sessionKey(token string) string {
	return "session:" + token
}

// Create starts a session for the user and returns its token
func (s *redisStore) Create(ctx context.Context, userID int64, ttl time.Duration) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	if err := s.client.Set(ctx, sessionKey(token), strconv.FormatInt(userID, 10), ttl).Err(); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}

	return token, nil
}

// Get resolves a token to a user ID
func (s *redisStore) Get(ctx context.Context, token string) (int64, error) {
	val, err := s.client.Get(ctx, sessionKey(token)).Result()
	if err == redis.Nil {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, err
	}

	userID, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("corrupt session value: %w", err)
	}

	return userID, nil
}

// Destroy ends the session
func (s *redisStore) Destroy(ctx context.Context, token string) error {
	return s.client.Del(ctx, sessionKey(token)).Err()
}
