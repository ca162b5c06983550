package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCreateAndGet(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, 42, time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := store.Get(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
}

func TestMemoryStoreTokensAreUnique(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	a, err := store.Create(ctx, 1, time.Hour)
	require.NoError(t, err)
	b, err := store.Create(ctx, 1, time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Len(t, a, 64) // 32 bytes hex-encoded
}

func TestMemoryStoreUnknownToken(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, 7, 10*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(20 * time.Millisecond)

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDestroy(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	token, err := store.Create(ctx, 42, time.Hour)
	require.NoError(t, err)

	require.NoError(t, store.Destroy(ctx, token))

	_, err = store.Get(ctx, token)
	assert.ErrorIs(t, err, ErrNotFound)

	// Destroying again (or destroying garbage) is not an error
	assert.NoError(t, store.Destroy(ctx, token))
	assert.NoError(t, store.Destroy(ctx, "never-existed"))
}
