package otp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreRoundtrip(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a@example.com", "123456", time.Minute))

	code, err := store.Get(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "123456", code)
}

func TestMemoryStoreNotRequested(t *testing.T) {
	store := NewMemoryStore()

	_, err := store.Get(context.Background(), "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotRequested)
}

func TestMemoryStoreExpiry(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a@example.com", "123456", -time.Second))

	_, err := store.Get(ctx, "a@example.com")
	assert.ErrorIs(t, err, ErrExpired)

	// The lapsed entry is gone, a second read reports not-requested
	_, err = store.Get(ctx, "a@example.com")
	assert.ErrorIs(t, err, ErrNotRequested)
}

func TestMemoryStoreOverwrite(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a@example.com", "111111", time.Minute))
	require.NoError(t, store.Set(ctx, "a@example.com", "222222", time.Minute))

	code, err := store.Get(ctx, "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, "222222", code)
}

func TestMemoryStoreDelete(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "a@example.com", "123456", time.Minute))
	require.NoError(t, store.Delete(ctx, "a@example.com"))

	_, err := store.Get(ctx, "a@example.com")
	assert.ErrorIs(t, err, ErrNotRequested)

	// Deleting a missing entry is a no-op
	assert.NoError(t, store.Delete(ctx, "a@example.com"))
}
