package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTokenStore_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTokenStore()

	require.NoError(t, store.Set(ctx, KindReset, "admin@barberpro.com", "tok-123", time.Hour))

	got, err := store.Get(ctx, KindReset, "admin@barberpro.com")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", got)

	// Tipos não se misturam
	got, err = store.Get(ctx, KindVerify, "admin@barberpro.com")
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, store.Delete(ctx, KindReset, "admin@barberpro.com"))

	got, err = store.Get(ctx, KindReset, "admin@barberpro.com")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMemoryTokenStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryTokenStore()

	current := time.Date(2025, 6, 10, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return current }

	require.NoError(t, store.Set(ctx, KindReset, "admin@barberpro.com", "tok-123", time.Hour))

	current = current.Add(30 * time.Minute)
	got, err := store.Get(ctx, KindReset, "admin@barberpro.com")
	require.NoError(t, err)
	assert.Equal(t, "tok-123", got)

	current = current.Add(31 * time.Minute)
	got, err = store.Get(ctx, KindReset, "admin@barberpro.com")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGenerateToken(t *testing.T) {
	a := GenerateToken()
	b := GenerateToken()

	assert.Len(t, a, 64) // 32 bytes em hex
	assert.NotEqual(t, a, b)
}
