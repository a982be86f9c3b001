package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	token, err := GenerateID()
	require.NoError(t, err)

	sess := Session{
		SessionID: token,
		UserID:    "user-1",
		CreatedAt: time.Now(),
		ExpiresAt: time.Now().Add(time.Hour),
	}
	require.NoError(t, store.Create(ctx, sess))

	t.Run("get returns the stored session", func(t *testing.T) {
		got, err := store.Get(ctx, token)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "user-1", got.UserID)
	})

	t.Run("unknown token is nil, not an error", func(t *testing.T) {
		got, err := store.Get(ctx, "nope")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("expired session is dropped on read", func(t *testing.T) {
		expiring, err := GenerateID()
		require.NoError(t, err)
		require.NoError(t, store.Create(ctx, Session{
			SessionID: expiring,
			UserID:    "user-1",
			ExpiresAt: time.Now().Add(10 * time.Millisecond),
		}))
		time.Sleep(20 * time.Millisecond)

		got, err := store.Get(ctx, expiring)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete destroys the session", func(t *testing.T) {
		require.NoError(t, store.Delete(ctx, token))
		got, err := store.Get(ctx, token)
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		assert.NoError(t, store.Delete(ctx, token))
	})

	t.Run("create rejects incomplete sessions", func(t *testing.T) {
		assert.Error(t, store.Create(ctx, Session{SessionID: "x"}))
		assert.Error(t, store.Create(ctx, Session{
			SessionID: "x",
			UserID:    "u",
			ExpiresAt: time.Now().Add(-time.Hour),
		}))
	})
}

func TestGenerateID(t *testing.T) {
	a, err := GenerateID()
	require.NoError(t, err)
	b, err := GenerateID()
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.GreaterOrEqual(t, len(a), 43, "256 bits base64url encoded")
}
