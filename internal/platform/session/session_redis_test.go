package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"classifieds_backend/internal/feature/auth/domain/entity"
	"classifieds_backend/internal/feature/auth/usecase"
)

// setupTestRedis starts an in-process Redis server and returns a store backed
// by it.
func setupTestRedis(t *testing.T) (*SessionRedis, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewSessionRedis(client, "session"), mr
}

// testSession builds a session whose principal snapshot is filled in.
func testSession(id string, ttl time.Duration) *entity.Session {
	now := time.Now()
	return &entity.Session{
		ID:     id,
		UserID: 7,
		Principal: entity.User{
			ID:       7,
			Email:    "a@x.com",
			Password: "hash-1",
		},
		UserAgent: "test-agent",
		IPAddress: "127.0.0.1",
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

func TestSessionRedis_CreateAndFind(t *testing.T) {
	ctx := context.Background()

	t.Run("round-trip preserves the principal snapshot", func(t *testing.T) {
		store, _ := setupTestRedis(t)
		sess := testSession("sid-1", time.Hour)
		require.NoError(t, store.Create(ctx, sess))

		got, err := store.FindByID(ctx, "sid-1")
		require.NoError(t, err)
		assert.Equal(t, sess.UserID, got.UserID)
		assert.Equal(t, sess.Principal.Email, got.Principal.Email)
		assert.Equal(t, sess.UserAgent, got.UserAgent)
		assert.Equal(t, sess.IPAddress, got.IPAddress)
	})

	t.Run("already expired session is rejected", func(t *testing.T) {
		store, _ := setupTestRedis(t)
		err := store.Create(ctx, testSession("sid-2", -time.Minute))
		assert.Error(t, err)
	})

	t.Run("unknown ID", func(t *testing.T) {
		store, _ := setupTestRedis(t)
		_, err := store.FindByID(ctx, "nope")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})
}

func TestSessionRedis_TTL(t *testing.T) {
	ctx := context.Background()
	store, mr := setupTestRedis(t)

	require.NoError(t, store.Create(ctx, testSession("sid-1", time.Hour)))

	// Expiry is delegated to the Redis key TTL.
	mr.FastForward(2 * time.Hour)

	_, err := store.FindByID(ctx, "sid-1")
	assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
}

func TestSessionRedis_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes the session", func(t *testing.T) {
		store, _ := setupTestRedis(t)
		require.NoError(t, store.Create(ctx, testSession("sid-1", time.Hour)))

		require.NoError(t, store.Delete(ctx, "sid-1"))

		_, err := store.FindByID(ctx, "sid-1")
		assert.ErrorIs(t, err, usecase.ErrSessionNotFound)
	})

	t.Run("unknown ID is a no-op", func(t *testing.T) {
		store, _ := setupTestRedis(t)
		assert.NoError(t, store.Delete(ctx, "nope"))
	})
}
