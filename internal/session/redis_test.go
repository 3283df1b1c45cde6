package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, "session", ttl), mr
}

func TestRedisStore_CreateAndGet(t *testing.T) {
	store, mr := newRedisStore(t, time.Hour)

	token, err := store.Create(context.Background(), Identity{UserID: "u-1", Email: "alice@example.com"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	// Stored under the expected key with the TTL applied.
	assert.True(t, mr.Exists("session:"+token))
	assert.Equal(t, time.Hour, mr.TTL("session:"+token))

	ident, err := store.Get(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "u-1", ident.UserID)
	assert.Equal(t, "alice@example.com", ident.Email)
}

func TestRedisStore_Expiry(t *testing.T) {
	store, mr := newRedisStore(t, time.Minute)

	token, err := store.Create(context.Background(), Identity{UserID: "u-1"})
	require.NoError(t, err)

	mr.FastForward(time.Minute + time.Second)

	_, err = store.Get(context.Background(), token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_Delete(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)

	token, err := store.Create(context.Background(), Identity{UserID: "u-1"})
	require.NoError(t, err)

	require.NoError(t, store.Delete(context.Background(), token))
	_, err = store.Get(context.Background(), token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRedisStore_UnknownToken(t *testing.T) {
	store, _ := newRedisStore(t, time.Hour)
	_, err := store.Get(context.Background(), "no-such-token")
	assert.ErrorIs(t, err, ErrNotFound)
}
