package storage

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zaptest"

	myErr "freshcart/internal/types/errors"
)

func setupRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)

	rdb := redis.NewClient(&redis.Options{
		Addr:       mr.Addr(),
		MaxRetries: -1,
	})
	logger := zaptest.NewLogger(t).Sugar()

	return NewRedisStore(rdb, logger, "freshcart:"), mr
}

func TestRedisStore_SetGet(t *testing.T) {
	s, mr := setupRedisStore(t)
	defer mr.Close()

	ctx := context.Background()

	err := s.Set(ctx, "cart", `[{"id":1,"quantity":2}]`)
	assert.NoError(t, err)

	// Ключ пишется с префиксом
	raw, err := mr.Get("freshcart:cart")
	assert.NoError(t, err)
	assert.Equal(t, `[{"id":1,"quantity":2}]`, raw)

	value, found, err := s.Get(ctx, "cart")
	assert.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, raw, value)

	// Без TTL
	assert.Zero(t, mr.TTL("freshcart:cart"))
}

func TestRedisStore_GetMissing(t *testing.T) {
	s, mr := setupRedisStore(t)
	defer mr.Close()

	value, found, err := s.Get(context.Background(), "cart")
	assert.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
}

func TestRedisStore_Delete(t *testing.T) {
	s, mr := setupRedisStore(t)
	defer mr.Close()

	mr.Set("freshcart:cart", "[]") // nolint:errcheck

	err := s.Delete(context.Background(), "cart")
	assert.NoError(t, err)
	assert.False(t, mr.Exists("freshcart:cart"))
}

func TestRedisStore_Unavailable(t *testing.T) {
	s, mr := setupRedisStore(t)
	mr.Close()

	ctx := context.Background()

	_, _, err := s.Get(ctx, "cart")
	assert.ErrorIs(t, err, myErr.ErrStorageUnavailable)

	err = s.Set(ctx, "cart", "[]")
	assert.ErrorIs(t, err, myErr.ErrStorageUnavailable)

	err = s.Delete(ctx, "cart")
	assert.ErrorIs(t, err, myErr.ErrStorageUnavailable)
}
