package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	myErr "freshcart/internal/types/errors"
)

type RedisStore struct {
	RedisClient *redis.Client
	Logger      *zap.SugaredLogger
	prefix      string
}

// NewRedisStore - prefix добавляется ко всем ключам, чтобы не пересекаться с чужими данными в той же БД
func NewRedisStore(redisClient *redis.Client, logger *zap.SugaredLogger, prefix string) *RedisStore {
	return &RedisStore{
		RedisClient: redisClient,
		Logger:      logger,
		prefix:      prefix,
	}
}

func (rs *RedisStore) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := rs.RedisClient.Get(ctx, rs.key(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}

		rs.Logger.Error(
			"Failed get value from Redis",
			zap.Error(err),
			zap.String("key", key),
		)

		return "", false, fmt.Errorf("%w: %v", myErr.ErrStorageUnavailable, err)
	}

	return value, true, nil
}

// Set пишет значение без TTL: корзина не протухает сама
func (rs *RedisStore) Set(ctx context.Context, key string, value string) error {
	if err := rs.RedisClient.Set(ctx, rs.key(key), value, 0).Err(); err != nil {
		rs.Logger.Error(
			"Failed save value to Redis",
			zap.Error(err),
			zap.String("key", key),
		)

		return fmt.Errorf("%w: %v", myErr.ErrStorageUnavailable, err)
	}

	return nil
}

func (rs *RedisStore) Delete(ctx context.Context, key string) error {
	if err := rs.RedisClient.Del(ctx, rs.key(key)).Err(); err != nil {
		rs.Logger.Error(
			"Failed delete value from Redis",
			zap.Error(err),
			zap.String("key", key),
		)

		return fmt.Errorf("%w: %v", myErr.ErrStorageUnavailable, err)
	}

	return nil
}

func (rs *RedisStore) key(key string) string {
	return rs.prefix + key
}
