package credentialstore

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// RedisStorage implements KeyValueStorage on top of a Redis client. It serves
// deployments where the "device" is a server-side agent or a device simulator
// and the credential records need to outlive the process on shared
// infrastructure. Records are stored without expiry; sign-out deletes them
// explicitly.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage wraps an already connected Redis client.
func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

func (r *RedisStorage) Set(ctx context.Context, key string, value []byte) error {
	if err := r.client.Set(ctx, key, value, 0).Err(); err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}

func (r *RedisStorage) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrKeyNotFound
		}
		return nil, errors.Join(ErrStorageFailure, err)
	}
	return value, nil
}

func (r *RedisStorage) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return errors.Join(ErrStorageFailure, err)
	}
	return nil
}
