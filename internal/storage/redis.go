package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Redis хранит слоты как строковые ключи Redis
type Redis struct {
	client *redis.Client
	ctx    context.Context
}

// NewRedis подключается к Redis и проверяет соединение
func NewRedis(ctx context.Context, addr string) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis %s недоступен: %w", addr, err)
	}
	return &Redis{
		client: rdb,
		ctx:    context.WithoutCancel(ctx),
	}, nil
}

func (r *Redis) Get(key string) ([]byte, bool, error) {
	val, err := r.client.Get(r.ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("чтение слота %s: %w", key, err)
	}
	return val, true, nil
}

func (r *Redis) Set(key string, value []byte) error {
	return r.client.Set(r.ctx, key, value, 0).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
