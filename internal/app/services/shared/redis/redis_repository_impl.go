package redis

import (
	"context"
	"fisiosalud-service/internal/app/contracts"
	"fisiosalud-service/internal/pkg/exceptions"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisRepository struct {
	Client *redis.Client
}

func NewRedisRepository(client *redis.Client) contracts.RedisRepository {
	return &redisRepository{
		Client: client,
	}
}

// Get returns the value for key, or an empty string on a miss.
func (r *redisRepository) Get(ctx context.Context, key string) (string, error) {
	value, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", exceptions.ErrRedisGet(err)
	}
	return value, nil
}

func (r *redisRepository) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	if err := r.Client.Set(ctx, key, value, ttl).Err(); err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}
