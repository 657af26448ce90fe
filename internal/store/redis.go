package store

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/redis/go-redis/v9"
)

// RedisKV backs the persistence slots with a Redis instance.
type RedisKV struct {
	Client *redis.Client
}

// NewRedis creates the shared Redis client from env, same defaults as
// a local dev setup.
func NewRedis() *redis.Client {
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	log.Printf("Redis client created (addr: %s)\n", redisAddr)
	return rdb
}

func NewRedisKV(client *redis.Client) *RedisKV {
	return &RedisKV{Client: client}
}

func (r *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := r.Client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (r *RedisKV) Set(ctx context.Context, key, value string) error {
	return r.Client.Set(ctx, key, value, 0).Err()
}

func (r *RedisKV) Del(ctx context.Context, key string) error {
	return r.Client.Del(ctx, key).Err()
}
