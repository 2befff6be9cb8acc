package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// GoRedisClient implements RedisClient on top of go-redis.
type GoRedisClient struct {
	client *redis.Client
	logger *zap.Logger
}

// NewGoRedisClient wraps client and verifies the connection.
func NewGoRedisClient(ctx context.Context, client *redis.Client, logger *zap.Logger) (*GoRedisClient, error) {
	r := &GoRedisClient{client: client, logger: logger.Named("GoRedisClient")}
	// Test the connection
	if err := r.Ping(ctx); err != nil {
		return nil, fmt.Errorf("could not connect to redis: %w", err)
	}
	r.logger.Info("connected to redis", zap.String("addr", client.Options().Addr))
	return r, nil
}

// Set sets a key-value pair in Redis, without expiry
func (r *GoRedisClient) Set(ctx context.Context, key, value string) error {
	return r.client.Set(ctx, key, value, 0).Err()
}

// Get retrieves the value for a given key from Redis
func (r *GoRedisClient) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrKeyNotFound
	}
	return val, err
}

func (r *GoRedisClient) Del(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *GoRedisClient) Keys(ctx context.Context, pattern string) ([]string, error) {
	return r.client.Keys(ctx, pattern).Result()
}

func (r *GoRedisClient) Ping(ctx context.Context) error {
	_, err := r.client.Ping(ctx).Result()
	return err
}

func (r *GoRedisClient) Close() error {
	return r.client.Close()
}
