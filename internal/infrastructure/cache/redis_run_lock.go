package cache

import (
	"context"
	"fmt"
	"time"

	payrollapp "github.com/bizsuite/backend/internal/application/payroll"
	infraconfig "github.com/bizsuite/backend/internal/infrastructure/config"
	"github.com/redis/go-redis/v9"
)

// RedisRunLock implements the payroll run lock using Redis.
// Suitable for distributed deployments where multiple instances may
// attempt to process the same employee and period concurrently.
type RedisRunLock struct {
	client    *redis.Client
	keyPrefix string
}

// NewRedisRunLock creates a new Redis-backed run lock and verifies the connection
func NewRedisRunLock(cfg *infraconfig.RedisConfig) (*RedisRunLock, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisRunLock{
		client:    client,
		keyPrefix: "lock:",
	}, nil
}

// NewRedisRunLockWithClient creates a run lock with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisRunLockWithClient(client *redis.Client, keyPrefix string) *RedisRunLock {
	if keyPrefix == "" {
		keyPrefix = "lock:"
	}
	return &RedisRunLock{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Acquire attempts to take the lock with a TTL.
// Returns true if the lock was taken, false if another holder has it.
// SETNX makes acquisition atomic across instances.
func (l *RedisRunLock) Acquire(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	acquired, err := l.client.SetNX(ctx, l.keyPrefix+key, "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock: %w", err)
	}
	return acquired, nil
}

// Release frees the lock
func (l *RedisRunLock) Release(ctx context.Context, key string) error {
	if err := l.client.Del(ctx, l.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("failed to release lock: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (l *RedisRunLock) Close() error {
	return l.client.Close()
}

// Ensure RedisRunLock implements the run lock contract
var _ payrollapp.RunLock = (*RedisRunLock)(nil)
