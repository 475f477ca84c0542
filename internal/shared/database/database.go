package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parkpass/internal/shared/config"

	"github.com/redis/go-redis/v9"
)

// ErrRedisUnavailable is returned by health checks when no Redis is connected
var ErrRedisUnavailable = errors.New("redis not connected")

// DB holds the backing store connections. Redis only backs rate limiting;
// booking sessions stay in process memory.
type DB struct {
	Redis *redis.Client
}

// InitDB connects to Redis
func InitDB(cfg *config.Config) (*DB, error) {
	rdb, err := initRedis(cfg)
	if err != nil {
		return &DB{}, fmt.Errorf("failed to initialize Redis: %w", err)
	}
	return &DB{Redis: rdb}, nil
}

// initRedis initializes Redis connection
func initRedis(cfg *config.Config) (*redis.Client, error) {
	opts := &redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,

		PoolSize:     10,
		MinIdleConns: 2,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	}

	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return rdb, nil
}

// Close closes the Redis connection if one is open
func (db *DB) Close() error {
	if db == nil || db.Redis == nil {
		return nil
	}
	if err := db.Redis.Close(); err != nil {
		return fmt.Errorf("failed to close Redis: %w", err)
	}
	return nil
}

// HealthCheck pings Redis
func (db *DB) HealthCheck(ctx context.Context) error {
	if db == nil || db.Redis == nil {
		return ErrRedisUnavailable
	}
	if err := db.Redis.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// GetRedis returns the Redis client, or nil when not connected
func (db *DB) GetRedis() *redis.Client {
	if db == nil {
		return nil
	}
	return db.Redis
}
