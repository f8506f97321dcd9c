package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStore is a Store backed by Redis, for translation caches shared
// between machines. Entries are write-through and never expire: a
// translation that was good yesterday is good tomorrow, and the purge
// pass handles the bad ones.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to the Redis instance described by url
// (redis://host:port/db form) and verifies the connection with a ping.
func NewRedisStore(url, prefix string) (*RedisStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{client: client, prefix: prefix}, nil
}

// Get returns the cached translation for source.
func (r *RedisStore) Get(ctx context.Context, source string) (string, bool, error) {
	v, err := r.client.Get(ctx, r.prefix+source).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get error: %w", err)
	}
	return v, true, nil
}

// Put records a translation for source.
func (r *RedisStore) Put(ctx context.Context, source, translation string) error {
	if err := r.client.Set(ctx, r.prefix+source, translation, 0).Err(); err != nil {
		return fmt.Errorf("redis set error: %w", err)
	}
	return nil
}

// Delete removes a cached entry.
func (r *RedisStore) Delete(ctx context.Context, source string) error {
	if err := r.client.Del(ctx, r.prefix+source).Err(); err != nil {
		return fmt.Errorf("redis del error: %w", err)
	}
	return nil
}

// Len counts entries under the store's prefix by scanning. Best-effort:
// a scan error yields 0.
func (r *RedisStore) Len(ctx context.Context) int {
	count := 0
	iter := r.client.Scan(ctx, 0, r.prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0
	}
	return count
}

// Flush is a no-op; writes are write-through.
func (r *RedisStore) Flush(_ context.Context) error {
	return nil
}

// Close closes the underlying client.
func (r *RedisStore) Close(_ context.Context) error {
	return r.client.Close()
}
