package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/openlingo/lingo/cache"
)

// Store is a Redis-backed cache store implementation.
type Store struct {
	client *redis.Client
}

const connectionTimeout = 5 * time.Second

// New creates a new Redis store and verifies the connection.
func New(opts ...cache.Option) (cache.Store, error) {
	storeOpts := cache.NewOptions(opts...)

	redisOpts, err := redis.ParseURL(storeOpts.URI)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(redisOpts)

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if pingErr := client.Ping(ctx).Err(); pingErr != nil {
		_ = client.Close()
		return nil, pingErr
	}

	return &Store{client: client}, nil
}

// NewFromClient wraps an existing client without pinging it.
func NewFromClient(client *redis.Client) cache.Store {
	return &Store{client: client}
}

// Get retrieves an item from the store.
func (rc *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := rc.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, true, nil
}

// Set sets an item in the store with the specified TTL.
func (rc *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return rc.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes an item from the store.
func (rc *Store) Delete(ctx context.Context, key string) error {
	return rc.client.Del(ctx, key).Err()
}

const scanBatchSize = 100

// DeletePrefix removes every key under the prefix via SCAN, so invalidation
// reaches entries written by earlier processes sharing this backend.
func (rc *Store) DeletePrefix(ctx context.Context, prefix string) error {
	iter := rc.client.Scan(ctx, 0, prefix+"*", scanBatchSize).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return rc.client.Del(ctx, keys...).Err()
}

// Flush clears all items from the store.
func (rc *Store) Flush(ctx context.Context) error {
	return rc.client.FlushDB(ctx).Err()
}

// Close closes the Redis connection.
func (rc *Store) Close() error {
	return rc.client.Close()
}
