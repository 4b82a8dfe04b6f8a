package valkey

import (
	"context"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/openlingo/lingo/cache"
)

// Store is a Valkey-backed cache store using the official Valkey client.
type Store struct {
	client valkey.Client
	maxAge time.Duration
}

const connectionTimeout = 5 * time.Second

// New creates a new Valkey store and verifies the connection.
func New(opts ...cache.Option) (cache.Store, error) {
	storeOpts := cache.NewOptions(opts...)

	valkeyOpts, err := valkey.ParseURL(storeOpts.URI)
	if err != nil {
		return nil, err
	}

	client, err := valkey.NewClient(valkeyOpts)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), connectionTimeout)
	defer cancel()

	if pingErr := client.Do(ctx, client.B().Ping().Build()).Error(); pingErr != nil {
		client.Close()
		return nil, pingErr
	}

	return &Store{
		client: client,
		maxAge: storeOpts.MaxAge,
	}, nil
}

// Get retrieves an item from the store.
func (vc *Store) Get(ctx context.Context, key string) ([]byte, bool, error) {
	cmd := vc.client.B().Get().Key(key).Build()
	resp := vc.client.Do(ctx, cmd)

	if err := resp.Error(); err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, false, nil
		}
		return nil, false, err
	}

	val, err := resp.AsBytes()
	if err != nil {
		return nil, false, err
	}

	return val, true, nil
}

// Set sets an item in the store with the specified TTL.
func (vc *Store) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var cmd valkey.Completed

	if ttl <= 0 {
		ttl = vc.maxAge
	}

	if ttl > 0 {
		// Valkey Ex() expects seconds, not duration
		seconds := int64(ttl.Seconds())
		if seconds == 0 {
			seconds = 1 // Minimum 1 second for sub-second durations
		}
		cmd = vc.client.B().Set().Key(key).Value(valkey.BinaryString(value)).ExSeconds(seconds).Build()
	} else {
		cmd = vc.client.B().Set().Key(key).Value(valkey.BinaryString(value)).Build()
	}

	return vc.client.Do(ctx, cmd).Error()
}

// Delete removes an item from the store.
func (vc *Store) Delete(ctx context.Context, key string) error {
	cmd := vc.client.B().Del().Key(key).Build()
	return vc.client.Do(ctx, cmd).Error()
}

const scanBatchSize = 100

// DeletePrefix removes every key under the prefix via SCAN, so invalidation
// reaches entries written by earlier processes sharing this backend.
func (vc *Store) DeletePrefix(ctx context.Context, prefix string) error {
	var cursor uint64
	for {
		cmd := vc.client.B().Scan().Cursor(cursor).Match(prefix + "*").Count(scanBatchSize).Build()
		resp := vc.client.Do(ctx, cmd)
		if err := resp.Error(); err != nil {
			return err
		}

		entry, err := resp.AsScanEntry()
		if err != nil {
			return err
		}

		if len(entry.Elements) > 0 {
			del := vc.client.B().Del().Key(entry.Elements...).Build()
			if delErr := vc.client.Do(ctx, del).Error(); delErr != nil {
				return delErr
			}
		}

		cursor = entry.Cursor
		if cursor == 0 {
			return nil
		}
	}
}

// Flush clears all items from the store.
func (vc *Store) Flush(ctx context.Context) error {
	cmd := vc.client.B().Flushdb().Build()
	return vc.client.Do(ctx, cmd).Error()
}

// Close closes the Valkey connection.
func (vc *Store) Close() error {
	vc.client.Close()
	return nil
}
