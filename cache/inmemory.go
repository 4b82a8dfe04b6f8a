package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// inMemoryItem represents a cache item with optional expiration.
type inMemoryItem struct {
	value      []byte
	expiration time.Time
}

// isExpired checks if the item has expired.
func (i *inMemoryItem) isExpired() bool {
	if i.expiration.IsZero() {
		return false
	}
	return time.Now().After(i.expiration)
}

// InMemoryStore is a thread-safe in-memory store implementation.
type InMemoryStore struct {
	items      sync.Map // map[string]*inMemoryItem
	closeMu    sync.Mutex
	stopClean  chan struct{}
	cleanupInt time.Duration
}

const defaultCleanupInterval = 5 * time.Minute

// NewInMemoryStore creates a new in-memory store.
func NewInMemoryStore() Store {
	store := &InMemoryStore{
		stopClean:  make(chan struct{}),
		cleanupInt: defaultCleanupInterval,
	}

	go store.startCleanup()

	return store
}

// startCleanup periodically removes expired items.
func (c *InMemoryStore) startCleanup() {
	ticker := time.NewTicker(c.cleanupInt)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.cleanup()
		case <-c.stopClean:
			return
		}
	}
}

// cleanup removes expired items from the store.
func (c *InMemoryStore) cleanup() {
	c.items.Range(func(key, value interface{}) bool {
		item, ok := value.(*inMemoryItem)
		if ok && item.isExpired() {
			c.items.Delete(key)
		}
		return true
	})
}

// Get retrieves an item from the store.
func (c *InMemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	value, ok := c.items.Load(key)
	if !ok {
		return nil, false, nil
	}

	item, ok := value.(*inMemoryItem)
	if !ok || item.isExpired() {
		c.items.Delete(key)
		return nil, false, nil
	}

	return item.value, true, nil
}

// Set sets an item in the store with the specified TTL.
func (c *InMemoryStore) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	item := &inMemoryItem{
		value: value,
	}

	if ttl > 0 {
		item.expiration = time.Now().Add(ttl)
	}

	c.items.Store(key, item)
	return nil
}

// Delete removes an item from the store.
func (c *InMemoryStore) Delete(_ context.Context, key string) error {
	c.items.Delete(key)
	return nil
}

// DeletePrefix removes every item whose key carries the prefix.
func (c *InMemoryStore) DeletePrefix(_ context.Context, prefix string) error {
	c.items.Range(func(key, _ interface{}) bool {
		if k, ok := key.(string); ok && strings.HasPrefix(k, prefix) {
			c.items.Delete(key)
		}
		return true
	})
	return nil
}

// Flush clears all items from the store.
func (c *InMemoryStore) Flush(_ context.Context) error {
	c.items.Range(func(key, _ interface{}) bool {
		c.items.Delete(key)
		return true
	})
	return nil
}

// Close stops the cleanup goroutine and releases resources.
func (c *InMemoryStore) Close() error {
	c.closeMu.Lock()
	defer c.closeMu.Unlock()

	select {
	case <-c.stopClean:
		// Already closed
		return nil
	default:
		close(c.stopClean)
	}

	return nil
}
