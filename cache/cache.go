package cache

import (
	"context"
	"time"
)

// Store is the low-level cache backend that works with bytes.
// Implementations must be safe for concurrent use and byte-transparent:
// Get returns exactly the bytes previously passed to Set for the same key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Flush(ctx context.Context) error
	Close() error
}

// PrefixDeleter is implemented by stores that can remove every key under a
// prefix. The manager prefers it for invalidation: unlike its in-process
// culture index, a prefix sweep also reaches entries written by earlier
// processes sharing a persistent backend.
type PrefixDeleter interface {
	DeletePrefix(ctx context.Context, prefix string) error
}

// ProbeState reports what the manager knows about a (resource, culture) pair.
type ProbeState int

const (
	// ProbeUnknown means the pair was never looked up.
	ProbeUnknown ProbeState = iota
	// ProbeHit means a resolved value is cached.
	ProbeHit
	// ProbeMissing means the pair is cached as confirmed absent.
	ProbeMissing
)

func (p ProbeState) String() string {
	switch p {
	case ProbeHit:
		return "hit"
	case ProbeMissing:
		return "missing"
	default:
		return "unknown"
	}
}

// Manager owns one active Store and layers resource semantics on top of it:
// key construction, the miss-marker protocol and invalidation.
type Manager interface {
	// Get returns the cached value for the pair, if any. A cached miss
	// marker is reported as ProbeMissing with an empty value.
	Get(ctx context.Context, resourceKey, culture string) (string, ProbeState, error)

	// Set stores a resolved value, overwriting any prior entry.
	Set(ctx context.Context, resourceKey, culture, value string) error

	// SetMissing stores the miss marker for the pair so repeated backing
	// store lookups are avoided for keys known not to exist.
	SetMissing(ctx context.Context, resourceKey, culture string) error

	// Invalidate removes the entries of every culture cached for the key.
	Invalidate(ctx context.Context, resourceKey string) error

	// ClearAll drops every cached entry.
	ClearAll(ctx context.Context) error

	// SetStore replaces the underlying store and returns the previous one.
	// In-flight operations complete against the store they started with;
	// closing the returned store is the caller's responsibility.
	SetStore(store Store) Store

	// Close closes the active store.
	Close() error
}
