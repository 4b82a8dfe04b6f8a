package cache

import (
	"context"
	"net/url"
	"sync"
	"sync/atomic"
	"time"
)

const keySeparator = ":"

// storeRef wraps the active store so it can sit behind an atomic pointer.
type storeRef struct {
	store Store
}

// manager implements Manager over a single swappable store.
//
// Every operation loads the store pointer exactly once, so a concurrent
// SetStore never tears a single call across two backends. The per-resource
// culture index exists because stores only expose single-key deletes and
// Invalidate must cover every culture cached for a key.
type manager struct {
	active    atomic.Pointer[storeRef]
	namespace string
	maxAge    time.Duration

	indexMu sync.Mutex
	index   map[string]map[string]struct{} // resourceKey -> cultures written
}

// NewManager creates a Manager over the given store.
func NewManager(store Store, opts ...Option) Manager {
	o := NewOptions(opts...)
	if o.Namespace == "" {
		o.Namespace = "lingo"
	}

	m := &manager{
		namespace: o.Namespace,
		maxAge:    o.MaxAge,
		index:     make(map[string]map[string]struct{}),
	}
	m.active.Store(&storeRef{store: store})
	return m
}

// Segments are query-escaped so a resource key can neither smuggle the
// separator into a neighbouring prefix nor carry glob metacharacters into a
// store-side prefix sweep.
func (m *manager) entryPrefix(resourceKey string) string {
	return m.namespace + keySeparator + "res" + keySeparator + url.QueryEscape(resourceKey) + keySeparator
}

func (m *manager) entryKey(resourceKey, culture string) string {
	return m.entryPrefix(resourceKey) + url.QueryEscape(culture)
}

func (m *manager) Get(ctx context.Context, resourceKey, culture string) (string, ProbeState, error) {
	ref := m.active.Load()

	data, found, err := ref.store.Get(ctx, m.entryKey(resourceKey, culture))
	if err != nil {
		return "", ProbeUnknown, err
	}
	if !found {
		return "", ProbeUnknown, nil
	}

	value, state, err := decodeEntry(data)
	if err != nil {
		// A foreign or corrupt entry is treated as never probed.
		return "", ProbeUnknown, err
	}
	return value, state, nil
}

func (m *manager) Set(ctx context.Context, resourceKey, culture, value string) error {
	return m.write(ctx, resourceKey, culture, encodeValue(value))
}

func (m *manager) SetMissing(ctx context.Context, resourceKey, culture string) error {
	return m.write(ctx, resourceKey, culture, encodeMiss())
}

func (m *manager) write(ctx context.Context, resourceKey, culture string, data []byte) error {
	ref := m.active.Load()

	// Record the culture before the store write so a racing Invalidate
	// sees it; an over-wide invalidation is harmless, a missed one is not.
	m.indexMu.Lock()
	cultures, ok := m.index[resourceKey]
	if !ok {
		cultures = make(map[string]struct{})
		m.index[resourceKey] = cultures
	}
	cultures[culture] = struct{}{}
	m.indexMu.Unlock()

	return ref.store.Set(ctx, m.entryKey(resourceKey, culture), data, m.maxAge)
}

func (m *manager) Invalidate(ctx context.Context, resourceKey string) error {
	ref := m.active.Load()

	m.indexMu.Lock()
	cultures := m.index[resourceKey]
	delete(m.index, resourceKey)
	m.indexMu.Unlock()

	// A prefix sweep reaches entries the in-process index never saw, such
	// as those written before a restart against a persistent backend.
	if pd, ok := ref.store.(PrefixDeleter); ok {
		return pd.DeletePrefix(ctx, m.entryPrefix(resourceKey))
	}

	var firstErr error
	for culture := range cultures {
		if err := ref.store.Delete(ctx, m.entryKey(resourceKey, culture)); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (m *manager) ClearAll(ctx context.Context) error {
	ref := m.active.Load()

	m.indexMu.Lock()
	m.index = make(map[string]map[string]struct{})
	m.indexMu.Unlock()

	return ref.store.Flush(ctx)
}

func (m *manager) SetStore(store Store) Store {
	old := m.active.Swap(&storeRef{store: store})

	m.indexMu.Lock()
	m.index = make(map[string]map[string]struct{})
	m.indexMu.Unlock()

	return old.store
}

func (m *manager) Close() error {
	return m.active.Load().store.Close()
}
