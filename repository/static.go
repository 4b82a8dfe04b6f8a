package repository

import (
	"context"
	"sort"
	"sync"
)

// Static is an in-memory repository. It is the home of code-registered
// default translations and doubles as a fixture in tests.
type Static struct {
	mu      sync.RWMutex
	entries map[Pair]string
}

// NewStatic creates an empty static repository.
func NewStatic() *Static {
	return &Static{entries: make(map[Pair]string)}
}

// Register adds or replaces a translation. Safe to call concurrently,
// though typical use registers everything before first resolution.
func (s *Static) Register(resourceKey, culture, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[Pair{Key: resourceKey, Culture: culture}] = value
}

// Lookup implements Repository.
func (s *Static) Lookup(_ context.Context, resourceKey, culture string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.entries[Pair{Key: resourceKey, Culture: culture}]
	return value, ok, nil
}

// Pairs implements Enumerator. The listing is sorted so prefetch order is
// deterministic.
func (s *Static) Pairs(_ context.Context) ([]Pair, error) {
	s.mu.RLock()
	pairs := make([]Pair, 0, len(s.entries))
	for pair := range s.entries {
		pairs = append(pairs, pair)
	}
	s.mu.RUnlock()

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].Key != pairs[j].Key {
			return pairs[i].Key < pairs[j].Key
		}
		return pairs[i].Culture < pairs[j].Culture
	})
	return pairs, nil
}
