// Package repository defines the backing translation source consumed by the
// resolution engine on cache misses.
package repository

import "context"

// Pair identifies one translatable unit in one culture.
type Pair struct {
	Key     string
	Culture string
}

// Repository is the authoritative source of translations. Lookup must be
// side-effect free; retry and timeout policy is the implementation's concern.
type Repository interface {
	// Lookup returns (value, true, nil) when a translation exists for the
	// exact culture, (_, false, nil) when it does not.
	Lookup(ctx context.Context, resourceKey, culture string) (string, bool, error)
}

// Enumerator is implemented by repositories that can list every known
// resource/culture pair, enabling cache prefetch at startup.
type Enumerator interface {
	Pairs(ctx context.Context) ([]Pair, error)
}
