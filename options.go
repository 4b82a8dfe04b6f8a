package lingo

import (
	"context"

	"github.com/pitabwire/util"

	"github.com/openlingo/lingo/cache"
	"github.com/openlingo/lingo/config"
	"github.com/openlingo/lingo/repository"
)

// Option configures a Provider during construction.
type Option func(ctx context.Context, p *Provider)

// WithConfig supplies the settings explicitly instead of reading the
// environment.
func WithConfig(cfg *config.Localization) Option {
	return func(_ context.Context, p *Provider) {
		p.cfg = cfg
	}
}

// WithCacheStore sets the cache backend the manager is built over.
func WithCacheStore(store cache.Store) Option {
	return func(_ context.Context, p *Provider) {
		p.store = store
	}
}

// WithCacheManager replaces the whole cache manager. Overrides WithCacheStore.
func WithCacheManager(manager cache.Manager) Option {
	return func(_ context.Context, p *Provider) {
		p.caches = manager
	}
}

// WithRepository sets the backing translation repository.
func WithRepository(repo repository.Repository) Option {
	return func(_ context.Context, p *Provider) {
		p.repo = repo
	}
}

// WithEnableGate sets the localization kill switch predicate.
func WithEnableGate(gate EnableGate) Option {
	return func(_ context.Context, p *Provider) {
		p.gate = gate
	}
}

// WithLookupFilter sets the predicate deciding which keys the engine
// resolves at all.
func WithLookupFilter(filter LookupFilter) Option {
	return func(_ context.Context, p *Provider) {
		p.filter = filter
	}
}

// WithDiagnostics registers the hook notified on resolution misses and
// recovered failures.
func WithDiagnostics(hook Diagnostics) Option {
	return func(_ context.Context, p *Provider) {
		p.diagnostics = hook
	}
}

// WithLogger overrides the logger used by warmup and recovery paths.
func WithLogger(logger *util.LogEntry) Option {
	return func(_ context.Context, p *Provider) {
		p.logger = logger
	}
}
