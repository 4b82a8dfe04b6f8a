// Package lingo resolves localization resource keys against a culture
// fallback chain, caching resolved values and confirmed misses along the way.
package lingo

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/pitabwire/util"

	"github.com/openlingo/lingo/cache"
	"github.com/openlingo/lingo/cache/redis"
	"github.com/openlingo/lingo/cache/valkey"
	"github.com/openlingo/lingo/config"
	"github.com/openlingo/lingo/culture"
	"github.com/openlingo/lingo/repository"
	"github.com/openlingo/lingo/repository/bundle"
)

// EnableGate is the runtime kill switch, re-evaluated on every Resolve call.
type EnableGate func() bool

// LookupFilter decides whether engine-level resolution applies to a key at
// all. A rejected key is echoed back untouched, with no cache or repository
// access.
type LookupFilter func(resourceKey string) bool

// Outcome classifies a resolution event reported to the diagnostics hook.
type Outcome int

const (
	// OutcomeMiss means neither cache nor repository held the pair.
	OutcomeMiss Outcome = iota
	// OutcomeRepositoryFailure means the backing repository errored for a
	// chain step; the step was treated as a miss.
	OutcomeRepositoryFailure
	// OutcomeCacheFailure means the cache store errored for one operation;
	// the operation was bypassed.
	OutcomeCacheFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomeRepositoryFailure:
		return "repository_failure"
	case OutcomeCacheFailure:
		return "cache_failure"
	default:
		return "miss"
	}
}

// Diagnostics is notified of resolution misses and recovered failures.
// Purely observational; never required for correctness.
type Diagnostics func(ctx context.Context, resourceKey, culture string, outcome Outcome)

// Provider wires the cache manager, fallback resolver and backing repository
// into the resolution engine. Construct one at process startup; its
// configuration is immutable thereafter.
type Provider struct {
	cfg      *config.Localization
	chainCfg culture.ChainConfig

	caches      cache.Manager
	store       cache.Store
	repo        repository.Repository
	gate        EnableGate
	filter      LookupFilter
	diagnostics Diagnostics
	logger      *util.LogEntry

	warmOnce sync.Once
}

// New constructs a Provider. Settings come from the environment unless
// overridden by WithConfig; contradictory settings fail construction with a
// *config.Error.
func New(ctx context.Context, opts ...Option) (*Provider, error) {
	p := &Provider{
		logger: util.Log(ctx),
	}

	for _, opt := range opts {
		opt(ctx, p)
	}

	if p.cfg == nil {
		cfg, err := config.FromEnv[config.Localization]()
		if err != nil {
			return nil, err
		}
		p.cfg = &cfg
	}

	if err := p.cfg.Validate(); err != nil {
		return nil, err
	}

	p.chainCfg = culture.ChainConfig{
		Fallbacks:         p.cfg.FallbackCultures,
		InvariantFallback: p.cfg.InvariantFallback,
	}

	if p.caches == nil {
		store := p.store
		if store == nil {
			var err error
			store, err = storeFromConfig(p.cfg)
			if err != nil {
				return nil, err
			}
		}
		p.caches = cache.NewManager(store,
			cache.WithNamespace(p.cfg.CacheNamespace),
			cache.WithMaxAge(p.cfg.CacheMaxAge),
		)
	}

	if p.repo == nil {
		repo, err := repositoryFromConfig(p.cfg)
		if err != nil {
			return nil, err
		}
		p.repo = repo
	}

	if p.gate == nil {
		enabled := p.cfg.Enabled
		p.gate = func() bool { return enabled }
	}

	// Legacy compatibility mode leaves every key to the caller unless a
	// custom filter says otherwise.
	if p.filter == nil && p.cfg.LegacyMode {
		p.filter = DefaultLookupFilter(true)
	}

	if p.cfg.PrefetchOnStartup {
		p.Warm(ctx)
	}

	return p, nil
}

// CacheManager exposes the provider's cache manager.
func (p *Provider) CacheManager() cache.Manager {
	return p.caches
}

// Repository exposes the backing translation repository.
func (p *Provider) Repository() repository.Repository {
	return p.repo
}

// Invalidate drops the cached entries of every culture for the key, forcing
// the next resolution to re-query the backing repository.
func (p *Provider) Invalidate(ctx context.Context, resourceKey string) error {
	return p.caches.Invalidate(ctx, resourceKey)
}

// ClearAll drops every cached entry, as after a bulk import or republish.
func (p *Provider) ClearAll(ctx context.Context) error {
	return p.caches.ClearAll(ctx)
}

// SetCacheStore swaps the cache backend and returns the previous store so
// the caller can close it once drained.
func (p *Provider) SetCacheStore(store cache.Store) cache.Store {
	return p.caches.SetStore(store)
}

// Close releases the active cache store.
func (p *Provider) Close() error {
	return p.caches.Close()
}

// storeFromConfig selects the cache backend by URI scheme. No URI means the
// in-memory store.
func storeFromConfig(cfg *config.Localization) (cache.Store, error) {
	if cfg.CacheURI == "" {
		return cache.NewInMemoryStore(), nil
	}

	parsed, err := url.Parse(cfg.CacheURI)
	if err != nil {
		return nil, &config.Error{Field: "CacheURI", Reason: err.Error()}
	}

	storeOpts := []cache.Option{
		cache.WithURI(cfg.CacheURI),
		cache.WithNamespace(cfg.CacheNamespace),
		cache.WithMaxAge(cfg.CacheMaxAge),
	}

	switch parsed.Scheme {
	case "redis", "rediss":
		return redis.New(storeOpts...)
	case "valkey", "valkeys":
		return valkey.New(storeOpts...)
	default:
		return nil, &config.Error{Field: "CacheURI", Reason: fmt.Sprintf("unsupported cache scheme %q", parsed.Scheme)}
	}
}

// repositoryFromConfig builds the bundle repository when language packs are
// configured; otherwise translations come from code registration.
func repositoryFromConfig(cfg *config.Localization) (repository.Repository, error) {
	if len(cfg.Languages) == 0 {
		return repository.NewStatic(), nil
	}
	return bundle.New(bundle.Options{
		TranslationsFolder: cfg.TranslationsFolder,
		Languages:          cfg.Languages,
	})
}

func (p *Provider) notify(ctx context.Context, resourceKey, cultureID string, outcome Outcome) {
	if p.diagnostics == nil {
		return
	}
	p.diagnostics(ctx, resourceKey, cultureID, outcome)
}
