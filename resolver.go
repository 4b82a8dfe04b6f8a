package lingo

import (
	"context"

	"github.com/openlingo/lingo/cache"
	"github.com/openlingo/lingo/culture"
)

// Resolve returns the translation for the resource key in the first culture
// of the fallback chain that has one. It is total: a missing translation
// degrades to the key itself, never an error. Safe for concurrent use.
func (p *Provider) Resolve(ctx context.Context, resourceKey, requestedCulture string) string {
	if !p.gate() {
		return resourceKey
	}

	if p.filter != nil && !p.filter(resourceKey) {
		// Pass-through: the caller owns fallback text for filtered keys.
		return resourceKey
	}

	chain := culture.Chain(requestedCulture, p.chainCfg)

	for _, cultureID := range chain {
		if value, done := p.resolveStep(ctx, resourceKey, cultureID); done {
			return value
		}
	}

	return resourceKey
}

// resolveStep probes one culture. done is true when a value was resolved.
func (p *Provider) resolveStep(ctx context.Context, resourceKey, cultureID string) (string, bool) {
	value, state, err := p.caches.Get(ctx, resourceKey, cultureID)
	if err != nil {
		// Cache trouble never fails a resolution; fall through to the
		// repository for this step.
		p.notify(ctx, resourceKey, cultureID, OutcomeCacheFailure)
		state = cache.ProbeUnknown
	}

	switch state {
	case cache.ProbeHit:
		return value, true
	case cache.ProbeMissing:
		return "", false
	case cache.ProbeUnknown:
	}

	value, found, err := p.repo.Lookup(ctx, resourceKey, cultureID)
	if err != nil {
		p.notify(ctx, resourceKey, cultureID, OutcomeRepositoryFailure)
		return "", false
	}

	if found {
		if setErr := p.caches.Set(ctx, resourceKey, cultureID, value); setErr != nil {
			p.notify(ctx, resourceKey, cultureID, OutcomeCacheFailure)
		}
		return value, true
	}

	if setErr := p.caches.SetMissing(ctx, resourceKey, cultureID); setErr != nil {
		p.notify(ctx, resourceKey, cultureID, OutcomeCacheFailure)
	}
	p.notify(ctx, resourceKey, cultureID, OutcomeMiss)
	return "", false
}
