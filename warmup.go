package lingo

import (
	"context"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/xid"

	"github.com/openlingo/lingo/repository"
)

const defaultWarmupConcurrency = 8

// Warm prefetches the cache for every resource/culture pair the repository
// can enumerate. Best effort and once-only: pairs that fail here are simply
// resolved lazily on first real request.
func (p *Provider) Warm(ctx context.Context) {
	p.warmOnce.Do(func() {
		p.warm(ctx)
	})
}

func (p *Provider) warm(ctx context.Context) {
	enum, ok := p.repo.(repository.Enumerator)
	if !ok {
		return
	}

	runID := xid.New().String()
	logger := p.logger.WithField("warmup_run", runID)

	pairs, err := enum.Pairs(ctx)
	if err != nil {
		logger.WithError(err).Warn("cache warmup could not enumerate repository pairs")
		return
	}

	concurrency := p.cfg.WarmupConcurrency
	if concurrency <= 0 {
		concurrency = defaultWarmupConcurrency
	}

	pool, err := ants.NewPool(concurrency, ants.WithLogger(logger))
	if err != nil {
		logger.WithError(err).Warn("cache warmup could not start worker pool")
		return
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for _, pair := range pairs {
		pair := pair
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			_ = p.Resolve(ctx, pair.Key, pair.Culture)
		})
		if submitErr != nil {
			wg.Done()
			logger.WithError(submitErr).
				WithField("resource", pair.Key).
				WithField("culture", pair.Culture).
				Warn("cache warmup skipped pair")
		}
	}
	wg.Wait()

	logger.WithField("pairs", len(pairs)).Info("cache warmup complete")
}
