package lingo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/openlingo/lingo"
	"github.com/openlingo/lingo/config"
	"github.com/openlingo/lingo/repository"
)

type WarmupSuite struct {
	suite.Suite
}

func TestWarmupSuite(t *testing.T) {
	suite.Run(t, new(WarmupSuite))
}

func (s *WarmupSuite) TestWarmPopulatesCache() {
	ctx := context.Background()
	repo := newCountingRepo()
	repo.inner.Register("greeting", "de", "Hallo")
	repo.inner.Register("farewell", "de", "Tschüss")

	cfg := &config.Localization{Enabled: true, CacheNamespace: "lingo", WarmupConcurrency: 2}
	p, err := lingo.New(ctx, lingo.WithConfig(cfg), lingo.WithRepository(repo))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = p.Close() })

	p.Warm(ctx)
	warmed := repo.calls.Load()
	s.Positive(warmed)

	// Prefetched pairs resolve without touching the repository again.
	s.Equal("Hallo", p.Resolve(ctx, "greeting", "de"))
	s.Equal("Tschüss", p.Resolve(ctx, "farewell", "de"))
	s.Equal(warmed, repo.calls.Load())
}

func (s *WarmupSuite) TestWarmRunsOnce() {
	ctx := context.Background()
	repo := newCountingRepo()
	repo.inner.Register("greeting", "de", "Hallo")

	cfg := &config.Localization{Enabled: true, CacheNamespace: "lingo"}
	p, err := lingo.New(ctx, lingo.WithConfig(cfg), lingo.WithRepository(repo))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = p.Close() })

	p.Warm(ctx)
	after := repo.calls.Load()

	p.Warm(ctx)
	s.Equal(after, repo.calls.Load())
}

func (s *WarmupSuite) TestWarmSkipsNonEnumeratingRepositories() {
	ctx := context.Background()
	repo := &failingRepo{inner: repository.NewStatic()}

	cfg := &config.Localization{Enabled: true, CacheNamespace: "lingo"}
	p, err := lingo.New(ctx, lingo.WithConfig(cfg), lingo.WithRepository(repo))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = p.Close() })

	// failingRepo does not implement Enumerator; Warm is a quiet no-op.
	p.Warm(ctx)
}

func (s *WarmupSuite) TestPrefetchOnStartup() {
	ctx := context.Background()
	repo := newCountingRepo()
	repo.inner.Register("greeting", "de", "Hallo")

	cfg := &config.Localization{
		Enabled:           true,
		CacheNamespace:    "lingo",
		PrefetchOnStartup: true,
	}
	p, err := lingo.New(ctx, lingo.WithConfig(cfg), lingo.WithRepository(repo))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = p.Close() })

	warmed := repo.calls.Load()
	s.Positive(warmed)

	s.Equal("Hallo", p.Resolve(ctx, "greeting", "de"))
	s.Equal(warmed, repo.calls.Load())
}
