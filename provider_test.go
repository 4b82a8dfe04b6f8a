package lingo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/openlingo/lingo"
	"github.com/openlingo/lingo/cache"
	"github.com/openlingo/lingo/config"
)

type ProviderSuite struct {
	suite.Suite
}

func TestProviderSuite(t *testing.T) {
	suite.Run(t, new(ProviderSuite))
}

func (s *ProviderSuite) TestCacheURISelectsStore() {
	ctx := context.Background()

	_, err := lingo.New(ctx, lingo.WithConfig(&config.Localization{
		Enabled:  true,
		CacheURI: "memcached://localhost:11211",
	}))
	s.Require().Error(err)

	var cfgErr *config.Error
	s.ErrorAs(err, &cfgErr)

	// A redis URI reaches the redis store; nothing listens on the port, so
	// construction fails instead of silently landing on the in-memory store.
	_, err = lingo.New(ctx, lingo.WithConfig(&config.Localization{
		Enabled:  true,
		CacheURI: "redis://127.0.0.1:1",
	}))
	s.Error(err)
	s.NotErrorAs(err, &cfgErr)
}

func (s *ProviderSuite) TestLegacyModeSkipsResolution() {
	ctx := context.Background()
	repo := newCountingRepo()
	repo.inner.Register("greeting", "de", "Hallo")
	store := &countingStore{inner: cache.NewInMemoryStore()}

	cfg := &config.Localization{Enabled: true, LegacyMode: true, CacheNamespace: "lingo"}
	p, err := lingo.New(ctx,
		lingo.WithConfig(cfg),
		lingo.WithRepository(repo),
		lingo.WithCacheStore(store),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = p.Close() })

	s.Equal("greeting", p.Resolve(ctx, "greeting", "de"))
	s.Equal("/greeting", p.Resolve(ctx, "/greeting", "de"))
	s.Zero(repo.calls.Load())
	s.Zero(store.gets.Load())
}

func (s *ProviderSuite) TestLookupFilterOptionOverridesLegacyMode() {
	ctx := context.Background()
	repo := newCountingRepo()
	repo.inner.Register("greeting", "de", "Hallo")

	cfg := &config.Localization{Enabled: true, LegacyMode: true, CacheNamespace: "lingo"}
	p, err := lingo.New(ctx,
		lingo.WithConfig(cfg),
		lingo.WithRepository(repo),
		lingo.WithLookupFilter(func(string) bool { return true }),
	)
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = p.Close() })

	s.Equal("Hallo", p.Resolve(ctx, "greeting", "de"))
}

func (s *ProviderSuite) TestLanguagePacksBuildBundleRepository() {
	ctx := context.Background()

	cfg := &config.Localization{
		Enabled:            true,
		CacheNamespace:     "lingo",
		TranslationsFolder: "testdata",
		Languages:          []string{"en"},
	}
	p, err := lingo.New(ctx, lingo.WithConfig(cfg))
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = p.Close() })

	s.Equal("Hello", p.Resolve(ctx, "greeting", "en"))
	s.Equal("farewell", p.Resolve(ctx, "farewell", "en"))
}

func (s *ProviderSuite) TestMissingLanguagePackFailsConstruction() {
	_, err := lingo.New(context.Background(), lingo.WithConfig(&config.Localization{
		Enabled:            true,
		TranslationsFolder: "testdata",
		Languages:          []string{"sw"},
	}))
	s.Error(err)
}
