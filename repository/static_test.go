package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/openlingo/lingo/repository"
)

type StaticSuite struct {
	suite.Suite
}

func TestStaticSuite(t *testing.T) {
	suite.Run(t, new(StaticSuite))
}

func (s *StaticSuite) TestRegisterAndLookup() {
	ctx := context.Background()
	repo := repository.NewStatic()

	repo.Register("greeting", "de", "Hallo")
	repo.Register("greeting", "", "Hello")

	value, found, err := repo.Lookup(ctx, "greeting", "de")
	s.Require().NoError(err)
	s.True(found)
	s.Equal("Hallo", value)

	_, found, err = repo.Lookup(ctx, "greeting", "de-DE")
	s.Require().NoError(err)
	s.False(found)

	// Re-registration replaces.
	repo.Register("greeting", "de", "Servus")
	value, found, err = repo.Lookup(ctx, "greeting", "de")
	s.Require().NoError(err)
	s.True(found)
	s.Equal("Servus", value)
}

func (s *StaticSuite) TestPairsAreSorted() {
	repo := repository.NewStatic()
	repo.Register("b", "de", "x")
	repo.Register("a", "sw", "y")
	repo.Register("a", "de", "z")

	pairs, err := repo.Pairs(context.Background())
	s.Require().NoError(err)
	s.Equal([]repository.Pair{
		{Key: "a", Culture: "de"},
		{Key: "a", Culture: "sw"},
		{Key: "b", Culture: "de"},
	}, pairs)
}
