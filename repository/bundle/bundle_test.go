package bundle_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/openlingo/lingo/repository/bundle"
)

type BundleSuite struct {
	suite.Suite
	repo *bundle.Repo
}

func TestBundleSuite(t *testing.T) {
	suite.Run(t, new(BundleSuite))
}

func (s *BundleSuite) SetupSuite() {
	repo, err := bundle.New(bundle.Options{
		TranslationsFolder: "testdata",
		Languages:          []string{"en", "de"},
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *BundleSuite) TestLookup() {
	ctx := context.Background()

	testCases := []struct {
		name     string
		key      string
		culture  string
		expected string
		found    bool
	}{
		{name: "exact culture hit", key: "greeting", culture: "de", expected: "Hallo", found: true},
		{name: "default culture maps to default language", key: "greeting", culture: "", expected: "Hello", found: true},
		{name: "message absent in culture is a miss, not a fallback", key: "farewell", culture: "de"},
		{name: "regional variant is not an exact match", key: "greeting", culture: "de-DE"},
		{name: "unknown key", key: "nonexistent", culture: "en"},
		{name: "unparseable culture", key: "greeting", culture: "not a culture"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			value, found, err := s.repo.Lookup(ctx, tc.key, tc.culture)
			s.Require().NoError(err)
			s.Equal(tc.found, found)
			s.Equal(tc.expected, value)
		})
	}
}

func (s *BundleSuite) TestNewFailsOnMissingPack() {
	_, err := bundle.New(bundle.Options{
		TranslationsFolder: "testdata",
		Languages:          []string{"fr"},
	})
	s.Error(err)
}

func (s *BundleSuite) TestBundleExposed() {
	s.NotNil(s.repo.Bundle())
}
