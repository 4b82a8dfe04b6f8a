// Package bundle adapts a go-i18n message bundle to the repository contract.
package bundle

import (
	"context"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/openlingo/lingo/repository"
)

// Options configure the bundle repository.
type Options struct {
	// TranslationsFolder holds messages.<lang>.toml files.
	TranslationsFolder string
	// Languages are the language packs to load.
	Languages []string
	// DefaultLanguage serves lookups for the empty default culture.
	DefaultLanguage language.Tag
}

// Repo resolves translations out of a go-i18n bundle. Lookups are exact
// culture matches only; fallback walking belongs to the resolution engine.
type Repo struct {
	bundle      *i18n.Bundle
	defaultLang language.Tag
}

// New loads the configured message files into a bundle.
func New(opts Options) (*Repo, error) {
	folder := opts.TranslationsFolder
	if folder == "" {
		folder = "localization"
	}

	defaultLang := opts.DefaultLanguage
	if defaultLang == language.Und {
		defaultLang = language.English
	}

	b := i18n.NewBundle(defaultLang)
	b.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, lang := range opts.Languages {
		if _, err := b.LoadMessageFile(fmt.Sprintf("%s/messages.%v.toml", folder, lang)); err != nil {
			return nil, fmt.Errorf("loading language pack %q: %w", lang, err)
		}
	}

	return &Repo{bundle: b, defaultLang: defaultLang}, nil
}

// Bundle exposes the underlying translation bundle.
func (r *Repo) Bundle() *i18n.Bundle {
	return r.bundle
}

// Lookup implements repository.Repository. The empty default culture maps to
// the bundle's default language.
func (r *Repo) Lookup(_ context.Context, resourceKey, culture string) (string, bool, error) {
	want := r.defaultLang
	if culture != "" {
		parsed, err := language.Parse(culture)
		if err != nil {
			return "", false, nil
		}
		want = parsed
	}

	localizer := i18n.NewLocalizer(r.bundle, want.String())
	value, got, err := localizer.LocalizeWithTag(&i18n.LocalizeConfig{MessageID: resourceKey})
	if err != nil {
		return "", false, nil
	}

	// go-i18n falls back to the bundle default internally; only an exact
	// tag match counts as a hit for the requested culture.
	if got != want {
		return "", false, nil
	}
	return value, true, nil
}

var _ repository.Repository = (*Repo)(nil)
