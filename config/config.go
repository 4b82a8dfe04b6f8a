package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/openlingo/lingo/culture"
)

// FromEnv convenience method to process configs.
func FromEnv[T any]() (T, error) {
	return env.ParseAs[T]()
}

// FillEnv convenience method to fill a config object with environment data.
func FillEnv(v any) error {
	return env.Parse(v)
}

// Localization is the settings surface for the resolution core. It is read
// once at startup; the core treats it as an immutable snapshot thereafter.
type Localization struct {
	Enabled    bool `envDefault:"true"  env:"LOCALIZATION_ENABLED"     yaml:"enabled"`
	LegacyMode bool `envDefault:"false" env:"LOCALIZATION_LEGACY_MODE" yaml:"legacy_mode"`

	FallbackCultures  []string `env:"LOCALIZATION_FALLBACK_CULTURES"        envSeparator:","  yaml:"fallback_cultures"`
	InvariantFallback bool     `envDefault:"true" env:"LOCALIZATION_INVARIANT_FALLBACK"       yaml:"invariant_fallback"`

	PrefetchOnStartup bool `envDefault:"false" env:"LOCALIZATION_PREFETCH_ON_STARTUP" yaml:"prefetch_on_startup"`
	WarmupConcurrency int  `envDefault:"8"     env:"LOCALIZATION_WARMUP_CONCURRENCY"  yaml:"warmup_concurrency"`

	CacheURI       string        `env:"LOCALIZATION_CACHE_URI"                        yaml:"cache_uri"`
	CacheNamespace string        `envDefault:"lingo" env:"LOCALIZATION_CACHE_NAMESPACE" yaml:"cache_namespace"`
	CacheMaxAge    time.Duration `envDefault:"0"     env:"LOCALIZATION_CACHE_MAX_AGE"   yaml:"cache_max_age"`

	TranslationsFolder string   `envDefault:"localization" env:"LOCALIZATION_TRANSLATIONS_FOLDER" yaml:"translations_folder"`
	Languages          []string `env:"LOCALIZATION_LANGUAGES" envSeparator:","                    yaml:"languages"`
}

// Error is a configuration fault detected at setup time. It is fatal and
// should prevent startup.
type Error struct {
	Field  string
	Reason string
}

func (e *Error) Error() string {
	return fmt.Sprintf("configuration: %s: %s", e.Field, e.Reason)
}

// Validate checks the settings for contradictions. Returns a *Error on the
// first fault found.
func (c *Localization) Validate() error {
	for _, fallback := range c.FallbackCultures {
		if fallback == "" {
			return &Error{Field: "FallbackCultures", Reason: "empty culture entry"}
		}
		if err := culture.Validate(fallback); err != nil {
			return &Error{Field: "FallbackCultures", Reason: err.Error()}
		}
	}

	if c.WarmupConcurrency < 0 {
		return &Error{Field: "WarmupConcurrency", Reason: "cannot be negative"}
	}

	return nil
}
