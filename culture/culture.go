// Package culture builds the ordered culture probe sequence walked when
// resolving a resource key.
package culture

import (
	"fmt"

	"golang.org/x/text/language"
)

// Default is the distinguished empty culture representing translations
// registered directly in code rather than imported.
const Default = ""

// Invariant is the neutral culture used as a late-stage fallback,
// the BCP 47 undetermined tag.
var Invariant = language.Und.String()

// ChainConfig is the immutable configuration snapshot a chain is built from.
type ChainConfig struct {
	// Fallbacks are probed after the requested culture, in registration order.
	Fallbacks []string
	// InvariantFallback appends the invariant culture before the default.
	InvariantFallback bool
}

// Chain returns the ordered probe sequence for the requested culture:
// requested, then each configured fallback not already present, then the
// invariant culture when enabled, always terminated by the code-default
// empty culture. The default appears exactly once, at the end, whatever the
// configuration. Pure function of its inputs.
func Chain(requested string, cfg ChainConfig) []string {
	chain := make([]string, 0, len(cfg.Fallbacks)+3)
	seen := make(map[string]struct{}, len(cfg.Fallbacks)+3)

	appendCulture := func(c string) {
		if c == Default {
			return
		}
		if _, ok := seen[c]; ok {
			return
		}
		seen[c] = struct{}{}
		chain = append(chain, c)
	}

	appendCulture(requested)
	for _, fallback := range cfg.Fallbacks {
		appendCulture(fallback)
	}
	if cfg.InvariantFallback {
		appendCulture(Invariant)
	}

	return append(chain, Default)
}

// Validate reports whether the culture identifier is a well-formed tag.
// The default empty culture is always valid.
func Validate(culture string) error {
	if culture == Default {
		return nil
	}
	if _, err := language.Parse(culture); err != nil {
		return fmt.Errorf("invalid culture %q: %w", culture, err)
	}
	return nil
}
