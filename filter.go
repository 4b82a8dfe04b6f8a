package lingo

import "strings"

// resourceKeyPrefix is the structural convention for engine-managed keys.
const resourceKeyPrefix = "/"

// DefaultLookupFilter returns the conventional filter: keys carrying the
// path-style prefix are resolved by the engine, and only while legacy
// compatibility mode is off. The convention is opt-in; a Provider without a
// filter resolves every key.
func DefaultLookupFilter(legacyMode bool) LookupFilter {
	return func(resourceKey string) bool {
		if legacyMode {
			return false
		}
		return strings.HasPrefix(resourceKey, resourceKeyPrefix)
	}
}
