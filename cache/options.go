package cache

import "time"

// Option configures cache store construction.
type Option func(*Options)

// Options holds store connection configuration.
type Options struct {
	URI       string
	Namespace string
	MaxAge    time.Duration
}

// WithURI sets the connection URI for remote stores.
func WithURI(uri string) Option {
	return func(o *Options) {
		o.URI = uri
	}
}

// WithNamespace sets the key namespace prefix.
func WithNamespace(namespace string) Option {
	return func(o *Options) {
		o.Namespace = namespace
	}
}

// WithMaxAge configures the max age of cached entries. Zero means entries
// live until explicitly invalidated.
func WithMaxAge(maxAge time.Duration) Option {
	return func(o *Options) {
		o.MaxAge = maxAge
	}
}

// NewOptions applies opts over defaults.
func NewOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
