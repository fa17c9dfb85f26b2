package repository

import "time"

// Option applies a configuration option to the CachedLoader.
type Option func(*CachedLoader)

// WithTTL sets how long a cached frame stays fresh.
func WithTTL(ttl time.Duration) Option {
	return func(c *CachedLoader) {
		if ttl > 0 {
			c.ttl = ttl
		}
	}
}

// WithNow overrides the clock, for tests.
func WithNow(now func() time.Time) Option {
	return func(c *CachedLoader) {
		if now != nil {
			c.now = now
		}
	}
}
