package ratelimit

import "time"

type Options struct {
	Interval     time.Duration
	MaxBurst     int
	CacheSize    int
	CacheTTL     time.Duration
	TrustHeaders bool
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		Interval:     2 * time.Second,
		MaxBurst:     10,
		CacheSize:    1024,
		CacheTTL:     10 * time.Minute,
		TrustHeaders: false,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithLimit(interval time.Duration, maxBurst int) OptionFunc {
	return func(opts *Options) {
		opts.Interval = interval
		opts.MaxBurst = maxBurst
	}
}

func WithCache(size int, ttl time.Duration) OptionFunc {
	return func(opts *Options) {
		opts.CacheSize = size
		opts.CacheTTL = ttl
	}
}

// WithTrustHeaders identifies clients with the X-Forwarded-For and X-Real-Ip
// headers. Only enable it behind a reverse proxy.
func WithTrustHeaders(trust bool) OptionFunc {
	return func(opts *Options) {
		opts.TrustHeaders = trust
	}
}
