package session

import "net/http"

type Options struct {
	SessionName string
	// RateLimit wraps the credential submission endpoints
	RateLimit func(http.Handler) http.Handler
}

type OptionFunc func(opts *Options)

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		SessionName: "todo_auth",
		RateLimit:   nil,
	}

	for _, fn := range funcs {
		fn(opts)
	}

	return opts
}

func WithSessionName(sessionName string) OptionFunc {
	return func(opts *Options) {
		opts.SessionName = sessionName
	}
}

func WithRateLimit(middleware func(http.Handler) http.Handler) OptionFunc {
	return func(opts *Options) {
		opts.RateLimit = middleware
	}
}
