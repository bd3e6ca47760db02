package setup

import (
	"context"

	"github.com/bornholm/todo/internal/config"
	"github.com/bornholm/todo/internal/http/middleware/authn/session"
	"github.com/bornholm/todo/internal/http/middleware/ratelimit"
	"github.com/pkg/errors"
)

var getSessionHandlerFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (*session.Handler, error) {
	sessionStore, err := getSessionStoreFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	accounts, err := NewAccountManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	opts := []session.OptionFunc{}

	if conf.HTTP.RateLimit.Enabled {
		rateLimit := ratelimit.Middleware(
			ratelimit.WithLimit(conf.HTTP.RateLimit.Interval, conf.HTTP.RateLimit.MaxBurst),
			ratelimit.WithCache(conf.HTTP.RateLimit.CacheSize, conf.HTTP.RateLimit.CacheTTL),
			ratelimit.WithTrustHeaders(conf.HTTP.RateLimit.TrustHeaders),
		)

		opts = append(opts, session.WithRateLimit(rateLimit))
	}

	return session.NewHandler(sessionStore, accounts, opts...), nil
})
