package setup

import (
	"context"

	"github.com/bornholm/todo/internal/config"
	"github.com/bornholm/todo/internal/http"
	"github.com/bornholm/todo/internal/http/handler/metrics"
	"github.com/bornholm/todo/internal/http/handler/webui"
	"github.com/bornholm/todo/internal/http/middleware/authn"
	"github.com/pkg/errors"
)

func NewHTTPServerFromConfig(ctx context.Context, conf *config.Config) (*http.Server, error) {
	sessionHandler, err := getSessionHandlerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not configure session handler from config")
	}

	todos, err := getTodoManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.Wrap(err, "could not create todo manager from config")
	}

	authnMiddleware := authn.Middleware(nil, sessionHandler)

	metricsAuth := http.BasicAuth(conf.HTTP.Metrics.Username, conf.HTTP.Metrics.Password)

	options := []http.OptionFunc{
		http.WithAddress(conf.HTTP.Address),
		http.WithBaseURL(conf.HTTP.BaseURL),
		http.WithMount("/metrics", metricsAuth(metrics.NewHandler())),
		http.WithMount("/", authnMiddleware(webui.NewHandler(todos, sessionHandler))),
	}

	server := http.NewServer(options...)

	return server, nil
}
