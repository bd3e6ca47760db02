package server

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/bornholm/todo/internal/config"
	"github.com/bornholm/todo/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "server",
		Usage: "Start the web server",
		Action: func(cCtx *cli.Context) error {
			ctx, cancel := signal.NotifyContext(cCtx.Context, os.Interrupt, syscall.SIGTERM)
			defer cancel()

			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			slog.DebugContext(ctx, "using configuration", slog.Any("config", conf))

			flush, err := setup.SetupSentry(ctx, conf)
			if err != nil {
				return errors.WithStack(err)
			}

			defer flush()

			server, err := setup.NewHTTPServerFromConfig(ctx, conf)
			if err != nil {
				return errors.Wrap(err, "could not setup http server")
			}

			slog.InfoContext(ctx, "starting server", slog.String("address", conf.HTTP.Address))

			if err := server.Run(ctx); err != nil {
				return errors.Wrap(err, "could not run server")
			}

			return nil
		},
	}
}
