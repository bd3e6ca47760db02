package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/todo/internal/build"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	LogFormatText = "text"
	LogFormatJSON = "json"
)

func Main(name string, usage string, commands ...*cli.Command) {
	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Version:  build.LongVersion,
		Before: func(ctx *cli.Context) error {
			if workdir := ctx.String("workdir"); workdir != "" {
				if err := os.Chdir(workdir); err != nil {
					return errors.Wrap(err, "could not change working directory")
				}
			}

			logger, err := NewLogger(os.Stderr, ctx.String("log-level"), ctx.String("log-format"))
			if err != nil {
				return errors.WithStack(err)
			}

			slog.SetDefault(logger)

			return nil
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Value:   false,
				EnvVars: []string{"TODO_CLI_DEBUG"},
				Usage:   "Print error stack traces",
			},
			&cli.StringFlag{
				Name:    "workdir",
				Value:   "",
				EnvVars: []string{"TODO_CLI_WORKDIR"},
				Usage:   "The working directory, relative database paths are resolved from it",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"TODO_CLI_LOG_LEVEL"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
			&cli.StringFlag{
				Name:    "log-format",
				EnvVars: []string{"TODO_CLI_LOG_FORMAT"},
				Usage:   "Set logging format (text, json)",
				Value:   LogFormatText,
			},
		},
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		if ctx.Bool("debug") {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		} else {
			slog.ErrorContext(ctx.Context, err.Error())
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

// NewLogger returns a logger writing to w and propagating the attributes
// attached to contexts with slogx.WithAttrs.
func NewLogger(w io.Writer, level string, format string) (*slog.Logger, error) {
	var slogLevel slog.Level
	if err := slogLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.Wrapf(err, "invalid log level '%s'", level)
	}

	opts := &slog.HandlerOptions{
		Level:     slogLevel,
		AddSource: true,
	}

	var handler slog.Handler
	switch format {
	case LogFormatText:
		handler = slog.NewTextHandler(w, opts)
	case LogFormatJSON:
		handler = slog.NewJSONHandler(w, opts)
	default:
		return nil, errors.Errorf("invalid log format '%s'", format)
	}

	return slog.New(slogx.ContextHandler{Handler: handler}), nil
}
