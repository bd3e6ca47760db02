package user

import (
	"context"

	"github.com/bornholm/todo/internal/config"
	"github.com/bornholm/todo/internal/core/service"
	"github.com/bornholm/todo/internal/setup"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Manage user accounts",
		Subcommands: []*cli.Command{
			createCommand(),
			listCommand(),
		},
	}
}

func getAccountManager(ctx context.Context) (*service.AccountManager, error) {
	conf, err := config.Parse()
	if err != nil {
		return nil, errors.Wrap(err, "could not parse config")
	}

	accounts, err := setup.NewAccountManagerFromConfig(ctx, conf)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return accounts, nil
}
