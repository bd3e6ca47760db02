package user

import (
	"fmt"

	"github.com/bornholm/todo/internal/core/service"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagUsername = "username"
	flagPassword = "password"
)

func createCommand() *cli.Command {
	return &cli.Command{
		Name:  "create",
		Usage: "Create a user account",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     flagUsername,
				Aliases:  []string{"u"},
				Usage:    "Account username",
				Required: true,
			},
			&cli.StringFlag{
				Name:     flagPassword,
				Aliases:  []string{"p"},
				Usage:    "Account password",
				EnvVars:  []string{"TODO_USER_PASSWORD"},
				Required: true,
			},
		},
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			accounts, err := getAccountManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			password := cCtx.String(flagPassword)

			user, err := accounts.Signup(ctx, service.SignupInput{
				Username:  cCtx.String(flagUsername),
				Password1: password,
				Password2: password,
			})
			if err != nil {
				return errors.Wrap(err, "could not create user")
			}

			if _, err := fmt.Fprintf(cCtx.App.Writer, "user '%s' created with id '%s'\n", user.Username(), user.ID()); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
