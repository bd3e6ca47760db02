package user

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List user accounts",
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			accounts, err := getAccountManager(ctx)
			if err != nil {
				return errors.WithStack(err)
			}

			users, err := accounts.ListUsers(ctx)
			if err != nil {
				return errors.Wrap(err, "could not list users")
			}

			tw := tabwriter.NewWriter(cCtx.App.Writer, 0, 4, 2, ' ', 0)

			fmt.Fprintln(tw, "ID\tUSERNAME\tCREATED")
			for _, u := range users {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", u.ID(), u.Username(), humanize.Time(u.CreatedAt()))
			}

			if err := tw.Flush(); err != nil {
				return errors.WithStack(err)
			}

			return nil
		},
	}
}
