package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrlokans/wordmail/internal/entrypoint"
	"github.com/mrlokans/wordmail/internal/services"
)

func newPingCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Check the dictionary API and the email service",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return opts.withApp(func(app *entrypoint.App) error {
				ctx, cancel := context.WithTimeout(cmd.Context(), time.Minute)
				defer cancel()

				var failed bool
				if err := app.Dictionary.Ping(ctx); err != nil {
					printFail(out, "Dictionary API: %v", err)
					failed = true
				} else {
					printOK(out, "Dictionary API reachable")
				}

				err := app.Delivery.TestConnection(ctx)
				switch {
				case errors.Is(err, services.ErrEmailNotConfigured):
					printWarn(out, "Email: not configured")
				case err != nil:
					printFail(out, "Email (%s): %v", app.Sender.Name(), err)
					failed = true
				default:
					printOK(out, "Email (%s) connection ok", app.Sender.Name())
				}

				if failed {
					return errors.New("connectivity check failed")
				}
				return nil
			})
		},
	}
}
