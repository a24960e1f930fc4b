package cli

import (
	"context"
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrlokans/wordmail/internal/entrypoint"
	"github.com/mrlokans/wordmail/internal/services"
)

const commandTimeout = 5 * time.Minute

func newSendCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "send",
		Short: "Send today's words now and record them",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return opts.withApp(func(app *entrypoint.App) error {
				if err := app.Config.Validate(); err != nil {
					printFail(out, "%v", err)
					return err
				}

				ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
				defer cancel()

				result, err := app.Delivery.Run(ctx)
				if errors.Is(err, services.ErrNoNewWords) {
					printWarn(out, "No new words available; every catalog word has been sent")
					return nil
				}
				if errors.Is(err, services.ErrNotRecorded) {
					printWarn(out, "Email sent to %s but the history was not updated: %v", result.Recipient, err)
					return err
				}
				if err != nil {
					printFail(out, "Delivery failed: %v", err)
					return err
				}

				printOK(out, "Sent %d words to %s", len(result.Words), result.Recipient)
				printWords(out, result.Words)
				return nil
			})
		},
	}
}

func newDemoCommand(opts *globalOptions) *cobra.Command {
	var count int
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Pick words and print them without sending or recording anything",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return opts.withApp(func(app *entrypoint.App) error {
				ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
				defer cancel()

				words, err := app.Delivery.Preview(ctx, count)
				if errors.Is(err, services.ErrNoNewWords) {
					printWarn(out, "No new words available")
					return nil
				}
				if err != nil {
					return err
				}

				printHeader(out, "Today's Words (demo)")
				printWords(out, words)
				printOK(out, "Demo complete: nothing was sent or recorded")
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 0, "number of words (default: WORDS_PER_DAY)")
	return cmd
}

func newTestEmailCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "test-email",
		Short: "Send a single test word without recording it",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return opts.withApp(func(app *entrypoint.App) error {
				ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
				defer cancel()

				result, err := app.Delivery.SendTest(ctx)
				if err != nil {
					printFail(out, "Test email failed: %v", err)
					return err
				}
				printOK(out, "Test email sent to %s", result.Recipient)
				printWords(out, result.Words)
				return nil
			})
		},
	}
}
