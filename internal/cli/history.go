package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mrlokans/wordmail/internal/entrypoint"
	"github.com/mrlokans/wordmail/internal/tasks"
)

func newHistoryCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and maintain the sent-word history",
	}
	cmd.AddCommand(
		newHistoryInfoCommand(opts),
		newHistoryListCommand(opts),
		newHistoryCleanupCommand(opts),
		newHistoryResetCommand(opts),
	)
	return cmd
}

func newHistoryInfoCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show database statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return opts.withApp(func(app *entrypoint.App) error {
				info, err := app.DB.GetInfo(time.Now())
				if err != nil {
					return err
				}

				printHeader(out, "Database Info")
				fmt.Fprintf(out, "Path:        %s\n", info.Path)
				fmt.Fprintf(out, "Size:        %.1f KB\n", float64(info.SizeBytes)/1024)
				fmt.Fprintf(out, "Total words: %d\n", info.TotalWords)
				fmt.Fprintf(out, "Sent today:  %d\n", info.WordsToday)
				fmt.Fprintf(out, "Catalog:     %d words\n", app.Selector.Catalog().Size())
				if info.FirstSent != nil {
					fmt.Fprintf(out, "First sent:  %s\n", info.FirstSent.Format(time.DateOnly))
				}
				if info.LastSent != nil {
					fmt.Fprintf(out, "Last sent:   %s\n", info.LastSent.Format(time.DateOnly))
				}
				return nil
			})
		},
	}
}

func newHistoryListCommand(opts *globalOptions) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the most recently sent words",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			return opts.withApp(func(app *entrypoint.App) error {
				words, err := app.DB.GetSentWords(limit)
				if err != nil {
					return err
				}
				if len(words) == 0 {
					fmt.Fprintln(out, "No words sent yet")
					return nil
				}
				for _, w := range words {
					fmt.Fprintf(out, "%s  %-20s %s\n", w.SentDate.Format(time.DateOnly), w.Word, w.Meaning)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of words")
	return cmd
}

func newHistoryCleanupCommand(opts *globalOptions) *cobra.Command {
	var days int
	cmd := &cobra.Command{
		Use:   "cleanup",
		Short: "Forget words sent more than --days ago so they can be sent again",
		RunE: func(cmd *cobra.Command, args []string) error {
			if days <= 0 {
				return errors.New("--days must be positive")
			}
			out := cmd.OutOrStdout()
			return opts.withApp(func(app *entrypoint.App) error {
				deleted, err := app.DB.CleanupOldWords(days, time.Now())
				if err != nil {
					return err
				}
				printOK(out, "Removed %d words older than %d days", deleted, days)
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&days, "days", tasks.DefaultHistoryRetentionDays, "retention in days")
	return cmd
}

func newHistoryResetCommand(opts *globalOptions) *cobra.Command {
	var confirm bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the entire history",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if !confirm {
				printWarn(out, "This deletes every sent word. Re-run with --yes to confirm.")
				return nil
			}
			return opts.withApp(func(app *entrypoint.App) error {
				deleted, err := app.DB.ResetHistory()
				if err != nil {
					return err
				}
				printOK(out, "History reset (%d words removed)", deleted)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&confirm, "yes", false, "confirm the reset")
	return cmd
}
