package cli

import (
	"github.com/spf13/cobra"

	"github.com/mrlokans/wordmail/internal/entrypoint"
)

func newServeCommand(opts *globalOptions, build BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the scheduler and the web UI",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, closer, err := opts.load()
			if err != nil {
				return err
			}
			defer closer.Close()

			return entrypoint.Run(cfg, build.Version, logger)
		},
	}
}
