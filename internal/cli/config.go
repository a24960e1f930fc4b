package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration and check it",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			cfg, _, closer, err := opts.load()
			if err != nil {
				return err
			}
			defer closer.Close()

			printHeader(out, "Configuration")
			for _, entry := range cfg.Summary() {
				value := entry.Value
				if value == "" {
					value = "(not set)"
				}
				fmt.Fprintf(out, "%-20s %s\n", entry.Name+":", value)
			}
			fmt.Fprintln(out)

			if err := cfg.Validate(); err != nil {
				printFail(out, "%v", err)
				return err
			}
			printOK(out, "Configuration is valid")
			return nil
		},
	}
}
