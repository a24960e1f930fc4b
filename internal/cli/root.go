// Package cli implements the command-line interface.
package cli

import (
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mrlokans/wordmail/internal/config"
	"github.com/mrlokans/wordmail/internal/entrypoint"
	"github.com/mrlokans/wordmail/internal/logging"
)

// BuildInfo is set at build time via ldflags.
type BuildInfo struct {
	Version string
	Commit  string
}

type globalOptions struct {
	envFile string
	verbose bool
}

// NewRootCommand builds the command tree. Running without a sub-command serves the web UI.
func NewRootCommand(build BuildInfo) *cobra.Command {
	opts := &globalOptions{}

	serve := newServeCommand(opts, build)
	root := &cobra.Command{
		Use:           "wordmail",
		Short:         "Daily vocabulary words by email",
		Version:       build.Version + " (" + build.Commit + ")",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve.RunE,
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file read before the environment")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		serve,
		newSendCommand(opts),
		newDemoCommand(opts),
		newTestEmailCommand(opts),
		newConfigCommand(opts),
		newHistoryCommand(opts),
		newPingCommand(opts),
	)
	return root
}

// load reads the configuration and builds the logger.
func (o *globalOptions) load() (*config.Config, *logrus.Logger, io.Closer, error) {
	cfg, err := config.NewConfig(o.envFile)
	if err != nil {
		return nil, nil, nil, err
	}
	if o.verbose {
		cfg.Logging.Level = "debug"
	}
	logger, closer := logging.New(cfg.Logging)
	return cfg, logger, closer, nil
}

// withApp runs fn against a fully wired application and closes it afterwards.
func (o *globalOptions) withApp(fn func(app *entrypoint.App) error) error {
	cfg, logger, closer, err := o.load()
	if err != nil {
		return err
	}
	defer closer.Close()

	app, err := entrypoint.NewApp(cfg, logger)
	if err != nil {
		return err
	}
	defer app.Close()

	return fn(app)
}
