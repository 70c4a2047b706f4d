package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/brandonbloom/dtfmt/internal/version"
	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return newRootCommand().ExecuteContext(ctx)
}

func newRootCommand() *cobra.Command {
	opts := newFormatOptions()
	cmd := &cobra.Command{
		Use:   "dtfmt [datetime...]",
		Short: "Render timestamps as locale-aware dates or relative phrases",
		Long: `Render each datetime argument (or each line of stdin) as a string.

--type local formats with the active locale, --type relative humanizes the
distance from now ("3 days ago"), and any other type prints the instant as
milliseconds since the epoch.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFormat(cmd, opts, args)
		},
	}
	opts.register(cmd)

	cmd.AddCommand(
		newExplainCommand(opts),
		newOptionsCommand(opts),
		newWatchCommand(opts),
		newServeCommand(opts),
		newLocalesCommand(opts),
		newConfigCommand(),
		newVersionCommand(),
	)

	return cmd
}
