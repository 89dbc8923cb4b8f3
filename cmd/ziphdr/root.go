package main

import (
	"log/slog"

	"github.com/spf13/cobra"
)

type commandContext struct {
	verbose bool
	json    bool
}

// logger writes debug records to stderr when --verbose is set.
func (c *commandContext) logger(cmd *cobra.Command) *slog.Logger {
	if !c.verbose {
		return slog.New(slog.DiscardHandler)
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newRootCommand() *cobra.Command {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:           "ziphdr",
		Short:         "Inspect zip headers and MS-DOS timestamps",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&ctx.json, "json", false, "Write JSON instead of a table")

	rootCmd.AddCommand(newInspectCommand(ctx))
	rootCmd.AddCommand(newDOSTimeCommand(ctx))

	return rootCmd
}
