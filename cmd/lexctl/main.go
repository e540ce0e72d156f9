// Command lexctl is the operator CLI: it runs lookups without persisting
// them, exports or clears an owner's dictionary, mints front-end tokens and
// applies migrations.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var configFile string

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "lexctl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	rootCommand := &cobra.Command{
		Use:           "lexctl",
		Short:         "Operate the word lookup service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCommand.PersistentFlags().StringVar(&configFile, "config", "", "config file path (overrides CONFIG_PATH)")

	rootCommand.AddCommand(
		newLookupCommand(),
		newExportCommand(),
		newClearCommand(),
		newTokenCommand(),
		newMigrateCommand(),
	)
	return rootCommand
}
