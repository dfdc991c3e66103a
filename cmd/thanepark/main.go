// Package main provides the entry point for the thanepark CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version    = "0.1.0-dev"
	globalPark string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := newRootCmd()
	return rootCmd.ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "thanepark",
		Short:         "Manage the rides of a theme park, with undo and redo",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&globalPark, "park", "p", DefaultPark, "Park to operate on")

	rootCmd.AddCommand(
		newInitCmd(),
		newShellCmd(),
		newAddCmd(),
		newUpdateCmd(),
		newDeleteCmd(),
		newShutdownCmd(),
		newOpenCmd(),
		newListCmd(),
		newViewCmd(),
		newClearCmd(),
		newHistoryCmd(),
		newImportCmd(),
		newExportCmd(),
		newServeCmd(),
		newParksCmd(),
	)

	return rootCmd
}
