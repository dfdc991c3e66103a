package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/ersonp/thanepark/internal/application/commands"
	"github.com/ersonp/thanepark/internal/application/handlers"
	"github.com/ersonp/thanepark/internal/infrastructure/report"
)

// listingWords are the commands after which the visible ride list is shown.
var listingWords = []string{
	commands.WordAdd,
	commands.WordUpdate,
	commands.WordDelete,
	commands.WordShutdown,
	commands.WordOpen,
	commands.WordFilter,
	commands.WordFind,
	commands.WordViewAll,
	commands.WordClear,
	commands.WordUndo,
	commands.WordRedo,
	commands.WordImport,
}

func newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Start an interactive session",
		Long: `Starts an interactive session on the selected park.

Undo and redo cover the commands entered during the session.`,
		Args: cobra.NoArgs,
		RunE: runShell,
	}
}

func runShell(cmd *cobra.Command, args []string) error {
	return withDeps(cmd.Context(), func(deps *Deps) error {
		return runSession(cmd.Context(), deps.Logic, os.Stdin, cmd.OutOrStdout())
	})
}

// runSession reads commands from in until exit, end of input or
// cancellation, writing feedback to out.
func runSession(ctx context.Context, logic *handlers.Logic, in io.Reader, out io.Writer) error {
	fmt.Fprintln(out, shellWelcome)
	fmt.Fprintln(out, report.RideTable(logic.Model().FilteredRides()))

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		fmt.Fprint(out, shellPrompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}

		result, err := logic.Execute(ctx, scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		printResult(out, logic, result)
		if result.Exit {
			return nil
		}
	}
}

func printResult(out io.Writer, logic *handlers.Logic, result commands.Result) {
	if result.Command == "" {
		return
	}
	fmt.Fprintln(out, result.Feedback)

	switch {
	case result.Selected != nil:
		fmt.Fprintln(out, report.RideCard(*result.Selected))
	case slices.Contains(listingWords, result.Command):
		fmt.Fprintln(out, report.RideTable(logic.Model().FilteredRides()))
	}
}
