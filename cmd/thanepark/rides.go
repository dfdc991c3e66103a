package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/thanepark/internal/application/commands"
	"github.com/ersonp/thanepark/internal/infrastructure/report"
)

// newRideCmd builds a one-shot command that runs the session command word
// with the given arguments, exactly as if typed into the shell.
func newRideCmd(word, short string, args cobra.PositionalArgs) *cobra.Command {
	usage, _ := commands.Usage(word)
	return &cobra.Command{
		Use:   word + " ARGS...",
		Short: short,
		Long:  usage,
		Args:  args,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRideCommand(cmd, word, args)
		},
	}
}

func newAddCmd() *cobra.Command {
	return newRideCmd(commands.WordAdd, "Add a ride", cobra.MinimumNArgs(4))
}

func newUpdateCmd() *cobra.Command {
	return newRideCmd(commands.WordUpdate, "Update a ride by list index", cobra.MinimumNArgs(2))
}

func newDeleteCmd() *cobra.Command {
	return newRideCmd(commands.WordDelete, "Delete a ride by list index", cobra.ExactArgs(1))
}

func newShutdownCmd() *cobra.Command {
	return newRideCmd(commands.WordShutdown, "Shut down a ride by list index", cobra.ExactArgs(1))
}

func newOpenCmd() *cobra.Command {
	return newRideCmd(commands.WordOpen, "Open a ride by list index", cobra.ExactArgs(1))
}

func newViewCmd() *cobra.Command {
	return newRideCmd(commands.WordView, "Show one ride by name or list index", cobra.MinimumNArgs(1))
}

func runRideCommand(cmd *cobra.Command, word string, args []string) error {
	input := word + " " + strings.Join(args, " ")

	return withDeps(cmd.Context(), func(deps *Deps) error {
		result, err := deps.Logic.Execute(cmd.Context(), input)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, result.Feedback)
		if result.Selected != nil {
			fmt.Fprintln(out, report.RideCard(*result.Selected))
		}
		return nil
	})
}

func newClearCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every ride from the park",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(cmd, force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runClear(cmd *cobra.Command, force bool) error {
	if !force && !confirmAction(fmt.Sprintf("Remove every ride from park %q?", globalPark)) {
		fmt.Println("Cancelled.")
		return nil
	}

	return withDeps(cmd.Context(), func(deps *Deps) error {
		result, err := deps.Logic.Execute(cmd.Context(), commands.WordClear)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result.Feedback)
		return nil
	})
}

// confirmAction prompts the user for y/N confirmation.
func confirmAction(prompt string) bool {
	reader := bufio.NewReader(os.Stdin)
	fmt.Printf("%s [y/N]: ", prompt)
	response, _ := reader.ReadString('\n') // EOF counts as "no"
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
