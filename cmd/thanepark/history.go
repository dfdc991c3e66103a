package main

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ersonp/thanepark/internal/domain/entities"
	"github.com/ersonp/thanepark/internal/infrastructure/relationaldb/sqlite"
	"github.com/ersonp/thanepark/internal/infrastructure/report"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit  int
		output string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show the command log",
		Long:  "Shows the commands entered in previous sessions, most recent first.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, limit, output)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultHistoryLimit, "Maximum number of commands to show (0 for all)")
	cmd.Flags().StringVarP(&output, "report", "r", "", "Write a markdown report to this file instead")

	return cmd
}

func runHistory(cmd *cobra.Command, limit int, output string) error {
	return withRepo(cmd.Context(), func(_ *Deps, repo *sqlite.Repository) error {
		entries, err := repo.ListCommands(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("listing commands: %w", err)
		}

		if output != "" {
			return writeOutput(output, cmd.OutOrStdout(), func(w io.Writer) error {
				return report.WriteHistory(w, entries, time.Now())
			})
		}

		if len(entries) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No commands recorded.")
			return nil
		}
		displayEntries(cmd.OutOrStdout(), entries, time.Now())
		return nil
	})
}

func displayEntries(w io.Writer, entries []entities.CommandEntry, now time.Time) {
	for _, e := range entries {
		mark := "ok"
		if !e.Succeeded {
			mark = "failed"
		}
		fmt.Fprintf(w, "%-16s %-6s %s\n", humanize.RelTime(e.ExecutedAt, now, "ago", "from now"), mark, e.Input)
	}
}
