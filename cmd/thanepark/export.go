package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/thanepark/internal/infrastructure/relationaldb/sqlite"
	"github.com/ersonp/thanepark/internal/infrastructure/report"
)

type exportFlags struct {
	format string
	output string
	filter string
	find   string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export rides to file",
		Long:  "Exports the rides of the park to JSON, CSV, or markdown format.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", report.FormatJSON, "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&flags.filter, "filter", "", "Keep rides matching the m/ and w/ predicates")
	cmd.Flags().StringVar(&flags.find, "find", "", "Keep rides whose name contains one of the keywords")

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if !report.IsValidFormat(flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, report.Formats)
	}

	return withRepo(cmd.Context(), func(_ *Deps, repo *sqlite.Repository) error {
		rides, err := repo.LoadRides(cmd.Context())
		if err != nil {
			return fmt.Errorf("loading rides: %w", err)
		}

		rides, err = selectRides(rides, flags.filter, flags.find)
		if err != nil {
			return err
		}

		return writeOutput(flags.output, cmd.OutOrStdout(), func(w io.Writer) error {
			return report.WriteRides(w, flags.format, rides)
		})
	})
}

// writeOutput runs write against the named file, or against stdout when
// output is empty.
func writeOutput(output string, stdout io.Writer, write func(io.Writer) error) (err error) {
	if output == "" {
		return write(stdout)
	}

	f, err := os.OpenFile(output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing file: %w", cerr)
		}
	}()

	if err := write(f); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Exported to %s\n", output)
	return nil
}
