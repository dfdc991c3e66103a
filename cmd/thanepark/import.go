package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/thanepark/internal/application/commands"
	"github.com/ersonp/thanepark/internal/domain/entities"
	"github.com/ersonp/thanepark/internal/infrastructure/parsers"
)

type importFlags struct {
	format  string
	replace bool
	dryRun  bool
	strict  bool
}

func newImportCmd() *cobra.Command {
	var flags importFlags

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import rides from JSON, CSV or YAML",
		Long: `Imports rides from a structured file.

Rides already in the park are skipped unless --replace is given, in which
case the park is emptied first. The import is a single undoable step.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "auto", "File format (json, csv, yaml, auto)")
	cmd.Flags().BoolVar(&flags.replace, "replace", false, "Replace every ride in the park")
	cmd.Flags().BoolVar(&flags.dryRun, "dry-run", false, "Validate without saving")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Abort on the first invalid record instead of skipping it")

	return cmd
}

func runImport(cmd *cobra.Command, filePath string, flags importFlags) error {
	rides, invalid, err := readRides(filePath, flags.format, flags.strict)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(invalid) > 0 {
		fmt.Fprintf(out, "Validation errors (%d):\n", len(invalid))
		for _, e := range invalid {
			fmt.Fprintf(out, "  %s\n", e)
		}
		fmt.Fprintln(out)
	}

	if flags.dryRun {
		fmt.Fprintf(out, "Dry run: %d valid rides in %s\n", len(rides), filePath)
		return nil
	}

	return withDeps(cmd.Context(), func(deps *Deps) error {
		input := fmt.Sprintf("%s %s", commands.WordImport, filePath)
		result, err := deps.Logic.ExecuteCommand(cmd.Context(), input, commands.Import{
			Rides:   rides,
			Replace: flags.replace,
		})
		if err != nil {
			return fmt.Errorf("importing file: %w", err)
		}
		fmt.Fprintln(out, result.Feedback)
		return nil
	})
}

// readRides parses filePath and splits its records into valid rides and
// per-record errors. Duplicate names within the file keep the first record.
// In strict mode the first invalid record fails the whole read.
func readRides(filePath, format string, strict bool) ([]entities.Ride, []error, error) {
	var p parsers.Parser
	if format == "auto" {
		p = parsers.ForFile(filePath)
	} else {
		p = parsers.ForFormat(format)
	}
	if p == nil {
		return nil, nil, fmt.Errorf("unsupported format for %s (use --format json, csv or yaml)", filePath)
	}

	f, err := os.Open(filePath)
	if err != nil {
		return nil, nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	raw, err := p.Parse(f)
	if err != nil {
		return nil, nil, fmt.Errorf("parsing file: %w", err)
	}

	if strict {
		rides, err := parsers.ToRides(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid record: %w", err)
		}
		return rides, nil, nil
	}

	var (
		rides   []entities.Ride
		invalid []error
		seen    = make(map[string]bool, len(raw))
	)
	for _, r := range raw {
		ride, err := r.ToRide()
		if err != nil {
			invalid = append(invalid, err)
			continue
		}
		if seen[ride.Key()] {
			invalid = append(invalid, fmt.Errorf("line %d: %w", r.LineNum, entities.ErrDuplicateRide))
			continue
		}
		seen[ride.Key()] = true
		rides = append(rides, ride)
	}
	return rides, invalid, nil
}
