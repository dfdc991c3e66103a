package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ersonp/thanepark/internal/application/commands"
	"github.com/ersonp/thanepark/internal/application/parser"
	"github.com/ersonp/thanepark/internal/domain/entities"
	"github.com/ersonp/thanepark/internal/domain/services"
	"github.com/ersonp/thanepark/internal/infrastructure/relationaldb/sqlite"
	"github.com/ersonp/thanepark/internal/infrastructure/report"
)

type listFlags struct {
	filter string
	find   string
	format string
}

func newListCmd() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rides",
		Long: `Lists the rides of the park in display order.

The filter takes the same predicates as the shell filter command,
for example --filter "m/>30 w/<10".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.filter, "filter", "", "Keep rides matching the m/ and w/ predicates")
	cmd.Flags().StringVar(&flags.find, "find", "", "Keep rides whose name contains one of the keywords")
	cmd.Flags().StringVarP(&flags.format, "format", "f", "table", "Output format (table, json, csv, markdown)")

	return cmd
}

func runList(cmd *cobra.Command, flags listFlags) error {
	if !slices.Contains(listFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, listFormats)
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

		out := cmd.OutOrStdout()
		if flags.format == "table" {
			fmt.Fprintln(out, report.RideTable(rides))
			return nil
		}
		return report.WriteRides(out, flags.format, rides)
	})
}

// selectRides applies the optional filter predicates and find keywords.
// Both must hold when both are given.
func selectRides(rides []entities.Ride, filter, find string) ([]entities.Ride, error) {
	list := services.NewRideList()
	if err := list.SetRides(rides); err != nil {
		return nil, err
	}

	var cond entities.Condition
	if strings.TrimSpace(filter) != "" {
		c, err := parser.ParseCondition(filter)
		if err != nil {
			return nil, fmt.Errorf("parsing filter: %w", err)
		}
		cond = c
	}

	matchName := services.ShowAllRides
	if keywords := strings.Fields(find); len(keywords) > 0 {
		matchName = commands.NameContainsKeywords(keywords)
	}

	return list.Filter(func(r entities.Ride) bool {
		return cond.Test(r) && matchName(r)
	}), nil
}
