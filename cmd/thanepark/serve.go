package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ersonp/thanepark/internal/infrastructure/httpapi"
	"github.com/ersonp/thanepark/internal/infrastructure/relationaldb/sqlite"
)

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the park read-only over HTTP",
		Long:  "Starts a JSON API exposing the rides and the command log of the park.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}

func runServe(cmd *cobra.Command, addr string) error {
	return withRepo(cmd.Context(), func(deps *Deps, repo *sqlite.Repository) error {
		if addr == "" {
			addr = deps.Config.HTTP.Addr
		}

		router := httpapi.NewRouter(repo, deps.Logger)
		fmt.Fprintf(cmd.OutOrStdout(), "Serving park %q on %s\n", globalPark, addr)
		return httpapi.Serve(cmd.Context(), addr, router, deps.Logger)
	})
}
