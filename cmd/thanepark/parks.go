package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ersonp/thanepark/internal/infrastructure/config"
)

func newParksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parks",
		Short: "Manage parks",
		RunE:  runParksList,
	}

	cmd.AddCommand(
		newParksListCmd(),
		newParksCreateCmd(),
		newParksDeleteCmd(),
	)

	return cmd
}

func newParksListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all parks",
		RunE:  runParksList,
	}
}

func runParksList(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	parks, err := config.LoadParks(cwd)
	if err != nil {
		return fmt.Errorf("loading parks: %w", err)
	}

	if len(parks.Parks) == 0 {
		fmt.Println("No parks configured.")
		fmt.Println("Use 'thanepark parks create NAME' to create a park.")
		return nil
	}

	fmt.Printf("%-20s %-25s %-7s %-7s %s\n", "NAME", "DIRECTORY", "RIDES", "SCHEMA", "DESCRIPTION")
	fmt.Printf("%-20s %-25s %-7s %-7s %s\n", "----", "---------", "-----", "------", "-----------")

	for _, name := range parks.Names() {
		park := parks.Parks[name]
		rides, schema := "-", "-"
		if n, v, err := parkStatus(cmd.Context(), config.ParkDBPath(cwd, name)); err == nil {
			rides, schema = strconv.Itoa(n), strconv.FormatInt(v, 10)
		}
		fmt.Printf("%-20s %-25s %-7s %-7s %s\n", name, park.Dir, rides, schema, park.Description)
	}

	return nil
}

func newParksCreateCmd() *cobra.Command {
	var description string

	cmd := &cobra.Command{
		Use:   "create NAME",
		Short: "Create a new park",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParksCreate(cmd, args[0], description)
		},
	}

	cmd.Flags().StringVarP(&description, "description", "d", "", "Park description")

	return cmd
}

func runParksCreate(cmd *cobra.Command, name string, description string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if !config.Exists(cwd) {
		if err := config.WriteDefault(cwd); err != nil {
			return fmt.Errorf("initializing config: %w", err)
		}
		fmt.Printf("Initialized thanepark in %s\n", config.ConfigDir(cwd))
	}

	if err := registerPark(cwd, name, description); err != nil {
		return err
	}

	path, err := createParkDB(cmd.Context(), cwd, name)
	if err != nil {
		return err
	}

	fmt.Printf("Created park %q with database %s\n", name, path)

	return nil
}

func newParksDeleteCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete NAME",
		Short: "Delete a park and its rides",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParksDelete(args[0], force)
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation prompt")

	return cmd
}

func runParksDelete(name string, force bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	parks, err := config.LoadParks(cwd)
	if err != nil {
		return fmt.Errorf("loading parks: %w", err)
	}
	if _, err := parks.Get(name); err != nil {
		return err
	}

	if !force && !confirmAction(fmt.Sprintf("Delete park %q and all of its rides?", name)) {
		fmt.Println("Cancelled.")
		return nil
	}

	if err := os.RemoveAll(config.ParkDir(cwd, name)); err != nil {
		return fmt.Errorf("removing park directory: %w", err)
	}

	parks.Remove(name)
	if err := parks.Save(cwd); err != nil {
		return fmt.Errorf("saving parks: %w", err)
	}

	fmt.Printf("Deleted park %q\n", name)

	return nil
}
