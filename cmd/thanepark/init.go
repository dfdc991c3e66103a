package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ersonp/thanepark/internal/infrastructure/config"
	"github.com/ersonp/thanepark/internal/infrastructure/relationaldb/sqlite"
)

type initFlags struct {
	maxSnapshots int
	logLevel     string
}

func newInitCmd() *cobra.Command {
	var flags initFlags

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new thanepark project",
		Long:  "Creates a .thanepark directory with default configuration and sets up the database of the selected park.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.maxSnapshots, "max-snapshots", 0, "Snapshots kept per session, undo depth is one less (0 for unbounded)")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "", "Log level written to the config (debug, info, warn, error)")

	return cmd
}

func runInit(cmd *cobra.Command, flags initFlags) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	if config.Exists(cwd) {
		return fmt.Errorf("thanepark already initialized in %s", cwd)
	}

	if err := writeInitConfig(cmd, cwd, flags); err != nil {
		return err
	}
	fmt.Printf("Created %s\n", config.ConfigFilePath(cwd))

	if err := registerPark(cwd, globalPark, ""); err != nil {
		return err
	}

	path, err := createParkDB(cmd.Context(), cwd, globalPark)
	if err != nil {
		return err
	}
	fmt.Printf("Created database: %s\n", path)
	fmt.Println("Thane Park initialized successfully!")

	return nil
}

// writeInitConfig writes the commented default config, or a generated one
// when settings were given on the command line.
func writeInitConfig(cmd *cobra.Command, basePath string, flags initFlags) error {
	if !cmd.Flags().Changed("max-snapshots") && !cmd.Flags().Changed("log-level") {
		if err := config.WriteDefault(basePath); err != nil {
			return fmt.Errorf("writing default config: %w", err)
		}
		return nil
	}

	cfg := config.Default()
	cfg.History.MaxSnapshots = flags.maxSnapshots
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Write(basePath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// registerPark adds park to the parks file of basePath.
func registerPark(basePath, park, description string) error {
	parks, err := config.LoadParks(basePath)
	if err != nil {
		return fmt.Errorf("loading parks: %w", err)
	}
	if parks.Has(park) {
		return fmt.Errorf("park %q already exists", park)
	}

	parks.Add(park, config.ParkEntry{
		Dir:         config.SanitizeParkName(park),
		Description: description,
	})
	if err := parks.Save(basePath); err != nil {
		return fmt.Errorf("saving parks: %w", err)
	}
	return nil
}

// createParkDB creates the database of park with an up-to-date schema and
// returns its path.
func createParkDB(ctx context.Context, basePath, park string) (string, error) {
	cfg, err := config.Load(basePath)
	if err != nil {
		return "", fmt.Errorf("loading config: %w", err)
	}

	path, err := cfg.DBPath(basePath, park)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating park directory: %w", err)
	}

	repo, err := sqlite.NewRepository(config.StorageConfig{Path: path})
	if err != nil {
		return "", fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		return "", fmt.Errorf("ensuring sqlite schema: %w", err)
	}
	return repo.Path(), nil
}

// parkStatus reports the number of rides and the schema version stored in
// the database at path. The database must already exist.
func parkStatus(ctx context.Context, path string) (rides int, version int64, err error) {
	if _, err := os.Stat(path); err != nil {
		return 0, 0, err
	}

	repo, err := sqlite.NewRepository(config.StorageConfig{Path: path})
	if err != nil {
		return 0, 0, fmt.Errorf("opening sqlite repository: %w", err)
	}
	defer repo.Close()

	if version, err = repo.SchemaVersion(ctx); err != nil {
		return 0, 0, fmt.Errorf("reading schema version: %w", err)
	}
	if rides, err = repo.CountRides(ctx); err != nil {
		return 0, 0, fmt.Errorf("counting rides: %w", err)
	}
	return rides, version, nil
}
