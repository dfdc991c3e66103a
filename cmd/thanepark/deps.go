package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ersonp/thanepark/internal/application/handlers"
	"github.com/ersonp/thanepark/internal/domain/services"
	"github.com/ersonp/thanepark/internal/infrastructure/config"
	"github.com/ersonp/thanepark/internal/infrastructure/relationaldb/sqlite"
	"github.com/ersonp/thanepark/internal/infrastructure/report"
)

// Deps holds high-level dependencies for commands.
type Deps struct {
	BasePath string
	Config   *config.Config
	Logger   *slog.Logger
	Logic    *handlers.Logic
}

// internalDeps holds all dependencies including low-level components.
type internalDeps struct {
	Deps
	repo *sqlite.Repository
}

// withDeps loads config and builds dependencies, then calls the provided
// function. It handles cleanup automatically.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	return withInternalDeps(ctx, func(d *internalDeps) error {
		return fn(&d.Deps)
	})
}

// withRepo provides direct repository access for commands that only read
// or export stored data.
func withRepo(ctx context.Context, fn func(*Deps, *sqlite.Repository) error) error {
	return withInternalDeps(ctx, func(d *internalDeps) error {
		return fn(&d.Deps, d.repo)
	})
}

// withInternalDeps provides access to all dependencies including low-level
// components.
func withInternalDeps(ctx context.Context, fn func(*internalDeps) error) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := newLogger(cfg.Log, os.Stderr)

	if err := checkPark(cwd, globalPark); err != nil {
		return err
	}

	dbPath, err := cfg.DBPath(cwd, globalPark)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	repo, err := sqlite.NewRepository(config.StorageConfig{Path: dbPath})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer repo.Close()

	if err := repo.EnsureSchema(ctx); err != nil {
		return fmt.Errorf("ensuring sqlite schema: %w", err)
	}

	rides, err := repo.LoadRides(ctx)
	if err != nil {
		return fmt.Errorf("loading rides: %w", err)
	}

	model, err := services.NewModel(rides, cfg.History.MaxSnapshots)
	if err != nil {
		return fmt.Errorf("creating model: %w", err)
	}

	reports := report.NewHistoryWriter(cfg.ReportDir(cwd))
	logger.Debug("park loaded", "park", globalPark, "db", dbPath, "rides", len(rides))

	deps := &internalDeps{
		Deps: Deps{
			BasePath: cwd,
			Config:   cfg,
			Logger:   logger,
			Logic:    handlers.NewLogic(model, repo, reports, logger),
		},
		repo: repo,
	}

	return fn(deps)
}

// checkPark rejects a park that is not registered in a project that keeps a
// parks file. The default park needs no registration.
func checkPark(basePath, park string) error {
	if park == DefaultPark || !config.ParksExists(basePath) {
		return nil
	}
	parks, err := config.LoadParks(basePath)
	if err != nil {
		return fmt.Errorf("loading parks: %w", err)
	}
	if _, err := parks.Get(park); err != nil {
		return fmt.Errorf("%w (use 'thanepark parks create')", err)
	}
	return nil
}
