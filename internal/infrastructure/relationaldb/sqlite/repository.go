// Package sqlite provides a SQLite implementation of the persistence ports.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/thanepark/internal/domain/entities"
	"github.com/ersonp/thanepark/internal/infrastructure/config"
	"github.com/ersonp/thanepark/internal/infrastructure/relationaldb/sqlite/migrations"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.Store using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository opens the SQLite database at cfg.Path.
func NewRepository(cfg config.StorageConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// One connection: pragmas apply per connection and ":memory:" databases
	// are private to the connection that created them.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema applies pending migrations.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, r.db, migrations.FS)
	if err != nil {
		return fmt.Errorf("creating migration provider: %w", err)
	}
	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}
	return nil
}

// SchemaVersion returns the version of the last applied migration.
func (r *Repository) SchemaVersion(ctx context.Context) (int64, error) {
	provider, err := goose.NewProvider(goose.DialectSQLite3, r.db, migrations.FS)
	if err != nil {
		return 0, fmt.Errorf("creating migration provider: %w", err)
	}
	v, err := provider.GetDBVersion(ctx)
	if err != nil {
		return 0, fmt.Errorf("reading schema version: %w", err)
	}
	return v, nil
}

// LoadRides returns all rides in display order.
func (r *Repository) LoadRides(ctx context.Context) ([]entities.Ride, error) {
	query := `
		SELECT name, maintenance, wait_time, address, status, tags
		FROM rides
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying rides: %w", err)
	}
	defer rows.Close()

	var rides []entities.Ride
	for rows.Next() {
		ride, err := scanRide(rows)
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, rows.Err()
}

// FindRide returns the ride with the given name, or nil if none exists.
func (r *Repository) FindRide(ctx context.Context, name string) (*entities.Ride, error) {
	query := `
		SELECT name, maintenance, wait_time, address, status, tags
		FROM rides
		WHERE name = ?
	`
	row := r.db.QueryRowContext(ctx, query, entities.NormalizeName(name))

	ride, err := scanRide(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ride, nil
}

// CountRides returns the number of stored rides.
func (r *Repository) CountRides(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rides`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting rides: %w", err)
	}
	return count, nil
}

// SaveRides replaces every stored ride with rides, keeping their order.
func (r *Repository) SaveRides(ctx context.Context, rides []entities.Ride) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	if _, err := tx.ExecContext(ctx, `DELETE FROM rides`); err != nil {
		return fmt.Errorf("clearing rides: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO rides (name, position, maintenance, wait_time, address, status, tags, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := timeNow().UTC()
	for i, ride := range rides {
		tags := ride.Tags
		if tags == nil {
			tags = []string{}
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			return fmt.Errorf("marshaling tags: %w", err)
		}
		if _, err := stmt.ExecContext(ctx,
			ride.Key(),
			i,
			ride.Maintenance,
			ride.WaitTime,
			ride.Address,
			string(ride.Status),
			string(tagsJSON),
			now,
		); err != nil {
			return fmt.Errorf("inserting ride %q: %w", ride.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rides: %w", err)
	}
	return nil
}

// LogCommand appends an entry to the command log.
func (r *Repository) LogCommand(ctx context.Context, entry entities.CommandEntry) error {
	query := `
		INSERT INTO command_log (id, session_id, input, feedback, succeeded, executed_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID,
		entry.SessionID,
		entry.Input,
		entry.Feedback,
		entry.Succeeded,
		entry.ExecutedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("logging command: %w", err)
	}
	return nil
}

// ListCommands returns up to limit entries, most recent first.
// A limit of zero or less returns every entry.
func (r *Repository) ListCommands(ctx context.Context, limit int) ([]entities.CommandEntry, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `
		SELECT id, session_id, input, feedback, succeeded, executed_at
		FROM command_log
		ORDER BY seq DESC
		LIMIT ?
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("querying command log: %w", err)
	}
	defer rows.Close()

	var entries []entities.CommandEntry
	if limit > 0 {
		entries = make([]entities.CommandEntry, 0, limit)
	}
	for rows.Next() {
		var entry entities.CommandEntry
		if err := rows.Scan(
			&entry.ID,
			&entry.SessionID,
			&entry.Input,
			&entry.Feedback,
			&entry.Succeeded,
			&entry.ExecutedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning command entry: %w", err)
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRide(row rowScanner) (entities.Ride, error) {
	var (
		ride     entities.Ride
		status   string
		tagsJSON string
	)
	if err := row.Scan(
		&ride.Name,
		&ride.Maintenance,
		&ride.WaitTime,
		&ride.Address,
		&status,
		&tagsJSON,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return entities.Ride{}, err
		}
		return entities.Ride{}, fmt.Errorf("scanning ride: %w", err)
	}
	ride.Status = entities.Status(status)

	var tags []string
	if err := json.Unmarshal([]byte(tagsJSON), &tags); err != nil {
		return entities.Ride{}, fmt.Errorf("unmarshaling tags of %q: %w", ride.Name, err)
	}
	ride.Tags = entities.NormalizeTags(tags)
	return ride, nil
}
