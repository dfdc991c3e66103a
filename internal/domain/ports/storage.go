// Package ports defines interfaces for external service communication.
package ports

import (
	"context"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

// RideStorage is the persistence collaborator for the ride inventory.
// The storage format is opaque to the domain: it loads the initial ride list
// at startup and is handed the full list after every persistent change.
type RideStorage interface {
	// LoadRides returns the stored rides in display order.
	LoadRides(ctx context.Context) ([]entities.Ride, error)

	// SaveRides replaces the stored rides with the given list.
	SaveRides(ctx context.Context, rides []entities.Ride) error
}

// CommandLog records entered commands across sessions.
type CommandLog interface {
	// LogCommand appends an entry to the log.
	LogCommand(ctx context.Context, entry entities.CommandEntry) error

	// ListCommands returns up to limit entries, most recent first.
	ListCommands(ctx context.Context, limit int) ([]entities.CommandEntry, error)
}

// Store combines both persistence roles with lifecycle management.
type Store interface {
	RideStorage
	CommandLog

	// EnsureSchema brings the storage schema up to date.
	EnsureSchema(ctx context.Context) error

	// Close releases the underlying connection.
	Close() error
}
