// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

// Store is a mock implementation of ports.Store.
type Store struct {
	Rides    []entities.Ride
	Commands []entities.CommandEntry

	LoadErr   error
	SaveErr   error
	LogErr    error
	SchemaErr error

	// Call tracking
	SaveRidesCallCount  int
	LogCommandCallCount int
	Closed              bool
}

// NewStore creates a mock store seeded with rides.
func NewStore(rides ...entities.Ride) *Store {
	return &Store{Rides: entities.CloneRides(rides)}
}

// EnsureSchema returns the configured error.
func (m *Store) EnsureSchema(_ context.Context) error {
	return m.SchemaErr
}

// Close marks the store as closed.
func (m *Store) Close() error {
	m.Closed = true
	return nil
}

// LoadRides returns a copy of the stored rides.
func (m *Store) LoadRides(_ context.Context) ([]entities.Ride, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return entities.CloneRides(m.Rides), nil
}

// SaveRides replaces the stored rides.
func (m *Store) SaveRides(_ context.Context, rides []entities.Ride) error {
	m.SaveRidesCallCount++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Rides = entities.CloneRides(rides)
	return nil
}

// LogCommand appends an entry.
func (m *Store) LogCommand(_ context.Context, entry entities.CommandEntry) error {
	m.LogCommandCallCount++
	if m.LogErr != nil {
		return m.LogErr
	}
	m.Commands = append(m.Commands, entry)
	return nil
}

// ListCommands returns up to limit entries, most recent first.
func (m *Store) ListCommands(_ context.Context, limit int) ([]entities.CommandEntry, error) {
	if m.LogErr != nil {
		return nil, m.LogErr
	}
	out := make([]entities.CommandEntry, 0, len(m.Commands))
	for i := len(m.Commands) - 1; i >= 0; i-- {
		if limit > 0 && len(out) == limit {
			break
		}
		out = append(out, m.Commands[i])
	}
	return out, nil
}
