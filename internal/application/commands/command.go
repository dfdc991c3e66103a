// Package commands implements the operations a user can run against the park.
// Each command validates its input against the current state before touching
// the model, so a failed command leaves the park exactly as it was.
package commands

import (
	"github.com/ersonp/thanepark/internal/domain/entities"
)

// Model is the part of services.Model that commands depend on.
type Model interface {
	HasRide(ride entities.Ride) bool
	FindRide(name string) (entities.Ride, bool)
	AddRide(ride entities.Ride) error
	DeleteRide(target entities.Ride) error
	UpdateRide(target, replacement entities.Ride) error
	ResetData(rides []entities.Ride) error
	Rides() []entities.Ride
	FilteredRides() []entities.Ride
	RideAt(index int) (entities.Ride, error)
	SetFilter(pred func(entities.Ride) bool)
	ShowAll()
	Commit()
	CanUndo() bool
	CanRedo() bool
	Undo() error
	Redo() error
}

// Command is a parsed user request.
type Command interface {
	// Word is the keyword that invokes the command.
	Word() string

	// Execute runs the command. A returned error means nothing was changed.
	Execute(model Model, history *CommandHistory) (Result, error)
}

// Result is what a successful command reports back to the user.
type Result struct {
	// Command is the word of the command that produced the result.
	Command string

	Feedback string

	// Selected is set by commands that focus a single ride.
	Selected *entities.Ride

	// ShowHistoryReport asks the caller to render the full command report.
	ShowHistoryReport bool

	// ReportPath is filled in by the caller once a report has been written.
	ReportPath string

	Exit bool
}
