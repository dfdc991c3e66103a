package commands

import (
	"fmt"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

// Add puts a new ride into the park.
type Add struct {
	Ride entities.Ride
}

// Word returns "add".
func (c Add) Word() string { return WordAdd }

// Execute adds the ride and commits.
func (c Add) Execute(model Model, _ *CommandHistory) (Result, error) {
	if model.HasRide(c.Ride) {
		return Result{}, entities.ErrDuplicateRide
	}
	if err := model.AddRide(c.Ride); err != nil {
		return Result{}, fmt.Errorf("adding ride: %w", err)
	}
	model.Commit()
	return Result{Feedback: fmt.Sprintf("New ride added: %s", c.Ride)}, nil
}
