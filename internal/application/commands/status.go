package commands

import (
	"fmt"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

// Shutdown marks the ride at a position of the displayed list as shut down.
type Shutdown struct {
	Index int // zero-based
}

// Word returns "shutdown".
func (c Shutdown) Word() string { return WordShutdown }

// Execute sets the status and commits.
func (c Shutdown) Execute(model Model, _ *CommandHistory) (Result, error) {
	edited, err := setStatus(model, c.Index, entities.StatusShutdown, ErrAlreadyShutdown)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Ride is shut down: %s", edited)}, nil
}

// Open marks the ride at a position of the displayed list as open.
type Open struct {
	Index int // zero-based
}

// Word returns "open".
func (c Open) Word() string { return WordOpen }

// Execute sets the status and commits.
func (c Open) Execute(model Model, _ *CommandHistory) (Result, error) {
	edited, err := setStatus(model, c.Index, entities.StatusOpen, ErrAlreadyOpen)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Ride is opened: %s", edited)}, nil
}

func setStatus(model Model, index int, status entities.Status, unchanged error) (entities.Ride, error) {
	target, err := model.RideAt(index)
	if err != nil {
		return entities.Ride{}, err
	}
	if target.IsOpen() == (status == entities.StatusOpen) {
		return entities.Ride{}, unchanged
	}
	return replaceAt(model, index, entities.UpdateDescriptor{Status: &status})
}
