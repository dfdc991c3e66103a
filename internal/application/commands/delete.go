package commands

import "fmt"

// Delete removes the ride at a position of the displayed list.
type Delete struct {
	Index int // zero-based
}

// Word returns "delete".
func (c Delete) Word() string { return WordDelete }

// Execute deletes the ride and commits.
func (c Delete) Execute(model Model, _ *CommandHistory) (Result, error) {
	target, err := model.RideAt(c.Index)
	if err != nil {
		return Result{}, err
	}
	if err := model.DeleteRide(target); err != nil {
		return Result{}, fmt.Errorf("deleting ride: %w", err)
	}
	model.Commit()
	return Result{Feedback: fmt.Sprintf("Deleted Ride: %s", target)}, nil
}
