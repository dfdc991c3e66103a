package commands

import (
	"fmt"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

// Update edits the ride at a position of the displayed list.
type Update struct {
	Index      int // zero-based
	Descriptor entities.UpdateDescriptor
}

// Word returns "update".
func (c Update) Word() string { return WordUpdate }

// Execute merges the descriptor onto the selected ride and commits.
func (c Update) Execute(model Model, _ *CommandHistory) (Result, error) {
	if !c.Descriptor.IsAnyFieldSet() {
		return Result{}, ErrNothingToUpdate
	}
	edited, err := replaceAt(model, c.Index, c.Descriptor)
	if err != nil {
		return Result{}, err
	}
	return Result{Feedback: fmt.Sprintf("Updated Ride: %s", edited)}, nil
}

// replaceAt applies d to the ride at index, shows all rides and commits.
func replaceAt(model Model, index int, d entities.UpdateDescriptor) (entities.Ride, error) {
	target, err := model.RideAt(index)
	if err != nil {
		return entities.Ride{}, err
	}
	edited, err := d.Apply(target)
	if err != nil {
		return entities.Ride{}, err
	}
	if !target.IsSameRide(edited) && model.HasRide(edited) {
		return entities.Ride{}, entities.ErrDuplicateRide
	}
	if err := model.UpdateRide(target, edited); err != nil {
		return entities.Ride{}, fmt.Errorf("updating ride: %w", err)
	}
	model.ShowAll()
	model.Commit()
	return edited, nil
}
