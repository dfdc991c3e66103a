package commands

import "fmt"

// Clear removes every ride.
type Clear struct{}

// Word returns "clear".
func (Clear) Word() string { return WordClear }

// Execute empties the park and commits.
func (Clear) Execute(model Model, _ *CommandHistory) (Result, error) {
	if err := model.ResetData(nil); err != nil {
		return Result{}, fmt.Errorf("clearing park: %w", err)
	}
	model.ShowAll()
	model.Commit()
	return Result{Feedback: "Thane Park has been cleared!"}, nil
}
