package commands

import (
	"fmt"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

// Import loads rides in bulk. With Replace set the park is emptied first;
// otherwise rides already in the park are skipped.
type Import struct {
	Rides   []entities.Ride
	Replace bool
}

// Word returns "import".
func (Import) Word() string { return WordImport }

// Execute adds the rides and commits once.
func (c Import) Execute(model Model, _ *CommandHistory) (Result, error) {
	if c.Replace {
		if err := model.ResetData(c.Rides); err != nil {
			return Result{}, fmt.Errorf("replacing rides: %w", err)
		}
		model.ShowAll()
		model.Commit()
		return Result{Feedback: fmt.Sprintf("Imported %d rides (0 skipped)", len(c.Rides))}, nil
	}

	added, skipped := 0, 0
	for _, r := range c.Rides {
		if model.HasRide(r) {
			skipped++
			continue
		}
		if err := model.AddRide(r); err != nil {
			return Result{}, fmt.Errorf("adding %q: %w", r.Name, err)
		}
		added++
	}
	if added > 0 {
		model.Commit()
	}
	return Result{Feedback: fmt.Sprintf("Imported %d rides (%d skipped)", added, skipped)}, nil
}
