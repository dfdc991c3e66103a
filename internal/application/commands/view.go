package commands

import (
	"fmt"
	"strings"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

// Filter narrows the displayed list to rides matching every predicate.
type Filter struct {
	Condition entities.Condition
}

// Word returns "filter".
func (c Filter) Word() string { return WordFilter }

// Execute replaces the view filter.
func (c Filter) Execute(model Model, _ *CommandHistory) (Result, error) {
	model.SetFilter(c.Condition.Test)
	return listed(model), nil
}

// Find narrows the displayed list to rides whose name contains a keyword.
type Find struct {
	Keywords []string
}

// Word returns "find".
func (c Find) Word() string { return WordFind }

// Execute replaces the view filter.
func (c Find) Execute(model Model, _ *CommandHistory) (Result, error) {
	model.SetFilter(NameContainsKeywords(c.Keywords))
	return listed(model), nil
}

// NameContainsKeywords matches rides having a name word equal to any keyword,
// ignoring case.
func NameContainsKeywords(keywords []string) func(entities.Ride) bool {
	return func(r entities.Ride) bool {
		for _, word := range strings.Fields(r.Name) {
			for _, k := range keywords {
				if strings.EqualFold(word, k) {
					return true
				}
			}
		}
		return false
	}
}

// ViewAll clears the view filter.
type ViewAll struct{}

// Word returns "viewall".
func (ViewAll) Word() string { return WordViewAll }

// Execute shows every ride.
func (ViewAll) Execute(model Model, _ *CommandHistory) (Result, error) {
	model.ShowAll()
	return Result{Feedback: "Viewed all rides"}, nil
}

// View selects one ride. Target is first looked up as a ride name; when no
// ride has that name and Index is set, the ride at that displayed position is
// selected instead.
type View struct {
	Target string
	Index  *int // zero-based
}

// Word returns "view".
func (c View) Word() string { return WordView }

// Execute selects the ride without changing the park.
func (c View) Execute(model Model, _ *CommandHistory) (Result, error) {
	ride, ok := model.FindRide(c.Target)
	if !ok {
		if c.Index == nil {
			return Result{}, fmt.Errorf("%q: %w", entities.NormalizeName(c.Target), entities.ErrRideNotFound)
		}
		var err error
		if ride, err = model.RideAt(*c.Index); err != nil {
			return Result{}, err
		}
	}
	return Result{
		Feedback: fmt.Sprintf("Selected Ride: %s", ride.Name),
		Selected: &ride,
	}, nil
}

func listed(model Model) Result {
	return Result{Feedback: fmt.Sprintf("%d rides listed!", len(model.FilteredRides()))}
}
