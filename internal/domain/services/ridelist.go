package services

import (
	"fmt"
	"slices"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

// RideList is an ordered collection of rides in which no two rides share an
// identity key. Order is insertion order, which is also display order.
// Every mutating method is all-or-nothing.
type RideList struct {
	rides []entities.Ride
	index map[string]int // identity key -> position in rides
}

// NewRideList returns an empty list.
func NewRideList() *RideList {
	return &RideList{index: make(map[string]int)}
}

// Has reports whether a ride with the same identity is present.
func (l *RideList) Has(ride entities.Ride) bool {
	_, ok := l.index[ride.Key()]
	return ok
}

// Find returns the ride whose identity matches name.
func (l *RideList) Find(name string) (entities.Ride, bool) {
	i, ok := l.index[entities.NormalizeName(name)]
	if !ok {
		return entities.Ride{}, false
	}
	return l.rides[i].Clone(), true
}

// Len returns the number of rides.
func (l *RideList) Len() int {
	return len(l.rides)
}

// Add appends ride.
func (l *RideList) Add(ride entities.Ride) error {
	if l.Has(ride) {
		return fmt.Errorf("adding %q: %w", ride.Name, entities.ErrDuplicateRide)
	}
	l.index[ride.Key()] = len(l.rides)
	l.rides = append(l.rides, ride.Clone())
	return nil
}

// Remove deletes the ride with the same identity as ride.
func (l *RideList) Remove(ride entities.Ride) error {
	i, ok := l.index[ride.Key()]
	if !ok {
		return fmt.Errorf("removing %q: %w", ride.Name, entities.ErrRideNotFound)
	}
	l.rides = slices.Delete(l.rides, i, i+1)
	l.reindex()
	return nil
}

// Replace swaps target for replacement, keeping target's position.
func (l *RideList) Replace(target, replacement entities.Ride) error {
	i, ok := l.index[target.Key()]
	if !ok {
		return fmt.Errorf("replacing %q: %w", target.Name, entities.ErrRideNotFound)
	}
	if !target.IsSameRide(replacement) && l.Has(replacement) {
		return fmt.Errorf("replacing %q with %q: %w", target.Name, replacement.Name, entities.ErrDuplicateRide)
	}

	delete(l.index, target.Key())
	l.rides[i] = replacement.Clone()
	l.index[replacement.Key()] = i
	return nil
}

// SetRides replaces the whole content. Input with duplicate identities is
// rejected and the list is left unchanged.
func (l *RideList) SetRides(rides []entities.Ride) error {
	index := make(map[string]int, len(rides))
	for i, r := range rides {
		if _, dup := index[r.Key()]; dup {
			return fmt.Errorf("setting rides: %q: %w", r.Name, entities.ErrDuplicateRide)
		}
		index[r.Key()] = i
	}
	l.rides = entities.CloneRides(rides)
	l.index = index
	return nil
}

// List returns a copy of all rides in order.
func (l *RideList) List() []entities.Ride {
	return entities.CloneRides(l.rides)
}

// Filter returns copies of the rides matching pred, in order.
// A nil predicate matches everything.
func (l *RideList) Filter(pred func(entities.Ride) bool) []entities.Ride {
	out := make([]entities.Ride, 0, len(l.rides))
	for _, r := range l.rides {
		if pred == nil || pred(r) {
			out = append(out, r.Clone())
		}
	}
	return out
}

// Query returns the rides satisfying every predicate.
func (l *RideList) Query(predicates ...entities.AttributePredicate) []entities.Ride {
	return l.Filter(entities.Condition(predicates).Test)
}

func (l *RideList) reindex() {
	clear(l.index)
	for i, r := range l.rides {
		l.index[r.Key()] = i
	}
}
