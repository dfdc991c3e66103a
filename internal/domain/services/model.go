package services

import (
	"fmt"
	"sync"

	"github.com/ersonp/thanepark/internal/domain/entities"
	"github.com/ersonp/thanepark/internal/domain/ports"
)

// ShowAllRides is the filter predicate that keeps every ride.
func ShowAllRides(entities.Ride) bool { return true }

// Model is the single gateway for reading and mutating the park.
// Mutations only enter the undo history once Commit is called; a mutation
// that is never committed is lost on the next Undo or Redo.
type Model struct {
	mu        sync.Mutex
	rides     *RideList
	history   *History
	filter    func(entities.Ride) bool
	observers []ports.ChangeObserver
}

// NewModel creates a model holding initial as both the live state and the
// first history snapshot. maxSnapshots bounds the history (0 = unbounded).
func NewModel(initial []entities.Ride, maxSnapshots int) (*Model, error) {
	rides := NewRideList()
	if err := rides.SetRides(initial); err != nil {
		return nil, fmt.Errorf("loading initial rides: %w", err)
	}
	return &Model{
		rides:   rides,
		history: NewHistory(rides.List(), maxSnapshots),
		filter:  ShowAllRides,
	}, nil
}

// Subscribe registers an observer for state changes.
func (m *Model) Subscribe(observer ports.ChangeObserver) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.observers = append(m.observers, observer)
}

// HasRide reports whether a ride with the same identity exists.
func (m *Model) HasRide(ride entities.Ride) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rides.Has(ride)
}

// FindRide returns the ride with the given name.
func (m *Model) FindRide(name string) (entities.Ride, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rides.Find(name)
}

// AddRide appends ride to the park.
func (m *Model) AddRide(ride entities.Ride) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rides.Add(ride)
}

// DeleteRide removes target from the park.
func (m *Model) DeleteRide(target entities.Ride) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rides.Remove(target)
}

// UpdateRide replaces target with replacement in place.
func (m *Model) UpdateRide(target, replacement entities.Ride) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rides.Replace(target, replacement)
}

// ResetData replaces every ride. The change is not committed.
func (m *Model) ResetData(rides []entities.Ride) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rides.SetRides(rides)
}

// Rides returns every ride in display order.
func (m *Model) Rides() []entities.Ride {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rides.List()
}

// FilteredRides returns the rides accepted by the active filter.
func (m *Model) FilteredRides() []entities.Ride {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rides.Filter(m.filter)
}

// RideAt returns the ride at a zero-based index of the filtered view.
func (m *Model) RideAt(index int) (entities.Ride, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	view := m.rides.Filter(m.filter)
	if index < 0 || index >= len(view) {
		return entities.Ride{}, fmt.Errorf("index %d of %d: %w", index+1, len(view), entities.ErrIndexOutOfRange)
	}
	return view[index], nil
}

// SetFilter replaces the active view predicate. A nil predicate shows all
// rides. Stored data is not touched.
func (m *Model) SetFilter(pred func(entities.Ride) bool) {
	if pred == nil {
		pred = ShowAllRides
	}
	m.mu.Lock()
	m.filter = pred
	change := m.changeLocked(entities.ChangeFiltered)
	m.mu.Unlock()
	m.notify(change)
}

// ShowAll clears the active filter.
func (m *Model) ShowAll() {
	m.SetFilter(nil)
}

// Commit records the current state in the undo history.
func (m *Model) Commit() {
	m.mu.Lock()
	m.history.Commit(m.rides.List())
	change := m.changeLocked(entities.ChangeCommitted)
	m.mu.Unlock()
	m.notify(change)
}

// CanUndo reports whether an earlier committed state exists.
func (m *Model) CanUndo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.history.CanUndo()
}

// CanRedo reports whether an undone state can be restored.
func (m *Model) CanRedo() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.history.CanRedo()
}

// Undo restores the previous committed state and shows all rides.
func (m *Model) Undo() error {
	return m.travel(m.history.Undo, entities.ChangeUndone)
}

// Redo restores the most recently undone state and shows all rides.
func (m *Model) Redo() error {
	return m.travel(m.history.Redo, entities.ChangeRedone)
}

func (m *Model) travel(step func() (Snapshot, error), kind entities.ChangeKind) error {
	m.mu.Lock()
	snapshot, err := step()
	if err != nil {
		m.mu.Unlock()
		return err
	}
	if err := m.rides.SetRides(snapshot.Rides()); err != nil {
		m.mu.Unlock()
		return fmt.Errorf("restoring snapshot: %w", err)
	}
	m.filter = ShowAllRides
	change := m.changeLocked(kind)
	m.mu.Unlock()

	m.notify(change)
	return nil
}

// changeLocked builds a change event. Caller must hold mu.
func (m *Model) changeLocked(kind entities.ChangeKind) entities.Change {
	return entities.Change{Kind: kind, Rides: m.rides.List()}
}

func (m *Model) notify(change entities.Change) {
	m.mu.Lock()
	observers := append([]ports.ChangeObserver(nil), m.observers...)
	m.mu.Unlock()

	for _, o := range observers {
		o.OnChange(change)
	}
}
