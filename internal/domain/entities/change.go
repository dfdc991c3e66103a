package entities

// ChangeKind describes what happened to the park state.
type ChangeKind string

const (
	ChangeCommitted ChangeKind = "committed"
	ChangeUndone    ChangeKind = "undone"
	ChangeRedone    ChangeKind = "redone"
	ChangeFiltered  ChangeKind = "filtered"
)

// Change is delivered to observers after the model state moves.
// Rides is a copy of the full ride list at that moment.
type Change struct {
	Kind  ChangeKind
	Rides []Ride
}

// Persistent reports whether the change altered stored data.
func (c Change) Persistent() bool {
	return c.Kind != ChangeFiltered
}
