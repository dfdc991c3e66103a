package services

import (
	"fmt"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

// Snapshot is an immutable copy of the ride list at one point in time.
type Snapshot struct {
	rides []entities.Ride
}

// NewSnapshot deep-copies rides into a snapshot.
func NewSnapshot(rides []entities.Ride) Snapshot {
	return Snapshot{rides: entities.CloneRides(rides)}
}

// Rides returns a copy of the captured rides.
func (s Snapshot) Rides() []entities.Ride {
	return entities.CloneRides(s.rides)
}

// Len returns the number of captured rides.
func (s Snapshot) Len() int {
	return len(s.rides)
}

// History is a linear sequence of snapshots with a cursor on the current one.
// It always holds at least the initial snapshot. Committing after an undo
// discards the snapshots that could have been redone.
type History struct {
	snapshots []Snapshot
	cursor    int
	max       int // 0 means unbounded
}

// NewHistory creates a history whose only snapshot is initial.
// maxSnapshots bounds the number of retained snapshots; 0 keeps all of them.
func NewHistory(initial []entities.Ride, maxSnapshots int) *History {
	if maxSnapshots < 0 {
		maxSnapshots = 0
	}
	return &History{
		snapshots: []Snapshot{NewSnapshot(initial)},
		max:       maxSnapshots,
	}
}

// Commit records rides as the new current snapshot.
func (h *History) Commit(rides []entities.Ride) {
	// Drop redo states; clear the tail so discarded snapshots can be collected.
	clear(h.snapshots[h.cursor+1:])
	h.snapshots = append(h.snapshots[:h.cursor+1], NewSnapshot(rides))
	h.cursor++

	if h.max > 0 && len(h.snapshots) > h.max {
		excess := len(h.snapshots) - h.max
		h.snapshots = append([]Snapshot(nil), h.snapshots[excess:]...)
		h.cursor -= excess
	}
}

// CanUndo reports whether a snapshot exists before the cursor.
func (h *History) CanUndo() bool {
	return h.cursor > 0
}

// CanRedo reports whether a snapshot exists after the cursor.
func (h *History) CanRedo() bool {
	return h.cursor < len(h.snapshots)-1
}

// Undo moves the cursor back and returns the snapshot it now points at.
func (h *History) Undo() (Snapshot, error) {
	if !h.CanUndo() {
		return Snapshot{}, fmt.Errorf("no more commands to undo: %w", entities.ErrNoHistory)
	}
	h.cursor--
	return h.snapshots[h.cursor], nil
}

// Redo moves the cursor forward and returns the snapshot it now points at.
func (h *History) Redo() (Snapshot, error) {
	if !h.CanRedo() {
		return Snapshot{}, fmt.Errorf("no more commands to redo: %w", entities.ErrNoHistory)
	}
	h.cursor++
	return h.snapshots[h.cursor], nil
}

// Current returns the snapshot under the cursor.
func (h *History) Current() Snapshot {
	return h.snapshots[h.cursor]
}

// Len returns the number of retained snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Cursor returns the zero-based position of the current snapshot.
func (h *History) Cursor() int {
	return h.cursor
}
