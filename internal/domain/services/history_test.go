package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

func TestHistory_Fresh(t *testing.T) {
	h := NewHistory(nil, 0)

	assert.False(t, h.CanUndo())
	assert.False(t, h.CanRedo())
	assert.Equal(t, 1, h.Len())

	_, err := h.Undo()
	assert.ErrorIs(t, err, entities.ErrNoHistory)
	_, err = h.Redo()
	assert.ErrorIs(t, err, entities.ErrNoHistory)
}

func TestHistory_UndoRedo(t *testing.T) {
	a, b := mustRide(t, "A", 1, 1), mustRide(t, "B", 2, 2)
	h := NewHistory([]entities.Ride{a}, 0)
	h.Commit([]entities.Ride{a, b})

	require.True(t, h.CanUndo())
	s, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, names(s.Rides()))
	assert.True(t, h.CanRedo())

	s, err = h.Redo()
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, names(s.Rides()))
	assert.False(t, h.CanRedo())
}

func TestHistory_CommitAfterUndoDropsRedo(t *testing.T) {
	h := NewHistory(nil, 0)
	h.Commit([]entities.Ride{mustRide(t, "A", 1, 1)})
	h.Commit([]entities.Ride{mustRide(t, "B", 1, 1)})

	_, err := h.Undo()
	require.NoError(t, err)
	_, err = h.Undo()
	require.NoError(t, err)
	require.True(t, h.CanRedo())

	h.Commit([]entities.Ride{mustRide(t, "C", 1, 1)})
	assert.False(t, h.CanRedo())
	assert.Equal(t, 2, h.Len())
	assert.Equal(t, 1, h.Cursor())
	assert.Equal(t, []string{"C"}, names(h.Current().Rides()))
}

func TestHistory_SnapshotIsolation(t *testing.T) {
	rides := []entities.Ride{mustRide(t, "A", 1, 1, "kids")}
	h := NewHistory(nil, 0)
	h.Commit(rides)

	rides[0].Name = "Mutated"
	rides[0].Tags[0] = "mutated"

	got := h.Current().Rides()
	assert.Equal(t, "A", got[0].Name)
	assert.Equal(t, []string{"kids"}, got[0].Tags)

	got[0].Name = "Mutated again"
	assert.Equal(t, "A", h.Current().Rides()[0].Name)
}

func TestHistory_MaxSnapshots(t *testing.T) {
	h := NewHistory(nil, 3)
	for _, n := range []string{"A", "B", "C", "D"} {
		h.Commit([]entities.Ride{mustRide(t, n, 1, 1)})
	}

	assert.Equal(t, 3, h.Len())
	assert.Equal(t, 2, h.Cursor())

	_, err := h.Undo()
	require.NoError(t, err)
	s, err := h.Undo()
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, names(s.Rides()))
	assert.False(t, h.CanUndo(), "oldest snapshots were dropped")
}

func TestHistory_MaxSnapshotsCountsCurrentState(t *testing.T) {
	h := NewHistory(nil, 1)
	h.Commit([]entities.Ride{mustRide(t, "A", 1, 1)})

	assert.Equal(t, 1, h.Len())
	assert.False(t, h.CanUndo())

	h = NewHistory(nil, 2)
	h.Commit([]entities.Ride{mustRide(t, "A", 1, 1)})
	h.Commit([]entities.Ride{mustRide(t, "B", 1, 1)})

	_, err := h.Undo()
	require.NoError(t, err)
	assert.False(t, h.CanUndo(), "two snapshots allow one undo")
}
