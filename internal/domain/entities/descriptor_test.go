package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateDescriptor_Apply(t *testing.T) {
	original := Ride{Name: "Dumbo", Maintenance: 1, WaitTime: 10, Address: "Zone A", Status: StatusOpen, Tags: []string{"kids"}}

	t.Run("present fields override, absent fields keep", func(t *testing.T) {
		wait := 25
		tags := []string{"family", "slow"}
		updated, err := UpdateDescriptor{WaitTime: &wait, Tags: &tags}.Apply(original)
		require.NoError(t, err)

		assert.Equal(t, "Dumbo", updated.Name)
		assert.Equal(t, 1, updated.Maintenance)
		assert.Equal(t, 25, updated.WaitTime)
		assert.Equal(t, []string{"family", "slow"}, updated.Tags)
		assert.Equal(t, []string{"kids"}, original.Tags, "original is untouched")
	})

	t.Run("empty tag list clears tags", func(t *testing.T) {
		tags := []string{}
		updated, err := UpdateDescriptor{Tags: &tags}.Apply(original)
		require.NoError(t, err)
		assert.Empty(t, updated.Tags)
	})

	t.Run("invalid result is rejected", func(t *testing.T) {
		maintenance := -4
		_, err := UpdateDescriptor{Maintenance: &maintenance}.Apply(original)
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestUpdateDescriptor_IsAnyFieldSet(t *testing.T) {
	assert.False(t, UpdateDescriptor{}.IsAnyFieldSet())

	status := StatusShutdown
	assert.True(t, UpdateDescriptor{Status: &status}.IsAnyFieldSet())
}
