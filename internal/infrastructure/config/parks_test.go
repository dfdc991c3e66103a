package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParksConfig(t *testing.T) {
	dir := t.TempDir()

	parks, err := LoadParks(dir)
	require.NoError(t, err)
	assert.Empty(t, parks.Parks)
	assert.False(t, ParksExists(dir))

	_, err = parks.Get("east")
	require.Error(t, err)

	parks.Add("east", ParkEntry{Dir: ParkDir(dir, "east"), Description: "East wing"})
	parks.Add("west", ParkEntry{Dir: ParkDir(dir, "west")})
	require.NoError(t, parks.Save(dir))
	assert.True(t, ParksExists(dir))

	loaded, err := LoadParks(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"east", "west"}, loaded.Names())
	assert.True(t, loaded.Has("east"))

	entry, err := loaded.Get("east")
	require.NoError(t, err)
	assert.Equal(t, "East wing", entry.Description)

	_, err = loaded.Get("north")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: east, west")

	loaded.Remove("east")
	assert.False(t, loaded.Has("east"))
}
