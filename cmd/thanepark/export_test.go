package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

func testRides(t *testing.T) []entities.Ride {
	t.Helper()
	specs := []struct {
		name        string
		maintenance int
		wait        int
	}{
		{"Space Mountain", 10, 45},
		{"Splash Mountain", 2, 5},
		{"Carousel", 40, 1},
	}
	rides := make([]entities.Ride, 0, len(specs))
	for _, s := range specs {
		r, err := entities.NewRide(s.name, s.maintenance, s.wait, "Main Street", entities.StatusOpen, nil)
		require.NoError(t, err)
		rides = append(rides, r)
	}
	return rides
}

func rideNames(rides []entities.Ride) []string {
	names := make([]string, len(rides))
	for i, r := range rides {
		names[i] = r.Name
	}
	return names
}

func TestSelectRides_NoCriteria(t *testing.T) {
	rides, err := selectRides(testRides(t), "", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Space Mountain", "Splash Mountain", "Carousel"}, rideNames(rides))
}

func TestSelectRides_Filter(t *testing.T) {
	rides, err := selectRides(testRides(t), "m/>5", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Space Mountain", "Carousel"}, rideNames(rides))
}

func TestSelectRides_Find(t *testing.T) {
	rides, err := selectRides(testRides(t), "", "MOUNTAIN")
	require.NoError(t, err)
	assert.Equal(t, []string{"Space Mountain", "Splash Mountain"}, rideNames(rides))
}

func TestSelectRides_FilterAndFind(t *testing.T) {
	rides, err := selectRides(testRides(t), "w/<10", "mountain")
	require.NoError(t, err)
	assert.Equal(t, []string{"Splash Mountain"}, rideNames(rides))
}

func TestSelectRides_InvalidFilter(t *testing.T) {
	_, err := selectRides(testRides(t), "m/abc", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing filter")
}

func TestWriteOutput_Stdout(t *testing.T) {
	var buf bytes.Buffer
	err := writeOutput("", &buf, func(w io.Writer) error {
		_, err := io.WriteString(w, "hello")
		return err
	})
	require.NoError(t, err)
	assert.Equal(t, "hello", buf.String())
}

func TestWriteOutput_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rides.json")
	var buf bytes.Buffer

	err := writeOutput(path, &buf, func(w io.Writer) error {
		_, err := io.WriteString(w, "[]\n")
		return err
	})
	require.NoError(t, err)
	assert.Empty(t, buf.String())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", string(data))
}

func TestReadRides_SplitsInvalidRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rides.csv")
	content := "name,maintenance,wait_time,address,status,tags\n" +
		"Space Mountain,10,45,Tomorrowland,open,dark;fast\n" +
		"Broken,-1,5,Nowhere,open,\n" +
		"Space  Mountain,3,3,Elsewhere,open,\n" +
		"Carousel,40,1,Fantasyland,shutdown,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	rides, invalid, err := readRides(path, "auto", false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Space Mountain", "Carousel"}, rideNames(rides))
	assert.Equal(t, []string{"dark", "fast"}, rides[0].Tags)
	assert.Equal(t, entities.StatusShutdown, rides[1].Status)

	require.Len(t, invalid, 2)
	assert.ErrorIs(t, invalid[0], entities.ErrValidation)
	assert.ErrorIs(t, invalid[1], entities.ErrDuplicateRide)
}

func TestReadRides_UnknownFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rides.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	_, _, err := readRides(path, "auto", false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format")
}

func TestReadRides_StrictStopsAtInvalidRecord(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.csv")
	require.NoError(t, os.WriteFile(bad, []byte("name,maintenance,wait_time,address\n"+
		"Carousel,40,1,Fantasyland\n"+
		"Broken,-1,5,Nowhere\n"), 0644))

	_, _, err := readRides(bad, "auto", true)
	require.Error(t, err)
	assert.ErrorIs(t, err, entities.ErrValidation)
	assert.Contains(t, err.Error(), "line 3")

	good := filepath.Join(dir, "good.csv")
	require.NoError(t, os.WriteFile(good, []byte("name,maintenance,wait_time,address\n"+
		"Carousel,40,1,Fantasyland\n"), 0644))

	rides, invalid, err := readRides(good, "csv", true)
	require.NoError(t, err)
	assert.Empty(t, invalid)
	assert.Equal(t, []string{"Carousel"}, rideNames(rides))
}
