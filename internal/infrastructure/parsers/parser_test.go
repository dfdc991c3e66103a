package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

func TestJSONParser_Parse_ValidInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []RawRide
	}{
		{
			name:  "single ride",
			input: `[{"name": "Accelerator", "maintenance": 1, "wait_time": 10, "address": "Adventure"}]`,
			expected: []RawRide{
				{Name: "Accelerator", Maintenance: 1, WaitTime: 10, Address: "Adventure", LineNum: 1},
			},
		},
		{
			name:     "empty array",
			input:    "[]",
			expected: []RawRide{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &JSONParser{}
			result, err := parser.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestJSONParser_Parse_AllFields(t *testing.T) {
	input := `[{
		"name": "Battlestar Galactica",
		"maintenance": 3,
		"wait_time": 45,
		"address": "Sci-Fi City",
		"status": "SHUTDOWN",
		"tags": ["scary", "fast"]
	}]`

	parser := &JSONParser{}
	result, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result, 1)

	ride := result[0]
	assert.Equal(t, "Battlestar Galactica", ride.Name)
	assert.Equal(t, 3, ride.Maintenance)
	assert.Equal(t, 45, ride.WaitTime)
	assert.Equal(t, "Sci-Fi City", ride.Address)
	assert.Equal(t, "SHUTDOWN", ride.Status)
	assert.Equal(t, []string{"scary", "fast"}, ride.Tags)
}

func TestJSONParser_Parse_InvalidInput(t *testing.T) {
	parser := &JSONParser{}
	_, err := parser.Parse(strings.NewReader("not json"))
	require.Error(t, err)
}

func TestCSVParser_Parse_ValidInput(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []RawRide
	}{
		{
			name:  "required columns only",
			input: "name,maintenance,wait_time,address\nAccelerator,1,10,Adventure\n",
			expected: []RawRide{
				{Name: "Accelerator", Maintenance: 1, WaitTime: 10, Address: "Adventure", LineNum: 2},
			},
		},
		{
			name:     "empty CSV (header only)",
			input:    "name,maintenance,wait_time,address\n",
			expected: nil,
		},
		{
			name:  "columns in different order",
			input: "address,wait_time,maintenance,name\nAdventure,10,1,Accelerator\n",
			expected: []RawRide{
				{Name: "Accelerator", Maintenance: 1, WaitTime: 10, Address: "Adventure", LineNum: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &CSVParser{}
			result, err := parser.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCSVParser_Parse_AllColumns(t *testing.T) {
	input := "name,maintenance,wait_time,address,status,tags\n" +
		"Space Mountain,3,45,Tomorrowland,shutdown,dark;fast\n"

	parser := &CSVParser{}
	result, err := parser.Parse(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, result, 1)

	ride := result[0]
	assert.Equal(t, "Space Mountain", ride.Name)
	assert.Equal(t, "shutdown", ride.Status)
	assert.Equal(t, []string{"dark", "fast"}, ride.Tags)
}

func TestCSVParser_Parse_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		errMsg string
	}{
		{
			name:   "missing required column",
			input:  "name,maintenance,wait_time\nA,1,1\n",
			errMsg: "missing required column: address",
		},
		{
			name:   "invalid maintenance value",
			input:  "name,maintenance,wait_time,address\nA,soon,1,Z\n",
			errMsg: "line 2: invalid maintenance value",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parser := &CSVParser{}
			_, err := parser.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestYAMLParser_Parse(t *testing.T) {
	t.Run("plain list", func(t *testing.T) {
		input := "- name: Accelerator\n  maintenance: 1\n  wait_time: 10\n  address: Adventure\n  tags: [fast]\n"
		result, err := (&YAMLParser{}).Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "Accelerator", result[0].Name)
		assert.Equal(t, []string{"fast"}, result[0].Tags)
		assert.Equal(t, 1, result[0].LineNum)
	})

	t.Run("rides key", func(t *testing.T) {
		input := "rides:\n  - name: A\n    maintenance: 0\n    wait_time: 0\n    address: Z\n  - name: B\n    maintenance: 2\n    wait_time: 3\n    address: Z\n"
		result, err := (&YAMLParser{}).Parse(strings.NewReader(input))
		require.NoError(t, err)
		require.Len(t, result, 2)
		assert.Equal(t, "B", result[1].Name)
		assert.Equal(t, 6, result[1].LineNum)
	})

	t.Run("empty document", func(t *testing.T) {
		result, err := (&YAMLParser{}).Parse(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("not a list", func(t *testing.T) {
		_, err := (&YAMLParser{}).Parse(strings.NewReader("name: A\n"))
		require.Error(t, err)
	})
}

func TestToRides(t *testing.T) {
	rides, err := ToRides([]RawRide{
		{Name: " Space  Mountain ", Maintenance: 1, WaitTime: 2, Address: "Z", Status: "shutdown", Tags: []string{"b", "a"}, LineNum: 1},
		{Name: "Accelerator", Maintenance: 0, WaitTime: 0, Address: "Z", LineNum: 2},
	})
	require.NoError(t, err)
	require.Len(t, rides, 2)
	assert.Equal(t, "Space Mountain", rides[0].Name)
	assert.Equal(t, entities.StatusShutdown, rides[0].Status)
	assert.Equal(t, []string{"a", "b"}, rides[0].Tags)
	assert.Equal(t, entities.StatusOpen, rides[1].Status)

	_, err = ToRides([]RawRide{{Name: "Bad!", Address: "Z", LineNum: 7}})
	require.ErrorIs(t, err, entities.ErrValidation)
	assert.Contains(t, err.Error(), "line 7")
}

func TestForFormat(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFormat("json"))
	assert.IsType(t, &CSVParser{}, ForFormat("csv"))
	assert.IsType(t, &YAMLParser{}, ForFormat("yaml"))
	assert.Nil(t, ForFormat("unknown"))
}

func TestForFile(t *testing.T) {
	assert.IsType(t, &JSONParser{}, ForFile("rides.json"))
	assert.IsType(t, &CSVParser{}, ForFile("data.CSV"))
	assert.IsType(t, &YAMLParser{}, ForFile("park.yml"))
	assert.Nil(t, ForFile("file.txt"))
	assert.Nil(t, ForFile("noextension"))
}
