package parsers

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSONParser parses rides from a JSON array.
type JSONParser struct{}

// Parse reads JSON from the reader and returns parsed rides.
func (p *JSONParser) Parse(r io.Reader) ([]RawRide, error) {
	var rides []RawRide

	decoder := json.NewDecoder(r)
	if err := decoder.Decode(&rides); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}

	// Set line numbers (array index + 1, 1-indexed)
	for i := range rides {
		rides[i].LineNum = i + 1
	}

	return rides, nil
}
