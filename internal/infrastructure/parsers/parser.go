// Package parsers provides parsers for importing rides from various formats.
package parsers

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ersonp/thanepark/internal/domain/entities"
)

// RawRide represents a ride parsed from an external source before validation.
type RawRide struct {
	Name        string   `json:"name" yaml:"name"`
	Maintenance int      `json:"maintenance" yaml:"maintenance"`
	WaitTime    int      `json:"wait_time" yaml:"wait_time"`
	Address     string   `json:"address" yaml:"address"`
	Status      string   `json:"status,omitempty" yaml:"status,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
	LineNum     int      `json:"-" yaml:"-"` // Line number in source file (set by parser)
}

// ToRide validates the raw values and builds a ride.
func (r RawRide) ToRide() (entities.Ride, error) {
	status := entities.Status(strings.ToUpper(strings.TrimSpace(r.Status)))
	ride, err := entities.NewRide(r.Name, r.Maintenance, r.WaitTime, r.Address, status, r.Tags)
	if err != nil {
		return entities.Ride{}, fmt.Errorf("line %d: %w", r.LineNum, err)
	}
	return ride, nil
}

// ToRides converts every raw ride, stopping at the first invalid one.
func ToRides(raw []RawRide) ([]entities.Ride, error) {
	rides := make([]entities.Ride, 0, len(raw))
	for _, r := range raw {
		ride, err := r.ToRide()
		if err != nil {
			return nil, err
		}
		rides = append(rides, ride)
	}
	return rides, nil
}

// Parser defines the interface for parsing rides from various formats.
type Parser interface {
	Parse(r io.Reader) ([]RawRide, error)
}

// ForFormat returns the appropriate parser for the given format.
// Supported formats: "json", "csv", "yaml".
func ForFormat(format string) Parser {
	switch strings.ToLower(format) {
	case "json":
		return &JSONParser{}
	case "csv":
		return &CSVParser{}
	case "yaml", "yml":
		return &YAMLParser{}
	default:
		return nil
	}
}

// ForFile returns the appropriate parser based on file extension.
func ForFile(filename string) Parser {
	return ForFormat(strings.TrimPrefix(filepath.Ext(filename), "."))
}
