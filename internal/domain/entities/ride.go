// Package entities contains core domain data structures.
package entities

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
)

// Status is the operating state of a ride.
type Status string

const (
	StatusOpen     Status = "OPEN"
	StatusShutdown Status = "SHUTDOWN"
)

// IsValid reports whether s is a known status.
func (s Status) IsValid() bool {
	return s == StatusOpen || s == StatusShutdown
}

var (
	// reName allows letters, digits and spaces, starting with a letter or digit.
	reName = regexp.MustCompile(`^[\p{L}\p{N}][\p{L}\p{N} ]*$`)
	// reTag allows a single alphanumeric word.
	reTag = regexp.MustCompile(`^[\p{L}\p{N}]+$`)
	// reSpaces matches runs of whitespace inside a name.
	reSpaces = regexp.MustCompile(`\s+`)
)

// Ride is a single attraction in the park. Rides are values: editing one
// produces a new Ride that replaces the old one in the store.
type Ride struct {
	Name        string   `json:"name"`
	Maintenance int      `json:"maintenance"` // days since last maintenance
	WaitTime    int      `json:"wait_time"`   // minutes
	Address     string   `json:"address"`
	Status      Status   `json:"status"`
	Tags        []string `json:"tags,omitempty"` // sorted, unique
}

// NewRide validates the given fields and returns a Ride in canonical form.
// An empty status defaults to OPEN.
func NewRide(name string, maintenance, waitTime int, address string, status Status, tags []string) (Ride, error) {
	r := Ride{
		Name:        NormalizeName(name),
		Maintenance: maintenance,
		WaitTime:    waitTime,
		Address:     strings.TrimSpace(address),
		Status:      status,
		Tags:        NormalizeTags(tags),
	}
	if r.Status == "" {
		r.Status = StatusOpen
	}
	if err := r.Validate(); err != nil {
		return Ride{}, err
	}
	return r, nil
}

// Validate checks every field against the ride constraints.
func (r Ride) Validate() error {
	if !reName.MatchString(r.Name) {
		return fmt.Errorf("%w: names should only contain alphanumeric characters and spaces, and should not be blank", ErrValidation)
	}
	if r.Maintenance < 0 {
		return fmt.Errorf("%w: maintenance must be a non-negative number of days", ErrValidation)
	}
	if r.WaitTime < 0 {
		return fmt.Errorf("%w: wait time must be a non-negative number of minutes", ErrValidation)
	}
	if r.Address == "" {
		return fmt.Errorf("%w: address can take any value, and should not be blank", ErrValidation)
	}
	if !r.Status.IsValid() {
		return fmt.Errorf("%w: unknown status %q", ErrValidation, r.Status)
	}
	for _, t := range r.Tags {
		if !reTag.MatchString(t) {
			return fmt.Errorf("%w: tag %q should be alphanumeric", ErrValidation, t)
		}
	}
	return nil
}

// Key returns the identity key of the ride.
func (r Ride) Key() string {
	return NormalizeName(r.Name)
}

// IsSameRide reports whether both rides share an identity key, regardless of
// their other attributes.
func (r Ride) IsSameRide(other Ride) bool {
	return r.Key() == other.Key()
}

// Equal reports whether every attribute of both rides matches.
func (r Ride) Equal(other Ride) bool {
	return r.Name == other.Name &&
		r.Maintenance == other.Maintenance &&
		r.WaitTime == other.WaitTime &&
		r.Address == other.Address &&
		r.Status == other.Status &&
		slices.Equal(r.Tags, other.Tags)
}

// Clone returns a deep copy of the ride.
func (r Ride) Clone() Ride {
	c := r
	if r.Tags != nil {
		c.Tags = slices.Clone(r.Tags)
	}
	return c
}

// HasTag reports whether the ride carries the given tag.
func (r Ride) HasTag(tag string) bool {
	_, found := slices.BinarySearch(r.Tags, tag)
	return found
}

// IsOpen reports whether the ride is operating.
func (r Ride) IsOpen() bool {
	return r.Status == StatusOpen
}

// String renders the ride on one line, as used in command feedback.
func (r Ride) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s Maintenance: %d Waiting Time: %d Zone: %s Status: %s", r.Name, r.Maintenance, r.WaitTime, r.Address, r.Status)
	if len(r.Tags) > 0 {
		b.WriteString(" Tags: ")
		for _, t := range r.Tags {
			b.WriteString("[" + t + "]")
		}
	}
	return b.String()
}

// NormalizeName trims surrounding whitespace and collapses inner runs of
// whitespace to one space. Matching on the result is case-sensitive.
func NormalizeName(name string) string {
	return reSpaces.ReplaceAllString(strings.TrimSpace(name), " ")
}

// NormalizeTags trims, de-duplicates and sorts tags.
// Returns nil for an empty set so that clones and comparisons stay stable.
func NormalizeTags(tags []string) []string {
	if len(tags) == 0 {
		return nil
	}
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		if t = strings.TrimSpace(t); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return nil
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// CloneRides deep-copies a slice of rides.
func CloneRides(rides []Ride) []Ride {
	out := make([]Ride, len(rides))
	for i, r := range rides {
		out[i] = r.Clone()
	}
	return out
}
