package entities

import (
	"fmt"
	"strconv"
	"strings"
)

// NumericAttribute names a ride field that can be compared against a number.
type NumericAttribute string

const (
	AttributeMaintenance NumericAttribute = "maintenance"
	AttributeWaitTime    NumericAttribute = "waittime"
)

// ParseNumericAttribute accepts the attribute name or its shell prefix.
func ParseNumericAttribute(s string) (NumericAttribute, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "maintenance", "m", "m/":
		return AttributeMaintenance, nil
	case "waittime", "wait_time", "wait", "w", "w/":
		return AttributeWaitTime, nil
	default:
		return "", fmt.Errorf("%w: unknown numeric attribute %q", ErrValidation, s)
	}
}

// Value returns the ride's value for the attribute.
func (r Ride) Value(attr NumericAttribute) int {
	switch attr {
	case AttributeMaintenance:
		return r.Maintenance
	case AttributeWaitTime:
		return r.WaitTime
	default:
		return 0
	}
}

// Operator is a numeric comparison.
type Operator string

const (
	OpLess         Operator = "<"
	OpGreater      Operator = ">"
	OpEqual        Operator = "="
	OpLessEqual    Operator = "<="
	OpGreaterEqual Operator = ">="
)

// operators is ordered so two-character operators are tried first.
var operators = []Operator{OpLessEqual, OpGreaterEqual, OpLess, OpGreater, OpEqual}

// AttributePredicate compares one numeric attribute against a value.
type AttributePredicate struct {
	Attribute NumericAttribute
	Op        Operator
	Value     int
}

// ParseAttributePredicate parses an expression such as "<10" or ">= 5" for
// the given attribute. A bare number means equality.
func ParseAttributePredicate(attr NumericAttribute, expr string) (AttributePredicate, error) {
	expr = strings.TrimSpace(expr)
	op := OpEqual
	for _, candidate := range operators {
		if strings.HasPrefix(expr, string(candidate)) {
			op = candidate
			expr = strings.TrimSpace(strings.TrimPrefix(expr, string(candidate)))
			break
		}
	}

	value, err := strconv.Atoi(expr)
	if err != nil {
		return AttributePredicate{}, fmt.Errorf("%w: predicate value must be an integer, got %q", ErrValidation, expr)
	}

	return AttributePredicate{Attribute: attr, Op: op, Value: value}, nil
}

// Test reports whether the ride satisfies the predicate.
func (p AttributePredicate) Test(r Ride) bool {
	v := r.Value(p.Attribute)
	switch p.Op {
	case OpLess:
		return v < p.Value
	case OpGreater:
		return v > p.Value
	case OpEqual:
		return v == p.Value
	case OpLessEqual:
		return v <= p.Value
	case OpGreaterEqual:
		return v >= p.Value
	default:
		return false
	}
}

func (p AttributePredicate) String() string {
	return fmt.Sprintf("%s %s %d", p.Attribute, p.Op, p.Value)
}

// Condition is a conjunction of attribute predicates. The zero value matches
// every ride.
type Condition []AttributePredicate

// Test reports whether every predicate holds for the ride.
func (c Condition) Test(r Ride) bool {
	for _, p := range c {
		if !p.Test(r) {
			return false
		}
	}
	return true
}

func (c Condition) String() string {
	parts := make([]string, len(c))
	for i, p := range c {
		parts[i] = p.String()
	}
	return strings.Join(parts, " and ")
}
