package entities

import "errors"

// ErrDuplicateRide is returned when an add or update would leave two rides
// sharing an identity key.
var ErrDuplicateRide = errors.New("this ride already exists in the park")

// ErrRideNotFound is returned when an update or delete targets a ride that
// is not in the current state.
var ErrRideNotFound = errors.New("ride not found")

// ErrIndexOutOfRange is returned when a displayed index is outside the
// current filtered view.
var ErrIndexOutOfRange = errors.New("the ride index provided is invalid")

// ErrNoHistory is returned by undo with nothing before the current state,
// and by redo with nothing after it.
var ErrNoHistory = errors.New("no more history")

// ErrValidation is returned when a field violates its constraints.
var ErrValidation = errors.New("validation error")
