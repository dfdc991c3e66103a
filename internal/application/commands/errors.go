package commands

import "errors"

// ErrNothingToUpdate is returned by update when no field was given.
var ErrNothingToUpdate = errors.New("at least one field to update must be provided")

// ErrAlreadyShutdown is returned when shutting down a ride that is not running.
var ErrAlreadyShutdown = errors.New("this ride is already shut down")

// ErrAlreadyOpen is returned when opening a ride that is already running.
var ErrAlreadyOpen = errors.New("this ride is already open")
