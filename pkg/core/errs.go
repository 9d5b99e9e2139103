package core

import "errors"

var (
	// ErrInvalidArgument is returned when an input violates a precondition
	// (element kind, element width, dimensionality or length).
	ErrInvalidArgument = errors.New("invalid argument")
)
