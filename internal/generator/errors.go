package generator

import "errors"

var (
	// ErrUnknownSet is returned when a selector names no predefined symbol set.
	ErrUnknownSet = errors.New("no such symbol set")

	// ErrEmptyPool is returned when the active pool is empty even after the
	// default-set fallback. It indicates a broken built-in catalog, never
	// ordinary user input.
	ErrEmptyPool = errors.New("active symbol pool is empty")
)
