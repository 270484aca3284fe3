package config

import (
	"errors"
)

var (
	// ErrEmptySeedFile error if config seedFile is empty; without a named
	// source there is nothing to even fall back from.
	ErrEmptySeedFile = errors.New("config seedFile can not be empty")
)
