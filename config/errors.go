package config

import "errors"

var (
	// ErrNotFound indicates that no search-path candidate holds the file.
	ErrNotFound = errors.New("config: configuration file not found")
	// ErrInvalidConfig indicates that a decoded configuration failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
