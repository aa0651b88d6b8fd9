package constants

import "errors"

// Configuration errors.
var (
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrInvalidOutputFormat = errors.New("invalid output format, expected table, json or yaml")
	ErrInvalidTimeout      = errors.New("invalid timeout, expected a duration such as 30s")
	ErrNoHomeDirectory     = errors.New("could not determine home directory for configuration")
)
