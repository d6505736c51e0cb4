package config

import "errors"

var (
	ErrNilPointer    = errors.New("config: target must be a non-nil pointer")
	ErrParsingConfig = errors.New("config: cannot parse environment")

	// ErrLoadingEnvFile is only returned for files named explicitly.
	// A missing default .env is ignored.
	ErrLoadingEnvFile = errors.New("config: cannot load env file")
	ErrReadingFile    = errors.New("config: cannot read yaml file")
)
