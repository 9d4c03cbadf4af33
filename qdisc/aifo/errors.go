package aifo

import "errors"

// Error conditions.
var (
	ErrUnknownOption   = errors.New("unknown option")
	ErrMissingArgument = errors.New("missing option argument")
	ErrInvalidInteger  = errors.New("invalid integer")
	ErrValueTooLarge   = errors.New("value too large")
	ErrHelpRequested   = errors.New("help requested")
)
