package types

import "errors"

// Domain errors for corpus validation
var (
	// Load-time integrity errors, fatal at startup
	ErrDataIntegrity = errors.New("corpus data integrity violation")
	ErrMissingID     = errors.New("pattern id must be a positive integer")
	ErrMissingTitle  = errors.New("pattern title cannot be empty")
	ErrMissingBody   = errors.New("pattern body cannot be empty")

	// Request-time errors, recovered per request
	ErrInvalidCategory = errors.New("unknown category")
)
