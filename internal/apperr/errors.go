package apperr

import "errors"

// ErrInvalidInput is returned when a flag, config value or argument fails
// validation. Use errors.Is(err, apperr.ErrInvalidInput) to detect it.
var ErrInvalidInput = errors.New("invalid input")
