package form

import "errors"

var (
	// ErrModeConflict is returned when a field already configured for rule
	// validation is set up for comparison, or the other way round.
	ErrModeConflict = errors.New("form: field is already configured with a different validation mode")

	// ErrNilMode is returned when Setup is called without a mode.
	ErrNilMode = errors.New("form: validation mode is nil")

	// ErrNilTarget is returned when comparison mode has no target.
	ErrNilTarget = errors.New("form: comparison target is nil")

	// ErrSelfCompare is returned when a field is compared with itself.
	ErrSelfCompare = errors.New("form: field cannot be compared with itself")

	// ErrEmptyCompareError is returned when comparison mode has no error message.
	ErrEmptyCompareError = errors.New("form: comparison mode requires an error message")
)
