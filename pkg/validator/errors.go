package validator

import "errors"

var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrUnknownRule is returned when a rule name is not present in the registry.
	ErrUnknownRule = errors.New("unknown validation rule")

	// ErrInvalidRuleParams is returned when a rule expression carries missing or malformed parameters.
	ErrInvalidRuleParams = errors.New("invalid validation rule parameters")

	// ErrInvalidRuleName is returned when registering a rule with an empty name or nil factory.
	ErrInvalidRuleName = errors.New("invalid validation rule name")
)
