package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes a single failed rule. Message is what a form shows
// under the field; the translation metadata is carried for callers that localize.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// Error returns the human-readable message.
func (e ValidationError) Error() string {
	if e.Message == "" {
		return ErrValidationFailed.Error()
	}
	return e.Message
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	parts := make([]string, 0, len(ve))
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

// Get returns every message recorded for field, in insertion order.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule is a check already bound to the value it inspects.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// CheckRule is an unbound rule. The field's display name and its current value
// are supplied at check time, so the same CheckRule can be reused across fields
// and re-evaluated as the value changes.
type CheckRule func(field, value string) Rule

// Apply executes every rule and returns all failures as ValidationErrors.
func Apply(rules ...Rule) error {
	var errs ValidationErrors

	for _, rule := range rules {
		if rule.Check != nil && !rule.Check() {
			errs = append(errs, rule.Error)
		}
	}

	if errs.IsEmpty() {
		return nil
	}

	return errs
}

// First executes rules in order and stops at the first failure.
func First(rules ...Rule) error {
	for _, rule := range rules {
		if rule.Check != nil && !rule.Check() {
			return rule.Error
		}
	}
	return nil
}

// Message extracts the text a form should display for err.
// Returns an empty string for a nil error.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var single ValidationError
	if errors.As(err, &single) {
		return single.Error()
	}

	var many ValidationErrors
	if errors.As(err, &many) && len(many) > 0 {
		return many[0].Error()
	}

	return err.Error()
}

// IsValidationError reports whether err carries validation failures.
func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var single ValidationError
	if errors.As(err, &single) {
		return true
	}
	var many ValidationErrors
	return errors.As(err, &many)
}
