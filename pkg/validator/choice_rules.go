package validator

import (
	"fmt"
	"slices"
	"strings"
)

// OneOf accepts only the listed values, compared exactly.
func OneOf(options ...string) CheckRule {
	allowed := slices.Clone(options)
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				return slices.Contains(allowed, value)
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be one of: %s", strings.Join(allowed, ", ")),
				TranslationKey: "validation.in_list",
				TranslationValues: map[string]any{
					"field":          field,
					"allowed_values": allowed,
				},
			},
		}
	}
}

// NoneOf rejects the listed values, ignoring case.
func NoneOf(options ...string) CheckRule {
	forbidden := make([]string, len(options))
	for i, o := range options {
		forbidden[i] = strings.ToLower(o)
	}
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				return !slices.Contains(forbidden, strings.ToLower(value))
			},
			Error: ValidationError{
				Field:          field,
				Message:        "value is not allowed",
				TranslationKey: "validation.not_in_list",
				TranslationValues: map[string]any{
					"field":            field,
					"forbidden_values": forbidden,
				},
			},
		}
	}
}
