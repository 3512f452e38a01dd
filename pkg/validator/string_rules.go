package validator

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Required rejects empty and whitespace-only values.
func Required(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// MinLen requires at least min characters. Length is counted in runes.
func MinLen(min int) CheckRule {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				return utf8.RuneCountInString(value) >= min
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be at least %d characters long", min),
				TranslationKey: "validation.min_length",
				TranslationValues: map[string]any{
					"field": field,
					"min":   min,
				},
			},
		}
	}
}

func MaxLen(max int) CheckRule {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				return utf8.RuneCountInString(value) <= max
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be at most %d characters long", max),
				TranslationKey: "validation.max_length",
				TranslationValues: map[string]any{
					"field": field,
					"max":   max,
				},
			},
		}
	}
}

func Len(exact int) CheckRule {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				return utf8.RuneCountInString(value) == exact
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must be exactly %d characters long", exact),
				TranslationKey: "validation.exact_length",
				TranslationValues: map[string]any{
					"field":  field,
					"length": exact,
				},
			},
		}
	}
}

// WithMessage replaces the message of every failure produced by rule.
func WithMessage(rule CheckRule, message string) CheckRule {
	if rule == nil {
		return nil
	}
	return func(field, value string) Rule {
		r := rule(field, value)
		r.Error.Message = message
		return r
	}
}

// Optional lets empty values through and applies rule otherwise.
func Optional(rule CheckRule) CheckRule {
	if rule == nil {
		return nil
	}
	return func(field, value string) Rule {
		r := rule(field, value)
		check := r.Check
		r.Check = func() bool {
			if value == "" {
				return true
			}
			return check == nil || check()
		}
		return r
	}
}
