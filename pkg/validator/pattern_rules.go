package validator

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	slugRegex     = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// Matches validates against a custom pattern. The pattern is compiled once,
// when Matches is called, and panics if it is invalid. Use ParseRule for
// patterns that come from configuration.
func Matches(pattern, description string) CheckRule {
	re := regexp.MustCompile(pattern)
	return matches(re, pattern, description)
}

func matches(re *regexp.Regexp, pattern, description string) CheckRule {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				return re.MatchString(value)
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("must match %s pattern", description),
				TranslationKey: "validation.regex_pattern",
				TranslationValues: map[string]any{
					"field":       field,
					"pattern":     pattern,
					"description": description,
				},
			},
		}
	}
}

func NoWhitespace(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return !strings.ContainsFunc(value, unicode.IsSpace)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must not contain whitespace",
			TranslationKey: "validation.no_whitespace",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func ASCIIOnly(field, value string) Rule {
	return Rule{
		Check: func() bool {
			for i := 0; i < len(value); i++ {
				if value[i] >= utf8.RuneSelf {
					return false
				}
			}
			return true
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must contain only ASCII characters",
			TranslationKey: "validation.ascii_only",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Slug accepts lowercase words joined by single hyphens.
func Slug(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return slugRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid slug (lowercase letters, numbers, and hyphens only)",
			TranslationKey: "validation.slug",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func Username(minLen, maxLen int) CheckRule {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				n := utf8.RuneCountInString(value)
				if n < minLen || n > maxLen {
					return false
				}
				return usernameRegex.MatchString(value)
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("username must be %d-%d characters long and contain only letters, numbers, underscores, and hyphens", minLen, maxLen),
				TranslationKey: "validation.username",
				TranslationValues: map[string]any{
					"field":   field,
					"min_len": minLen,
					"max_len": maxLen,
				},
			},
		}
	}
}
