package validator

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Frequently compromised passwords, compared lowercased.
var commonPasswords = map[string]struct{}{
	"password": {}, "123456": {}, "password123": {}, "admin": {}, "qwerty": {},
	"abc123": {}, "letmein": {}, "welcome": {}, "monkey": {}, "1234567890": {},
	"dragon": {}, "sunshine": {}, "iloveyou": {}, "princess": {}, "football": {},
	"password1": {}, "qwerty123": {}, "12345678": {}, "123456789": {}, "111111": {},
	"000000": {}, "qwertyuiop": {}, "asdfghjkl": {}, "zxcvbnm": {}, "admin123": {},
	"administrator": {}, "root": {}, "guest": {}, "test": {}, "master": {},
	"secret": {}, "trustno1": {}, "baseball": {}, "superman": {}, "batman": {},
	"1q2w3e4r": {}, "1qaz2wsx": {}, "zaq12wsx": {}, "abcd1234": {}, "qwe123": {},
}

// PasswordStrength describes the policy enforced by StrongPassword.
type PasswordStrength struct {
	MinLength        int
	MaxLength        int
	RequireUppercase bool
	RequireLowercase bool
	RequireDigits    bool
	RequireSpecial   bool
	MinCharClasses   int // distinct classes among upper, lower, digit, special
}

// DefaultPasswordStrength returns an 8-128 character policy with 3+ character classes.
func DefaultPasswordStrength() PasswordStrength {
	return PasswordStrength{
		MinLength:        8,
		MaxLength:        128,
		RequireUppercase: true,
		RequireLowercase: true,
		RequireDigits:    true,
		MinCharClasses:   3,
	}
}

type charClasses struct {
	upper, lower, digit, special bool
}

func (c charClasses) count() int {
	n := 0
	for _, ok := range []bool{c.upper, c.lower, c.digit, c.special} {
		if ok {
			n++
		}
	}
	return n
}

func classify(value string) charClasses {
	var c charClasses
	for _, r := range value {
		switch {
		case unicode.IsUpper(r):
			c.upper = true
		case unicode.IsLower(r):
			c.lower = true
		case unicode.IsDigit(r):
			c.digit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			c.special = true
		}
	}
	return c
}

func StrongPassword(policy PasswordStrength) CheckRule {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				n := utf8.RuneCountInString(value)
				if n < policy.MinLength || (policy.MaxLength > 0 && n > policy.MaxLength) {
					return false
				}

				c := classify(value)
				switch {
				case policy.RequireUppercase && !c.upper,
					policy.RequireLowercase && !c.lower,
					policy.RequireDigits && !c.digit,
					policy.RequireSpecial && !c.special:
					return false
				}
				return c.count() >= policy.MinCharClasses
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("password must be %d-%d characters with required character types", policy.MinLength, policy.MaxLength),
				TranslationKey: "validation.password_strength",
				TranslationValues: map[string]any{
					"field":             field,
					"min_length":        policy.MinLength,
					"max_length":        policy.MaxLength,
					"require_uppercase": policy.RequireUppercase,
					"require_lowercase": policy.RequireLowercase,
					"require_digits":    policy.RequireDigits,
					"require_special":   policy.RequireSpecial,
					"min_char_classes":  policy.MinCharClasses,
				},
			},
		}
	}
}

func NotCommonPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, common := commonPasswords[strings.ToLower(value)]
			return !common
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password is too common, please choose a different one",
			TranslationKey: "validation.password_common",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// NoRepeatingChars rejects runs of the same character longer than maxRepeats.
func NoRepeatingChars(maxRepeats int) CheckRule {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				var prev rune
				run := 0
				for i, r := range []rune(value) {
					if i > 0 && r == prev {
						run++
					} else {
						run = 1
					}
					if run > maxRepeats {
						return false
					}
					prev = r
				}
				return true
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("password cannot have more than %d repeating characters", maxRepeats),
				TranslationKey: "validation.password_repeating",
				TranslationValues: map[string]any{
					"field":       field,
					"max_repeats": maxRepeats,
				},
			},
		}
	}
}

// NoSequentialChars rejects ascending or descending runs like "abcd" or "4321"
// longer than maxSequential.
func NoSequentialChars(maxSequential int) CheckRule {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				runes := []rune(value)
				run, dir := 1, 0
				for i := 1; i < len(runes); i++ {
					step := int(runes[i]) - int(runes[i-1])
					if (step == 1 || step == -1) && (dir == 0 || step == dir) {
						run++
						dir = step
					} else if step == 1 || step == -1 {
						run, dir = 2, step
					} else {
						run, dir = 1, 0
					}
					if run > maxSequential {
						return false
					}
				}
				return true
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("password cannot have more than %d sequential characters", maxSequential),
				TranslationKey: "validation.password_sequential",
				TranslationValues: map[string]any{
					"field":          field,
					"max_sequential": maxSequential,
				},
			},
		}
	}
}

// PasswordEntropy requires an estimated entropy of at least minBits.
// 50+ bits is strong, 40-49 moderate, below 40 weak.
func PasswordEntropy(minBits float64) CheckRule {
	return func(field, value string) Rule {
		return Rule{
			Check: func() bool {
				return passwordEntropy(value) >= minBits
			},
			Error: ValidationError{
				Field:          field,
				Message:        fmt.Sprintf("password entropy too low, minimum %.1f bits required", minBits),
				TranslationKey: "validation.password_entropy",
				TranslationValues: map[string]any{
					"field":       field,
					"min_entropy": minBits,
				},
			},
		}
	}
}

// passwordEntropy is length * log2(alphabet), where the alphabet is the
// number of distinct runes capped by the size of the character classes used.
func passwordEntropy(password string) float64 {
	if password == "" {
		return 0
	}

	unique := make(map[rune]struct{})
	for _, r := range password {
		unique[r] = struct{}{}
	}

	c := classify(password)
	charset := 0
	if c.lower {
		charset += 26
	}
	if c.upper {
		charset += 26
	}
	if c.digit {
		charset += 10
	}
	if c.special || c.count() == 0 {
		charset += 32
	}

	alphabet := math.Min(float64(len(unique)), float64(charset))
	return float64(utf8.RuneCountInString(password)) * math.Log2(alphabet)
}
