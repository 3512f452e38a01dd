package validator

import (
	"net/mail"
	"net/url"
	"regexp"
	"strings"
)

var (
	// E.164 with optional leading plus
	phoneRegex = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

	alphanumericRegex  = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	alphaRegex         = regexp.MustCompile(`^[a-zA-Z]+$`)
	numericStringRegex = regexp.MustCompile(`^[0-9]+$`)
)

// Email validates an address the way a sign-up form expects it: a bare
// RFC 5322 address with a dotted domain. Display names are rejected.
func Email(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return isEmail(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func isEmail(value string) bool {
	if strings.TrimSpace(value) == "" {
		return false
	}

	addr, err := mail.ParseAddress(value)
	if err != nil || addr.Name != "" || addr.Address != value {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	for _, part := range strings.Split(domain, ".") {
		if part == "" {
			return false
		}
	}
	return true
}

// URL requires an absolute URL with scheme and host.
func URL(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			u, err := url.ParseRequestURI(value)
			if err != nil {
				return false
			}
			return u.Scheme != "" && u.Host != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Phone accepts international numbers; spaces and dashes are ignored.
func Phone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if strings.TrimSpace(value) == "" {
				return false
			}
			cleaned := strings.NewReplacer(" ", "", "-", "").Replace(value)
			if len(cleaned) < 7 {
				return false
			}
			return phoneRegex.MatchString(cleaned)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid phone number in international format",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

func Alphanumeric(field, value string) Rule {
	return regexRule(field, value, alphanumericRegex, "must contain only letters and numbers", "validation.alphanumeric")
}

func Alpha(field, value string) Rule {
	return regexRule(field, value, alphaRegex, "must contain only letters", "validation.alpha")
}

func Numeric(field, value string) Rule {
	return regexRule(field, value, numericStringRegex, "must contain only digits", "validation.numeric_string")
}

func regexRule(field, value string, re *regexp.Regexp, message, key string) Rule {
	return Rule{
		Check: func() bool {
			return re.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        message,
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
