package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	dotsRegex       = regexp.MustCompile(`\.{2,}`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	ansiRegex       = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)
)

// Func transforms a string.
type Func func(string) string

// Chain applies fns in order. Nil entries are skipped.
func Chain(fns ...Func) Func {
	return func(s string) string {
		for _, fn := range fns {
			if fn != nil {
				s = fn(s)
			}
		}
		return s
	}
}

func Trim(s string) string { return strings.TrimSpace(s) }

func ToLower(s string) string { return strings.ToLower(s) }

func ToUpper(s string) string { return strings.ToUpper(s) }

// CollapseWhitespace replaces runs of whitespace with a single space and trims.
func CollapseWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// StripControl removes ANSI escape sequences and control characters,
// keeping tabs and line breaks.
func StripControl(s string) string {
	s = ansiRegex.ReplaceAllString(s, "")
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// SingleLine joins lines with spaces and collapses whitespace.
func SingleLine(s string) string {
	return CollapseWhitespace(strings.NewReplacer("\r", " ", "\n", " ").Replace(s))
}

func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// NormalizeEmail trims and lowercases an address and consolidates repeated
// dots in the local part. Values without exactly one "@" are only trimmed
// and lowercased.
func NormalizeEmail(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	local, domain, ok := strings.Cut(s, "@")
	if !ok || strings.Contains(domain, "@") {
		return s
	}
	local = strings.Trim(dotsRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}

// NormalizePhone keeps digits and a leading plus sign.
func NormalizePhone(s string) string {
	s = strings.TrimSpace(s)
	digits := KeepDigits(s)
	if strings.HasPrefix(s, "+") {
		return "+" + digits
	}
	return digits
}
