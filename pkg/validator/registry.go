package validator

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
)

// RuleFactory builds a CheckRule from the parameters of a rule expression.
type RuleFactory func(params []string) (CheckRule, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]RuleFactory{
		"required":            plain(Required),
		"email":               plain(Email),
		"url":                 plain(URL),
		"phone":               plain(Phone),
		"alpha":               plain(Alpha),
		"alphanumeric":        plain(Alphanumeric),
		"numeric":             plain(Numeric),
		"no_whitespace":       plain(NoWhitespace),
		"ascii":               plain(ASCIIOnly),
		"slug":                plain(Slug),
		"not_common_password": plain(NotCommonPassword),
		"strong_password":     plain(StrongPassword(DefaultPasswordStrength())),
		"min_len":             intRule(MinLen),
		"max_len":             intRule(MaxLen),
		"len":                 intRule(Len),
		"no_repeating":        intRule(NoRepeatingChars),
		"no_sequential":       intRule(NoSequentialChars),
		"entropy":             entropyRule,
		"username":            usernameRule,
		"one_of":              oneOfRule,
		"matches":             matchesRule,
	}
)

// Register adds or replaces a named rule factory.
func Register(name string, factory RuleFactory) error {
	name = strings.TrimSpace(name)
	if name == "" || factory == nil {
		return ErrInvalidRuleName
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
	return nil
}

// ParseRule turns an expression like "min_len:8" or "one_of:a,b,c" into a CheckRule.
// Parameters follow the first colon and are separated by commas, except for
// "matches" whose single parameter is the raw pattern.
func ParseRule(expr string) (CheckRule, error) {
	expr = strings.TrimSpace(expr)
	name, rawParams, hasParams := strings.Cut(expr, ":")
	name = strings.TrimSpace(name)

	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}

	var params []string
	if hasParams {
		if name == "matches" {
			params = []string{rawParams}
		} else {
			for _, p := range strings.Split(rawParams, ",") {
				params = append(params, strings.TrimSpace(p))
			}
		}
	}

	rule, err := factory(params)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", name, err)
	}
	return rule, nil
}

// ParseRules parses a semicolon separated list of rule expressions.
// Empty entries are ignored.
func ParseRules(exprs string) ([]CheckRule, error) {
	var rules []CheckRule
	for _, expr := range strings.Split(exprs, ";") {
		if strings.TrimSpace(expr) == "" {
			continue
		}
		rule, err := ParseRule(expr)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func plain(rule CheckRule) RuleFactory {
	return func(params []string) (CheckRule, error) {
		if len(params) > 0 {
			return nil, fmt.Errorf("%w: expects no parameters", ErrInvalidRuleParams)
		}
		return rule, nil
	}
}

func intRule(build func(int) CheckRule) RuleFactory {
	return func(params []string) (CheckRule, error) {
		ns, err := ints(params, 1)
		if err != nil {
			return nil, err
		}
		return build(ns[0]), nil
	}
}

func usernameRule(params []string) (CheckRule, error) {
	ns, err := ints(params, 2)
	if err != nil {
		return nil, err
	}
	if ns[0] > ns[1] {
		return nil, fmt.Errorf("%w: min %d exceeds max %d", ErrInvalidRuleParams, ns[0], ns[1])
	}
	return Username(ns[0], ns[1]), nil
}

func entropyRule(params []string) (CheckRule, error) {
	if len(params) != 1 {
		return nil, fmt.Errorf("%w: expects 1 parameter, got %d", ErrInvalidRuleParams, len(params))
	}
	bits, err := strconv.ParseFloat(params[0], 64)
	if err != nil || bits < 0 {
		return nil, fmt.Errorf("%w: %q is not a non-negative number", ErrInvalidRuleParams, params[0])
	}
	return PasswordEntropy(bits), nil
}

func oneOfRule(params []string) (CheckRule, error) {
	if len(params) == 0 || slices.Contains(params, "") {
		return nil, fmt.Errorf("%w: expects non-empty options", ErrInvalidRuleParams)
	}
	return OneOf(params...), nil
}

func matchesRule(params []string) (CheckRule, error) {
	if len(params) != 1 || params[0] == "" {
		return nil, fmt.Errorf("%w: expects a pattern", ErrInvalidRuleParams)
	}
	re, err := regexp.Compile(params[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRuleParams, err)
	}
	return matches(re, params[0], "required"), nil
}

func ints(params []string, want int) ([]int, error) {
	if len(params) != want {
		return nil, fmt.Errorf("%w: expects %d parameter(s), got %d", ErrInvalidRuleParams, want, len(params))
	}
	ns := make([]int, want)
	for i, p := range params {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidRuleParams, p)
		}
		ns[i] = n
	}
	return ns, nil
}
